package storage

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// FileBackend keeps each collection in <Dir>/<name>.json.
type FileBackend struct {
	Dir string
}

// NewFileBackend creates the data directory if needed. A failure is logged
// and the backend is still returned; writes will then report their own error.
func NewFileBackend(dir string) *FileBackend {
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Printf("❌ Error creating data directory: %v", err)
	}
	return &FileBackend{Dir: dir}
}

func (b *FileBackend) path(name string) string {
	return filepath.Join(b.Dir, name+".json")
}

func (b *FileBackend) Describe(name string) string {
	return b.path(name)
}

func (b *FileBackend) Load(name string) ([]byte, error) {
	data, err := os.ReadFile(b.path(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", b.path(name), err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	return data, nil
}

func (b *FileBackend) Save(name string, data []byte) error {
	if err := os.WriteFile(b.path(name), data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", b.path(name), err)
	}
	return nil
}
