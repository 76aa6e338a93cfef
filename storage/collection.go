package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"hotel-reservation/models"
)

// Collection is a typed view over one persisted JSON array. Every Load reads
// the whole document and every Save rewrites it; nothing is cached.
type Collection[T any] struct {
	backend Backend
	name    string
}

func NewCollection[T any](backend Backend, name string) *Collection[T] {
	return &Collection[T]{backend: backend, name: name}
}

func (c *Collection[T]) Name() string {
	return c.name
}

// Load returns the stored records. Unreadable or malformed documents are
// logged and treated as an empty collection. The only error returned is a
// record that cannot be constructed (models.ErrMissingField).
func (c *Collection[T]) Load() ([]T, error) {
	data, err := c.backend.Load(c.name)
	if err != nil {
		log.Printf("❌ Error reading %s: %v", c.backend.Describe(c.name), err)
		return []T{}, nil
	}
	if data == nil {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		if errors.Is(err, models.ErrMissingField) {
			return nil, fmt.Errorf("load %s: %w", c.name, err)
		}
		log.Printf("❌ Error: Invalid JSON in %s: %v", c.backend.Describe(c.name), err)
		return []T{}, nil
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// Save writes the full collection as an indented JSON array. Text is stored
// as written: "&", "<" and ">" are not escaped.
func (c *Collection[T]) Save(items []T) error {
	if items == nil {
		items = []T{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(items); err != nil {
		return fmt.Errorf("encode %s: %w", c.name, err)
	}
	if err := c.backend.Save(c.name, bytes.TrimSuffix(buf.Bytes(), []byte("\n"))); err != nil {
		return err
	}
	return nil
}
