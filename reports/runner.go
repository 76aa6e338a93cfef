package reports

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"
)

// RunTimed runs a report, appends the elapsed time and writes the full text
// to outputPath.
func RunTimed(run func() (string, bool), outputPath string) (string, bool, error) {
	start := time.Now()
	text, ok := run()
	elapsed := time.Since(start)

	full := text + fmt.Sprintf("Time elapsed: %.6f seconds\n", elapsed.Seconds())
	if err := os.WriteFile(outputPath, []byte(full), 0644); err != nil {
		return full, false, fmt.Errorf("write %s: %w", outputPath, err)
	}
	return full, ok, nil
}

// CheckInputFile reports a readable error for a missing or unreadable input.
func CheckInputFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("file not found: %s", path)
		}
		return fmt.Errorf("reading file: %w", err)
	}
	return f.Close()
}
