// Package jsonfile persists each collection as a single JSON array document
// on disk, the interchange shape the storefront data was seeded with. Writes
// rewrite the whole file through a temp file + rename.
package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Load reads the document at path into a fresh value of T. If the file does
// not exist yet, seed is written and returned.
func Load[T any](path string, seed T) (T, error) {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if werr := Save(path, seed); werr != nil {
			var zero T
			return zero, werr
		}
		return seed, nil
	}
	if err != nil {
		var zero T
		return zero, fmt.Errorf("read %s: %w", path, err)
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		var zero T
		return zero, fmt.Errorf("decode %s: %w", path, err)
	}
	return v, nil
}

// Save rewrites the document at path with v.
func Save(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir for %s: %w", path, err)
	}
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename %s: %w", tmp, err)
	}
	return nil
}
