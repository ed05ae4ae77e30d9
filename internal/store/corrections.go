package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// FileCorrections persists learned spelling corrections as a JSON object in
// a single file, rewritten in full on every save. It satisfies the spell
// checker's Store contract.
type FileCorrections struct {
	path string
}

// NewFileCorrections creates a store at the given path. The file does not
// need to exist yet.
func NewFileCorrections(path string) *FileCorrections {
	return &FileCorrections{path: path}
}

// Load reads the full corrections map. A missing file is not an error:
// it simply means nothing has been learned yet.
func (f *FileCorrections) Load() (map[string]string, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, err
	}

	corrections := map[string]string{}
	if err := json.Unmarshal(data, &corrections); err != nil {
		return nil, err
	}
	return corrections, nil
}

// Save overwrites the file with the given map, creating parent directories
// as needed.
func (f *FileCorrections) Save(corrections map[string]string) error {
	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	data, err := json.MarshalIndent(corrections, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(f.path, data, 0o644)
}
