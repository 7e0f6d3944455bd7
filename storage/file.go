package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// File keeps each record as <dir>/<key>.json. This is the default driver
// and the closest analogue of the browser's local storage.
type File struct {
	dir string
}

func NewFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &File{dir: dir}, nil
}

func (f *File) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

func (f *File) Load(key string, dest any) error {
	data, err := os.ReadFile(f.path(key))
	if os.IsNotExist(err) {
		return ErrNoRecord
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}

func (f *File) Save(key string, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(f.path(key), data, 0o644)
}

func (f *File) Delete(key string) error {
	err := os.Remove(f.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
