package persistence

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStore keeps one JSON file per key under a directory. Writes are
// atomic: the payload goes to a .tmp file first and is renamed over the
// target, so a crash mid-write never corrupts the previous snapshot.
type FileStore struct {
	dir string
}

// NewFileStore creates the directory if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

func (f *FileStore) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

// Load reads the record for key. A missing file means the key was never
// saved.
func (f *FileStore) Load(_ context.Context, key string) (Record, bool, error) {
	data, err := os.ReadFile(f.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Save writes the record for key atomically.
func (f *FileStore) Save(_ context.Context, key string, rec Record) error {
	target := f.path(key)
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, rec, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, target)
}
