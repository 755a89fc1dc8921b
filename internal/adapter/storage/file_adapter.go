package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileAdapter is the default durable storage: one JSON blob in a local
// file. Writes go through a temp file and rename so a crash mid-write
// cannot leave a truncated snapshot behind.
type FileAdapter struct {
	path string
}

func NewFileAdapter(path string) *FileAdapter {
	return &FileAdapter{path: path}
}

func (f *FileAdapter) Load(ctx context.Context) ([]byte, error) {
	blob, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read snapshot file: %w", err)
	}
	return blob, nil
}

func (f *FileAdapter) Save(ctx context.Context, blob []byte) error {
	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, ".snapshot-*")
	if err != nil {
		return fmt.Errorf("create temp snapshot: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(blob); err != nil {
		tmp.Close()
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}
