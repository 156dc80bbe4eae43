package repo

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileBackend keeps each bucket in its own JSON file. Paths maps bucket
// names to file names; unmapped buckets use "<bucket>.json". Relative
// paths are resolved against Dir.
type FileBackend struct {
	Dir   string
	Paths map[string]string
}

var _ Backend = FileBackend{}

func NewFileBackend(dir string, paths map[string]string) FileBackend {
	return FileBackend{Dir: dir, Paths: paths}
}

func (b FileBackend) Locate(bucket string) string {
	name, ok := b.Paths[bucket]
	if !ok || name == "" {
		name = bucket + ".json"
	}
	if filepath.IsAbs(name) || b.Dir == "" {
		return name
	}
	return filepath.Join(b.Dir, name)
}

func (b FileBackend) Read(_ context.Context, bucket string) ([]byte, error) {
	data, err := os.ReadFile(b.Locate(bucket))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNoSnapshot
	}
	return data, err
}

func (b FileBackend) Exists(_ context.Context, bucket string) (bool, error) {
	_, err := os.Stat(b.Locate(bucket))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return err == nil, err
}

// Write replaces the file through a temporary sibling and a rename, so a
// reader never observes a half-written collection.
func (b FileBackend) Write(_ context.Context, bucket string, payload []byte) error {
	path := b.Locate(bucket)
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create dirs: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(payload); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
