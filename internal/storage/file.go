package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// FileStore keeps each document as <dir>/<name>.json. Writes go through a
// temp file and a rename, so a crash mid-write never leaves a half-written
// document behind. There is no cross-process locking.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

func (s *FileStore) Load(ctx context.Context, name string, target any) error {
	path := s.path(name)

	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read document %s: %w", name, err)
	}

	if err := json.Unmarshal(b, target); err != nil {
		// Treat a corrupt document like a missing one; the caller falls
		// back to its default.
		log.Printf("document %s: invalid JSON, using default: %v", name, err)
		return nil
	}
	return nil
}

func (s *FileStore) Save(ctx context.Context, name string, value any) error {
	b, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("encode document %s: %w", name, err)
	}
	b = append(b, '\n')

	path := s.path(name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("write document %s: %w", name, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("write document %s: %w", name, err)
	}
	return nil
}

func (s *FileStore) SeedIfAbsent(ctx context.Context, name string, value any) error {
	_, err := os.Stat(s.path(name))
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat document %s: %w", name, err)
	}
	return s.Save(ctx, name, value)
}
