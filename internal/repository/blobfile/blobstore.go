package blobfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"docvault/internal/domain/repositories"
)

// BlobStore persists each blob as one JSON file under a data directory:
// one named slot per collection, replaced wholesale on every write.
type BlobStore struct {
	dir string
}

// NewBlobStore creates the data directory if needed and returns a store
// rooted there.
func NewBlobStore(dir string) (*BlobStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &BlobStore{dir: dir}, nil
}

// Get reads the blob file for key.
func (s *BlobStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, repositories.ErrBlobNotFound
		}
		return nil, fmt.Errorf("read blob %q: %w", key, err)
	}
	return data, nil
}

// Set writes data to a temp file and renames it into place so a crash
// mid-write never leaves a truncated collection behind.
func (s *BlobStore) Set(ctx context.Context, key string, data []byte) error {
	tmp, err := os.CreateTemp(s.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp blob: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write blob %q: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close blob %q: %w", key, err)
	}

	if err := os.Rename(tmp.Name(), s.path(key)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace blob %q: %w", key, err)
	}
	return nil
}

func (s *BlobStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
