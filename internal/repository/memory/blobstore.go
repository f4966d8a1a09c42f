package memory

import (
	"context"
	"sync"

	"docvault/internal/domain/repositories"
)

// BlobStore is an in-process blob store. It backs tests and is the default
// when no persistent backend is configured.
type BlobStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewBlobStore creates an empty in-memory blob store.
func NewBlobStore() *BlobStore {
	return &BlobStore{
		blobs: make(map[string][]byte),
	}
}

// Get returns the blob stored under key.
func (s *BlobStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.blobs[key]
	if !ok {
		return nil, repositories.ErrBlobNotFound
	}

	// Copy so callers cannot mutate stored bytes
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Set stores data under key, replacing any previous value.
func (s *BlobStore) Set(ctx context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)
	s.blobs[key] = stored
	return nil
}
