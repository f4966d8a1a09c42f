package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"docvault/internal/domain/repositories"
)

// BlobStore keeps each collection blob under one redis key. Collections are
// read and written wholesale, so the adapter stays trivially small.
type BlobStore struct {
	client *redis.Client
	prefix string
}

// NewBlobStore connects to redis and verifies the connection.
func NewBlobStore(ctx context.Context, addr, password string, db int, prefix string) (*BlobStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &BlobStore{client: client, prefix: prefix}, nil
}

// Get returns the blob stored under key.
func (s *BlobStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, repositories.ErrBlobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get blob %q: %w", key, err)
	}
	return data, nil
}

// Set stores data under key with no expiry; collections live until the next
// write replaces them.
func (s *BlobStore) Set(ctx context.Context, key string, data []byte) error {
	if err := s.client.Set(ctx, s.key(key), data, 0).Err(); err != nil {
		return fmt.Errorf("set blob %q: %w", key, err)
	}
	return nil
}

// Close releases the underlying client.
func (s *BlobStore) Close() error {
	return s.client.Close()
}

func (s *BlobStore) key(name string) string {
	return fmt.Sprintf("%sblob:%s", s.prefix, name)
}
