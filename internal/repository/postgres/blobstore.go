package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"docvault/internal/domain/repositories"
)

// BlobStore persists collection blobs in a single key/value table. The
// table name carries an environment prefix (dev_, test_, prod_) so multiple
// deployments can share a database.
type BlobStore struct {
	pool  *pgxpool.Pool
	table string
}

// NewBlobStore ensures the blob table exists and returns the store.
func NewBlobStore(ctx context.Context, pool *pgxpool.Pool, tablePrefix string) (*BlobStore, error) {
	table := fmt.Sprintf("%sblobs", tablePrefix)

	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			key        TEXT PRIMARY KEY,
			data       BYTEA NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`, table)

	if _, err := pool.Exec(ctx, query); err != nil {
		return nil, fmt.Errorf("create blob table: %w", err)
	}

	return &BlobStore{pool: pool, table: table}, nil
}

// Get returns the blob stored under key.
func (s *BlobStore) Get(ctx context.Context, key string) ([]byte, error) {
	query := fmt.Sprintf(`SELECT data FROM %s WHERE key = $1`, s.table)

	var data []byte
	err := s.pool.QueryRow(ctx, query, key).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, repositories.ErrBlobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get blob %q: %w", key, err)
	}
	return data, nil
}

// Set upserts data under key.
func (s *BlobStore) Set(ctx context.Context, key string, data []byte) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (key, data, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE
		SET data = EXCLUDED.data, updated_at = NOW()
	`, s.table)

	if _, err := s.pool.Exec(ctx, query, key, data); err != nil {
		return fmt.Errorf("set blob %q: %w", key, err)
	}
	return nil
}
