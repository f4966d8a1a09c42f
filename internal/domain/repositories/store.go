package repositories

import (
	"context"
	"errors"

	"docvault/internal/domain/models/docstore"
)

// ErrBlobNotFound is returned by BlobStore.Get when a key has never been
// written. Collection loaders treat it as an empty collection.
var ErrBlobNotFound = errors.New("blob not found")

// Blob keys. Each collection is one named blob, read and written wholesale.
const (
	BlobDocuments = "documents"
	BlobFolders   = "folders"
	BlobSessions  = "viewing_sessions"
)

// BlobStore persists opaque byte blobs under fixed keys. This is the only
// contract a storage backend has to satisfy; every adapter (file, redis,
// postgres, memory) implements exactly this.
type BlobStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, data []byte) error
}

// Store loads and saves the three collections as whole units. Every mutating
// operation in the service layer is a single load → mutate → save round trip;
// there is no partial update and no transaction isolation beyond last-write-
// wins at collection granularity.
type Store interface {
	LoadDocuments(ctx context.Context) ([]docstore.Document, error)
	SaveDocuments(ctx context.Context, docs []docstore.Document) error

	LoadFolders(ctx context.Context) ([]docstore.Folder, error)
	SaveFolders(ctx context.Context, folders []docstore.Folder) error

	LoadSessions(ctx context.Context) (map[string]docstore.ViewingSession, error)
	SaveSessions(ctx context.Context, sessions map[string]docstore.ViewingSession) error
}
