package jsonstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"docvault/internal/domain/models/docstore"
	"docvault/internal/domain/repositories"
)

// Store marshals the three collections as JSON over any BlobStore. A key
// that was never written loads as an empty collection, so a fresh backend
// needs no seeding.
type Store struct {
	blobs repositories.BlobStore
}

// New wraps a blob store in the typed collection interface.
func New(blobs repositories.BlobStore) *Store {
	return &Store{blobs: blobs}
}

// LoadDocuments reads the whole document collection.
func (s *Store) LoadDocuments(ctx context.Context) ([]docstore.Document, error) {
	var docs []docstore.Document
	if err := s.load(ctx, repositories.BlobDocuments, &docs); err != nil {
		return nil, err
	}
	if docs == nil {
		docs = []docstore.Document{}
	}
	return docs, nil
}

// SaveDocuments replaces the whole document collection.
func (s *Store) SaveDocuments(ctx context.Context, docs []docstore.Document) error {
	return s.save(ctx, repositories.BlobDocuments, docs)
}

// LoadFolders reads the whole folder collection.
func (s *Store) LoadFolders(ctx context.Context) ([]docstore.Folder, error) {
	var folders []docstore.Folder
	if err := s.load(ctx, repositories.BlobFolders, &folders); err != nil {
		return nil, err
	}
	if folders == nil {
		folders = []docstore.Folder{}
	}
	return folders, nil
}

// SaveFolders replaces the whole folder collection.
func (s *Store) SaveFolders(ctx context.Context, folders []docstore.Folder) error {
	return s.save(ctx, repositories.BlobFolders, folders)
}

// LoadSessions reads the viewing-session map.
func (s *Store) LoadSessions(ctx context.Context) (map[string]docstore.ViewingSession, error) {
	var sessions map[string]docstore.ViewingSession
	if err := s.load(ctx, repositories.BlobSessions, &sessions); err != nil {
		return nil, err
	}
	if sessions == nil {
		sessions = make(map[string]docstore.ViewingSession)
	}
	return sessions, nil
}

// SaveSessions replaces the viewing-session map.
func (s *Store) SaveSessions(ctx context.Context, sessions map[string]docstore.ViewingSession) error {
	return s.save(ctx, repositories.BlobSessions, sessions)
}

func (s *Store) load(ctx context.Context, key string, dest interface{}) error {
	data, err := s.blobs.Get(ctx, key)
	if errors.Is(err, repositories.ErrBlobNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("unmarshal collection %q: %w", key, err)
	}
	return nil
}

func (s *Store) save(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal collection %q: %w", key, err)
	}
	return s.blobs.Set(ctx, key, data)
}
