package jsonstore

import (
	"context"
	"testing"

	models "docvault/internal/domain/models/docstore"
	"docvault/internal/repository/memory"
)

func TestLoad_MissingBlobsAreEmptyCollections(t *testing.T) {
	store := New(memory.NewBlobStore())
	ctx := context.Background()

	docs, err := store.LoadDocuments(ctx)
	if err != nil {
		t.Fatalf("load documents: %v", err)
	}
	if docs == nil || len(docs) != 0 {
		t.Errorf("documents = %v, want empty non-nil slice", docs)
	}

	folders, err := store.LoadFolders(ctx)
	if err != nil {
		t.Fatalf("load folders: %v", err)
	}
	if folders == nil || len(folders) != 0 {
		t.Errorf("folders = %v, want empty non-nil slice", folders)
	}

	sessions, err := store.LoadSessions(ctx)
	if err != nil {
		t.Fatalf("load sessions: %v", err)
	}
	if sessions == nil || len(sessions) != 0 {
		t.Errorf("sessions = %v, want empty non-nil map", sessions)
	}
}

func TestRoundTrip(t *testing.T) {
	store := New(memory.NewBlobStore())
	ctx := context.Background()

	docs := []models.Document{{ID: "d1", Name: "a.pdf", CurrentVersion: 1}}
	if err := store.SaveDocuments(ctx, docs); err != nil {
		t.Fatalf("save documents: %v", err)
	}

	loaded, err := store.LoadDocuments(ctx)
	if err != nil {
		t.Fatalf("load documents: %v", err)
	}
	if len(loaded) != 1 || loaded[0].ID != "d1" {
		t.Errorf("loaded = %+v, want the saved document", loaded)
	}

	sessions := map[string]models.ViewingSession{"d1": {CurrentPage: 4}}
	if err := store.SaveSessions(ctx, sessions); err != nil {
		t.Fatalf("save sessions: %v", err)
	}
	loadedSessions, err := store.LoadSessions(ctx)
	if err != nil {
		t.Fatalf("load sessions: %v", err)
	}
	if loadedSessions["d1"].CurrentPage != 4 {
		t.Errorf("session = %+v, want current page 4", loadedSessions["d1"])
	}
}
