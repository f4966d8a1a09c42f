package blobfile

import (
	"context"
	"errors"
	"testing"

	"docvault/internal/domain/repositories"
)

func TestBlobStore(t *testing.T) {
	store, err := NewBlobStore(t.TempDir())
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	ctx := context.Background()

	if _, err := store.Get(ctx, "documents"); !errors.Is(err, repositories.ErrBlobNotFound) {
		t.Errorf("get missing: err = %v, want ErrBlobNotFound", err)
	}

	payload := []byte(`[{"id":"d1"}]`)
	if err := store.Set(ctx, "documents", payload); err != nil {
		t.Fatalf("set: %v", err)
	}

	data, err := store.Get(ctx, "documents")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(data) != string(payload) {
		t.Errorf("data = %q, want %q", data, payload)
	}

	// Overwrite replaces the previous blob wholesale
	if err := store.Set(ctx, "documents", []byte(`[]`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	data, _ = store.Get(ctx, "documents")
	if string(data) != "[]" {
		t.Errorf("data = %q, want overwritten []", data)
	}
}
