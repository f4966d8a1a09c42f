package docstore

import (
	"context"

	"docvault/internal/domain/models/docstore"
)

// TagService manages the tag sets on document metadata. All tag input is
// normalized before use: trimmed, lower-cased, empty strings dropped.
type TagService interface {
	// AddTags unions the given tags into the document's tag set
	AddTags(ctx context.Context, documentID string, tags []string) (*docstore.Document, error)

	// RemoveTags subtracts the given tags from the document's tag set
	RemoveTags(ctx context.Context, documentID string, tags []string) (*docstore.Document, error)

	// SetTags replaces the document's tag set wholesale
	SetTags(ctx context.Context, documentID string, tags []string) (*docstore.Document, error)

	// AllTags returns every distinct tag across all documents, sorted ascending
	AllTags(ctx context.Context) ([]string, error)

	// FindByTag returns all documents carrying the tag
	FindByTag(ctx context.Context, tag string) ([]docstore.Document, error)
}
