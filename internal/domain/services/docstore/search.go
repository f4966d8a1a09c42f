package docstore

import (
	"context"

	"docvault/internal/domain/models/docstore"
)

// SearchService filters the document list by metadata fields. Content-level
// search is intentionally absent: no document bytes are stored, so there is
// nothing real to index.
type SearchService interface {
	// ByKeyword matches the keyword (case-insensitive substring) against
	// metadata title, description, tags, and the original file name.
	ByKeyword(ctx context.Context, keyword string) ([]docstore.Document, error)

	// Advanced applies the full filter set from SearchOptions
	Advanced(ctx context.Context, opts *docstore.SearchOptions) ([]docstore.Document, error)
}
