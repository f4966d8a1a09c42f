package docstore

import (
	"context"

	"docvault/internal/domain/models/docstore"
)

// VersionService manages the append-only version history of documents
type VersionService interface {
	// CreateVersion appends a new version and makes it current.
	// Requires edit-or-higher access; the new file's MIME type must equal
	// the document's original type (type drift is not allowed).
	CreateVersion(ctx context.Context, documentID string, req *CreateVersionRequest) (*docstore.Version, error)

	// ListVersions returns all versions in order
	ListVersions(ctx context.Context, documentID string) ([]docstore.Version, error)

	// GetVersion retrieves a version by its ID
	GetVersion(ctx context.Context, documentID, versionID string) (*docstore.Version, error)

	// GetVersionByNumber retrieves a version by its number
	GetVersionByNumber(ctx context.Context, documentID string, number int) (*docstore.Version, error)

	// SetCurrentVersion points the document at an existing version number.
	// Requires edit-or-higher access.
	SetCurrentVersion(ctx context.Context, documentID string, req *SetCurrentVersionRequest) (*docstore.Document, error)

	// DeleteVersion removes a version and renumbers the survivors densely.
	// Requires admin access; the last remaining version cannot be deleted.
	DeleteVersion(ctx context.Context, documentID, versionID, userID string) error
}

// CreateVersionRequest represents a version creation request
type CreateVersionRequest struct {
	File    docstore.FileInfo `json:"file"`
	Comment string            `json:"comment,omitempty"`
	UserID  string            `json:"-"` // Set by handler from identity context
}

// SetCurrentVersionRequest represents a current-version change request
type SetCurrentVersionRequest struct {
	Number int    `json:"number"`
	UserID string `json:"-"` // Set by handler from identity context
}
