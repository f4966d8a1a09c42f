package docstore

import (
	"context"

	"docvault/internal/domain/models/docstore"
)

// DocumentService handles document lifecycle business logic
type DocumentService interface {
	// Upload validates the file and creates a document with its first version
	Upload(ctx context.Context, req *UploadDocumentRequest) (*docstore.Document, error)

	// GetDocument retrieves a document by ID
	GetDocument(ctx context.Context, documentID string) (*docstore.Document, error)

	// ListDocuments returns the whole document collection
	ListDocuments(ctx context.Context) ([]docstore.Document, error)

	// UpdateMetadata updates title/description/tags
	// The caller must be the owner or hold edit-or-higher access
	UpdateMetadata(ctx context.Context, documentID string, req *UpdateMetadataRequest) (*docstore.Document, error)

	// DeleteDocument removes a document from the collection
	DeleteDocument(ctx context.Context, documentID string) error
}

// UploadDocumentRequest represents a document upload request
type UploadDocumentRequest struct {
	File        docstore.FileInfo `json:"file"`
	Title       string            `json:"title,omitempty"`       // defaults to the file name
	Description string            `json:"description,omitempty"`
	Tags        []string          `json:"tags,omitempty"`
	FolderID    *string           `json:"folder_id,omitempty"`
	UserID      string            `json:"-"` // Set by handler from identity context, not from request body
}

// UpdateMetadataRequest represents a metadata update request
type UpdateMetadataRequest struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Tags        *[]string `json:"tags,omitempty"`
	UserID      string    `json:"-"` // Set by handler from identity context
}
