package docstore

import (
	"context"

	"docvault/internal/domain/models/docstore"
	"docvault/internal/httputil"
)

// FolderService handles folder business logic
type FolderService interface {
	// CreateFolder creates a new folder
	CreateFolder(ctx context.Context, req *CreateFolderRequest) (*docstore.Folder, error)

	// GetFolder retrieves a folder by ID
	GetFolder(ctx context.Context, id string) (*docstore.Folder, error)

	// ListFolders returns the flat folder collection
	ListFolders(ctx context.Context) ([]docstore.Folder, error)

	// UpdateFolder updates a folder (rename or move)
	UpdateFolder(ctx context.Context, id string, req *UpdateFolderRequest) (*docstore.Folder, error)

	// DeleteFolder deletes a folder. Fails with a conflict if any folder or
	// document still references it.
	DeleteFolder(ctx context.Context, id string) error

	// MoveDocuments sets the folder of every matching document and reports
	// whether anything changed. A nil folder ID means unfiled (root).
	MoveDocuments(ctx context.Context, req *MoveDocumentsRequest) (bool, error)
}

// TreeService builds the folder hierarchy
type TreeService interface {
	// GetHierarchy returns the folder forest. A folder roots a tree when its
	// parent is nil or does not resolve to a known folder.
	GetHierarchy(ctx context.Context) ([]*docstore.FolderTreeNode, error)
}

// CreateFolderRequest represents a folder creation request
type CreateFolderRequest struct {
	Name     string  `json:"name"`
	ParentID *string `json:"parent_id,omitempty"` // null for root
}

// UpdateFolderRequest represents a folder update request.
// ParentID uses tri-state semantics: absent = keep, null = move to root,
// value = move under that folder.
type UpdateFolderRequest struct {
	Name     *string                 `json:"name,omitempty"`
	ParentID httputil.OptionalString `json:"parent_id,omitempty"`
}

// MoveDocumentsRequest represents a bulk document move request
type MoveDocumentsRequest struct {
	DocumentIDs []string `json:"document_ids"`
	FolderID    *string  `json:"folder_id"` // null = unfiled
}
