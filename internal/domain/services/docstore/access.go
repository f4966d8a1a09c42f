package docstore

import (
	"context"

	"docvault/internal/domain/models/docstore"
)

// AccessService handles the per-document ACL
type AccessService interface {
	// Grant upserts one access entry keyed by user ID
	Grant(ctx context.Context, documentID string, req *GrantRequest) (*docstore.Document, error)

	// Revoke removes the entry for the user; no-op if none exists
	Revoke(ctx context.Context, documentID, userID string) (*docstore.Document, error)

	// Check reports whether the user holds at least the required level.
	// The owner passes unconditionally.
	Check(ctx context.Context, documentID, userID string, required docstore.PermissionLevel) (bool, error)

	// TransferOwnership reassigns the owner. The supplied current owner must
	// match the stored one; identity is advisory since no authentication
	// system exists.
	TransferOwnership(ctx context.Context, documentID string, req *TransferOwnershipRequest) (*docstore.Document, error)

	// ListUsers returns every user with access, the owner included
	ListUsers(ctx context.Context, documentID string) ([]DocumentUser, error)
}

// GrantRequest represents a permission grant request
type GrantRequest struct {
	UserID string                   `json:"user_id"`
	Level  docstore.PermissionLevel `json:"level"`
}

// TransferOwnershipRequest represents an ownership transfer request
type TransferOwnershipRequest struct {
	CurrentOwnerID string `json:"current_owner_id"`
	NewOwnerID     string `json:"new_owner_id"`
}

// DocumentUser is one user's effective access to a document
type DocumentUser struct {
	UserID  string                   `json:"user_id"`
	Level   docstore.PermissionLevel `json:"level"`
	IsOwner bool                     `json:"is_owner,omitempty"`
}
