package docstore

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"docvault/internal/domain"
	"docvault/internal/domain/models/docstore"
)

// findDocument returns the index of the document with the given ID.
func findDocument(docs []docstore.Document, id string) (int, bool) {
	for i := range docs {
		if docs[i].ID == id {
			return i, true
		}
	}
	return -1, false
}

// findFolder returns the index of the folder with the given ID.
func findFolder(folders []docstore.Folder, id string) (int, bool) {
	for i := range folders {
		if folders[i].ID == id {
			return i, true
		}
	}
	return -1, false
}

// normalizeTags trims, lower-cases, drops empties, and de-duplicates while
// preserving first-seen order.
func normalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}

// newFileRef mints an opaque reference for an uploaded file's bytes. The
// bytes themselves are never persisted; only the reference travels with the
// document.
func newFileRef() string {
	return "blob:" + uuid.NewString()
}

// errDocumentNotFound builds the standard not-found error for a document.
func errDocumentNotFound(id string) error {
	return &domain.NotFoundError{Message: fmt.Sprintf("document %s not found", id)}
}

// errFolderNotFound builds the standard not-found error for a folder.
func errFolderNotFound(id string) error {
	return &domain.NotFoundError{Message: fmt.Sprintf("folder %s not found", id)}
}

// requireLevel enforces the permission hierarchy on a document. The owner
// passes every check.
func requireLevel(doc *docstore.Document, userID string, required docstore.PermissionLevel) error {
	if doc.Permissions.Allows(userID, required) {
		return nil
	}
	return &domain.ForbiddenError{Message: "permission denied"}
}
