package docstore

import "time"

// FolderTreeNode represents a folder in the hierarchy with nested children.
// A folder is a root node if its parent is nil or does not resolve to a
// known folder.
type FolderTreeNode struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	ParentID  *string           `json:"parent_id"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
	Children  []*FolderTreeNode `json:"children"` // Pointers for proper nesting
}
