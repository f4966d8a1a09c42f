package docstore

import (
	"time"
)

// Folder organizes documents into a tree. ParentID forms the hierarchy;
// nil means root level.
type Folder struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	ParentID  *string   `json:"parent_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
