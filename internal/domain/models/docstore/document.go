package docstore

import (
	"time"
)

// PermissionLevel is one of the four access levels a user can hold on a
// document. Levels are totally ordered: view < download < edit < admin.
type PermissionLevel string

const (
	LevelView     PermissionLevel = "view"
	LevelDownload PermissionLevel = "download"
	LevelEdit     PermissionLevel = "edit"
	LevelAdmin    PermissionLevel = "admin"
)

// Rank returns the position of the level in the permission hierarchy.
// Unknown levels rank 0 and therefore never satisfy any requirement.
func (l PermissionLevel) Rank() int {
	switch l {
	case LevelView:
		return 1
	case LevelDownload:
		return 2
	case LevelEdit:
		return 3
	case LevelAdmin:
		return 4
	default:
		return 0
	}
}

// Valid reports whether l is one of the four known levels.
func (l PermissionLevel) Valid() bool {
	return l.Rank() > 0
}

// AccessEntry grants one user one permission level. A document holds at most
// one entry per user.
type AccessEntry struct {
	UserID string          `json:"user_id"`
	Level  PermissionLevel `json:"level"`
}

// Permissions holds the owner plus the access control list of a document.
// The owner is never stored as an access entry; ownership implies admin.
type Permissions struct {
	Owner  string        `json:"owner"`
	Access []AccessEntry `json:"access"`
}

// Allows reports whether userID holds at least the required level.
// The owner passes every check unconditionally.
func (p Permissions) Allows(userID string, required PermissionLevel) bool {
	if p.Owner == userID {
		return true
	}
	for _, entry := range p.Access {
		if entry.UserID == userID {
			return entry.Level.Rank() >= required.Rank()
		}
	}
	return false
}

// EntryFor returns the access entry for userID, if one exists.
func (p Permissions) EntryFor(userID string) (AccessEntry, bool) {
	for _, entry := range p.Access {
		if entry.UserID == userID {
			return entry, true
		}
	}
	return AccessEntry{}, false
}

// Metadata is the user-editable descriptive part of a document.
type Metadata struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Version is an immutable snapshot of a document's file. Numbers are 1-based
// and dense; deleting a sibling renumbers the survivors in order.
type Version struct {
	ID        string    `json:"id"`
	Number    int       `json:"number"`
	FileRef   string    `json:"file_ref"` // opaque reference to the version's bytes
	Name      string    `json:"name"`
	Size      int64     `json:"size"`
	MimeType  string    `json:"mime_type"`
	Comment   string    `json:"comment"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

// ViewEvent is one entry in a document's view audit trail.
type ViewEvent struct {
	UserID    string    `json:"user_id"`
	Timestamp time.Time `json:"timestamp"`
}

// Document is the root aggregate of the store. Name, Size, MimeType and
// LastModified describe the originally uploaded file; URL, Size and the
// mirrored fields always track the current version.
type Document struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Size         int64       `json:"size"`
	MimeType     string      `json:"mime_type"`
	LastModified time.Time   `json:"last_modified"`
	URL          string      `json:"url"`
	Metadata     Metadata    `json:"metadata"`
	Versions     []Version   `json:"versions"`
	// CurrentVersion always references an existing version number.
	CurrentVersion int          `json:"current_version"`
	FolderID       *string      `json:"folder_id"` // nil = unfiled (root)
	Permissions    Permissions  `json:"permissions"`
	Annotations    []Annotation `json:"annotations"`
	PageCount      int          `json:"page_count,omitempty"`
	ViewCount      int          `json:"view_count"`
	LastViewed     *time.Time   `json:"last_viewed,omitempty"`
	ViewHistory    []ViewEvent  `json:"view_history,omitempty"`
}

// VersionByNumber returns the version with the given number.
func (d *Document) VersionByNumber(number int) (Version, bool) {
	for _, v := range d.Versions {
		if v.Number == number {
			return v, true
		}
	}
	return Version{}, false
}

// VersionByID returns the version with the given ID.
func (d *Document) VersionByID(id string) (Version, bool) {
	for _, v := range d.Versions {
		if v.ID == id {
			return v, true
		}
	}
	return Version{}, false
}

// HasTag reports whether the document carries the (already normalized) tag.
func (d *Document) HasTag(tag string) bool {
	for _, t := range d.Metadata.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
