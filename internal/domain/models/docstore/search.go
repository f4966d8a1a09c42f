package docstore

import (
	"time"
)

// SearchOptions configures an advanced search over the document list.
// All filters are optional; a zero-value filter matches everything.
type SearchOptions struct {
	// Keyword matches (case-insensitive substring) against metadata title,
	// description, tags, and the original file name.
	Keyword string `json:"keyword"`

	// FileTypes restricts results to documents whose MIME type is listed.
	FileTypes []string `json:"file_types"`

	// Tags restricts results to documents carrying every one of the given
	// (normalized) tags.
	Tags []string `json:"tags"`

	// DateFrom/DateTo bound metadata.created_at inclusively.
	DateFrom *time.Time `json:"date_from"`
	DateTo   *time.Time `json:"date_to"`
}
