package docstore

import (
	"strings"
	"time"
)

// FileInfo describes an uploaded file. Only the description is persisted;
// the bytes themselves live behind the generated file reference for the
// lifetime of the process (no real file storage exists in this system).
type FileInfo struct {
	Name         string    `json:"name"`
	Size         int64     `json:"size"`
	MimeType     string    `json:"mime_type"`
	LastModified time.Time `json:"last_modified"`
}

// Extension returns the lower-cased extension of the file name, including
// the leading dot, or "" if the name has none.
func (f FileInfo) Extension() string {
	idx := strings.LastIndex(f.Name, ".")
	if idx < 0 {
		return ""
	}
	return strings.ToLower(f.Name[idx:])
}
