package docstore

import "time"

// ViewerType selects the frontend component used to render a document.
type ViewerType string

const (
	ViewerPDF     ViewerType = "pdf"
	ViewerDocx    ViewerType = "docx"
	ViewerXlsx    ViewerType = "xlsx"
	ViewerImage   ViewerType = "image"
	ViewerText    ViewerType = "text"
	ViewerUnknown ViewerType = "unknown"
)

// ViewInfo is what a caller needs to view or download a document's current
// version.
type ViewInfo struct {
	URL      string `json:"url"`
	MimeType string `json:"mime_type"`
	Name     string `json:"name"`
	Size     int64  `json:"size"`
}

// PreviewConfig describes how to render a document in-platform.
type PreviewConfig struct {
	DocumentID string     `json:"document_id"`
	URL        string     `json:"url"`
	MimeType   string     `json:"mime_type"`
	ViewerType ViewerType `json:"viewer_type"`
	Name       string     `json:"name"`
	Size       int64      `json:"size"`
	Metadata   Metadata   `json:"metadata"`
}

// PageInfo addresses one page of a multi-page document.
type PageInfo struct {
	DocumentID string `json:"document_id"`
	PageNumber int    `json:"page_number"`
	TotalPages int    `json:"total_pages"`
	URL        string `json:"url"`
	MimeType   string `json:"mime_type"`
	// PageParam is a URL fragment selecting the page, e.g. "#page=3" for
	// PDFs. Empty for formats without fragment addressing.
	PageParam string `json:"page_param,omitempty"`
}

// PageThumbnail describes a page preview image placeholder.
type PageThumbnail struct {
	DocumentID   string `json:"document_id"`
	PageNumber   int    `json:"page_number"`
	TotalPages   int    `json:"total_pages"`
	ThumbnailURL string `json:"thumbnail_url"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
}

// ViewingSession tracks per-document reading position. Sessions are UI
// state, persisted in their own collection keyed by document ID.
type ViewingSession struct {
	CurrentPage int       `json:"current_page"`
	LastViewed  time.Time `json:"last_viewed"`
}
