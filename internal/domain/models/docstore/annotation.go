package docstore

import (
	"time"
)

// AnnotationType classifies the freeform marks users can attach to a page.
type AnnotationType string

const (
	AnnotationHighlight     AnnotationType = "highlight"
	AnnotationComment       AnnotationType = "comment"
	AnnotationDrawing       AnnotationType = "drawing"
	AnnotationStickyNote    AnnotationType = "sticky_note"
	AnnotationUnderline     AnnotationType = "underline"
	AnnotationStrikethrough AnnotationType = "strikethrough"
)

// Valid reports whether t is one of the recognized annotation types.
func (t AnnotationType) Valid() bool {
	switch t {
	case AnnotationHighlight, AnnotationComment, AnnotationDrawing,
		AnnotationStickyNote, AnnotationUnderline, AnnotationStrikethrough:
		return true
	default:
		return false
	}
}

// Position locates an annotation on a page.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Annotation is a page-scoped mark on a document, owned by its creator.
// Only the creator may edit it; the creator or the document owner may
// delete it.
type Annotation struct {
	ID         string            `json:"id"`
	DocumentID string            `json:"document_id"`
	PageNumber int               `json:"page_number"`
	Type       AnnotationType    `json:"type"`
	Position   Position          `json:"position"`
	Content    string            `json:"content"`
	Style      map[string]string `json:"style,omitempty"`
	CreatedBy  string            `json:"created_by"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}
