package docstore

import (
	"context"

	"docvault/internal/domain/models/docstore"
)

// AnnotationService manages page-scoped annotations. All mutations require
// edit-or-higher access to the parent document; updates are further limited
// to the annotation's author, deletions to the author or the document owner.
type AnnotationService interface {
	// Add creates an annotation on the document
	Add(ctx context.Context, documentID string, req *AddAnnotationRequest) (*docstore.Annotation, error)

	// List returns all annotations on the document
	List(ctx context.Context, documentID string) ([]docstore.Annotation, error)

	// ListForPage returns the annotations on one page
	ListForPage(ctx context.Context, documentID string, pageNumber int) ([]docstore.Annotation, error)

	// Update modifies an annotation's mutable fields
	Update(ctx context.Context, documentID, annotationID string, req *UpdateAnnotationRequest) (*docstore.Annotation, error)

	// Delete removes an annotation
	Delete(ctx context.Context, documentID, annotationID, userID string) error
}

// AddAnnotationRequest represents an annotation creation request.
// PageNumber defaults to 1 and Position to the origin when omitted.
type AddAnnotationRequest struct {
	Type       docstore.AnnotationType `json:"type"`
	PageNumber int                     `json:"page_number,omitempty"`
	Position   *docstore.Position      `json:"position,omitempty"`
	Content    string                  `json:"content,omitempty"`
	Style      map[string]string       `json:"style,omitempty"`
	UserID     string                  `json:"-"` // Set by handler from identity context
}

// UpdateAnnotationRequest represents an annotation update request
type UpdateAnnotationRequest struct {
	PageNumber *int               `json:"page_number,omitempty"`
	Position   *docstore.Position `json:"position,omitempty"`
	Content    *string            `json:"content,omitempty"`
	Style      map[string]string  `json:"style,omitempty"`
	UserID     string             `json:"-"` // Set by handler from identity context
}
