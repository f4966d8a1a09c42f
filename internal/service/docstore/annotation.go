package docstore

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"docvault/internal/domain"
	models "docvault/internal/domain/models/docstore"
	"docvault/internal/domain/repositories"
	docstoreSvc "docvault/internal/domain/services/docstore"
)

type annotationService struct {
	store  repositories.Store
	logger *slog.Logger
}

// NewAnnotationService creates a new annotation service
func NewAnnotationService(store repositories.Store, logger *slog.Logger) docstoreSvc.AnnotationService {
	return &annotationService{
		store:  store,
		logger: logger,
	}
}

// Add creates an annotation on the document. Requires edit access. Page
// number defaults to 1 and position to the origin.
func (s *annotationService) Add(ctx context.Context, documentID string, req *docstoreSvc.AddAnnotationRequest) (*models.Annotation, error) {
	if !req.Type.Valid() {
		return nil, &domain.ValidationError{
			Message: fmt.Sprintf("invalid annotation type: %s", req.Type),
		}
	}
	if req.PageNumber < 0 {
		return nil, &domain.ValidationError{Message: "page number cannot be negative"}
	}

	docs, err := s.store.LoadDocuments(ctx)
	if err != nil {
		return nil, err
	}

	idx, ok := findDocument(docs, documentID)
	if !ok {
		return nil, errDocumentNotFound(documentID)
	}
	doc := &docs[idx]

	if err := requireLevel(doc, req.UserID, models.LevelEdit); err != nil {
		return nil, err
	}

	page := req.PageNumber
	if page == 0 {
		page = 1
	}
	position := models.Position{}
	if req.Position != nil {
		position = *req.Position
	}
	style := req.Style
	if style == nil {
		style = map[string]string{}
	}

	now := time.Now().UTC()
	annotation := models.Annotation{
		ID:         uuid.NewString(),
		DocumentID: doc.ID,
		PageNumber: page,
		Type:       req.Type,
		Position:   position,
		Content:    req.Content,
		Style:      style,
		CreatedBy:  req.UserID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	doc.Annotations = append(doc.Annotations, annotation)
	doc.Metadata.UpdatedAt = now

	if err := s.store.SaveDocuments(ctx, docs); err != nil {
		return nil, err
	}

	s.logger.Info("annotation added",
		"document_id", documentID,
		"annotation_id", annotation.ID,
		"type", annotation.Type,
		"page", annotation.PageNumber,
		"user", req.UserID,
	)

	return &annotation, nil
}

// List returns all annotations on the document
func (s *annotationService) List(ctx context.Context, documentID string) ([]models.Annotation, error) {
	docs, err := s.store.LoadDocuments(ctx)
	if err != nil {
		return nil, err
	}

	idx, ok := findDocument(docs, documentID)
	if !ok {
		return nil, errDocumentNotFound(documentID)
	}
	return docs[idx].Annotations, nil
}

// ListForPage returns the annotations on one page
func (s *annotationService) ListForPage(ctx context.Context, documentID string, pageNumber int) ([]models.Annotation, error) {
	all, err := s.List(ctx, documentID)
	if err != nil {
		return nil, err
	}

	matches := []models.Annotation{}
	for _, annotation := range all {
		if annotation.PageNumber == pageNumber {
			matches = append(matches, annotation)
		}
	}
	return matches, nil
}

// Update modifies the annotation's mutable fields. Requires edit access on
// the document, and only the author may update; type and author are
// immutable.
func (s *annotationService) Update(ctx context.Context, documentID, annotationID string, req *docstoreSvc.UpdateAnnotationRequest) (*models.Annotation, error) {
	docs, err := s.store.LoadDocuments(ctx)
	if err != nil {
		return nil, err
	}

	idx, ok := findDocument(docs, documentID)
	if !ok {
		return nil, errDocumentNotFound(documentID)
	}
	doc := &docs[idx]

	if err := requireLevel(doc, req.UserID, models.LevelEdit); err != nil {
		return nil, err
	}

	aIdx := -1
	for i := range doc.Annotations {
		if doc.Annotations[i].ID == annotationID {
			aIdx = i
			break
		}
	}
	if aIdx < 0 {
		return nil, &domain.NotFoundError{Message: fmt.Sprintf("annotation %s not found", annotationID)}
	}

	annotation := &doc.Annotations[aIdx]
	if annotation.CreatedBy != req.UserID {
		return nil, &domain.ForbiddenError{Message: "only the author can update an annotation"}
	}

	if req.PageNumber != nil {
		if *req.PageNumber < 1 {
			return nil, &domain.ValidationError{Message: "page number must be at least 1"}
		}
		annotation.PageNumber = *req.PageNumber
	}
	if req.Position != nil {
		annotation.Position = *req.Position
	}
	if req.Content != nil {
		annotation.Content = *req.Content
	}
	if req.Style != nil {
		annotation.Style = req.Style
	}
	annotation.UpdatedAt = time.Now().UTC()

	if err := s.store.SaveDocuments(ctx, docs); err != nil {
		return nil, err
	}

	s.logger.Info("annotation updated",
		"document_id", documentID,
		"annotation_id", annotationID,
		"user", req.UserID,
	)

	return annotation, nil
}

// Delete removes the annotation. Requires edit access on the document, and
// only the author or the document owner may delete.
func (s *annotationService) Delete(ctx context.Context, documentID, annotationID, userID string) error {
	docs, err := s.store.LoadDocuments(ctx)
	if err != nil {
		return err
	}

	idx, ok := findDocument(docs, documentID)
	if !ok {
		return errDocumentNotFound(documentID)
	}
	doc := &docs[idx]

	if err := requireLevel(doc, userID, models.LevelEdit); err != nil {
		return err
	}

	aIdx := -1
	for i := range doc.Annotations {
		if doc.Annotations[i].ID == annotationID {
			aIdx = i
			break
		}
	}
	if aIdx < 0 {
		return &domain.NotFoundError{Message: fmt.Sprintf("annotation %s not found", annotationID)}
	}

	annotation := doc.Annotations[aIdx]
	if annotation.CreatedBy != userID && doc.Permissions.Owner != userID {
		return &domain.ForbiddenError{Message: "only the author or the document owner can delete an annotation"}
	}

	doc.Annotations = append(doc.Annotations[:aIdx:aIdx], doc.Annotations[aIdx+1:]...)
	doc.Metadata.UpdatedAt = time.Now().UTC()

	if err := s.store.SaveDocuments(ctx, docs); err != nil {
		return err
	}

	s.logger.Info("annotation deleted",
		"document_id", documentID,
		"annotation_id", annotationID,
		"user", userID,
	)

	return nil
}
