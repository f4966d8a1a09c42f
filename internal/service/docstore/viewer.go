package docstore

import (
	"context"
	"log/slog"
	"strings"
	"time"

	models "docvault/internal/domain/models/docstore"
	"docvault/internal/domain/repositories"
	docstoreSvc "docvault/internal/domain/services/docstore"
)

type viewerService struct {
	store  repositories.Store
	logger *slog.Logger
}

// NewViewerService creates a new viewer service
func NewViewerService(store repositories.Store, logger *slog.Logger) docstoreSvc.ViewerService {
	return &viewerService{
		store:  store,
		logger: logger,
	}
}

// ViewURL returns the current version's file reference. Requires view
// access.
func (s *viewerService) ViewURL(ctx context.Context, documentID, userID string) (*models.ViewInfo, error) {
	return s.viewInfo(ctx, documentID, userID, models.LevelView)
}

// DownloadURL returns the current version's file reference. Requires
// download-or-higher access.
func (s *viewerService) DownloadURL(ctx context.Context, documentID, userID string) (*models.ViewInfo, error) {
	return s.viewInfo(ctx, documentID, userID, models.LevelDownload)
}

func (s *viewerService) viewInfo(ctx context.Context, documentID, userID string, level models.PermissionLevel) (*models.ViewInfo, error) {
	docs, err := s.store.LoadDocuments(ctx)
	if err != nil {
		return nil, err
	}

	idx, ok := findDocument(docs, documentID)
	if !ok {
		return nil, errDocumentNotFound(documentID)
	}
	doc := &docs[idx]

	if err := requireLevel(doc, userID, level); err != nil {
		return nil, err
	}

	return &models.ViewInfo{
		URL:      doc.URL,
		MimeType: doc.MimeType,
		Name:     doc.Name,
		Size:     doc.Size,
	}, nil
}

// Preview maps the document's MIME type to the viewer component that should
// render it
func (s *viewerService) Preview(ctx context.Context, documentID string) (*models.PreviewConfig, error) {
	docs, err := s.store.LoadDocuments(ctx)
	if err != nil {
		return nil, err
	}

	idx, ok := findDocument(docs, documentID)
	if !ok {
		return nil, errDocumentNotFound(documentID)
	}
	doc := docs[idx]

	return &models.PreviewConfig{
		DocumentID: doc.ID,
		URL:        doc.URL,
		MimeType:   doc.MimeType,
		ViewerType: viewerTypeFor(doc.MimeType),
		Name:       doc.Name,
		Size:       doc.Size,
		Metadata:   doc.Metadata,
	}, nil
}

// TrackView appends a view event and bumps the counter
func (s *viewerService) TrackView(ctx context.Context, documentID, userID string) error {
	docs, err := s.store.LoadDocuments(ctx)
	if err != nil {
		return err
	}

	idx, ok := findDocument(docs, documentID)
	if !ok {
		return errDocumentNotFound(documentID)
	}
	doc := &docs[idx]

	now := time.Now().UTC()
	doc.ViewCount++
	doc.LastViewed = &now
	doc.ViewHistory = append(doc.ViewHistory, models.ViewEvent{
		UserID:    userID,
		Timestamp: now,
	})

	if err := s.store.SaveDocuments(ctx, docs); err != nil {
		return err
	}

	s.logger.Debug("view tracked", "document_id", documentID, "user", userID, "count", doc.ViewCount)

	return nil
}

// History returns the document's view audit trail
func (s *viewerService) History(ctx context.Context, documentID string) ([]models.ViewEvent, error) {
	docs, err := s.store.LoadDocuments(ctx)
	if err != nil {
		return nil, err
	}

	idx, ok := findDocument(docs, documentID)
	if !ok {
		return nil, errDocumentNotFound(documentID)
	}
	return docs[idx].ViewHistory, nil
}

// viewerTypeFor picks the rendering component for a MIME type
func viewerTypeFor(mimeType string) models.ViewerType {
	switch {
	case mimeType == "application/pdf":
		return models.ViewerPDF
	case strings.Contains(mimeType, "wordprocessingml") || mimeType == "application/msword":
		return models.ViewerDocx
	case strings.Contains(mimeType, "spreadsheetml") || mimeType == "application/vnd.ms-excel" || mimeType == "text/csv":
		return models.ViewerXlsx
	case strings.HasPrefix(mimeType, "image/"):
		return models.ViewerImage
	case strings.HasPrefix(mimeType, "text/"):
		return models.ViewerText
	default:
		return models.ViewerUnknown
	}
}
