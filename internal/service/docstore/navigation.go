package docstore

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"docvault/internal/domain"
	models "docvault/internal/domain/models/docstore"
	"docvault/internal/domain/repositories"
	docstoreSvc "docvault/internal/domain/services/docstore"
)

// Page size heuristics, in bytes. There are no stored document bytes to
// inspect, so page counts are estimated from the file size.
const (
	pdfPageBytes   = 50 * 1024
	wordPageBytes  = 20 * 1024
	slidePageBytes = 100 * 1024

	thumbnailWidth  = 120
	thumbnailHeight = 160
)

type navigationService struct {
	store  repositories.Store
	logger *slog.Logger
}

// NewNavigationService creates a new page navigation service
func NewNavigationService(store repositories.Store, logger *slog.Logger) docstoreSvc.NavigationService {
	return &navigationService{
		store:  store,
		logger: logger,
	}
}

// PageCount estimates the page count from the file size and persists it on
// the document. A previously computed count is reused.
func (s *navigationService) PageCount(ctx context.Context, documentID string) (int, error) {
	docs, err := s.store.LoadDocuments(ctx)
	if err != nil {
		return 0, err
	}

	idx, ok := findDocument(docs, documentID)
	if !ok {
		return 0, errDocumentNotFound(documentID)
	}
	doc := &docs[idx]

	if doc.PageCount > 0 {
		return doc.PageCount, nil
	}

	doc.PageCount = estimatePageCount(doc.MimeType, doc.Size)
	if err := s.store.SaveDocuments(ctx, docs); err != nil {
		return 0, err
	}

	s.logger.Debug("page count estimated", "document_id", documentID, "pages", doc.PageCount)

	return doc.PageCount, nil
}

// PageContent addresses one page of the document
func (s *navigationService) PageContent(ctx context.Context, documentID string, pageNumber int) (*models.PageInfo, error) {
	doc, total, err := s.documentWithPageCount(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if pageNumber < 1 || pageNumber > total {
		return nil, &domain.ValidationError{
			Message: fmt.Sprintf("page %d out of range (document has %d pages)", pageNumber, total),
		}
	}

	info := &models.PageInfo{
		DocumentID: doc.ID,
		PageNumber: pageNumber,
		TotalPages: total,
		URL:        doc.URL,
		MimeType:   doc.MimeType,
	}
	if doc.MimeType == "application/pdf" {
		info.PageParam = fmt.Sprintf("#page=%d", pageNumber)
	}
	return info, nil
}

// PageThumbnail returns the placeholder thumbnail for one page
func (s *navigationService) PageThumbnail(ctx context.Context, documentID string, pageNumber int) (*models.PageThumbnail, error) {
	doc, total, err := s.documentWithPageCount(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if pageNumber < 1 || pageNumber > total {
		return nil, &domain.ValidationError{
			Message: fmt.Sprintf("page %d out of range (document has %d pages)", pageNumber, total),
		}
	}
	return thumbnailFor(doc, pageNumber, total), nil
}

// AllThumbnails returns thumbnails for every page in order
func (s *navigationService) AllThumbnails(ctx context.Context, documentID string) ([]models.PageThumbnail, error) {
	doc, total, err := s.documentWithPageCount(ctx, documentID)
	if err != nil {
		return nil, err
	}

	thumbnails := make([]models.PageThumbnail, 0, total)
	for page := 1; page <= total; page++ {
		thumbnails = append(thumbnails, *thumbnailFor(doc, page, total))
	}
	return thumbnails, nil
}

// SetCurrentPage records the reading position in the per-document viewing
// session
func (s *navigationService) SetCurrentPage(ctx context.Context, documentID string, pageNumber int) (*models.ViewingSession, error) {
	doc, total, err := s.documentWithPageCount(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if pageNumber < 1 || pageNumber > total {
		return nil, &domain.ValidationError{
			Message: fmt.Sprintf("page %d out of range (document has %d pages)", pageNumber, total),
		}
	}

	sessions, err := s.store.LoadSessions(ctx)
	if err != nil {
		return nil, err
	}
	if sessions == nil {
		sessions = map[string]models.ViewingSession{}
	}

	session := models.ViewingSession{
		CurrentPage: pageNumber,
		LastViewed:  time.Now().UTC(),
	}
	sessions[doc.ID] = session

	if err := s.store.SaveSessions(ctx, sessions); err != nil {
		return nil, err
	}

	s.logger.Debug("reading position saved", "document_id", doc.ID, "page", pageNumber)

	return &session, nil
}

// documentWithPageCount resolves the document and its (possibly freshly
// estimated and persisted) page count in one pass.
func (s *navigationService) documentWithPageCount(ctx context.Context, documentID string) (*models.Document, int, error) {
	docs, err := s.store.LoadDocuments(ctx)
	if err != nil {
		return nil, 0, err
	}

	idx, ok := findDocument(docs, documentID)
	if !ok {
		return nil, 0, errDocumentNotFound(documentID)
	}
	doc := &docs[idx]

	if doc.PageCount == 0 {
		doc.PageCount = estimatePageCount(doc.MimeType, doc.Size)
		if err := s.store.SaveDocuments(ctx, docs); err != nil {
			return nil, 0, err
		}
	}

	// Detach from the collection slice before returning
	copied := *doc
	return &copied, copied.PageCount, nil
}

// estimatePageCount derives a page count from file size. Images and unknown
// formats are single-page.
func estimatePageCount(mimeType string, size int64) int {
	var perPage int64
	switch {
	case mimeType == "application/pdf":
		perPage = pdfPageBytes
	case strings.Contains(mimeType, "wordprocessingml") || mimeType == "application/msword":
		perPage = wordPageBytes
	case strings.Contains(mimeType, "presentationml") || mimeType == "application/vnd.ms-powerpoint":
		perPage = slidePageBytes
	default:
		return 1
	}

	pages := int(size / perPage)
	if size%perPage != 0 || pages == 0 {
		pages++
	}
	return pages
}

func thumbnailFor(doc *models.Document, page, total int) *models.PageThumbnail {
	return &models.PageThumbnail{
		DocumentID:   doc.ID,
		PageNumber:   page,
		TotalPages:   total,
		ThumbnailURL: fmt.Sprintf("%s#thumb=%d", doc.URL, page),
		Width:        thumbnailWidth,
		Height:       thumbnailHeight,
	}
}
