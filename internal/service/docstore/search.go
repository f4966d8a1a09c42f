package docstore

import (
	"context"
	"log/slog"
	"strings"

	models "docvault/internal/domain/models/docstore"
	"docvault/internal/domain/repositories"
	docstoreSvc "docvault/internal/domain/services/docstore"
)

type searchService struct {
	store  repositories.Store
	logger *slog.Logger
}

// NewSearchService creates a new search service
func NewSearchService(store repositories.Store, logger *slog.Logger) docstoreSvc.SearchService {
	return &searchService{
		store:  store,
		logger: logger,
	}
}

// ByKeyword matches the keyword case-insensitively against title,
// description, tags, and the original file name. An empty keyword matches
// everything.
func (s *searchService) ByKeyword(ctx context.Context, keyword string) ([]models.Document, error) {
	docs, err := s.store.LoadDocuments(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(keyword))
	if needle == "" {
		return docs, nil
	}

	matches := []models.Document{}
	for _, doc := range docs {
		if matchesKeyword(doc, needle) {
			matches = append(matches, doc)
		}
	}

	s.logger.Debug("keyword search", "keyword", needle, "hits", len(matches))

	return matches, nil
}

// Advanced applies every populated filter conjunctively
func (s *searchService) Advanced(ctx context.Context, opts *models.SearchOptions) ([]models.Document, error) {
	docs, err := s.store.LoadDocuments(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(opts.Keyword))

	matches := []models.Document{}
	for _, doc := range docs {
		if needle != "" && !matchesKeyword(doc, needle) {
			continue
		}
		if len(opts.FileTypes) > 0 && !matchesFileType(doc, opts.FileTypes) {
			continue
		}
		if len(opts.Tags) > 0 && !matchesAllTags(doc, opts.Tags) {
			continue
		}
		if opts.DateFrom != nil && doc.Metadata.CreatedAt.Before(*opts.DateFrom) {
			continue
		}
		if opts.DateTo != nil && doc.Metadata.CreatedAt.After(*opts.DateTo) {
			continue
		}
		matches = append(matches, doc)
	}

	s.logger.Debug("advanced search",
		"keyword", needle,
		"file_types", opts.FileTypes,
		"tags", opts.Tags,
		"hits", len(matches),
	)

	return matches, nil
}

func matchesKeyword(doc models.Document, needle string) bool {
	if strings.Contains(strings.ToLower(doc.Metadata.Title), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(doc.Metadata.Description), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(doc.Name), needle) {
		return true
	}
	for _, tag := range doc.Metadata.Tags {
		if strings.Contains(tag, needle) {
			return true
		}
	}
	return false
}

func matchesFileType(doc models.Document, mimeTypes []string) bool {
	for _, mime := range mimeTypes {
		if strings.EqualFold(doc.MimeType, mime) {
			return true
		}
	}
	return false
}

// matchesAllTags requires every requested tag to be present on the document
func matchesAllTags(doc models.Document, tags []string) bool {
	for _, tag := range tags {
		if !doc.HasTag(strings.ToLower(strings.TrimSpace(tag))) {
			return false
		}
	}
	return true
}
