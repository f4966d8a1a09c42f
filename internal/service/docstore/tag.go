package docstore

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"docvault/internal/domain"
	models "docvault/internal/domain/models/docstore"
	"docvault/internal/domain/repositories"
	docstoreSvc "docvault/internal/domain/services/docstore"
)

type tagService struct {
	store  repositories.Store
	logger *slog.Logger
}

// NewTagService creates a new tag service
func NewTagService(store repositories.Store, logger *slog.Logger) docstoreSvc.TagService {
	return &tagService{
		store:  store,
		logger: logger,
	}
}

// AddTags unions the normalized tags into the document's tag set
func (s *tagService) AddTags(ctx context.Context, documentID string, tags []string) (*models.Document, error) {
	cleaned, err := requireTags(tags)
	if err != nil {
		return nil, err
	}

	return s.mutate(ctx, documentID, func(doc *models.Document) {
		existing := make(map[string]struct{}, len(doc.Metadata.Tags))
		for _, tag := range doc.Metadata.Tags {
			existing[tag] = struct{}{}
		}
		for _, tag := range cleaned {
			if _, dup := existing[tag]; !dup {
				doc.Metadata.Tags = append(doc.Metadata.Tags, tag)
				existing[tag] = struct{}{}
			}
		}
	})
}

// RemoveTags subtracts the normalized tags from the document's tag set
func (s *tagService) RemoveTags(ctx context.Context, documentID string, tags []string) (*models.Document, error) {
	if len(tags) == 0 {
		return nil, &domain.ValidationError{Message: "tags must be a non-empty list"}
	}

	remove := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		remove[strings.ToLower(strings.TrimSpace(tag))] = struct{}{}
	}

	return s.mutate(ctx, documentID, func(doc *models.Document) {
		kept := doc.Metadata.Tags[:0:0]
		for _, tag := range doc.Metadata.Tags {
			if _, drop := remove[tag]; !drop {
				kept = append(kept, tag)
			}
		}
		doc.Metadata.Tags = kept
	})
}

// SetTags replaces the document's tag set wholesale. An empty list clears
// all tags.
func (s *tagService) SetTags(ctx context.Context, documentID string, tags []string) (*models.Document, error) {
	cleaned := normalizeTags(tags)

	return s.mutate(ctx, documentID, func(doc *models.Document) {
		doc.Metadata.Tags = cleaned
	})
}

// AllTags scans every document and returns the union of all tags, sorted
// ascending with no duplicates
func (s *tagService) AllTags(ctx context.Context) ([]string, error) {
	docs, err := s.store.LoadDocuments(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	tags := []string{}
	for _, doc := range docs {
		for _, tag := range doc.Metadata.Tags {
			if _, dup := seen[tag]; !dup {
				seen[tag] = struct{}{}
				tags = append(tags, tag)
			}
		}
	}
	sort.Strings(tags)
	return tags, nil
}

// FindByTag returns all documents carrying the (normalized) tag
func (s *tagService) FindByTag(ctx context.Context, tag string) ([]models.Document, error) {
	docs, err := s.store.LoadDocuments(ctx)
	if err != nil {
		return nil, err
	}

	search := strings.ToLower(strings.TrimSpace(tag))
	matches := []models.Document{}
	for _, doc := range docs {
		if doc.HasTag(search) {
			matches = append(matches, doc)
		}
	}
	return matches, nil
}

// mutate runs one load → change → save round trip on a single document and
// bumps its metadata timestamp.
func (s *tagService) mutate(ctx context.Context, documentID string, change func(*models.Document)) (*models.Document, error) {
	docs, err := s.store.LoadDocuments(ctx)
	if err != nil {
		return nil, err
	}

	idx, ok := findDocument(docs, documentID)
	if !ok {
		return nil, errDocumentNotFound(documentID)
	}

	doc := &docs[idx]
	change(doc)
	doc.Metadata.UpdatedAt = time.Now().UTC()

	if err := s.store.SaveDocuments(ctx, docs); err != nil {
		return nil, err
	}

	s.logger.Debug("tags updated", "document_id", documentID, "tags", doc.Metadata.Tags)

	return doc, nil
}

// requireTags normalizes the input and rejects empty or all-blank lists
func requireTags(tags []string) ([]string, error) {
	if len(tags) == 0 {
		return nil, &domain.ValidationError{Message: "tags must be a non-empty list"}
	}
	cleaned := normalizeTags(tags)
	if len(cleaned) == 0 {
		return nil, &domain.ValidationError{Message: "no valid tags provided"}
	}
	return cleaned, nil
}
