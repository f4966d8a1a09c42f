package docstore

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	models "docvault/internal/domain/models/docstore"
	"docvault/internal/domain/repositories"
	docstoreSvc "docvault/internal/domain/services/docstore"
)

type documentService struct {
	store  repositories.Store
	files  *FileTypeRegistry
	logger *slog.Logger
}

// NewDocumentService creates a new document service
func NewDocumentService(store repositories.Store, files *FileTypeRegistry, logger *slog.Logger) docstoreSvc.DocumentService {
	return &documentService{
		store:  store,
		files:  files,
		logger: logger,
	}
}

// Upload validates the file and appends a new document to the collection.
// The new document starts with exactly one version, numbered 1 and current.
func (s *documentService) Upload(ctx context.Context, req *docstoreSvc.UploadDocumentRequest) (*models.Document, error) {
	mime, err := s.files.Validate(req.File)
	if err != nil {
		return nil, err
	}

	if req.FolderID != nil {
		folders, err := s.store.LoadFolders(ctx)
		if err != nil {
			return nil, err
		}
		if _, ok := findFolder(folders, *req.FolderID); !ok {
			return nil, errFolderNotFound(*req.FolderID)
		}
	}

	now := time.Now().UTC()
	fileRef := newFileRef()

	title := req.Title
	if title == "" {
		title = req.File.Name
	}

	version := models.Version{
		ID:        uuid.NewString(),
		Number:    1,
		FileRef:   fileRef,
		Name:      req.File.Name,
		Size:      req.File.Size,
		MimeType:  mime,
		CreatedBy: req.UserID,
		CreatedAt: now,
	}

	doc := models.Document{
		ID:           uuid.NewString(),
		Name:         req.File.Name,
		Size:         req.File.Size,
		MimeType:     mime,
		LastModified: req.File.LastModified,
		URL:          fileRef,
		Metadata: models.Metadata{
			Title:       title,
			Description: req.Description,
			Tags:        normalizeTags(req.Tags),
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		Versions:       []models.Version{version},
		CurrentVersion: 1,
		FolderID:       req.FolderID,
		Permissions: models.Permissions{
			Owner:  req.UserID,
			Access: []models.AccessEntry{},
		},
		Annotations: []models.Annotation{},
	}

	docs, err := s.store.LoadDocuments(ctx)
	if err != nil {
		return nil, err
	}
	docs = append(docs, doc)
	if err := s.store.SaveDocuments(ctx, docs); err != nil {
		return nil, err
	}

	s.logger.Info("document uploaded",
		"id", doc.ID,
		"name", doc.Name,
		"mime_type", doc.MimeType,
		"size", doc.Size,
		"owner", req.UserID,
	)

	return &doc, nil
}

// GetDocument retrieves a document by ID
func (s *documentService) GetDocument(ctx context.Context, documentID string) (*models.Document, error) {
	docs, err := s.store.LoadDocuments(ctx)
	if err != nil {
		return nil, err
	}

	idx, ok := findDocument(docs, documentID)
	if !ok {
		return nil, errDocumentNotFound(documentID)
	}
	return &docs[idx], nil
}

// ListDocuments returns the whole collection
func (s *documentService) ListDocuments(ctx context.Context) ([]models.Document, error) {
	return s.store.LoadDocuments(ctx)
}

// UpdateMetadata updates title/description/tags for callers holding
// edit-or-higher access (the owner always qualifies)
func (s *documentService) UpdateMetadata(ctx context.Context, documentID string, req *docstoreSvc.UpdateMetadataRequest) (*models.Document, error) {
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

	if req.Title != nil {
		doc.Metadata.Title = *req.Title
	}
	if req.Description != nil {
		doc.Metadata.Description = *req.Description
	}
	if req.Tags != nil {
		doc.Metadata.Tags = normalizeTags(*req.Tags)
	}
	doc.Metadata.UpdatedAt = time.Now().UTC()

	if err := s.store.SaveDocuments(ctx, docs); err != nil {
		return nil, err
	}

	s.logger.Info("document metadata updated", "id", documentID, "user", req.UserID)

	return doc, nil
}

// DeleteDocument removes a document from the collection
func (s *documentService) DeleteDocument(ctx context.Context, documentID string) error {
	docs, err := s.store.LoadDocuments(ctx)
	if err != nil {
		return err
	}

	remaining := docs[:0:0]
	for _, doc := range docs {
		if doc.ID != documentID {
			remaining = append(remaining, doc)
		}
	}
	if len(remaining) == len(docs) {
		return errDocumentNotFound(documentID)
	}

	if err := s.store.SaveDocuments(ctx, remaining); err != nil {
		return err
	}

	s.logger.Info("document deleted", "id", documentID)
	return nil
}
