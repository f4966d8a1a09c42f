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

type versionService struct {
	store  repositories.Store
	files  *FileTypeRegistry
	logger *slog.Logger
}

// NewVersionService creates a new version service
func NewVersionService(store repositories.Store, files *FileTypeRegistry, logger *slog.Logger) docstoreSvc.VersionService {
	return &versionService{
		store:  store,
		files:  files,
		logger: logger,
	}
}

// CreateVersion appends a new version and makes it current. The document's
// URL and size mirror the new version; the MIME type must match the
// original upload exactly.
func (s *versionService) CreateVersion(ctx context.Context, documentID string, req *docstoreSvc.CreateVersionRequest) (*models.Version, error) {
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

	mime, err := s.files.Validate(req.File)
	if err != nil {
		return nil, err
	}

	// Type drift is not allowed across versions
	if mime != doc.MimeType {
		return nil, &domain.ValidationError{
			Message: "new version must be the same file type as the original document",
		}
	}

	now := time.Now().UTC()
	version := models.Version{
		ID:        uuid.NewString(),
		Number:    len(doc.Versions) + 1,
		FileRef:   newFileRef(),
		Name:      req.File.Name,
		Size:      req.File.Size,
		MimeType:  mime,
		Comment:   req.Comment,
		CreatedBy: req.UserID,
		CreatedAt: now,
	}

	doc.Versions = append(doc.Versions, version)
	doc.CurrentVersion = version.Number
	doc.URL = version.FileRef
	doc.Size = version.Size
	doc.Metadata.UpdatedAt = now

	if err := s.store.SaveDocuments(ctx, docs); err != nil {
		return nil, err
	}

	s.logger.Info("version created",
		"document_id", documentID,
		"version_id", version.ID,
		"number", version.Number,
		"user", req.UserID,
	)

	return &version, nil
}

// ListVersions returns all versions in order
func (s *versionService) ListVersions(ctx context.Context, documentID string) ([]models.Version, error) {
	docs, err := s.store.LoadDocuments(ctx)
	if err != nil {
		return nil, err
	}

	idx, ok := findDocument(docs, documentID)
	if !ok {
		return nil, errDocumentNotFound(documentID)
	}
	return docs[idx].Versions, nil
}

// GetVersion retrieves a version by its ID
func (s *versionService) GetVersion(ctx context.Context, documentID, versionID string) (*models.Version, error) {
	docs, err := s.store.LoadDocuments(ctx)
	if err != nil {
		return nil, err
	}

	idx, ok := findDocument(docs, documentID)
	if !ok {
		return nil, errDocumentNotFound(documentID)
	}

	version, ok := docs[idx].VersionByID(versionID)
	if !ok {
		return nil, &domain.NotFoundError{Message: fmt.Sprintf("version %s not found", versionID)}
	}
	return &version, nil
}

// GetVersionByNumber retrieves a version by its number
func (s *versionService) GetVersionByNumber(ctx context.Context, documentID string, number int) (*models.Version, error) {
	docs, err := s.store.LoadDocuments(ctx)
	if err != nil {
		return nil, err
	}

	idx, ok := findDocument(docs, documentID)
	if !ok {
		return nil, errDocumentNotFound(documentID)
	}

	version, ok := docs[idx].VersionByNumber(number)
	if !ok {
		return nil, &domain.NotFoundError{Message: fmt.Sprintf("version %d not found", number)}
	}
	return &version, nil
}

// SetCurrentVersion points the document at an existing version number and
// mirrors that version's file reference
func (s *versionService) SetCurrentVersion(ctx context.Context, documentID string, req *docstoreSvc.SetCurrentVersionRequest) (*models.Document, error) {
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

	version, ok := doc.VersionByNumber(req.Number)
	if !ok {
		return nil, &domain.NotFoundError{Message: fmt.Sprintf("version %d not found", req.Number)}
	}

	doc.CurrentVersion = version.Number
	doc.URL = version.FileRef
	doc.Size = version.Size
	doc.Metadata.UpdatedAt = time.Now().UTC()

	if err := s.store.SaveDocuments(ctx, docs); err != nil {
		return nil, err
	}

	s.logger.Info("current version changed",
		"document_id", documentID,
		"number", version.Number,
		"user", req.UserID,
	)

	return doc, nil
}

// DeleteVersion removes a version and renumbers the survivors densely
// (1..N in their existing relative order). Requires admin access. A
// document must always keep at least one version; if the current version
// was deleted, the surviving version that is now numbered highest becomes
// current.
func (s *versionService) DeleteVersion(ctx context.Context, documentID, versionID, userID string) error {
	docs, err := s.store.LoadDocuments(ctx)
	if err != nil {
		return err
	}

	idx, ok := findDocument(docs, documentID)
	if !ok {
		return errDocumentNotFound(documentID)
	}
	doc := &docs[idx]

	if err := requireLevel(doc, userID, models.LevelAdmin); err != nil {
		return err
	}

	if len(doc.Versions) <= 1 {
		return &domain.ConflictError{
			Message:      "cannot delete the only version of a document",
			ResourceType: "version",
			ResourceID:   versionID,
		}
	}

	target, ok := doc.VersionByID(versionID)
	if !ok {
		return &domain.NotFoundError{Message: fmt.Sprintf("version %s not found", versionID)}
	}
	wasCurrent := doc.CurrentVersion == target.Number

	survivors := make([]models.Version, 0, len(doc.Versions)-1)
	for _, v := range doc.Versions {
		if v.ID != versionID {
			survivors = append(survivors, v)
		}
	}
	for i := range survivors {
		survivors[i].Number = i + 1
	}
	doc.Versions = survivors

	if wasCurrent {
		latest := survivors[len(survivors)-1]
		doc.CurrentVersion = latest.Number
		doc.URL = latest.FileRef
		doc.Size = latest.Size
	} else if current, ok := doc.VersionByNumber(doc.CurrentVersion); !ok || current.FileRef != doc.URL {
		// Renumbering may have shifted the current version to a new number;
		// re-point the counter at the version whose file the document shows.
		for _, v := range survivors {
			if v.FileRef == doc.URL {
				doc.CurrentVersion = v.Number
				break
			}
		}
	}

	if err := s.store.SaveDocuments(ctx, docs); err != nil {
		return err
	}

	s.logger.Info("version deleted",
		"document_id", documentID,
		"version_id", versionID,
		"was_current", wasCurrent,
		"user", userID,
	)

	return nil
}
