package docstore

import (
	"context"
	"log/slog"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"docvault/internal/config"
	"docvault/internal/domain"
	models "docvault/internal/domain/models/docstore"
	"docvault/internal/domain/repositories"
	docstoreSvc "docvault/internal/domain/services/docstore"
)

type folderService struct {
	store  repositories.Store
	logger *slog.Logger
}

// NewFolderService creates a new folder service
func NewFolderService(store repositories.Store, logger *slog.Logger) docstoreSvc.FolderService {
	return &folderService{
		store:  store,
		logger: logger,
	}
}

// CreateFolder creates a new folder, optionally under a parent
func (s *folderService) CreateFolder(ctx context.Context, req *docstoreSvc.CreateFolderRequest) (*models.Folder, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, &domain.ValidationError{Message: err.Error()}
	}

	folders, err := s.store.LoadFolders(ctx)
	if err != nil {
		return nil, err
	}

	if req.ParentID != nil {
		if _, ok := findFolder(folders, *req.ParentID); !ok {
			return nil, errFolderNotFound(*req.ParentID)
		}
	}

	now := time.Now().UTC()
	folder := models.Folder{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(req.Name),
		ParentID:  req.ParentID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	folders = append(folders, folder)
	if err := s.store.SaveFolders(ctx, folders); err != nil {
		return nil, err
	}

	s.logger.Info("folder created",
		"id", folder.ID,
		"name", folder.Name,
		"parent_id", folder.ParentID,
	)

	return &folder, nil
}

// GetFolder retrieves a folder by ID
func (s *folderService) GetFolder(ctx context.Context, id string) (*models.Folder, error) {
	folders, err := s.store.LoadFolders(ctx)
	if err != nil {
		return nil, err
	}

	idx, ok := findFolder(folders, id)
	if !ok {
		return nil, errFolderNotFound(id)
	}
	return &folders[idx], nil
}

// ListFolders returns the flat folder collection
func (s *folderService) ListFolders(ctx context.Context) ([]models.Folder, error) {
	return s.store.LoadFolders(ctx)
}

// UpdateFolder renames and/or moves a folder. Moves are rejected when they
// would make the folder its own ancestor.
func (s *folderService) UpdateFolder(ctx context.Context, id string, req *docstoreSvc.UpdateFolderRequest) (*models.Folder, error) {
	if req.Name == nil && !req.ParentID.Present {
		return nil, &domain.ValidationError{Message: "at least one field must be provided"}
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, &domain.ValidationError{Message: "folder name cannot be empty"}
	}

	folders, err := s.store.LoadFolders(ctx)
	if err != nil {
		return nil, err
	}

	idx, ok := findFolder(folders, id)
	if !ok {
		return nil, errFolderNotFound(id)
	}
	folder := &folders[idx]

	if req.Name != nil {
		folder.Name = strings.TrimSpace(*req.Name)
	}

	// Tri-state: only touch the parent if the field was present in the request
	if req.ParentID.Present {
		if req.ParentID.Value != nil && *req.ParentID.Value != "" {
			newParentID := *req.ParentID.Value
			if newParentID == id {
				return nil, &domain.ValidationError{Message: "folder cannot be its own parent"}
			}
			if _, ok := findFolder(folders, newParentID); !ok {
				return nil, &domain.ValidationError{Message: "parent folder does not exist"}
			}
			if err := validateNoCircularReference(folders, id, newParentID); err != nil {
				return nil, err
			}
			folder.ParentID = &newParentID
		} else {
			// null = move to root
			folder.ParentID = nil
		}
	}

	folder.UpdatedAt = time.Now().UTC()

	if err := s.store.SaveFolders(ctx, folders); err != nil {
		return nil, err
	}

	s.logger.Info("folder updated",
		"id", folder.ID,
		"name", folder.Name,
		"parent_id", folder.ParentID,
	)

	return folder, nil
}

// DeleteFolder removes an empty folder. Any child folder or filed document
// blocks the deletion with a conflict.
func (s *folderService) DeleteFolder(ctx context.Context, id string) error {
	folders, err := s.store.LoadFolders(ctx)
	if err != nil {
		return err
	}

	idx, ok := findFolder(folders, id)
	if !ok {
		return errFolderNotFound(id)
	}

	for _, folder := range folders {
		if folder.ParentID != nil && *folder.ParentID == id {
			return &domain.ConflictError{
				Message:      "cannot delete folder with subfolders",
				ResourceType: "folder",
				ResourceID:   folder.ID,
			}
		}
	}

	docs, err := s.store.LoadDocuments(ctx)
	if err != nil {
		return err
	}
	for _, doc := range docs {
		if doc.FolderID != nil && *doc.FolderID == id {
			return &domain.ConflictError{
				Message:      "cannot delete folder containing documents",
				ResourceType: "document",
				ResourceID:   doc.ID,
			}
		}
	}

	remaining := append(folders[:idx:idx], folders[idx+1:]...)
	if err := s.store.SaveFolders(ctx, remaining); err != nil {
		return err
	}

	s.logger.Info("folder deleted", "id", id)
	return nil
}

// MoveDocuments sets the folder on every matching document and reports
// whether anything changed
func (s *folderService) MoveDocuments(ctx context.Context, req *docstoreSvc.MoveDocumentsRequest) (bool, error) {
	if req.FolderID != nil {
		folders, err := s.store.LoadFolders(ctx)
		if err != nil {
			return false, err
		}
		if _, ok := findFolder(folders, *req.FolderID); !ok {
			return false, &domain.ValidationError{Message: "destination folder does not exist"}
		}
	}

	docs, err := s.store.LoadDocuments(ctx)
	if err != nil {
		return false, err
	}

	wanted := make(map[string]struct{}, len(req.DocumentIDs))
	for _, id := range req.DocumentIDs {
		wanted[id] = struct{}{}
	}

	moved := false
	now := time.Now().UTC()
	for i := range docs {
		if _, ok := wanted[docs[i].ID]; !ok {
			continue
		}
		docs[i].FolderID = req.FolderID
		docs[i].Metadata.UpdatedAt = now
		moved = true
	}

	if !moved {
		return false, nil
	}

	if err := s.store.SaveDocuments(ctx, docs); err != nil {
		return false, err
	}

	s.logger.Info("documents moved",
		"count", len(req.DocumentIDs),
		"folder_id", req.FolderID,
	)

	return true, nil
}

// validateCreateRequest validates a folder creation request
func (s *folderService) validateCreateRequest(req *docstoreSvc.CreateFolderRequest) error {
	name := strings.TrimSpace(req.Name)
	return validation.Validate(name,
		validation.Required.Error("folder name is required"),
		validation.Length(1, config.MaxFolderNameLength),
	)
}

// validateNoCircularReference walks the ancestor chain of the proposed
// parent and rejects the move if the folder itself shows up in it.
func validateNoCircularReference(folders []models.Folder, folderID, newParentID string) error {
	currentID := newParentID
	for {
		idx, ok := findFolder(folders, currentID)
		if !ok {
			// Dangling parent reference terminates the chain
			return nil
		}
		parent := folders[idx].ParentID
		if parent == nil {
			return nil
		}
		if *parent == folderID {
			return &domain.ValidationError{
				Message: "cannot move folder under one of its own descendants",
			}
		}
		currentID = *parent
	}
}
