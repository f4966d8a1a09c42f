package docstore

import (
	"context"
	"log/slog"

	models "docvault/internal/domain/models/docstore"
	"docvault/internal/domain/repositories"
	docstoreSvc "docvault/internal/domain/services/docstore"
)

type treeService struct {
	store  repositories.Store
	logger *slog.Logger
}

// NewTreeService creates a new folder tree service
func NewTreeService(store repositories.Store, logger *slog.Logger) docstoreSvc.TreeService {
	return &treeService{
		store:  store,
		logger: logger,
	}
}

// GetHierarchy assembles the flat folder collection into a forest. A folder
// whose parent is missing from the collection is promoted to a root rather
// than dropped.
func (s *treeService) GetHierarchy(ctx context.Context) ([]*models.FolderTreeNode, error) {
	folders, err := s.store.LoadFolders(ctx)
	if err != nil {
		return nil, err
	}

	nodes := make(map[string]*models.FolderTreeNode, len(folders))
	for i := range folders {
		f := folders[i]
		nodes[f.ID] = &models.FolderTreeNode{
			ID:        f.ID,
			Name:      f.Name,
			ParentID:  f.ParentID,
			CreatedAt: f.CreatedAt,
			UpdatedAt: f.UpdatedAt,
			Children:  []*models.FolderTreeNode{},
		}
	}

	roots := []*models.FolderTreeNode{}
	for i := range folders {
		node := nodes[folders[i].ID]
		if folders[i].ParentID == nil {
			roots = append(roots, node)
			continue
		}
		parent, ok := nodes[*folders[i].ParentID]
		if !ok {
			roots = append(roots, node)
			continue
		}
		parent.Children = append(parent.Children, node)
	}

	return roots, nil
}
