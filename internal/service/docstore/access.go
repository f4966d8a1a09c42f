package docstore

import (
	"context"
	"fmt"
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"docvault/internal/domain"
	models "docvault/internal/domain/models/docstore"
	"docvault/internal/domain/repositories"
	docstoreSvc "docvault/internal/domain/services/docstore"
)

type accessService struct {
	store  repositories.Store
	logger *slog.Logger
}

// NewAccessService creates a new access control service
func NewAccessService(store repositories.Store, logger *slog.Logger) docstoreSvc.AccessService {
	return &accessService{
		store:  store,
		logger: logger,
	}
}

// Grant upserts one ACL entry keyed by user ID
func (s *accessService) Grant(ctx context.Context, documentID string, req *docstoreSvc.GrantRequest) (*models.Document, error) {
	if err := validation.ValidateStruct(req,
		validation.Field(&req.UserID, validation.Required),
	); err != nil {
		return nil, &domain.ValidationError{Message: err.Error()}
	}
	if !req.Level.Valid() {
		return nil, &domain.ValidationError{
			Message: fmt.Sprintf("invalid permission level: %s", req.Level),
		}
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
	updated := false
	for i := range doc.Permissions.Access {
		if doc.Permissions.Access[i].UserID == req.UserID {
			doc.Permissions.Access[i].Level = req.Level
			updated = true
			break
		}
	}
	if !updated {
		doc.Permissions.Access = append(doc.Permissions.Access, models.AccessEntry{
			UserID: req.UserID,
			Level:  req.Level,
		})
	}

	if err := s.store.SaveDocuments(ctx, docs); err != nil {
		return nil, err
	}

	s.logger.Info("permission granted",
		"document_id", documentID,
		"user_id", req.UserID,
		"level", req.Level,
	)

	return doc, nil
}

// Revoke removes the ACL entry for the user. Revoking a user without an
// entry returns the document unchanged.
func (s *accessService) Revoke(ctx context.Context, documentID, userID string) (*models.Document, error) {
	docs, err := s.store.LoadDocuments(ctx)
	if err != nil {
		return nil, err
	}

	idx, ok := findDocument(docs, documentID)
	if !ok {
		return nil, errDocumentNotFound(documentID)
	}

	doc := &docs[idx]
	access := doc.Permissions.Access[:0:0]
	for _, entry := range doc.Permissions.Access {
		if entry.UserID != userID {
			access = append(access, entry)
		}
	}
	if len(access) == len(doc.Permissions.Access) {
		return doc, nil
	}
	doc.Permissions.Access = access

	if err := s.store.SaveDocuments(ctx, docs); err != nil {
		return nil, err
	}

	s.logger.Info("permission revoked", "document_id", documentID, "user_id", userID)

	return doc, nil
}

// Check compares the user's level rank against the required rank. Unknown
// levels rank zero, which denies.
func (s *accessService) Check(ctx context.Context, documentID, userID string, required models.PermissionLevel) (bool, error) {
	docs, err := s.store.LoadDocuments(ctx)
	if err != nil {
		return false, err
	}

	idx, ok := findDocument(docs, documentID)
	if !ok {
		return false, errDocumentNotFound(documentID)
	}

	return docs[idx].Permissions.Allows(userID, required), nil
}

// TransferOwnership reassigns the owner when the supplied current owner
// matches the stored one. There is no authentication, so the match is
// advisory only.
func (s *accessService) TransferOwnership(ctx context.Context, documentID string, req *docstoreSvc.TransferOwnershipRequest) (*models.Document, error) {
	if err := validation.ValidateStruct(req,
		validation.Field(&req.CurrentOwnerID, validation.Required),
		validation.Field(&req.NewOwnerID, validation.Required),
	); err != nil {
		return nil, &domain.ValidationError{Message: err.Error()}
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
	if doc.Permissions.Owner != req.CurrentOwnerID {
		return nil, &domain.ForbiddenError{Message: "only the current owner can transfer ownership"}
	}

	doc.Permissions.Owner = req.NewOwnerID

	if err := s.store.SaveDocuments(ctx, docs); err != nil {
		return nil, err
	}

	s.logger.Info("ownership transferred",
		"document_id", documentID,
		"from", req.CurrentOwnerID,
		"to", req.NewOwnerID,
	)

	return doc, nil
}

// ListUsers returns every access entry plus the owner (implicit admin)
func (s *accessService) ListUsers(ctx context.Context, documentID string) ([]docstoreSvc.DocumentUser, error) {
	docs, err := s.store.LoadDocuments(ctx)
	if err != nil {
		return nil, err
	}

	idx, ok := findDocument(docs, documentID)
	if !ok {
		return nil, errDocumentNotFound(documentID)
	}

	doc := docs[idx]
	users := make([]docstoreSvc.DocumentUser, 0, len(doc.Permissions.Access)+1)
	for _, entry := range doc.Permissions.Access {
		users = append(users, docstoreSvc.DocumentUser{
			UserID: entry.UserID,
			Level:  entry.Level,
		})
	}
	if doc.Permissions.Owner != "" {
		users = append(users, docstoreSvc.DocumentUser{
			UserID:  doc.Permissions.Owner,
			Level:   models.LevelAdmin,
			IsOwner: true,
		})
	}
	return users, nil
}
