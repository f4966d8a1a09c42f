package docstore

import (
	"context"
	"io"
	"log/slog"
	"testing"

	models "docvault/internal/domain/models/docstore"
	"docvault/internal/domain/repositories"
	docstoreSvc "docvault/internal/domain/services/docstore"
	"docvault/internal/repository/jsonstore"
	"docvault/internal/repository/memory"
)

// testEnv wires every service over an in-memory store
type testEnv struct {
	store       repositories.Store
	docs        docstoreSvc.DocumentService
	access      docstoreSvc.AccessService
	tags        docstoreSvc.TagService
	versions    docstoreSvc.VersionService
	folders     docstoreSvc.FolderService
	tree        docstoreSvc.TreeService
	annotations docstoreSvc.AnnotationService
	search      docstoreSvc.SearchService
	viewer      docstoreSvc.ViewerService
	nav         docstoreSvc.NavigationService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	files, err := NewFileTypeRegistry()
	if err != nil {
		t.Fatalf("load file type registry: %v", err)
	}

	store := jsonstore.New(memory.NewBlobStore())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &testEnv{
		store:       store,
		docs:        NewDocumentService(store, files, logger),
		access:      NewAccessService(store, logger),
		tags:        NewTagService(store, logger),
		versions:    NewVersionService(store, files, logger),
		folders:     NewFolderService(store, logger),
		tree:        NewTreeService(store, logger),
		annotations: NewAnnotationService(store, logger),
		search:      NewSearchService(store, logger),
		viewer:      NewViewerService(store, logger),
		nav:         NewNavigationService(store, logger),
	}
}

// upload creates a document owned by owner and fails the test on error
func (e *testEnv) upload(t *testing.T, owner string, req *docstoreSvc.UploadDocumentRequest) *models.Document {
	t.Helper()

	req.UserID = owner
	doc, err := e.docs.Upload(context.Background(), req)
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	return doc
}

// uploadPDF creates a plain PDF document for tests that only need something
// to act on
func (e *testEnv) uploadPDF(t *testing.T, owner, name string) *models.Document {
	t.Helper()

	return e.upload(t, owner, &docstoreSvc.UploadDocumentRequest{
		File: models.FileInfo{
			Name:     name,
			Size:     2048,
			MimeType: "application/pdf",
		},
	})
}

// grant gives userID the level on the document and fails the test on error
func (e *testEnv) grant(t *testing.T, documentID, userID string, level models.PermissionLevel) {
	t.Helper()

	_, err := e.access.Grant(context.Background(), documentID, &docstoreSvc.GrantRequest{
		UserID: userID,
		Level:  level,
	})
	if err != nil {
		t.Fatalf("grant %s %s: %v", userID, level, err)
	}
}

func fileInfoPDF(name string) models.FileInfo {
	return models.FileInfo{Name: name, Size: 2048, MimeType: "application/pdf"}
}

func strPtr(s string) *string { return &s }
