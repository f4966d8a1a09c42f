package docstore

import (
	"context"
	"errors"
	"testing"

	"docvault/internal/domain"
	models "docvault/internal/domain/models/docstore"
	docstoreSvc "docvault/internal/domain/services/docstore"
)

func TestCreateVersion_AppendsAndMirrors(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	doc := env.uploadPDF(t, "alice", "a.pdf")

	v2, err := env.versions.CreateVersion(ctx, doc.ID, &docstoreSvc.CreateVersionRequest{
		File:    models.FileInfo{Name: "a-v2.pdf", Size: 9000, MimeType: "application/pdf"},
		Comment: "second draft",
		UserID:  "alice",
	})
	if err != nil {
		t.Fatalf("create version: %v", err)
	}
	if v2.Number != 2 {
		t.Errorf("number = %d, want 2", v2.Number)
	}

	updated, err := env.docs.GetDocument(ctx, doc.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if updated.CurrentVersion != 2 {
		t.Errorf("current = %d, want 2", updated.CurrentVersion)
	}
	if updated.URL != v2.FileRef {
		t.Errorf("URL %q does not mirror new version file ref %q", updated.URL, v2.FileRef)
	}
	if updated.Size != 9000 {
		t.Errorf("size = %d, want mirrored 9000", updated.Size)
	}
}

func TestCreateVersion_TypeDriftRejected(t *testing.T) {
	env := newTestEnv(t)
	doc := env.uploadPDF(t, "alice", "a.pdf")

	_, err := env.versions.CreateVersion(context.Background(), doc.ID, &docstoreSvc.CreateVersionRequest{
		File:   models.FileInfo{Name: "a.txt", Size: 100, MimeType: "text/plain"},
		UserID: "alice",
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("err = %v, want validation error", err)
	}
}

func TestCreateVersion_RequiresEdit(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	doc := env.uploadPDF(t, "alice", "a.pdf")
	env.grant(t, doc.ID, "viewer", models.LevelView)

	req := func(user string) *docstoreSvc.CreateVersionRequest {
		return &docstoreSvc.CreateVersionRequest{
			File:   fileInfoPDF("a-v2.pdf"),
			UserID: user,
		}
	}

	if _, err := env.versions.CreateVersion(ctx, doc.ID, req("viewer")); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("viewer: err = %v, want forbidden", err)
	}
	if _, err := env.versions.CreateVersion(ctx, doc.ID, req("mallory")); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("stranger: err = %v, want forbidden", err)
	}
}

func TestSetCurrentVersion(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	doc := env.uploadPDF(t, "alice", "a.pdf")

	if _, err := env.versions.CreateVersion(ctx, doc.ID, &docstoreSvc.CreateVersionRequest{
		File:   fileInfoPDF("a-v2.pdf"),
		UserID: "alice",
	}); err != nil {
		t.Fatalf("create version: %v", err)
	}

	updated, err := env.versions.SetCurrentVersion(ctx, doc.ID, &docstoreSvc.SetCurrentVersionRequest{
		Number: 1,
		UserID: "alice",
	})
	if err != nil {
		t.Fatalf("set current: %v", err)
	}
	if updated.CurrentVersion != 1 {
		t.Errorf("current = %d, want 1", updated.CurrentVersion)
	}
	v1, _ := updated.VersionByNumber(1)
	if updated.URL != v1.FileRef {
		t.Errorf("URL %q does not mirror version 1 file ref %q", updated.URL, v1.FileRef)
	}

	_, err = env.versions.SetCurrentVersion(ctx, doc.ID, &docstoreSvc.SetCurrentVersionRequest{
		Number: 99,
		UserID: "alice",
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("missing number: err = %v, want not found", err)
	}
}

// addVersions appends n extra PDF versions and returns the refreshed document
func addVersions(t *testing.T, env *testEnv, docID string, n int) *models.Document {
	t.Helper()
	ctx := context.Background()
	for i := 0; i < n; i++ {
		if _, err := env.versions.CreateVersion(ctx, docID, &docstoreSvc.CreateVersionRequest{
			File:   fileInfoPDF("rev.pdf"),
			UserID: "alice",
		}); err != nil {
			t.Fatalf("create version: %v", err)
		}
	}
	doc, err := env.docs.GetDocument(ctx, docID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	return doc
}

func TestDeleteVersion_RenumbersDensely(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	doc := env.uploadPDF(t, "alice", "a.pdf")
	doc = addVersions(t, env, doc.ID, 2) // versions 1, 2, 3; current = 3

	v2, _ := doc.VersionByNumber(2)
	currentRef := doc.URL

	if err := env.versions.DeleteVersion(ctx, doc.ID, v2.ID, "alice"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	updated, err := env.docs.GetDocument(ctx, doc.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(updated.Versions) != 2 {
		t.Fatalf("got %d versions, want 2", len(updated.Versions))
	}
	for i, v := range updated.Versions {
		if v.Number != i+1 {
			t.Errorf("version[%d].Number = %d, want dense numbering", i, v.Number)
		}
	}

	// Current still resolves to the same file even though its number shifted
	current, ok := updated.VersionByNumber(updated.CurrentVersion)
	if !ok {
		t.Fatalf("current version %d does not resolve", updated.CurrentVersion)
	}
	if current.FileRef != currentRef {
		t.Errorf("current file ref = %q, want %q", current.FileRef, currentRef)
	}
}

func TestDeleteVersion_CurrentFallsToHighestSurvivor(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	doc := env.uploadPDF(t, "alice", "a.pdf")
	doc = addVersions(t, env, doc.ID, 2) // current = 3

	v3, _ := doc.VersionByNumber(3)
	if err := env.versions.DeleteVersion(ctx, doc.ID, v3.ID, "alice"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	updated, err := env.docs.GetDocument(ctx, doc.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if updated.CurrentVersion != 2 {
		t.Errorf("current = %d, want highest survivor 2", updated.CurrentVersion)
	}
	survivor, _ := updated.VersionByNumber(2)
	if updated.URL != survivor.FileRef {
		t.Errorf("URL %q does not mirror new current %q", updated.URL, survivor.FileRef)
	}
}

func TestDeleteVersion_LastVersionConflict(t *testing.T) {
	env := newTestEnv(t)
	doc := env.uploadPDF(t, "alice", "a.pdf")

	err := env.versions.DeleteVersion(context.Background(), doc.ID, doc.Versions[0].ID, "alice")
	if !errors.Is(err, domain.ErrConflict) {
		t.Errorf("err = %v, want conflict", err)
	}
}

func TestDeleteVersion_RequiresAdmin(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	doc := env.uploadPDF(t, "alice", "a.pdf")
	doc = addVersions(t, env, doc.ID, 1)
	env.grant(t, doc.ID, "editor", models.LevelEdit)

	err := env.versions.DeleteVersion(ctx, doc.ID, doc.Versions[0].ID, "editor")
	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("editor: err = %v, want forbidden", err)
	}

	if err := env.versions.DeleteVersion(ctx, doc.ID, doc.Versions[0].ID, "alice"); err != nil {
		t.Errorf("owner: err = %v, want success", err)
	}
}

func TestUploadVersionDeleteScenario(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	doc := env.uploadPDF(t, "alice", "scenario.pdf")
	doc = addVersions(t, env, doc.ID, 2)

	// Walk back to version 1, then delete it
	if _, err := env.versions.SetCurrentVersion(ctx, doc.ID, &docstoreSvc.SetCurrentVersionRequest{Number: 1, UserID: "alice"}); err != nil {
		t.Fatalf("set current: %v", err)
	}
	v1, _ := doc.VersionByNumber(1)
	if err := env.versions.DeleteVersion(ctx, doc.ID, v1.ID, "alice"); err != nil {
		t.Fatalf("delete current: %v", err)
	}

	updated, err := env.docs.GetDocument(ctx, doc.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(updated.Versions) != 2 {
		t.Fatalf("got %d versions, want 2", len(updated.Versions))
	}
	if updated.CurrentVersion != 2 {
		t.Errorf("current = %d, want highest survivor", updated.CurrentVersion)
	}
	if _, ok := updated.VersionByNumber(updated.CurrentVersion); !ok {
		t.Errorf("current version %d does not resolve after mutation", updated.CurrentVersion)
	}
}
