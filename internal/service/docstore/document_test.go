package docstore

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"docvault/internal/domain"
	models "docvault/internal/domain/models/docstore"
	docstoreSvc "docvault/internal/domain/services/docstore"
)

func TestUpload_Defaults(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	doc := env.upload(t, "alice", &docstoreSvc.UploadDocumentRequest{
		File: models.FileInfo{Name: "report.pdf", Size: 4096, MimeType: "application/pdf"},
		Tags: []string{" Legal ", "legal", "HR", ""},
	})

	if doc.Metadata.Title != "report.pdf" {
		t.Errorf("title = %q, want file name fallback", doc.Metadata.Title)
	}
	if len(doc.Versions) != 1 || doc.Versions[0].Number != 1 {
		t.Fatalf("versions = %+v, want exactly one version numbered 1", doc.Versions)
	}
	if doc.CurrentVersion != 1 {
		t.Errorf("current version = %d, want 1", doc.CurrentVersion)
	}
	if doc.URL != doc.Versions[0].FileRef {
		t.Errorf("document URL %q does not mirror version file ref %q", doc.URL, doc.Versions[0].FileRef)
	}
	if doc.Permissions.Owner != "alice" {
		t.Errorf("owner = %q, want alice", doc.Permissions.Owner)
	}
	if want := []string{"legal", "hr"}; !reflect.DeepEqual(doc.Metadata.Tags, want) {
		t.Errorf("tags = %v, want %v", doc.Metadata.Tags, want)
	}

	stored, err := env.docs.GetDocument(ctx, doc.ID)
	if err != nil {
		t.Fatalf("get after upload: %v", err)
	}
	if stored.ID != doc.ID {
		t.Errorf("stored ID = %q, want %q", stored.ID, doc.ID)
	}
}

func TestUpload_ExplicitTitle(t *testing.T) {
	env := newTestEnv(t)

	doc := env.upload(t, "alice", &docstoreSvc.UploadDocumentRequest{
		File:  models.FileInfo{Name: "raw.pdf", Size: 100, MimeType: "application/pdf"},
		Title: "Quarterly Report",
	})

	if doc.Metadata.Title != "Quarterly Report" {
		t.Errorf("title = %q, want explicit title", doc.Metadata.Title)
	}
}

func TestUpload_MimeFromExtension(t *testing.T) {
	env := newTestEnv(t)

	doc := env.upload(t, "alice", &docstoreSvc.UploadDocumentRequest{
		File: models.FileInfo{Name: "notes.TXT", Size: 100},
	})

	if doc.MimeType != "text/plain" {
		t.Errorf("mime = %q, want text/plain resolved from extension", doc.MimeType)
	}
}

func TestUpload_Validation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  *docstoreSvc.UploadDocumentRequest
	}{
		{
			name: "no file",
			req:  &docstoreSvc.UploadDocumentRequest{},
		},
		{
			name: "unsupported type",
			req: &docstoreSvc.UploadDocumentRequest{
				File: models.FileInfo{Name: "malware.exe", Size: 100},
			},
		},
		{
			name: "oversized pdf",
			req: &docstoreSvc.UploadDocumentRequest{
				File: models.FileInfo{Name: "big.pdf", Size: 11 * 1024 * 1024, MimeType: "application/pdf"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.req.UserID = "alice"
			_, err := env.docs.Upload(ctx, tt.req)
			if !errors.Is(err, domain.ErrValidation) {
				t.Errorf("err = %v, want validation error", err)
			}
		})
	}
}

func TestUpload_MissingFolder(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.docs.Upload(context.Background(), &docstoreSvc.UploadDocumentRequest{
		File:     models.FileInfo{Name: "a.pdf", Size: 100, MimeType: "application/pdf"},
		FolderID: strPtr("nope"),
		UserID:   "alice",
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("err = %v, want not found", err)
	}
}

func TestUpdateMetadata_Permissions(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	doc := env.uploadPDF(t, "alice", "a.pdf")
	env.grant(t, doc.ID, "viewer", models.LevelView)
	env.grant(t, doc.ID, "editor", models.LevelEdit)

	tests := []struct {
		name    string
		user    string
		allowed bool
	}{
		{"owner", "alice", true},
		{"editor", "editor", true},
		{"viewer", "viewer", false},
		{"stranger", "mallory", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.docs.UpdateMetadata(ctx, doc.ID, &docstoreSvc.UpdateMetadataRequest{
				Title:  strPtr("new title"),
				UserID: tt.user,
			})
			if tt.allowed && err != nil {
				t.Errorf("err = %v, want success", err)
			}
			if !tt.allowed && !errors.Is(err, domain.ErrForbidden) {
				t.Errorf("err = %v, want forbidden", err)
			}
		})
	}
}

func TestUpdateMetadata_PartialUpdate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	doc := env.upload(t, "alice", &docstoreSvc.UploadDocumentRequest{
		File:        models.FileInfo{Name: "a.pdf", Size: 100, MimeType: "application/pdf"},
		Title:       "original",
		Description: "keep me",
	})

	updated, err := env.docs.UpdateMetadata(ctx, doc.ID, &docstoreSvc.UpdateMetadataRequest{
		Title:  strPtr("renamed"),
		UserID: "alice",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Metadata.Title != "renamed" {
		t.Errorf("title = %q, want renamed", updated.Metadata.Title)
	}
	if updated.Metadata.Description != "keep me" {
		t.Errorf("description = %q, want untouched", updated.Metadata.Description)
	}
}

func TestDeleteDocument(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	doc := env.uploadPDF(t, "alice", "a.pdf")

	if err := env.docs.DeleteDocument(ctx, doc.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := env.docs.GetDocument(ctx, doc.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("get after delete: err = %v, want not found", err)
	}

	if err := env.docs.DeleteDocument(ctx, doc.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("double delete: err = %v, want not found", err)
	}
}
