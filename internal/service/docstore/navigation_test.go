package docstore

import (
	"context"
	"errors"
	"testing"

	"docvault/internal/domain"
	models "docvault/internal/domain/models/docstore"
	docstoreSvc "docvault/internal/domain/services/docstore"
)

func TestEstimatePageCount(t *testing.T) {
	tests := []struct {
		name string
		mime string
		size int64
		want int
	}{
		{"pdf exact pages", "application/pdf", 100 * 1024, 2},
		{"pdf partial page rounds up", "application/pdf", 125 * 1024, 3},
		{"pdf tiny file is one page", "application/pdf", 10, 1},
		{"docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document", 60 * 1024, 3},
		{"powerpoint", "application/vnd.ms-powerpoint", 250 * 1024, 3},
		{"image is single page", "image/png", 4 * 1024 * 1024, 1},
		{"text is single page", "text/plain", 500 * 1024, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := estimatePageCount(tt.mime, tt.size); got != tt.want {
				t.Errorf("estimatePageCount(%q, %d) = %d, want %d", tt.mime, tt.size, got, tt.want)
			}
		})
	}
}

func TestPageCount_Persisted(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	doc := env.upload(t, "alice", &docstoreSvc.UploadDocumentRequest{
		File: models.FileInfo{Name: "big.pdf", Size: 150 * 1024, MimeType: "application/pdf"},
	})

	count, err := env.nav.PageCount(ctx, doc.ID)
	if err != nil {
		t.Fatalf("page count: %v", err)
	}
	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}

	stored, err := env.docs.GetDocument(ctx, doc.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.PageCount != 3 {
		t.Errorf("persisted count = %d, want 3", stored.PageCount)
	}

	again, err := env.nav.PageCount(ctx, doc.ID)
	if err != nil {
		t.Fatalf("second page count: %v", err)
	}
	if again != count {
		t.Errorf("second call = %d, want stable %d", again, count)
	}
}

func TestPageContent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	doc := env.upload(t, "alice", &docstoreSvc.UploadDocumentRequest{
		File: models.FileInfo{Name: "big.pdf", Size: 150 * 1024, MimeType: "application/pdf"},
	})

	info, err := env.nav.PageContent(ctx, doc.ID, 2)
	if err != nil {
		t.Fatalf("page content: %v", err)
	}
	if info.PageParam != "#page=2" {
		t.Errorf("page param = %q, want pdf fragment", info.PageParam)
	}
	if info.TotalPages != 3 {
		t.Errorf("total = %d, want 3", info.TotalPages)
	}

	for _, page := range []int{0, 4, -1} {
		if _, err := env.nav.PageContent(ctx, doc.ID, page); !errors.Is(err, domain.ErrValidation) {
			t.Errorf("page %d: err = %v, want validation error", page, err)
		}
	}
}

func TestPageThumbnails(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	doc := env.upload(t, "alice", &docstoreSvc.UploadDocumentRequest{
		File: models.FileInfo{Name: "deck.pdf", Size: 100 * 1024, MimeType: "application/pdf"},
	})

	thumbnails, err := env.nav.AllThumbnails(ctx, doc.ID)
	if err != nil {
		t.Fatalf("thumbnails: %v", err)
	}
	if len(thumbnails) != 2 {
		t.Fatalf("got %d thumbnails, want 2", len(thumbnails))
	}
	for i, thumb := range thumbnails {
		if thumb.PageNumber != i+1 {
			t.Errorf("thumbnail[%d].PageNumber = %d, want %d", i, thumb.PageNumber, i+1)
		}
		if thumb.Width != 120 || thumb.Height != 160 {
			t.Errorf("thumbnail size = %dx%d, want 120x160", thumb.Width, thumb.Height)
		}
	}
}

func TestSetCurrentPage(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	doc := env.upload(t, "alice", &docstoreSvc.UploadDocumentRequest{
		File: models.FileInfo{Name: "big.pdf", Size: 150 * 1024, MimeType: "application/pdf"},
	})

	session, err := env.nav.SetCurrentPage(ctx, doc.ID, 2)
	if err != nil {
		t.Fatalf("set page: %v", err)
	}
	if session.CurrentPage != 2 {
		t.Errorf("current page = %d, want 2", session.CurrentPage)
	}

	sessions, err := env.store.LoadSessions(ctx)
	if err != nil {
		t.Fatalf("load sessions: %v", err)
	}
	stored, ok := sessions[doc.ID]
	if !ok {
		t.Fatal("session not persisted")
	}
	if stored.CurrentPage != 2 {
		t.Errorf("persisted page = %d, want 2", stored.CurrentPage)
	}

	if _, err := env.nav.SetCurrentPage(ctx, doc.ID, 99); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("out of range: err = %v, want validation error", err)
	}
}
