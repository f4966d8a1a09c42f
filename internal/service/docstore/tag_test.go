package docstore

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"docvault/internal/domain"
	docstoreSvc "docvault/internal/domain/services/docstore"
)

func TestTags_RoundTrip(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	doc := env.uploadPDF(t, "alice", "a.pdf")

	if _, err := env.tags.AddTags(ctx, doc.ID, []string{"legal", "2024"}); err != nil {
		t.Fatalf("add: %v", err)
	}
	updated, err := env.tags.RemoveTags(ctx, doc.ID, []string{"2024"})
	if err != nil {
		t.Fatalf("remove: %v", err)
	}

	if want := []string{"legal"}; !reflect.DeepEqual(updated.Metadata.Tags, want) {
		t.Errorf("tags = %v, want %v", updated.Metadata.Tags, want)
	}
}

func TestAddTags_NormalizesAndDeduplicates(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	doc := env.uploadPDF(t, "alice", "a.pdf")

	updated, err := env.tags.AddTags(ctx, doc.ID, []string{" Legal ", "LEGAL", "hr"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if want := []string{"legal", "hr"}; !reflect.DeepEqual(updated.Metadata.Tags, want) {
		t.Errorf("tags = %v, want %v", updated.Metadata.Tags, want)
	}

	// Adding an existing tag again changes nothing
	updated, err = env.tags.AddTags(ctx, doc.ID, []string{"legal"})
	if err != nil {
		t.Fatalf("re-add: %v", err)
	}
	if len(updated.Metadata.Tags) != 2 {
		t.Errorf("tags = %v, want no duplicates", updated.Metadata.Tags)
	}
}

func TestAddTags_Validation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	doc := env.uploadPDF(t, "alice", "a.pdf")

	tests := []struct {
		name string
		tags []string
	}{
		{"empty list", []string{}},
		{"all blank", []string{"", "   "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.tags.AddTags(ctx, doc.ID, tt.tags)
			if !errors.Is(err, domain.ErrValidation) {
				t.Errorf("err = %v, want validation error", err)
			}
		})
	}
}

func TestSetTags(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	doc := env.uploadPDF(t, "alice", "a.pdf")

	if _, err := env.tags.AddTags(ctx, doc.ID, []string{"old"}); err != nil {
		t.Fatalf("add: %v", err)
	}

	updated, err := env.tags.SetTags(ctx, doc.ID, []string{"New", "fresh"})
	if err != nil {
		t.Fatalf("set: %v", err)
	}
	if want := []string{"new", "fresh"}; !reflect.DeepEqual(updated.Metadata.Tags, want) {
		t.Errorf("tags = %v, want %v", updated.Metadata.Tags, want)
	}

	// Empty list clears all tags
	updated, err = env.tags.SetTags(ctx, doc.ID, []string{})
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	if len(updated.Metadata.Tags) != 0 {
		t.Errorf("tags = %v, want empty", updated.Metadata.Tags)
	}
}

func TestAllTags_SortedUnique(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	docA := env.uploadPDF(t, "alice", "a.pdf")
	docB := env.uploadPDF(t, "alice", "b.pdf")

	if _, err := env.tags.AddTags(ctx, docA.ID, []string{"zeta", "alpha"}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := env.tags.AddTags(ctx, docB.ID, []string{"alpha", "mid"}); err != nil {
		t.Fatalf("add: %v", err)
	}

	all, err := env.tags.AllTags(ctx)
	if err != nil {
		t.Fatalf("all tags: %v", err)
	}
	if want := []string{"alpha", "mid", "zeta"}; !reflect.DeepEqual(all, want) {
		t.Errorf("all tags = %v, want %v", all, want)
	}
}

func TestFindByTag(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	tagged := env.upload(t, "alice", &docstoreSvc.UploadDocumentRequest{
		File: fileInfoPDF("tagged.pdf"),
		Tags: []string{"legal"},
	})
	env.uploadPDF(t, "alice", "other.pdf")

	// Input is normalized before matching
	matches, err := env.tags.FindByTag(ctx, " LEGAL ")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(matches) != 1 || matches[0].ID != tagged.ID {
		t.Errorf("matches = %v, want only the tagged document", matches)
	}

	matches, err = env.tags.FindByTag(ctx, "absent")
	if err != nil {
		t.Fatalf("find absent: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("matches = %v, want none", matches)
	}
}
