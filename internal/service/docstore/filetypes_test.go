package docstore

import (
	"strings"
	"testing"

	models "docvault/internal/domain/models/docstore"
)

func TestFileTypeRegistry_Validate(t *testing.T) {
	registry, err := NewFileTypeRegistry()
	if err != nil {
		t.Fatalf("load registry: %v", err)
	}

	tests := []struct {
		name     string
		file     models.FileInfo
		wantMime string
		wantErr  string
	}{
		{
			name:     "explicit mime",
			file:     models.FileInfo{Name: "a.pdf", Size: 100, MimeType: "application/pdf"},
			wantMime: "application/pdf",
		},
		{
			name:     "mime resolved from extension",
			file:     models.FileInfo{Name: "notes.txt", Size: 100},
			wantMime: "text/plain",
		},
		{
			name:     "extension is case-insensitive",
			file:     models.FileInfo{Name: "PHOTO.JPG", Size: 100},
			wantMime: "image/jpeg",
		},
		{
			name:    "no file",
			file:    models.FileInfo{},
			wantErr: "no file provided",
		},
		{
			name:    "unsupported type",
			file:    models.FileInfo{Name: "tool.exe", Size: 100},
			wantErr: "unsupported file type",
		},
		{
			name:    "over size cap",
			file:    models.FileInfo{Name: "huge.txt", Size: 2 * 1024 * 1024, MimeType: "text/plain"},
			wantErr: "too large",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mime, err := registry.Validate(tt.file)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("err = %v, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("err = %v, want success", err)
			}
			if mime != tt.wantMime {
				t.Errorf("mime = %q, want %q", mime, tt.wantMime)
			}
		})
	}
}

func TestFileTypeRegistry_MaxSize(t *testing.T) {
	registry, err := NewFileTypeRegistry()
	if err != nil {
		t.Fatalf("load registry: %v", err)
	}

	size, ok := registry.MaxSize("application/pdf")
	if !ok || size != 10*1024*1024 {
		t.Errorf("pdf cap = %d (%v), want 10 MiB", size, ok)
	}
	if _, ok := registry.MaxSize("application/zip"); ok {
		t.Error("zip reported supported, want unsupported")
	}
}

func TestFileTypeRegistry_SupportedExtensions(t *testing.T) {
	registry, err := NewFileTypeRegistry()
	if err != nil {
		t.Fatalf("load registry: %v", err)
	}

	exts := registry.SupportedExtensions()
	if len(exts) == 0 {
		t.Fatal("no extensions loaded")
	}
	var foundPDF bool
	for _, ext := range exts {
		if ext == ".pdf" {
			foundPDF = true
		}
	}
	if !foundPDF {
		t.Errorf("extensions = %v, want .pdf present", exts)
	}
}
