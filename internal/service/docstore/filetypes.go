package docstore

import (
	"embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"docvault/internal/domain"
	"docvault/internal/domain/models/docstore"
)

//go:embed config/filetypes.yaml
var fileTypeConfig embed.FS

// fileTypeEntry is one row of the supported-type table.
type fileTypeEntry struct {
	Mime       string   `yaml:"mime"`
	MaxSize    int64    `yaml:"max_size"`
	Extensions []string `yaml:"extensions"`
}

type fileTypeFile struct {
	Types []fileTypeEntry `yaml:"types"`
}

// FileTypeRegistry validates uploads against the supported-type table
// loaded from the embedded YAML at startup.
type FileTypeRegistry struct {
	maxSizes  map[string]int64  // mime -> size cap
	mimeByExt map[string]string // extension -> mime
}

// NewFileTypeRegistry loads and indexes the embedded type table.
func NewFileTypeRegistry() (*FileTypeRegistry, error) {
	data, err := fileTypeConfig.ReadFile("config/filetypes.yaml")
	if err != nil {
		return nil, fmt.Errorf("read file type table: %w", err)
	}

	var parsed fileTypeFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("unmarshal file type table: %w", err)
	}

	r := &FileTypeRegistry{
		maxSizes:  make(map[string]int64, len(parsed.Types)),
		mimeByExt: make(map[string]string),
	}
	for _, entry := range parsed.Types {
		r.maxSizes[entry.Mime] = entry.MaxSize
		for _, ext := range entry.Extensions {
			r.mimeByExt[ext] = entry.Mime
		}
	}
	return r, nil
}

// Validate checks the file against the supported-type table and returns the
// resolved MIME type. When the uploader supplied no MIME type, the file
// extension decides.
func (r *FileTypeRegistry) Validate(file docstore.FileInfo) (string, error) {
	if file.Name == "" {
		return "", &domain.ValidationError{Message: "no file provided"}
	}

	mime := file.MimeType
	if mime == "" {
		mime = r.mimeByExt[file.Extension()]
	}

	maxSize, ok := r.maxSizes[mime]
	if !ok {
		detail := mime
		if detail == "" {
			detail = file.Extension()
		}
		return "", &domain.ValidationError{
			Message: fmt.Sprintf("unsupported file type: %s", detail),
		}
	}

	if file.Size > maxSize {
		return "", &domain.ValidationError{
			Message: fmt.Sprintf("file is too large: maximum size for %s is %dMB", mime, maxSize/(1024*1024)),
		}
	}

	return mime, nil
}

// MaxSize returns the size cap for a MIME type.
func (r *FileTypeRegistry) MaxSize(mime string) (int64, bool) {
	size, ok := r.maxSizes[mime]
	return size, ok
}

// SupportedExtensions returns every known extension, sorted.
func (r *FileTypeRegistry) SupportedExtensions() []string {
	exts := make([]string, 0, len(r.mimeByExt))
	for ext := range r.mimeByExt {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}
