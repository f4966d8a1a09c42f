package config

const (
	// MaxDocumentNameLength is the maximum length for document names.
	// Limited to 255 to provide reasonable UX (names should be short
	// and descriptive).
	MaxDocumentNameLength = 255

	// MaxFolderNameLength is the maximum length for folder names.
	// Same as document names for consistency.
	MaxFolderNameLength = 255

	// MaxTagLength is the maximum length of a single tag after
	// normalization.
	MaxTagLength = 100

	// MaxRequestBody caps JSON request bodies. File payloads carry only
	// descriptors (name, size, type), so 1 MiB is generous.
	MaxRequestBody = 1 << 20
)
