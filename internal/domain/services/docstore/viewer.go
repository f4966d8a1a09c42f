package docstore

import (
	"context"

	"docvault/internal/domain/models/docstore"
)

// ViewerService derives view/download references and tracks the view audit
// trail.
type ViewerService interface {
	// ViewURL returns the current version's reference; requires view access
	ViewURL(ctx context.Context, documentID, userID string) (*docstore.ViewInfo, error)

	// DownloadURL returns the current version's reference; requires
	// download-or-higher access
	DownloadURL(ctx context.Context, documentID, userID string) (*docstore.ViewInfo, error)

	// Preview returns the rendering configuration for the document
	Preview(ctx context.Context, documentID string) (*docstore.PreviewConfig, error)

	// TrackView appends to the view history and bumps the view counter
	TrackView(ctx context.Context, documentID, userID string) error

	// History returns the document's view audit trail
	History(ctx context.Context, documentID string) ([]docstore.ViewEvent, error)
}

// NavigationService paginates documents by estimated page count
type NavigationService interface {
	// PageCount estimates and persists the document's page count
	PageCount(ctx context.Context, documentID string) (int, error)

	// PageContent addresses one page; fails on out-of-range page numbers
	PageContent(ctx context.Context, documentID string, pageNumber int) (*docstore.PageInfo, error)

	// PageThumbnail returns the placeholder thumbnail for one page
	PageThumbnail(ctx context.Context, documentID string, pageNumber int) (*docstore.PageThumbnail, error)

	// AllThumbnails returns thumbnails for every page
	AllThumbnails(ctx context.Context, documentID string) ([]docstore.PageThumbnail, error)

	// SetCurrentPage records the reading position in the viewing session
	SetCurrentPage(ctx context.Context, documentID string, pageNumber int) (*docstore.ViewingSession, error)
}
