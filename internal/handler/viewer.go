package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	docstoreSvc "docvault/internal/domain/services/docstore"
	"docvault/internal/httputil"
)

// ViewerHandler handles view, download, and page navigation requests
type ViewerHandler struct {
	viewerService     docstoreSvc.ViewerService
	navigationService docstoreSvc.NavigationService
	logger            *slog.Logger
}

// NewViewerHandler creates a new viewer handler
func NewViewerHandler(viewerService docstoreSvc.ViewerService, navigationService docstoreSvc.NavigationService, logger *slog.Logger) *ViewerHandler {
	return &ViewerHandler{
		viewerService:     viewerService,
		navigationService: navigationService,
		logger:            logger,
	}
}

// View returns the current version's reference and records the view
// GET /api/documents/{id}/view
func (h *ViewerHandler) View(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	userID := httputil.GetUserID(r)

	info, err := h.viewerService.ViewURL(r.Context(), id, userID)
	if err != nil {
		handleError(w, err)
		return
	}

	if err := h.viewerService.TrackView(r.Context(), id, userID); err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, info)
}

// Download returns the current version's reference for download
// GET /api/documents/{id}/download
func (h *ViewerHandler) Download(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	info, err := h.viewerService.DownloadURL(r.Context(), id, httputil.GetUserID(r))
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, info)
}

// Preview returns the rendering configuration for the document
// GET /api/documents/{id}/preview
func (h *ViewerHandler) Preview(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	preview, err := h.viewerService.Preview(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, preview)
}

// History returns the document's view audit trail
// GET /api/documents/{id}/views
func (h *ViewerHandler) History(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	events, err := h.viewerService.History(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, events)
}

// Pages returns the estimated page count and all page thumbnails
// GET /api/documents/{id}/pages
func (h *ViewerHandler) Pages(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	count, err := h.navigationService.PageCount(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	thumbnails, err := h.navigationService.AllThumbnails(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"total_pages": count,
		"thumbnails":  thumbnails,
	})
}

// Page addresses one page of the document
// GET /api/documents/{id}/pages/{page}
func (h *ViewerHandler) Page(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	page, ok := h.pageNumber(w, r)
	if !ok {
		return
	}

	info, err := h.navigationService.PageContent(r.Context(), id, page)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, info)
}

// Thumbnail returns the placeholder thumbnail for one page
// GET /api/documents/{id}/pages/{page}/thumbnail
func (h *ViewerHandler) Thumbnail(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	page, ok := h.pageNumber(w, r)
	if !ok {
		return
	}

	thumbnail, err := h.navigationService.PageThumbnail(r.Context(), id, page)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, thumbnail)
}

// SetCurrentPage records the reading position
// PUT /api/documents/{id}/pages/current
func (h *ViewerHandler) SetCurrentPage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req struct {
		Page int `json:"page"`
	}
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session, err := h.navigationService.SetCurrentPage(r.Context(), id, req.Page)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, session)
}

func (h *ViewerHandler) pageNumber(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw, ok := pathID(w, r, "page")
	if !ok {
		return 0, false
	}
	page, err := strconv.Atoi(raw)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "page must be an integer")
		return 0, false
	}
	return page, true
}
