package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	docstoreSvc "docvault/internal/domain/services/docstore"
	"docvault/internal/httputil"
)

// VersionHandler handles version HTTP requests
type VersionHandler struct {
	versionService docstoreSvc.VersionService
	logger         *slog.Logger
}

// NewVersionHandler creates a new version handler
func NewVersionHandler(versionService docstoreSvc.VersionService, logger *slog.Logger) *VersionHandler {
	return &VersionHandler{
		versionService: versionService,
		logger:         logger,
	}
}

// Create appends a new version to the document
// POST /api/documents/{id}/versions
func (h *VersionHandler) Create(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req docstoreSvc.CreateVersionRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.UserID = httputil.GetUserID(r)

	version, err := h.versionService.CreateVersion(r.Context(), id, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, version)
}

// List returns the document's version history
// GET /api/documents/{id}/versions
func (h *VersionHandler) List(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	versions, err := h.versionService.ListVersions(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, versions)
}

// Get retrieves one version. A numeric parameter addresses by version
// number, anything else by version ID.
// GET /api/documents/{id}/versions/{versionId}
func (h *VersionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	versionID, ok := pathID(w, r, "versionId")
	if !ok {
		return
	}

	if number, err := strconv.Atoi(versionID); err == nil {
		version, err := h.versionService.GetVersionByNumber(r.Context(), id, number)
		if err != nil {
			handleError(w, err)
			return
		}
		httputil.RespondJSON(w, http.StatusOK, version)
		return
	}

	version, err := h.versionService.GetVersion(r.Context(), id, versionID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, version)
}

// SetCurrent points the document at an existing version number
// PUT /api/documents/{id}/versions/current
func (h *VersionHandler) SetCurrent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req docstoreSvc.SetCurrentVersionRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.UserID = httputil.GetUserID(r)

	doc, err := h.versionService.SetCurrentVersion(r.Context(), id, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, doc)
}

// Delete removes a version by ID
// DELETE /api/documents/{id}/versions/{versionId}
func (h *VersionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	versionID, ok := pathID(w, r, "versionId")
	if !ok {
		return
	}

	if err := h.versionService.DeleteVersion(r.Context(), id, versionID, httputil.GetUserID(r)); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
