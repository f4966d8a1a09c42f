package handler

import (
	"log/slog"
	"net/http"

	models "docvault/internal/domain/models/docstore"
	docstoreSvc "docvault/internal/domain/services/docstore"
	"docvault/internal/httputil"
)

// AccessHandler handles permission HTTP requests
type AccessHandler struct {
	accessService docstoreSvc.AccessService
	logger        *slog.Logger
}

// NewAccessHandler creates a new access handler
func NewAccessHandler(accessService docstoreSvc.AccessService, logger *slog.Logger) *AccessHandler {
	return &AccessHandler{
		accessService: accessService,
		logger:        logger,
	}
}

// Grant upserts an access entry
// POST /api/documents/{id}/permissions
func (h *AccessHandler) Grant(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req docstoreSvc.GrantRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	doc, err := h.accessService.Grant(r.Context(), id, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, doc)
}

// Revoke removes a user's access entry
// DELETE /api/documents/{id}/permissions/{userId}
func (h *AccessHandler) Revoke(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}

	doc, err := h.accessService.Revoke(r.Context(), id, userID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, doc)
}

// Check reports whether a user holds the required level
// GET /api/documents/{id}/permissions/{userId}?level=view
func (h *AccessHandler) Check(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}

	level := models.PermissionLevel(r.URL.Query().Get("level"))
	if level == "" {
		level = models.LevelView
	}
	if !level.Valid() {
		httputil.RespondError(w, http.StatusBadRequest, "invalid permission level")
		return
	}

	allowed, err := h.accessService.Check(r.Context(), id, userID, level)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]bool{"allowed": allowed})
}

// ListUsers returns every user with access to the document
// GET /api/documents/{id}/permissions
func (h *AccessHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	users, err := h.accessService.ListUsers(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, users)
}

// TransferOwnership reassigns the document owner
// PUT /api/documents/{id}/owner
func (h *AccessHandler) TransferOwnership(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req docstoreSvc.TransferOwnershipRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	doc, err := h.accessService.TransferOwnership(r.Context(), id, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, doc)
}
