package handler

import (
	"log/slog"
	"net/http"

	docstoreSvc "docvault/internal/domain/services/docstore"
	"docvault/internal/httputil"
)

// FolderHandler handles folder HTTP requests
type FolderHandler struct {
	folderService docstoreSvc.FolderService
	treeService   docstoreSvc.TreeService
	logger        *slog.Logger
}

// NewFolderHandler creates a new folder handler
func NewFolderHandler(folderService docstoreSvc.FolderService, treeService docstoreSvc.TreeService, logger *slog.Logger) *FolderHandler {
	return &FolderHandler{
		folderService: folderService,
		treeService:   treeService,
		logger:        logger,
	}
}

// Create creates a new folder
// POST /api/folders
func (h *FolderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req docstoreSvc.CreateFolderRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	folder, err := h.folderService.CreateFolder(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, folder)
}

// List returns the flat folder collection
// GET /api/folders
func (h *FolderHandler) List(w http.ResponseWriter, r *http.Request) {
	folders, err := h.folderService.ListFolders(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, folders)
}

// Get retrieves a folder by ID
// GET /api/folders/{id}
func (h *FolderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	folder, err := h.folderService.GetFolder(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, folder)
}

// Update renames or moves a folder
// PATCH /api/folders/{id}
func (h *FolderHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req docstoreSvc.UpdateFolderRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	folder, err := h.folderService.UpdateFolder(r.Context(), id, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, folder)
}

// Delete removes an empty folder
// DELETE /api/folders/{id}
func (h *FolderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.folderService.DeleteFolder(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Tree returns the folder hierarchy as a forest
// GET /api/folders/tree
func (h *FolderHandler) Tree(w http.ResponseWriter, r *http.Request) {
	roots, err := h.treeService.GetHierarchy(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, roots)
}

// MoveDocuments files a batch of documents into a folder (or unfiles them)
// POST /api/documents/move
func (h *FolderHandler) MoveDocuments(w http.ResponseWriter, r *http.Request) {
	var req docstoreSvc.MoveDocumentsRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	moved, err := h.folderService.MoveDocuments(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]bool{"moved": moved})
}
