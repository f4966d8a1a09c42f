package handler

import (
	"context"
	"log/slog"
	"net/http"

	models "docvault/internal/domain/models/docstore"
	docstoreSvc "docvault/internal/domain/services/docstore"
	"docvault/internal/httputil"
)

// TagHandler handles tag HTTP requests
type TagHandler struct {
	tagService docstoreSvc.TagService
	logger     *slog.Logger
}

// NewTagHandler creates a new tag handler
func NewTagHandler(tagService docstoreSvc.TagService, logger *slog.Logger) *TagHandler {
	return &TagHandler{
		tagService: tagService,
		logger:     logger,
	}
}

type tagRequest struct {
	Tags []string `json:"tags"`
}

// Add unions tags into the document's tag set
// POST /api/documents/{id}/tags
func (h *TagHandler) Add(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.tagService.AddTags)
}

// Remove subtracts tags from the document's tag set
// DELETE /api/documents/{id}/tags
func (h *TagHandler) Remove(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.tagService.RemoveTags)
}

// Set replaces the document's tag set
// PUT /api/documents/{id}/tags
func (h *TagHandler) Set(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.tagService.SetTags)
}

// All returns every distinct tag across the collection
// GET /api/tags
func (h *TagHandler) All(w http.ResponseWriter, r *http.Request) {
	tags, err := h.tagService.AllTags(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, tags)
}

// FindByTag returns all documents carrying the tag
// GET /api/tags/{tag}/documents
func (h *TagHandler) FindByTag(w http.ResponseWriter, r *http.Request) {
	tag, ok := pathID(w, r, "tag")
	if !ok {
		return
	}

	docs, err := h.tagService.FindByTag(r.Context(), tag)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, docs)
}

// mutate factors the shared parse → service call → respond shape of the
// three tag mutations
func (h *TagHandler) mutate(w http.ResponseWriter, r *http.Request, op func(context.Context, string, []string) (*models.Document, error)) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req tagRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	doc, err := op(r.Context(), id, req.Tags)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, doc)
}
