package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	docstoreSvc "docvault/internal/domain/services/docstore"
	"docvault/internal/httputil"
)

// AnnotationHandler handles annotation HTTP requests
type AnnotationHandler struct {
	annotationService docstoreSvc.AnnotationService
	logger            *slog.Logger
}

// NewAnnotationHandler creates a new annotation handler
func NewAnnotationHandler(annotationService docstoreSvc.AnnotationService, logger *slog.Logger) *AnnotationHandler {
	return &AnnotationHandler{
		annotationService: annotationService,
		logger:            logger,
	}
}

// Add creates an annotation on the document
// POST /api/documents/{id}/annotations
func (h *AnnotationHandler) Add(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req docstoreSvc.AddAnnotationRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.UserID = httputil.GetUserID(r)

	annotation, err := h.annotationService.Add(r.Context(), id, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, annotation)
}

// List returns annotations, optionally filtered to one page
// GET /api/documents/{id}/annotations?page=2
func (h *AnnotationHandler) List(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if pageParam := r.URL.Query().Get("page"); pageParam != "" {
		page, err := strconv.Atoi(pageParam)
		if err != nil {
			httputil.RespondError(w, http.StatusBadRequest, "page must be an integer")
			return
		}
		annotations, err := h.annotationService.ListForPage(r.Context(), id, page)
		if err != nil {
			handleError(w, err)
			return
		}
		httputil.RespondJSON(w, http.StatusOK, annotations)
		return
	}

	annotations, err := h.annotationService.List(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, annotations)
}

// Update modifies an annotation's mutable fields
// PATCH /api/documents/{id}/annotations/{annotationId}
func (h *AnnotationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	annotationID, ok := pathID(w, r, "annotationId")
	if !ok {
		return
	}

	var req docstoreSvc.UpdateAnnotationRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.UserID = httputil.GetUserID(r)

	annotation, err := h.annotationService.Update(r.Context(), id, annotationID, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, annotation)
}

// Delete removes an annotation
// DELETE /api/documents/{id}/annotations/{annotationId}
func (h *AnnotationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	annotationID, ok := pathID(w, r, "annotationId")
	if !ok {
		return
	}

	if err := h.annotationService.Delete(r.Context(), id, annotationID, httputil.GetUserID(r)); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
