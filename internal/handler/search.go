package handler

import (
	"log/slog"
	"net/http"
	"time"

	models "docvault/internal/domain/models/docstore"
	docstoreSvc "docvault/internal/domain/services/docstore"
	"docvault/internal/httputil"
)

// SearchHandler handles document search requests
type SearchHandler struct {
	searchService docstoreSvc.SearchService
	logger        *slog.Logger
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(searchService docstoreSvc.SearchService, logger *slog.Logger) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
		logger:        logger,
	}
}

// Search filters documents by metadata.
// GET /api/documents/search?q=report&type=application/pdf&tag=legal&from=...&to=...
// With only q set this is a plain keyword search; any other parameter
// switches to the advanced filter set. Dates are RFC 3339.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	opts := models.SearchOptions{
		Keyword:   query.Get("q"),
		FileTypes: query["type"],
		Tags:      query["tag"],
	}

	if from := query.Get("from"); from != "" {
		t, err := time.Parse(time.RFC3339, from)
		if err != nil {
			httputil.RespondError(w, http.StatusBadRequest, "from must be an RFC 3339 timestamp")
			return
		}
		opts.DateFrom = &t
	}
	if to := query.Get("to"); to != "" {
		t, err := time.Parse(time.RFC3339, to)
		if err != nil {
			httputil.RespondError(w, http.StatusBadRequest, "to must be an RFC 3339 timestamp")
			return
		}
		opts.DateTo = &t
	}

	advanced := len(opts.FileTypes) > 0 || len(opts.Tags) > 0 || opts.DateFrom != nil || opts.DateTo != nil

	var (
		docs []models.Document
		err  error
	)
	if advanced {
		docs, err = h.searchService.Advanced(r.Context(), &opts)
	} else {
		docs, err = h.searchService.ByKeyword(r.Context(), opts.Keyword)
	}
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, docs)
}
