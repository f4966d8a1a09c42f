package handler

import (
	"errors"
	"net/http"

	"docvault/internal/domain"
	"docvault/internal/httputil"
)

// handleError maps a service error onto the HTTP response. Domain errors
// carry their own status via the HTTPError interface; anything else is an
// internal error.
func handleError(w http.ResponseWriter, err error) {
	var httpErr domain.HTTPError
	if errors.As(err, &httpErr) {
		httputil.RespondError(w, httpErr.StatusCode(), httpErr.Error())
		return
	}

	httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
}

// pathID reads a path parameter and fails the request when it is empty
func pathID(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	value := r.PathValue(name)
	if value == "" {
		httputil.RespondError(w, http.StatusBadRequest, name+" is required")
		return "", false
	}
	return value, true
}
