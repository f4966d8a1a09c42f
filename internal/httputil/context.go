package httputil

import (
	"context"
	"net/http"
)

// unexported key type so other packages cannot collide with our context values
type contextKey string

const (
	userIDKey contextKey = "userID"
)

// WithUserID returns a copy of the request whose context carries the caller's
// user ID. The identity middleware sets this for every request.
func WithUserID(r *http.Request, userID string) *http.Request {
	ctx := context.WithValue(r.Context(), userIDKey, userID)
	return r.WithContext(ctx)
}

// GetUserID reports the user ID stored on the request context, or "" when the
// identity middleware has not run.
func GetUserID(r *http.Request) string {
	userID, _ := r.Context().Value(userIDKey).(string)
	return userID
}
