package middleware

import (
	"net/http"

	"docvault/internal/httputil"
)

// DefaultUserID is the identity assumed when a request carries no
// X-User-ID header. There is no authentication; the header is a trusted
// hint, matching a single-user deployment behind a gateway.
const DefaultUserID = "current-user"

// Identity resolves the caller's user ID from the X-User-ID header and
// stores it in the request context
func Identity() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := r.Header.Get("X-User-ID")
			if userID == "" {
				userID = DefaultUserID
			}
			next.ServeHTTP(w, httputil.WithUserID(r, userID))
		})
	}
}
