package middleware

import (
	"net/http"

	"github.com/classtrack/classtrack-api/internal/api/shared"
)

// RequireRole returns a stage that short-circuits with 403 unless the
// authenticated claims carry exactly the given role. The check is an exact
// match, not a minimum: the single privileged role value is the only one
// that passes. Missing claims (the authenticate stage did not run first)
// are forbidden, not an internal error.
func RequireRole(role int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := GetClaims(r)
			if !ok || claims.Role != role {
				shared.RespondWithError(w, r, http.StatusForbidden, "Access denied.")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
