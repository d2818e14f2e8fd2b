package httpx

import (
	"context"
	"net/http"

	"github.com/driftlock/noticeboard/pkg/slogx"
)

// AdminCheck reports whether the given user ID belongs to an administrator.
// The role lives in the user record rather than the token, so revoking admin
// takes effect on the next request instead of at token expiry.
type AdminCheck func(ctx context.Context, userID string) (bool, error)

// RequireAdmin rejects requests whose authenticated user is not an admin.
// Must run after AuthnMiddleware.
func RequireAdmin(check AdminCheck) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			userID := UserIDFromContext(ctx)
			if userID == "" {
				writeBearerError(w, "missing bearer token")
				return
			}

			isAdmin, err := check(ctx, userID)
			if err != nil {
				slogx.FromContext(ctx).Error("admin check failed", "err", err, "user_id", userID)
				WriteJSON(w, http.StatusInternalServerError, map[string]string{
					"error":             "server_error",
					"error_description": "unable to verify permissions",
				})
				return
			}

			if !isAdmin {
				WriteJSON(w, http.StatusForbidden, map[string]string{
					"error":             "forbidden",
					"error_description": "administrator access required",
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
