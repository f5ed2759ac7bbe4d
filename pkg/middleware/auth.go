package middleware

import (
	"net/http"

	"github.com/MuruliCGPayroute/superpetzjp/pkg/session"
	"github.com/MuruliCGPayroute/superpetzjp/pkg/utils"

	"go.uber.org/zap"
)

// AuthSession resolves the session cookie once per request and injects the
// identity into the request context. Unauthenticated requests get 403 with
// the "Not authenticated" message the frontend already keys on.
func AuthSession(sessions *session.Manager, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := sessions.Resolve(r.Context(), r)
			if err != nil {
				logger.Error("Failed to resolve session",
					zap.Error(err),
					zap.String("path", r.URL.Path))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if identity == nil {
				utils.ResponseForbidden(w, "Not authenticated")
				return
			}

			ctx := utils.SetIdentityContext(r.Context(), identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// User rejects identities whose role is not "user", so admin sessions
// cannot pass the customer-side route guard.
func User(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := utils.GetIdentityFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Unauthorized: not logged in")
				return
			}

			if identity.Role != "user" {
				logger.Warn("Non-user access attempt",
					zap.Int64("user_id", identity.UserID),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Forbidden: User access only")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// Admin checks the role on the already-resolved identity
func Admin(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := utils.GetIdentityFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Unauthorized: not logged in")
				return
			}

			if identity.Role != "admin" {
				logger.Warn("Non-admin access attempt",
					zap.Int64("user_id", identity.UserID),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Forbidden: Admin access only")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
