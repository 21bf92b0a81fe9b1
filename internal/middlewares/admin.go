package middlewares

//go:generate mockgen -source=admin.go -destination=admin_mock.go -package=middlewares

import (
	"net/http"

	"github.com/gearted/gearted-backend/internal/logger"
	"github.com/gearted/gearted-backend/internal/models"
)

// AdminChecker decides whether an identity holds admin rights.
type AdminChecker interface {
	IsAdmin(identity models.Identity) bool
}

// AdminMiddleware lets only admins through. It must run after AuthMiddleware.
func AdminMiddleware(checker AdminChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := IdentityFromContext(r.Context())
			if !ok {
				writeError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			if !checker.IsAdmin(identity) {
				logger.Log.Infow("admin access denied", "user_id", identity.UserID, "uri", r.RequestURI)
				writeError(w, http.StatusForbidden, "Forbidden")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
