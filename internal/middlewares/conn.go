package middlewares

import (
	"net/http"

	"github.com/gearted/gearted-backend/internal/dbctx"
	"github.com/gearted/gearted-backend/internal/logger"
	"github.com/jmoiron/sqlx"
)

// ConnMiddleware pins one pooled connection for the whole request and
// releases it on every exit path.
func ConnMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			conn, err := db.Connx(r.Context())
			if err != nil {
				logger.Log.Errorw("failed to acquire connection", "error", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
				return
			}
			defer func() {
				if err := conn.Close(); err != nil {
					logger.Log.Warnw("failed to release connection", "error", err)
				}
			}()

			next.ServeHTTP(w, r.WithContext(dbctx.With(r.Context(), conn)))
		})
	}
}
