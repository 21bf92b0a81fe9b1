package middlewares

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gearted/gearted-backend/internal/logger"
)

// RecoverMiddleware turns a panic into a 500 JSON response. The panic value
// is only exposed to clients outside production.
func RecoverMiddleware(production bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				logger.Log.Errorw("panic recovered",
					"panic", rec,
					"uri", r.RequestURI,
					"request_id", RequestIDFromContext(r.Context()),
					"stack", string(debug.Stack()),
				)

				msg := "Internal server error"
				if !production {
					msg = fmt.Sprintf("%s: %v", msg, rec)
				}
				writeError(w, http.StatusInternalServerError, msg)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
