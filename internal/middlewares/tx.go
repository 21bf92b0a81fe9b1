package middlewares

import (
	"bytes"
	"context"
	"net/http"

	"github.com/gearted/gearted-backend/internal/dbctx"
	"github.com/gearted/gearted-backend/internal/logger"
	"github.com/jmoiron/sqlx"
)

// TxMiddleware wraps an HTTP handler with a database transaction. The
// response is held back until the transaction is resolved: statuses below
// 400 commit, everything else rolls back. Callbacks registered with
// dbctx.AfterCommit run after a successful commit, before the response is sent.
func TxMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tx, err := db.Beginx()
			if err != nil {
				logger.Log.Errorw("failed to begin transaction", "error", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
				return
			}

			defer func() {
				if rec := recover(); rec != nil {
					tx.Rollback()
					panic(rec)
				}
			}()

			ctx, runHooks := dbctx.WithCommitHooks(dbctx.With(r.Context(), tx))
			buf := &bufferedWriter{header: http.Header{}, statusCode: http.StatusOK}
			next.ServeHTTP(buf, r.WithContext(ctx))

			if buf.statusCode >= http.StatusBadRequest {
				if err := tx.Rollback(); err != nil {
					logger.Log.Errorw("failed to rollback transaction", "error", err)
				}
				buf.flush(w)
				return
			}

			if err := tx.Commit(); err != nil {
				logger.Log.Errorw("failed to commit transaction", "error", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
				return
			}
			runHooks(context.WithoutCancel(r.Context()))
			buf.flush(w)
		})
	}
}

type bufferedWriter struct {
	header     http.Header
	statusCode int
	body       bytes.Buffer
}

func (b *bufferedWriter) Header() http.Header { return b.header }

func (b *bufferedWriter) WriteHeader(code int) { b.statusCode = code }

func (b *bufferedWriter) Write(p []byte) (int, error) { return b.body.Write(p) }

func (b *bufferedWriter) flush(w http.ResponseWriter) {
	for k, v := range b.header {
		w.Header()[k] = v
	}
	w.WriteHeader(b.statusCode)
	w.Write(b.body.Bytes())
}
