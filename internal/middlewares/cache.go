package middlewares

//go:generate mockgen -source=cache.go -destination=cache_mock.go -package=middlewares

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gearted/gearted-backend/internal/besteffort"
	"github.com/gearted/gearted-backend/internal/logger"
	"github.com/gearted/gearted-backend/internal/repositories"
)

// CacheKeyPrefix namespaces every cached response.
const CacheKeyPrefix = "gearted:"

// ResponseCache stores serialized responses.
type ResponseCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, body []byte, ttl time.Duration) error
}

// CacheKey returns the store key for a request URI under prefix.
func CacheKey(prefix, requestURI string) string {
	return CacheKeyPrefix + prefix + ":" + requestURI
}

func bypassCache(r *http.Request) bool {
	return r.URL.Query().Get("noCache") == "true" ||
		strings.EqualFold(r.Header.Get("X-No-Cache"), "true")
}

// CacheMiddleware serves GET responses from store and caches successful JSON
// responses for ttl. A nil store or a read error other than a miss disables
// caching for the request.
func CacheMiddleware(store ResponseCache, prefix string, ttl time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if store == nil || r.Method != http.MethodGet || bypassCache(r) {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()
			key := CacheKey(prefix, r.RequestURI)

			body, err := store.Get(ctx, key)
			if err == nil {
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("X-Cache", "HIT")
				w.WriteHeader(http.StatusOK)
				w.Write(body)
				return
			}
			if !errors.Is(err, repositories.ErrCacheMiss) {
				logger.Log.Warnw("cache read failed, bypassing", "key", key, "error", err)
				next.ServeHTTP(w, r)
				return
			}

			rec := &captureWriter{ResponseWriter: w, statusCode: http.StatusOK}
			w.Header().Set("X-Cache", "MISS")
			next.ServeHTTP(rec, r)

			if rec.statusCode != http.StatusOK ||
				!strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
				return
			}

			res := besteffort.Do(ctx, "cache_response", func(ctx context.Context) error {
				return store.Set(ctx, key, rec.body.Bytes(), ttl)
			})
			if res.OK() {
				logger.Log.Infow("response cached", "key", key, "ttl", ttl)
			}
		})
	}
}

// captureWriter forwards the response and keeps a copy of the body.
type captureWriter struct {
	http.ResponseWriter
	statusCode int
	body       bytes.Buffer
}

func (cw *captureWriter) WriteHeader(code int) {
	cw.statusCode = code
	cw.ResponseWriter.WriteHeader(code)
}

func (cw *captureWriter) Write(b []byte) (int, error) {
	cw.body.Write(b)
	return cw.ResponseWriter.Write(b)
}
