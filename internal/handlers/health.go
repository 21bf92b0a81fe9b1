package handlers

//go:generate mockgen -source=health.go -destination=health_mock.go -package=handlers

import (
	"context"
	"net/http"
	"time"
)

const healthTimeout = 2 * time.Second

// Pinger checks a backing service.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthResponse reports service health.
// swagger:model HealthResponse
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// NewHealthHandler returns an HTTP handler reporting liveness and database reachability.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} handlers.HealthResponse
// @Failure 503 {object} handlers.HealthResponse
// @Router /health [get]
func NewHealthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "degraded", Database: "unreachable"})
			return
		}
		writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Database: "ok"})
	}
}
