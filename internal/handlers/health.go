package handlers

//go:generate mockgen -source=health.go -destination=mock_health.go -package=handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/sbilibin2017/idea2context/internal/logger"
)

// Pinger checks that a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthResponse is the body of the health endpoint
// swagger:model HealthResponse
type HealthResponse struct {
	Status string `json:"status"`
}

// NewHealthHandler returns an HTTP handler reporting whether the user store answers.
// @Summary Health check
// @Tags ops
// @Produce json
// @Success 200 {object} handlers.HealthResponse
// @Failure 503 {object} handlers.HealthResponse
// @Router /healthz [get]
func NewHealthHandler(store Pinger, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		if err := store.Ping(ctx); err != nil {
			logger.Log.Warnw("health check failed", "err", err)
			writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable"})
			return
		}
		writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}
