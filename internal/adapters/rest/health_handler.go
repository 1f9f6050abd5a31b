package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/philly/arch-blog/postpage/internal/posts/ports"
)

// Health states reported by the probes.
const (
	StatusHealthy   = "healthy"
	StatusDegraded  = "degraded"
	StatusUnhealthy = "unhealthy"

	CheckUp   = "up"
	CheckDown = "down"
)

// HealthChecks holds the per-dependency readiness results.
type HealthChecks struct {
	PostSource string `json:"post_source,omitempty"`
}

// HealthStatus is the probe response body.
type HealthStatus struct {
	Status    string        `json:"status"`
	Timestamp time.Time     `json:"timestamp"`
	Version   string        `json:"version,omitempty"`
	Checks    *HealthChecks `json:"checks,omitempty"`
}

// Version is the application version reported by the health probes.
type Version string

type HealthHandler struct {
	*BaseHandler
	version Version
	pinger  ports.Pinger // nil when the post source has nothing to ping
}

func NewHealthHandler(base *BaseHandler, version Version, pinger ports.Pinger) *HealthHandler {
	return &HealthHandler{
		BaseHandler: base,
		version:     version,
		pinger:      pinger,
	}
}

// GetLiveness implements the liveness probe endpoint
// This is a lightweight check with no external dependencies
func (h *HealthHandler) GetLiveness(w http.ResponseWriter, r *http.Request) {
	h.WriteJSONResponse(w, r, HealthStatus{
		Status:    StatusHealthy,
		Timestamp: time.Now(),
		Version:   string(h.version),
	}, http.StatusOK)
}

// GetReadiness implements the readiness probe endpoint
// This pings the post source when it supports it
func (h *HealthHandler) GetReadiness(w http.ResponseWriter, r *http.Request) {
	status := StatusHealthy
	httpStatus := http.StatusOK
	var checks *HealthChecks

	if h.pinger != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		checks = &HealthChecks{PostSource: CheckUp}
		if err := h.pinger.Ping(ctx); err != nil {
			h.logger.Warn(r.Context(), "post source ping failed", "error", err)
			checks.PostSource = CheckDown
			status = StatusUnhealthy
			httpStatus = http.StatusServiceUnavailable
		}
	} else {
		status = StatusDegraded
	}

	h.WriteJSONResponse(w, r, HealthStatus{
		Status:    status,
		Timestamp: time.Now(),
		Version:   string(h.version),
		Checks:    checks,
	}, httpStatus)
}
