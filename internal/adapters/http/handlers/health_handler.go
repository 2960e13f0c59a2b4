package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/storeops-gateway/internal/platform/health"
	"github.com/jsamuelsen11/storeops-gateway/internal/ports"
)

const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusNotReady = "not_ready"
)

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler creates a HealthHandler backed by registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

type upstreamStatus struct {
	Breaker             ports.BreakerState `json:"breaker"`
	ConsecutiveFailures uint32             `json:"consecutive_failures"`
}

type readinessResponse struct {
	Status    string                    `json:"status"`
	Upstreams map[string]upstreamStatus `json:"upstreams"`
}

// Liveness handles GET /health/live. The process is up, so it is always 200.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": statusOK})
}

// Readiness handles GET /health/ready. It lists every upstream's breaker and
// answers 503 unless all of them are closed.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	report := h.registry.Report(r.Context())

	resp := readinessResponse{
		Status:    statusReady,
		Upstreams: make(map[string]upstreamStatus, len(report)),
	}
	for _, u := range report {
		resp.Upstreams[u.Name] = upstreamStatus{Breaker: u.Breaker, ConsecutiveFailures: u.ConsecutiveFailures}
	}

	code := http.StatusOK
	if !health.Ready(report) {
		resp.Status = statusNotReady
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, r, code, resp)
}
