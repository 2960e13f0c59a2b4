// Package health tracks the availability of the gateway's upstreams. The
// readiness endpoint consults the registry to decide whether the gateway
// should receive traffic.
package health

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/jsamuelsen11/storeops-gateway/internal/ports"
)

var _ ports.HealthRegistry = (*Registry)(nil)

// Registry holds one checker per upstream name. Safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	checkers map[string]ports.HealthChecker
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{checkers: make(map[string]ports.HealthChecker)}
}

// Register adds checker, replacing any earlier one with the same name.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	r.checkers[checker.Name()] = checker
	r.mu.Unlock()
}

// Report asks every checker for its health and returns the results sorted by
// upstream name. Checkers answer from memory, so they run sequentially.
func (r *Registry) Report(ctx context.Context) []ports.UpstreamHealth {
	r.mu.RLock()
	checkers := make([]ports.HealthChecker, 0, len(r.checkers))
	for _, c := range r.checkers {
		checkers = append(checkers, c)
	}
	r.mu.RUnlock()

	report := make([]ports.UpstreamHealth, 0, len(checkers))
	for _, c := range checkers {
		h := c.Health(ctx)
		h.Name = c.Name()
		report = append(report, h)
	}
	slices.SortFunc(report, func(a, b ports.UpstreamHealth) int {
		return cmp.Compare(a.Name, b.Name)
	})
	return report
}

// Ready reports whether every upstream in report is ready. An empty report
// is ready.
func Ready(report []ports.UpstreamHealth) bool {
	for _, h := range report {
		if !h.Ready() {
			return false
		}
	}
	return true
}
