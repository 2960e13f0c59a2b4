package ports

import "context"

// BreakerState is an upstream circuit breaker's state.
type BreakerState string

// Breaker states as reported on /health/ready.
const (
	BreakerClosed   BreakerState = "closed"
	BreakerHalfOpen BreakerState = "half-open"
	BreakerOpen     BreakerState = "open"
)

// UpstreamHealth is one upstream's entry in the readiness report.
type UpstreamHealth struct {
	Name    string
	Breaker BreakerState
	// ConsecutiveFailures counts failed calls since the last success.
	ConsecutiveFailures uint32
}

// Ready reports whether the upstream is taking traffic normally. A
// half-open breaker is still probing, so only a closed one counts.
func (h UpstreamHealth) Ready() bool {
	return h.Breaker == BreakerClosed
}

// HealthChecker is an upstream that can describe its own availability.
// Implemented by the upstream client; no network call is made.
type HealthChecker interface {
	Name() string
	Health(ctx context.Context) UpstreamHealth
}

// HealthRegistry collects the upstreams the readiness endpoint reports on.
type HealthRegistry interface {
	// Register adds checker, replacing any earlier one with the same name.
	Register(checker HealthChecker)

	// Report returns every registered upstream's health, sorted by name.
	Report(ctx context.Context) []UpstreamHealth
}
