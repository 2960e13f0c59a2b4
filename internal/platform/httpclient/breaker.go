package httpclient

import (
	"context"
	"errors"
	"log/slog"
	"math"

	"github.com/sony/gobreaker/v2"

	"github.com/jsamuelsen11/storeops-gateway/internal/platform/config"
	"github.com/jsamuelsen11/storeops-gateway/internal/platform/telemetry"
)

// newBreaker builds the per-upstream circuit breaker. It opens after
// MaxFailures consecutive failed calls, where a call is one Do including its
// retries, and lets HalfOpenLimit probes through once Timeout has passed.
func newBreaker(name string, cfg config.CircuitBreakerConfig, metrics *telemetry.Metrics, logger *slog.Logger) *gobreaker.CircuitBreaker[struct{}] {
	return gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        name,
		MaxRequests: clampUint32(cfg.HalfOpenLimit),
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.MaxFailures
		},
		// A caller hanging up says nothing about the upstream's health.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("peer_service", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
			metrics.RecordBreakerTransition(context.Background(), name, from.String(), to.String())
		},
	})
}

// Breaker returns the circuit breaker's current state and counters without
// touching the network.
func (c *Client) Breaker() (gobreaker.State, gobreaker.Counts) {
	return c.breaker.State(), c.breaker.Counts()
}

// IsBreakerRejection reports whether err means the breaker refused the call,
// either because it is open or because the half-open probe quota is in use.
func IsBreakerRejection(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}

func clampUint32(v int) uint32 {
	switch {
	case v <= 0:
		return 0
	case v > math.MaxUint32:
		return math.MaxUint32
	}
	return uint32(v)
}
