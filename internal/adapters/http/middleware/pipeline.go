// Package middleware holds the gateway's inbound request pipeline. Standard
// assembles it in this order:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → Timeout → routes
//
// RequireBearer is applied separately to the /proxy routes.
package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/storeops-gateway/internal/platform/telemetry"
)

// Options configures Standard.
type Options struct {
	Logger *slog.Logger
	// Metrics may be nil when telemetry is disabled.
	Metrics *telemetry.Metrics
	// Timeout is the per-request deadline shared with upstream calls.
	Timeout time.Duration
}

// Standard returns the gateway's global middleware stack as one middleware.
func Standard(o Options) func(http.Handler) http.Handler {
	return Chain(
		Recovery(o.Logger),
		RequestID(),
		CorrelationID(),
		OpenTelemetry(o.Metrics),
		Logging(o.Logger),
		Timeout(o.Timeout),
	)
}

// Chain composes middlewares so that the first one listed sees the request
// first: Chain(a, b)(h) is a(b(h)).
func Chain(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			h = middlewares[i](h)
		}
		return h
	}
}
