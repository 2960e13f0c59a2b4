package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/storeops-gateway/internal/platform/telemetry"
)

// unroutedLabel stands in for the route pattern on requests chi never
// matched, so 404 probes do not mint one series per path.
const unroutedLabel = "unmatched"

// OpenTelemetry opens a server span per request, continuing any W3C trace
// context the caller sent, and records the server request metrics. The span
// starts as "HTTP <method>" and is renamed to the chi route pattern once the
// router has matched; store IDs and dates never appear in span names or
// metric labels. metrics may be nil.
func OpenTelemetry(metrics *telemetry.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
			ctx, span := telemetry.Tracer().Start(ctx, "HTTP "+r.Method,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					attribute.String("http.method", r.Method),
					attribute.String("http.target", r.URL.Path),
				),
			)
			defer span.End()
			if id := RequestIDFromContext(ctx); id != "" {
				span.SetAttributes(attribute.String("request.id", id))
			}

			rw := record(w)
			next.ServeHTTP(rw, r.WithContext(ctx))

			route := routePattern(r)
			if route == "" {
				route = unroutedLabel
			} else {
				span.SetName("HTTP " + r.Method + " " + route)
				span.SetAttributes(attribute.String("http.route", route))
			}

			span.SetAttributes(attribute.Int("http.status_code", rw.status))
			if rw.status >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(rw.status))
			}

			metrics.RecordServerRequest(ctx, r.Method, route, rw.status, time.Since(start))
		})
	}
}

// routePattern returns the matched chi route pattern, or "" when chi did not
// route the request.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		return rctx.RoutePattern()
	}
	return ""
}
