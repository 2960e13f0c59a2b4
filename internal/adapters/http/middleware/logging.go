package middleware

import (
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/jsamuelsen11/storeops-gateway/internal/platform/logging"
)

// Logging returns middleware that stores a request-scoped logger (tagged with
// the request and correlation IDs) in the context and writes one access
// record when the request finishes. The record names the matched route
// rather than the raw path, so store IDs and dates stay out of the message,
// and includes whatever downstream code attached with logging.Annotate.
// Responses with a 5xx status are logged at WARN.
//
// At debug level the inbound headers are logged as well, with credential
// headers redacted.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			child := logger.With(
				slog.String("request_id", RequestIDFromContext(r.Context())),
				slog.String("correlation_id", CorrelationIDFromContext(r.Context())),
			)
			ctx := logging.WithLogger(r.Context(), child)
			ctx = logging.WithAnnotations(ctx)

			if child.Enabled(ctx, slog.LevelDebug) {
				child.DebugContext(ctx, "request received",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Attr{Key: "headers", Value: slog.GroupValue(redactedHeaders(r.Header)...)},
				)
			}

			rec := record(w)
			next.ServeHTTP(rec, r.WithContext(ctx))

			route := routePattern(r)
			if route == "" {
				route = r.URL.Path
			}
			attrs := append([]slog.Attr{
				slog.String("method", r.Method),
				slog.String("route", route),
				slog.Int("status", rec.status),
				slog.Int64("bytes", rec.size),
				slog.Duration("duration", time.Since(start)),
			}, logging.Annotations(ctx)...)

			level := slog.LevelInfo
			if rec.status >= http.StatusInternalServerError {
				level = slog.LevelWarn
			}
			child.LogAttrs(ctx, level, "request completed", attrs...)
		})
	}
}

// redactedHeaders returns h as attributes sorted by name, with the headers in
// logging.SensitiveHeaders replaced by "[REDACTED]".
func redactedHeaders(h http.Header) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(h))
	for _, name := range slices.Sorted(maps.Keys(h)) {
		value := strings.Join(h[name], ",")
		if logging.SensitiveHeaders[strings.ToLower(name)] {
			value = "[REDACTED]"
		}
		attrs = append(attrs, slog.String(name, value))
	}
	return attrs
}
