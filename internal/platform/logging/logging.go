// Package logging builds the slog loggers used by both binaries and carries
// the per-request logger through context.
//
// The request middleware stores a logger that already has request_id and
// correlation_id, so code below it logs with
//
//	logging.FromContext(ctx).WarnContext(ctx, "upstream call failed",
//		slog.String("operation", "GetDailyReport"),
//		slog.Any("error", err),
//	)
//
// Facts that belong on the single access record rather than a record of
// their own are attached with Annotate:
//
//	logging.Annotate(ctx, slog.String("data_source", "fallback"))
//
// Every logger from New masks bearer tokens, JWTs, API keys and service
// tokens, whichever field they turn up in.
package logging

import (
	"context"
	"io"
	"log/slog"
)

type contextKey struct{}

// New builds the process logger. level is one of debug, info, warn or error
// in any case and falls back to info when unrecognised. format "text" selects
// logfmt-style output; anything else is JSON. Debug output carries source
// locations. Every record passes through the credential redactor.
func New(level, format string, w io.Writer) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: redactor(),
	}
	if format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// Discard returns a logger that drops every record. dashctl uses it when no
// log file is configured, since the terminal belongs to the TUI.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or slog.Default.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
