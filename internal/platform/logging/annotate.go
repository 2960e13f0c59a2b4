package logging

import (
	"context"
	"log/slog"
	"sync"
)

// annotations collects attributes for a request's access record.
type annotations struct {
	mu    sync.Mutex
	attrs []slog.Attr
}

type annotationsKey struct{}

// WithAnnotations returns a context that collects attributes added with
// Annotate further down the call chain. The access-log middleware installs
// it and reads the result once the handler returns.
func WithAnnotations(ctx context.Context) context.Context {
	return context.WithValue(ctx, annotationsKey{}, &annotations{})
}

// Annotate attaches attrs to the current request's access record. It does
// nothing when ctx carries no collector. Handlers may run on a different
// goroutine than the middleware that reads the collector, so it locks.
func Annotate(ctx context.Context, attrs ...slog.Attr) {
	a, ok := ctx.Value(annotationsKey{}).(*annotations)
	if !ok {
		return
	}
	a.mu.Lock()
	a.attrs = append(a.attrs, attrs...)
	a.mu.Unlock()
}

// Annotations returns a copy of the attributes collected so far.
func Annotations(ctx context.Context) []slog.Attr {
	a, ok := ctx.Value(annotationsKey{}).(*annotations)
	if !ok {
		return nil
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]slog.Attr, len(a.attrs))
	copy(out, a.attrs)
	return out
}
