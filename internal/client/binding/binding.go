// Package binding ties a synchronization store to the lifecycle of the view
// that shows it: auto-refresh runs while the view is mounted and a stale
// view refreshes when it becomes visible again.
package binding

import (
	"context"
	"sync"
)

// Syncer is the part of a syncstore.Store a view binds to.
type Syncer interface {
	StartAutoRefresh()
	StopAutoRefresh()
	Cancel()
	IsStale() bool
	Refresh(ctx context.Context) error
}

// Binding tracks whether a view is mounted and visible.
type Binding struct {
	s   Syncer
	run func(func())

	mu      sync.Mutex
	mounted bool
	visible bool
}

// Option configures a Binding.
type Option func(*Binding)

// WithRunner replaces how a visibility refresh is launched. The default
// runs it on a new goroutine.
func WithRunner(run func(func())) Option {
	return func(b *Binding) {
		b.run = run
	}
}

// New binds s. The view starts unmounted and visible.
func New(s Syncer, opts ...Option) *Binding {
	b := &Binding{
		s:       s,
		run:     func(f func()) { go f() },
		visible: true,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Mount starts auto-refresh. Mounting twice has no further effect.
func (b *Binding) Mount() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.mounted {
		return
	}
	b.mounted = true
	b.s.StartAutoRefresh()
}

// Unmount stops auto-refresh and cancels whatever is in flight.
func (b *Binding) Unmount() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.mounted {
		return
	}
	b.mounted = false
	b.s.StopAutoRefresh()
	b.s.Cancel()
}

// VisibilityChanged records the view's visibility. When a mounted view
// becomes visible and its data is stale, a refresh with the last parameters
// is launched. It reports whether one was.
func (b *Binding) VisibilityChanged(ctx context.Context, visible bool) bool {
	b.mu.Lock()
	wasVisible := b.visible
	b.visible = visible
	mounted := b.mounted
	b.mu.Unlock()

	if !mounted || !visible || wasVisible || !b.s.IsStale() {
		return false
	}
	b.run(func() { _ = b.s.Refresh(ctx) })
	return true
}

// Mounted reports whether Mount has been called without a matching Unmount.
func (b *Binding) Mounted() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.mounted
}
