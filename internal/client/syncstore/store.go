// Package syncstore keeps one domain's data in sync with the gateway.
//
// A Store owns the last fetched snapshot, the handle of the fetch in flight,
// the auto-refresh timer and a bounded client-level retry loop. Starting a
// fetch cancels the previous one; a canceled fetch never writes state, even
// if its response arrives later.
package syncstore

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/jsamuelsen11/storeops-gateway/internal/domain"
)

// ErrCanceled is returned by Fetch and Refresh when the call was superseded
// by a newer fetch or aborted by Cancel, Reset or the caller's context.
var ErrCanceled = errors.New("fetch canceled")

// FetchFunc loads one snapshot. It is normally a domain adapter method.
type FetchFunc[P, T any] func(ctx context.Context, params P) (T, error)

// Options tune a Store. Zero durations disable the matching feature.
type Options struct {
	// Name identifies the store in log records.
	Name string
	// StaleAfter is the staleness window.
	StaleAfter time.Duration
	// RefreshInterval is the auto-refresh period.
	RefreshInterval time.Duration
	// RetryDelay is the wait between client-level retries.
	RetryDelay time.Duration
	// MaxRetries bounds client-level retries per fetch.
	MaxRetries int
	Logger     *slog.Logger
}

// Store synchronizes one kind of payload. The zero value is not usable; call New.
type Store[P, T any] struct {
	fetch  FetchFunc[P, T]
	opts   Options
	logger *slog.Logger
	now    func() time.Time

	mu        sync.Mutex
	state     State[T]
	params    P
	gen       uint64
	cancel    context.CancelFunc
	autoStop  context.CancelFunc
	subs      map[int]func(State[T])
	nextSubID int
}

// New creates an idle Store around fetch.
func New[P, T any](fetch FetchFunc[P, T], opts Options) *Store[P, T] {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if opts.Name != "" {
		logger = logger.With(slog.String("store", opts.Name))
	}
	if opts.MaxRetries < 0 {
		opts.MaxRetries = 0
	}
	return &Store[P, T]{
		fetch:  fetch,
		opts:   opts,
		logger: logger,
		now:    time.Now,
		subs:   make(map[int]func(State[T])),
	}
}

// Snapshot returns a copy of the current state.
func (s *Store[P, T]) Snapshot() State[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers fn to be called with a copy of the state after every
// change. fn runs on whichever goroutine made the change and must not block.
// Concurrent changes may reach fn out of order; keep the copy with the
// highest Version. The returned func unsubscribes.
func (s *Store[P, T]) Subscribe(fn func(State[T])) func() {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Fetch cancels any fetch in flight and loads params. It blocks until the
// fetch settles and returns nil on success, the final *domain.Error on
// failure, or ErrCanceled when a newer call took over.
//
// Failures that are retryable and not authentication-class are retried up
// to MaxRetries times, RetryDelay apart. The wait is abandoned as soon as
// the fetch is canceled.
func (s *Store[P, T]) Fetch(ctx context.Context, params P) error {
	ctx, gen := s.begin(ctx, params)

	for attempt := 0; ; attempt++ {
		data, err := s.fetch(ctx, params)
		if err == nil {
			if !s.succeed(gen, data) {
				return ErrCanceled
			}
			return nil
		}

		if ctx.Err() != nil || !s.current(gen) {
			s.abandon(gen)
			return ErrCanceled
		}

		e := asDomainError(err)
		if !s.shouldRetry(e, attempt) {
			if !s.fail(gen, e) {
				return ErrCanceled
			}
			s.logger.WarnContext(ctx, "fetch failed",
				slog.String("code", string(e.Code)),
				slog.Int("attempts", attempt+1),
			)
			return e
		}

		delay := max(s.opts.RetryDelay, e.RetryAfter)
		s.logger.WarnContext(ctx, "retrying fetch",
			slog.String("code", string(e.Code)),
			slog.Int("attempt", attempt+1),
			slog.Int("max_retries", s.opts.MaxRetries),
			slog.Duration("backoff", delay),
		)
		if !sleep(ctx, delay) {
			s.abandon(gen)
			return ErrCanceled
		}
	}
}

// Refresh fetches again with the parameters of the last Fetch.
func (s *Store[P, T]) Refresh(ctx context.Context) error {
	s.mu.Lock()
	params := s.params
	s.mu.Unlock()
	return s.Fetch(ctx, params)
}

// IsStale reports whether no fetch has succeeded yet or the last success is
// older than the staleness window.
func (s *Store[P, T]) IsStale() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.LastFetchedAt.IsZero() {
		return true
	}
	return s.now().Sub(s.state.LastFetchedAt) > s.opts.StaleAfter
}

// Busy reports whether a fetch is in flight.
func (s *Store[P, T]) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.IsLoading || s.state.IsRefreshing
}

// StartAutoRefresh refreshes every RefreshInterval until StopAutoRefresh or
// Reset. A tick is skipped while a fetch is in flight. Calling it while
// already running does nothing.
func (s *Store[P, T]) StartAutoRefresh() {
	if s.opts.RefreshInterval <= 0 {
		return
	}

	s.mu.Lock()
	if s.autoStop != nil {
		s.mu.Unlock()
		return
	}
	ctx, stop := context.WithCancel(context.Background())
	s.autoStop = stop
	s.mu.Unlock()

	go s.autoRefresh(ctx)
}

// StopAutoRefresh stops the auto-refresh timer. It is safe to call when the
// timer is not running. A refresh it triggered is canceled too.
func (s *Store[P, T]) StopAutoRefresh() {
	s.mu.Lock()
	stop := s.autoStop
	s.autoStop = nil
	s.mu.Unlock()

	if stop != nil {
		stop()
	}
}

// AutoRefreshing reports whether the auto-refresh timer is running.
func (s *Store[P, T]) AutoRefreshing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.autoStop != nil
}

// Cancel aborts the fetch in flight, including a pending retry wait, and
// clears the loading flags. Data and error are left as they were.
func (s *Store[P, T]) Cancel() {
	s.mu.Lock()
	s.abortLocked()
	changed := s.state.IsLoading || s.state.IsRefreshing
	s.state.IsLoading = false
	s.state.IsRefreshing = false
	s.mu.Unlock()

	if changed {
		s.notify()
	}
}

// Reset cancels the fetch in flight, any retry wait and the auto-refresh
// timer, and returns the store to its initial state.
func (s *Store[P, T]) Reset() {
	s.mu.Lock()
	s.abortLocked()
	stop := s.autoStop
	s.autoStop = nil
	s.state = State[T]{Version: s.state.Version}
	var zero P
	s.params = zero
	s.mu.Unlock()

	if stop != nil {
		stop()
	}
	s.notify()
}

func (s *Store[P, T]) autoRefresh(ctx context.Context) {
	ticker := time.NewTicker(s.opts.RefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if s.Busy() {
				continue
			}
			s.logger.DebugContext(ctx, "auto refresh")
			_ = s.Refresh(ctx)
		}
	}
}

// begin makes params the current fetch. The returned context is canceled
// when a newer fetch starts or the store is canceled or reset.
func (s *Store[P, T]) begin(parent context.Context, params P) (context.Context, uint64) {
	s.mu.Lock()
	s.abortLocked()
	ctx, cancel := context.WithCancel(parent)
	s.cancel = cancel
	gen := s.gen

	s.params = params
	if p, ok := any(params).(Pager); ok {
		s.state.CurrentPage = p.PageNumber()
	}
	if s.state.HasData {
		s.state.IsRefreshing = true
		s.state.IsLoading = false
	} else {
		s.state.IsLoading = true
		s.state.IsRefreshing = false
	}
	s.mu.Unlock()

	s.notify()
	return ctx, gen
}

// abortLocked cancels the fetch in flight and invalidates its generation.
func (s *Store[P, T]) abortLocked() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.gen++
}

// abandon clears the loading flags of a fetch whose own context ended while
// it was still current. Superseded fetches leave state to their successor.
func (s *Store[P, T]) abandon(gen uint64) {
	s.mu.Lock()
	if s.gen != gen {
		s.mu.Unlock()
		return
	}
	s.state.IsLoading = false
	s.state.IsRefreshing = false
	s.finishLocked()
	s.mu.Unlock()

	s.notify()
}

func (s *Store[P, T]) current(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen == gen
}

func (s *Store[P, T]) succeed(gen uint64, data T) bool {
	s.mu.Lock()
	if s.gen != gen {
		s.mu.Unlock()
		return false
	}
	s.state.Data = data
	s.state.HasData = true
	s.state.Err = nil
	s.state.LastFetchedAt = s.now()
	s.state.FetchCount++
	s.state.IsLoading = false
	s.state.IsRefreshing = false
	s.finishLocked()
	s.mu.Unlock()

	s.notify()
	return true
}

func (s *Store[P, T]) fail(gen uint64, e *domain.Error) bool {
	s.mu.Lock()
	if s.gen != gen {
		s.mu.Unlock()
		return false
	}
	s.state.Err = e
	s.state.IsLoading = false
	s.state.IsRefreshing = false
	s.finishLocked()
	s.mu.Unlock()

	s.notify()
	return true
}

// finishLocked releases the context of the fetch that just settled.
func (s *Store[P, T]) finishLocked() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *Store[P, T]) shouldRetry(e *domain.Error, attempt int) bool {
	return e.Retryable && !e.Code.IsAuthClass() && attempt < s.opts.MaxRetries
}

func (s *Store[P, T]) notify() {
	s.mu.Lock()
	s.state.Version++
	st := s.state
	subs := make([]func(State[T]), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(st)
	}
}

// sleep waits for d or until ctx is done. It reports whether the full
// duration elapsed.
func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

func asDomainError(err error) *domain.Error {
	if e, ok := domain.AsError(err); ok {
		return e
	}
	return domain.Wrap(err, domain.CodeUnknown, err.Error())
}
