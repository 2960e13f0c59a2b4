package httpclient

import (
	"bytes"
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/jsamuelsen11/storeops-gateway/internal/platform/config"
	"github.com/jsamuelsen11/storeops-gateway/internal/platform/logging"
)

// Default retry policy shared by every gateway route family.
const (
	DefaultMaxRetries = 2
	DefaultBaseDelay  = 500 * time.Millisecond
)

// RetryPolicy controls how idempotent requests are re-attempted.
// A request is sent at most MaxRetries+1 times. Non-idempotent methods are sent once.
type RetryPolicy struct {
	MaxRetries int
	BaseDelay  time.Duration
	// MaxDelay caps a single wait. Zero means uncapped.
	MaxDelay time.Duration
	// Jitter spreads each wait by ±Jitter of its length. Zero disables it.
	Jitter float64
}

// DefaultRetryPolicy returns MaxRetries=2, BaseDelay=500ms, no cap, no jitter.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxRetries: DefaultMaxRetries, BaseDelay: DefaultBaseDelay}
}

// PolicyFromConfig converts the gateway retry settings into a RetryPolicy.
func PolicyFromConfig(cfg *config.RetryConfig) RetryPolicy {
	return RetryPolicy{
		MaxRetries: cfg.MaxRetries,
		BaseDelay:  cfg.BaseDelay,
		MaxDelay:   cfg.MaxDelay,
		Jitter:     cfg.Jitter,
	}
}

// Delay returns the wait before retry i, where i is 0 for the first retry:
// BaseDelay * 2^i, capped at MaxDelay, then jittered.
func (p RetryPolicy) Delay(i int) time.Duration {
	delay := float64(p.BaseDelay) * math.Pow(2, float64(i))

	if p.MaxDelay > 0 && delay > float64(p.MaxDelay) {
		delay = float64(p.MaxDelay)
	}

	if p.Jitter > 0 {
		delay += delay * p.Jitter * (2*secureRandFloat64() - 1)
	}

	if delay < 0 {
		delay = 0
	}

	return time.Duration(delay)
}

// Attempts returns how many times a request with the given method may be sent.
func (p RetryPolicy) Attempts(method string) int {
	if !isIdempotent(method) || p.MaxRetries <= 0 {
		return 1
	}
	return p.MaxRetries + 1
}

// StatusError describes a retryable status that survived every attempt.
type StatusError struct {
	Service    string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d from %s", e.StatusCode, e.Service)
}

// doWithRetry sends req through FetchBounded up to policy.Attempts times.
// 2xx, 3xx and 4xx responses end the loop at once. 5xx responses and
// retryable transport errors are tried again after policy.Delay. When every
// attempt got a 5xx, the last response is returned with its body open
// alongside a *StatusError.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request) (*http.Response, error) {
	attempts := c.policy.Attempts(req.Method)
	rewind, err := rewindable(req)
	if err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := range attempts {
		if attempt > 0 {
			if err := c.waitForRetry(ctx, req, attempt, attempts, lastErr); err != nil {
				return nil, err
			}
			if err := rewind(); err != nil {
				return nil, err
			}
		}

		resp, err := FetchBounded(ctx, c.doer, req, c.timeout)
		switch {
		case err != nil:
			if !isRetryable(ctx, err) {
				return nil, err
			}
			lastErr = err
		case !isRetryableStatus(resp.StatusCode):
			return resp, nil
		default:
			lastErr = &StatusError{Service: c.name, StatusCode: resp.StatusCode}
			if attempt == attempts-1 {
				return resp, lastErr
			}
			// Drain so the connection can be reused.
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
		}
	}
	return nil, lastErr
}

// rewindable makes req's body sendable again and returns the function that
// resets it before a retry. Bodies without GetBody are read into memory once.
func rewindable(req *http.Request) (func() error, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return func() error { return nil }, nil
	}
	if req.GetBody == nil {
		b, err := io.ReadAll(req.Body)
		_ = req.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("reading request body: %w", err)
		}
		req.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(b)), nil
		}
		req.Body, _ = req.GetBody()
		req.ContentLength = int64(len(b))
	}
	return func() error {
		body, err := req.GetBody()
		if err != nil {
			return fmt.Errorf("rewinding request body: %w", err)
		}
		req.Body = body
		return nil
	}, nil
}

// waitForRetry logs and counts the retry, then waits out its backoff.
func (c *Client) waitForRetry(ctx context.Context, req *http.Request, attempt, attempts int, lastErr error) error {
	delay := c.policy.Delay(attempt - 1)

	logger := logging.FromContext(ctx)
	logger.WarnContext(ctx, "retrying HTTP request",
		slog.String("operation", "httpclient.Do"),
		slog.String("method", req.Method),
		slog.String("url", req.URL.Redacted()),
		slog.String("peer_service", c.name),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", attempts),
		slog.Duration("backoff", delay),
		slog.Any("error", lastErr),
	)

	c.metrics.RecordRetry(ctx, c.name, req.Method)

	return c.sleep(ctx, delay)
}

// sleepContext waits for d unless ctx ends first.
func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// IEEE 754 double-precision constants for random float generation.
const (
	significandBits = 53
	uint64Bits      = 64
)

// secureRandFloat64 returns a random float64 in [0, 1) using crypto/rand.
func secureRandFloat64() float64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0
	}
	return float64(binary.BigEndian.Uint64(b[:])>>(uint64Bits-significandBits)) / float64(uint64(1)<<significandBits)
}

// isIdempotent reports whether a request with method may be safely repeated.
func isIdempotent(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	default:
		return false
	}
}

// isRetryable determines whether a transport error is retryable.
// A per-attempt timeout is retryable; the caller giving up is not.
// Network errors and unknown errors are retryable.
func isRetryable(ctx context.Context, err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, ErrTimeout) {
		return ctx.Err() == nil
	}

	if ctx.Err() != nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	return true
}

// isRetryableStatus reports whether a response status is worth another attempt.
// Only 5xx qualifies; a 4xx, including 429, cannot succeed by repeating the same request.
func isRetryableStatus(statusCode int) bool {
	return statusCode >= http.StatusInternalServerError
}
