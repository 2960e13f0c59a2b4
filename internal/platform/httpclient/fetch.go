package httpclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrTimeout is returned by FetchBounded when no response headers arrive in time.
// It reports Timeout() == true, like net.Error timeouts.
var ErrTimeout error = timeoutError{}

type timeoutError struct{}

func (timeoutError) Error() string { return "no response before timeout" }
func (timeoutError) Timeout() bool { return true }
func (timeoutError) Temporary() bool { return true }

// Doer is the transport FetchBounded drives. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// FetchBounded issues one request and fails with ErrTimeout when no response
// headers arrive within timeout. Non-2xx responses are returned as-is; they are
// not errors at this layer. A timeout <= 0 disables the bound.
//
// The timer is stopped before FetchBounded returns. The returned body stays
// readable after the deadline and releases the request context when closed.
func FetchBounded(ctx context.Context, doer Doer, req *http.Request, timeout time.Duration) (*http.Response, error) {
	if timeout <= 0 {
		return doer.Do(req.WithContext(ctx))
	}

	ctx, cancel := context.WithCancelCause(ctx)
	timer := time.AfterFunc(timeout, func() { cancel(ErrTimeout) })

	resp, err := doer.Do(req.WithContext(ctx))
	timer.Stop()

	if err != nil {
		timedOut := errors.Is(context.Cause(ctx), ErrTimeout)
		cancel(nil)
		if timedOut {
			return nil, fmt.Errorf("%s %s after %s: %w", req.Method, req.URL.Redacted(), timeout, ErrTimeout)
		}
		return nil, err
	}

	resp.Body = &releasingBody{ReadCloser: resp.Body, release: func() { cancel(nil) }}
	return resp, nil
}

// releasingBody cancels the request context once the caller is done with the body.
type releasingBody struct {
	io.ReadCloser
	release func()
}

func (b *releasingBody) Close() error {
	err := b.ReadCloser.Close()
	b.release()
	return err
}
