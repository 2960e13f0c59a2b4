package domain

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// FromStatus classifies a non-2xx upstream response status.
// retryAfter is the raw Retry-After header value and is only consulted for 429.
func FromStatus(status int, retryAfter string) *Error {
	switch {
	case status == http.StatusUnauthorized:
		return New(CodeUnauthorized, "upstream rejected the credential")
	case status == http.StatusForbidden:
		return New(CodeForbidden, "upstream denied access")
	case status == http.StatusNotFound:
		return New(CodeNotFound, "resource not found")
	case status == http.StatusUnprocessableEntity:
		return New(CodeValidationError, "upstream rejected the payload")
	case status == http.StatusTooManyRequests:
		e := New(CodeRateLimited, "upstream rate limit exceeded")
		e.RetryAfter = ParseRetryAfter(retryAfter, time.Now())
		return e
	case status >= http.StatusInternalServerError:
		e := Newf(CodeServer, "upstream returned %d", status)
		e.Status = status
		return e
	default:
		return &Error{
			Code:      CodeUnknown,
			Message:   fmt.Sprintf("unexpected upstream status %d", status),
			Status:    status,
			Retryable: status >= http.StatusInternalServerError,
		}
	}
}

type timeout interface {
	Timeout() bool
}

// FromTransport classifies a failure that produced no HTTP response at all.
func FromTransport(err error) *Error {
	var t timeout
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &t) && t.Timeout()) {
		return Wrap(err, CodeTimeout, "upstream did not respond in time")
	}
	if errors.Is(err, context.Canceled) {
		return Wrap(err, CodeNetwork, "request canceled")
	}
	return Wrap(err, CodeNetwork, "upstream unreachable")
}

// ParseRetryAfter accepts both forms of Retry-After: delta seconds and an HTTP date.
// It returns zero when the header is absent or unparseable.
func ParseRetryAfter(v string, now time.Time) time.Duration {
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil {
		if secs < 0 {
			return 0
		}
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(v); err == nil {
		if d := at.Sub(now); d > 0 {
			return d.Round(time.Second)
		}
	}
	return 0
}
