package domain

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"
)

// ErrorCode is the closed set of failure codes shared by every gateway route and client adapter.
// Codes are strings so they serialize naturally and stay readable in logs.
type ErrorCode string

const (
	// Caller input errors, detected before any outbound call.

	CodeMissingParam    ErrorCode = "MISSING_PARAM"
	CodeInvalidParam    ErrorCode = "INVALID_PARAM"
	CodeValidationError ErrorCode = "VALIDATION_ERROR"

	// Authentication and authorization.

	// CodeNotAuthenticated means no credential was presented at all.
	CodeNotAuthenticated ErrorCode = "NOT_AUTHENTICATED"
	// CodeUnauthorized means a credential was presented and the upstream rejected it.
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"
	CodeForbidden    ErrorCode = "FORBIDDEN"

	// Upstream outcomes.

	CodeNotFound    ErrorCode = "NOT_FOUND"
	CodeRateLimited ErrorCode = "RATE_LIMITED"
	CodeTimeout     ErrorCode = "TIMEOUT"
	CodeNetwork     ErrorCode = "NETWORK_ERROR"
	// CodeUpstream means the upstream answered but the body was absent or malformed.
	CodeUpstream ErrorCode = "UPSTREAM_ERROR"
	// CodeServer means the upstream answered with a 5xx status.
	CodeServer  ErrorCode = "SERVER_ERROR"
	CodeUnknown ErrorCode = "UNKNOWN"

	// CodeNoStore is client-side only: no store scope has been selected.
	CodeNoStore ErrorCode = "NO_STORE"
)

type classification struct {
	status    int
	retryable bool
}

// defaultClassifications gives each code its HTTP status and retryability.
// CodeUnknown is absent because both depend on the observed status.
var defaultClassifications = map[ErrorCode]classification{
	CodeMissingParam:     {http.StatusBadRequest, false},
	CodeInvalidParam:     {http.StatusBadRequest, false},
	CodeValidationError:  {http.StatusUnprocessableEntity, false},
	CodeNotAuthenticated: {http.StatusUnauthorized, false},
	CodeUnauthorized:     {http.StatusUnauthorized, true},
	CodeForbidden:        {http.StatusForbidden, false},
	CodeNotFound:         {http.StatusNotFound, false},
	CodeRateLimited:      {http.StatusTooManyRequests, true},
	CodeTimeout:          {http.StatusGatewayTimeout, true},
	CodeNetwork:          {http.StatusBadGateway, true},
	CodeUpstream:         {http.StatusBadGateway, true},
	CodeServer:           {http.StatusBadGateway, true},
	CodeNoStore:          {0, false},
}

// Known reports whether c is a member of the closed code set.
func (c ErrorCode) Known() bool {
	if c == CodeUnknown {
		return true
	}
	_, ok := defaultClassifications[c]
	return ok
}

// IsAuthClass reports whether recovering from c requires user action
// (signing in again or being granted access), so automatic retries are pointless.
func (c ErrorCode) IsAuthClass() bool {
	switch c {
	case CodeUnauthorized, CodeNotAuthenticated, CodeForbidden:
		return true
	default:
		return false
	}
}

// Sentinel errors for errors.Is() checking. A *Error matches the sentinel with the same code.
var (
	ErrNotAuthenticated = New(CodeNotAuthenticated, "not authenticated")
	ErrUnauthorized     = New(CodeUnauthorized, "unauthorized")
	ErrForbidden        = New(CodeForbidden, "forbidden")
	ErrNotFound         = New(CodeNotFound, "not found")
	ErrValidation       = New(CodeValidationError, "validation error")
	ErrTimeout          = New(CodeTimeout, "timeout")
	ErrNoStore          = New(CodeNoStore, "no store selected")
)

// Error is the structured error produced once at the boundary nearest the failure.
// Layers above it re-serialize it but never re-derive it.
type Error struct {
	Code       ErrorCode
	Message    string
	Status     int
	Retryable  bool
	RetryAfter time.Duration
	Details    map[string]any

	// Domain names the upstream domain the error belongs to (maintenance, qa, ...).
	// Empty for errors raised before a domain is known.
	Domain string

	cause error
}

// New returns an error with the code's default status and retryability.
// Codes outside the closed set collapse to CodeUnknown.
func New(code ErrorCode, message string) *Error {
	c, ok := defaultClassifications[code]
	if !ok {
		code = CodeUnknown
		c = classification{status: http.StatusInternalServerError, retryable: true}
	}
	return &Error{Code: code, Message: message, Status: c.status, Retryable: c.retryable}
}

// Newf is New with a formatted message.
func Newf(code ErrorCode, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap returns a structured error that keeps cause reachable through errors.Unwrap.
func Wrap(cause error, code ErrorCode, message string) *Error {
	e := New(code, message)
	e.cause = cause
	return e
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Domain != "" {
		b.WriteString(e.Domain)
		b.WriteString(": ")
	}
	b.WriteString(string(e.Code))
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.cause != nil {
		b.WriteString(": ")
		b.WriteString(e.cause.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches any *Error carrying the same code, so sentinels work with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// WithDetail sets a details entry and returns e for chaining.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithDomain tags e with the upstream domain it belongs to.
func (e *Error) WithDomain(domain string) *Error {
	e.Domain = domain
	return e
}

// AsError extracts the structured error from err's chain.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// CodeOf returns the code of err, or CodeUnknown when err carries no structured error.
func CodeOf(err error) ErrorCode {
	if e, ok := AsError(err); ok {
		return e.Code
	}
	return CodeUnknown
}

// MissingParam reports a required parameter that was not supplied.
func MissingParam(name string) *Error {
	return Newf(CodeMissingParam, "missing required parameter %q", name).WithDetail("param", name)
}

// InvalidParam reports a parameter that failed its allow-list check.
func InvalidParam(name, reason string) *Error {
	return Newf(CodeInvalidParam, "invalid parameter %q: %s", name, reason).WithDetail("param", name)
}

// ValidationError reports field-level failures as a VALIDATION_ERROR.
// The map is copied into Details["fields"].
func ValidationError(fields map[string]string) *Error {
	parts := make([]string, 0, len(fields))
	copied := make(map[string]string, len(fields))
	for field, msg := range fields {
		parts = append(parts, field+": "+msg)
		copied[field] = msg
	}
	sort.Strings(parts)
	return New(CodeValidationError, "validation failed: "+strings.Join(parts, "; ")).
		WithDetail("fields", copied)
}
