package domain

import (
	"math"
	"time"
)

// ErrorBody is the serialized form of *Error inside the {success:false, error:{...}} envelope.
// RetryAfter is whole seconds.
type ErrorBody struct {
	Code       ErrorCode      `json:"code"`
	Message    string         `json:"message"`
	Retryable  bool           `json:"retryable"`
	RetryAfter int            `json:"retryAfter,omitempty"`
	Details    map[string]any `json:"details,omitempty"`
}

// ErrorEnvelope is the failure arm of the gateway's response union.
type ErrorEnvelope struct {
	Success bool      `json:"success"`
	Error   ErrorBody `json:"error"`
}

// Body returns the wire form of e.
func (e *Error) Body() ErrorBody {
	return ErrorBody{
		Code:       e.Code,
		Message:    e.Message,
		Retryable:  e.Retryable,
		RetryAfter: int(math.Ceil(e.RetryAfter.Seconds())),
		Details:    e.Details,
	}
}

// Envelope wraps e in the failure envelope.
func (e *Error) Envelope() ErrorEnvelope {
	return ErrorEnvelope{Success: false, Error: e.Body()}
}

// FromBody re-derives a structured error from its wire form. Only the code and flags in the
// body are trusted; status is the HTTP status the body arrived with.
func FromBody(status int, b ErrorBody) *Error {
	code := b.Code
	if !code.Known() {
		code = CodeUnknown
	}
	return &Error{
		Code:       code,
		Message:    b.Message,
		Status:     status,
		Retryable:  b.Retryable,
		RetryAfter: time.Duration(b.RetryAfter) * time.Second,
		Details:    b.Details,
	}
}
