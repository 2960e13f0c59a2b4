package dto

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/jsamuelsen11/storeops-gateway/internal/domain"
	"github.com/jsamuelsen11/storeops-gateway/internal/platform/logging"
)

// ToDomainError returns err as a structured error. Errors from outside the
// closed taxonomy become UNKNOWN with a generic message; their text is logged
// by the caller, never sent.
func ToDomainError(err error) *domain.Error {
	if e, ok := domain.AsError(err); ok {
		return e
	}
	return domain.Wrap(err, domain.CodeUnknown, "internal error")
}

// statusOf picks the HTTP status for e, defaulting to 500 when the error
// carries none.
func statusOf(e *domain.Error) int {
	if e.Status < http.StatusBadRequest || e.Status > 599 {
		return http.StatusInternalServerError
	}
	return e.Status
}

// WriteError writes the {success:false, error:{...}} envelope for err. Error
// responses are never cached. A RATE_LIMITED error with a known delay also
// sets the Retry-After header.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	e := ToDomainError(err)
	env := e.Envelope()
	logging.Annotate(r.Context(), slog.String("error_code", string(e.Code)))

	h := w.Header()
	h.Set("Content-Type", "application/json")
	h.Set("Cache-Control", CacheNoStore)
	if e.Code == domain.CodeRateLimited && env.Error.RetryAfter > 0 {
		h.Set("Retry-After", strconv.Itoa(env.Error.RetryAfter))
	}
	w.WriteHeader(statusOf(e))

	if encErr := json.NewEncoder(w).Encode(env); encErr != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to encode error response",
			slog.Any("error", encErr),
		)
	}
}
