package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/storeops-gateway/internal/adapters/http/dto"
	"github.com/jsamuelsen11/storeops-gateway/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/storeops-gateway/internal/domain"
	"github.com/jsamuelsen11/storeops-gateway/internal/platform/logging"
	"github.com/jsamuelsen11/storeops-gateway/internal/ports"
)

// identPattern is the allow-list for storeId and id path parameters.
var identPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,32}$`)

const (
	maxLimit   = 100
	dateLayout = time.DateOnly
)

// pathIdent returns a required identifier path parameter. A request routed
// through a wildcard pattern carries the unmatched segments instead, and is
// rejected as invalid.
func pathIdent(r *http.Request, name string) (string, error) {
	v := chi.URLParam(r, name)
	if v == "" {
		if chi.URLParam(r, "*") != "" {
			return "", domain.InvalidParam(name, "must be a single path segment")
		}
		return "", domain.MissingParam(name)
	}
	if !identPattern.MatchString(v) {
		return "", domain.InvalidParam(name, "must be 1-32 letters, digits, '-' or '_'")
	}
	return v, nil
}

// pathDate returns a required YYYY-MM-DD path parameter that names a real
// calendar day.
func pathDate(r *http.Request, name string) (string, error) {
	v := chi.URLParam(r, name)
	if v == "" {
		return "", domain.MissingParam(name)
	}
	if _, err := time.Parse(dateLayout, v); err != nil {
		return "", domain.InvalidParam(name, "must be a calendar date in YYYY-MM-DD form")
	}
	return v, nil
}

// queryInt parses an optional positive integer query parameter bounded by
// maxVal (0 means unbounded). Absent returns 0.
func queryInt(r *http.Request, name string, maxVal int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || (maxVal > 0 && n > maxVal) {
		if maxVal > 0 {
			return 0, domain.InvalidParam(name, "must be an integer between 1 and "+strconv.Itoa(maxVal))
		}
		return 0, domain.InvalidParam(name, "must be a positive integer")
	}
	return n, nil
}

// callerToken returns the bearer token stored by middleware.RequireBearer.
func callerToken(r *http.Request) string {
	return middleware.BearerToken(r.Context())
}

// respond writes either the payload with the given cache policy or the error
// envelope.
func respond(w http.ResponseWriter, r *http.Request, p *ports.Payload, err error, cachePolicy string) {
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}
	dto.WritePayload(w, r, p, cachePolicy)
}

// validatable is implemented by request DTOs that support validation.
type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the JSON request body into dst and validates it.
// On failure it writes the error envelope and returns false.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	if err := dto.DecodeJSON(w, r, dst); err != nil {
		dto.WriteError(w, r, err)
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteError(w, r, err)
		return false
	}
	return true
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", dto.CacheNoStore)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to encode response",
			slog.Any("error", err),
		)
	}
}
