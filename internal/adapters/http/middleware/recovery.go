package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/storeops-gateway/internal/adapters/http/dto"
	"github.com/jsamuelsen11/storeops-gateway/internal/domain"
)

// Recovery turns a handler panic into a 500 UNKNOWN envelope and one ERROR
// record carrying the panic value and stack. The panic value never reaches
// the caller. When the handler had already started its response, only the
// record is written.
//
// http.ErrAbortHandler is re-raised so net/http can drop the connection
// quietly, as it would without this middleware.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := record(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(v)
				}

				// Recovery runs outside RequestID, so the id is read back
				// from the response headers it set.
				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("request_id", rw.Header().Get(headerRequestID)),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
				)
				if !rw.written {
					dto.WriteError(rw, r, domain.New(domain.CodeUnknown, "internal error"))
				}
			}()

			next.ServeHTTP(rw, r)
		})
	}
}
