package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/storeops-gateway/internal/adapters/http/middleware"
)

func TestRequestID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		inbound string
		keep    bool
	}{
		{name: "generated when absent", inbound: "", keep: false},
		{name: "kept when well formed", inbound: "req-123:abc_4.5", keep: true},
		{name: "replaced when it has spaces", inbound: "req 123", keep: false},
		{name: "replaced when it has control characters", inbound: "req\x1b[31m", keep: false},
		{name: "replaced when too long", inbound: strings.Repeat("a", 129), keep: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got string
			handler := middleware.RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				got = middleware.RequestIDFromContext(r.Context())
			}))

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/health/live", http.NoBody)
			if tt.inbound != "" {
				req.Header.Set("X-Request-ID", tt.inbound)
			}
			handler.ServeHTTP(rec, req)

			if tt.keep {
				if got != tt.inbound {
					t.Errorf("request ID = %q, want %q", got, tt.inbound)
				}
			} else if _, err := uuid.Parse(got); err != nil {
				t.Errorf("request ID = %q, want a generated UUID", got)
			}
			if h := rec.Header().Get("X-Request-ID"); h != got {
				t.Errorf("X-Request-ID header = %q, want %q", h, got)
			}
		})
	}
}

func TestCorrelationID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		inbound string
		want    string
	}{
		{name: "falls back to request ID", inbound: "", want: "req-1"},
		{name: "keeps caller value", inbound: "checkout-flow-9", want: "checkout-flow-9"},
		{name: "ignores malformed caller value", inbound: "a\nb", want: "req-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got string
			handler := middleware.RequestID()(middleware.CorrelationID()(
				http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
					got = middleware.CorrelationIDFromContext(r.Context())
				}),
			))

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/proxy/auth/me", http.NoBody)
			req.Header.Set("X-Request-ID", "req-1")
			if tt.inbound != "" {
				req.Header["X-Correlation-Id"] = []string{tt.inbound}
			}
			handler.ServeHTTP(rec, req)

			if got != tt.want {
				t.Errorf("correlation ID = %q, want %q", got, tt.want)
			}
			if h := rec.Header().Get("X-Correlation-ID"); h != tt.want {
				t.Errorf("X-Correlation-ID header = %q, want %q", h, tt.want)
			}
		})
	}
}

func TestIDsFromEmptyContext(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	if id := middleware.RequestIDFromContext(req.Context()); id != "" {
		t.Errorf("RequestIDFromContext = %q, want empty", id)
	}
	if id := middleware.CorrelationIDFromContext(req.Context()); id != "" {
		t.Errorf("CorrelationIDFromContext = %q, want empty", id)
	}
}
