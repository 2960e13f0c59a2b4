package handlers_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/storeops-gateway/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/storeops-gateway/internal/domain"
	"github.com/jsamuelsen11/storeops-gateway/internal/ports"
)

const testToken = "caller-token"

// newRequest builds a request carrying the caller token the way
// middleware.RequireBearer would, plus any chi URL params.
func newRequest(method, target string, body io.Reader, params map[string]string) *http.Request {
	r := httptest.NewRequest(method, target, body)
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	ctx := context.WithValue(r.Context(), chi.RouteCtxKey, rctx)
	ctx = middleware.WithBearerToken(ctx, testToken)
	return r.WithContext(ctx)
}

func jsonBody(s string) io.Reader {
	return strings.NewReader(s)
}

func okPayload(body string) *ports.Payload {
	return &ports.Payload{Status: http.StatusOK, Body: json.RawMessage(body), Source: ports.SourceUpstream}
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}

func requireErrorCode(t *testing.T, rec *httptest.ResponseRecorder, want domain.ErrorCode) domain.ErrorEnvelope {
	t.Helper()
	env := decodeJSON[domain.ErrorEnvelope](t, rec)
	if env.Success {
		t.Error("success = true, want false")
	}
	if env.Error.Code != want {
		t.Errorf("code = %s, want %s", env.Error.Code, want)
	}
	return env
}

func requireCache(t *testing.T, rec *httptest.ResponseRecorder, want string) {
	t.Helper()
	if got := rec.Header().Get("Cache-Control"); got != want {
		t.Errorf("Cache-Control = %q, want %q", got, want)
	}
}
