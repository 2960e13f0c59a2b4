package http_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/storeops-gateway/internal/adapters/clients/upstream"
	adapthttp "github.com/jsamuelsen11/storeops-gateway/internal/adapters/http"
	"github.com/jsamuelsen11/storeops-gateway/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/storeops-gateway/internal/app"
	"github.com/jsamuelsen11/storeops-gateway/internal/domain"
	"github.com/jsamuelsen11/storeops-gateway/internal/platform/config"
	"github.com/jsamuelsen11/storeops-gateway/internal/platform/health"
	"github.com/jsamuelsen11/storeops-gateway/internal/platform/httpclient"
	"github.com/jsamuelsen11/storeops-gateway/mocks"
)

// newGateway wires the full gateway stack with every route family pointed at
// the same fake upstream.
func newGateway(t *testing.T, upstreamURL string) http.Handler {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)
	policy := httpclient.RetryPolicy{MaxRetries: 2, BaseDelay: 5 * time.Millisecond}
	registry := health.New()

	route := func(name string) app.Route {
		cfg := &config.UpstreamConfig{
			BaseURL: upstreamURL,
			Timeout: time.Second,
			CircuitBreaker: config.CircuitBreakerConfig{
				MaxFailures:   10,
				Timeout:       time.Second,
				HalfOpenLimit: 1,
			},
		}
		client := upstream.New(httpclient.New(cfg, policy, name, nil, logger), false, logger)
		registry.Register(client)
		return app.Route{Upstream: client}
	}

	svc := app.NewGatewayService(app.Routes{
		Maintenance:    route(config.UpstreamMaintenance),
		QA:             route(config.UpstreamQA),
		Report:         route(config.UpstreamReport),
		Auth:           route(config.UpstreamAuth),
		ServiceClients: route(config.UpstreamServiceClients),
	}, nil, logger)

	return adapthttp.NewRouter(
		adapthttp.NewHandlers(svc, registry),
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		middleware.Logging(logger),
	)
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set("Authorization", "Bearer caller-token")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter_AllRoutesRegistered(t *testing.T) {
	t.Parallel()

	registry := mocks.NewMockHealthRegistry(t)
	svc := mocks.NewMockGatewayService(t)
	router := adapthttp.NewRouter(adapthttp.NewHandlers(svc, registry))

	expectedRoutes := []string{
		"GET /health/live",
		"GET /health/ready",
		"GET /proxy/maintenance/{storeId}",
		"GET /proxy/qa/audits",
		"POST /proxy/qa/categories",
		"POST /proxy/qa/entities",
		"GET /proxy/report/{storeId}/{date}",
		"GET /proxy/auth/me",
		"GET /proxy/service-clients",
		"POST /proxy/service-clients",
		"POST /proxy/service-clients/{id}/rotate",
		"POST /proxy/service-clients/{id}/revoke",
		"DELETE /proxy/service-clients/{id}",
	}

	chiRouter, ok := router.(*chi.Mux)
	if !ok {
		t.Fatal("router is not *chi.Mux")
	}

	registered := make(map[string]bool)
	err := chi.Walk(chiRouter, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	})
	if err != nil {
		t.Fatalf("chi.Walk error: %v", err)
	}

	for _, key := range expectedRoutes {
		if !registered[key] {
			t.Errorf("route %s not registered", key)
		}
	}
}

func TestRouter_ProxyRequiresBearer(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		_, _ = io.WriteString(w, `{}`)
	}))
	defer srv.Close()

	router := newGateway(t, srv.URL)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/proxy/qa/audits", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if calls.Load() != 0 {
		t.Errorf("upstream calls = %d, want 0", calls.Load())
	}
}

func TestRouter_HealthIsUnauthenticated(t *testing.T) {
	t.Parallel()

	router := newGateway(t, "http://127.0.0.1:1")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200; body = %s", rec.Code, rec.Body.String())
	}
}

func TestRouter_MaintenanceSuccess(t *testing.T) {
	t.Parallel()

	var gotPath, gotQuery, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath, gotQuery, gotAuth = r.URL.Path, r.URL.RawQuery, r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"count":5,"results":[]}`)
	}))
	defer srv.Close()

	rec := get(t, newGateway(t, srv.URL), "/proxy/maintenance/03795-00001?limit=5")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body = %s", rec.Code, rec.Body.String())
	}
	if gotPath != "/api/maintenance/stores/03795-00001/tickets/" {
		t.Errorf("upstream path = %q", gotPath)
	}
	if gotQuery != "limit=5" {
		t.Errorf("upstream query = %q, want limit=5", gotQuery)
	}
	if gotAuth != "Bearer caller-token" {
		t.Errorf("upstream Authorization = %q, want caller token forwarded", gotAuth)
	}

	var body struct {
		Count int `json:"count"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Count != 5 {
		t.Errorf("count = %d, want 5", body.Count)
	}
	if got := rec.Header().Get("X-Request-ID"); got == "" {
		t.Error("X-Request-ID not set")
	}
}

func TestRouter_RetriesAbsorbed(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) <= 2 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = io.WriteString(w, `{"count":1}`)
	}))
	defer srv.Close()

	rec := get(t, newGateway(t, srv.URL), "/proxy/maintenance/03795-00001")

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200; body = %s", rec.Code, rec.Body.String())
	}
	if calls.Load() != 3 {
		t.Errorf("upstream calls = %d, want 3", calls.Load())
	}
}

func TestRouter_TraversalRejectedWithoutOutboundCall(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	router := newGateway(t, srv.URL)

	for _, target := range []string{
		"/proxy/maintenance/../../etc",
		"/proxy/maintenance/..%2F..%2Fetc",
		"/proxy/maintenance/%2E%2E",
		"/proxy/report/..%2F..%2Fetc/2024-01-01",
	} {
		rec := get(t, router, target)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", target, rec.Code)
			continue
		}
		var env domain.ErrorEnvelope
		if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if env.Error.Code != domain.CodeInvalidParam {
			t.Errorf("%s: code = %s, want INVALID_PARAM", target, env.Error.Code)
		}
	}
	if calls.Load() != 0 {
		t.Errorf("upstream calls = %d, want 0", calls.Load())
	}
}

func TestRouter_ReportFallsBackToSample(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	rec := get(t, newGateway(t, srv.URL), "/proxy/report/03795-00001/2024-03-01")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body = %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("X-Data-Source"); got != "sample" {
		t.Errorf("X-Data-Source = %q, want sample", got)
	}
	if got := rec.Header().Get("Cache-Control"); got != "no-store" {
		t.Errorf("Cache-Control = %q, want no-store", got)
	}

	var body map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["store_id"] != "03795-00001" {
		t.Errorf("store_id = %v, want the requested store", body["store_id"])
	}
}

func TestRouter_ReportNotFoundPropagates(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"detail":"no report for that day"}`)
	}))
	defer srv.Close()

	rec := get(t, newGateway(t, srv.URL), "/proxy/report/03795-00001/2024-03-01")

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	var env domain.ErrorEnvelope
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Error.Code != domain.CodeNotFound {
		t.Errorf("code = %s, want NOT_FOUND", env.Error.Code)
	}
	if _, leaked := env.Error.Details["upstream_body"]; leaked {
		t.Error("upstream body echoed outside development mode")
	}
}

func TestRouter_PostNotRetried(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	req := httptest.NewRequest(http.MethodPost, "/proxy/service-clients/k1/rotate", nil)
	req.Header.Set("Authorization", "Bearer caller-token")
	rec := httptest.NewRecorder()
	newGateway(t, srv.URL).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", rec.Code)
	}
	if calls.Load() != 1 {
		t.Errorf("upstream calls = %d, want 1", calls.Load())
	}
	if got := rec.Header().Get("Cache-Control"); got != "no-store" {
		t.Errorf("Cache-Control = %q, want no-store", got)
	}
}

func TestRouter_NotFoundEnvelope(t *testing.T) {
	t.Parallel()

	rec := get(t, newGateway(t, "http://127.0.0.1:1"), "/nonexistent")

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	var env domain.ErrorEnvelope
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Error.Code != domain.CodeNotFound {
		t.Errorf("code = %s, want NOT_FOUND", env.Error.Code)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPut, "/proxy/qa/audits", nil)
	req.Header.Set("Authorization", "Bearer caller-token")
	rec := httptest.NewRecorder()
	newGateway(t, "http://127.0.0.1:1").ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}
