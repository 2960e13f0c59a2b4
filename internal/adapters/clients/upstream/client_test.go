package upstream_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jsamuelsen11/storeops-gateway/internal/adapters/clients/upstream"
	"github.com/jsamuelsen11/storeops-gateway/internal/domain"
	"github.com/jsamuelsen11/storeops-gateway/internal/platform/config"
	"github.com/jsamuelsen11/storeops-gateway/internal/platform/httpclient"
	"github.com/jsamuelsen11/storeops-gateway/internal/ports"
)

func newClient(t *testing.T, baseURL string, devMode bool) *upstream.Client {
	t.Helper()

	cfg := &config.UpstreamConfig{
		BaseURL: baseURL,
		Timeout: 200 * time.Millisecond,
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   10,
			Timeout:       time.Second,
			HalfOpenLimit: 1,
		},
	}
	policy := httpclient.RetryPolicy{MaxRetries: 2, BaseDelay: 5 * time.Millisecond}
	logger := slog.New(slog.DiscardHandler)

	return upstream.New(httpclient.New(cfg, policy, "maintenance", nil, logger), devMode, logger)
}

func get(path string) ports.UpstreamRequest {
	return ports.UpstreamRequest{Method: http.MethodGet, Path: path, Credential: "caller-token"}
}

func wantCode(t *testing.T, err error, code domain.ErrorCode) *domain.Error {
	t.Helper()

	e, ok := domain.AsError(err)
	if !ok {
		t.Fatalf("error = %v (%T), want *domain.Error", err, err)
	}
	if e.Code != code {
		t.Fatalf("code = %s, want %s (err: %v)", e.Code, code, err)
	}
	return e
}

func TestSend_Success(t *testing.T) {
	t.Parallel()

	var gotPath, gotQuery, gotAuth, gotAccept atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath.Store(r.URL.Path)
		gotQuery.Store(r.URL.RawQuery)
		gotAuth.Store(r.Header.Get("Authorization"))
		gotAccept.Store(r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"count":3,"results":[]}`))
	}))
	t.Cleanup(srv.Close)

	c := newClient(t, srv.URL, false)

	req := get("/api/maintenance/stores/03795-00001/tickets/")
	req.Query = url.Values{"limit": {"5"}}

	resp, err := c.Send(context.Background(), req)
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}

	if resp.Status != http.StatusOK {
		t.Errorf("Status = %d, want 200", resp.Status)
	}
	if string(resp.Body) != `{"count":3,"results":[]}` {
		t.Errorf("Body = %s", resp.Body)
	}
	if got := gotPath.Load(); got != "/api/maintenance/stores/03795-00001/tickets/" {
		t.Errorf("path = %v", got)
	}
	if got := gotQuery.Load(); got != "limit=5" {
		t.Errorf("query = %v, want limit=5", got)
	}
	if got := gotAuth.Load(); got != "Bearer caller-token" {
		t.Errorf("Authorization = %v, want Bearer caller-token", got)
	}
	if got := gotAccept.Load(); got != "application/json" {
		t.Errorf("Accept = %v", got)
	}
	if c.Name() != "maintenance" {
		t.Errorf("Name() = %q", c.Name())
	}
}

func TestSend_PostBody(t *testing.T) {
	t.Parallel()

	var gotBody, gotType atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		gotBody.Store(string(b))
		gotType.Store(r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"cat-1"}`))
	}))
	t.Cleanup(srv.Close)

	c := newClient(t, srv.URL, false)

	resp, err := c.Send(context.Background(), ports.UpstreamRequest{
		Method: http.MethodPost,
		Path:   "/api/qa/categories/",
		Body:   []byte(`{"label":"Fryers"}`),
	})
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}

	if resp.Status != http.StatusCreated {
		t.Errorf("Status = %d, want 201", resp.Status)
	}
	if got := gotBody.Load(); got != `{"label":"Fryers"}` {
		t.Errorf("upstream body = %v", got)
	}
	if got := gotType.Load(); got != "application/json" {
		t.Errorf("Content-Type = %v", got)
	}
}

func TestSend_NoContent(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(srv.Close)

	c := newClient(t, srv.URL, false)

	resp, err := c.Send(context.Background(), ports.UpstreamRequest{Method: http.MethodDelete, Path: "/api/service-clients/sc-1/"})
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if resp.Status != http.StatusNoContent || resp.Body != nil {
		t.Errorf("resp = %d %q, want 204 with nil body", resp.Status, resp.Body)
	}
}

func TestSend_StatusClassification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		status        int
		retryAfter    string
		wantCode      domain.ErrorCode
		wantRetryable bool
		wantAttempts  int32
	}{
		{"unauthorized", http.StatusUnauthorized, "", domain.CodeUnauthorized, true, 1},
		{"forbidden", http.StatusForbidden, "", domain.CodeForbidden, false, 1},
		{"not found", http.StatusNotFound, "", domain.CodeNotFound, false, 1},
		{"rate limited", http.StatusTooManyRequests, "30", domain.CodeRateLimited, true, 1},
		{"server error", http.StatusInternalServerError, "", domain.CodeServer, true, 3},
		{"bad gateway", http.StatusBadGateway, "", domain.CodeServer, true, 3},
		{"teapot", http.StatusTeapot, "", domain.CodeUnknown, false, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var count atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				count.Add(1)
				if tt.retryAfter != "" {
					w.Header().Set("Retry-After", tt.retryAfter)
				}
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"detail":"secret upstream internals"}`))
			}))
			t.Cleanup(srv.Close)

			c := newClient(t, srv.URL, false)

			_, err := c.Send(context.Background(), get("/api/qa/audits/"))
			e := wantCode(t, err, tt.wantCode)

			if e.Retryable != tt.wantRetryable {
				t.Errorf("Retryable = %v, want %v", e.Retryable, tt.wantRetryable)
			}
			if got := count.Load(); got != tt.wantAttempts {
				t.Errorf("attempts = %d, want %d", got, tt.wantAttempts)
			}
			if _, ok := e.Details["upstream_body"]; ok {
				t.Error("upstream body leaked outside dev mode")
			}
			if tt.retryAfter != "" && e.RetryAfter != 30*time.Second {
				t.Errorf("RetryAfter = %v, want 30s", e.RetryAfter)
			}
			if e.Domain != "maintenance" {
				t.Errorf("Domain = %q, want maintenance", e.Domain)
			}
		})
	}
}

func TestSend_DevModeEchoesTruncatedBody(t *testing.T) {
	t.Parallel()

	long := `{"detail":"` + strings.Repeat("x", 1000) + `"}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(long))
	}))
	t.Cleanup(srv.Close)

	c := newClient(t, srv.URL, true)

	_, err := c.Send(context.Background(), get("/api/reports/daily/s1/2024-01-31/"))
	e := wantCode(t, err, domain.CodeNotFound)

	body, ok := e.Details["upstream_body"].(string)
	if !ok {
		t.Fatalf("Details[upstream_body] missing: %v", e.Details)
	}
	if !strings.HasPrefix(body, `{"detail":"xxx`) {
		t.Errorf("upstream_body = %q", body)
	}
	if len(body) > 600 {
		t.Errorf("len(upstream_body) = %d, want truncated", len(body))
	}
	if e.Details["upstream_status"] != http.StatusNotFound {
		t.Errorf("upstream_status = %v, want 404", e.Details["upstream_status"])
	}
}

func TestSend_MalformedBody(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{"not json", "<html>maintenance page</html>"},
		{"truncated json", `{"count":`},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(tt.body))
			}))
			t.Cleanup(srv.Close)

			c := newClient(t, srv.URL, false)

			_, err := c.Send(context.Background(), get("/api/qa/audits/"))
			e := wantCode(t, err, domain.CodeUpstream)
			if e.Status != http.StatusBadGateway {
				t.Errorf("Status = %d, want 502", e.Status)
			}
		})
	}
}

func TestSend_Unreachable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	addr := srv.URL
	srv.Close()

	c := newClient(t, addr, false)

	_, err := c.Send(context.Background(), get("/api/auth/me/"))
	e := wantCode(t, err, domain.CodeNetwork)
	if !e.Retryable {
		t.Error("Retryable = false, want true")
	}
}

func TestSend_Timeout(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	t.Cleanup(srv.Close)

	c := newClient(t, srv.URL, false)

	_, err := c.Send(context.Background(), get("/api/reports/daily/s1/2024-01-31/"))
	e := wantCode(t, err, domain.CodeTimeout)
	if e.Status != http.StatusGatewayTimeout {
		t.Errorf("Status = %d, want 504", e.Status)
	}
	if !errors.Is(err, httpclient.ErrTimeout) {
		t.Errorf("error chain lost ErrTimeout: %v", err)
	}
}

func TestSend_CircuitOpen(t *testing.T) {
	t.Parallel()

	var count atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		count.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)

	cfg := &config.UpstreamConfig{
		BaseURL:        srv.URL,
		Timeout:        time.Second,
		CircuitBreaker: config.CircuitBreakerConfig{MaxFailures: 1, Timeout: time.Minute, HalfOpenLimit: 1},
	}
	logger := slog.New(slog.DiscardHandler)
	c := upstream.New(httpclient.New(cfg, httpclient.RetryPolicy{}, "report", nil, logger), false, logger)

	_, _ = c.Send(context.Background(), get("/api/reports/daily/s1/2024-01-31/"))

	_, err := c.Send(context.Background(), get("/api/reports/daily/s1/2024-01-31/"))
	e := wantCode(t, err, domain.CodeServer)
	if e.Status != http.StatusServiceUnavailable {
		t.Errorf("Status = %d, want 503", e.Status)
	}
	if count.Load() != 1 {
		t.Errorf("upstream hits = %d, want 1", count.Load())
	}
	h := c.Health(context.Background())
	if h.Breaker != ports.BreakerOpen || h.Ready() {
		t.Errorf("Health() = %+v, want open and not ready", h)
	}
	if h.Name != "report" {
		t.Errorf("Health().Name = %q, want report", h.Name)
	}
}
