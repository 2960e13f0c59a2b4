package httpclient_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/jsamuelsen11/storeops-gateway/internal/platform/config"
	"github.com/jsamuelsen11/storeops-gateway/internal/platform/httpclient"
)

func testConfig(baseURL string) *config.UpstreamConfig {
	return &config.UpstreamConfig{
		BaseURL: baseURL,
		Timeout: 2 * time.Second,
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   3,
			Timeout:       1 * time.Second,
			HalfOpenLimit: 1,
		},
	}
}

func testPolicy() httpclient.RetryPolicy {
	return httpclient.RetryPolicy{MaxRetries: 2, BaseDelay: 10 * time.Millisecond}
}

func noRetries() httpclient.RetryPolicy {
	return httpclient.RetryPolicy{MaxRetries: 0, BaseDelay: 10 * time.Millisecond}
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func newGet(t *testing.T, ctx context.Context, url string) *http.Request {
	t.Helper()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		t.Fatalf("creating request: %v", err)
	}
	return req
}

func closeBody(resp *http.Response) {
	if resp != nil {
		_ = resp.Body.Close()
	}
}

func TestDo_Success(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"count":1}`))
	}))
	t.Cleanup(srv.Close)

	client := httpclient.New(testConfig(srv.URL), testPolicy(), "maintenance", nil, testLogger())

	resp, err := client.Do(context.Background(), newGet(t, context.Background(), srv.URL+"/tickets"))
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	defer closeBody(resp)

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	body, _ := io.ReadAll(resp.Body)
	if string(body) != `{"count":1}` {
		t.Errorf("body = %q", string(body))
	}
}

func TestDo_ServerErrorsAbsorbedByRetry(t *testing.T) {
	t.Parallel()

	var count atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if count.Add(1) <= 2 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	client := httpclient.New(testConfig(srv.URL), testPolicy(), "maintenance", nil, testLogger())

	resp, err := client.Do(context.Background(), newGet(t, context.Background(), srv.URL+"/retry"))
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	defer closeBody(resp)

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	if got := count.Load(); got != 3 {
		t.Errorf("request count = %d, want 3", got)
	}
}

func TestDo_ClientErrorsAttemptedOnce(t *testing.T) {
	t.Parallel()

	statuses := []int{
		http.StatusBadRequest,
		http.StatusUnauthorized,
		http.StatusForbidden,
		http.StatusNotFound,
		http.StatusUnprocessableEntity,
		http.StatusTooManyRequests,
	}

	for _, status := range statuses {
		t.Run(http.StatusText(status), func(t *testing.T) {
			t.Parallel()

			var count atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				count.Add(1)
				w.WriteHeader(status)
			}))
			t.Cleanup(srv.Close)

			client := httpclient.New(testConfig(srv.URL), testPolicy(), "qa", nil, testLogger())

			resp, err := client.Do(context.Background(), newGet(t, context.Background(), srv.URL+"/bad"))
			if err != nil {
				t.Fatalf("Do() error = %v", err)
			}
			defer closeBody(resp)

			if resp.StatusCode != status {
				t.Errorf("status = %d, want %d", resp.StatusCode, status)
			}
			if got := count.Load(); got != 1 {
				t.Errorf("request count = %d, want 1 (no retries for 4xx)", got)
			}
		})
	}
}

func TestDo_MaxRetriesExhausted(t *testing.T) {
	t.Parallel()

	var count atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		count.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("unavailable"))
	}))
	t.Cleanup(srv.Close)

	client := httpclient.New(testConfig(srv.URL), testPolicy(), "report", nil, testLogger())

	resp, err := client.Do(context.Background(), newGet(t, context.Background(), srv.URL+"/unavail"))
	if err == nil {
		t.Fatal("Do() error = nil, want non-nil after max retries")
	}

	var statusErr *httpclient.StatusError
	if !errors.As(err, &statusErr) || statusErr.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("error = %v, want StatusError 503", err)
	}

	if got := count.Load(); got != 3 {
		t.Errorf("request count = %d, want 3", got)
	}

	// Last attempt's response should have body intact.
	if resp == nil {
		t.Fatal("resp is nil, want non-nil with body intact")
	}
	defer closeBody(resp)

	body, _ := io.ReadAll(resp.Body)
	if string(body) != "unavailable" {
		t.Errorf("body = %q, want %q", string(body), "unavailable")
	}
}

func TestDo_NonIdempotentMethodsSentOnce(t *testing.T) {
	t.Parallel()

	methods := []string{http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete}

	for _, method := range methods {
		t.Run(method, func(t *testing.T) {
			t.Parallel()

			var (
				count   atomic.Int32
				gotBody atomic.Value
			)
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				b, _ := io.ReadAll(r.Body)
				gotBody.Store(string(b))
				count.Add(1)
				w.WriteHeader(http.StatusBadGateway)
			}))
			t.Cleanup(srv.Close)

			client := httpclient.New(testConfig(srv.URL), testPolicy(), "service_clients", nil, testLogger())

			req, err := http.NewRequestWithContext(context.Background(), method, srv.URL+"/rotate", strings.NewReader(`{"name":"pos"}`))
			if err != nil {
				t.Fatalf("creating request: %v", err)
			}

			resp, err := client.Do(context.Background(), req)
			defer closeBody(resp)

			if err == nil {
				t.Error("Do() error = nil, want StatusError for 502")
			}
			if got := count.Load(); got != 1 {
				t.Errorf("request count = %d, want 1", got)
			}
			if got, _ := gotBody.Load().(string); got != `{"name":"pos"}` {
				t.Errorf("upstream body = %q", got)
			}
		})
	}
}

func TestDo_SlowAttemptTimesOutThenRetried(t *testing.T) {
	t.Parallel()

	var count atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if count.Add(1) == 1 {
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	cfg := testConfig(srv.URL)
	cfg.Timeout = 100 * time.Millisecond

	client := httpclient.New(cfg, testPolicy(), "report", nil, testLogger())

	resp, err := client.Do(context.Background(), newGet(t, context.Background(), srv.URL+"/slow"))
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	defer closeBody(resp)

	if got := count.Load(); got != 2 {
		t.Errorf("request count = %d, want 2", got)
	}
}

func TestDo_EveryAttemptTimesOut(t *testing.T) {
	t.Parallel()

	var count atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		count.Add(1)
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	t.Cleanup(srv.Close)

	cfg := testConfig(srv.URL)
	cfg.Timeout = 50 * time.Millisecond

	client := httpclient.New(cfg, testPolicy(), "report", nil, testLogger())

	resp, err := client.Do(context.Background(), newGet(t, context.Background(), srv.URL+"/slow"))
	closeBody(resp)

	if !errors.Is(err, httpclient.ErrTimeout) {
		t.Fatalf("error = %v, want ErrTimeout", err)
	}
	if resp != nil {
		t.Error("resp is non-nil, want nil for timeout")
	}
	if got := count.Load(); got != 3 {
		t.Errorf("request count = %d, want 3", got)
	}
}

func TestDo_CancelDuringBackoffStopsRetrying(t *testing.T) {
	t.Parallel()

	var count atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		count.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	policy := httpclient.RetryPolicy{MaxRetries: 2, BaseDelay: 10 * time.Second}
	client := httpclient.New(testConfig(srv.URL), policy, "qa", nil, testLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	resp, err := client.Do(ctx, newGet(t, ctx, srv.URL+"/cancel"))
	closeBody(resp)

	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("error = %v, want context.DeadlineExceeded", err)
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("Do() took %v, backoff wait was not cancelled", elapsed)
	}

	// Give a resumed retry (if any) a chance to hit the server.
	time.Sleep(50 * time.Millisecond)
	if got := count.Load(); got != 1 {
		t.Errorf("request count = %d, want 1", got)
	}
}

func TestDo_HeaderInjection(t *testing.T) {
	t.Parallel()

	var gotReqID, gotCorrID atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotReqID.Store(r.Header.Get("X-Request-ID"))
		gotCorrID.Store(r.Header.Get("X-Correlation-ID"))
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	client := httpclient.New(testConfig(srv.URL), testPolicy(), "auth", nil, testLogger())

	ctx := httpclient.WithRequestID(context.Background(), "req-123")
	ctx = httpclient.WithCorrelationID(ctx, "corr-456")

	resp, err := client.Do(ctx, newGet(t, ctx, srv.URL+"/headers"))
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	defer closeBody(resp)

	if got, _ := gotReqID.Load().(string); got != "req-123" {
		t.Errorf("X-Request-ID = %q, want %q", got, "req-123")
	}
	if got, _ := gotCorrID.Load().(string); got != "corr-456" {
		t.Errorf("X-Correlation-ID = %q, want %q", got, "corr-456")
	}
}

func TestDo_NoHeadersWithoutContext(t *testing.T) {
	t.Parallel()

	var gotReqID atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotReqID.Store(r.Header.Get("X-Request-ID"))
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	client := httpclient.New(testConfig(srv.URL), testPolicy(), "auth", nil, testLogger())

	resp, err := client.Do(context.Background(), newGet(t, context.Background(), srv.URL+"/noheaders"))
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	defer closeBody(resp)

	if got, _ := gotReqID.Load().(string); got != "" {
		t.Errorf("X-Request-ID = %q, want empty", got)
	}
}

func TestDo_CircuitBreakerOpens(t *testing.T) {
	t.Parallel()

	var count atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		count.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	cfg := testConfig(srv.URL)
	cfg.CircuitBreaker.MaxFailures = 1

	client := httpclient.New(cfg, noRetries(), "maintenance", nil, testLogger())

	// First request: triggers failure, CB counts it.
	resp, _ := client.Do(context.Background(), newGet(t, context.Background(), srv.URL+"/cb"))
	closeBody(resp)

	// Second request: CB should be open, no server hit.
	countBefore := count.Load()
	resp, err := client.Do(context.Background(), newGet(t, context.Background(), srv.URL+"/cb"))
	closeBody(resp)

	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("error = %v, want gobreaker.ErrOpenState", err)
	}
	if count.Load() != countBefore {
		t.Error("server was hit while circuit breaker should be open")
	}
}

func TestDo_ClientErrorsDoNotTripBreaker(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)

	cfg := testConfig(srv.URL)
	cfg.CircuitBreaker.MaxFailures = 1

	client := httpclient.New(cfg, noRetries(), "report", nil, testLogger())

	for range 3 {
		resp, err := client.Do(context.Background(), newGet(t, context.Background(), srv.URL+"/missing"))
		closeBody(resp)
		if err != nil {
			t.Fatalf("Do() error = %v, want nil for 404", err)
		}
	}

	if state, _ := client.Breaker(); state != gobreaker.StateClosed {
		t.Errorf("Breaker() state = %v, want closed after 404s", state)
	}
}

func TestDo_CircuitBreakerRecovery(t *testing.T) {
	t.Parallel()

	var shouldFail atomic.Bool
	shouldFail.Store(true)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if shouldFail.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	cfg := testConfig(srv.URL)
	cfg.CircuitBreaker.MaxFailures = 1
	cfg.CircuitBreaker.Timeout = 100 * time.Millisecond

	client := httpclient.New(cfg, noRetries(), "maintenance", nil, testLogger())

	// Trip the circuit breaker.
	resp, _ := client.Do(context.Background(), newGet(t, context.Background(), srv.URL+"/recover"))
	closeBody(resp)

	resp, err := client.Do(context.Background(), newGet(t, context.Background(), srv.URL+"/recover"))
	closeBody(resp)
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Fatalf("expected circuit breaker open, got: %v", err)
	}

	// Wait for CB timeout to transition to half-open.
	time.Sleep(150 * time.Millisecond)

	shouldFail.Store(false)

	// Half-open probe should succeed, closing the circuit.
	resp, err = client.Do(context.Background(), newGet(t, context.Background(), srv.URL+"/recover"))
	if err != nil {
		t.Fatalf("Do() error = %v, want nil (circuit should recover)", err)
	}
	defer closeBody(resp)

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want %d after recovery", resp.StatusCode, http.StatusOK)
	}
}

func TestDo_ContextCancellation(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	client := httpclient.New(testConfig(srv.URL), testPolicy(), "qa", nil, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	resp, err := client.Do(ctx, newGet(t, ctx, srv.URL+"/cancel"))
	closeBody(resp)
	if err == nil {
		t.Fatal("Do() error = nil, want context error")
	}
}

func TestClient_NameAndBaseURL(t *testing.T) {
	t.Parallel()

	client := httpclient.New(testConfig("http://localhost:8000/"), testPolicy(), "report", nil, testLogger())

	if got := client.Name(); got != "report" {
		t.Errorf("Name() = %q, want %q", got, "report")
	}
	if got := client.BaseURL(); got != "http://localhost:8000" {
		t.Errorf("BaseURL() = %q, want trailing slash trimmed", got)
	}
}

func TestClient_Breaker(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		maxFailures  int
		failures     int
		wait         time.Duration
		wantState    gobreaker.State
		wantFailures uint32
	}{
		{name: "fresh client is closed", maxFailures: 1, wantState: gobreaker.StateClosed},
		{name: "counts failures while closed", maxFailures: 3, failures: 2, wantState: gobreaker.StateClosed, wantFailures: 2},
		// Tripping starts a new generation, so the counters reset.
		{name: "trips open", maxFailures: 1, failures: 1, wantState: gobreaker.StateOpen},
		{name: "half-open after timeout", maxFailures: 1, failures: 1, wait: 150 * time.Millisecond, wantState: gobreaker.StateHalfOpen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			}))
			t.Cleanup(srv.Close)

			cfg := testConfig(srv.URL)
			cfg.CircuitBreaker.MaxFailures = tt.maxFailures
			cfg.CircuitBreaker.Timeout = 100 * time.Millisecond

			client := httpclient.New(cfg, noRetries(), "report", nil, testLogger())
			for range tt.failures {
				resp, _ := client.Do(context.Background(), newGet(t, context.Background(), srv.URL+"/reports"))
				closeBody(resp)
			}
			time.Sleep(tt.wait)

			state, counts := client.Breaker()
			if state != tt.wantState {
				t.Errorf("Breaker() state = %v, want %v", state, tt.wantState)
			}
			if counts.ConsecutiveFailures != tt.wantFailures {
				t.Errorf("ConsecutiveFailures = %d, want %d", counts.ConsecutiveFailures, tt.wantFailures)
			}
		})
	}
}
