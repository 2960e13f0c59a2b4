package middleware_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/storeops-gateway/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/storeops-gateway/internal/platform/logging"
)

// accessRecords decodes JSON log lines with the given message.
func accessRecords(t *testing.T, buf *bytes.Buffer, msg string) []map[string]any {
	t.Helper()

	var out []map[string]any
	for line := range strings.SplitSeq(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var rec map[string]any
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			t.Fatalf("decoding log line %q: %v", line, err)
		}
		if rec["msg"] == msg {
			out = append(out, rec)
		}
	}
	return out
}

func jsonLogger(buf *bytes.Buffer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: level}))
}

func TestLogging_OneRecordPerRequest(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := chi.NewRouter()
	r.Use(middleware.RequestID(), middleware.Logging(jsonLogger(&buf, slog.LevelInfo)))
	r.Get("/proxy/report/{storeId}/{date}", func(w http.ResponseWriter, r *http.Request) {
		logging.Annotate(r.Context(), slog.String("data_source", "sample"))
		_, _ = w.Write([]byte(`{"store_id":"s1"}`))
	})

	req := httptest.NewRequest(http.MethodGet, "/proxy/report/s1/2026-10-17", http.NoBody)
	req.Header.Set("X-Request-ID", "req-log")
	r.ServeHTTP(httptest.NewRecorder(), req)

	records := accessRecords(t, &buf, "request completed")
	if len(records) != 1 {
		t.Fatalf("got %d access records, want 1:\n%s", len(records), buf.String())
	}
	got := records[0]

	want := map[string]any{
		"level":       "INFO",
		"method":      "GET",
		"route":       "/proxy/report/{storeId}/{date}",
		"status":      float64(200),
		"bytes":       float64(17),
		"request_id":  "req-log",
		"data_source": "sample",
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("%s = %v, want %v", k, got[k], v)
		}
	}
	if _, ok := got["duration"]; !ok {
		t.Error("access record missing duration")
	}
	if strings.Contains(buf.String(), "request received") {
		t.Error("headers logged at info level")
	}
}

func TestLogging_ServerErrorsLogAtWarn(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.Logging(jsonLogger(&buf, slog.LevelInfo))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/proxy/qa/audits", http.NoBody))

	records := accessRecords(t, &buf, "request completed")
	if len(records) != 1 {
		t.Fatalf("got %d access records, want 1", len(records))
	}
	if records[0]["level"] != "WARN" {
		t.Errorf("level = %v, want WARN", records[0]["level"])
	}
	// Without chi the raw path stands in for the route.
	if records[0]["route"] != "/proxy/qa/audits" {
		t.Errorf("route = %v", records[0]["route"])
	}
}

func TestLogging_ContextLoggerCarriesIDs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.RequestID()(middleware.CorrelationID()(
		middleware.Logging(jsonLogger(&buf, slog.LevelInfo))(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			logging.FromContext(r.Context()).InfoContext(r.Context(), "upstream call")
		})),
	))

	req := httptest.NewRequest(http.MethodGet, "/proxy/auth/me", http.NoBody)
	req.Header.Set("X-Request-ID", "req-ctx")
	req.Header.Set("X-Correlation-ID", "corr-ctx")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	records := accessRecords(t, &buf, "upstream call")
	if len(records) != 1 {
		t.Fatalf("handler log not written through the context logger:\n%s", buf.String())
	}
	if records[0]["request_id"] != "req-ctx" || records[0]["correlation_id"] != "corr-ctx" {
		t.Errorf("handler log = %v, want both IDs", records[0])
	}
}

func TestLogging_DebugRedactsCredentials(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.Logging(jsonLogger(&buf, slog.LevelDebug))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodDelete, "/proxy/service-clients/c1", http.NoBody)
	req.Header.Set("Authorization", "Bearer very-secret-token")
	req.Header.Set("Cookie", "session=abc")
	req.Header.Set("Accept", "application/json")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	if strings.Contains(out, "very-secret-token") || strings.Contains(out, "session=abc") {
		t.Errorf("credentials leaked into log:\n%s", out)
	}

	records := accessRecords(t, &buf, "request received")
	if len(records) != 1 {
		t.Fatalf("got %d debug records, want 1", len(records))
	}
	headers, ok := records[0]["headers"].(map[string]any)
	if !ok {
		t.Fatalf("headers = %T, want object", records[0]["headers"])
	}
	if headers["Authorization"] != "[REDACTED]" {
		t.Errorf("Authorization = %v, want [REDACTED]", headers["Authorization"])
	}
	if headers["Accept"] != "application/json" {
		t.Errorf("Accept = %v", headers["Accept"])
	}
}
