package main

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jsamuelsen11/storeops-gateway/internal/client/adapters/report"
)

// setup points dashctl at a temp session file and gatewayURL. It uses
// t.Setenv, so callers cannot run in parallel.
func setup(t *testing.T, gatewayURL string) {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("DASHCTL_SESSION_PATH", filepath.Join(dir, "session.db"))
	t.Setenv("DASHCTL_GATEWAY_URL", gatewayURL)
	t.Setenv("DASHCTL_GATEWAY_TIMEOUT", "2s")
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func testToken(t *testing.T, subject string) string {
	t.Helper()

	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(2 * time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("k"))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return token
}

func TestSessionLifecycle(t *testing.T) {
	setup(t, "http://127.0.0.1:1")

	out, err := execute(t, "", "login", "--token", testToken(t, "manager-7"))
	if err != nil {
		t.Fatalf("login error = %v", err)
	}
	if !strings.Contains(out, "signed in as manager-7") {
		t.Errorf("login output = %q", out)
	}

	if _, err := execute(t, "", "use-store", "03795-00001"); err != nil {
		t.Fatalf("use-store error = %v", err)
	}

	out, err = execute(t, "", "status", "--offline")
	if err != nil {
		t.Fatalf("status error = %v", err)
	}
	for _, want := range []string{"subject:  manager-7", "store:    03795-00001", "gateway:  http://127.0.0.1:1"} {
		if !strings.Contains(out, want) {
			t.Errorf("status output missing %q:\n%s", want, out)
		}
	}

	if _, err := execute(t, "", "logout"); err != nil {
		t.Fatalf("logout error = %v", err)
	}
	out, _ = execute(t, "", "status", "--offline")
	if !strings.Contains(out, "not signed in") || !strings.Contains(out, "no store selected") {
		t.Errorf("status after logout:\n%s", out)
	}
}

func TestLogin_FromStdin(t *testing.T) {
	setup(t, "http://127.0.0.1:1")

	out, err := execute(t, testToken(t, "piped")+"\n", "login", "--token", "-")
	if err != nil {
		t.Fatalf("login error = %v", err)
	}
	if !strings.Contains(out, "signed in as piped") {
		t.Errorf("login output = %q", out)
	}
}

func TestRejectsBadInput(t *testing.T) {
	setup(t, "http://127.0.0.1:1")

	tests := []struct {
		name string
		args []string
	}{
		{name: "malformed token", args: []string{"login", "--token", "not-a-jwt"}},
		{name: "missing token flag", args: []string{"login"}},
		{name: "traversal store id", args: []string{"use-store", "../../etc"}},
		{name: "unknown domain", args: []string{"watch", "payroll"}},
		{name: "bad report date", args: []string{"watch", "report", "--date", "2026-02-30"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := execute(t, "", tt.args...); err == nil {
				t.Errorf("%v succeeded, want error", tt.args)
			}
		})
	}
}

func TestStatus_WithoutSessionFile(t *testing.T) {
	setup(t, "http://127.0.0.1:1")

	out, err := execute(t, "", "status", "--offline")
	if err != nil {
		t.Fatalf("status error = %v", err)
	}
	if !strings.Contains(out, "not signed in") {
		t.Errorf("status output:\n%s", out)
	}
}

func TestStatus_ProbesDomains(t *testing.T) {
	mux := http.NewServeMux()
	page := func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"count":0,"next":null,"previous":null,"results":[]}`)
	}
	mux.HandleFunc("GET /proxy/maintenance/{storeId}", page)
	mux.HandleFunc("GET /proxy/qa/audits", page)
	mux.HandleFunc("GET /proxy/service-clients", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = io.WriteString(w, `{"success":false,"error":{"code":"FORBIDDEN","message":"upstream denied access","retryable":false}}`)
	})
	mux.HandleFunc("GET /proxy/report/{storeId}/{date}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Data-Source", "sample")
		_, _ = io.WriteString(w, `{"store_id":"`+r.PathValue("storeId")+`","business_date":"`+r.PathValue("date")+`","hourly":[]}`)
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	setup(t, ts.URL)
	if _, err := execute(t, "", "login", "--token", testToken(t, "m")); err != nil {
		t.Fatalf("login error = %v", err)
	}
	if _, err := execute(t, "", "use-store", "s1"); err != nil {
		t.Fatalf("use-store error = %v", err)
	}

	out, err := execute(t, "", "status")
	if err != nil {
		t.Fatalf("status error = %v", err)
	}

	lines := map[string]string{}
	for _, l := range strings.Split(out, "\n") {
		if f := strings.Fields(l); len(f) >= 2 {
			lines[f[0]] = f[1]
		}
	}
	want := map[string]string{
		"maintenance":     "ok",
		"qa":              "ok",
		"report":          "ok",
		"service_clients": "FORBIDDEN:",
	}
	for name, status := range want {
		if lines[name] != status {
			t.Errorf("%s status = %q, want %q\n%s", name, lines[name], status, out)
		}
	}
}

func TestPageReport_StopsAtToday(t *testing.T) {
	t.Parallel()

	today := report.Params{Date: time.Now()}
	if _, ok := pageReport(today, 1); ok {
		t.Error("paged past today")
	}
	prev, ok := pageReport(today, -1)
	if !ok || prev.Date.After(today.Date) {
		t.Errorf("previous day = %v, %v", prev.Date, ok)
	}
}

func TestNextPage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		page, delta, want int
		ok                bool
	}{
		{page: 1, delta: 1, want: 2, ok: true},
		{page: 0, delta: 1, want: 2, ok: true},
		{page: 2, delta: -1, want: 1, ok: true},
		{page: 1, delta: -1, want: 0, ok: false},
	}
	for _, tt := range tests {
		got, ok := nextPage(tt.page, tt.delta)
		if got != tt.want || ok != tt.ok {
			t.Errorf("nextPage(%d, %d) = %d, %v; want %d, %v", tt.page, tt.delta, got, ok, tt.want, tt.ok)
		}
	}
}
