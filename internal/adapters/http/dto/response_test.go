package dto_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsamuelsen11/storeops-gateway/internal/adapters/http/dto"
	"github.com/jsamuelsen11/storeops-gateway/internal/ports"
)

func TestWritePayload(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		payload     *ports.Payload
		policy      string
		wantStatus  int
		wantCache   string
		wantSource  string
		wantBody    string
		wantCTEmpty bool
	}{
		{
			name:       "upstream read",
			payload:    &ports.Payload{Status: http.StatusOK, Body: json.RawMessage(`{"count":1}`), Source: ports.SourceUpstream},
			policy:     dto.CachePublicRead,
			wantStatus: http.StatusOK,
			wantCache:  dto.CachePublicRead,
			wantSource: "upstream",
			wantBody:   `{"count":1}`,
		},
		{
			name:       "sample is never cached",
			payload:    &ports.Payload{Status: http.StatusOK, Body: json.RawMessage(`{}`), Source: ports.SourceSample},
			policy:     dto.CachePublicRead,
			wantStatus: http.StatusOK,
			wantCache:  "no-store",
			wantSource: "sample",
			wantBody:   `{}`,
		},
		{
			name:       "created forwarded verbatim",
			payload:    &ports.Payload{Status: http.StatusCreated, Body: json.RawMessage(`{"id":"c1"}`)},
			policy:     dto.CacheNoStore,
			wantStatus: http.StatusCreated,
			wantCache:  "no-store",
			wantSource: "upstream",
			wantBody:   `{"id":"c1"}`,
		},
		{
			name:        "no content",
			payload:     &ports.Payload{Status: http.StatusNoContent},
			policy:      dto.CacheNoStore,
			wantStatus:  http.StatusNoContent,
			wantCache:   "no-store",
			wantSource:  "upstream",
			wantCTEmpty: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/proxy/report/s1/2024-01-01", nil)
			rec := httptest.NewRecorder()

			dto.WritePayload(rec, req, tt.payload, tt.policy)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if got := rec.Header().Get("Cache-Control"); got != tt.wantCache {
				t.Errorf("Cache-Control = %q, want %q", got, tt.wantCache)
			}
			if got := rec.Header().Get(dto.HeaderDataSource); got != tt.wantSource {
				t.Errorf("X-Data-Source = %q, want %q", got, tt.wantSource)
			}
			if got := rec.Body.String(); got != tt.wantBody {
				t.Errorf("body = %q, want %q", got, tt.wantBody)
			}
			if ct := rec.Header().Get("Content-Type"); (ct == "") != tt.wantCTEmpty {
				t.Errorf("Content-Type = %q", ct)
			}
		})
	}
}
