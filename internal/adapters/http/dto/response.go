// Package dto provides HTTP request bodies, the error envelope, and response
// cache policies for the inbound HTTP adapter layer.
package dto

import (
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/storeops-gateway/internal/platform/logging"
	"github.com/jsamuelsen11/storeops-gateway/internal/ports"
)

// Cache-Control policies.
const (
	// CachePublicRead lets shared caches hold read-heavy data briefly and
	// serve it stale while revalidating.
	CachePublicRead = "public, s-maxage=300, max-age=120, stale-while-revalidate=600"
	// CacheNoStore is used for credential operations, writes, errors and sample data.
	CacheNoStore = "no-store"
)

// HeaderDataSource reports whether a payload came from the upstream or a bundled sample.
const HeaderDataSource = "X-Data-Source"

// WritePayload forwards an upstream payload with the given cache policy.
// Sample payloads are always no-store so a CDN never keeps them as real data.
func WritePayload(w http.ResponseWriter, r *http.Request, p *ports.Payload, cachePolicy string) {
	source := p.Source
	if source == "" {
		source = ports.SourceUpstream
	}
	if source == ports.SourceSample {
		cachePolicy = CacheNoStore
	}

	h := w.Header()
	h.Set("Cache-Control", cachePolicy)
	h.Set(HeaderDataSource, string(source))
	logging.Annotate(r.Context(), slog.String("data_source", string(source)))

	status := p.Status
	if status == 0 {
		status = http.StatusOK
	}

	if len(p.Body) == 0 {
		w.WriteHeader(status)
		return
	}

	h.Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(p.Body); err != nil {
		logging.FromContext(r.Context()).WarnContext(r.Context(), "failed to write response body",
			slog.Any("error", err),
		)
	}
}
