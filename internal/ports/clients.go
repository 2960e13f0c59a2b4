package ports

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

// UpstreamRequest is one call to an upstream domain API. Path is relative to
// the upstream's base URL and already escaped (e.g. "/api/qa/audits/").
type UpstreamRequest struct {
	Method     string
	Path       string
	Query      url.Values
	Body       []byte
	Credential string
}

// UpstreamResponse is a 2xx upstream reply whose body has been verified to be
// well-formed JSON. Body is nil for empty replies such as 204.
type UpstreamResponse struct {
	Status int
	Body   json.RawMessage
	Header http.Header
}

// Upstream defines the client port for one upstream domain service
// (maintenance, qa, report, auth, service_clients).
// Implemented by the ACL adapter; called by the application layer.
type Upstream interface {
	// Name returns the upstream identifier used in logs, metrics and health checks.
	Name() string

	// Send issues the request through the retry coordinator. Any non-2xx
	// status, transport failure or malformed body is returned as a
	// *domain.Error already classified into the closed code set.
	Send(ctx context.Context, req UpstreamRequest) (*UpstreamResponse, error)
}
