// Package upstream is the gateway's anti-corruption layer toward the upstream
// domain APIs. It turns a ports.UpstreamRequest into an HTTP call through the
// resilient httpclient.Client and turns every outcome into either a verified
// JSON payload or a *domain.Error from the closed code set.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/sony/gobreaker/v2"

	"github.com/jsamuelsen11/storeops-gateway/internal/platform/httpclient"
	"github.com/jsamuelsen11/storeops-gateway/internal/ports"
)

// maxBodySize limits how much of an upstream success body is buffered.
const maxBodySize = 10 << 20 // 10 MB

// Compile-time interface checks.
var (
	_ ports.Upstream      = (*Client)(nil)
	_ ports.HealthChecker = (*Client)(nil)
)

// Client is the outbound adapter for one upstream domain. Circuit breaking,
// rate limiting, tracing and retries come from the wrapped httpclient.Client.
type Client struct {
	http    *httpclient.Client
	devMode bool
	logger  *slog.Logger
}

// New creates an adapter over client. In dev mode, error responses carry a
// truncated copy of the upstream body in their details.
func New(client *httpclient.Client, devMode bool, logger *slog.Logger) *Client {
	return &Client{http: client, devMode: devMode, logger: logger}
}

// Name returns the upstream identifier (e.g. "report").
func (c *Client) Name() string {
	return c.http.Name()
}

// Health reports the upstream's circuit breaker state.
func (c *Client) Health(_ context.Context) ports.UpstreamHealth {
	state, counts := c.http.Breaker()
	h := ports.UpstreamHealth{Name: c.Name(), ConsecutiveFailures: counts.ConsecutiveFailures}
	switch state {
	case gobreaker.StateClosed:
		h.Breaker = ports.BreakerClosed
	case gobreaker.StateHalfOpen:
		h.Breaker = ports.BreakerHalfOpen
	default:
		h.Breaker = ports.BreakerOpen
	}
	return h
}

// Send executes r against the upstream base URL. The credential, when set,
// is sent as a bearer token. A 2xx response is returned only if its body is
// well-formed JSON; a 204 may be empty.
func (c *Client) Send(ctx context.Context, r ports.UpstreamRequest) (*ports.UpstreamResponse, error) {
	target := c.http.BaseURL() + r.Path
	if len(r.Query) > 0 {
		target += "?" + r.Query.Encode()
	}

	var body io.Reader = http.NoBody
	if r.Body != nil {
		body = bytes.NewReader(r.Body)
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, target, body)
	if err != nil {
		return nil, fmt.Errorf("creating %s request for %s: %w", r.Method, r.Path, err)
	}
	req.Header.Set("Accept", "application/json")
	if r.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if r.Credential != "" {
		req.Header.Set("Authorization", "Bearer "+r.Credential)
	}

	resp, err := c.http.Do(ctx, req)
	if resp != nil {
		defer c.closeBody(ctx, resp)
	}

	// httpclient.Do returns both resp and err when retries are exhausted on a
	// 5xx. The status is more specific than the retry error, so prefer it.
	if err != nil && resp == nil {
		return nil, c.transportError(ctx, req, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, c.statusError(ctx, req, resp)
	}

	return c.readPayload(ctx, req, resp)
}

func (c *Client) readPayload(ctx context.Context, req *http.Request, resp *http.Response) (*ports.UpstreamResponse, error) {
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
	if err != nil {
		return nil, c.transportError(ctx, req, err)
	}

	switch {
	case len(raw) > maxBodySize:
		return nil, c.malformed(ctx, req, resp.StatusCode, "upstream response exceeds size limit", nil)
	case len(bytes.TrimSpace(raw)) == 0:
		if resp.StatusCode == http.StatusNoContent {
			return &ports.UpstreamResponse{Status: resp.StatusCode, Header: resp.Header}, nil
		}
		return nil, c.malformed(ctx, req, resp.StatusCode, "upstream returned an empty body", nil)
	case !json.Valid(raw):
		return nil, c.malformed(ctx, req, resp.StatusCode, "upstream returned malformed JSON", raw)
	}

	return &ports.UpstreamResponse{
		Status: resp.StatusCode,
		Body:   json.RawMessage(raw),
		Header: resp.Header,
	}, nil
}

// closeBody closes an HTTP response body and logs on failure.
func (c *Client) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		c.logger.WarnContext(ctx, "failed to close response body",
			slog.String("peer_service", c.Name()),
			slog.String("error", err.Error()),
		)
	}
}
