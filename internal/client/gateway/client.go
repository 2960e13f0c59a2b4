// Package gateway is dashctl's client for the gateway's /proxy routes. It
// performs one bounded request per call and turns the gateway's error
// envelope back into a *domain.Error. It never retries; the
// synchronization store owns client-level retries.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jsamuelsen11/storeops-gateway/internal/domain"
	"github.com/jsamuelsen11/storeops-gateway/internal/platform/httpclient"
)

// maxBodyBytes bounds how much of a gateway response is read.
const maxBodyBytes = 10 << 20

// Response is a successful gateway reply.
type Response struct {
	Status int
	Body   json.RawMessage
	// Source is the X-Data-Source header: "upstream" or "sample".
	Source string
}

// Client calls the gateway.
type Client struct {
	baseURL string
	doer    httpclient.Doer
	timeout time.Duration
	logger  *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithDoer replaces the underlying transport.
func WithDoer(d httpclient.Doer) Option {
	return func(c *Client) {
		c.doer = d
	}
}

// New creates a Client for the gateway at baseURL. Each request is bounded
// by timeout.
func New(baseURL string, timeout time.Duration, logger *slog.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		doer:    &http.Client{},
		timeout: timeout,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the gateway URL without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get issues GET path?query with the bearer token.
func (c *Client) Get(ctx context.Context, path string, query url.Values, token string) (*Response, error) {
	return c.Do(ctx, http.MethodGet, path, query, token, nil)
}

// Post issues POST path with body encoded as JSON. A nil body sends no body.
func (c *Client) Post(ctx context.Context, path, token string, body any) (*Response, error) {
	return c.Do(ctx, http.MethodPost, path, nil, token, body)
}

// Delete issues DELETE path.
func (c *Client) Delete(ctx context.Context, path, token string) (*Response, error) {
	return c.Do(ctx, http.MethodDelete, path, nil, token, nil)
}

// Do sends one request. Every failure is a *domain.Error:
//   - transport failures and timeouts are classified from the transport error;
//   - non-2xx replies are re-derived from the gateway's error envelope;
//   - a 2xx reply whose body is not JSON is UPSTREAM_ERROR.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, token string, body any) (*Response, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, domain.Wrap(err, domain.CodeUnknown, "encoding request body")
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, domain.Wrap(err, domain.CodeUnknown, "building request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := httpclient.FetchBounded(ctx, c.doer, req, c.timeout)
	if err != nil {
		e := domain.FromTransport(err)
		c.logger.DebugContext(ctx, "gateway unreachable",
			slog.String("method", method),
			slog.String("path", path),
			slog.String("code", string(e.Code)),
			slog.Any("error", err),
		)
		return nil, e
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, domain.FromTransport(err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, decodeError(resp, raw)
	}

	if len(raw) == 0 {
		if resp.StatusCode == http.StatusNoContent {
			return &Response{Status: resp.StatusCode, Source: resp.Header.Get("X-Data-Source")}, nil
		}
		return nil, domain.New(domain.CodeUpstream, "empty response body")
	}
	if !json.Valid(raw) {
		return nil, domain.New(domain.CodeUpstream, "response body is not valid JSON")
	}

	return &Response{
		Status: resp.StatusCode,
		Body:   raw,
		Source: resp.Header.Get("X-Data-Source"),
	}, nil
}

// decodeError rebuilds the structured error from the gateway's envelope.
// Only the envelope's code and flags are trusted. When the body is not an
// envelope (a proxy in front of the gateway answered, say) the status alone
// is classified.
func decodeError(resp *http.Response, raw []byte) error {
	var env domain.ErrorEnvelope
	if err := json.Unmarshal(raw, &env); err == nil && env.Error.Code != "" {
		e := domain.FromBody(resp.StatusCode, env.Error)
		if e.RetryAfter == 0 {
			e.RetryAfter = domain.ParseRetryAfter(resp.Header.Get("Retry-After"), time.Now())
		}
		return e
	}
	return domain.FromStatus(resp.StatusCode, resp.Header.Get("Retry-After"))
}

// Path joins escaped segments onto a /proxy route.
func Path(segments ...string) string {
	var b strings.Builder
	b.WriteString("/proxy")
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	return b.String()
}
