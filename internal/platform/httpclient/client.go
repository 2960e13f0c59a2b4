// Package httpclient is the gateway's outbound transport. A Client wraps one
// upstream and runs every call through these layers, outermost first:
//
//	circuit breaker → rate limiter → client span → retry → FetchBounded
//
// FetchBounded caps each attempt at the upstream's timeout while the caller's
// own deadline still applies; RetryPolicy decides which attempts are
// repeated and how long to wait between them.
//
//	c := httpclient.New(&cfg.Gateway.Upstreams.Report,
//		httpclient.PolicyFromConfig(&cfg.Gateway.Retry), "report", metrics, logger)
//	resp, err := c.Do(ctx, req)
//
// Inbound middleware stores the request and correlation IDs with
// WithRequestID and WithCorrelationID; Do forwards them with the W3C trace
// context.
package httpclient

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/storeops-gateway/internal/platform/config"
	"github.com/jsamuelsen11/storeops-gateway/internal/platform/telemetry"
)

// Client calls one upstream service. Safe for concurrent use.
type Client struct {
	name    string
	baseURL string
	timeout time.Duration
	doer    Doer
	breaker *gobreaker.CircuitBreaker[struct{}]
	limiter *rate.Limiter // nil when unlimited
	policy  RetryPolicy
	metrics *telemetry.Metrics
	logger  *slog.Logger

	sleep func(ctx context.Context, d time.Duration) error
}

// Option customizes a Client.
type Option func(*Client)

// WithDoer replaces the underlying *http.Client. Tests use it to script
// upstream responses without a listener.
func WithDoer(d Doer) Option {
	return func(c *Client) { c.doer = d }
}

// New creates the client for upstream name, configured by cfg. metrics may
// be nil.
func New(cfg *config.UpstreamConfig, policy RetryPolicy, name string, metrics *telemetry.Metrics, logger *slog.Logger, opts ...Option) *Client {
	c := &Client{
		name:    name,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		timeout: cfg.Timeout,
		doer:    &http.Client{},
		breaker: newBreaker(name, cfg.CircuitBreaker, metrics, logger),
		policy:  policy,
		metrics: metrics,
		logger:  logger,
		sleep:   sleepContext,
	}
	if rl := cfg.RateLimit; rl.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(rl.RequestsPerSecond), rl.BurstSize)
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name returns the upstream identifier, e.g. "report".
func (c *Client) Name() string {
	return c.name
}

// BaseURL returns the upstream base URL without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do sends req to the upstream. The whole call, retries included, counts as
// one breaker outcome and waits for one rate limiter token.
//
// Outcomes:
//   - non-retryable status: resp with an open body, nil error;
//   - retryable status on every attempt: the last resp with an open body and
//     a *StatusError;
//   - breaker rejection, transport failure or ErrTimeout: nil resp.
//
// The caller closes resp.Body whenever resp is non-nil.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()

	var resp *http.Response
	_, err := c.breaker.Execute(func() (struct{}, error) {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return struct{}{}, err
			}
		}

		ctx, span := telemetry.Tracer().Start(ctx, "HTTP "+req.Method+" "+c.name,
			trace.WithSpanKind(trace.SpanKindClient),
			trace.WithAttributes(
				attribute.String("http.method", req.Method),
				attribute.String("http.url", req.URL.Redacted()),
				attribute.String("peer.service", c.name),
			),
		)
		defer span.End()

		req = req.WithContext(ctx)
		propagate(ctx, req.Header)

		var err error
		resp, err = c.doWithRetry(ctx, req)
		if resp != nil {
			span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		return struct{}{}, err
	})

	status := 0
	if resp != nil {
		status = resp.StatusCode
	}
	result := telemetry.ResultOf(status)
	if IsBreakerRejection(err) {
		result = telemetry.ResultCircuitOpen
	}
	c.metrics.RecordClientRequest(ctx, c.name, req.Method, status, result, time.Since(start))

	return resp, err
}
