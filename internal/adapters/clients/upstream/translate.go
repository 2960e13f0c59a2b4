package upstream

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"unicode/utf8"

	"github.com/sony/gobreaker/v2"

	"github.com/jsamuelsen11/storeops-gateway/internal/domain"
)

// devBodyLimit bounds how many bytes of an upstream body are echoed in dev mode.
const devBodyLimit = 512

// statusError classifies a non-2xx upstream response. The upstream body is
// never forwarded, except truncated in dev mode.
func (c *Client) statusError(ctx context.Context, req *http.Request, resp *http.Response) *domain.Error {
	e := domain.FromStatus(resp.StatusCode, resp.Header.Get("Retry-After")).WithDomain(c.Name())

	if c.devMode {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, devBodyLimit+1))
		c.echo(e, resp.StatusCode, raw)
	}

	c.logger.WarnContext(ctx, "upstream returned error status",
		slog.String("peer_service", c.Name()),
		slog.String("method", req.Method),
		slog.String("url", req.URL.Redacted()),
		slog.Int("status", resp.StatusCode),
		slog.String("code", string(e.Code)),
	)
	return e
}

// transportError classifies a failure that produced no usable response.
func (c *Client) transportError(ctx context.Context, req *http.Request, err error) *domain.Error {
	var e *domain.Error
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		e = domain.Wrap(err, domain.CodeServer, "upstream temporarily unavailable")
		e.Status = http.StatusServiceUnavailable
	} else {
		e = domain.FromTransport(err)
	}
	e.WithDomain(c.Name())

	c.logger.ErrorContext(ctx, "upstream request failed",
		slog.String("peer_service", c.Name()),
		slog.String("method", req.Method),
		slog.String("url", req.URL.Redacted()),
		slog.String("code", string(e.Code)),
		slog.Any("error", err),
	)
	return e
}

// malformed reports a 2xx response whose body cannot be forwarded.
func (c *Client) malformed(ctx context.Context, req *http.Request, status int, msg string, raw []byte) *domain.Error {
	e := domain.New(domain.CodeUpstream, msg).WithDomain(c.Name())
	if c.devMode && raw != nil {
		c.echo(e, status, raw)
	}

	c.logger.ErrorContext(ctx, "upstream response rejected",
		slog.String("peer_service", c.Name()),
		slog.String("method", req.Method),
		slog.String("url", req.URL.Redacted()),
		slog.Int("status", status),
		slog.String("reason", msg),
	)
	return e
}

// echo attaches the upstream status and a truncated body to e.
func (c *Client) echo(e *domain.Error, status int, raw []byte) {
	e.WithDetail("upstream_status", status)
	if len(raw) > 0 {
		e.WithDetail("upstream_body", truncate(raw, devBodyLimit))
	}
}

// truncate cuts b to at most n bytes on a rune boundary, marking the cut.
func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	cut := b[:n]
	for len(cut) > 0 && !utf8.Valid(cut) {
		cut = cut[:len(cut)-1]
	}
	return string(cut) + "…"
}
