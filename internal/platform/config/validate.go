package config

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"
	"time"
)

// problems collects every invalid setting so one Validate call reports them
// all.
type problems []error

func (p *problems) add(format string, args ...any) {
	*p = append(*p, fmt.Errorf(format, args...))
}

func (p *problems) positive(key string, d time.Duration) {
	if d <= 0 {
		p.add("%s must be positive, got %s", key, d)
	}
}

func (p *problems) oneOf(key, value string, allowed ...string) {
	if !slices.Contains(allowed, value) {
		p.add("%s must be one of %s, got %q", key, strings.Join(allowed, ", "), value)
	}
}

// Validate reports every invalid setting, joined into one error.
func (c *Config) Validate() error {
	var p problems

	s := c.Server
	if s.Port < 1 || s.Port > 65535 {
		p.add("server.port must be between 1 and 65535, got %d", s.Port)
	}
	p.positive("server.read_timeout", s.ReadTimeout)
	p.positive("server.write_timeout", s.WriteTimeout)
	p.positive("server.shutdown_timeout", s.ShutdownTimeout)

	p.oneOf("log.level", c.Log.Level, "debug", "info", "warn", "error")
	p.oneOf("log.format", c.Log.Format, "json", "text")

	c.Gateway.check(&p)

	if t := c.Telemetry; t.Enabled {
		p.oneOf("telemetry.exporter", t.Exporter, "stdout", "otlp")
		if t.Exporter == "otlp" && t.Endpoint == "" {
			p.add("telemetry.endpoint is required with the otlp exporter")
		}
	}

	return errors.Join(p...)
}

func (g *GatewayConfig) check(p *problems) {
	p.oneOf("gateway.mode", g.Mode, ModeDevelopment, ModeProduction)

	r := g.Retry
	if r.MaxRetries < 0 {
		p.add("gateway.retry.max_retries must not be negative, got %d", r.MaxRetries)
	}
	p.positive("gateway.retry.base_delay", r.BaseDelay)
	if r.MaxDelay < 0 {
		p.add("gateway.retry.max_delay must not be negative, got %s", r.MaxDelay)
	}
	if r.Jitter < 0 || r.Jitter >= 1 {
		p.add("gateway.retry.jitter must be in [0, 1), got %g", r.Jitter)
	}

	for name, u := range g.Upstreams.ByName() {
		u.check(p, "gateway.upstreams."+name)
	}
}

func (u *UpstreamConfig) check(p *problems, key string) {
	if parsed, err := url.Parse(u.BaseURL); err != nil || parsed.Scheme == "" || parsed.Host == "" {
		p.add("%s.base_url must be an absolute URL, got %q", key, u.BaseURL)
	}
	p.positive(key+".timeout", u.Timeout)

	cb := u.CircuitBreaker
	if cb.MaxFailures < 1 {
		p.add("%s.circuit_breaker.max_failures must be at least 1, got %d", key, cb.MaxFailures)
	}
	p.positive(key+".circuit_breaker.timeout", cb.Timeout)
	if cb.HalfOpenLimit < 1 {
		p.add("%s.circuit_breaker.half_open_limit must be at least 1, got %d", key, cb.HalfOpenLimit)
	}

	rl := u.RateLimit
	switch {
	case rl.RequestsPerSecond < 0:
		p.add("%s.rate_limit.requests_per_second must not be negative", key)
	case rl.RequestsPerSecond > 0 && rl.BurstSize < 1:
		p.add("%s.rate_limit.burst_size must be at least 1 when limiting", key)
	}
}
