// Package config provides configuration loading and validation for the gateway.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Gateway modes. Development echoes truncated upstream error bodies to callers.
const (
	ModeDevelopment = "development"
	ModeProduction  = "production"
)

// Upstream domain names. They double as peer_service labels in traces and metrics.
const (
	UpstreamMaintenance    = "maintenance"
	UpstreamQA             = "qa"
	UpstreamReport         = "report"
	UpstreamAuth           = "auth"
	UpstreamServiceClients = "service_clients"
)

// Config holds all configuration for the gateway.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Gateway   GatewayConfig   `koanf:"gateway"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
	// ShutdownTimeout bounds how long in-flight requests may drain on exit.
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// GatewayConfig holds the proxy pipeline settings shared by every route family.
type GatewayConfig struct {
	Mode      string          `koanf:"mode"`
	Retry     RetryConfig     `koanf:"retry"`
	Upstreams UpstreamsConfig `koanf:"upstreams"`
}

// DevMode reports whether upstream error bodies may be echoed to callers.
func (g GatewayConfig) DevMode() bool {
	return g.Mode == ModeDevelopment
}

// RetryConfig is the retry policy applied to idempotent outbound calls.
// The wait before retry i (0-indexed) is BaseDelay * 2^i, capped at MaxDelay when set.
type RetryConfig struct {
	MaxRetries int           `koanf:"max_retries"`
	BaseDelay  time.Duration `koanf:"base_delay"`
	MaxDelay   time.Duration `koanf:"max_delay"`
	// Jitter is a fraction in [0, 1) applied as ±Jitter to each delay. Zero disables it.
	Jitter float64 `koanf:"jitter"`
}

// UpstreamsConfig holds one entry per upstream domain.
type UpstreamsConfig struct {
	Maintenance    UpstreamConfig `koanf:"maintenance"`
	QA             UpstreamConfig `koanf:"qa"`
	Report         UpstreamConfig `koanf:"report"`
	Auth           UpstreamConfig `koanf:"auth"`
	ServiceClients UpstreamConfig `koanf:"service_clients"`
}

// ByName returns the upstreams keyed by domain name.
func (u *UpstreamsConfig) ByName() map[string]*UpstreamConfig {
	return map[string]*UpstreamConfig{
		UpstreamMaintenance:    &u.Maintenance,
		UpstreamQA:             &u.QA,
		UpstreamReport:         &u.Report,
		UpstreamAuth:           &u.Auth,
		UpstreamServiceClients: &u.ServiceClients,
	}
}

// UpstreamConfig holds the settings of one upstream REST service.
// ServiceToken, when set, replaces the caller's bearer token on outbound calls.
type UpstreamConfig struct {
	BaseURL        string               `koanf:"base_url"`
	ServiceToken   string               `koanf:"service_token"`
	Timeout        time.Duration        `koanf:"timeout"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig holds outbound rate limiting settings. Zero disables limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
