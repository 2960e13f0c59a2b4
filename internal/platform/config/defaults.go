package config

const (
	defaultServerPort = 8080

	defaultMaxRetries = 2

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
// Every key listed here is also addressable through an APP_ env var even when no YAML
// file mentions it (service tokens are normally supplied that way).
func defaults() map[string]any {
	d := map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "60s",
		"server.idle_timeout":  "120s",

		"server.shutdown_timeout": "10s",

		"log.level":  "info",
		"log.format": "json",

		"gateway.mode":              ModeProduction,
		"gateway.retry.max_retries": defaultMaxRetries,
		"gateway.retry.base_delay":  "500ms",
		"gateway.retry.max_delay":   "0s",
		"gateway.retry.jitter":      0.0,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "storeops-gateway",
	}

	for _, name := range []string{
		UpstreamMaintenance, UpstreamQA, UpstreamReport, UpstreamAuth, UpstreamServiceClients,
	} {
		prefix := "gateway.upstreams." + name + "."
		d[prefix+"base_url"] = "http://localhost:8000"
		d[prefix+"service_token"] = ""
		d[prefix+"timeout"] = "15s"
		d[prefix+"circuit_breaker.max_failures"] = defaultCircuitBreakerMaxFailures
		d[prefix+"circuit_breaker.timeout"] = "30s"
		d[prefix+"circuit_breaker.half_open_limit"] = defaultCircuitBreakerHalfOpen
		d[prefix+"rate_limit.requests_per_second"] = 0.0
		d[prefix+"rate_limit.burst_size"] = 0
	}

	return d
}
