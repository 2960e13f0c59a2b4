// Package ports holds the interfaces between the gateway's layers. Handlers
// call the GatewayService port; the application layer calls one Upstream
// port per upstream domain. Upstreams also implement HealthChecker so the
// readiness endpoint can report their circuit breakers.
package ports
