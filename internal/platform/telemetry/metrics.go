package telemetry

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
	"go.opentelemetry.io/otel/trace"
)

// instrumentationScope names the gateway's tracer and meter.
const instrumentationScope = "github.com/jsamuelsen11/storeops-gateway"

// Result values for AttrResult.
const (
	ResultSuccess     = "success"
	ResultError       = "error"
	ResultCircuitOpen = "circuit_open"
)

// Tracer returns the gateway's tracer from the global provider. It is looked
// up per call so tests can swap the provider.
func Tracer() trace.Tracer {
	return otel.Tracer(instrumentationScope)
}

// ResultOf classifies an HTTP status for AttrResult. Zero means no response.
func ResultOf(status int) string {
	if status == 0 || status >= http.StatusBadRequest {
		return ResultError
	}
	return ResultSuccess
}

// Metrics holds the gateway's instruments.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter
	// ClientRetryTotal counts outbound re-attempts, not first attempts.
	ClientRetryTotal metric.Int64Counter
	// FallbackTotal counts responses served by a degradation policy instead of the upstream.
	FallbackTotal metric.Int64Counter
	// UpstreamErrorTotal counts failed upstream calls by classified error code.
	UpstreamErrorTotal metric.Int64Counter
	// BreakerTransitionTotal counts circuit breaker state changes.
	BreakerTransitionTotal metric.Int64Counter
}

type instrument struct {
	name, desc, unit string
}

// NewMetrics registers every instrument on mp. The meter is scoped to the
// module path and tagged with serviceName.
func NewMetrics(mp metric.MeterProvider, serviceName string) (*Metrics, error) {
	meter := mp.Meter(instrumentationScope,
		metric.WithInstrumentationAttributes(semconv.ServiceName(serviceName)),
	)

	var (
		m    Metrics
		errs []error
	)
	histogram := func(in instrument) metric.Float64Histogram {
		h, err := meter.Float64Histogram(in.name, metric.WithDescription(in.desc), metric.WithUnit(in.unit))
		if err != nil {
			errs = append(errs, fmt.Errorf("creating %s: %w", in.name, err))
		}
		return h
	}
	counter := func(in instrument) metric.Int64Counter {
		c, err := meter.Int64Counter(in.name, metric.WithDescription(in.desc), metric.WithUnit(in.unit))
		if err != nil {
			errs = append(errs, fmt.Errorf("creating %s: %w", in.name, err))
		}
		return c
	}

	m.ServerRequestDuration = histogram(instrument{"http.server.request.duration", "Duration of incoming HTTP requests", "s"})
	m.ServerRequestTotal = counter(instrument{"http.server.request.total", "Total number of incoming HTTP requests", "{request}"})
	m.ClientRequestDuration = histogram(instrument{"http.client.request.duration", "Duration of upstream HTTP requests", "s"})
	m.ClientRequestTotal = counter(instrument{"http.client.request.total", "Total number of upstream HTTP requests", "{request}"})
	m.ClientRetryTotal = counter(instrument{"http.client.retry.total", "Total number of upstream request retries", "{retry}"})
	m.FallbackTotal = counter(instrument{"gateway.fallback.total", "Responses served from a fallback policy", "{response}"})
	m.UpstreamErrorTotal = counter(instrument{"gateway.upstream.error.total", "Failed upstream calls by error code", "{error}"})
	m.BreakerTransitionTotal = counter(instrument{"gateway.breaker.transition.total", "Circuit breaker state changes", "{transition}"})

	if len(errs) > 0 {
		return nil, errs[0]
	}
	return &m, nil
}

// RecordServerRequest records one inbound request. route is the matched
// pattern, never the raw path.
func (m *Metrics) RecordServerRequest(ctx context.Context, method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(
		AttrHTTPMethod.String(method),
		AttrRoute.String(route),
		AttrHTTPStatus.Int(status),
		AttrResult.String(ResultOf(status)),
	)
	m.ServerRequestDuration.Record(ctx, elapsed.Seconds(), attrs)
	m.ServerRequestTotal.Add(ctx, 1, attrs)
}

// RecordClientRequest records one outbound call to upstream, including calls
// the breaker rejected. status is zero when no response arrived.
func (m *Metrics) RecordClientRequest(ctx context.Context, upstream, method string, status int, result string, elapsed time.Duration) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(
		AttrHTTPMethod.String(method),
		AttrHTTPStatus.Int(status),
		AttrPeerService.String(upstream),
		AttrResult.String(result),
	)
	m.ClientRequestDuration.Record(ctx, elapsed.Seconds(), attrs)
	m.ClientRequestTotal.Add(ctx, 1, attrs)
}

// RecordRetry counts a re-attempt of an outbound call.
func (m *Metrics) RecordRetry(ctx context.Context, upstream, method string) {
	if m == nil {
		return
	}
	m.ClientRetryTotal.Add(ctx, 1, metric.WithAttributes(
		AttrHTTPMethod.String(method),
		AttrPeerService.String(upstream),
	))
}

// RecordFallback counts a response served by policy on route.
func (m *Metrics) RecordFallback(ctx context.Context, route, policy string) {
	if m == nil {
		return
	}
	m.FallbackTotal.Add(ctx, 1, metric.WithAttributes(
		AttrRoute.String(route),
		AttrPolicy.String(policy),
	))
}

// RecordUpstreamError counts a failed call to upstream, labelled with the
// gateway operation and the classified error code.
func (m *Metrics) RecordUpstreamError(ctx context.Context, upstream, operation, code string) {
	if m == nil {
		return
	}
	m.UpstreamErrorTotal.Add(ctx, 1, metric.WithAttributes(
		AttrPeerService.String(upstream),
		AttrOperation.String(operation),
		AttrErrorCode.String(code),
	))
}

// RecordBreakerTransition counts upstream's breaker moving from one state to another.
func (m *Metrics) RecordBreakerTransition(ctx context.Context, upstream, from, to string) {
	if m == nil {
		return
	}
	m.BreakerTransitionTotal.Add(ctx, 1, metric.WithAttributes(
		AttrPeerService.String(upstream),
		AttrBreakerFrom.String(from),
		AttrBreakerTo.String(to),
	))
}
