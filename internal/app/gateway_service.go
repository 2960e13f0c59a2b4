// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/storeops-gateway/internal/app/sample"
	"github.com/jsamuelsen11/storeops-gateway/internal/domain"
	"github.com/jsamuelsen11/storeops-gateway/internal/domain/qa"
	"github.com/jsamuelsen11/storeops-gateway/internal/domain/serviceclient"
	"github.com/jsamuelsen11/storeops-gateway/internal/platform/telemetry"
	"github.com/jsamuelsen11/storeops-gateway/internal/ports"
)

// Compile-time check that GatewayService implements ports.GatewayService.
var _ ports.GatewayService = (*GatewayService)(nil)

// GatewayService implements ports.GatewayService. It picks the outbound
// credential, maps each route onto its upstream path, and applies the report
// fallback policy. Retries, timeouts and classification happen below it in
// the Upstream port.
type GatewayService struct {
	routes         Routes
	reportFallback FallbackPolicy
	metrics        *telemetry.Metrics
	logger         *slog.Logger
}

// NewGatewayService creates a GatewayService. A nil metrics disables the
// fallback counter; a nil logger discards logs.
func NewGatewayService(routes Routes, metrics *telemetry.Metrics, logger *slog.Logger) *GatewayService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &GatewayService{
		routes:         routes,
		reportFallback: DegradeToSampleOnAuthFailure,
		metrics:        metrics,
		logger:         logger,
	}
}

// ListMaintenanceTickets returns one page of a store's maintenance tickets.
func (s *GatewayService) ListMaintenanceTickets(ctx context.Context, callerToken string, q ports.MaintenanceQuery) (*ports.Payload, error) {
	req := get(maintenanceTicketsPath(q.StoreID), pageQuery(q.Page, q.Limit))
	return s.forward(ctx, "ListMaintenanceTickets", s.routes.Maintenance, callerToken, req,
		slog.String("store_id", q.StoreID))
}

// ListQAAudits returns one page of QA audits.
func (s *GatewayService) ListQAAudits(ctx context.Context, callerToken string, page int) (*ports.Payload, error) {
	return s.forward(ctx, "ListQAAudits", s.routes.QA, callerToken, get(qaAuditsPath, pageQuery(page, 0)))
}

// CreateQACategory creates an audit category.
func (s *GatewayService) CreateQACategory(ctx context.Context, callerToken string, c *qa.Category) (*ports.Payload, error) {
	req, err := post(qaCategoriesPath, toCategoryBody(c))
	if err != nil {
		return nil, err
	}
	return s.forward(ctx, "CreateQACategory", s.routes.QA, callerToken, req)
}

// CreateQAEntity creates an audit checklist entity.
func (s *GatewayService) CreateQAEntity(ctx context.Context, callerToken string, e *qa.Entity) (*ports.Payload, error) {
	req, err := post(qaEntitiesPath, toEntityBody(e))
	if err != nil {
		return nil, err
	}
	return s.forward(ctx, "CreateQAEntity", s.routes.QA, callerToken, req,
		slog.String("category_id", e.CategoryID))
}

// GetDailyReport returns a store's daily sales report, degrading to the
// bundled sample when the report fallback policy applies.
func (s *GatewayService) GetDailyReport(ctx context.Context, callerToken string, q ports.ReportQuery) (*ports.Payload, error) {
	attrs := []slog.Attr{slog.String("store_id", q.StoreID), slog.String("date", q.Date)}

	p, err := s.forward(ctx, "GetDailyReport", s.routes.Report, callerToken,
		get(dailyReportPath(q.StoreID, q.Date), nil), attrs...)
	if err == nil {
		return p, nil
	}

	// A caller that hung up gets nothing, sample or otherwise.
	if ctx.Err() != nil || !s.reportFallback.Applies(err) {
		return nil, err
	}

	body, sampleErr := sample.DailyReport(q.StoreID, q.Date)
	if sampleErr != nil {
		s.logger.ErrorContext(ctx, "failed to build sample report",
			slog.String("operation", "GetDailyReport"),
			slog.Any("error", sampleErr),
		)
		return nil, err
	}

	s.logger.WarnContext(ctx, "serving sample daily report",
		slog.String("operation", "GetDailyReport"),
		slog.String("policy", s.reportFallback.Name),
		slog.String("code", string(domain.CodeOf(err))),
		slog.String("store_id", q.StoreID),
		slog.String("date", q.Date),
	)
	s.metrics.RecordFallback(ctx, "report", s.reportFallback.Name)

	return &ports.Payload{Status: http.StatusOK, Body: body, Source: ports.SourceSample}, nil
}

// CurrentUser returns the profile behind the caller's token.
func (s *GatewayService) CurrentUser(ctx context.Context, callerToken string) (*ports.Payload, error) {
	return s.forward(ctx, "CurrentUser", s.routes.Auth, callerToken, get(authMePath, nil))
}

// ListServiceClients returns one page of service clients.
func (s *GatewayService) ListServiceClients(ctx context.Context, callerToken string, page int) (*ports.Payload, error) {
	return s.forward(ctx, "ListServiceClients", s.routes.ServiceClients, callerToken,
		get(serviceClientsPath, pageQuery(page, 0)))
}

// CreateServiceClient registers a service client.
func (s *GatewayService) CreateServiceClient(ctx context.Context, callerToken string, r *serviceclient.Registration) (*ports.Payload, error) {
	req, err := post(serviceClientsPath, toRegistrationBody(r))
	if err != nil {
		return nil, err
	}
	return s.forward(ctx, "CreateServiceClient", s.routes.ServiceClients, callerToken, req)
}

// RotateServiceClientToken issues a fresh credential for a service client.
func (s *GatewayService) RotateServiceClientToken(ctx context.Context, callerToken, id string) (*ports.Payload, error) {
	req := ports.UpstreamRequest{Method: http.MethodPost, Path: serviceClientPath(id, "rotate")}
	return s.forward(ctx, "RotateServiceClientToken", s.routes.ServiceClients, callerToken, req,
		slog.String("client_id", id))
}

// RevokeServiceClient invalidates a service client's credentials.
func (s *GatewayService) RevokeServiceClient(ctx context.Context, callerToken, id string) (*ports.Payload, error) {
	req := ports.UpstreamRequest{Method: http.MethodPost, Path: serviceClientPath(id, "revoke")}
	return s.forward(ctx, "RevokeServiceClient", s.routes.ServiceClients, callerToken, req,
		slog.String("client_id", id))
}

// DeleteServiceClient removes a service client.
func (s *GatewayService) DeleteServiceClient(ctx context.Context, callerToken, id string) (*ports.Payload, error) {
	req := ports.UpstreamRequest{Method: http.MethodDelete, Path: serviceClientPath(id, "")}
	return s.forward(ctx, "DeleteServiceClient", s.routes.ServiceClients, callerToken, req,
		slog.String("client_id", id))
}

// forward sends req to the route's upstream with the resolved credential.
func (s *GatewayService) forward(
	ctx context.Context,
	operation string,
	route Route,
	callerToken string,
	req ports.UpstreamRequest,
	attrs ...slog.Attr,
) (*ports.Payload, error) {
	req.Credential = route.credential(callerToken)

	resp, err := route.Upstream.Send(ctx, req)
	if err != nil {
		args := []any{
			slog.String("operation", operation),
			slog.String("upstream", route.Upstream.Name()),
			slog.String("code", string(domain.CodeOf(err))),
			slog.Any("error", err),
		}
		for _, a := range attrs {
			args = append(args, a)
		}
		s.logger.ErrorContext(ctx, "upstream call failed", args...)
		s.metrics.RecordUpstreamError(ctx, route.Upstream.Name(), operation, string(domain.CodeOf(err)))
		return nil, err
	}

	return &ports.Payload{Status: resp.Status, Body: resp.Body, Source: ports.SourceUpstream}, nil
}

func post(path string, body any) (ports.UpstreamRequest, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return ports.UpstreamRequest{}, fmt.Errorf("encoding %s body: %w", path, err)
	}
	return ports.UpstreamRequest{Method: http.MethodPost, Path: path, Body: b}, nil
}
