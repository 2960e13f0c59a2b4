// Package http provides the gateway's inbound HTTP adapter: the route table
// and the server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/storeops-gateway/internal/adapters/http/dto"
	"github.com/jsamuelsen11/storeops-gateway/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/storeops-gateway/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/storeops-gateway/internal/domain"
	"github.com/jsamuelsen11/storeops-gateway/internal/ports"
)

// Handlers groups the route handlers registered by NewRouter.
type Handlers struct {
	Health         *handlers.HealthHandler
	Maintenance    *handlers.MaintenanceHandler
	QA             *handlers.QAHandler
	Report         *handlers.ReportHandler
	Auth           *handlers.AuthHandler
	ServiceClients *handlers.ServiceClientHandler
}

// NewRouter creates an HTTP handler with all gateway routes registered.
// Middleware is applied globally in the order given. Every /proxy route
// additionally requires a bearer token. The wildcard routes catch
// identifiers with extra path segments so they are rejected as
// INVALID_PARAM instead of falling through to a 404.
func NewRouter(h Handlers, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteError(w, req, domain.New(domain.CodeNotFound, "no such route"))
	})

	// Health endpoints (unauthenticated).
	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)

	r.Route("/proxy", func(r chi.Router) {
		r.Use(middleware.RequireBearer())

		r.Get("/maintenance/{storeId}", h.Maintenance.ListTickets)
		r.Get("/maintenance/*", h.Maintenance.ListTickets)

		r.Get("/qa/audits", h.QA.ListAudits)
		r.Post("/qa/categories", h.QA.CreateCategory)
		r.Post("/qa/entities", h.QA.CreateEntity)

		r.Get("/report/{storeId}/{date}", h.Report.GetDaily)
		r.Get("/report/*", h.Report.GetDaily)

		r.Get("/auth/me", h.Auth.Me)

		r.Get("/service-clients", h.ServiceClients.List)
		r.Post("/service-clients", h.ServiceClients.Create)
		r.Post("/service-clients/{id}/rotate", h.ServiceClients.Rotate)
		r.Post("/service-clients/{id}/revoke", h.ServiceClients.Revoke)
		r.Delete("/service-clients/{id}", h.ServiceClients.Delete)
	})

	return r
}

// NewHandlers builds every route handler around a single gateway service.
func NewHandlers(svc ports.GatewayService, registry ports.HealthRegistry) Handlers {
	return Handlers{
		Health:         handlers.NewHealthHandler(registry),
		Maintenance:    handlers.NewMaintenanceHandler(svc),
		QA:             handlers.NewQAHandler(svc),
		Report:         handlers.NewReportHandler(svc),
		Auth:           handlers.NewAuthHandler(svc),
		ServiceClients: handlers.NewServiceClientHandler(svc),
	}
}
