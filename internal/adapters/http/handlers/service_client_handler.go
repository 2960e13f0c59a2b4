package handlers

import (
	"context"
	"net/http"

	"github.com/jsamuelsen11/storeops-gateway/internal/adapters/http/dto"
	"github.com/jsamuelsen11/storeops-gateway/internal/ports"
)

// ServiceClientHandler serves the service-client credential lifecycle routes.
// Every response is no-store.
type ServiceClientHandler struct {
	svc ports.GatewayService
}

// NewServiceClientHandler creates a new ServiceClientHandler.
func NewServiceClientHandler(svc ports.GatewayService) *ServiceClientHandler {
	return &ServiceClientHandler{svc: svc}
}

// List handles GET /proxy/service-clients?page=.
func (h *ServiceClientHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := queryInt(r, "page", 0)
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}

	p, err := h.svc.ListServiceClients(r.Context(), callerToken(r), page)
	respond(w, r, p, err, dto.CacheNoStore)
}

// Create handles POST /proxy/service-clients.
func (h *ServiceClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateServiceClientRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	p, err := h.svc.CreateServiceClient(r.Context(), callerToken(r), req.ToDomain())
	respond(w, r, p, err, dto.CacheNoStore)
}

// Rotate handles POST /proxy/service-clients/{id}/rotate.
func (h *ServiceClientHandler) Rotate(w http.ResponseWriter, r *http.Request) {
	h.byID(w, r, h.svc.RotateServiceClientToken)
}

// Revoke handles POST /proxy/service-clients/{id}/revoke.
func (h *ServiceClientHandler) Revoke(w http.ResponseWriter, r *http.Request) {
	h.byID(w, r, h.svc.RevokeServiceClient)
}

// Delete handles DELETE /proxy/service-clients/{id}.
func (h *ServiceClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	h.byID(w, r, h.svc.DeleteServiceClient)
}

func (h *ServiceClientHandler) byID(
	w http.ResponseWriter,
	r *http.Request,
	call func(ctx context.Context, callerToken, id string) (*ports.Payload, error),
) {
	id, err := pathIdent(r, "id")
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}

	p, err := call(r.Context(), callerToken(r), id)
	respond(w, r, p, err, dto.CacheNoStore)
}
