// Package handlers provides the HTTP handlers behind the gateway's /proxy
// routes and health endpoints. Handlers validate caller input, call the
// gateway service and write either the forwarded payload or the error
// envelope.
package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/storeops-gateway/internal/adapters/http/dto"
	"github.com/jsamuelsen11/storeops-gateway/internal/ports"
)

// MaintenanceHandler serves the maintenance ticket route.
type MaintenanceHandler struct {
	svc ports.GatewayService
}

// NewMaintenanceHandler creates a new MaintenanceHandler.
func NewMaintenanceHandler(svc ports.GatewayService) *MaintenanceHandler {
	return &MaintenanceHandler{svc: svc}
}

// ListTickets handles GET /proxy/maintenance/{storeId}?page=&limit=.
func (h *MaintenanceHandler) ListTickets(w http.ResponseWriter, r *http.Request) {
	storeID, err := pathIdent(r, "storeId")
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}
	page, err := queryInt(r, "page", 0)
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}
	limit, err := queryInt(r, "limit", maxLimit)
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}

	p, err := h.svc.ListMaintenanceTickets(r.Context(), callerToken(r), ports.MaintenanceQuery{
		StoreID: storeID,
		Page:    page,
		Limit:   limit,
	})
	respond(w, r, p, err, dto.CachePublicRead)
}
