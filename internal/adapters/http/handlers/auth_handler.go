package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/storeops-gateway/internal/adapters/http/dto"
	"github.com/jsamuelsen11/storeops-gateway/internal/ports"
)

// AuthHandler serves the caller profile route.
type AuthHandler struct {
	svc ports.GatewayService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc ports.GatewayService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Me handles GET /proxy/auth/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.CurrentUser(r.Context(), callerToken(r))
	respond(w, r, p, err, dto.CacheNoStore)
}
