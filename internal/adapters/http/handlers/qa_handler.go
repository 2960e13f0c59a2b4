package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/storeops-gateway/internal/adapters/http/dto"
	"github.com/jsamuelsen11/storeops-gateway/internal/ports"
)

// QAHandler serves the quality-assurance routes.
type QAHandler struct {
	svc ports.GatewayService
}

// NewQAHandler creates a new QAHandler.
func NewQAHandler(svc ports.GatewayService) *QAHandler {
	return &QAHandler{svc: svc}
}

// ListAudits handles GET /proxy/qa/audits?page=.
func (h *QAHandler) ListAudits(w http.ResponseWriter, r *http.Request) {
	page, err := queryInt(r, "page", 0)
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}

	p, err := h.svc.ListQAAudits(r.Context(), callerToken(r), page)
	respond(w, r, p, err, dto.CachePublicRead)
}

// CreateCategory handles POST /proxy/qa/categories.
func (h *QAHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCategoryRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	p, err := h.svc.CreateQACategory(r.Context(), callerToken(r), req.ToDomain())
	respond(w, r, p, err, dto.CacheNoStore)
}

// CreateEntity handles POST /proxy/qa/entities.
func (h *QAHandler) CreateEntity(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateEntityRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	p, err := h.svc.CreateQAEntity(r.Context(), callerToken(r), req.ToDomain())
	respond(w, r, p, err, dto.CacheNoStore)
}
