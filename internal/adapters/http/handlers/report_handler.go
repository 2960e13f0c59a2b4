package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/storeops-gateway/internal/adapters/http/dto"
	"github.com/jsamuelsen11/storeops-gateway/internal/ports"
)

// ReportHandler serves the daily report route.
type ReportHandler struct {
	svc ports.GatewayService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(svc ports.GatewayService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

// GetDaily handles GET /proxy/report/{storeId}/{date}. A sample payload from
// the fallback policy is written with no-store by dto.WritePayload.
func (h *ReportHandler) GetDaily(w http.ResponseWriter, r *http.Request) {
	storeID, err := pathIdent(r, "storeId")
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}
	date, err := pathDate(r, "date")
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}

	p, err := h.svc.GetDailyReport(r.Context(), callerToken(r), ports.ReportQuery{StoreID: storeID, Date: date})
	respond(w, r, p, err, dto.CachePublicRead)
}
