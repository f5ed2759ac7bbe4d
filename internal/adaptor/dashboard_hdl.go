package adaptor

import (
	"encoding/json"
	"net/http"

	"github.com/MuruliCGPayroute/superpetzjp/internal/usecase"

	"go.uber.org/zap"
)

type DashboardHandler struct {
	service usecase.DashboardService
	log     *zap.Logger
}

func NewDashboardHandler(service usecase.DashboardService, log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		log:     log,
	}
}

// Counts handles GET /api/dashboard/counts. Unlike the rest of the API
// this returns the counts object bare, without the success envelope.
func (h *DashboardHandler) Counts(w http.ResponseWriter, r *http.Request) {
	counts, err := h.service.Counts(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "dashboard counts")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(counts)
}
