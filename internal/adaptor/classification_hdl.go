package adaptor

import (
	"encoding/json"
	"net/http"

	"github.com/MuruliCGPayroute/superpetzjp/internal/dto/request"
	"github.com/MuruliCGPayroute/superpetzjp/internal/usecase"
	"github.com/MuruliCGPayroute/superpetzjp/pkg/utils"

	"go.uber.org/zap"
)

type ClassificationHandler struct {
	service usecase.ClassificationService
	log     *zap.Logger
}

func NewClassificationHandler(service usecase.ClassificationService, log *zap.Logger) *ClassificationHandler {
	return &ClassificationHandler{
		service: service,
		log:     log,
	}
}

// List handles GET /api/classifications
func (h *ClassificationHandler) List(w http.ResponseWriter, r *http.Request) {
	classifications, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list classifications")
		return
	}
	utils.ResponseSuccess(w, "", utils.Envelope{"classifications": classifications})
}

// Create handles POST /api/classifications/add
func (h *ClassificationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.ClassificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	id, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create classification")
		return
	}

	utils.ResponseCreated(w, "Classification created successfully", utils.Envelope{"classification_id": id})
}

// Attach handles POST /api/products/{id}/classifications
func (h *ClassificationHandler) Attach(w http.ResponseWriter, r *http.Request) {
	productID, ok := pathID(r, "id")
	if !ok {
		utils.ResponseBadRequest(w, "Invalid product id", nil)
		return
	}

	var req request.AttachClassificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.Attach(r.Context(), productID, &req); err != nil {
		handleServiceError(w, h.log, err, "attach classification")
		return
	}

	utils.ResponseSuccess(w, "Classification attached successfully", nil)
}
