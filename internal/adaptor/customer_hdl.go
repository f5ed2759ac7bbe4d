package adaptor

import (
	"encoding/json"
	"net/http"

	"github.com/MuruliCGPayroute/superpetzjp/internal/dto/request"
	"github.com/MuruliCGPayroute/superpetzjp/internal/usecase"
	"github.com/MuruliCGPayroute/superpetzjp/pkg/utils"

	"go.uber.org/zap"
)

type CustomerHandler struct {
	service usecase.CustomerService
	log     *zap.Logger
}

func NewCustomerHandler(service usecase.CustomerService, log *zap.Logger) *CustomerHandler {
	return &CustomerHandler{
		service: service,
		log:     log,
	}
}

// List handles GET /api/customer/all
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	customers, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list customers")
		return
	}
	utils.ResponseSuccess(w, "", utils.Envelope{"customers": customers})
}

// Get handles GET /api/customer/{id}
func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		utils.ResponseBadRequest(w, "Invalid customer id", nil)
		return
	}

	customer, err := h.service.Get(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get customer")
		return
	}
	utils.ResponseSuccess(w, "", utils.Envelope{"customer": customer})
}

// Create handles POST /api/customer/add
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	id, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create customer")
		return
	}

	utils.ResponseCreated(w, "Customer created successfully", utils.Envelope{"user_id": id})
}

// Update handles PUT /api/customer/update/{id}
func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		utils.ResponseBadRequest(w, "Invalid customer id", nil)
		return
	}

	var req request.CustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.Update(r.Context(), id, &req); err != nil {
		handleServiceError(w, h.log, err, "update customer")
		return
	}
	utils.ResponseSuccess(w, "Customer updated successfully", nil)
}

// Delete handles DELETE /api/customer/delete/{id}
func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		utils.ResponseBadRequest(w, "Invalid customer id", nil)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err, "delete customer")
		return
	}
	utils.ResponseSuccess(w, "Customer deleted successfully", nil)
}
