package adaptor

import (
	"encoding/json"
	"net/http"

	"github.com/MuruliCGPayroute/superpetzjp/internal/dto/request"
	"github.com/MuruliCGPayroute/superpetzjp/internal/usecase"
	"github.com/MuruliCGPayroute/superpetzjp/pkg/session"
	"github.com/MuruliCGPayroute/superpetzjp/pkg/utils"

	"go.uber.org/zap"
)

type OrderHandler struct {
	service  usecase.OrderService
	sessions *session.Manager
	log      *zap.Logger
}

func NewOrderHandler(service usecase.OrderService, sessions *session.Manager, log *zap.Logger) *OrderHandler {
	return &OrderHandler{
		service:  service,
		sessions: sessions,
		log:      log,
	}
}

// GetUser handles GET /api/order/get-user, the checkout page's probe for
// who is logged in. Unlike the cart routes this one answers 401.
func (h *OrderHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	identity, err := h.sessions.Resolve(r.Context(), r)
	if err != nil {
		h.log.Error("Failed to resolve session", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}
	if identity == nil {
		utils.ResponseUnauthorized(w, "Not logged in")
		return
	}
	utils.ResponseSuccess(w, "", utils.Envelope{"user": identity})
}

// PlaceOrder handles POST /api/order/place-order
func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseForbidden(w, "Not authenticated")
		return
	}

	var req request.PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	paymentID, status, err := h.service.PlaceOrder(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "place order")
		return
	}

	utils.ResponseCreated(w, "Order placed successfully", utils.Envelope{
		"payment_id":     paymentID,
		"payment_status": status,
	})
}

// CreateGatewayOrder handles POST /api/razorpay/create-order. The gateway
// order comes back bare; the checkout widget consumes it as-is.
func (h *OrderHandler) CreateGatewayOrder(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGatewayOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	order, err := h.service.CreateGatewayOrder(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create gateway order")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(order)
}

// VerifyPayment handles POST /api/razorpay/verify. The verdict always
// comes back as HTTP 200; the success flag carries the result.
func (h *OrderHandler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	var req request.VerifyPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	verified, err := h.service.VerifyPayment(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "verify payment")
		return
	}

	if !verified {
		utils.ResponseJSON(w, http.StatusOK, utils.Envelope{
			"success": false,
			"msg":     "Payment verification failed",
		})
		return
	}
	utils.ResponseSuccess(w, "Payment verified successfully", nil)
}
