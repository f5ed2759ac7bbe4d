package adaptor

import (
	"encoding/json"
	"net/http"

	"github.com/MuruliCGPayroute/superpetzjp/internal/dto/request"
	"github.com/MuruliCGPayroute/superpetzjp/internal/usecase"
	"github.com/MuruliCGPayroute/superpetzjp/pkg/utils"

	"go.uber.org/zap"
)

type CartHandler struct {
	service usecase.CartService
	log     *zap.Logger
}

func NewCartHandler(service usecase.CartService, log *zap.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		log:     log,
	}
}

// Add handles POST /api/cart. Adding an item already in the cart
// increments its quantity instead of creating a second line.
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseForbidden(w, "Not authenticated")
		return
	}

	var req request.AddCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "quantity must be a number", nil)
		return
	}

	created, err := h.service.Add(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "add cart item")
		return
	}

	if created {
		utils.ResponseCreated(w, "Item added to cart", nil)
		return
	}
	utils.ResponseSuccess(w, "Cart quantity updated", nil)
}

// SetQuantity handles PUT /api/cart
func (h *CartHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseForbidden(w, "Not authenticated")
		return
	}

	var req request.SetCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "quantity must be a number", nil)
		return
	}

	if err := h.service.SetQuantity(r.Context(), userID, &req); err != nil {
		handleServiceError(w, h.log, err, "set cart quantity")
		return
	}
	utils.ResponseSuccess(w, "Cart quantity updated", nil)
}

// Remove handles DELETE /api/cart
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseForbidden(w, "Not authenticated")
		return
	}

	var req request.RemoveCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.Remove(r.Context(), userID, &req); err != nil {
		handleServiceError(w, h.log, err, "remove cart item")
		return
	}
	utils.ResponseSuccess(w, "Item removed from cart", nil)
}

// Clear handles DELETE /api/cart/all
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseForbidden(w, "Not authenticated")
		return
	}

	if err := h.service.Clear(r.Context(), userID); err != nil {
		handleServiceError(w, h.log, err, "clear cart")
		return
	}
	utils.ResponseSuccess(w, "Cart cleared", nil)
}

// List handles GET /api/cart
func (h *CartHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseForbidden(w, "Not authenticated")
		return
	}

	items, err := h.service.List(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "list cart")
		return
	}
	utils.ResponseSuccess(w, "", utils.Envelope{"cart_items": items})
}
