package adaptor_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MuruliCGPayroute/superpetzjp/internal/adaptor"
	"github.com/MuruliCGPayroute/superpetzjp/internal/dto/response"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCreateGatewayOrderReturnsBareOrder(t *testing.T) {
	svc := &fakeOrderService{gatewayOrder: &response.GatewayOrderResponse{
		ID:       "order_MhQ4x1",
		Amount:   98000,
		Currency: "INR",
		Receipt:  "rcpt_1",
		Status:   "created",
	}}
	h := adaptor.NewOrderHandler(svc, nil, zap.NewNop())

	r := chi.NewRouter()
	r.Post("/api/razorpay/create-order", h.CreateGatewayOrder)

	body := `{"amount":"980","currency":"INR","user_id":1}`
	req := httptest.NewRequest(http.MethodPost, "/api/razorpay/create-order", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))

	// The checkout widget expects the order fields at the top level,
	// not wrapped in the success envelope.
	assert.Equal(t, "order_MhQ4x1", payload["id"])
	assert.Equal(t, float64(98000), payload["amount"])
	assert.NotContains(t, payload, "success")
	assert.NotContains(t, payload, "order")
}
