package gateway_test

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MuruliCGPayroute/superpetzjp/pkg/gateway"
	"github.com/MuruliCGPayroute/superpetzjp/pkg/utils"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	secret := "test_secret"
	good := sign(secret, "order_1", "pay_1")

	assert.True(t, gateway.VerifySignature(secret, "order_1", "pay_1", good))
	assert.False(t, gateway.VerifySignature(secret, "order_1", "pay_1", good+"00"))
	assert.False(t, gateway.VerifySignature(secret, "order_2", "pay_1", good))
	assert.False(t, gateway.VerifySignature("other_secret", "order_1", "pay_1", good))
	assert.False(t, gateway.VerifySignature(secret, "order_1", "pay_1", ""))
}

func TestCreateOrderSendsMinorUnits(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "key_id", user)
		assert.Equal(t, "key_secret", pass)
		assert.Equal(t, "/orders", r.URL.Path)

		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(gateway.Order{
			ID:       "order_xyz",
			Amount:   int64(got["amount"].(float64)),
			Currency: got["currency"].(string),
			Receipt:  got["receipt"].(string),
			Status:   "created",
		})
	}))
	defer srv.Close()

	client := gateway.NewRazorpayClient(utils.GatewayConfig{
		KeyID:     "key_id",
		KeySecret: "key_secret",
		BaseURL:   srv.URL,
	})

	order, err := client.CreateOrder(context.Background(), decimal.RequireFromString("499.50"), "INR", "receipt_1")
	require.NoError(t, err)

	assert.Equal(t, float64(49950), got["amount"], "amount must be converted to minor units")
	assert.Equal(t, "order_xyz", order.ID)
	assert.Equal(t, int64(49950), order.Amount)
	assert.Equal(t, "created", order.Status)
}

func TestCreateOrderGatewayFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"description":"Authentication failed"}}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := gateway.NewRazorpayClient(utils.GatewayConfig{BaseURL: srv.URL})

	_, err := client.CreateOrder(context.Background(), decimal.NewFromInt(100), "INR", "receipt_1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}
