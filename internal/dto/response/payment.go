package response

// GatewayOrderResponse mirrors the remote order object the gateway returns;
// the storefront hands these fields to the gateway's checkout widget.
type GatewayOrderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}
