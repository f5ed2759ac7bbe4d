package request

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

type PlaceOrderItem struct {
	ProductID int64           `json:"product_id" validate:"required,gt=0"`
	Quantity  int             `json:"quantity" validate:"required,gte=1"`
	Price     decimal.Decimal `json:"price"` // client figure, ignored; price is recomputed from the catalog
}

type PlaceOrderRequest struct {
	Address       json.RawMessage  `json:"address" validate:"required"`
	PaymentMethod string           `json:"payment_method" validate:"required"`
	TotalAmount   decimal.Decimal  `json:"total_amount"` // client figure, ignored
	Currency      string           `json:"currency" validate:"required"`
	CartItems     []PlaceOrderItem `json:"cart_items" validate:"required,min=1,dive"`
}
