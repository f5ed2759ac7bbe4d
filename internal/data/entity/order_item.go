package entity

import "github.com/shopspring/decimal"

// OrderItem snapshots quantity and unit price at purchase time so later
// catalog price changes never affect historical orders.
type OrderItem struct {
	ID        int64           `db:"order_item_id"`
	PaymentID int64           `db:"payment_id"`
	ProductID int64           `db:"product_id"`
	Quantity  int             `db:"quantity"`
	Price     decimal.Decimal `db:"price"`
}
