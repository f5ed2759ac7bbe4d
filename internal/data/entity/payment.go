package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusCreated PaymentStatus = "created"
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

type Payment struct {
	ID               int64           `db:"payment_id"`
	UserID           int64           `db:"user_id"`
	Amount           decimal.Decimal `db:"amount"`
	Currency         string          `db:"currency"`
	Status           PaymentStatus   `db:"payment_status"`
	GatewayOrderID   *string         `db:"razorpay_order_id"`
	GatewayPaymentID *string         `db:"razorpay_payment_id"`
	GatewaySignature *string         `db:"razorpay_signature"`
	Address          *string         `db:"address"`
	CreatedAt        time.Time       `db:"created_at"`
}
