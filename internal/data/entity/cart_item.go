package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem is one (user, product) pair pending checkout; the pair is unique
type CartItem struct {
	ID        int64     `db:"cart_item_id"`
	UserID    int64     `db:"user_id"`
	ProductID int64     `db:"product_id"`
	Quantity  int       `db:"quantity"`
	AddedAt   time.Time `db:"added_at"`
}

// CartLine is a cart item joined with its product's display fields
type CartLine struct {
	CartItemID int64           `db:"cart_item_id"`
	ProductID  int64           `db:"product_id"`
	Quantity   int             `db:"quantity"`
	AddedAt    time.Time       `db:"added_at"`
	Name       string          `db:"name"`
	Price      decimal.Decimal `db:"price"`
	ImageURL   *string         `db:"image_url"`
}
