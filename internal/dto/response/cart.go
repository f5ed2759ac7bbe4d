package response

import (
	"time"

	"github.com/MuruliCGPayroute/superpetzjp/internal/data/entity"

	"github.com/shopspring/decimal"
)

type CartLineResponse struct {
	CartItemID int64           `json:"cart_item_id"`
	ProductID  int64           `json:"product_id"`
	Quantity   int             `json:"quantity"`
	AddedAt    time.Time       `json:"added_at"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	ImageURL   *string         `json:"image_url"`
}

func CartLinesToResponse(lines []*entity.CartLine) []CartLineResponse {
	out := make([]CartLineResponse, 0, len(lines))
	for _, line := range lines {
		out = append(out, CartLineResponse{
			CartItemID: line.CartItemID,
			ProductID:  line.ProductID,
			Quantity:   line.Quantity,
			AddedAt:    line.AddedAt,
			Name:       line.Name,
			Price:      line.Price,
			ImageURL:   line.ImageURL,
		})
	}
	return out
}
