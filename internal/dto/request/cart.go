package request

// AddCartItemRequest increments or inserts; Quantity is a pointer so a
// missing or non-numeric value is told apart from zero.
type AddCartItemRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  *int  `json:"quantity" validate:"required"`
}

type SetCartItemRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  *int  `json:"quantity" validate:"required"`
}

type RemoveCartItemRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
}
