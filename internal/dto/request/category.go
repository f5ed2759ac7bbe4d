package request

// CategoryRequest comes from multipart form fields; the optional
// category_image file is handled separately by the handler.
type CategoryRequest struct {
	Name        string `json:"category_name" validate:"required"`
	Description string `json:"category_description" validate:"required"`
}
