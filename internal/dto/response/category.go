package response

import (
	"github.com/MuruliCGPayroute/superpetzjp/internal/data/entity"
)

type CategoryResponse struct {
	CategoryID      int64   `json:"category_id"`
	Name            string  `json:"category_name"`
	Description     string  `json:"category_description"`
	ImageURL        *string `json:"category_image_url"`
	BackgroundColor *string `json:"background_color"`
}

func CategoryToResponse(category *entity.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID:      category.ID,
		Name:            category.Name,
		Description:     category.Description,
		ImageURL:        category.ImageURL,
		BackgroundColor: category.BackgroundColor,
	}
}

func CategoriesToResponse(categories []*entity.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, category := range categories {
		out = append(out, CategoryToResponse(category))
	}
	return out
}
