package response

import (
	"time"

	"github.com/MuruliCGPayroute/superpetzjp/internal/data/entity"

	"github.com/shopspring/decimal"
)

type ProductResponse struct {
	ProductID       int64           `json:"product_id"`
	Name            string          `json:"name"`
	Price           decimal.Decimal `json:"price"`
	StockQuantity   int             `json:"stock_quantity"`
	Description     string          `json:"description"`
	Content         string          `json:"content"`
	ImageURL        *string         `json:"image_url"`
	JanCode         string          `json:"jan_code"`
	Purpose         string          `json:"purpose"`
	RawMaterials    string          `json:"raw_materials"`
	CountryOfOrigin string          `json:"country_of_origin"`
	PackageSize     string          `json:"package_size"`
	PackageWeight   string          `json:"package_weight"`
	ProductSize     string          `json:"product_size"`
	ProductWeight   string          `json:"product_weight"`
	CategoryID      int64           `json:"category_id"`
	CreatedAt       time.Time       `json:"created_at"`
}

// ProductListingResponse is the storefront row with category display fields
// and the attached classification name list (empty, never null).
type ProductListingResponse struct {
	ProductID           int64           `json:"product_id"`
	Name                string          `json:"name"`
	Price               decimal.Decimal `json:"price"`
	StockQuantity       int             `json:"stock_quantity"`
	CreatedAt           time.Time       `json:"created_at"`
	Description         string          `json:"description"`
	Content             string          `json:"content"`
	ImageURL            *string         `json:"image_url"`
	BackgroundColor     *string         `json:"background_color"`
	CategoryDescription string          `json:"category_description"`
	CategoryImageURL    *string         `json:"category_image_url"`
	Classifications     []string        `json:"classifications"`
}

func ProductToResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ProductID:       p.ID,
		Name:            p.Name,
		Price:           p.Price,
		StockQuantity:   p.StockQuantity,
		Description:     p.Description,
		Content:         p.Content,
		ImageURL:        p.ImageURL,
		JanCode:         p.JanCode,
		Purpose:         p.Purpose,
		RawMaterials:    p.RawMaterials,
		CountryOfOrigin: p.CountryOfOrigin,
		PackageSize:     p.PackageSize,
		PackageWeight:   p.PackageWeight,
		ProductSize:     p.ProductSize,
		ProductWeight:   p.ProductWeight,
		CategoryID:      p.CategoryID,
		CreatedAt:       p.CreatedAt,
	}
}

func ProductsToResponse(products []*entity.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, ProductToResponse(p))
	}
	return out
}

func ListingToResponse(l *entity.ProductListing) ProductListingResponse {
	classifications := l.Classifications
	if classifications == nil {
		classifications = []string{}
	}

	return ProductListingResponse{
		ProductID:           l.ID,
		Name:                l.Name,
		Price:               l.Price,
		StockQuantity:       l.StockQuantity,
		CreatedAt:           l.CreatedAt,
		Description:         l.Description,
		Content:             l.Content,
		ImageURL:            l.ImageURL,
		BackgroundColor:     l.BackgroundColor,
		CategoryDescription: l.CategoryDescription,
		CategoryImageURL:    l.CategoryImageURL,
		Classifications:     classifications,
	}
}

func ListingsToResponse(listings []*entity.ProductListing) []ProductListingResponse {
	out := make([]ProductListingResponse, 0, len(listings))
	for _, l := range listings {
		out = append(out, ListingToResponse(l))
	}
	return out
}
