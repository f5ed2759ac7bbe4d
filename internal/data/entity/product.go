package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID              int64           `db:"product_id"`
	Name            string          `db:"name"`
	Price           decimal.Decimal `db:"price"`
	StockQuantity   int             `db:"stock_quantity"`
	Description     string          `db:"description"`
	Content         string          `db:"content"`
	ImageURL        *string         `db:"image_url"`
	JanCode         string          `db:"jan_code"`
	Purpose         string          `db:"purpose"`
	RawMaterials    string          `db:"raw_materials"`
	CountryOfOrigin string          `db:"country_of_origin"`
	PackageSize     string          `db:"package_size"`
	PackageWeight   string          `db:"package_weight"`
	ProductSize     string          `db:"product_size"`
	ProductWeight   string          `db:"product_weight"`
	CategoryID      int64           `db:"category_id"`
	CreatedAt       time.Time       `db:"created_at"`
}

// ProductListing is the filtered storefront row: product display fields
// joined with its category's display fields, plus the attached
// classification names (fetched in a second batch query).
type ProductListing struct {
	ID                  int64           `db:"product_id"`
	Name                string          `db:"name"`
	Price               decimal.Decimal `db:"price"`
	StockQuantity       int             `db:"stock_quantity"`
	CreatedAt           time.Time       `db:"created_at"`
	Description         string          `db:"description"`
	Content             string          `db:"content"`
	ImageURL            *string         `db:"image_url"`
	BackgroundColor     *string         `db:"background_color"`
	CategoryDescription string          `db:"category_description"`
	CategoryImageURL    *string         `db:"category_image_url"`
	Classifications     []string
}
