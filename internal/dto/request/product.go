package request

// ProductRequest carries the multipart form fields for create and update.
// Numeric fields arrive as form strings and are parsed by the service.
type ProductRequest struct {
	Name            string `json:"name" validate:"required"`
	Price           string `json:"price" validate:"required"`
	StockQuantity   string `json:"stock_quantity" validate:"required"`
	CategoryID      string `json:"category_id" validate:"required"`
	Description     string `json:"description"`
	Content         string `json:"content"`
	JanCode         string `json:"jan_code"`
	Purpose         string `json:"purpose"`
	RawMaterials    string `json:"raw_materials"`
	CountryOfOrigin string `json:"country_of_origin"`
	PackageSize     string `json:"package_size"`
	PackageWeight   string `json:"package_weight"`
	ProductSize     string `json:"product_size"`
	ProductWeight   string `json:"product_weight"`
}
