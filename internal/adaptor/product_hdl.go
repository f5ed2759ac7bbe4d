package adaptor

import (
	"net/http"

	"github.com/MuruliCGPayroute/superpetzjp/internal/dto/request"
	"github.com/MuruliCGPayroute/superpetzjp/internal/usecase"
	"github.com/MuruliCGPayroute/superpetzjp/pkg/storage"
	"github.com/MuruliCGPayroute/superpetzjp/pkg/utils"

	"go.uber.org/zap"
)

type ProductHandler struct {
	service usecase.ProductService
	saver   storage.Saver
	log     *zap.Logger
}

func NewProductHandler(service usecase.ProductService, saver storage.Saver, log *zap.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		saver:   saver,
		log:     log,
	}
}

func productRequestFromForm(r *http.Request) request.ProductRequest {
	return request.ProductRequest{
		Name:            r.FormValue("name"),
		Price:           r.FormValue("price"),
		StockQuantity:   r.FormValue("stock_quantity"),
		CategoryID:      r.FormValue("category_id"),
		Description:     r.FormValue("description"),
		Content:         r.FormValue("content"),
		JanCode:         r.FormValue("jan_code"),
		Purpose:         r.FormValue("purpose"),
		RawMaterials:    r.FormValue("raw_materials"),
		CountryOfOrigin: r.FormValue("country_of_origin"),
		PackageSize:     r.FormValue("package_size"),
		PackageWeight:   r.FormValue("package_weight"),
		ProductSize:     r.FormValue("product_size"),
		ProductWeight:   r.FormValue("product_weight"),
	}
}

// ListAll handles GET /api/products/all, the unfiltered admin view.
func (h *ProductHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListAll(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list products")
		return
	}
	utils.ResponseSuccess(w, "", utils.Envelope{"products": products})
}

// Listings handles GET /api/products, the storefront view. Optional
// category and classification query parameters filter by name.
func (h *ProductHandler) Listings(w http.ResponseWriter, r *http.Request) {
	categoryName := r.URL.Query().Get("category")
	classificationName := r.URL.Query().Get("classification")

	listings, err := h.service.Listings(r.Context(), categoryName, classificationName)
	if err != nil {
		handleServiceError(w, h.log, err, "list storefront products")
		return
	}
	utils.ResponseSuccess(w, "", utils.Envelope{"total": len(listings), "products": listings})
}

// Get handles GET /api/products/{id}
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		utils.ResponseBadRequest(w, "Invalid product id", nil)
		return
	}

	product, err := h.service.Get(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get product")
		return
	}
	utils.ResponseSuccess(w, "", utils.Envelope{"product": product})
}

// Create handles POST /api/products/add (multipart, optional image)
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		utils.ResponseBadRequest(w, "Invalid multipart form", nil)
		return
	}

	imageFilename, err := saveUploadedFile(r, "image", h.saver)
	if err != nil {
		h.log.Warn("Product image upload rejected", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	req := productRequestFromForm(r)
	id, err := h.service.Create(r.Context(), &req, imageFilename)
	if err != nil {
		handleServiceError(w, h.log, err, "create product")
		return
	}

	utils.ResponseCreated(w, "Product created successfully", utils.Envelope{"product_id": id})
}

// Update handles PUT /api/products/update/{id} (multipart, optional image)
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		utils.ResponseBadRequest(w, "Invalid product id", nil)
		return
	}
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		utils.ResponseBadRequest(w, "Invalid multipart form", nil)
		return
	}

	imageFilename, err := saveUploadedFile(r, "image", h.saver)
	if err != nil {
		h.log.Warn("Product image upload rejected", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	req := productRequestFromForm(r)
	if err := h.service.Update(r.Context(), id, &req, imageFilename); err != nil {
		handleServiceError(w, h.log, err, "update product")
		return
	}

	utils.ResponseSuccess(w, "Product updated successfully", nil)
}

// Delete handles DELETE /api/products/{id}
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		utils.ResponseBadRequest(w, "Invalid product id", nil)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err, "delete product")
		return
	}
	utils.ResponseSuccess(w, "Product deleted successfully", nil)
}
