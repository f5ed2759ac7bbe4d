package adaptor

import (
	"net/http"

	"github.com/MuruliCGPayroute/superpetzjp/internal/dto/request"
	"github.com/MuruliCGPayroute/superpetzjp/internal/usecase"
	"github.com/MuruliCGPayroute/superpetzjp/pkg/storage"
	"github.com/MuruliCGPayroute/superpetzjp/pkg/utils"

	"go.uber.org/zap"
)

type CategoryHandler struct {
	service usecase.CategoryService
	saver   storage.Saver
	log     *zap.Logger
}

func NewCategoryHandler(service usecase.CategoryService, saver storage.Saver, log *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		service: service,
		saver:   saver,
		log:     log,
	}
}

// List handles GET /api/category/categories
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list categories")
		return
	}
	utils.ResponseSuccess(w, "", utils.Envelope{"categories": categories})
}

// Get handles GET /api/category/categories/{id}
func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		utils.ResponseBadRequest(w, "Invalid category id", nil)
		return
	}

	category, err := h.service.Get(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get category")
		return
	}
	utils.ResponseSuccess(w, "", utils.Envelope{"category": category})
}

// Create handles POST /api/category/add (multipart, optional category_image)
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		utils.ResponseBadRequest(w, "Invalid multipart form", nil)
		return
	}

	imageFilename, err := saveUploadedFile(r, "category_image", h.saver)
	if err != nil {
		h.log.Warn("Category image upload rejected", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	req := request.CategoryRequest{
		Name:        r.FormValue("category_name"),
		Description: r.FormValue("category_description"),
	}
	id, err := h.service.Create(r.Context(), &req, imageFilename)
	if err != nil {
		handleServiceError(w, h.log, err, "create category")
		return
	}

	utils.ResponseCreated(w, "Category created successfully", utils.Envelope{"category_id": id})
}

// Update handles PUT /api/category/categories/{id} (multipart, optional category_image)
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		utils.ResponseBadRequest(w, "Invalid category id", nil)
		return
	}
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		utils.ResponseBadRequest(w, "Invalid multipart form", nil)
		return
	}

	imageFilename, err := saveUploadedFile(r, "category_image", h.saver)
	if err != nil {
		h.log.Warn("Category image upload rejected", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	req := request.CategoryRequest{
		Name:        r.FormValue("category_name"),
		Description: r.FormValue("category_description"),
	}
	if err := h.service.Update(r.Context(), id, &req, imageFilename); err != nil {
		handleServiceError(w, h.log, err, "update category")
		return
	}

	utils.ResponseSuccess(w, "Category updated successfully", nil)
}

// Delete handles DELETE /api/category/categories/{id}. The reply is
// always 200; success reflects whether a row was removed.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		utils.ResponseBadRequest(w, "Invalid category id", nil)
		return
	}

	deleted, err := h.service.Delete(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "delete category")
		return
	}
	utils.ResponseJSON(w, http.StatusOK, utils.Envelope{"success": deleted})
}
