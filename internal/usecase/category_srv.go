package usecase

import (
	"context"
	"fmt"

	"github.com/MuruliCGPayroute/superpetzjp/internal/data/entity"
	"github.com/MuruliCGPayroute/superpetzjp/internal/data/repository"
	"github.com/MuruliCGPayroute/superpetzjp/internal/dto/request"
	"github.com/MuruliCGPayroute/superpetzjp/internal/dto/response"
	"github.com/MuruliCGPayroute/superpetzjp/pkg/utils"

	"go.uber.org/zap"
)

type CategoryService interface {
	List(ctx context.Context) ([]response.CategoryResponse, error)
	Get(ctx context.Context, id int64) (*response.CategoryResponse, error)
	Create(ctx context.Context, req *request.CategoryRequest, imageFilename *string) (int64, error)
	Update(ctx context.Context, id int64, req *request.CategoryRequest, imageFilename *string) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
	cfg          *utils.Config
	log          *zap.Logger
}

func NewCategoryService(repo *repository.Repository, cfg *utils.Config, log *zap.Logger) CategoryService {
	return &categoryService{
		categoryRepo: repo.Category,
		cfg:          cfg,
		log:          log,
	}
}

// categoryImageValue is what gets stored in category.image_url. Bare
// filenames are the default; fully-qualified URLs are opt-in via config.
func (cs *categoryService) categoryImageValue(filename string) string {
	if cs.cfg.Uploads.AbsoluteCategoryURLs {
		return fmt.Sprintf("%s%s/%s", cs.cfg.App.BaseURL, cs.cfg.Uploads.PublicPath, filename)
	}
	return filename
}

func (cs *categoryService) List(ctx context.Context) ([]response.CategoryResponse, error) {
	categories, err := cs.categoryRepo.FindAll(ctx)
	if err != nil {
		cs.log.Error("Failed to list categories", zap.Error(err))
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return response.CategoriesToResponse(categories), nil
}

func (cs *categoryService) Get(ctx context.Context, id int64) (*response.CategoryResponse, error) {
	category, err := cs.categoryRepo.FindByID(ctx, id)
	if err != nil {
		cs.log.Error("Failed to get category", zap.Error(err), zap.Int64("category_id", id))
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	if category == nil {
		return nil, ErrNotFound("Category not found")
	}
	resp := response.CategoryToResponse(category)
	return &resp, nil
}

func (cs *categoryService) Create(ctx context.Context, req *request.CategoryRequest, imageFilename *string) (int64, error) {
	if errs := utils.ValidateStruct(req); errs != nil {
		return 0, ErrValidation(utils.FormatValidationErrors(errs))
	}

	category := &entity.Category{
		Name:        req.Name,
		Description: req.Description,
	}
	if imageFilename != nil {
		value := cs.categoryImageValue(*imageFilename)
		category.ImageURL = &value
	}

	id, err := cs.categoryRepo.Create(ctx, category)
	if err != nil {
		cs.log.Error("Failed to create category", zap.Error(err), zap.String("name", req.Name))
		return 0, fmt.Errorf("failed to create category: %w", err)
	}

	cs.log.Info("Category created", zap.Int64("category_id", id), zap.String("name", req.Name))
	return id, nil
}

// Update replaces the stored image only when a new file was uploaded.
func (cs *categoryService) Update(ctx context.Context, id int64, req *request.CategoryRequest, imageFilename *string) error {
	if errs := utils.ValidateStruct(req); errs != nil {
		return ErrValidation(utils.FormatValidationErrors(errs))
	}

	var imageValue *string
	if imageFilename != nil {
		value := cs.categoryImageValue(*imageFilename)
		imageValue = &value
	}

	found, err := cs.categoryRepo.Update(ctx, id, req.Name, req.Description, imageValue)
	if err != nil {
		cs.log.Error("Failed to update category", zap.Error(err), zap.Int64("category_id", id))
		return fmt.Errorf("failed to update category: %w", err)
	}
	if !found {
		return ErrNotFound("Category not found")
	}

	cs.log.Info("Category updated", zap.Int64("category_id", id))
	return nil
}

// Delete is unconditional; the caller learns via the returned flag
// whether a row was actually removed.
func (cs *categoryService) Delete(ctx context.Context, id int64) (bool, error) {
	found, err := cs.categoryRepo.Delete(ctx, id)
	if err != nil {
		cs.log.Error("Failed to delete category", zap.Error(err), zap.Int64("category_id", id))
		return false, fmt.Errorf("failed to delete category: %w", err)
	}
	if found {
		cs.log.Info("Category deleted", zap.Int64("category_id", id))
	}
	return found, nil
}
