package usecase

import (
	"context"
	"fmt"
	"strconv"

	"github.com/MuruliCGPayroute/superpetzjp/internal/data/entity"
	"github.com/MuruliCGPayroute/superpetzjp/internal/data/repository"
	"github.com/MuruliCGPayroute/superpetzjp/internal/dto/request"
	"github.com/MuruliCGPayroute/superpetzjp/internal/dto/response"
	"github.com/MuruliCGPayroute/superpetzjp/pkg/utils"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type ProductService interface {
	ListAll(ctx context.Context) ([]response.ProductResponse, error)
	Listings(ctx context.Context, categoryName, classificationName string) ([]response.ProductListingResponse, error)
	Get(ctx context.Context, id int64) (*response.ProductResponse, error)
	Create(ctx context.Context, req *request.ProductRequest, imageFilename *string) (int64, error)
	Update(ctx context.Context, id int64, req *request.ProductRequest, imageFilename *string) error
	Delete(ctx context.Context, id int64) error
}

type productService struct {
	productRepo        repository.ProductRepository
	categoryRepo       repository.CategoryRepository
	classificationRepo repository.ClassificationRepository
	cfg                *utils.Config
	log                *zap.Logger
}

func NewProductService(repo *repository.Repository, cfg *utils.Config, log *zap.Logger) ProductService {
	return &productService{
		productRepo:        repo.Product,
		categoryRepo:       repo.Category,
		classificationRepo: repo.Classification,
		cfg:                cfg,
		log:                log,
	}
}

// parseProduct converts the raw multipart form fields into an entity,
// rejecting non-numeric price, stock and category values.
func (ps *productService) parseProduct(req *request.ProductRequest) (*entity.Product, error) {
	price, err := decimal.NewFromString(req.Price)
	if err != nil || price.IsNegative() {
		return nil, ErrValidation("price must be a non-negative number")
	}
	stock, err := strconv.Atoi(req.StockQuantity)
	if err != nil || stock < 0 {
		return nil, ErrValidation("stock_quantity must be a non-negative integer")
	}
	categoryID, err := utils.ParseID(req.CategoryID)
	if err != nil {
		return nil, ErrValidation("category_id must be a positive integer")
	}

	return &entity.Product{
		Name:            req.Name,
		Price:           price,
		StockQuantity:   stock,
		CategoryID:      categoryID,
		Description:     req.Description,
		Content:         req.Content,
		JanCode:         req.JanCode,
		Purpose:         req.Purpose,
		RawMaterials:    req.RawMaterials,
		CountryOfOrigin: req.CountryOfOrigin,
		PackageSize:     req.PackageSize,
		PackageWeight:   req.PackageWeight,
		ProductSize:     req.ProductSize,
		ProductWeight:   req.ProductWeight,
	}, nil
}

// productImageValue stores product images as fully-qualified URLs, unlike
// category images which default to bare filenames.
func (ps *productService) productImageValue(filename string) string {
	return fmt.Sprintf("%s%s/%s", ps.cfg.App.BaseURL, ps.cfg.Uploads.PublicPath, filename)
}

func (ps *productService) ListAll(ctx context.Context) ([]response.ProductResponse, error) {
	products, err := ps.productRepo.FindAll(ctx)
	if err != nil {
		ps.log.Error("Failed to list products", zap.Error(err))
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return response.ProductsToResponse(products), nil
}

// Listings is the storefront view: products filtered by category and
// classification name, with classification names attached in a second
// batch query.
func (ps *productService) Listings(ctx context.Context, categoryName, classificationName string) ([]response.ProductListingResponse, error) {
	listings, err := ps.productRepo.FindListings(ctx, categoryName, classificationName)
	if err != nil {
		ps.log.Error("Failed to list storefront products", zap.Error(err),
			zap.String("category", categoryName), zap.String("classification", classificationName))
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	ids := make([]int64, 0, len(listings))
	for _, l := range listings {
		ids = append(ids, l.ID)
	}
	names, err := ps.classificationRepo.FindNamesByProductIDs(ctx, ids)
	if err != nil {
		ps.log.Error("Failed to load classifications", zap.Error(err))
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	for _, l := range listings {
		if attached, ok := names[l.ID]; ok {
			l.Classifications = attached
		} else {
			l.Classifications = []string{}
		}
	}

	return response.ListingsToResponse(listings), nil
}

func (ps *productService) Get(ctx context.Context, id int64) (*response.ProductResponse, error) {
	product, err := ps.productRepo.FindByID(ctx, id)
	if err != nil {
		ps.log.Error("Failed to get product", zap.Error(err), zap.Int64("product_id", id))
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if product == nil {
		return nil, ErrNotFound("Product not found")
	}
	resp := response.ProductToResponse(product)
	return &resp, nil
}

func (ps *productService) Create(ctx context.Context, req *request.ProductRequest, imageFilename *string) (int64, error) {
	if errs := utils.ValidateStruct(req); errs != nil {
		return 0, ErrValidation(utils.FormatValidationErrors(errs))
	}
	product, err := ps.parseProduct(req)
	if err != nil {
		return 0, err
	}

	exists, err := ps.categoryRepo.Exists(ctx, product.CategoryID)
	if err != nil {
		ps.log.Error("Failed to check category", zap.Error(err), zap.Int64("category_id", product.CategoryID))
		return 0, fmt.Errorf("failed to create product: %w", err)
	}
	if !exists {
		return 0, ErrValidation("Category does not exist")
	}

	if imageFilename != nil {
		value := ps.productImageValue(*imageFilename)
		product.ImageURL = &value
	}

	id, err := ps.productRepo.Create(ctx, product)
	if err != nil {
		ps.log.Error("Failed to create product", zap.Error(err), zap.String("name", req.Name))
		return 0, fmt.Errorf("failed to create product: %w", err)
	}

	ps.log.Info("Product created", zap.Int64("product_id", id), zap.String("name", req.Name))
	return id, nil
}

// Update replaces every catalog field; the stored image changes only when
// a new file was uploaded.
func (ps *productService) Update(ctx context.Context, id int64, req *request.ProductRequest, imageFilename *string) error {
	if errs := utils.ValidateStruct(req); errs != nil {
		return ErrValidation(utils.FormatValidationErrors(errs))
	}
	product, err := ps.parseProduct(req)
	if err != nil {
		return err
	}
	product.ID = id

	existing, err := ps.productRepo.FindByID(ctx, id)
	if err != nil {
		ps.log.Error("Failed to get product", zap.Error(err), zap.Int64("product_id", id))
		return fmt.Errorf("failed to update product: %w", err)
	}
	if existing == nil {
		return ErrNotFound("Product not found")
	}

	exists, err := ps.categoryRepo.Exists(ctx, product.CategoryID)
	if err != nil {
		ps.log.Error("Failed to check category", zap.Error(err), zap.Int64("category_id", product.CategoryID))
		return fmt.Errorf("failed to update product: %w", err)
	}
	if !exists {
		return ErrValidation("Category does not exist")
	}

	updateImage := imageFilename != nil
	if updateImage {
		value := ps.productImageValue(*imageFilename)
		product.ImageURL = &value
	}

	if err := ps.productRepo.Update(ctx, product, updateImage); err != nil {
		ps.log.Error("Failed to update product", zap.Error(err), zap.Int64("product_id", id))
		return fmt.Errorf("failed to update product: %w", err)
	}

	ps.log.Info("Product updated", zap.Int64("product_id", id))
	return nil
}

func (ps *productService) Delete(ctx context.Context, id int64) error {
	existing, err := ps.productRepo.FindByID(ctx, id)
	if err != nil {
		ps.log.Error("Failed to get product", zap.Error(err), zap.Int64("product_id", id))
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if existing == nil {
		return ErrNotFound("Product not found")
	}

	if err := ps.productRepo.Delete(ctx, id); err != nil {
		ps.log.Error("Failed to delete product", zap.Error(err), zap.Int64("product_id", id))
		return fmt.Errorf("failed to delete product: %w", err)
	}

	ps.log.Info("Product deleted", zap.Int64("product_id", id))
	return nil
}
