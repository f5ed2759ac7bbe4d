package usecase

import (
	"context"
	"fmt"

	"github.com/MuruliCGPayroute/superpetzjp/internal/data/repository"
	"github.com/MuruliCGPayroute/superpetzjp/internal/dto/request"
	"github.com/MuruliCGPayroute/superpetzjp/internal/dto/response"
	"github.com/MuruliCGPayroute/superpetzjp/pkg/utils"

	"go.uber.org/zap"
)

type ClassificationService interface {
	List(ctx context.Context) ([]response.ClassificationResponse, error)
	Create(ctx context.Context, req *request.ClassificationRequest) (int64, error)
	Attach(ctx context.Context, productID int64, req *request.AttachClassificationRequest) error
}

type classificationService struct {
	classificationRepo repository.ClassificationRepository
	productRepo        repository.ProductRepository
	log                *zap.Logger
}

func NewClassificationService(repo *repository.Repository, log *zap.Logger) ClassificationService {
	return &classificationService{
		classificationRepo: repo.Classification,
		productRepo:        repo.Product,
		log:                log,
	}
}

func (cs *classificationService) List(ctx context.Context) ([]response.ClassificationResponse, error) {
	classifications, err := cs.classificationRepo.FindAll(ctx)
	if err != nil {
		cs.log.Error("Failed to list classifications", zap.Error(err))
		return nil, fmt.Errorf("failed to list classifications: %w", err)
	}
	return response.ClassificationsToResponse(classifications), nil
}

func (cs *classificationService) Create(ctx context.Context, req *request.ClassificationRequest) (int64, error) {
	if errs := utils.ValidateStruct(req); errs != nil {
		return 0, ErrValidation(utils.FormatValidationErrors(errs))
	}

	id, err := cs.classificationRepo.Create(ctx, req.Name)
	if err != nil {
		cs.log.Error("Failed to create classification", zap.Error(err), zap.String("name", req.Name))
		return 0, fmt.Errorf("failed to create classification: %w", err)
	}

	cs.log.Info("Classification created", zap.Int64("classification_id", id), zap.String("name", req.Name))
	return id, nil
}

// Attach links a classification to a product. Re-attaching the same pair
// is a no-op.
func (cs *classificationService) Attach(ctx context.Context, productID int64, req *request.AttachClassificationRequest) error {
	if errs := utils.ValidateStruct(req); errs != nil {
		return ErrValidation(utils.FormatValidationErrors(errs))
	}

	product, err := cs.productRepo.FindByID(ctx, productID)
	if err != nil {
		cs.log.Error("Failed to get product", zap.Error(err), zap.Int64("product_id", productID))
		return fmt.Errorf("failed to attach classification: %w", err)
	}
	if product == nil {
		return ErrNotFound("Product not found")
	}

	if err := cs.classificationRepo.Attach(ctx, productID, req.ClassificationID); err != nil {
		cs.log.Error("Failed to attach classification", zap.Error(err),
			zap.Int64("product_id", productID), zap.Int64("classification_id", req.ClassificationID))
		return fmt.Errorf("failed to attach classification: %w", err)
	}

	cs.log.Info("Classification attached",
		zap.Int64("product_id", productID), zap.Int64("classification_id", req.ClassificationID))
	return nil
}
