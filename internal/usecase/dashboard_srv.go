package usecase

import (
	"context"
	"fmt"

	"github.com/MuruliCGPayroute/superpetzjp/internal/data/entity"
	"github.com/MuruliCGPayroute/superpetzjp/internal/data/repository"
	"github.com/MuruliCGPayroute/superpetzjp/internal/dto/response"

	"go.uber.org/zap"
)

type DashboardService interface {
	Counts(ctx context.Context) (*response.CountsResponse, error)
}

type dashboardService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	userRepo     repository.UserRepository
	log          *zap.Logger
}

func NewDashboardService(repo *repository.Repository, log *zap.Logger) DashboardService {
	return &dashboardService{
		productRepo:  repo.Product,
		categoryRepo: repo.Category,
		userRepo:     repo.User,
		log:          log,
	}
}

func (ds *dashboardService) Counts(ctx context.Context) (*response.CountsResponse, error) {
	products, err := ds.productRepo.CountAll(ctx)
	if err != nil {
		ds.log.Error("Failed to count products", zap.Error(err))
		return nil, fmt.Errorf("failed to load counts: %w", err)
	}
	categories, err := ds.categoryRepo.CountAll(ctx)
	if err != nil {
		ds.log.Error("Failed to count categories", zap.Error(err))
		return nil, fmt.Errorf("failed to load counts: %w", err)
	}
	customers, err := ds.userRepo.CountByRole(ctx, entity.RoleUser)
	if err != nil {
		ds.log.Error("Failed to count customers", zap.Error(err))
		return nil, fmt.Errorf("failed to load counts: %w", err)
	}

	return &response.CountsResponse{
		Products:   products,
		Categories: categories,
		Customers:  customers,
	}, nil
}
