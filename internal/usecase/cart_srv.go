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

type CartService interface {
	Add(ctx context.Context, userID int64, req *request.AddCartItemRequest) (created bool, err error)
	SetQuantity(ctx context.Context, userID int64, req *request.SetCartItemRequest) error
	Remove(ctx context.Context, userID int64, req *request.RemoveCartItemRequest) error
	Clear(ctx context.Context, userID int64) error
	List(ctx context.Context, userID int64) ([]response.CartLineResponse, error)
}

type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	log         *zap.Logger
}

func NewCartService(repo *repository.Repository, log *zap.Logger) CartService {
	return &cartService{
		cartRepo:    repo.Cart,
		productRepo: repo.Product,
		log:         log,
	}
}

// Add inserts a cart line or increments an existing one in a single
// statement. The returned flag reports which of the two happened.
func (cs *cartService) Add(ctx context.Context, userID int64, req *request.AddCartItemRequest) (bool, error) {
	if errs := utils.ValidateStruct(req); errs != nil {
		return false, ErrValidation(utils.FormatValidationErrors(errs))
	}
	if *req.Quantity < 1 {
		return false, ErrValidation("quantity must be at least 1")
	}

	product, err := cs.productRepo.FindByID(ctx, req.ProductID)
	if err != nil {
		cs.log.Error("Failed to get product", zap.Error(err), zap.Int64("product_id", req.ProductID))
		return false, fmt.Errorf("failed to add to cart: %w", err)
	}
	if product == nil {
		return false, ErrNotFound("Product not found")
	}

	created, err := cs.cartRepo.Upsert(ctx, userID, req.ProductID, *req.Quantity)
	if err != nil {
		cs.log.Error("Failed to upsert cart item", zap.Error(err),
			zap.Int64("user_id", userID), zap.Int64("product_id", req.ProductID))
		return false, fmt.Errorf("failed to add to cart: %w", err)
	}

	cs.log.Info("Cart item added",
		zap.Int64("user_id", userID), zap.Int64("product_id", req.ProductID),
		zap.Int("quantity", *req.Quantity), zap.Bool("created", created))
	return created, nil
}

func (cs *cartService) SetQuantity(ctx context.Context, userID int64, req *request.SetCartItemRequest) error {
	if errs := utils.ValidateStruct(req); errs != nil {
		return ErrValidation(utils.FormatValidationErrors(errs))
	}
	if *req.Quantity < 1 {
		return ErrValidation("quantity must be at least 1")
	}

	found, err := cs.cartRepo.SetQuantity(ctx, userID, req.ProductID, *req.Quantity)
	if err != nil {
		cs.log.Error("Failed to set cart quantity", zap.Error(err),
			zap.Int64("user_id", userID), zap.Int64("product_id", req.ProductID))
		return fmt.Errorf("failed to update cart: %w", err)
	}
	if !found {
		return ErrNotFound("Cart item not found")
	}

	cs.log.Info("Cart quantity set",
		zap.Int64("user_id", userID), zap.Int64("product_id", req.ProductID), zap.Int("quantity", *req.Quantity))
	return nil
}

// Remove is idempotent: removing an absent line still succeeds.
func (cs *cartService) Remove(ctx context.Context, userID int64, req *request.RemoveCartItemRequest) error {
	if errs := utils.ValidateStruct(req); errs != nil {
		return ErrValidation(utils.FormatValidationErrors(errs))
	}

	if err := cs.cartRepo.Remove(ctx, userID, req.ProductID); err != nil {
		cs.log.Error("Failed to remove cart item", zap.Error(err),
			zap.Int64("user_id", userID), zap.Int64("product_id", req.ProductID))
		return fmt.Errorf("failed to remove from cart: %w", err)
	}
	return nil
}

func (cs *cartService) Clear(ctx context.Context, userID int64) error {
	if err := cs.cartRepo.Clear(ctx, userID); err != nil {
		cs.log.Error("Failed to clear cart", zap.Error(err), zap.Int64("user_id", userID))
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	cs.log.Info("Cart cleared", zap.Int64("user_id", userID))
	return nil
}

func (cs *cartService) List(ctx context.Context, userID int64) ([]response.CartLineResponse, error) {
	lines, err := cs.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		cs.log.Error("Failed to list cart", zap.Error(err), zap.Int64("user_id", userID))
		return nil, fmt.Errorf("failed to list cart: %w", err)
	}
	return response.CartLinesToResponse(lines), nil
}
