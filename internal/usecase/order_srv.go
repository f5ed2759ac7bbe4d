package usecase

import (
	"context"
	"fmt"

	"github.com/MuruliCGPayroute/superpetzjp/internal/data/entity"
	"github.com/MuruliCGPayroute/superpetzjp/internal/data/repository"
	"github.com/MuruliCGPayroute/superpetzjp/internal/dto/request"
	"github.com/MuruliCGPayroute/superpetzjp/internal/dto/response"
	"github.com/MuruliCGPayroute/superpetzjp/pkg/gateway"
	"github.com/MuruliCGPayroute/superpetzjp/pkg/utils"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const paymentMethodCOD = "COD"

type OrderService interface {
	PlaceOrder(ctx context.Context, userID int64, req *request.PlaceOrderRequest) (int64, entity.PaymentStatus, error)
	CreateGatewayOrder(ctx context.Context, req *request.CreateGatewayOrderRequest) (*response.GatewayOrderResponse, error)
	VerifyPayment(ctx context.Context, req *request.VerifyPaymentRequest) (bool, error)
}

type orderService struct {
	paymentRepo repository.PaymentRepository
	productRepo repository.ProductRepository
	gateway     gateway.Client
	log         *zap.Logger
}

func NewOrderService(repo *repository.Repository, gw gateway.Client, log *zap.Logger) OrderService {
	return &orderService{
		paymentRepo: repo.Payment,
		productRepo: repo.Product,
		gateway:     gw,
		log:         log,
	}
}

// PlaceOrder records a payment with its order items and clears the cart,
// all in one transaction. Unit prices and the total are taken from the
// catalog, never from the request body.
func (os *orderService) PlaceOrder(ctx context.Context, userID int64, req *request.PlaceOrderRequest) (int64, entity.PaymentStatus, error) {
	if errs := utils.ValidateStruct(req); errs != nil {
		return 0, "", ErrValidation(utils.FormatValidationErrors(errs))
	}

	ids := make([]int64, 0, len(req.CartItems))
	for _, item := range req.CartItems {
		ids = append(ids, item.ProductID)
	}
	products, err := os.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		os.log.Error("Failed to load ordered products", zap.Error(err), zap.Int64("user_id", userID))
		return 0, "", fmt.Errorf("failed to place order: %w", err)
	}
	priceByID := make(map[int64]decimal.Decimal, len(products))
	for _, p := range products {
		priceByID[p.ID] = p.Price
	}

	total := decimal.Zero
	items := make([]*entity.OrderItem, 0, len(req.CartItems))
	for _, item := range req.CartItems {
		price, ok := priceByID[item.ProductID]
		if !ok {
			return 0, "", ErrValidation(fmt.Sprintf("product %d does not exist", item.ProductID))
		}
		total = total.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		items = append(items, &entity.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     price,
		})
	}

	status := entity.PaymentStatusPaid
	if req.PaymentMethod == paymentMethodCOD {
		status = entity.PaymentStatusPending
	}
	address := string(req.Address)

	payment := &entity.Payment{
		UserID:   userID,
		Amount:   total,
		Currency: req.Currency,
		Status:   status,
		Address:  &address,
	}
	paymentID, err := os.paymentRepo.PlaceOrder(ctx, payment, items)
	if err != nil {
		os.log.Error("Failed to place order", zap.Error(err), zap.Int64("user_id", userID))
		return 0, "", fmt.Errorf("failed to place order: %w", err)
	}

	os.log.Info("Order placed",
		zap.Int64("payment_id", paymentID), zap.Int64("user_id", userID),
		zap.String("total", total.String()), zap.String("status", string(status)))
	return paymentID, status, nil
}

// CreateGatewayOrder opens an order at the payment gateway and records it
// locally in "created" state, to be settled by VerifyPayment.
func (os *orderService) CreateGatewayOrder(ctx context.Context, req *request.CreateGatewayOrderRequest) (*response.GatewayOrderResponse, error) {
	if errs := utils.ValidateStruct(req); errs != nil {
		return nil, ErrValidation(utils.FormatValidationErrors(errs))
	}
	if !req.Amount.IsPositive() {
		return nil, ErrValidation("amount must be positive")
	}

	order, err := os.gateway.CreateOrder(ctx, req.Amount, req.Currency, utils.GenerateReceiptID())
	if err != nil {
		os.log.Error("Failed to create gateway order", zap.Error(err), zap.Int64("user_id", req.UserID))
		return nil, fmt.Errorf("failed to create gateway order: %w", err)
	}

	payment := &entity.Payment{
		UserID:         req.UserID,
		Amount:         req.Amount,
		Currency:       req.Currency,
		Status:         entity.PaymentStatusCreated,
		GatewayOrderID: &order.ID,
	}
	if _, err := os.paymentRepo.Create(ctx, payment); err != nil {
		os.log.Error("Failed to record gateway order", zap.Error(err), zap.String("gateway_order_id", order.ID))
		return nil, fmt.Errorf("failed to create gateway order: %w", err)
	}

	os.log.Info("Gateway order created",
		zap.String("gateway_order_id", order.ID), zap.Int64("user_id", req.UserID))
	return &response.GatewayOrderResponse{
		ID:       order.ID,
		Amount:   order.Amount,
		Currency: order.Currency,
		Receipt:  order.Receipt,
		Status:   order.Status,
	}, nil
}

// VerifyPayment checks the gateway signature over the order and payment
// ids and settles the local payment row either way. The boolean is the
// verdict; an error means the verdict could not be recorded.
func (os *orderService) VerifyPayment(ctx context.Context, req *request.VerifyPaymentRequest) (bool, error) {
	if errs := utils.ValidateStruct(req); errs != nil {
		return false, ErrValidation(utils.FormatValidationErrors(errs))
	}

	if !os.gateway.VerifySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature) {
		if err := os.paymentRepo.MarkFailed(ctx, req.RazorpayOrderID); err != nil {
			os.log.Error("Failed to mark payment failed", zap.Error(err),
				zap.String("gateway_order_id", req.RazorpayOrderID))
			return false, fmt.Errorf("failed to verify payment: %w", err)
		}
		os.log.Warn("Payment signature mismatch", zap.String("gateway_order_id", req.RazorpayOrderID))
		return false, nil
	}

	if err := os.paymentRepo.MarkPaid(ctx, req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature); err != nil {
		os.log.Error("Failed to mark payment paid", zap.Error(err),
			zap.String("gateway_order_id", req.RazorpayOrderID))
		return false, fmt.Errorf("failed to verify payment: %w", err)
	}

	os.log.Info("Payment verified", zap.String("gateway_order_id", req.RazorpayOrderID))
	return true, nil
}
