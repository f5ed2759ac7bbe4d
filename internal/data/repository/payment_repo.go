package repository

import (
	"context"
	"fmt"

	"github.com/MuruliCGPayroute/superpetzjp/internal/data/entity"
	"github.com/MuruliCGPayroute/superpetzjp/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PaymentRepository interface {
	// PlaceOrder persists the payment, its order lines, and clears the
	// user's cart in a single transaction.
	PlaceOrder(ctx context.Context, payment *entity.Payment, items []*entity.OrderItem) (int64, error)
	Create(ctx context.Context, payment *entity.Payment) (int64, error)
	MarkPaid(ctx context.Context, gatewayOrderID, gatewayPaymentID, signature string) error
	MarkFailed(ctx context.Context, gatewayOrderID string) error
	FindByGatewayOrderID(ctx context.Context, gatewayOrderID string) (*entity.Payment, error)
}

type paymentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPaymentRepository(db database.PgxIface, log *zap.Logger) PaymentRepository {
	return &paymentRepository{
		db:  db,
		log: log.With(zap.String("repository", "payment")),
	}
}

const insertPaymentSQL = `
	INSERT INTO payments (user_id, amount, currency, payment_status, razorpay_order_id, address)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING payment_id
`

func (r *paymentRepository) PlaceOrder(ctx context.Context, payment *entity.Payment, items []*entity.OrderItem) (int64, error) {
	var paymentID int64

	err := database.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, insertPaymentSQL,
			payment.UserID,
			payment.Amount,
			payment.Currency,
			payment.Status,
			payment.GatewayOrderID,
			payment.Address,
		).Scan(&paymentID)
		if err != nil {
			return fmt.Errorf("insert payment: %w", err)
		}

		for _, item := range items {
			_, err := tx.Exec(ctx,
				`INSERT INTO order_items (payment_id, product_id, quantity, price)
				 VALUES ($1, $2, $3, $4)`,
				paymentID,
				item.ProductID,
				item.Quantity,
				item.Price,
			)
			if err != nil {
				return fmt.Errorf("insert order item for product %d: %w", item.ProductID, err)
			}
		}

		if _, err := tx.Exec(ctx, `DELETE FROM cart_items WHERE user_id = $1`, payment.UserID); err != nil {
			return fmt.Errorf("clear cart: %w", err)
		}

		return nil
	})

	if err != nil {
		r.log.Error("Failed to place order",
			zap.Error(err),
			zap.Int64("user_id", payment.UserID),
			zap.Int("item_count", len(items)),
		)
		return 0, fmt.Errorf("place order for user %d: %w", payment.UserID, err)
	}

	return paymentID, nil
}

func (r *paymentRepository) Create(ctx context.Context, payment *entity.Payment) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, insertPaymentSQL,
		payment.UserID,
		payment.Amount,
		payment.Currency,
		payment.Status,
		payment.GatewayOrderID,
		payment.Address,
	).Scan(&id)

	if err != nil {
		r.log.Error("Failed to create payment",
			zap.Error(err),
			zap.Int64("user_id", payment.UserID),
		)
		return 0, fmt.Errorf("create payment for user %d: %w", payment.UserID, err)
	}

	return id, nil
}

func (r *paymentRepository) MarkPaid(ctx context.Context, gatewayOrderID, gatewayPaymentID, signature string) error {
	query := `
		UPDATE payments
		SET razorpay_payment_id = $2, razorpay_signature = $3, payment_status = 'paid'
		WHERE razorpay_order_id = $1
	`

	_, err := r.db.Exec(ctx, query, gatewayOrderID, gatewayPaymentID, signature)
	if err != nil {
		r.log.Error("Failed to mark payment paid",
			zap.Error(err),
			zap.String("gateway_order_id", gatewayOrderID),
		)
		return fmt.Errorf("mark payment paid %s: %w", gatewayOrderID, err)
	}

	return nil
}

func (r *paymentRepository) MarkFailed(ctx context.Context, gatewayOrderID string) error {
	query := `
		UPDATE payments
		SET payment_status = 'failed'
		WHERE razorpay_order_id = $1
	`

	_, err := r.db.Exec(ctx, query, gatewayOrderID)
	if err != nil {
		r.log.Error("Failed to mark payment failed",
			zap.Error(err),
			zap.String("gateway_order_id", gatewayOrderID),
		)
		return fmt.Errorf("mark payment failed %s: %w", gatewayOrderID, err)
	}

	return nil
}

func (r *paymentRepository) FindByGatewayOrderID(ctx context.Context, gatewayOrderID string) (*entity.Payment, error) {
	query := `
		SELECT payment_id, user_id, amount, currency, payment_status,
		       razorpay_order_id, razorpay_payment_id, razorpay_signature,
		       address, created_at
		FROM payments
		WHERE razorpay_order_id = $1
	`

	var payment entity.Payment
	err := r.db.QueryRow(ctx, query, gatewayOrderID).Scan(
		&payment.ID,
		&payment.UserID,
		&payment.Amount,
		&payment.Currency,
		&payment.Status,
		&payment.GatewayOrderID,
		&payment.GatewayPaymentID,
		&payment.GatewaySignature,
		&payment.Address,
		&payment.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find payment",
			zap.Error(err),
			zap.String("gateway_order_id", gatewayOrderID),
		)
		return nil, fmt.Errorf("find payment %s: %w", gatewayOrderID, err)
	}

	return &payment, nil
}
