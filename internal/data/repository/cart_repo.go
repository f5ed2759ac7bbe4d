package repository

import (
	"context"
	"fmt"

	"github.com/MuruliCGPayroute/superpetzjp/internal/data/entity"
	"github.com/MuruliCGPayroute/superpetzjp/pkg/database"

	"go.uber.org/zap"
)

type CartRepository interface {
	// Upsert adds quantity to the (user, product) pair, inserting the row if
	// it does not exist yet. Returns true when a new row was created.
	Upsert(ctx context.Context, userID, productID int64, quantity int) (bool, error)
	// SetQuantity overwrites the quantity; returns false when the pair is absent
	SetQuantity(ctx context.Context, userID, productID int64, quantity int) (bool, error)
	Remove(ctx context.Context, userID, productID int64) error
	Clear(ctx context.Context, userID int64) error
	FindByUser(ctx context.Context, userID int64) ([]*entity.CartLine, error)
}

type cartRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCartRepository(db database.PgxIface, log *zap.Logger) CartRepository {
	return &cartRepository{
		db:  db,
		log: log.With(zap.String("repository", "cart")),
	}
}

// Upsert relies on the UNIQUE (user_id, product_id) constraint so two
// concurrent adds for the same pair can never lose an update or produce a
// duplicate row. xmax = 0 distinguishes a fresh insert from an update.
func (r *cartRepository) Upsert(ctx context.Context, userID, productID int64, quantity int) (bool, error) {
	query := `
		INSERT INTO cart_items (user_id, product_id, quantity, added_at)
		VALUES ($1, $2, $3, CURRENT_TIMESTAMP)
		ON CONFLICT (user_id, product_id) DO UPDATE
		SET quantity = cart_items.quantity + EXCLUDED.quantity,
		    added_at = CURRENT_TIMESTAMP
		RETURNING (xmax = 0) AS inserted
	`

	var inserted bool
	err := r.db.QueryRow(ctx, query, userID, productID, quantity).Scan(&inserted)
	if err != nil {
		r.log.Error("Failed to upsert cart item",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int64("product_id", productID),
		)
		return false, fmt.Errorf("upsert cart item (%d, %d): %w", userID, productID, err)
	}

	return inserted, nil
}

func (r *cartRepository) SetQuantity(ctx context.Context, userID, productID int64, quantity int) (bool, error) {
	query := `
		UPDATE cart_items
		SET quantity = $3, added_at = CURRENT_TIMESTAMP
		WHERE user_id = $1 AND product_id = $2
	`

	result, err := r.db.Exec(ctx, query, userID, productID, quantity)
	if err != nil {
		r.log.Error("Failed to set cart quantity",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int64("product_id", productID),
		)
		return false, fmt.Errorf("set cart quantity (%d, %d): %w", userID, productID, err)
	}

	return result.RowsAffected() > 0, nil
}

// Remove deletes the pair; succeeds even when it is already gone
func (r *cartRepository) Remove(ctx context.Context, userID, productID int64) error {
	query := `DELETE FROM cart_items WHERE user_id = $1 AND product_id = $2`

	_, err := r.db.Exec(ctx, query, userID, productID)
	if err != nil {
		r.log.Error("Failed to remove cart item",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int64("product_id", productID),
		)
		return fmt.Errorf("remove cart item (%d, %d): %w", userID, productID, err)
	}

	return nil
}

func (r *cartRepository) Clear(ctx context.Context, userID int64) error {
	query := `DELETE FROM cart_items WHERE user_id = $1`

	_, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to clear cart",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return fmt.Errorf("clear cart for user %d: %w", userID, err)
	}

	return nil
}

func (r *cartRepository) FindByUser(ctx context.Context, userID int64) ([]*entity.CartLine, error) {
	query := `
		SELECT ci.cart_item_id, ci.product_id, ci.quantity, ci.added_at,
		       p.name, p.price, p.image_url
		FROM cart_items ci
		JOIN products p ON ci.product_id = p.product_id
		WHERE ci.user_id = $1
		ORDER BY ci.added_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to get cart items",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return nil, fmt.Errorf("find cart for user %d: %w", userID, err)
	}
	defer rows.Close()

	var lines []*entity.CartLine
	for rows.Next() {
		var line entity.CartLine
		err := rows.Scan(
			&line.CartItemID,
			&line.ProductID,
			&line.Quantity,
			&line.AddedAt,
			&line.Name,
			&line.Price,
			&line.ImageURL,
		)
		if err != nil {
			r.log.Error("Failed to scan cart row", zap.Error(err))
			return nil, fmt.Errorf("scan cart row: %w", err)
		}
		lines = append(lines, &line)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cart rows: %w", err)
	}

	return lines, nil
}
