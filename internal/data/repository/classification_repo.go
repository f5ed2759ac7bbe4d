package repository

import (
	"context"
	"fmt"

	"github.com/MuruliCGPayroute/superpetzjp/internal/data/entity"
	"github.com/MuruliCGPayroute/superpetzjp/pkg/database"

	"go.uber.org/zap"
)

type ClassificationRepository interface {
	FindAll(ctx context.Context) ([]*entity.Classification, error)
	Create(ctx context.Context, name string) (int64, error)
	Attach(ctx context.Context, productID, classificationID int64) error
	FindNamesByProductIDs(ctx context.Context, productIDs []int64) (map[int64][]string, error)
}

type classificationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewClassificationRepository(db database.PgxIface, log *zap.Logger) ClassificationRepository {
	return &classificationRepository{
		db:  db,
		log: log.With(zap.String("repository", "classification")),
	}
}

func (r *classificationRepository) FindAll(ctx context.Context) ([]*entity.Classification, error) {
	query := `
		SELECT classification_id, classification_name
		FROM classification
		ORDER BY classification_id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to get classifications", zap.Error(err))
		return nil, fmt.Errorf("find all classifications: %w", err)
	}
	defer rows.Close()

	var classifications []*entity.Classification
	for rows.Next() {
		var classification entity.Classification
		if err := rows.Scan(&classification.ID, &classification.Name); err != nil {
			return nil, fmt.Errorf("scan classification row: %w", err)
		}
		classifications = append(classifications, &classification)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate classification rows: %w", err)
	}

	return classifications, nil
}

func (r *classificationRepository) Create(ctx context.Context, name string) (int64, error) {
	query := `
		INSERT INTO classification (classification_name)
		VALUES ($1)
		RETURNING classification_id
	`

	var id int64
	if err := r.db.QueryRow(ctx, query, name).Scan(&id); err != nil {
		r.log.Error("Failed to create classification",
			zap.Error(err),
			zap.String("name", name),
		)
		return 0, fmt.Errorf("create classification %s: %w", name, err)
	}

	return id, nil
}

func (r *classificationRepository) Attach(ctx context.Context, productID, classificationID int64) error {
	query := `
		INSERT INTO product_classification (product_id, classification_id)
		VALUES ($1, $2)
		ON CONFLICT (product_id, classification_id) DO NOTHING
	`

	_, err := r.db.Exec(ctx, query, productID, classificationID)
	if err != nil {
		r.log.Error("Failed to attach classification",
			zap.Error(err),
			zap.Int64("product_id", productID),
			zap.Int64("classification_id", classificationID),
		)
		return fmt.Errorf("attach classification %d to product %d: %w", classificationID, productID, err)
	}

	return nil
}

// FindNamesByProductIDs batch-loads classification names for a set of
// products, so the listing join does not duplicate product rows.
func (r *classificationRepository) FindNamesByProductIDs(ctx context.Context, productIDs []int64) (map[int64][]string, error) {
	names := make(map[int64][]string)
	if len(productIDs) == 0 {
		return names, nil
	}

	query := `
		SELECT pc.product_id, c.classification_name
		FROM product_classification pc
		JOIN classification c ON pc.classification_id = c.classification_id
		WHERE pc.product_id = ANY($1)
	`

	rows, err := r.db.Query(ctx, query, productIDs)
	if err != nil {
		r.log.Error("Failed to get product classifications", zap.Error(err))
		return nil, fmt.Errorf("find classifications for products: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var productID int64
		var name string
		if err := rows.Scan(&productID, &name); err != nil {
			return nil, fmt.Errorf("scan product classification row: %w", err)
		}
		names[productID] = append(names[productID], name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate product classification rows: %w", err)
	}

	return names, nil
}
