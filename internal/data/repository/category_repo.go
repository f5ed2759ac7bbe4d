package repository

import (
	"context"
	"fmt"

	"github.com/MuruliCGPayroute/superpetzjp/internal/data/entity"
	"github.com/MuruliCGPayroute/superpetzjp/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CategoryRepository interface {
	FindAll(ctx context.Context) ([]*entity.Category, error)
	FindByID(ctx context.Context, id int64) (*entity.Category, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, category *entity.Category) (int64, error)
	Update(ctx context.Context, id int64, name, description string, imageURL *string) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	CountAll(ctx context.Context) (int64, error)
}

type categoryRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCategoryRepository(db database.PgxIface, log *zap.Logger) CategoryRepository {
	return &categoryRepository{
		db:  db,
		log: log.With(zap.String("repository", "category")),
	}
}

func (r *categoryRepository) FindAll(ctx context.Context) ([]*entity.Category, error) {
	query := `
		SELECT category_id, category_name, category_description,
		       category_image_url, background_color
		FROM product_categories
		ORDER BY category_id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to get categories", zap.Error(err))
		return nil, fmt.Errorf("find all categories: %w", err)
	}
	defer rows.Close()

	var categories []*entity.Category
	for rows.Next() {
		var category entity.Category
		err := rows.Scan(
			&category.ID,
			&category.Name,
			&category.Description,
			&category.ImageURL,
			&category.BackgroundColor,
		)
		if err != nil {
			r.log.Error("Failed to scan category row", zap.Error(err))
			return nil, fmt.Errorf("scan category row: %w", err)
		}
		categories = append(categories, &category)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate category rows: %w", err)
	}

	return categories, nil
}

func (r *categoryRepository) FindByID(ctx context.Context, id int64) (*entity.Category, error) {
	query := `
		SELECT category_id, category_name, category_description,
		       category_image_url, background_color
		FROM product_categories
		WHERE category_id = $1
	`

	var category entity.Category
	err := r.db.QueryRow(ctx, query, id).Scan(
		&category.ID,
		&category.Name,
		&category.Description,
		&category.ImageURL,
		&category.BackgroundColor,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find category",
			zap.Error(err),
			zap.Int64("category_id", id),
		)
		return nil, fmt.Errorf("find category %d: %w", id, err)
	}

	return &category, nil
}

func (r *categoryRepository) Exists(ctx context.Context, id int64) (bool, error) {
	query := `SELECT 1 FROM product_categories WHERE category_id = $1`

	var one int
	err := r.db.QueryRow(ctx, query, id).Scan(&one)
	if err == pgx.ErrNoRows {
		return false, nil
	}
	if err != nil {
		r.log.Error("Failed to check category existence",
			zap.Error(err),
			zap.Int64("category_id", id),
		)
		return false, fmt.Errorf("check category %d: %w", id, err)
	}

	return true, nil
}

func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) (int64, error) {
	query := `
		INSERT INTO product_categories (category_name, category_description, category_image_url)
		VALUES ($1, $2, $3)
		RETURNING category_id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		category.Name,
		category.Description,
		category.ImageURL,
	).Scan(&id)

	if err != nil {
		r.log.Error("Failed to create category",
			zap.Error(err),
			zap.String("name", category.Name),
		)
		return 0, fmt.Errorf("create category %s: %w", category.Name, err)
	}

	return id, nil
}

// Update overwrites name and description; the image reference is only
// rewritten when a new one is supplied.
func (r *categoryRepository) Update(ctx context.Context, id int64, name, description string, imageURL *string) (bool, error) {
	query := `
		UPDATE product_categories
		SET category_name = $2, category_description = $3
		WHERE category_id = $1
	`
	args := []any{id, name, description}

	if imageURL != nil {
		query = `
			UPDATE product_categories
			SET category_name = $2, category_description = $3, category_image_url = $4
			WHERE category_id = $1
		`
		args = append(args, *imageURL)
	}

	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to update category",
			zap.Error(err),
			zap.Int64("category_id", id),
		)
		return false, fmt.Errorf("update category %d: %w", id, err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *categoryRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query := `DELETE FROM product_categories WHERE category_id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete category",
			zap.Error(err),
			zap.Int64("category_id", id),
		)
		return false, fmt.Errorf("delete category %d: %w", id, err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *categoryRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM product_categories`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Database error counting categories", zap.Error(err))
		return 0, fmt.Errorf("count categories: %w", err)
	}

	return count, nil
}
