package repository

import (
	"context"
	"fmt"

	"github.com/MuruliCGPayroute/superpetzjp/internal/data/entity"
	"github.com/MuruliCGPayroute/superpetzjp/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ProductRepository interface {
	FindAll(ctx context.Context) ([]*entity.Product, error)
	FindListings(ctx context.Context, categoryName, classificationName string) ([]*entity.ProductListing, error)
	FindByID(ctx context.Context, id int64) (*entity.Product, error)
	FindByIDs(ctx context.Context, ids []int64) ([]*entity.Product, error)
	Create(ctx context.Context, product *entity.Product) (int64, error)
	Update(ctx context.Context, product *entity.Product, updateImage bool) error
	Delete(ctx context.Context, id int64) error
	CountAll(ctx context.Context) (int64, error)
}

type productRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewProductRepository(db database.PgxIface, log *zap.Logger) ProductRepository {
	return &productRepository{
		db:  db,
		log: log.With(zap.String("repository", "product")),
	}
}

const productColumns = `
	product_id, name, price, stock_quantity, description, content, image_url,
	jan_code, purpose, raw_materials, country_of_origin,
	package_size, package_weight, product_size, product_weight,
	category_id, created_at
`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Price,
		&p.StockQuantity,
		&p.Description,
		&p.Content,
		&p.ImageURL,
		&p.JanCode,
		&p.Purpose,
		&p.RawMaterials,
		&p.CountryOfOrigin,
		&p.PackageSize,
		&p.PackageWeight,
		&p.ProductSize,
		&p.ProductWeight,
		&p.CategoryID,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// FindAll is the plain admin-panel listing, no joins or filters
func (r *productRepository) FindAll(ctx context.Context) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY product_id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to get all products", zap.Error(err))
		return nil, fmt.Errorf("find all products: %w", err)
	}
	defer rows.Close()

	var products []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			r.log.Error("Failed to scan product row", zap.Error(err))
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate product rows: %w", err)
	}

	return products, nil
}

// FindListings composes the storefront listing: inner join to the category
// (a product's category must exist) and left join to classifications (a
// product may have none), with optional equality filters by name. DISTINCT
// collapses the row duplication the classification join introduces; the full
// classification name lists are attached by the service in a second query.
func (r *productRepository) FindListings(ctx context.Context, categoryName, classificationName string) ([]*entity.ProductListing, error) {
	query := `
		SELECT DISTINCT
			p.product_id, p.name, p.price, p.stock_quantity, p.created_at,
			p.description, p.content, p.image_url,
			cat.background_color,
			cat.category_description,
			cat.category_image_url
		FROM products p
		INNER JOIN product_categories cat ON p.category_id = cat.category_id
		LEFT JOIN product_classification pc ON p.product_id = pc.product_id
		LEFT JOIN classification c ON pc.classification_id = c.classification_id
		WHERE 1=1
	`
	var args []any

	if categoryName != "" {
		args = append(args, categoryName)
		query += fmt.Sprintf(" AND cat.category_name = $%d", len(args))
	}

	if classificationName != "" {
		args = append(args, classificationName)
		query += fmt.Sprintf(" AND c.classification_name = $%d", len(args))
	}

	query += " ORDER BY p.created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to get product listings",
			zap.Error(err),
			zap.String("category", categoryName),
			zap.String("classification", classificationName),
		)
		return nil, fmt.Errorf("find product listings: %w", err)
	}
	defer rows.Close()

	var listings []*entity.ProductListing
	for rows.Next() {
		var l entity.ProductListing
		err := rows.Scan(
			&l.ID,
			&l.Name,
			&l.Price,
			&l.StockQuantity,
			&l.CreatedAt,
			&l.Description,
			&l.Content,
			&l.ImageURL,
			&l.BackgroundColor,
			&l.CategoryDescription,
			&l.CategoryImageURL,
		)
		if err != nil {
			r.log.Error("Failed to scan product listing row", zap.Error(err))
			return nil, fmt.Errorf("scan product listing row: %w", err)
		}
		listings = append(listings, &l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate product listing rows: %w", err)
	}

	return listings, nil
}

func (r *productRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE product_id = $1`

	p, err := scanProduct(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find product",
			zap.Error(err),
			zap.Int64("product_id", id),
		)
		return nil, fmt.Errorf("find product %d: %w", id, err)
	}

	return p, nil
}

// FindByIDs loads the products referenced by a set of cart lines
func (r *productRepository) FindByIDs(ctx context.Context, ids []int64) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `SELECT ` + productColumns + ` FROM products WHERE product_id = ANY($1)`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		r.log.Error("Failed to get products by ids", zap.Error(err))
		return nil, fmt.Errorf("find products by ids: %w", err)
	}
	defer rows.Close()

	var products []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate product rows: %w", err)
	}

	return products, nil
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) (int64, error) {
	query := `
		INSERT INTO products
			(name, description, content, price, stock_quantity,
			 purpose, category_id, image_url, jan_code,
			 raw_materials, country_of_origin,
			 package_size, package_weight,
			 product_size, product_weight)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING product_id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		product.Name,
		product.Description,
		product.Content,
		product.Price,
		product.StockQuantity,
		product.Purpose,
		product.CategoryID,
		product.ImageURL,
		product.JanCode,
		product.RawMaterials,
		product.CountryOfOrigin,
		product.PackageSize,
		product.PackageWeight,
		product.ProductSize,
		product.ProductWeight,
	).Scan(&id)

	if err != nil {
		r.log.Error("Failed to create product",
			zap.Error(err),
			zap.String("name", product.Name),
		)
		return 0, fmt.Errorf("create product %s: %w", product.Name, err)
	}

	return id, nil
}

// Update rewrites every listed column; the image reference is only included
// when a new upload is present, so an existing image is never cleared.
func (r *productRepository) Update(ctx context.Context, product *entity.Product, updateImage bool) error {
	query := `
		UPDATE products SET
			name = $2, description = $3, content = $4, price = $5,
			stock_quantity = $6, purpose = $7, category_id = $8,
			jan_code = $9, raw_materials = $10, country_of_origin = $11,
			package_size = $12, package_weight = $13,
			product_size = $14, product_weight = $15
		WHERE product_id = $1
	`
	args := []any{
		product.ID,
		product.Name,
		product.Description,
		product.Content,
		product.Price,
		product.StockQuantity,
		product.Purpose,
		product.CategoryID,
		product.JanCode,
		product.RawMaterials,
		product.CountryOfOrigin,
		product.PackageSize,
		product.PackageWeight,
		product.ProductSize,
		product.ProductWeight,
	}

	if updateImage {
		query = `
			UPDATE products SET
				name = $2, description = $3, content = $4, price = $5,
				stock_quantity = $6, purpose = $7, category_id = $8,
				jan_code = $9, raw_materials = $10, country_of_origin = $11,
				package_size = $12, package_weight = $13,
				product_size = $14, product_weight = $15, image_url = $16
			WHERE product_id = $1
		`
		args = append(args, product.ImageURL)
	}

	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to update product",
			zap.Error(err),
			zap.Int64("product_id", product.ID),
		)
		return fmt.Errorf("update product %d: %w", product.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("product %d not found", product.ID)
	}

	return nil
}

func (r *productRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM products WHERE product_id = $1`

	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete product",
			zap.Error(err),
			zap.Int64("product_id", id),
		)
		return fmt.Errorf("delete product %d: %w", id, err)
	}

	return nil
}

func (r *productRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM products`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Database error counting products", zap.Error(err))
		return 0, fmt.Errorf("count products: %w", err)
	}

	return count, nil
}
