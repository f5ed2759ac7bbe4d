package repository

import (
	"context"
	"fmt"

	"github.com/MuruliCGPayroute/superpetzjp/internal/data/entity"
	"github.com/MuruliCGPayroute/superpetzjp/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type AdminRepository interface {
	Create(ctx context.Context, admin *entity.Admin) (int64, error)
	FindByEmail(ctx context.Context, email string) (*entity.Admin, error)
}

type adminRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAdminRepository(db database.PgxIface, log *zap.Logger) AdminRepository {
	return &adminRepository{
		db:  db,
		log: log.With(zap.String("repository", "admin")),
	}
}

func (r *adminRepository) Create(ctx context.Context, admin *entity.Admin) (int64, error) {
	query := `
		INSERT INTO admin (username, email, password, role)
		VALUES ($1, $2, $3, $4)
		RETURNING admin_id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		admin.Username,
		admin.Email,
		admin.PasswordHash,
		admin.Role,
	).Scan(&id)

	if err != nil {
		r.log.Error("Failed to create admin",
			zap.Error(err),
			zap.String("email", admin.Email),
		)
		return 0, fmt.Errorf("create admin %s: %w", admin.Email, err)
	}

	return id, nil
}

func (r *adminRepository) FindByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	query := `
		SELECT admin_id, username, email, password, role, created_at
		FROM admin
		WHERE email = $1
	`

	var admin entity.Admin
	err := r.db.QueryRow(ctx, query, email).Scan(
		&admin.ID,
		&admin.Username,
		&admin.Email,
		&admin.PasswordHash,
		&admin.Role,
		&admin.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find admin by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find admin by email %s: %w", email, err)
	}

	return &admin, nil
}
