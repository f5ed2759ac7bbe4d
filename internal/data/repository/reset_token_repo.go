package repository

import (
	"context"
	"fmt"

	"github.com/MuruliCGPayroute/superpetzjp/internal/data/entity"
	"github.com/MuruliCGPayroute/superpetzjp/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ResetTokenRepository interface {
	// Upsert overwrites any live token for the user; one token per user
	Upsert(ctx context.Context, userID int64, tokenHash string, expiry int64) error
	FindValid(ctx context.Context, tokenHash string, nowMillis int64) (*entity.PasswordResetToken, error)
	DeleteByUserID(ctx context.Context, userID int64) error
}

type resetTokenRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewResetTokenRepository(db database.PgxIface, log *zap.Logger) ResetTokenRepository {
	return &resetTokenRepository{
		db:  db,
		log: log.With(zap.String("repository", "reset_token")),
	}
}

func (r *resetTokenRepository) Upsert(ctx context.Context, userID int64, tokenHash string, expiry int64) error {
	query := `
		INSERT INTO password_reset_token (user_id, token, expiry)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE
		SET token = EXCLUDED.token, expiry = EXCLUDED.expiry
	`

	_, err := r.db.Exec(ctx, query, userID, tokenHash, expiry)
	if err != nil {
		r.log.Error("Failed to upsert reset token",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return fmt.Errorf("upsert reset token for user %d: %w", userID, err)
	}

	return nil
}

func (r *resetTokenRepository) FindValid(ctx context.Context, tokenHash string, nowMillis int64) (*entity.PasswordResetToken, error) {
	query := `
		SELECT user_id, token, expiry
		FROM password_reset_token
		WHERE token = $1 AND expiry > $2
	`

	var token entity.PasswordResetToken
	err := r.db.QueryRow(ctx, query, tokenHash, nowMillis).Scan(
		&token.UserID,
		&token.TokenHash,
		&token.Expiry,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find reset token", zap.Error(err))
		return nil, fmt.Errorf("find reset token: %w", err)
	}

	return &token, nil
}

func (r *resetTokenRepository) DeleteByUserID(ctx context.Context, userID int64) error {
	query := `DELETE FROM password_reset_token WHERE user_id = $1`

	_, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to delete reset token",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return fmt.Errorf("delete reset token for user %d: %w", userID, err)
	}

	return nil
}
