package repository

import (
	"github.com/MuruliCGPayroute/superpetzjp/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User           UserRepository
	Admin          AdminRepository
	Category       CategoryRepository
	Classification ClassificationRepository
	Product        ProductRepository
	Cart           CartRepository
	Payment        PaymentRepository
	ResetToken     ResetTokenRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:           NewUserRepository(db, log),
		Admin:          NewAdminRepository(db, log),
		Category:       NewCategoryRepository(db, log),
		Classification: NewClassificationRepository(db, log),
		Product:        NewProductRepository(db, log),
		Cart:           NewCartRepository(db, log),
		Payment:        NewPaymentRepository(db, log),
		ResetToken:     NewResetTokenRepository(db, log),
	}
}
