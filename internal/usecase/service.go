package usecase

import (
	"github.com/MuruliCGPayroute/superpetzjp/internal/data/repository"
	"github.com/MuruliCGPayroute/superpetzjp/pkg/gateway"
	"github.com/MuruliCGPayroute/superpetzjp/pkg/mailer"
	"github.com/MuruliCGPayroute/superpetzjp/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth           AuthService
	Category       CategoryService
	Classification ClassificationService
	Product        ProductService
	Cart           CartService
	Order          OrderService
	Customer       CustomerService
	Dashboard      DashboardService
}

func NewService(repo *repository.Repository, cfg *utils.Config, mail mailer.Mailer, gw gateway.Client, log *zap.Logger) *Service {
	return &Service{
		Auth:           NewAuthService(repo, mail, cfg, log),
		Category:       NewCategoryService(repo, cfg, log),
		Classification: NewClassificationService(repo, log),
		Product:        NewProductService(repo, cfg, log),
		Cart:           NewCartService(repo, log),
		Order:          NewOrderService(repo, gw, log),
		Customer:       NewCustomerService(repo, log),
		Dashboard:      NewDashboardService(repo, log),
	}
}
