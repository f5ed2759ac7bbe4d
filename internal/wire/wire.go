package wire

import (
	"net/http"

	"github.com/MuruliCGPayroute/superpetzjp/internal/adaptor"
	"github.com/MuruliCGPayroute/superpetzjp/internal/data/repository"
	"github.com/MuruliCGPayroute/superpetzjp/internal/usecase"
	"github.com/MuruliCGPayroute/superpetzjp/pkg/gateway"
	"github.com/MuruliCGPayroute/superpetzjp/pkg/mailer"
	"github.com/MuruliCGPayroute/superpetzjp/pkg/middleware"
	"github.com/MuruliCGPayroute/superpetzjp/pkg/session"
	"github.com/MuruliCGPayroute/superpetzjp/pkg/storage"
	"github.com/MuruliCGPayroute/superpetzjp/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

// Wiring builds services, handlers and the router from the shared
// infrastructure pieces.
func Wiring(
	repo *repository.Repository,
	sessions *session.Manager,
	saver storage.Saver,
	mail mailer.Mailer,
	gw gateway.Client,
	config *utils.Config,
	logger *zap.Logger,
) *App {
	service := usecase.NewService(repo, config, mail, gw, logger)
	handler := adaptor.NewHandler(service, sessions, saver, logger)

	router := setupRouter(handler, sessions, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	sessions *session.Manager,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS([]string{config.App.ClientURL}))

	// Routes
	wireAuth(r, handler.Auth, sessions, logger)
	wireCategory(r, handler.Category, sessions, logger)
	wireClassification(r, handler.Classification, sessions, logger)
	wireProduct(r, handler.Product, handler.Classification, sessions, logger)
	wireCart(r, handler.Cart, sessions, logger)
	wireOrder(r, handler.Order, sessions, logger)
	wireCustomer(r, handler.Customer, sessions, logger)
	wireDashboard(r, handler.Dashboard, sessions, logger)

	// Uploaded images are served straight off disk
	uploads := http.StripPrefix(config.Uploads.PublicPath+"/", http.FileServer(http.Dir(config.Uploads.Dir)))
	r.Handle(config.Uploads.PublicPath+"/*", uploads)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
