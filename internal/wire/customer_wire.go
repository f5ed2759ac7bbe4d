package wire

import (
	"github.com/MuruliCGPayroute/superpetzjp/internal/adaptor"
	"github.com/MuruliCGPayroute/superpetzjp/pkg/middleware"
	"github.com/MuruliCGPayroute/superpetzjp/pkg/session"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCustomer(
	r chi.Router,
	customerHandler *adaptor.CustomerHandler,
	sessions *session.Manager,
	log *zap.Logger,
) {
	// Customer directory is admin-only
	r.Route("/api/customer", func(r chi.Router) {
		r.Use(middleware.AuthSession(sessions, log))
		r.Use(middleware.Admin(log))

		r.Get("/all", customerHandler.List)
		r.Get("/{id}", customerHandler.Get)
		r.Post("/add", customerHandler.Create)
		r.Put("/update/{id}", customerHandler.Update)
		r.Delete("/delete/{id}", customerHandler.Delete)
	})
}
