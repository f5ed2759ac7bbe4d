package wire

import (
	"github.com/MuruliCGPayroute/superpetzjp/internal/adaptor"
	"github.com/MuruliCGPayroute/superpetzjp/pkg/middleware"
	"github.com/MuruliCGPayroute/superpetzjp/pkg/session"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCategory(
	r chi.Router,
	categoryHandler *adaptor.CategoryHandler,
	sessions *session.Manager,
	log *zap.Logger,
) {
	// Path shapes kept as the storefront already calls them
	r.Route("/api/category", func(r chi.Router) {
		// Public storefront reads
		r.Get("/categories", categoryHandler.List)
		r.Get("/categories/{id}", categoryHandler.Get)

		// Admin writes
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthSession(sessions, log))
			r.Use(middleware.Admin(log))

			r.Post("/add", categoryHandler.Create)
			r.Put("/categories/{id}", categoryHandler.Update)
			r.Delete("/categories/{id}", categoryHandler.Delete)
		})
	})
}
