package wire

import (
	"github.com/MuruliCGPayroute/superpetzjp/internal/adaptor"
	"github.com/MuruliCGPayroute/superpetzjp/pkg/middleware"
	"github.com/MuruliCGPayroute/superpetzjp/pkg/session"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireProduct(
	r chi.Router,
	productHandler *adaptor.ProductHandler,
	classificationHandler *adaptor.ClassificationHandler,
	sessions *session.Manager,
	log *zap.Logger,
) {
	r.Route("/api/products", func(r chi.Router) {
		// Public storefront reads
		r.Get("/", productHandler.Listings)
		r.Get("/all", productHandler.ListAll)
		r.Get("/{id}", productHandler.Get)

		// Admin writes
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthSession(sessions, log))
			r.Use(middleware.Admin(log))

			r.Post("/add", productHandler.Create)
			r.Put("/update/{id}", productHandler.Update)
			r.Delete("/{id}", productHandler.Delete)
			r.Post("/{id}/classifications", classificationHandler.Attach)
		})
	})
}
