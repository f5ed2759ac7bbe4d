package wire

import (
	"github.com/MuruliCGPayroute/superpetzjp/internal/adaptor"
	"github.com/MuruliCGPayroute/superpetzjp/pkg/middleware"
	"github.com/MuruliCGPayroute/superpetzjp/pkg/session"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCart(
	r chi.Router,
	cartHandler *adaptor.CartHandler,
	sessions *session.Manager,
	log *zap.Logger,
) {
	// Every cart operation is scoped to the session's user
	r.Route("/api/cart", func(r chi.Router) {
		r.Use(middleware.AuthSession(sessions, log))

		r.Get("/", cartHandler.List)
		r.Post("/", cartHandler.Add)
		r.Put("/", cartHandler.SetQuantity)
		r.Delete("/", cartHandler.Remove)
		r.Delete("/all", cartHandler.Clear)
	})
}
