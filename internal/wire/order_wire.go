package wire

import (
	"github.com/MuruliCGPayroute/superpetzjp/internal/adaptor"
	"github.com/MuruliCGPayroute/superpetzjp/pkg/middleware"
	"github.com/MuruliCGPayroute/superpetzjp/pkg/session"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireOrder(
	r chi.Router,
	orderHandler *adaptor.OrderHandler,
	sessions *session.Manager,
	log *zap.Logger,
) {
	r.Route("/api/order", func(r chi.Router) {
		// get-user resolves the session itself and answers 401 when absent
		r.Get("/get-user", orderHandler.GetUser)

		r.With(middleware.AuthSession(sessions, log)).
			Post("/place-order", orderHandler.PlaceOrder)
	})

	// Gateway endpoints are driven by the checkout widget before the
	// order itself is placed
	r.Route("/api/razorpay", func(r chi.Router) {
		r.Post("/create-order", orderHandler.CreateGatewayOrder)
		r.Post("/verify", orderHandler.VerifyPayment)
	})
}
