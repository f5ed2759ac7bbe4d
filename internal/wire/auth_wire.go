package wire

import (
	"github.com/MuruliCGPayroute/superpetzjp/internal/adaptor"
	"github.com/MuruliCGPayroute/superpetzjp/pkg/middleware"
	"github.com/MuruliCGPayroute/superpetzjp/pkg/session"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	sessions *session.Manager,
	log *zap.Logger,
) {
	// Customer auth
	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/signup", authHandler.Signup)
		r.Post("/login", authHandler.Login)
		r.Post("/logout", authHandler.Logout)

		// Role probes used by the frontend's route guards
		r.With(middleware.AuthSession(sessions, log), middleware.Admin(log)).
			Get("/admin-only", authHandler.AdminOnly)
		r.With(middleware.AuthSession(sessions, log), middleware.User(log)).
			Get("/user-only", authHandler.UserOnly)
	})

	// Admin auth lives on its own prefix with its own signup gate
	r.Route("/api/admin/auth", func(r chi.Router) {
		r.Post("/signup", authHandler.AdminSignup)
		r.Post("/login", authHandler.AdminLogin)
	})

	// Password reset sits directly under /api
	r.Post("/api/request-reset", authHandler.RequestPasswordReset)
	r.Post("/api/reset-password", authHandler.ResetPassword)
}
