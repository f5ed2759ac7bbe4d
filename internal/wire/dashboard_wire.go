package wire

import (
	"github.com/MuruliCGPayroute/superpetzjp/internal/adaptor"
	"github.com/MuruliCGPayroute/superpetzjp/pkg/middleware"
	"github.com/MuruliCGPayroute/superpetzjp/pkg/session"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireDashboard(
	r chi.Router,
	dashboardHandler *adaptor.DashboardHandler,
	sessions *session.Manager,
	log *zap.Logger,
) {
	r.Route("/api/dashboard", func(r chi.Router) {
		r.Use(middleware.AuthSession(sessions, log))
		r.Use(middleware.Admin(log))

		r.Get("/counts", dashboardHandler.Counts)
	})
}
