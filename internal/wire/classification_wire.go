package wire

import (
	"github.com/MuruliCGPayroute/superpetzjp/internal/adaptor"
	"github.com/MuruliCGPayroute/superpetzjp/pkg/middleware"
	"github.com/MuruliCGPayroute/superpetzjp/pkg/session"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireClassification(
	r chi.Router,
	classificationHandler *adaptor.ClassificationHandler,
	sessions *session.Manager,
	log *zap.Logger,
) {
	r.Route("/api/classifications", func(r chi.Router) {
		r.Get("/", classificationHandler.List)

		r.With(middleware.AuthSession(sessions, log), middleware.Admin(log)).
			Post("/add", classificationHandler.Create)
	})
}
