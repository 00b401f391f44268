package wire

import (
	"hotel-booking/internal/adaptor"
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/middleware"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCompare(
	r chi.Router,
	compareHandler *adaptor.CompareHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	auth := middleware.Auth(config.JWT.Secret, repo.Session, log)

	r.Route("/api/compare", func(r chi.Router) {
		r.Use(auth)
		r.Get("/", compareHandler.GetComparison)
		r.Post("/toggle", compareHandler.ToggleCompare)
		r.Delete("/", compareHandler.ClearComparison)
	})
}
