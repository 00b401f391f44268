package wire

import (
	"hotel-booking/internal/adaptor"
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/middleware"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/api/auth/register", authHandler.Register)
	r.Post("/api/auth/login", authHandler.Login)
	r.Get("/api/auth/oauth/url", authHandler.OAuthURL)

	// ==================== PROTECTED ROUTES ====================
	auth := middleware.Auth(config.JWT.Secret, repo.Session, log)
	r.With(auth).Post("/api/auth/logout", authHandler.Logout)
	r.With(auth).Get("/api/auth/me", authHandler.Me)
}
