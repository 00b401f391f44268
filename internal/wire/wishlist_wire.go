package wire

import (
	"hotel-booking/internal/adaptor"
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/middleware"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireWishlist(
	r chi.Router,
	wishlistHandler *adaptor.WishlistHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	auth := middleware.Auth(config.JWT.Secret, repo.Session, log)

	r.Route("/api/wishlist", func(r chi.Router) {
		r.Use(auth)
		r.Get("/", wishlistHandler.GetWishlist)
		r.Post("/", wishlistHandler.AddToWishlist)
		r.Delete("/{hotelID}", wishlistHandler.RemoveFromWishlist)
	})
}
