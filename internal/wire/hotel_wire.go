package wire

import (
	"hotel-booking/internal/adaptor"
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/middleware"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireHotel(
	r chi.Router,
	hotelHandler *adaptor.HotelHandler,
	roomHandler *adaptor.RoomHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/hotels", hotelHandler.ListHotels)
	r.Get("/api/hotels/slug/{slug}", hotelHandler.GetHotelBySlug)
	r.Get("/api/hotels/{id}", hotelHandler.GetHotel)
	r.Get("/api/hotels/{id}/rooms", roomHandler.ListRoomTypes)
	r.Get("/api/hotels/{id}/availability", roomHandler.CheckAvailability)
	r.Get("/api/rooms/{id}", roomHandler.GetRoomType)

	// ==================== OWNER ROUTES ====================
	auth := middleware.Auth(config.JWT.Secret, repo.Session, log)
	owner := middleware.Owner(repo.User, log)

	r.Route("/api/owner", func(r chi.Router) {
		r.Use(auth)
		r.Use(owner)

		r.Get("/hotels", hotelHandler.ListOwnHotels)
		r.Post("/hotels", hotelHandler.CreateHotel)
		r.Put("/hotels/{id}", hotelHandler.UpdateHotel)
		r.Delete("/hotels/{id}", hotelHandler.DeleteHotel)
		r.Put("/hotels/{id}/address", hotelHandler.SetHotelAddress)

		r.Post("/hotels/{id}/rooms", roomHandler.CreateRoomType)
		r.Put("/rooms/{id}", roomHandler.UpdateRoomType)
		r.Delete("/rooms/{id}", roomHandler.DeleteRoomType)
	})
}
