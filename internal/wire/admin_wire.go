package wire

import (
	"hotel-booking/internal/adaptor"
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/middleware"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAdmin(
	r chi.Router,
	adminHandler *adaptor.AdminHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	auth := middleware.Auth(config.JWT.Secret, repo.Session, log)
	admin := middleware.Admin(repo.User, log)

	r.Route("/api/admin", func(r chi.Router) {
		r.Use(auth)
		r.Use(admin)

		// ==================== USER MANAGEMENT ====================
		r.Get("/users", adminHandler.ListUsers)
		r.Put("/users/{id}/active", adminHandler.SetUserActive)
		r.Put("/users/{id}/role", adminHandler.SetUserRole)

		// ==================== HOTEL MANAGEMENT ====================
		r.Get("/hotels", adminHandler.ListHotels)
		r.Post("/hotels/{id}/approve", adminHandler.ApproveHotel)
		r.Post("/hotels/{id}/deactivate", adminHandler.DeactivateHotel)

		// ==================== BOOKING MANAGEMENT ====================
		r.Get("/bookings", adminHandler.ListBookings)
		r.Get("/bookings/{id}", adminHandler.GetBooking)
		r.Post("/bookings/{id}/cancel", adminHandler.CancelBooking)

		// ==================== DASHBOARD ====================
		r.Get("/stats", adminHandler.GetStats)
	})
}
