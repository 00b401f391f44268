package wire

import (
	"hotel-booking/internal/adaptor"
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/middleware"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	auth := middleware.Auth(config.JWT.Secret, repo.Session, log)

	r.Route("/api/bookings", func(r chi.Router) {
		// Preview needs no account; the review step runs before login on some flows
		r.Post("/preview", bookingHandler.PreviewBooking)

		r.Group(func(r chi.Router) {
			r.Use(auth)
			r.Get("/", bookingHandler.ListBookings)
			r.Post("/", bookingHandler.CreateBooking)
			r.Get("/reference/{reference}", bookingHandler.GetBookingByReference)
			r.Get("/{id}", bookingHandler.GetBooking)
			r.Post("/{id}/cancel", bookingHandler.CancelBooking)
		})
	})
}
