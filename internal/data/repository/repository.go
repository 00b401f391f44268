package repository

import (
	"hotel-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User     UserRepository
	Session  SessionRepository
	Hotel    HotelRepository
	Address  AddressRepository
	RoomType RoomTypeRepository
	Booking  BookingRepository
	Payment  PaymentRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:     NewUserRepository(db, log),
		Session:  NewSessionRepository(db, log),
		Hotel:    NewHotelRepository(db, log),
		Address:  NewAddressRepository(db, log),
		RoomType: NewRoomTypeRepository(db, log),
		Booking:  NewBookingRepository(db, log),
		Payment:  NewPaymentRepository(db, log),
	}
}
