package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

type BookingPaymentStatus string

const (
	BookingPaymentUnpaid   BookingPaymentStatus = "unpaid"
	BookingPaymentPaid     BookingPaymentStatus = "paid"
	BookingPaymentRefunded BookingPaymentStatus = "refunded"
)

type Booking struct {
	Base
	Reference     string               `db:"reference"`
	UserID        uuid.UUID            `db:"user_id"`
	HotelID       uuid.UUID            `db:"hotel_id"`
	RoomTypeID    uuid.UUID            `db:"room_type_id"`
	CheckIn       time.Time            `db:"check_in"`
	CheckOut      time.Time            `db:"check_out"`
	Nights        int                  `db:"nights"`
	Guests        int                  `db:"guests"`
	GuestName     string               `db:"guest_name"`
	GuestEmail    string               `db:"guest_email"`
	GuestPhone    *string              `db:"guest_phone"`
	Subtotal      float64              `db:"subtotal"`
	TaxAmount     float64              `db:"tax_amount"`
	FeeAmount     float64              `db:"fee_amount"`
	Total         float64              `db:"total"`
	Status        BookingStatus        `db:"status"`
	PaymentStatus BookingPaymentStatus `db:"payment_status"`
}
