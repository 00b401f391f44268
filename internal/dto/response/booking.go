package response

import (
	"time"

	"hotel-booking/internal/data/entity"
)

// BreakdownLine is one itemized tax or fee in a price breakdown.
type BreakdownLine struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// PriceBreakdownResponse is the server-computed booking preview. The client
// renders it verbatim; nothing is recomputed client-side.
type PriceBreakdownResponse struct {
	PricePerNight float64         `json:"price_per_night"`
	Nights        int             `json:"nights"`
	Subtotal      float64         `json:"subtotal"`
	Taxes         []BreakdownLine `json:"taxes"`
	Fees          []BreakdownLine `json:"fees"`
	Total         float64         `json:"total"`
}

type BookingResponse struct {
	ID            string                      `json:"id"`
	Reference     string                      `json:"reference"`
	UserID        string                      `json:"user_id"`
	HotelID       string                      `json:"hotel_id"`
	RoomTypeID    string                      `json:"room_type_id"`
	HotelName     string                      `json:"hotel_name,omitempty"`
	RoomTypeName  string                      `json:"room_type_name,omitempty"`
	CheckIn       string                      `json:"check_in"`
	CheckOut      string                      `json:"check_out"`
	Nights        int                         `json:"nights"`
	Guests        int                         `json:"guests"`
	GuestName     string                      `json:"guest_name"`
	GuestEmail    string                      `json:"guest_email"`
	GuestPhone    *string                     `json:"guest_phone,omitempty"`
	Breakdown     PriceBreakdownResponse      `json:"breakdown"`
	Status        entity.BookingStatus        `json:"status"`
	PaymentStatus entity.BookingPaymentStatus `json:"payment_status"`
	Payment       *PaymentResponse            `json:"payment,omitempty"`
	CreatedAt     time.Time                   `json:"created_at"`
}

// BookingToResponse rebuilds the breakdown from the amounts persisted with
// the booking, so totals shown later always match what was charged even if
// the room price or fee rates changed since.
func BookingToResponse(booking *entity.Booking) BookingResponse {
	var pricePerNight float64
	if booking.Nights > 0 {
		pricePerNight = booking.Subtotal / float64(booking.Nights)
	}

	breakdown := PriceBreakdownResponse{
		PricePerNight: pricePerNight,
		Nights:        booking.Nights,
		Subtotal:      booking.Subtotal,
		Total:         booking.Total,
	}
	if booking.TaxAmount > 0 {
		breakdown.Taxes = []BreakdownLine{{Label: "Taxes", Amount: booking.TaxAmount}}
	}
	if booking.FeeAmount > 0 {
		breakdown.Fees = []BreakdownLine{{Label: "Fees", Amount: booking.FeeAmount}}
	}

	return BookingResponse{
		ID:            booking.ID.String(),
		Reference:     booking.Reference,
		UserID:        booking.UserID.String(),
		HotelID:       booking.HotelID.String(),
		RoomTypeID:    booking.RoomTypeID.String(),
		CheckIn:       booking.CheckIn.Format("2006-01-02"),
		CheckOut:      booking.CheckOut.Format("2006-01-02"),
		Nights:        booking.Nights,
		Guests:        booking.Guests,
		GuestName:     booking.GuestName,
		GuestEmail:    booking.GuestEmail,
		GuestPhone:    booking.GuestPhone,
		Breakdown:     breakdown,
		Status:        booking.Status,
		PaymentStatus: booking.PaymentStatus,
		CreatedAt:     booking.CreatedAt,
	}
}
