package request

type CreateBookingRequest struct {
	HotelID    string  `json:"hotel_id" validate:"required,uuid4"`
	RoomTypeID string  `json:"room_type_id" validate:"required,uuid4"`
	CheckIn    string  `json:"check_in" validate:"required,datetime=2006-01-02"`
	CheckOut   string  `json:"check_out" validate:"required,datetime=2006-01-02"`
	Guests     int     `json:"guests" validate:"required,min=1"`
	GuestName  string  `json:"guest_name" validate:"required,min=2,max=100"`
	GuestEmail string  `json:"guest_email" validate:"required,email"`
	GuestPhone *string `json:"guest_phone,omitempty" validate:"omitempty,min=10,max=15"`
}

// PreviewBookingRequest asks for the price breakdown without creating anything.
type PreviewBookingRequest struct {
	RoomTypeID string `json:"room_type_id" validate:"required,uuid4"`
	CheckIn    string `json:"check_in" validate:"required,datetime=2006-01-02"`
	CheckOut   string `json:"check_out" validate:"required,datetime=2006-01-02"`
	Guests     int    `json:"guests" validate:"required,min=1"`
}
