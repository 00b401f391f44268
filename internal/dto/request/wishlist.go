package request

type AddWishlistRequest struct {
	HotelID string `json:"hotel_id" validate:"required,uuid4"`
}

type ToggleCompareRequest struct {
	RoomTypeID string `json:"room_type_id" validate:"required,uuid4"`
}
