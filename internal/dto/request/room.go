package request

type CreateRoomTypeRequest struct {
	Name        string   `json:"name" validate:"required,min=2,max=100"`
	Description string   `json:"description"`
	Capacity    int      `json:"capacity" validate:"required,min=1,max=20"`
	BasePrice   float64  `json:"base_price" validate:"required,gt=0"`
	TotalRooms  int      `json:"total_rooms" validate:"required,min=1"`
	Amenities   []string `json:"amenities,omitempty"`
}

type UpdateRoomTypeRequest struct {
	Name        string   `json:"name" validate:"required,min=2,max=100"`
	Description string   `json:"description"`
	Capacity    int      `json:"capacity" validate:"required,min=1,max=20"`
	BasePrice   float64  `json:"base_price" validate:"required,gt=0"`
	TotalRooms  int      `json:"total_rooms" validate:"required,min=1"`
	Status      string   `json:"status" validate:"required,oneof=available blocked maintenance"`
	Amenities   []string `json:"amenities,omitempty"`
}

// AvailabilityRequest is parsed from query params on the availability endpoint.
type AvailabilityRequest struct {
	CheckIn  string `json:"check_in" validate:"required,datetime=2006-01-02"`
	CheckOut string `json:"check_out" validate:"required,datetime=2006-01-02"`
	Guests   int    `json:"guests" validate:"required,min=1"`
}
