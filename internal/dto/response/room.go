package response

import (
	"time"

	"hotel-booking/internal/data/entity"
)

type RoomTypeResponse struct {
	ID          string            `json:"id"`
	HotelID     string            `json:"hotel_id"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Capacity    int               `json:"capacity"`
	BasePrice   float64           `json:"base_price"`
	TotalRooms  int               `json:"total_rooms"`
	Status      entity.RoomStatus `json:"status"`
	Amenities   []string          `json:"amenities,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}

// AvailableRoomResponse is one row of the availability search: the room type
// plus the stay arithmetic the client renders (price per night x nights).
type AvailableRoomResponse struct {
	RoomTypeResponse
	PricePerNight float64 `json:"price_per_night"`
	Nights        int     `json:"nights"`
	TotalPrice    float64 `json:"total_price"`
	RoomsLeft     int     `json:"rooms_left"`
}

type AvailabilityResponse struct {
	HotelID  string                  `json:"hotel_id"`
	CheckIn  string                  `json:"check_in"`
	CheckOut string                  `json:"check_out"`
	Guests   int                     `json:"guests"`
	Rooms    []AvailableRoomResponse `json:"rooms"`
}

// Helper converters
func RoomTypeToResponse(roomType *entity.RoomType) RoomTypeResponse {
	return RoomTypeResponse{
		ID:          roomType.ID.String(),
		HotelID:     roomType.HotelID.String(),
		Name:        roomType.Name,
		Description: roomType.Description,
		Capacity:    roomType.Capacity,
		BasePrice:   roomType.BasePrice,
		TotalRooms:  roomType.TotalRooms,
		Status:      roomType.Status,
		Amenities:   roomType.Amenities,
		CreatedAt:   roomType.CreatedAt,
	}
}
