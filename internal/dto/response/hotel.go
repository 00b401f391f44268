package response

import (
	"time"

	"hotel-booking/internal/data/entity"
)

type AddressResponse struct {
	ID         string  `json:"id"`
	Line1      string  `json:"line1"`
	Line2      *string `json:"line2,omitempty"`
	City       string  `json:"city"`
	State      *string `json:"state,omitempty"`
	Country    string  `json:"country"`
	PostalCode *string `json:"postal_code,omitempty"`
}

type HotelResponse struct {
	ID          string             `json:"id"`
	OwnerID     string             `json:"owner_id"`
	Name        string             `json:"name"`
	Slug        string             `json:"slug"`
	Description string             `json:"description"`
	StarRating  int                `json:"star_rating"`
	Status      entity.HotelStatus `json:"status"`
	Facilities  []string           `json:"facilities,omitempty"`
	Images      []string           `json:"images,omitempty"`
	Address     *AddressResponse   `json:"address,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
}

type HotelDetailResponse struct {
	HotelResponse
	RoomTypes []RoomTypeResponse `json:"room_types"`
}

// Helper converters
func AddressToResponse(address *entity.Address) *AddressResponse {
	if address == nil {
		return nil
	}
	return &AddressResponse{
		ID:         address.ID.String(),
		Line1:      address.Line1,
		Line2:      address.Line2,
		City:       address.City,
		State:      address.State,
		Country:    address.Country,
		PostalCode: address.PostalCode,
	}
}

func HotelToResponse(hotel *entity.Hotel, address *entity.Address) HotelResponse {
	return HotelResponse{
		ID:          hotel.ID.String(),
		OwnerID:     hotel.OwnerID.String(),
		Name:        hotel.Name,
		Slug:        hotel.Slug,
		Description: hotel.Description,
		StarRating:  hotel.StarRating,
		Status:      hotel.Status,
		Facilities:  hotel.Facilities,
		Images:      hotel.Images,
		Address:     AddressToResponse(address),
		CreatedAt:   hotel.CreatedAt,
	}
}
