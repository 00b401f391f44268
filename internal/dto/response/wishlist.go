package response

import (
	"time"

	"hotel-booking/internal/data/entity"
)

type WishlistItemResponse struct {
	HotelID    string    `json:"hotel_id"`
	HotelName  string    `json:"hotel_name"`
	HotelSlug  string    `json:"hotel_slug"`
	StarRating int       `json:"star_rating"`
	City       string    `json:"city,omitempty"`
	MinPrice   float64   `json:"min_price,omitempty"`
	AddedAt    time.Time `json:"added_at"`
}

// Helper converters
func WishlistItemToResponse(item *entity.WishlistItem) WishlistItemResponse {
	return WishlistItemResponse{
		HotelID:    item.HotelID.String(),
		HotelName:  item.HotelName,
		HotelSlug:  item.HotelSlug,
		StarRating: item.StarRating,
		City:       item.City,
		MinPrice:   item.MinPrice,
		AddedAt:    item.AddedAt,
	}
}
