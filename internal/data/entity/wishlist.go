package entity

import (
	"time"

	"github.com/google/uuid"
)

// WishlistItem is a denormalized hotel summary saved per user. It lives in
// the wishlist store (memory or Redis), not in Postgres.
type WishlistItem struct {
	UserID     uuid.UUID `json:"user_id"`
	HotelID    uuid.UUID `json:"hotel_id"`
	HotelName  string    `json:"hotel_name"`
	HotelSlug  string    `json:"hotel_slug"`
	StarRating int       `json:"star_rating"`
	City       string    `json:"city"`
	MinPrice   float64   `json:"min_price"`
	AddedAt    time.Time `json:"added_at"`
}
