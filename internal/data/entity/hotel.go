package entity

import (
	"github.com/google/uuid"
)

type HotelStatus string

const (
	HotelStatusPending  HotelStatus = "pending"
	HotelStatusActive   HotelStatus = "active"
	HotelStatusInactive HotelStatus = "inactive"
)

type Hotel struct {
	Base
	OwnerID     uuid.UUID   `db:"owner_id"`
	AddressID   *uuid.UUID  `db:"address_id"`
	Name        string      `db:"name"`
	Slug        string      `db:"slug"`
	Description string      `db:"description"`
	StarRating  int         `db:"star_rating"`
	Status      HotelStatus `db:"status"`
	Facilities  []string    `db:"facilities"`
	Images      []string    `db:"images"`
}
