package entity

import (
	"github.com/google/uuid"
)

type RoomStatus string

const (
	RoomStatusAvailable   RoomStatus = "available"
	RoomStatusBlocked     RoomStatus = "blocked"
	RoomStatusMaintenance RoomStatus = "maintenance"
)

type RoomType struct {
	Base
	HotelID     uuid.UUID  `db:"hotel_id"`
	Name        string     `db:"name"`
	Description string     `db:"description"`
	Capacity    int        `db:"capacity"`
	BasePrice   float64    `db:"base_price"`
	TotalRooms  int        `db:"total_rooms"`
	Status      RoomStatus `db:"status"`
	Amenities   []string   `db:"amenities"`
}
