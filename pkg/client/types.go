package client

import "time"

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type AuthResult struct {
	UserID    string    `json:"user_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
}

type Address struct {
	Line1      string  `json:"line1"`
	Line2      *string `json:"line2,omitempty"`
	City       string  `json:"city"`
	State      *string `json:"state,omitempty"`
	Country    string  `json:"country"`
	PostalCode *string `json:"postal_code,omitempty"`
}

type Hotel struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	StarRating  int       `json:"star_rating"`
	Status      string    `json:"status"`
	Facilities  []string  `json:"facilities,omitempty"`
	Images      []string  `json:"images,omitempty"`
	Address     *Address  `json:"address,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type HotelDetail struct {
	Hotel
	RoomTypes []RoomType `json:"room_types"`
}

type RoomType struct {
	ID          string    `json:"id"`
	HotelID     string    `json:"hotel_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Capacity    int       `json:"capacity"`
	BasePrice   float64   `json:"base_price"`
	TotalRooms  int       `json:"total_rooms"`
	Status      string    `json:"status"`
	Amenities   []string  `json:"amenities,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type AvailableRoom struct {
	RoomType
	PricePerNight float64 `json:"price_per_night"`
	Nights        int     `json:"nights"`
	TotalPrice    float64 `json:"total_price"`
	RoomsLeft     int     `json:"rooms_left"`
}

type Availability struct {
	HotelID  string          `json:"hotel_id"`
	CheckIn  string          `json:"check_in"`
	CheckOut string          `json:"check_out"`
	Guests   int             `json:"guests"`
	Rooms    []AvailableRoom `json:"rooms"`
}

type BreakdownLine struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

type PriceBreakdown struct {
	PricePerNight float64         `json:"price_per_night"`
	Nights        int             `json:"nights"`
	Subtotal      float64         `json:"subtotal"`
	Taxes         []BreakdownLine `json:"taxes"`
	Fees          []BreakdownLine `json:"fees"`
	Total         float64         `json:"total"`
}

type Booking struct {
	ID            string         `json:"id"`
	Reference     string         `json:"reference"`
	UserID        string         `json:"user_id"`
	HotelID       string         `json:"hotel_id"`
	RoomTypeID    string         `json:"room_type_id"`
	HotelName     string         `json:"hotel_name,omitempty"`
	RoomTypeName  string         `json:"room_type_name,omitempty"`
	CheckIn       string         `json:"check_in"`
	CheckOut      string         `json:"check_out"`
	Nights        int            `json:"nights"`
	Guests        int            `json:"guests"`
	GuestName     string         `json:"guest_name"`
	GuestEmail    string         `json:"guest_email"`
	GuestPhone    *string        `json:"guest_phone,omitempty"`
	Breakdown     PriceBreakdown `json:"breakdown"`
	Status        string         `json:"status"`
	PaymentStatus string         `json:"payment_status"`
	Payment       *Payment       `json:"payment,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
}

type Payment struct {
	ID             string    `json:"id"`
	BookingID      string    `json:"booking_id"`
	IdempotencyKey string    `json:"idempotency_key"`
	Amount         float64   `json:"amount"`
	Method         string    `json:"method"`
	Status         string    `json:"status"`
	FailureReason  *string   `json:"failure_reason,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type PaymentStatus struct {
	ID       string `json:"id"`
	Status   string `json:"status"`
	Terminal bool   `json:"terminal"`
}

type WishlistItem struct {
	HotelID    string    `json:"hotel_id"`
	HotelName  string    `json:"hotel_name"`
	HotelSlug  string    `json:"hotel_slug"`
	StarRating int       `json:"star_rating"`
	City       string    `json:"city,omitempty"`
	MinPrice   float64   `json:"min_price,omitempty"`
	AddedAt    time.Time `json:"added_at"`
}

type CompareEntry struct {
	RoomType
	BestPrice    bool `json:"best_price"`
	BestCapacity bool `json:"best_capacity"`
	MostAmenity  bool `json:"most_amenities"`
}

type Comparison struct {
	Rooms   []CompareEntry `json:"rooms"`
	Count   int            `json:"count"`
	Limit   int            `json:"limit"`
	Warning string         `json:"warning,omitempty"`
}

// Page is the server's pagination envelope.
type Page[T any] struct {
	Data       []T            `json:"data"`
	Pagination PaginationMeta `json:"pagination"`
}

type PaginationMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	TotalPages int   `json:"total_pages"`
}
