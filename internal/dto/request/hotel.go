package request

type CreateHotelRequest struct {
	Name        string          `json:"name" validate:"required,min=2,max=150"`
	Description string          `json:"description" validate:"required"`
	StarRating  int             `json:"star_rating" validate:"required,min=1,max=5"`
	Facilities  []string        `json:"facilities,omitempty"`
	Images      []string        `json:"images,omitempty"`
	Address     *AddressRequest `json:"address,omitempty"`
}

type UpdateHotelRequest struct {
	Name        string   `json:"name" validate:"required,min=2,max=150"`
	Description string   `json:"description" validate:"required"`
	StarRating  int      `json:"star_rating" validate:"required,min=1,max=5"`
	Facilities  []string `json:"facilities,omitempty"`
	Images      []string `json:"images,omitempty"`
}

type AddressRequest struct {
	Line1      string  `json:"line1" validate:"required"`
	Line2      *string `json:"line2,omitempty"`
	City       string  `json:"city" validate:"required"`
	State      *string `json:"state,omitempty"`
	Country    string  `json:"country" validate:"required"`
	PostalCode *string `json:"postal_code,omitempty"`
}

// HotelListRequest holds the public listing filters parsed from query params.
type HotelListRequest struct {
	PaginatedRequest
	City     string `json:"city"`
	MinStars int    `json:"min_stars" validate:"omitempty,min=1,max=5"`
	Search   string `json:"search"`
}
