package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

type BookingsService struct {
	client *Client
}

type PreviewParams struct {
	RoomTypeID string `json:"room_type_id"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
	Guests     int    `json:"guests"`
}

type CreateBookingParams struct {
	HotelID    string  `json:"hotel_id"`
	RoomTypeID string  `json:"room_type_id"`
	CheckIn    string  `json:"check_in"`
	CheckOut   string  `json:"check_out"`
	Guests     int     `json:"guests"`
	GuestName  string  `json:"guest_name"`
	GuestEmail string  `json:"guest_email"`
	GuestPhone *string `json:"guest_phone,omitempty"`
}

// Preview fetches the server-computed price breakdown for the stay without
// creating a booking.
func (s *BookingsService) Preview(ctx context.Context, params PreviewParams) (*PriceBreakdown, error) {
	var breakdown PriceBreakdown
	if err := s.client.post(ctx, "/api/bookings/preview", params, &breakdown); err != nil {
		return nil, err
	}
	return &breakdown, nil
}

func (s *BookingsService) Create(ctx context.Context, params CreateBookingParams) (*Booking, error) {
	var booking Booking
	if err := s.client.post(ctx, "/api/bookings", params, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (s *BookingsService) Get(ctx context.Context, bookingID string) (*Booking, error) {
	var booking Booking
	if err := s.client.get(ctx, "/api/bookings/"+bookingID, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (s *BookingsService) GetByReference(ctx context.Context, reference string) (*Booking, error) {
	var booking Booking
	if err := s.client.get(ctx, "/api/bookings/reference/"+reference, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (s *BookingsService) List(ctx context.Context, page, perPage int) (*Page[Booking], error) {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if perPage > 0 {
		q.Set("per_page", strconv.Itoa(perPage))
	}

	path := "/api/bookings"
	if len(q) > 0 {
		path = fmt.Sprintf("%s?%s", path, q.Encode())
	}

	var result Page[Booking]
	if err := s.client.get(ctx, path, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *BookingsService) Cancel(ctx context.Context, bookingID string) (*Booking, error) {
	var booking Booking
	if err := s.client.post(ctx, "/api/bookings/"+bookingID+"/cancel", nil, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}
