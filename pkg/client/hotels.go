package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

type HotelsService struct {
	client *Client
}

type HotelListParams struct {
	City     string
	MinStars int
	Search   string
	Page     int
	PerPage  int
}

func (p HotelListParams) query() string {
	q := url.Values{}
	if p.City != "" {
		q.Set("city", p.City)
	}
	if p.MinStars > 0 {
		q.Set("min_stars", strconv.Itoa(p.MinStars))
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.PerPage > 0 {
		q.Set("per_page", strconv.Itoa(p.PerPage))
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

// List returns active hotels matching the filters.
func (s *HotelsService) List(ctx context.Context, params HotelListParams) (*Page[Hotel], error) {
	var page Page[Hotel]
	if err := s.client.get(ctx, "/api/hotels"+params.query(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (s *HotelsService) Get(ctx context.Context, hotelID string) (*HotelDetail, error) {
	var hotel HotelDetail
	if err := s.client.get(ctx, "/api/hotels/"+hotelID, &hotel); err != nil {
		return nil, err
	}
	return &hotel, nil
}

func (s *HotelsService) GetBySlug(ctx context.Context, slug string) (*HotelDetail, error) {
	var hotel HotelDetail
	if err := s.client.get(ctx, "/api/hotels/slug/"+slug, &hotel); err != nil {
		return nil, err
	}
	return &hotel, nil
}

func (s *HotelsService) RoomTypes(ctx context.Context, hotelID string) ([]RoomType, error) {
	var rooms []RoomType
	if err := s.client.get(ctx, "/api/hotels/"+hotelID+"/rooms", &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

// Availability searches bookable rooms for the stay. Dates are YYYY-MM-DD.
func (s *HotelsService) Availability(ctx context.Context, hotelID, checkIn, checkOut string, guests int) (*Availability, error) {
	q := url.Values{}
	q.Set("check_in", checkIn)
	q.Set("check_out", checkOut)
	q.Set("guests", strconv.Itoa(guests))

	path := fmt.Sprintf("/api/hotels/%s/availability?%s", hotelID, q.Encode())

	var availability Availability
	if err := s.client.get(ctx, path, &availability); err != nil {
		return nil, err
	}
	return &availability, nil
}
