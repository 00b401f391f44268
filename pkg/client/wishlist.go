package client

import "context"

type WishlistService struct {
	client *Client
}

func (s *WishlistService) List(ctx context.Context) ([]WishlistItem, error) {
	var items []WishlistItem
	if err := s.client.get(ctx, "/api/wishlist", &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *WishlistService) Add(ctx context.Context, hotelID string) (*WishlistItem, error) {
	body := map[string]string{"hotel_id": hotelID}

	var item WishlistItem
	if err := s.client.post(ctx, "/api/wishlist", body, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *WishlistService) Remove(ctx context.Context, hotelID string) error {
	return s.client.delete(ctx, "/api/wishlist/"+hotelID, nil)
}
