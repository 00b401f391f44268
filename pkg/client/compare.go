package client

import "context"

type CompareService struct {
	client *Client
}

// Toggle adds the room to the comparison, or removes it if selected. When
// the selection is full the server returns it unchanged with a warning.
func (s *CompareService) Toggle(ctx context.Context, roomTypeID string) (*Comparison, error) {
	body := map[string]string{"room_type_id": roomTypeID}

	var comparison Comparison
	if err := s.client.post(ctx, "/api/compare/toggle", body, &comparison); err != nil {
		return nil, err
	}
	return &comparison, nil
}

func (s *CompareService) Get(ctx context.Context) (*Comparison, error) {
	var comparison Comparison
	if err := s.client.get(ctx, "/api/compare", &comparison); err != nil {
		return nil, err
	}
	return &comparison, nil
}

func (s *CompareService) Clear(ctx context.Context) error {
	return s.client.delete(ctx, "/api/compare", nil)
}
