package wishlist

import (
	"context"
	"sort"
	"sync"

	"hotel-booking/internal/data/entity"

	"github.com/google/uuid"
)

// MemoryStore keeps wishlists in process memory. Adding the same hotel twice
// overwrites the earlier entry, so Add is idempotent.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[uuid.UUID]map[uuid.UUID]*entity.WishlistItem
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		items: make(map[uuid.UUID]map[uuid.UUID]*entity.WishlistItem),
	}
}

func (s *MemoryStore) List(ctx context.Context, userID uuid.UUID) ([]*entity.WishlistItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var items []*entity.WishlistItem
	for _, item := range s.items[userID] {
		copied := *item
		items = append(items, &copied)
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].AddedAt.Before(items[j].AddedAt)
	})

	return items, nil
}

func (s *MemoryStore) Add(ctx context.Context, item *entity.WishlistItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.items[item.UserID] == nil {
		s.items[item.UserID] = make(map[uuid.UUID]*entity.WishlistItem)
	}

	copied := *item
	s.items[item.UserID][item.HotelID] = &copied
	return nil
}

func (s *MemoryStore) Remove(ctx context.Context, userID, hotelID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.items[userID], hotelID)
	return nil
}

func (s *MemoryStore) Contains(ctx context.Context, userID, hotelID uuid.UUID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.items[userID][hotelID]
	return ok, nil
}
