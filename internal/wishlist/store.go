// Package wishlist holds a user's saved hotels as denormalized summaries.
// The Store interface makes the storage backend explicit: the memory
// implementation backs tests and single-node development, the Redis
// implementation backs production.
package wishlist

import (
	"context"

	"hotel-booking/internal/data/entity"

	"github.com/google/uuid"
)

type Store interface {
	List(ctx context.Context, userID uuid.UUID) ([]*entity.WishlistItem, error)
	Add(ctx context.Context, item *entity.WishlistItem) error
	Remove(ctx context.Context, userID, hotelID uuid.UUID) error
	Contains(ctx context.Context, userID, hotelID uuid.UUID) (bool, error)
}
