package wishlist

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"hotel-booking/internal/data/entity"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisStore keeps each user's wishlist in one Redis hash keyed by user ID,
// field = hotel ID, value = JSON-encoded summary.
type RedisStore struct {
	client *redis.Client
	log    *zap.Logger
}

func NewRedisStore(client *redis.Client, log *zap.Logger) *RedisStore {
	return &RedisStore{
		client: client,
		log:    log.With(zap.String("store", "wishlist_redis")),
	}
}

func wishlistKey(userID uuid.UUID) string {
	return "wishlist:" + userID.String()
}

func (s *RedisStore) List(ctx context.Context, userID uuid.UUID) ([]*entity.WishlistItem, error) {
	values, err := s.client.HGetAll(ctx, wishlistKey(userID)).Result()
	if err != nil {
		s.log.Error("Failed to read wishlist hash",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("read wishlist for user %s: %w", userID.String(), err)
	}

	var items []*entity.WishlistItem
	for _, raw := range values {
		var item entity.WishlistItem
		if err := json.Unmarshal([]byte(raw), &item); err != nil {
			// Drop entries that no longer decode instead of failing the list
			s.log.Warn("Skipping corrupt wishlist entry",
				zap.Error(err),
				zap.String("user_id", userID.String()),
			)
			continue
		}
		items = append(items, &item)
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].AddedAt.Before(items[j].AddedAt)
	})

	return items, nil
}

func (s *RedisStore) Add(ctx context.Context, item *entity.WishlistItem) error {
	raw, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("encode wishlist item: %w", err)
	}

	if err := s.client.HSet(ctx, wishlistKey(item.UserID), item.HotelID.String(), raw).Err(); err != nil {
		s.log.Error("Failed to save wishlist item",
			zap.Error(err),
			zap.String("user_id", item.UserID.String()),
			zap.String("hotel_id", item.HotelID.String()),
		)
		return fmt.Errorf("save wishlist item: %w", err)
	}

	return nil
}

func (s *RedisStore) Remove(ctx context.Context, userID, hotelID uuid.UUID) error {
	if err := s.client.HDel(ctx, wishlistKey(userID), hotelID.String()).Err(); err != nil {
		s.log.Error("Failed to remove wishlist item",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("hotel_id", hotelID.String()),
		)
		return fmt.Errorf("remove wishlist item: %w", err)
	}

	return nil
}

func (s *RedisStore) Contains(ctx context.Context, userID, hotelID uuid.UUID) (bool, error) {
	ok, err := s.client.HExists(ctx, wishlistKey(userID), hotelID.String()).Result()
	if err != nil {
		return false, fmt.Errorf("check wishlist item: %w", err)
	}
	return ok, nil
}
