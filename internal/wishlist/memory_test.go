package wishlist

import (
	"context"
	"testing"
	"time"

	"hotel-booking/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(userID uuid.UUID, name string, addedAt time.Time) *entity.WishlistItem {
	return &entity.WishlistItem{
		UserID:    userID,
		HotelID:   uuid.New(),
		HotelName: name,
		AddedAt:   addedAt,
	}
}

func TestMemoryStoreAddAndList(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	userID := uuid.New()
	now := time.Now()

	require.NoError(t, store.Add(ctx, item(userID, "Seaside", now)))
	require.NoError(t, store.Add(ctx, item(userID, "Alpine", now.Add(time.Minute))))

	items, err := store.List(ctx, userID)
	require.NoError(t, err)
	require.Len(t, items, 2)

	// Oldest first
	assert.Equal(t, "Seaside", items[0].HotelName)
	assert.Equal(t, "Alpine", items[1].HotelName)
}

func TestMemoryStoreAddIsIdempotent(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	userID := uuid.New()

	saved := item(userID, "Seaside", time.Now())
	require.NoError(t, store.Add(ctx, saved))

	saved.HotelName = "Seaside Renamed"
	require.NoError(t, store.Add(ctx, saved))

	items, err := store.List(ctx, userID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Seaside Renamed", items[0].HotelName)
}

func TestMemoryStoreRemove(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	userID := uuid.New()

	saved := item(userID, "Seaside", time.Now())
	require.NoError(t, store.Add(ctx, saved))

	found, err := store.Contains(ctx, userID, saved.HotelID)
	require.NoError(t, err)
	assert.True(t, found)

	require.NoError(t, store.Remove(ctx, userID, saved.HotelID))

	found, err = store.Contains(ctx, userID, saved.HotelID)
	require.NoError(t, err)
	assert.False(t, found)

	// Removing again is a no-op
	assert.NoError(t, store.Remove(ctx, userID, saved.HotelID))
}

func TestMemoryStoreIsolatesUsers(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	alice, bob := uuid.New(), uuid.New()

	require.NoError(t, store.Add(ctx, item(alice, "Seaside", time.Now())))

	items, err := store.List(ctx, bob)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestMemoryStoreListReturnsCopies(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, store.Add(ctx, item(userID, "Seaside", time.Now())))

	items, err := store.List(ctx, userID)
	require.NoError(t, err)
	items[0].HotelName = "Mutated"

	again, err := store.List(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "Seaside", again[0].HotelName)
}
