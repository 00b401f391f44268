package compare

import (
	"sync"
	"testing"

	"hotel-booking/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func room(price float64, capacity int, amenities ...string) *entity.RoomType {
	return &entity.RoomType{
		Base:      entity.Base{ID: uuid.New()},
		BasePrice: price,
		Capacity:  capacity,
		Amenities: amenities,
	}
}

func TestToggleAddsAndRemoves(t *testing.T) {
	set := &Set{}
	id := uuid.New()

	assert.Equal(t, ToggleAdded, set.Toggle(id))
	assert.True(t, set.Contains(id))

	assert.Equal(t, ToggleRemoved, set.Toggle(id))
	assert.False(t, set.Contains(id))
	assert.Equal(t, 0, set.Len())
}

func TestToggleCapRejectsFifthRoom(t *testing.T) {
	set := &Set{}
	for i := 0; i < MaxRooms; i++ {
		require.Equal(t, ToggleAdded, set.Toggle(uuid.New()))
	}

	extra := uuid.New()
	assert.Equal(t, ToggleRejectedFull, set.Toggle(extra))
	assert.Equal(t, MaxRooms, set.Len())
	assert.False(t, set.Contains(extra))

	// Removing a selected room frees a slot for the rejected one
	set.Toggle(set.IDs()[0])
	assert.Equal(t, ToggleAdded, set.Toggle(extra))
}

func TestToggleKeepsInsertionOrder(t *testing.T) {
	set := &Set{}
	first, second, third := uuid.New(), uuid.New(), uuid.New()

	set.Toggle(first)
	set.Toggle(second)
	set.Toggle(third)
	set.Toggle(second)

	assert.Equal(t, []uuid.UUID{first, third}, set.IDs())
}

func TestClearEmptiesSelection(t *testing.T) {
	set := &Set{}
	set.Toggle(uuid.New())
	set.Toggle(uuid.New())

	set.Clear()
	assert.Equal(t, 0, set.Len())
}

func TestHighlightsMarkBestValues(t *testing.T) {
	cheap := room(80, 2, "wifi")
	big := room(150, 6, "wifi", "tv")
	loaded := room(120, 4, "wifi", "tv", "minibar")

	highlights := Highlights([]*entity.RoomType{cheap, big, loaded})

	assert.True(t, highlights[cheap.ID].BestPrice)
	assert.False(t, highlights[cheap.ID].BestCapacity)

	assert.True(t, highlights[big.ID].BestCapacity)
	assert.False(t, highlights[big.ID].MostAmenity)

	assert.True(t, highlights[loaded.ID].MostAmenity)
	assert.False(t, highlights[loaded.ID].BestPrice)
}

func TestHighlightsTiesMarkEveryWinner(t *testing.T) {
	a := room(100, 2, "wifi")
	b := room(100, 2, "tv")

	highlights := Highlights([]*entity.RoomType{a, b})

	assert.True(t, highlights[a.ID].BestPrice)
	assert.True(t, highlights[b.ID].BestPrice)
	assert.True(t, highlights[a.ID].BestCapacity)
	assert.True(t, highlights[b.ID].BestCapacity)
}

func TestHighlightsEmptySelection(t *testing.T) {
	assert.Empty(t, Highlights(nil))
}

func TestRegistryIsolatesUsers(t *testing.T) {
	registry := NewRegistry()
	alice, bob := uuid.New(), uuid.New()
	roomID := uuid.New()

	registry.WithUser(alice, func(set *Set) {
		set.Toggle(roomID)
	})

	registry.WithUser(bob, func(set *Set) {
		assert.Equal(t, 0, set.Len())
	})
	registry.WithUser(alice, func(set *Set) {
		assert.True(t, set.Contains(roomID))
	})
}

func TestRegistryConcurrentToggles(t *testing.T) {
	registry := NewRegistry()
	userID := uuid.New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			registry.WithUser(userID, func(set *Set) {
				set.Toggle(uuid.New())
			})
		}()
	}
	wg.Wait()

	registry.WithUser(userID, func(set *Set) {
		assert.Equal(t, MaxRooms, set.Len())
	})
}
