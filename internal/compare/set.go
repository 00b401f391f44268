// Package compare implements the room comparison selection: a per-user set
// of up to MaxRooms room types with toggle semantics, plus the best-value
// highlighting computed over the current selection.
package compare

import (
	"sync"

	"hotel-booking/internal/data/entity"

	"github.com/google/uuid"
)

// MaxRooms caps how many room types one user can compare at once.
const MaxRooms = 4

// ToggleResult tells the caller what a toggle did.
type ToggleResult int

const (
	ToggleAdded ToggleResult = iota
	ToggleRemoved
	ToggleRejectedFull
)

// Set holds one user's comparison selection. Insertion order is preserved
// so the comparison view is stable across toggles.
type Set struct {
	ids []uuid.UUID
}

// Toggle removes the room if present, adds it if absent and under the cap.
// At capacity a toggle of an absent room leaves the set unchanged.
func (s *Set) Toggle(roomTypeID uuid.UUID) ToggleResult {
	for i, id := range s.ids {
		if id == roomTypeID {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			return ToggleRemoved
		}
	}

	if len(s.ids) >= MaxRooms {
		return ToggleRejectedFull
	}

	s.ids = append(s.ids, roomTypeID)
	return ToggleAdded
}

func (s *Set) Contains(roomTypeID uuid.UUID) bool {
	for _, id := range s.ids {
		if id == roomTypeID {
			return true
		}
	}
	return false
}

func (s *Set) IDs() []uuid.UUID {
	out := make([]uuid.UUID, len(s.ids))
	copy(out, s.ids)
	return out
}

func (s *Set) Len() int {
	return len(s.ids)
}

func (s *Set) Clear() {
	s.ids = nil
}

// Highlight flags the best value per attribute across the selection:
// lowest price, highest capacity, most amenities. Ties mark every winner.
type Highlight struct {
	BestPrice    bool
	BestCapacity bool
	MostAmenity  bool
}

// Highlights computes per-room display flags for the given selection. The
// result is keyed by room type ID and is purely presentational.
func Highlights(rooms []*entity.RoomType) map[uuid.UUID]Highlight {
	out := make(map[uuid.UUID]Highlight, len(rooms))
	if len(rooms) == 0 {
		return out
	}

	minPrice := rooms[0].BasePrice
	maxCapacity := rooms[0].Capacity
	maxAmenities := len(rooms[0].Amenities)

	for _, room := range rooms[1:] {
		if room.BasePrice < minPrice {
			minPrice = room.BasePrice
		}
		if room.Capacity > maxCapacity {
			maxCapacity = room.Capacity
		}
		if len(room.Amenities) > maxAmenities {
			maxAmenities = len(room.Amenities)
		}
	}

	for _, room := range rooms {
		out[room.ID] = Highlight{
			BestPrice:    room.BasePrice == minPrice,
			BestCapacity: room.Capacity == maxCapacity,
			MostAmenity:  len(room.Amenities) == maxAmenities,
		}
	}

	return out
}

// Registry hands out the comparison set for each user. Sets are in-memory
// only; the selection is not meant to outlive the process.
type Registry struct {
	mu   sync.Mutex
	sets map[uuid.UUID]*Set
}

func NewRegistry() *Registry {
	return &Registry{
		sets: make(map[uuid.UUID]*Set),
	}
}

// WithUser runs fn while holding the registry lock, keeping toggle and read
// atomic for one user. The set must not escape fn.
func (r *Registry) WithUser(userID uuid.UUID, fn func(*Set)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.sets[userID]
	if !ok {
		set = &Set{}
		r.sets[userID] = set
	}
	fn(set)
}
