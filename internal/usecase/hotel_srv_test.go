package usecase

import (
	"context"
	"testing"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type hotelFixture struct {
	service HotelService
	hotels  *fakeHotelRepo
	rooms   *fakeRoomTypeRepo
}

func newHotelFixture(t *testing.T) *hotelFixture {
	t.Helper()

	hotels := newFakeHotelRepo()
	rooms := newFakeRoomTypeRepo(newFakeBookingRepo())

	repo := &repository.Repository{
		Hotel:    hotels,
		RoomType: rooms,
	}

	return &hotelFixture{
		service: NewHotelService(repo, zap.NewNop()),
		hotels:  hotels,
		rooms:   rooms,
	}
}

func (f *hotelFixture) addHotel(t *testing.T, name, slug string, status entity.HotelStatus) *entity.Hotel {
	t.Helper()
	hotel := &entity.Hotel{
		Base:    entity.Base{ID: uuid.New()},
		OwnerID: uuid.New(),
		Name:    name,
		Slug:    slug,
		Status:  status,
	}
	require.NoError(t, f.hotels.Create(context.Background(), hotel))
	return hotel
}

func TestListHotelsOnlyActive(t *testing.T) {
	f := newHotelFixture(t)
	f.addHotel(t, "Seaside Resort", "seaside-resort", entity.HotelStatusActive)
	f.addHotel(t, "Mountain Lodge", "mountain-lodge", entity.HotelStatusPending)
	f.addHotel(t, "City Inn", "city-inn", entity.HotelStatusInactive)

	page, err := f.service.ListHotels(context.Background(), &request.HotelListRequest{})
	require.NoError(t, err)

	require.Len(t, page.Data, 1)
	assert.Equal(t, "Seaside Resort", page.Data[0].Name)
}

// Unapproved and deactivated hotels must be invisible on the public detail
// paths, not just in the listing.
func TestGetHotelHidesNonActive(t *testing.T) {
	f := newHotelFixture(t)
	ctx := context.Background()

	pending := f.addHotel(t, "Mountain Lodge", "mountain-lodge", entity.HotelStatusPending)
	inactive := f.addHotel(t, "City Inn", "city-inn", entity.HotelStatusInactive)

	_, err := f.service.GetHotelByID(ctx, pending.ID.String())
	assert.ErrorContains(t, err, "not found")

	_, err = f.service.GetHotelByID(ctx, inactive.ID.String())
	assert.ErrorContains(t, err, "not found")

	_, err = f.service.GetHotelBySlug(ctx, "mountain-lodge")
	assert.ErrorContains(t, err, "not found")

	_, err = f.service.GetHotelBySlug(ctx, "city-inn")
	assert.ErrorContains(t, err, "not found")
}

func TestGetHotelDetailIncludesRooms(t *testing.T) {
	f := newHotelFixture(t)
	ctx := context.Background()

	hotel := f.addHotel(t, "Seaside Resort", "seaside-resort", entity.HotelStatusActive)
	require.NoError(t, f.rooms.Create(ctx, &entity.RoomType{
		Base:       entity.Base{ID: uuid.New()},
		HotelID:    hotel.ID,
		Name:       "Deluxe Double",
		Capacity:   4,
		BasePrice:  100,
		TotalRooms: 2,
		Status:     entity.RoomStatusAvailable,
	}))

	detail, err := f.service.GetHotelByID(ctx, hotel.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Seaside Resort", detail.Name)
	require.Len(t, detail.RoomTypes, 1)
	assert.Equal(t, "Deluxe Double", detail.RoomTypes[0].Name)

	bySlug, err := f.service.GetHotelBySlug(ctx, "seaside-resort")
	require.NoError(t, err)
	assert.Equal(t, detail.ID, bySlug.ID)
}
