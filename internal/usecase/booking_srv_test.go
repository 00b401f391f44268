package usecase

import (
	"context"
	"testing"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type bookingFixture struct {
	service  BookingService
	hotels   *fakeHotelRepo
	rooms    *fakeRoomTypeRepo
	bookings *fakeBookingRepo
	userID   uuid.UUID
	hotel    *entity.Hotel
	roomType *entity.RoomType
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()

	hotels := newFakeHotelRepo()
	bookings := newFakeBookingRepo()
	rooms := newFakeRoomTypeRepo(bookings)

	repo := &repository.Repository{
		Hotel:    hotels,
		RoomType: rooms,
		Booking:  bookings,
		Payment:  newFakePaymentRepo(),
	}

	hotel := &entity.Hotel{
		Base:   entity.Base{ID: uuid.New()},
		Name:   "Seaside Resort",
		Slug:   "seaside-resort",
		Status: entity.HotelStatusActive,
	}
	require.NoError(t, hotels.Create(context.Background(), hotel))

	roomType := &entity.RoomType{
		Base:       entity.Base{ID: uuid.New()},
		HotelID:    hotel.ID,
		Name:       "Deluxe Double",
		Capacity:   4,
		BasePrice:  100,
		TotalRooms: 2,
		Status:     entity.RoomStatusAvailable,
	}
	require.NoError(t, rooms.Create(context.Background(), roomType))

	config := &utils.Config{
		Pricing: utils.PricingConfig{
			TaxRatePct:    10,
			ServiceFeePct: 5,
		},
	}

	return &bookingFixture{
		service:  NewBookingService(repo, config, zap.NewNop()),
		hotels:   hotels,
		rooms:    rooms,
		bookings: bookings,
		userID:   uuid.New(),
		hotel:    hotel,
		roomType: roomType,
	}
}

// stay inserts a booking for the fixture room directly, bypassing the service.
func (f *bookingFixture) stay(t *testing.T, checkIn, checkOut time.Time) {
	t.Helper()
	require.NoError(t, f.bookings.Create(context.Background(), &entity.Booking{
		Base:       entity.Base{ID: uuid.New()},
		UserID:     uuid.New(),
		HotelID:    f.hotel.ID,
		RoomTypeID: f.roomType.ID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Status:     entity.BookingStatusConfirmed,
	}))
}

func (f *bookingFixture) createRequest() *request.CreateBookingRequest {
	return &request.CreateBookingRequest{
		HotelID:    f.hotel.ID.String(),
		RoomTypeID: f.roomType.ID.String(),
		CheckIn:    "2024-01-01",
		CheckOut:   "2024-01-04",
		Guests:     2,
		GuestName:  "Jane Doe",
		GuestEmail: "jane@example.com",
	}
}

func TestPreviewBookingBreakdown(t *testing.T) {
	f := newBookingFixture(t)

	breakdown, err := f.service.PreviewBooking(context.Background(), &request.PreviewBookingRequest{
		RoomTypeID: f.roomType.ID.String(),
		CheckIn:    "2024-01-01",
		CheckOut:   "2024-01-04",
		Guests:     2,
	})
	require.NoError(t, err)

	assert.Equal(t, 3, breakdown.Nights)
	assert.Equal(t, 300.0, breakdown.Subtotal)
	assert.Equal(t, 345.0, breakdown.Total) // 300 + 30 tax + 15 fee
}

func TestCreateBookingComputesTotalsServerSide(t *testing.T) {
	f := newBookingFixture(t)

	booking, err := f.service.CreateBooking(context.Background(), f.userID, f.createRequest())
	require.NoError(t, err)

	assert.Equal(t, 3, booking.Nights)
	assert.Equal(t, 300.0, booking.Breakdown.Subtotal)
	assert.Equal(t, 345.0, booking.Breakdown.Total)
	assert.Equal(t, entity.BookingStatusPending, booking.Status)
	assert.Equal(t, entity.BookingPaymentUnpaid, booking.PaymentStatus)
	assert.NotEmpty(t, booking.Reference)
	assert.Equal(t, "Seaside Resort", booking.HotelName)
}

func TestCreateBookingRejectsCheckOutBeforeCheckIn(t *testing.T) {
	f := newBookingFixture(t)

	req := f.createRequest()
	req.CheckIn = "2024-01-04"
	req.CheckOut = "2024-01-01"

	_, err := f.service.CreateBooking(context.Background(), f.userID, req)
	assert.ErrorContains(t, err, "check-out must be after check-in")
}

func TestCreateBookingRejectsSameDayStay(t *testing.T) {
	f := newBookingFixture(t)

	req := f.createRequest()
	req.CheckOut = req.CheckIn

	_, err := f.service.CreateBooking(context.Background(), f.userID, req)
	assert.ErrorContains(t, err, "invalid stay")
}

func TestCreateBookingRejectsOverCapacity(t *testing.T) {
	f := newBookingFixture(t)

	req := f.createRequest()
	req.Guests = 5

	_, err := f.service.CreateBooking(context.Background(), f.userID, req)
	assert.ErrorContains(t, err, "at most 4 guests")
}

func TestCreateBookingRejectsInactiveHotel(t *testing.T) {
	f := newBookingFixture(t)
	f.hotel.Status = entity.HotelStatusPending

	_, err := f.service.CreateBooking(context.Background(), f.userID, f.createRequest())
	assert.ErrorContains(t, err, "not accepting bookings")
}

func TestCreateBookingRejectsWhenFullyBooked(t *testing.T) {
	f := newBookingFixture(t)
	f.stay(t, date(2024, 1, 1), date(2024, 1, 4))
	f.stay(t, date(2024, 1, 1), date(2024, 1, 4))

	_, err := f.service.CreateBooking(context.Background(), f.userID, f.createRequest())
	assert.ErrorContains(t, err, "not available")
}

// Back-to-back stays share a checkout/checkin day and never hold a room on
// the same night, so they must not stack up against the inventory.
func TestCreateBookingBackToBackStaysDoNotStack(t *testing.T) {
	f := newBookingFixture(t)
	f.stay(t, date(2024, 1, 1), date(2024, 1, 3))
	f.stay(t, date(2024, 1, 3), date(2024, 1, 5))

	req := f.createRequest()
	req.CheckOut = "2024-01-05"

	booking, err := f.service.CreateBooking(context.Background(), f.userID, req)
	require.NoError(t, err)
	assert.Equal(t, 4, booking.Nights)
}

func TestCancelBookingTransitions(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	booking, err := f.service.CreateBooking(ctx, f.userID, f.createRequest())
	require.NoError(t, err)

	cancelled, err := f.service.CancelBooking(ctx, f.userID, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusCancelled, cancelled.Status)

	// A cancelled booking cannot be cancelled again
	_, err = f.service.CancelBooking(ctx, f.userID, booking.ID)
	assert.ErrorContains(t, err, "cannot cancel")
}

func TestGetBookingEnforcesOwnership(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	booking, err := f.service.CreateBooking(ctx, f.userID, f.createRequest())
	require.NoError(t, err)

	_, err = f.service.GetBooking(ctx, uuid.New(), booking.ID)
	assert.ErrorContains(t, err, "unauthorized")
}

func TestGetBookingByReference(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	created, err := f.service.CreateBooking(ctx, f.userID, f.createRequest())
	require.NoError(t, err)

	found, err := f.service.GetBookingByReference(ctx, f.userID, created.Reference)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
}

func TestRoundTripBreakdownFromStoredAmounts(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	created, err := f.service.CreateBooking(ctx, f.userID, f.createRequest())
	require.NoError(t, err)

	// Change the room price after booking; stored totals must not move.
	f.roomType.BasePrice = 999

	fetched, err := f.service.GetBooking(ctx, f.userID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Breakdown.Total, fetched.Breakdown.Total)
	assert.Equal(t, created.Breakdown.Subtotal, fetched.Breakdown.Subtotal)
}

// Stale availability: once both rooms are held for the dates, a third
// attempt must fail at the write-time re-check.
func TestCreateBookingRechecksAvailability(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	_, err := f.service.CreateBooking(ctx, f.userID, f.createRequest())
	require.NoError(t, err)

	// A concurrent guest takes the last room
	f.stay(t, date(2024, 1, 1), date(2024, 1, 4))

	_, err = f.service.CreateBooking(ctx, f.userID, f.createRequest())
	assert.ErrorContains(t, err, "not available")

	// The failed attempt created nothing
	count, err := f.bookings.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}
