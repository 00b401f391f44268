package usecase

import (
	"context"
	"testing"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type adminFixture struct {
	service  AdminService
	users    *fakeUserRepo
	sessions *fakeSessionRepo
	hotels   *fakeHotelRepo
	payments *fakePaymentRepo
}

func newAdminFixture(t *testing.T) *adminFixture {
	t.Helper()

	users := newFakeUserRepo()
	sessions := newFakeSessionRepo()
	hotels := newFakeHotelRepo()
	bookings := newFakeBookingRepo()
	payments := newFakePaymentRepo()

	repo := &repository.Repository{
		User:     users,
		Session:  sessions,
		Hotel:    hotels,
		RoomType: newFakeRoomTypeRepo(bookings),
		Booking:  bookings,
		Payment:  payments,
	}

	return &adminFixture{
		service:  NewAdminService(repo, zap.NewNop()),
		users:    users,
		sessions: sessions,
		hotels:   hotels,
		payments: payments,
	}
}

func (f *adminFixture) addUser(t *testing.T, role entity.UserRole) *entity.User {
	t.Helper()
	user := &entity.User{
		Base:     entity.Base{ID: uuid.New()},
		Name:     "Jane Doe",
		Email:    uuid.NewString() + "@example.com",
		Role:     role,
		IsActive: true,
	}
	require.NoError(t, f.users.Create(context.Background(), user))
	return user
}

// Deactivating an account revokes every live session, so the user is locked
// out immediately rather than at token expiry.
func TestSetUserActiveRevokesSessions(t *testing.T) {
	f := newAdminFixture(t)
	ctx := context.Background()

	user := f.addUser(t, entity.RoleCustomer)
	token := uuid.New()
	require.NoError(t, f.sessions.Create(ctx, &entity.Session{
		BaseSimple: entity.BaseSimple{ID: uuid.New()},
		UserID:     user.ID,
		Token:      token,
		ExpiresAt:  time.Now().Add(time.Hour),
	}))

	require.NoError(t, f.service.SetUserActive(ctx, user.ID.String(), false))

	assert.False(t, user.IsActive)
	session, err := f.sessions.FindValidSession(ctx, token.String())
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestSetUserRoleValidatesRole(t *testing.T) {
	f := newAdminFixture(t)
	ctx := context.Background()

	user := f.addUser(t, entity.RoleCustomer)

	require.NoError(t, f.service.SetUserRole(ctx, user.ID.String(), "owner"))
	assert.Equal(t, entity.RoleOwner, user.Role)

	err := f.service.SetUserRole(ctx, user.ID.String(), "superuser")
	assert.ErrorContains(t, err, "invalid role")
}

func TestApproveHotelActivates(t *testing.T) {
	f := newAdminFixture(t)
	ctx := context.Background()

	hotel := &entity.Hotel{
		Base:   entity.Base{ID: uuid.New()},
		Name:   "Mountain Lodge",
		Slug:   "mountain-lodge",
		Status: entity.HotelStatusPending,
	}
	require.NoError(t, f.hotels.Create(ctx, hotel))

	approved, err := f.service.ApproveHotel(ctx, hotel.ID.String())
	require.NoError(t, err)
	assert.Equal(t, entity.HotelStatusActive, approved.Status)
	assert.Equal(t, entity.HotelStatusActive, hotel.Status)

	deactivated, err := f.service.DeactivateHotel(ctx, hotel.ID.String())
	require.NoError(t, err)
	assert.Equal(t, entity.HotelStatusInactive, deactivated.Status)
}

func TestGetAllHotelsFiltersByStatus(t *testing.T) {
	f := newAdminFixture(t)
	ctx := context.Background()

	require.NoError(t, f.hotels.Create(ctx, &entity.Hotel{
		Base: entity.Base{ID: uuid.New()}, Name: "A", Slug: "a", Status: entity.HotelStatusActive,
	}))
	require.NoError(t, f.hotels.Create(ctx, &entity.Hotel{
		Base: entity.Base{ID: uuid.New()}, Name: "B", Slug: "b", Status: entity.HotelStatusPending,
	}))

	all, err := f.service.GetAllHotels(ctx, &request.HotelListRequest{}, "")
	require.NoError(t, err)
	assert.Len(t, all.Data, 2)

	pending, err := f.service.GetAllHotels(ctx, &request.HotelListRequest{}, "pending")
	require.NoError(t, err)
	require.Len(t, pending.Data, 1)
	assert.Equal(t, "B", pending.Data[0].Name)
}

func TestGetStatsAggregates(t *testing.T) {
	f := newAdminFixture(t)
	ctx := context.Background()

	f.addUser(t, entity.RoleCustomer)
	f.addUser(t, entity.RoleOwner)

	require.NoError(t, f.payments.Create(ctx, &entity.PaymentTransaction{
		Base:           entity.Base{ID: uuid.New()},
		BookingID:      uuid.New(),
		IdempotencyKey: "payment_1_000001",
		Amount:         370,
		Status:         entity.PaymentStatusCompleted,
	}))
	require.NoError(t, f.payments.Create(ctx, &entity.PaymentTransaction{
		Base:           entity.Base{ID: uuid.New()},
		BookingID:      uuid.New(),
		IdempotencyKey: "payment_2_000002",
		Amount:         100,
		Status:         entity.PaymentStatusFailed,
	}))

	stats, err := f.service.GetStats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.TotalUsers)
	assert.EqualValues(t, 0, stats.TotalBookings)
	assert.InDelta(t, 370, stats.TotalRevenue, 0.001)
}
