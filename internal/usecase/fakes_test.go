package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/queue"

	"github.com/google/uuid"
)

// In-memory repository fakes backing the service tests.

type fakeHotelRepo struct {
	hotels map[uuid.UUID]*entity.Hotel
}

func newFakeHotelRepo() *fakeHotelRepo {
	return &fakeHotelRepo{hotels: make(map[uuid.UUID]*entity.Hotel)}
}

func (f *fakeHotelRepo) Create(ctx context.Context, hotel *entity.Hotel) error {
	f.hotels[hotel.ID] = hotel
	return nil
}

func (f *fakeHotelRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Hotel, error) {
	return f.hotels[id], nil
}

func (f *fakeHotelRepo) FindBySlug(ctx context.Context, slug string) (*entity.Hotel, error) {
	for _, hotel := range f.hotels {
		if hotel.Slug == slug {
			return hotel, nil
		}
	}
	return nil, nil
}

func (f *fakeHotelRepo) FindAll(ctx context.Context, filter repository.HotelFilter, limit, offset int) ([]*entity.Hotel, error) {
	var out []*entity.Hotel
	for _, hotel := range f.hotels {
		if filter.Status != "" && hotel.Status != filter.Status {
			continue
		}
		out = append(out, hotel)
	}
	return out, nil
}

func (f *fakeHotelRepo) Count(ctx context.Context, filter repository.HotelFilter) (int64, error) {
	hotels, _ := f.FindAll(ctx, filter, 0, 0)
	return int64(len(hotels)), nil
}

func (f *fakeHotelRepo) Update(ctx context.Context, hotel *entity.Hotel) error {
	f.hotels[hotel.ID] = hotel
	return nil
}

func (f *fakeHotelRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.HotelStatus) error {
	if hotel, ok := f.hotels[id]; ok {
		hotel.Status = status
	}
	return nil
}

func (f *fakeHotelRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.hotels, id)
	return nil
}

type fakeRoomTypeRepo struct {
	rooms    map[uuid.UUID]*entity.RoomType
	bookings *fakeBookingRepo
}

func newFakeRoomTypeRepo(bookings *fakeBookingRepo) *fakeRoomTypeRepo {
	return &fakeRoomTypeRepo{
		rooms:    make(map[uuid.UUID]*entity.RoomType),
		bookings: bookings,
	}
}

func (f *fakeRoomTypeRepo) Create(ctx context.Context, roomType *entity.RoomType) error {
	f.rooms[roomType.ID] = roomType
	return nil
}

func (f *fakeRoomTypeRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.RoomType, error) {
	return f.rooms[id], nil
}

func (f *fakeRoomTypeRepo) FindByHotelID(ctx context.Context, hotelID uuid.UUID) ([]*entity.RoomType, error) {
	var out []*entity.RoomType
	for _, roomType := range f.rooms {
		if roomType.HotelID == hotelID {
			out = append(out, roomType)
		}
	}
	return out, nil
}

func (f *fakeRoomTypeRepo) Update(ctx context.Context, roomType *entity.RoomType) error {
	f.rooms[roomType.ID] = roomType
	return nil
}

func (f *fakeRoomTypeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.rooms, id)
	return nil
}

func (f *fakeRoomTypeRepo) FindAvailable(ctx context.Context, hotelID uuid.UUID, checkIn, checkOut time.Time, guests int) ([]*entity.RoomType, error) {
	var out []*entity.RoomType
	for _, roomType := range f.rooms {
		if roomType.HotelID != hotelID || roomType.Capacity < guests {
			continue
		}
		if roomType.Status != entity.RoomStatusAvailable {
			continue
		}
		peak, _ := f.MaxOverlappingBookings(ctx, roomType.ID, checkIn, checkOut)
		if peak < int64(roomType.TotalRooms) {
			out = append(out, roomType)
		}
	}
	return out, nil
}

// MaxOverlappingBookings mirrors the per-night query: the peak number of
// non-cancelled bookings holding a room on any single night of the window.
func (f *fakeRoomTypeRepo) MaxOverlappingBookings(ctx context.Context, roomTypeID uuid.UUID, checkIn, checkOut time.Time) (int64, error) {
	var peak int64
	for night := checkIn; night.Before(checkOut); night = night.AddDate(0, 0, 1) {
		var occupied int64
		for _, booking := range f.bookings.bookings {
			if booking.RoomTypeID != roomTypeID || booking.Status == entity.BookingStatusCancelled {
				continue
			}
			if !booking.CheckIn.After(night) && booking.CheckOut.After(night) {
				occupied++
			}
		}
		if occupied > peak {
			peak = occupied
		}
	}
	return peak, nil
}

type fakeBookingRepo struct {
	bookings map[uuid.UUID]*entity.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[uuid.UUID]*entity.Booking)}
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	f.bookings[booking.ID] = booking
	return nil
}

func (f *fakeBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	return f.bookings[id], nil
}

func (f *fakeBookingRepo) FindByReference(ctx context.Context, reference string) (*entity.Booking, error) {
	for _, booking := range f.bookings {
		if booking.Reference == reference {
			return booking, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	var out []*entity.Booking
	for _, booking := range f.bookings {
		if booking.UserID == userID {
			out = append(out, booking)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	bookings, _ := f.FindByUserID(ctx, userID, 0, 0)
	return int64(len(bookings)), nil
}

func (f *fakeBookingRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.Booking, error) {
	var out []*entity.Booking
	for _, booking := range f.bookings {
		out = append(out, booking)
	}
	return out, nil
}

func (f *fakeBookingRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.bookings)), nil
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	booking, ok := f.bookings[bookingID]
	if !ok {
		return fmt.Errorf("booking %s not found", bookingID)
	}
	booking.Status = status
	return nil
}

func (f *fakeBookingRepo) UpdatePaymentStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingPaymentStatus) error {
	booking, ok := f.bookings[bookingID]
	if !ok {
		return fmt.Errorf("booking %s not found", bookingID)
	}
	booking.PaymentStatus = status
	return nil
}

type fakePaymentRepo struct {
	mu       sync.Mutex
	payments map[uuid.UUID]*entity.PaymentTransaction
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: make(map[uuid.UUID]*entity.PaymentTransaction)}
}

func (f *fakePaymentRepo) Create(ctx context.Context, payment *entity.PaymentTransaction) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.payments {
		if existing.IdempotencyKey == payment.IdempotencyKey {
			return fmt.Errorf("duplicate key value violates unique constraint")
		}
	}
	f.payments[payment.ID] = payment
	return nil
}

func (f *fakePaymentRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.PaymentTransaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.payments[id], nil
}

func (f *fakePaymentRepo) FindByIdempotencyKey(ctx context.Context, key string) (*entity.PaymentTransaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, payment := range f.payments {
		if payment.IdempotencyKey == key {
			return payment, nil
		}
	}
	return nil, nil
}

func (f *fakePaymentRepo) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.PaymentTransaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []*entity.PaymentTransaction
	for _, payment := range f.payments {
		if payment.BookingID == bookingID {
			out = append(out, payment)
		}
	}
	return out, nil
}

func (f *fakePaymentRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus, failureReason *string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	payment, ok := f.payments[id]
	if !ok {
		return fmt.Errorf("payment %s not found", id)
	}
	payment.Status = status
	payment.FailureReason = failureReason
	return nil
}

func (f *fakePaymentRepo) SumCompleted(ctx context.Context) (float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var total float64
	for _, payment := range f.payments {
		if payment.Status == entity.PaymentStatusCompleted {
			total += payment.Amount
		}
	}
	return total, nil
}

func (f *fakePaymentRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.payments)
}

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	var out []*entity.User
	for _, user := range f.users {
		out = append(out, user)
	}
	return out, nil
}

func (f *fakeUserRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.users)), nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) UpdateActive(ctx context.Context, id uuid.UUID, isActive bool) error {
	user, ok := f.users[id]
	if !ok {
		return fmt.Errorf("user %s not found", id)
	}
	user.IsActive = isActive
	return nil
}

func (f *fakeUserRepo) UpdateRole(ctx context.Context, id uuid.UUID, role entity.UserRole) error {
	user, ok := f.users[id]
	if !ok {
		return fmt.Errorf("user %s not found", id)
	}
	user.Role = role
	return nil
}

type fakeSessionRepo struct {
	sessions map[uuid.UUID]*entity.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[uuid.UUID]*entity.Session)}
}

func (f *fakeSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	f.sessions[session.Token] = session
	return nil
}

func (f *fakeSessionRepo) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	id, err := uuid.Parse(token)
	if err != nil {
		return nil, nil
	}
	session := f.sessions[id]
	if session == nil || session.RevokedAt != nil || session.ExpiresAt.Before(time.Now()) {
		return nil, nil
	}
	return session, nil
}

func (f *fakeSessionRepo) Revoke(ctx context.Context, token string) error {
	id, err := uuid.Parse(token)
	if err != nil {
		return nil
	}
	if session, ok := f.sessions[id]; ok {
		now := time.Now()
		session.RevokedAt = &now
	}
	return nil
}

func (f *fakeSessionRepo) RevokeAllUserSessions(ctx context.Context, userID uuid.UUID) error {
	now := time.Now()
	for _, session := range f.sessions {
		if session.UserID == userID && session.RevokedAt == nil {
			session.RevokedAt = &now
		}
	}
	return nil
}

func (f *fakeSessionRepo) CleanExpiredSessions(ctx context.Context) error {
	return nil
}

type fakePublisher struct {
	events []queue.PaymentRequestedEvent
}

func (f *fakePublisher) PublishPaymentRequested(ctx context.Context, event queue.PaymentRequestedEvent) error {
	f.events = append(f.events, event)
	return nil
}
