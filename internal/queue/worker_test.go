package queue

import (
	"context"
	"testing"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubPaymentRepo struct {
	payments map[uuid.UUID]*entity.PaymentTransaction
}

func (s *stubPaymentRepo) Create(ctx context.Context, payment *entity.PaymentTransaction) error {
	s.payments[payment.ID] = payment
	return nil
}

func (s *stubPaymentRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.PaymentTransaction, error) {
	return s.payments[id], nil
}

func (s *stubPaymentRepo) FindByIdempotencyKey(ctx context.Context, key string) (*entity.PaymentTransaction, error) {
	for _, payment := range s.payments {
		if payment.IdempotencyKey == key {
			return payment, nil
		}
	}
	return nil, nil
}

func (s *stubPaymentRepo) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.PaymentTransaction, error) {
	return nil, nil
}

func (s *stubPaymentRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus, failureReason *string) error {
	payment := s.payments[id]
	payment.Status = status
	payment.FailureReason = failureReason
	return nil
}

func (s *stubPaymentRepo) SumCompleted(ctx context.Context) (float64, error) { return 0, nil }

type stubBookingRepo struct {
	bookings map[uuid.UUID]*entity.Booking
}

func (s *stubBookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	s.bookings[booking.ID] = booking
	return nil
}

func (s *stubBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	return s.bookings[id], nil
}

func (s *stubBookingRepo) FindByReference(ctx context.Context, reference string) (*entity.Booking, error) {
	return nil, nil
}

func (s *stubBookingRepo) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	return nil, nil
}

func (s *stubBookingRepo) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	return 0, nil
}

func (s *stubBookingRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.Booking, error) {
	return nil, nil
}

func (s *stubBookingRepo) Count(ctx context.Context) (int64, error) { return 0, nil }

func (s *stubBookingRepo) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	s.bookings[bookingID].Status = status
	return nil
}

func (s *stubBookingRepo) UpdatePaymentStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingPaymentStatus) error {
	s.bookings[bookingID].PaymentStatus = status
	return nil
}

type workerFixture struct {
	worker   *GatewayWorker
	payments *stubPaymentRepo
	bookings *stubBookingRepo
	payment  *entity.PaymentTransaction
	booking  *entity.Booking
}

func newWorkerFixture(t *testing.T) *workerFixture {
	t.Helper()

	payments := &stubPaymentRepo{payments: make(map[uuid.UUID]*entity.PaymentTransaction)}
	bookings := &stubBookingRepo{bookings: make(map[uuid.UUID]*entity.Booking)}

	booking := &entity.Booking{
		Base:          entity.Base{ID: uuid.New()},
		Total:         345,
		Status:        entity.BookingStatusPending,
		PaymentStatus: entity.BookingPaymentUnpaid,
	}
	require.NoError(t, bookings.Create(context.Background(), booking))

	payment := &entity.PaymentTransaction{
		Base:           entity.Base{ID: uuid.New()},
		BookingID:      booking.ID,
		IdempotencyKey: "payment_1_000001",
		Amount:         345,
		Method:         "card",
		Status:         entity.PaymentStatusPending,
	}
	require.NoError(t, payments.Create(context.Background(), payment))

	repo := &repository.Repository{
		Booking: bookings,
		Payment: payments,
	}

	return &workerFixture{
		worker:   NewGatewayWorker("amqp://unused", repo, zap.NewNop()),
		payments: payments,
		bookings: bookings,
		payment:  payment,
		booking:  booking,
	}
}

func (f *workerFixture) event() PaymentRequestedEvent {
	return PaymentRequestedEvent{
		PaymentID:   f.payment.ID.String(),
		BookingID:   f.booking.ID.String(),
		Amount:      f.payment.Amount,
		Method:      f.payment.Method,
		Attempt:     1,
		RequestedAt: time.Now(),
	}
}

func TestProcessCompletesPaymentAndConfirmsBooking(t *testing.T) {
	f := newWorkerFixture(t)

	require.NoError(t, f.worker.process(context.Background(), f.event()))

	assert.Equal(t, entity.PaymentStatusCompleted, f.payment.Status)
	assert.Equal(t, entity.BookingStatusConfirmed, f.booking.Status)
	assert.Equal(t, entity.BookingPaymentPaid, f.booking.PaymentStatus)
}

func TestProcessFailsPaymentForCancelledBooking(t *testing.T) {
	f := newWorkerFixture(t)
	f.booking.Status = entity.BookingStatusCancelled

	require.NoError(t, f.worker.process(context.Background(), f.event()))

	assert.Equal(t, entity.PaymentStatusFailed, f.payment.Status)
	require.NotNil(t, f.payment.FailureReason)
	assert.Equal(t, "booking is no longer payable", *f.payment.FailureReason)
	assert.Equal(t, entity.BookingPaymentUnpaid, f.booking.PaymentStatus)
}

func TestProcessFailsPaymentOnAmountMismatch(t *testing.T) {
	f := newWorkerFixture(t)
	f.payment.Amount = 100

	require.NoError(t, f.worker.process(context.Background(), f.event()))

	assert.Equal(t, entity.PaymentStatusFailed, f.payment.Status)
	require.NotNil(t, f.payment.FailureReason)
	assert.Equal(t, "amount does not match booking total", *f.payment.FailureReason)
}

// A stale event for an already-settled transaction must not touch it.
func TestProcessSkipsTerminalPayment(t *testing.T) {
	f := newWorkerFixture(t)
	f.payment.Status = entity.PaymentStatusCancelled

	require.NoError(t, f.worker.process(context.Background(), f.event()))

	assert.Equal(t, entity.PaymentStatusCancelled, f.payment.Status)
	assert.Equal(t, entity.BookingStatusPending, f.booking.Status)
}

func TestProcessIgnoresUnknownPayment(t *testing.T) {
	f := newWorkerFixture(t)

	event := f.event()
	event.PaymentID = uuid.New().String()

	assert.NoError(t, f.worker.process(context.Background(), event))
}

func TestProcessIgnoresMalformedPaymentID(t *testing.T) {
	f := newWorkerFixture(t)

	event := f.event()
	event.PaymentID = "not-a-uuid"

	assert.NoError(t, f.worker.process(context.Background(), event))
}
