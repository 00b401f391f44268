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

type paymentFixture struct {
	service   PaymentService
	payments  *fakePaymentRepo
	bookings  *fakeBookingRepo
	publisher *fakePublisher
	userID    uuid.UUID
	booking   *entity.Booking
}

func newPaymentFixture(t *testing.T) *paymentFixture {
	t.Helper()

	payments := newFakePaymentRepo()
	bookings := newFakeBookingRepo()
	publisher := &fakePublisher{}

	repo := &repository.Repository{
		Booking: bookings,
		Payment: payments,
	}

	userID := uuid.New()
	booking := &entity.Booking{
		Base:          entity.Base{ID: uuid.New(), CreatedAt: time.Now()},
		Reference:     "BOOK-20240101-120000-0001",
		UserID:        userID,
		Total:         370,
		Status:        entity.BookingStatusPending,
		PaymentStatus: entity.BookingPaymentUnpaid,
	}
	require.NoError(t, bookings.Create(context.Background(), booking))

	return &paymentFixture{
		service:   NewPaymentService(repo, publisher, zap.NewNop()),
		payments:  payments,
		bookings:  bookings,
		publisher: publisher,
		userID:    userID,
		booking:   booking,
	}
}

func (f *paymentFixture) createRequest() *request.CreatePaymentRequest {
	return &request.CreatePaymentRequest{
		BookingID: f.booking.ID.String(),
		Amount:    370,
		Method:    "card",
	}
}

func TestCreatePaymentCreatesPendingAndPublishes(t *testing.T) {
	f := newPaymentFixture(t)

	payment, err := f.service.CreatePayment(context.Background(), f.userID, "payment_1_000001", f.createRequest())
	require.NoError(t, err)

	assert.Equal(t, entity.PaymentStatusPending, payment.Status)
	assert.Equal(t, "payment_1_000001", payment.IdempotencyKey)
	assert.Equal(t, 1, f.payments.count())

	require.Len(t, f.publisher.events, 1)
	assert.Equal(t, payment.ID, f.publisher.events[0].PaymentID)
	assert.Equal(t, 1, f.publisher.events[0].Attempt)
}

// One key, one row: a replay while the payment is still pending returns the
// existing transaction without publishing again.
func TestCreatePaymentReplaySameKeyReturnsSameRow(t *testing.T) {
	f := newPaymentFixture(t)
	ctx := context.Background()

	first, err := f.service.CreatePayment(ctx, f.userID, "payment_1_000001", f.createRequest())
	require.NoError(t, err)

	second, err := f.service.CreatePayment(ctx, f.userID, "payment_1_000001", f.createRequest())
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, f.payments.count())
	assert.Len(t, f.publisher.events, 1)
}

func TestCreatePaymentCompletedKeyReturnsAsIs(t *testing.T) {
	f := newPaymentFixture(t)
	ctx := context.Background()

	first, err := f.service.CreatePayment(ctx, f.userID, "payment_1_000001", f.createRequest())
	require.NoError(t, err)

	paymentID := uuid.MustParse(first.ID)
	require.NoError(t, f.payments.UpdateStatus(ctx, paymentID, entity.PaymentStatusCompleted, nil))

	replay, err := f.service.CreatePayment(ctx, f.userID, "payment_1_000001", f.createRequest())
	require.NoError(t, err)

	assert.Equal(t, first.ID, replay.ID)
	assert.Equal(t, entity.PaymentStatusCompleted, replay.Status)
	assert.Equal(t, 1, f.payments.count())
}

// Retrying a failed payment with the same key resets the existing row to
// pending and publishes a new gateway request. Still one row.
func TestCreatePaymentRetryAfterFailureResetsRow(t *testing.T) {
	f := newPaymentFixture(t)
	ctx := context.Background()

	first, err := f.service.CreatePayment(ctx, f.userID, "payment_1_000001", f.createRequest())
	require.NoError(t, err)

	reason := "card declined"
	paymentID := uuid.MustParse(first.ID)
	require.NoError(t, f.payments.UpdateStatus(ctx, paymentID, entity.PaymentStatusFailed, &reason))

	retried, err := f.service.CreatePayment(ctx, f.userID, "payment_1_000001", f.createRequest())
	require.NoError(t, err)

	assert.Equal(t, first.ID, retried.ID)
	assert.Equal(t, entity.PaymentStatusPending, retried.Status)
	assert.Nil(t, retried.FailureReason)
	assert.Equal(t, 1, f.payments.count())
	assert.Len(t, f.publisher.events, 2)
}

func TestCreatePaymentCancelledKeyRejected(t *testing.T) {
	f := newPaymentFixture(t)
	ctx := context.Background()

	first, err := f.service.CreatePayment(ctx, f.userID, "payment_1_000001", f.createRequest())
	require.NoError(t, err)

	paymentID := uuid.MustParse(first.ID)
	require.NoError(t, f.payments.UpdateStatus(ctx, paymentID, entity.PaymentStatusCancelled, nil))

	_, err = f.service.CreatePayment(ctx, f.userID, "payment_1_000001", f.createRequest())
	assert.ErrorContains(t, err, "cannot retry")
	assert.Equal(t, 1, f.payments.count())
}

// A key belongs to the booking it was first used for. Replaying someone
// else's key against a different booking must not expose their transaction
// or reset its failed state.
func TestCreatePaymentKeyBoundToItsBooking(t *testing.T) {
	f := newPaymentFixture(t)
	ctx := context.Background()

	first, err := f.service.CreatePayment(ctx, f.userID, "payment_1_000001", f.createRequest())
	require.NoError(t, err)

	reason := "card declined"
	require.NoError(t, f.payments.UpdateStatus(ctx, uuid.MustParse(first.ID), entity.PaymentStatusFailed, &reason))

	otherUser := uuid.New()
	otherBooking := &entity.Booking{
		Base:          entity.Base{ID: uuid.New(), CreatedAt: time.Now()},
		Reference:     "BOOK-20240102-120000-0002",
		UserID:        otherUser,
		Total:         370,
		Status:        entity.BookingStatusPending,
		PaymentStatus: entity.BookingPaymentUnpaid,
	}
	require.NoError(t, f.bookings.Create(ctx, otherBooking))

	_, err = f.service.CreatePayment(ctx, otherUser, "payment_1_000001", &request.CreatePaymentRequest{
		BookingID: otherBooking.ID.String(),
		Amount:    370,
		Method:    "card",
	})
	assert.ErrorContains(t, err, "already taken")

	stored, findErr := f.payments.FindByID(ctx, uuid.MustParse(first.ID))
	require.NoError(t, findErr)
	assert.Equal(t, entity.PaymentStatusFailed, stored.Status)
	require.NotNil(t, stored.FailureReason)
	assert.Equal(t, 1, f.payments.count())
	assert.Len(t, f.publisher.events, 1)
}

func TestCreatePaymentDistinctKeysMakeDistinctRows(t *testing.T) {
	f := newPaymentFixture(t)
	ctx := context.Background()

	first, err := f.service.CreatePayment(ctx, f.userID, "payment_1_000001", f.createRequest())
	require.NoError(t, err)

	second, err := f.service.CreatePayment(ctx, f.userID, "payment_2_000002", f.createRequest())
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, 2, f.payments.count())
}

func TestCreatePaymentAmountMismatchRejected(t *testing.T) {
	f := newPaymentFixture(t)

	req := f.createRequest()
	req.Amount = 100

	_, err := f.service.CreatePayment(context.Background(), f.userID, "payment_1_000001", req)
	assert.ErrorContains(t, err, "invalid amount")
	assert.Equal(t, 0, f.payments.count())
}

func TestCreatePaymentCancelledBookingRejected(t *testing.T) {
	f := newPaymentFixture(t)
	ctx := context.Background()

	require.NoError(t, f.bookings.UpdateStatus(ctx, f.booking.ID, entity.BookingStatusCancelled))

	_, err := f.service.CreatePayment(ctx, f.userID, "payment_1_000001", f.createRequest())
	assert.ErrorContains(t, err, "cancelled")
}

func TestCreatePaymentMissingKeyRejected(t *testing.T) {
	f := newPaymentFixture(t)

	_, err := f.service.CreatePayment(context.Background(), f.userID, "", f.createRequest())
	assert.ErrorContains(t, err, "idempotency key")
}

func TestCreatePaymentForeignBookingRejected(t *testing.T) {
	f := newPaymentFixture(t)

	_, err := f.service.CreatePayment(context.Background(), uuid.New(), "payment_1_000001", f.createRequest())
	assert.ErrorContains(t, err, "unauthorized")
}

func TestCancelPaymentOnlyPending(t *testing.T) {
	f := newPaymentFixture(t)
	ctx := context.Background()

	payment, err := f.service.CreatePayment(ctx, f.userID, "payment_1_000001", f.createRequest())
	require.NoError(t, err)

	cancelled, err := f.service.CancelPayment(ctx, f.userID, payment.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusCancelled, cancelled.Status)

	_, err = f.service.CancelPayment(ctx, f.userID, payment.ID)
	assert.ErrorContains(t, err, "cannot cancel")
}

func TestGetPaymentStatusTerminalFlag(t *testing.T) {
	f := newPaymentFixture(t)
	ctx := context.Background()

	payment, err := f.service.CreatePayment(ctx, f.userID, "payment_1_000001", f.createRequest())
	require.NoError(t, err)

	status, err := f.service.GetPaymentStatus(ctx, f.userID, payment.ID)
	require.NoError(t, err)
	assert.False(t, status.Terminal)

	paymentID := uuid.MustParse(payment.ID)
	require.NoError(t, f.payments.UpdateStatus(ctx, paymentID, entity.PaymentStatusCompleted, nil))

	status, err = f.service.GetPaymentStatus(ctx, f.userID, payment.ID)
	require.NoError(t, err)
	assert.True(t, status.Terminal)
	assert.Equal(t, entity.PaymentStatusCompleted, status.Status)
}
