package usecase

import (
	"context"
	"fmt"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/internal/queue"
	"hotel-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PaymentService interface {
	// CreatePayment is idempotent on the key: at most one transaction row
	// ever exists per idempotency key, no matter how often the client retries.
	CreatePayment(ctx context.Context, userID uuid.UUID, idempotencyKey string, req *request.CreatePaymentRequest) (*response.PaymentResponse, error)
	GetPayment(ctx context.Context, userID uuid.UUID, paymentID string) (*response.PaymentResponse, error)
	GetPaymentStatus(ctx context.Context, userID uuid.UUID, paymentID string) (*response.PaymentStatusResponse, error)
	CancelPayment(ctx context.Context, userID uuid.UUID, paymentID string) (*response.PaymentResponse, error)
}

type paymentService struct {
	repo      *repository.Repository
	publisher queue.Publisher
	log       *zap.Logger
}

func NewPaymentService(repo *repository.Repository, publisher queue.Publisher, log *zap.Logger) PaymentService {
	return &paymentService{
		repo:      repo,
		publisher: publisher,
		log:       log.With(zap.String("service", "payment")),
	}
}

func (s *paymentService) CreatePayment(ctx context.Context, userID uuid.UUID, idempotencyKey string, req *request.CreatePaymentRequest) (*response.PaymentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create payment validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}
	if idempotencyKey == "" {
		return nil, fmt.Errorf("invalid request: missing idempotency key")
	}

	bookingID, err := uuid.Parse(req.BookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", req.BookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil || booking == nil {
		return nil, fmt.Errorf("booking %s not found", req.BookingID)
	}
	if booking.UserID != userID {
		return nil, fmt.Errorf("unauthorized to pay for this booking")
	}
	if booking.Status == entity.BookingStatusCancelled {
		return nil, fmt.Errorf("cannot pay for a cancelled booking")
	}
	if booking.PaymentStatus == entity.BookingPaymentPaid {
		return nil, fmt.Errorf("booking %s is already paid", req.BookingID)
	}
	if req.Amount != booking.Total {
		return nil, fmt.Errorf("invalid amount: expected %.2f", booking.Total)
	}

	existing, err := s.repo.Payment.FindByIdempotencyKey(ctx, idempotencyKey)
	if err != nil {
		s.log.Error("Failed to look up idempotency key", zap.Error(err))
		return nil, fmt.Errorf("look up payment: %w", err)
	}
	if existing != nil {
		return s.reusePayment(ctx, bookingID, existing)
	}

	now := time.Now()
	payment := &entity.PaymentTransaction{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		BookingID:      bookingID,
		IdempotencyKey: idempotencyKey,
		Amount:         req.Amount,
		Method:         req.Method,
		Status:         entity.PaymentStatusPending,
	}

	if err := s.repo.Payment.Create(ctx, payment); err != nil {
		// A concurrent retry may have won the unique-key race; surface its row.
		if winner, findErr := s.repo.Payment.FindByIdempotencyKey(ctx, idempotencyKey); findErr == nil && winner != nil {
			return s.reusePayment(ctx, bookingID, winner)
		}
		s.log.Error("Failed to create payment",
			zap.Error(err),
			zap.String("booking_id", req.BookingID),
		)
		return nil, fmt.Errorf("create payment: %w", err)
	}

	s.publishRequested(ctx, payment, 1)

	s.log.Info("Payment created",
		zap.String("payment_id", payment.ID.String()),
		zap.String("booking_id", req.BookingID),
		zap.Float64("amount", payment.Amount),
	)

	resp := response.PaymentToResponse(payment)
	return &resp, nil
}

func (s *paymentService) GetPayment(ctx context.Context, userID uuid.UUID, paymentID string) (*response.PaymentResponse, error) {
	payment, err := s.ownPayment(ctx, userID, paymentID)
	if err != nil {
		return nil, err
	}
	resp := response.PaymentToResponse(payment)
	return &resp, nil
}

func (s *paymentService) GetPaymentStatus(ctx context.Context, userID uuid.UUID, paymentID string) (*response.PaymentStatusResponse, error) {
	payment, err := s.ownPayment(ctx, userID, paymentID)
	if err != nil {
		return nil, err
	}
	resp := response.PaymentToStatusResponse(payment)
	return &resp, nil
}

func (s *paymentService) CancelPayment(ctx context.Context, userID uuid.UUID, paymentID string) (*response.PaymentResponse, error) {
	payment, err := s.ownPayment(ctx, userID, paymentID)
	if err != nil {
		return nil, err
	}

	if payment.Status != entity.PaymentStatusPending {
		return nil, fmt.Errorf("cannot cancel payment with status %s", payment.Status)
	}

	if err := s.repo.Payment.UpdateStatus(ctx, payment.ID, entity.PaymentStatusCancelled, nil); err != nil {
		s.log.Error("Failed to cancel payment", zap.Error(err), zap.String("payment_id", paymentID))
		return nil, fmt.Errorf("cancel payment: %w", err)
	}
	payment.Status = entity.PaymentStatusCancelled

	s.log.Info("Payment cancelled", zap.String("payment_id", paymentID))

	resp := response.PaymentToResponse(payment)
	return &resp, nil
}

// ==================== HELPER METHODS ====================

// reusePayment implements the retry semantics for a key that already has a
// row: pending and completed come back unchanged, failed resets to pending
// and goes through the gateway again, cancelled stays dead. The existing row
// must belong to the booking being paid, otherwise a guessed key would leak
// another user's transaction.
func (s *paymentService) reusePayment(ctx context.Context, bookingID uuid.UUID, payment *entity.PaymentTransaction) (*response.PaymentResponse, error) {
	if payment.BookingID != bookingID {
		s.log.Warn("Idempotency key replayed against a different booking",
			zap.String("idempotency_key", payment.IdempotencyKey),
			zap.String("booking_id", bookingID.String()),
		)
		return nil, fmt.Errorf("idempotency key already taken by another booking")
	}

	switch payment.Status {
	case entity.PaymentStatusPending, entity.PaymentStatusCompleted:
		resp := response.PaymentToResponse(payment)
		return &resp, nil

	case entity.PaymentStatusFailed:
		if err := s.repo.Payment.UpdateStatus(ctx, payment.ID, entity.PaymentStatusPending, nil); err != nil {
			s.log.Error("Failed to reset payment for retry", zap.Error(err), zap.String("payment_id", payment.ID.String()))
			return nil, fmt.Errorf("retry payment: %w", err)
		}
		payment.Status = entity.PaymentStatusPending
		payment.FailureReason = nil

		s.publishRequested(ctx, payment, 2)

		s.log.Info("Payment retried",
			zap.String("payment_id", payment.ID.String()),
			zap.String("idempotency_key", payment.IdempotencyKey),
		)

		resp := response.PaymentToResponse(payment)
		return &resp, nil

	default: // cancelled
		return nil, fmt.Errorf("cannot retry payment with status %s", payment.Status)
	}
}

func (s *paymentService) publishRequested(ctx context.Context, payment *entity.PaymentTransaction, attempt int) {
	event := queue.PaymentRequestedEvent{
		PaymentID:   payment.ID.String(),
		BookingID:   payment.BookingID.String(),
		Amount:      payment.Amount,
		Method:      payment.Method,
		Attempt:     attempt,
		RequestedAt: time.Now(),
	}

	// Publishing is best effort: the row is pending either way, and a
	// stuck-pending payment is visible to operators and retryable.
	if err := s.publisher.PublishPaymentRequested(ctx, event); err != nil {
		s.log.Error("Failed to publish payment event",
			zap.Error(err),
			zap.String("payment_id", payment.ID.String()),
		)
	}
}

func (s *paymentService) ownPayment(ctx context.Context, userID uuid.UUID, paymentID string) (*entity.PaymentTransaction, error) {
	id, err := uuid.Parse(paymentID)
	if err != nil {
		return nil, fmt.Errorf("invalid payment ID format %s: %w", paymentID, err)
	}

	payment, err := s.repo.Payment.FindByID(ctx, id)
	if err != nil || payment == nil {
		return nil, fmt.Errorf("payment %s not found", paymentID)
	}

	booking, err := s.repo.Booking.FindByID(ctx, payment.BookingID)
	if err != nil || booking == nil {
		return nil, fmt.Errorf("booking for payment %s not found", paymentID)
	}
	if booking.UserID != userID {
		return nil, fmt.Errorf("unauthorized to view this payment")
	}

	return payment, nil
}
