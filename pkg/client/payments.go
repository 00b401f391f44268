package client

import (
	"context"
	"net/http"
	"time"

	"hotel-booking/pkg/utils"
)

type PaymentsService struct {
	client *Client
}

type CreatePaymentParams struct {
	BookingID string  `json:"booking_id"`
	Amount    float64 `json:"amount"`
	Method    string  `json:"method"`

	// IdempotencyKey is generated when empty. Retry reuses the key from the
	// returned Payment, so most callers never set it.
	IdempotencyKey string `json:"-"`
}

// Create submits a payment. The idempotency key guarantees at most one
// transaction server-side no matter how many times the request lands.
func (s *PaymentsService) Create(ctx context.Context, params CreatePaymentParams) (*Payment, error) {
	key := params.IdempotencyKey
	if key == "" {
		key = utils.GenerateIdempotencyKey()
	}

	headers := map[string]string{"Idempotency-Key": key}

	var payment Payment
	if err := s.client.do(ctx, http.MethodPost, "/api/payments", headers, params, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

// Retry resubmits a failed payment reusing its original idempotency key.
// The server resets the same transaction to pending; no second row appears.
func (s *PaymentsService) Retry(ctx context.Context, payment *Payment) (*Payment, error) {
	return s.Create(ctx, CreatePaymentParams{
		BookingID:      payment.BookingID,
		Amount:         payment.Amount,
		Method:         payment.Method,
		IdempotencyKey: payment.IdempotencyKey,
	})
}

func (s *PaymentsService) Get(ctx context.Context, paymentID string) (*Payment, error) {
	var payment Payment
	if err := s.client.get(ctx, "/api/payments/"+paymentID, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

// Status fetches the current status once.
func (s *PaymentsService) Status(ctx context.Context, paymentID string) (*PaymentStatus, error) {
	var status PaymentStatus
	if err := s.client.get(ctx, "/api/payments/"+paymentID+"/status", &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// PollStatus polls until the payment reaches a terminal status (completed,
// failed or cancelled) or ctx is done. The interval comes from the client
// configuration, 3 seconds by default.
func (s *PaymentsService) PollStatus(ctx context.Context, paymentID string) (*PaymentStatus, error) {
	ticker := time.NewTicker(s.client.pollInterval)
	defer ticker.Stop()

	for {
		status, err := s.Status(ctx, paymentID)
		if err != nil {
			return nil, err
		}
		if status.Terminal {
			return status, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

func (s *PaymentsService) Cancel(ctx context.Context, paymentID string) (*Payment, error) {
	var payment Payment
	if err := s.client.post(ctx, "/api/payments/"+paymentID+"/cancel", nil, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}
