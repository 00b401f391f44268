package response

import (
	"time"

	"hotel-booking/internal/data/entity"
)

type PaymentResponse struct {
	ID             string               `json:"id"`
	BookingID      string               `json:"booking_id"`
	IdempotencyKey string               `json:"idempotency_key"`
	Amount         float64              `json:"amount"`
	Method         string               `json:"method"`
	Status         entity.PaymentStatus `json:"status"`
	FailureReason  *string              `json:"failure_reason,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
}

// PaymentStatusResponse is the minimal payload the client polls every few
// seconds until the status is terminal.
type PaymentStatusResponse struct {
	ID       string               `json:"id"`
	Status   entity.PaymentStatus `json:"status"`
	Terminal bool                 `json:"terminal"`
}

// Helper converters
func PaymentToResponse(payment *entity.PaymentTransaction) PaymentResponse {
	return PaymentResponse{
		ID:             payment.ID.String(),
		BookingID:      payment.BookingID.String(),
		IdempotencyKey: payment.IdempotencyKey,
		Amount:         payment.Amount,
		Method:         payment.Method,
		Status:         payment.Status,
		FailureReason:  payment.FailureReason,
		CreatedAt:      payment.CreatedAt,
	}
}

func PaymentToStatusResponse(payment *entity.PaymentTransaction) PaymentStatusResponse {
	return PaymentStatusResponse{
		ID:       payment.ID.String(),
		Status:   payment.Status,
		Terminal: payment.Status.IsTerminal(),
	}
}
