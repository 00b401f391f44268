package entity

import (
	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusCancelled PaymentStatus = "cancelled"
)

// IsTerminal reports whether no further transitions are possible.
func (s PaymentStatus) IsTerminal() bool {
	return s == PaymentStatusCompleted || s == PaymentStatusFailed || s == PaymentStatusCancelled
}

type PaymentTransaction struct {
	Base
	BookingID      uuid.UUID     `db:"booking_id"`
	IdempotencyKey string        `db:"idempotency_key"`
	Amount         float64       `db:"amount"`
	Method         string        `db:"method"`
	Status         PaymentStatus `db:"status"`
	FailureReason  *string       `db:"failure_reason"`
}
