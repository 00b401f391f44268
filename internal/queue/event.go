package queue

import (
	"time"
)

// PaymentRequestedQueue is the queue the gateway worker consumes from.
const PaymentRequestedQueue = "payment.requested"

// PaymentRequestedEvent is published when a payment transaction is created
// or retried. The gateway worker picks it up and drives the transaction to
// a terminal status, which the client discovers by polling.
type PaymentRequestedEvent struct {
	PaymentID   string    `json:"payment_id"`
	BookingID   string    `json:"booking_id"`
	Amount      float64   `json:"amount"`
	Method      string    `json:"method"`
	Attempt     int       `json:"attempt"`
	RequestedAt time.Time `json:"requested_at"`
}
