package queue

import (
	"context"
	"encoding/json"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// GatewayWorker consumes payment.requested events and plays the role of the
// external payment provider: each pending transaction is driven to a
// terminal status, the client polls for the result. Completion confirms the
// booking; failure leaves it pending so the client can retry with the same
// idempotency key.
type GatewayWorker struct {
	url  string
	repo *repository.Repository
	log  *zap.Logger
}

func NewGatewayWorker(url string, repo *repository.Repository, log *zap.Logger) *GatewayWorker {
	return &GatewayWorker{
		url:  url,
		repo: repo,
		log:  log.With(zap.String("component", "gateway_worker")),
	}
}

// Run consumes until the context is cancelled, redialing on broker errors.
func (w *GatewayWorker) Run(ctx context.Context) {
	for {
		if err := w.consume(ctx); err != nil {
			w.log.Warn("Consumer stopped, reconnecting", zap.Error(err))
		}

		select {
		case <-ctx.Done():
			w.log.Info("Gateway worker stopped")
			return
		case <-time.After(5 * time.Second):
		}
	}
}

func (w *GatewayWorker) consume(ctx context.Context) error {
	conn, err := amqp.Dial(w.url)
	if err != nil {
		return err
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	if _, err := ch.QueueDeclare(PaymentRequestedQueue, true, false, false, false, nil); err != nil {
		return err
	}

	deliveries, err := ch.Consume(
		PaymentRequestedQueue,
		"",    // consumer tag
		false, // autoAck: ack manually after processing
		false, // exclusive
		false, // noLocal
		false, // noWait
		nil,
	)
	if err != nil {
		return err
	}

	w.log.Info("Gateway worker consuming", zap.String("queue", PaymentRequestedQueue))

	for {
		select {
		case <-ctx.Done():
			return nil
		case delivery, ok := <-deliveries:
			if !ok {
				return amqp.ErrClosed
			}
			w.handle(ctx, delivery)
		}
	}
}

func (w *GatewayWorker) handle(ctx context.Context, delivery amqp.Delivery) {
	var event PaymentRequestedEvent
	if err := json.Unmarshal(delivery.Body, &event); err != nil {
		w.log.Error("Failed to decode payment event", zap.Error(err))
		delivery.Nack(false, false) // drop malformed messages
		return
	}

	if err := w.process(ctx, event); err != nil {
		w.log.Error("Failed to process payment event",
			zap.Error(err),
			zap.String("payment_id", event.PaymentID),
		)
		delivery.Nack(false, true) // requeue for another attempt
		return
	}

	delivery.Ack(false)
}

// process settles one transaction. The simulated gateway completes any
// pending payment whose booking still exists and is payable; everything
// else fails with a reason.
func (w *GatewayWorker) process(ctx context.Context, event PaymentRequestedEvent) error {
	paymentID, err := uuid.Parse(event.PaymentID)
	if err != nil {
		w.log.Warn("Invalid payment ID in event", zap.String("payment_id", event.PaymentID))
		return nil // not retryable
	}

	payment, err := w.repo.Payment.FindByID(ctx, paymentID)
	if err != nil {
		return err
	}
	if payment == nil {
		w.log.Warn("Payment in event no longer exists", zap.String("payment_id", event.PaymentID))
		return nil
	}

	// Terminal transactions are left alone; the event is stale
	if payment.Status.IsTerminal() {
		return nil
	}

	booking, err := w.repo.Booking.FindByID(ctx, payment.BookingID)
	if err != nil {
		return err
	}

	if booking == nil || booking.Status == entity.BookingStatusCancelled {
		reason := "booking is no longer payable"
		if err := w.repo.Payment.UpdateStatus(ctx, payment.ID, entity.PaymentStatusFailed, &reason); err != nil {
			return err
		}
		w.log.Info("Payment failed",
			zap.String("payment_id", payment.ID.String()),
			zap.String("reason", reason),
		)
		return nil
	}

	if payment.Amount != booking.Total {
		reason := "amount does not match booking total"
		if err := w.repo.Payment.UpdateStatus(ctx, payment.ID, entity.PaymentStatusFailed, &reason); err != nil {
			return err
		}
		w.log.Info("Payment failed",
			zap.String("payment_id", payment.ID.String()),
			zap.String("reason", reason),
		)
		return nil
	}

	if err := w.repo.Payment.UpdateStatus(ctx, payment.ID, entity.PaymentStatusCompleted, nil); err != nil {
		return err
	}

	// Confirm booking; log and continue if this part fails
	if err := w.repo.Booking.UpdateStatus(ctx, booking.ID, entity.BookingStatusConfirmed); err != nil {
		w.log.Error("Failed to confirm booking after payment",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
	}
	if err := w.repo.Booking.UpdatePaymentStatus(ctx, booking.ID, entity.BookingPaymentPaid); err != nil {
		w.log.Error("Failed to mark booking paid",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
	}

	w.log.Info("Payment completed",
		zap.String("payment_id", payment.ID.String()),
		zap.String("booking_id", booking.ID.String()),
		zap.Float64("amount", payment.Amount),
	)

	return nil
}
