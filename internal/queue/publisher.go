package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Publisher sends payment events to the broker. The interface exists so the
// payment service can be tested without RabbitMQ.
type Publisher interface {
	PublishPaymentRequested(ctx context.Context, event PaymentRequestedEvent) error
}

type amqpPublisher struct {
	url string
	log *zap.Logger
}

func NewPublisher(url string, log *zap.Logger) Publisher {
	return &amqpPublisher{
		url: url,
		log: log.With(zap.String("component", "queue_publisher")),
	}
}

// PublishPaymentRequested declares the queue (idempotent) and publishes the
// event as a persistent message. Errors are logged and returned so the
// caller can decide whether to fail the request.
func (p *amqpPublisher) PublishPaymentRequested(ctx context.Context, event PaymentRequestedEvent) error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		p.log.Error("Failed to dial broker", zap.Error(err))
		return fmt.Errorf("dial broker: %w", err)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		p.log.Error("Failed to open channel", zap.Error(err))
		return fmt.Errorf("open channel: %w", err)
	}
	defer ch.Close()

	if _, err := ch.QueueDeclare(
		PaymentRequestedQueue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	); err != nil {
		p.log.Error("Failed to declare queue", zap.Error(err))
		return fmt.Errorf("declare queue: %w", err)
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	err = ch.PublishWithContext(ctx,
		"",                    // default exchange
		PaymentRequestedQueue, // routing key = queue name
		false,                 // mandatory
		false,                 // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	)
	if err != nil {
		p.log.Error("Failed to publish event",
			zap.Error(err),
			zap.String("payment_id", event.PaymentID),
		)
		return fmt.Errorf("publish payment event: %w", err)
	}

	p.log.Info("Payment event published",
		zap.String("payment_id", event.PaymentID),
		zap.String("booking_id", event.BookingID),
		zap.Int("attempt", event.Attempt),
	)

	return nil
}
