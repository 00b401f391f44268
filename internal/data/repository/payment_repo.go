package repository

import (
	"context"
	"fmt"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.PaymentTransaction) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.PaymentTransaction, error)
	FindByIdempotencyKey(ctx context.Context, key string) (*entity.PaymentTransaction, error)
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.PaymentTransaction, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus, failureReason *string) error
	SumCompleted(ctx context.Context) (float64, error)
}

type paymentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPaymentRepository(db database.PgxIface, log *zap.Logger) PaymentRepository {
	return &paymentRepository{
		db:  db,
		log: log.With(zap.String("repository", "payment")),
	}
}

const paymentColumns = `id, booking_id, idempotency_key, amount, method, status, failure_reason,
	       created_at, updated_at`

func (r *paymentRepository) Create(ctx context.Context, payment *entity.PaymentTransaction) error {
	query := `
		INSERT INTO payment_transactions (id, booking_id, idempotency_key, amount, method,
		                                  status, failure_reason, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		payment.ID,
		payment.BookingID,
		payment.IdempotencyKey,
		payment.Amount,
		payment.Method,
		payment.Status,
		payment.FailureReason,
		payment.CreatedAt,
		payment.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create payment transaction",
			zap.Error(err),
			zap.String("booking_id", payment.BookingID.String()),
			zap.String("idempotency_key", payment.IdempotencyKey),
		)
		return fmt.Errorf("create payment for booking %s: %w", payment.BookingID.String(), err)
	}

	return nil
}

func (r *paymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.PaymentTransaction, error) {
	query := `SELECT ` + paymentColumns + ` FROM payment_transactions WHERE id = $1`

	payment, err := r.scanPayment(r.db.QueryRow(ctx, query, id))
	if err != nil {
		r.log.Error("Failed to find payment by ID",
			zap.Error(err),
			zap.String("payment_id", id.String()),
		)
		return nil, fmt.Errorf("find payment by ID %s: %w", id.String(), err)
	}

	return payment, nil
}

// FindByIdempotencyKey is the duplicate-charge guard: the unique index on
// idempotency_key guarantees at most one row per key.
func (r *paymentRepository) FindByIdempotencyKey(ctx context.Context, key string) (*entity.PaymentTransaction, error) {
	query := `SELECT ` + paymentColumns + ` FROM payment_transactions WHERE idempotency_key = $1`

	payment, err := r.scanPayment(r.db.QueryRow(ctx, query, key))
	if err != nil {
		r.log.Error("Failed to find payment by idempotency key",
			zap.Error(err),
			zap.String("idempotency_key", key),
		)
		return nil, fmt.Errorf("find payment by idempotency key %s: %w", key, err)
	}

	return payment, nil
}

func (r *paymentRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.PaymentTransaction, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payment_transactions
		WHERE booking_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, bookingID)
	if err != nil {
		r.log.Error("Failed to find payments by booking ID",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return nil, fmt.Errorf("find payments by booking ID %s: %w", bookingID.String(), err)
	}
	defer rows.Close()

	var payments []*entity.PaymentTransaction
	for rows.Next() {
		payment, err := r.scanPayment(rows)
		if err != nil {
			r.log.Error("Failed to scan payment row", zap.Error(err))
			return nil, fmt.Errorf("scan payment row: %w", err)
		}
		payments = append(payments, payment)
	}

	return payments, nil
}

func (r *paymentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus, failureReason *string) error {
	query := `
		UPDATE payment_transactions
		SET status = $2, failure_reason = $3, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, id, status, failureReason)
	if err != nil {
		r.log.Error("Failed to update payment status",
			zap.Error(err),
			zap.String("payment_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update payment %s status to %s: %w", id.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("payment %s not found", id.String())
	}

	return nil
}

func (r *paymentRepository) SumCompleted(ctx context.Context) (float64, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM payment_transactions WHERE status = 'completed'`

	var total float64
	if err := r.db.QueryRow(ctx, query).Scan(&total); err != nil {
		r.log.Error("Failed to sum completed payments", zap.Error(err))
		return 0, fmt.Errorf("sum completed payments: %w", err)
	}

	return total, nil
}

func (r *paymentRepository) scanPayment(row pgx.Row) (*entity.PaymentTransaction, error) {
	var payment entity.PaymentTransaction
	err := row.Scan(
		&payment.ID,
		&payment.BookingID,
		&payment.IdempotencyKey,
		&payment.Amount,
		&payment.Method,
		&payment.Status,
		&payment.FailureReason,
		&payment.CreatedAt,
		&payment.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &payment, nil
}
