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

type AddressRepository interface {
	Create(ctx context.Context, address *entity.Address) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Address, error)
	Update(ctx context.Context, address *entity.Address) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type addressRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAddressRepository(db database.PgxIface, log *zap.Logger) AddressRepository {
	return &addressRepository{
		db:  db,
		log: log.With(zap.String("repository", "address")),
	}
}

func (r *addressRepository) Create(ctx context.Context, address *entity.Address) error {
	query := `
		INSERT INTO addresses (id, line1, line2, city, state, country, postal_code, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		address.ID,
		address.Line1,
		address.Line2,
		address.City,
		address.State,
		address.Country,
		address.PostalCode,
		address.CreatedAt,
		address.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create address", zap.Error(err))
		return fmt.Errorf("create address: %w", err)
	}

	return nil
}

func (r *addressRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Address, error) {
	query := `
		SELECT id, line1, line2, city, state, country, postal_code, created_at, updated_at
		FROM addresses
		WHERE id = $1
	`

	var address entity.Address
	err := r.db.QueryRow(ctx, query, id).Scan(
		&address.ID,
		&address.Line1,
		&address.Line2,
		&address.City,
		&address.State,
		&address.Country,
		&address.PostalCode,
		&address.CreatedAt,
		&address.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find address by ID",
			zap.Error(err),
			zap.String("address_id", id.String()),
		)
		return nil, fmt.Errorf("find address by ID %s: %w", id.String(), err)
	}

	return &address, nil
}

func (r *addressRepository) Update(ctx context.Context, address *entity.Address) error {
	query := `
		UPDATE addresses
		SET line1 = $2, line2 = $3, city = $4, state = $5, country = $6,
		    postal_code = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		address.ID,
		address.Line1,
		address.Line2,
		address.City,
		address.State,
		address.Country,
		address.PostalCode,
		address.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update address",
			zap.Error(err),
			zap.String("address_id", address.ID.String()),
		)
		return fmt.Errorf("update address %s: %w", address.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("address %s not found", address.ID.String())
	}

	return nil
}

func (r *addressRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM addresses WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete address",
			zap.Error(err),
			zap.String("address_id", id.String()),
		)
		return fmt.Errorf("delete address %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("address %s not found", id.String())
	}

	return nil
}
