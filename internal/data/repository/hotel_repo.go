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

// HotelFilter narrows hotel listing queries. Zero values mean "no filter".
type HotelFilter struct {
	Status   entity.HotelStatus
	City     string
	MinStars int
	Search   string
	OwnerID  uuid.UUID
}

type HotelRepository interface {
	Create(ctx context.Context, hotel *entity.Hotel) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Hotel, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Hotel, error)
	FindAll(ctx context.Context, filter HotelFilter, limit, offset int) ([]*entity.Hotel, error)
	Count(ctx context.Context, filter HotelFilter) (int64, error)
	Update(ctx context.Context, hotel *entity.Hotel) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.HotelStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type hotelRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewHotelRepository(db database.PgxIface, log *zap.Logger) HotelRepository {
	return &hotelRepository{
		db:  db,
		log: log.With(zap.String("repository", "hotel")),
	}
}

const hotelColumns = `h.id, h.owner_id, h.address_id, h.name, h.slug, h.description,
	       h.star_rating, h.status, h.facilities, h.images, h.created_at, h.updated_at`

func (r *hotelRepository) Create(ctx context.Context, hotel *entity.Hotel) error {
	query := `
		INSERT INTO hotels (id, owner_id, address_id, name, slug, description,
		                    star_rating, status, facilities, images, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.Exec(ctx, query,
		hotel.ID,
		hotel.OwnerID,
		hotel.AddressID,
		hotel.Name,
		hotel.Slug,
		hotel.Description,
		hotel.StarRating,
		hotel.Status,
		hotel.Facilities,
		hotel.Images,
		hotel.CreatedAt,
		hotel.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create hotel",
			zap.Error(err),
			zap.String("slug", hotel.Slug),
		)
		return fmt.Errorf("create hotel %s: %w", hotel.Slug, err)
	}

	return nil
}

func (r *hotelRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Hotel, error) {
	query := `SELECT ` + hotelColumns + ` FROM hotels h WHERE h.id = $1 AND h.deleted_at IS NULL`

	hotel, err := r.scanHotel(r.db.QueryRow(ctx, query, id))
	if err != nil {
		r.log.Error("Failed to find hotel by ID",
			zap.Error(err),
			zap.String("hotel_id", id.String()),
		)
		return nil, fmt.Errorf("find hotel by ID %s: %w", id.String(), err)
	}

	return hotel, nil
}

func (r *hotelRepository) FindBySlug(ctx context.Context, slug string) (*entity.Hotel, error) {
	query := `SELECT ` + hotelColumns + ` FROM hotels h WHERE h.slug = $1 AND h.deleted_at IS NULL`

	hotel, err := r.scanHotel(r.db.QueryRow(ctx, query, slug))
	if err != nil {
		r.log.Error("Failed to find hotel by slug",
			zap.Error(err),
			zap.String("slug", slug),
		)
		return nil, fmt.Errorf("find hotel by slug %s: %w", slug, err)
	}

	return hotel, nil
}

func (r *hotelRepository) FindAll(ctx context.Context, filter HotelFilter, limit, offset int) ([]*entity.Hotel, error) {
	where, args := buildHotelFilter(filter)
	args = append(args, limit, offset)

	query := fmt.Sprintf(`
		SELECT `+hotelColumns+`
		FROM hotels h
		LEFT JOIN addresses a ON a.id = h.address_id
		%s
		ORDER BY h.created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list hotels", zap.Error(err))
		return nil, fmt.Errorf("list hotels: %w", err)
	}
	defer rows.Close()

	var hotels []*entity.Hotel
	for rows.Next() {
		var hotel entity.Hotel
		err := rows.Scan(
			&hotel.ID,
			&hotel.OwnerID,
			&hotel.AddressID,
			&hotel.Name,
			&hotel.Slug,
			&hotel.Description,
			&hotel.StarRating,
			&hotel.Status,
			&hotel.Facilities,
			&hotel.Images,
			&hotel.CreatedAt,
			&hotel.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan hotel row", zap.Error(err))
			return nil, fmt.Errorf("scan hotel row: %w", err)
		}
		hotels = append(hotels, &hotel)
	}

	return hotels, nil
}

func (r *hotelRepository) Count(ctx context.Context, filter HotelFilter) (int64, error) {
	where, args := buildHotelFilter(filter)

	query := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM hotels h
		LEFT JOIN addresses a ON a.id = h.address_id
		%s
	`, where)

	var count int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		r.log.Error("Failed to count hotels", zap.Error(err))
		return 0, fmt.Errorf("count hotels: %w", err)
	}

	return count, nil
}

func (r *hotelRepository) Update(ctx context.Context, hotel *entity.Hotel) error {
	query := `
		UPDATE hotels
		SET address_id = $2, name = $3, slug = $4, description = $5,
		    star_rating = $6, status = $7, facilities = $8, images = $9, updated_at = $10
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		hotel.ID,
		hotel.AddressID,
		hotel.Name,
		hotel.Slug,
		hotel.Description,
		hotel.StarRating,
		hotel.Status,
		hotel.Facilities,
		hotel.Images,
		hotel.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update hotel",
			zap.Error(err),
			zap.String("hotel_id", hotel.ID.String()),
		)
		return fmt.Errorf("update hotel %s: %w", hotel.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("hotel %s not found", hotel.ID.String())
	}

	return nil
}

func (r *hotelRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.HotelStatus) error {
	query := `UPDATE hotels SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update hotel status",
			zap.Error(err),
			zap.String("hotel_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update hotel %s status to %s: %w", id.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("hotel %s not found", id.String())
	}

	return nil
}

func (r *hotelRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE hotels SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete hotel",
			zap.Error(err),
			zap.String("hotel_id", id.String()),
		)
		return fmt.Errorf("delete hotel %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("hotel %s not found", id.String())
	}

	r.log.Info("Hotel deleted", zap.String("hotel_id", id.String()))
	return nil
}

// buildHotelFilter assembles the WHERE clause. Positional args stay in sync
// with the returned slice so callers can append LIMIT/OFFSET after.
func buildHotelFilter(filter HotelFilter) (string, []any) {
	where := "WHERE h.deleted_at IS NULL"
	var args []any

	if filter.Status != "" {
		args = append(args, filter.Status)
		where += fmt.Sprintf(" AND h.status = $%d", len(args))
	}
	if filter.City != "" {
		args = append(args, filter.City)
		where += fmt.Sprintf(" AND a.city ILIKE $%d", len(args))
	}
	if filter.MinStars > 0 {
		args = append(args, filter.MinStars)
		where += fmt.Sprintf(" AND h.star_rating >= $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		where += fmt.Sprintf(" AND h.name ILIKE $%d", len(args))
	}
	if filter.OwnerID != uuid.Nil {
		args = append(args, filter.OwnerID)
		where += fmt.Sprintf(" AND h.owner_id = $%d", len(args))
	}

	return where, args
}

func (r *hotelRepository) scanHotel(row pgx.Row) (*entity.Hotel, error) {
	var hotel entity.Hotel
	err := row.Scan(
		&hotel.ID,
		&hotel.OwnerID,
		&hotel.AddressID,
		&hotel.Name,
		&hotel.Slug,
		&hotel.Description,
		&hotel.StarRating,
		&hotel.Status,
		&hotel.Facilities,
		&hotel.Images,
		&hotel.CreatedAt,
		&hotel.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &hotel, nil
}
