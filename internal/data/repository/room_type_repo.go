package repository

import (
	"context"
	"fmt"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type RoomTypeRepository interface {
	Create(ctx context.Context, roomType *entity.RoomType) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.RoomType, error)
	FindByHotelID(ctx context.Context, hotelID uuid.UUID) ([]*entity.RoomType, error)
	Update(ctx context.Context, roomType *entity.RoomType) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Business queries
	FindAvailable(ctx context.Context, hotelID uuid.UUID, checkIn, checkOut time.Time, guests int) ([]*entity.RoomType, error)
	MaxOverlappingBookings(ctx context.Context, roomTypeID uuid.UUID, checkIn, checkOut time.Time) (int64, error)
}

type roomTypeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRoomTypeRepository(db database.PgxIface, log *zap.Logger) RoomTypeRepository {
	return &roomTypeRepository{
		db:  db,
		log: log.With(zap.String("repository", "room_type")),
	}
}

const roomTypeColumns = `id, hotel_id, name, description, capacity, base_price,
	       total_rooms, status, amenities, created_at, updated_at`

func (r *roomTypeRepository) Create(ctx context.Context, roomType *entity.RoomType) error {
	query := `
		INSERT INTO room_types (id, hotel_id, name, description, capacity, base_price,
		                        total_rooms, status, amenities, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		roomType.ID,
		roomType.HotelID,
		roomType.Name,
		roomType.Description,
		roomType.Capacity,
		roomType.BasePrice,
		roomType.TotalRooms,
		roomType.Status,
		roomType.Amenities,
		roomType.CreatedAt,
		roomType.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create room type",
			zap.Error(err),
			zap.String("hotel_id", roomType.HotelID.String()),
			zap.String("name", roomType.Name),
		)
		return fmt.Errorf("create room type %s: %w", roomType.Name, err)
	}

	return nil
}

func (r *roomTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.RoomType, error) {
	query := `SELECT ` + roomTypeColumns + ` FROM room_types WHERE id = $1 AND deleted_at IS NULL`

	var roomType entity.RoomType
	err := r.db.QueryRow(ctx, query, id).Scan(
		&roomType.ID,
		&roomType.HotelID,
		&roomType.Name,
		&roomType.Description,
		&roomType.Capacity,
		&roomType.BasePrice,
		&roomType.TotalRooms,
		&roomType.Status,
		&roomType.Amenities,
		&roomType.CreatedAt,
		&roomType.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find room type by ID",
			zap.Error(err),
			zap.String("room_type_id", id.String()),
		)
		return nil, fmt.Errorf("find room type by ID %s: %w", id.String(), err)
	}

	return &roomType, nil
}

func (r *roomTypeRepository) FindByHotelID(ctx context.Context, hotelID uuid.UUID) ([]*entity.RoomType, error) {
	query := `
		SELECT ` + roomTypeColumns + `
		FROM room_types
		WHERE hotel_id = $1 AND deleted_at IS NULL
		ORDER BY base_price
	`

	rows, err := r.db.Query(ctx, query, hotelID)
	if err != nil {
		r.log.Error("Failed to find room types by hotel ID",
			zap.Error(err),
			zap.String("hotel_id", hotelID.String()),
		)
		return nil, fmt.Errorf("find room types by hotel ID %s: %w", hotelID.String(), err)
	}
	defer rows.Close()

	return r.scanRoomTypes(rows)
}

func (r *roomTypeRepository) Update(ctx context.Context, roomType *entity.RoomType) error {
	query := `
		UPDATE room_types
		SET name = $2, description = $3, capacity = $4, base_price = $5,
		    total_rooms = $6, status = $7, amenities = $8, updated_at = $9
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		roomType.ID,
		roomType.Name,
		roomType.Description,
		roomType.Capacity,
		roomType.BasePrice,
		roomType.TotalRooms,
		roomType.Status,
		roomType.Amenities,
		roomType.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update room type",
			zap.Error(err),
			zap.String("room_type_id", roomType.ID.String()),
		)
		return fmt.Errorf("update room type %s: %w", roomType.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("room type %s not found", roomType.ID.String())
	}

	return nil
}

func (r *roomTypeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE room_types SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete room type",
			zap.Error(err),
			zap.String("room_type_id", id.String()),
		)
		return fmt.Errorf("delete room type %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("room type %s not found", id.String())
	}

	return nil
}

// FindAvailable returns room types of the hotel that can host the guest count
// and still have inventory left for every night of the stay. Occupancy is
// counted per night: two bookings that touch the query window on different
// nights (say Jan 1-3 and Jan 3-5) only ever hold one room at a time, so they
// must not be summed.
func (r *roomTypeRepository) FindAvailable(ctx context.Context, hotelID uuid.UUID, checkIn, checkOut time.Time, guests int) ([]*entity.RoomType, error) {
	query := `
		SELECT ` + roomTypeColumns + `
		FROM room_types rt
		WHERE rt.hotel_id = $1
		  AND rt.deleted_at IS NULL
		  AND rt.status = 'available'
		  AND rt.capacity >= $2
		  AND rt.total_rooms > (
		      SELECT COALESCE(MAX(per_night.occupied), 0)
		      FROM (
		          SELECT COUNT(b.id) AS occupied
		          FROM generate_series($3::timestamptz, $4::timestamptz - interval '1 day', interval '1 day') AS night
		          LEFT JOIN bookings b
		            ON b.room_type_id = rt.id
		           AND b.status NOT IN ('cancelled')
		           AND b.check_in <= night
		           AND b.check_out > night
		          GROUP BY night
		      ) per_night
		  )
		ORDER BY rt.base_price
	`

	rows, err := r.db.Query(ctx, query, hotelID, guests, checkIn, checkOut)
	if err != nil {
		r.log.Error("Failed to find available room types",
			zap.Error(err),
			zap.String("hotel_id", hotelID.String()),
			zap.Time("check_in", checkIn),
			zap.Time("check_out", checkOut),
		)
		return nil, fmt.Errorf("find available room types for hotel %s: %w", hotelID.String(), err)
	}
	defer rows.Close()

	return r.scanRoomTypes(rows)
}

// MaxOverlappingBookings returns the peak number of rooms held on any single
// night of the window; total_rooms minus this is the sellable remainder.
func (r *roomTypeRepository) MaxOverlappingBookings(ctx context.Context, roomTypeID uuid.UUID, checkIn, checkOut time.Time) (int64, error) {
	query := `
		SELECT COALESCE(MAX(per_night.occupied), 0)
		FROM (
		    SELECT COUNT(b.id) AS occupied
		    FROM generate_series($2::timestamptz, $3::timestamptz - interval '1 day', interval '1 day') AS night
		    LEFT JOIN bookings b
		      ON b.room_type_id = $1
		     AND b.status NOT IN ('cancelled')
		     AND b.check_in <= night
		     AND b.check_out > night
		    GROUP BY night
		) per_night
	`

	var count int64
	err := r.db.QueryRow(ctx, query, roomTypeID, checkIn, checkOut).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count overlapping bookings",
			zap.Error(err),
			zap.String("room_type_id", roomTypeID.String()),
		)
		return 0, fmt.Errorf("count overlapping bookings for room type %s: %w", roomTypeID.String(), err)
	}

	return count, nil
}

func (r *roomTypeRepository) scanRoomTypes(rows pgx.Rows) ([]*entity.RoomType, error) {
	var roomTypes []*entity.RoomType
	for rows.Next() {
		var roomType entity.RoomType
		err := rows.Scan(
			&roomType.ID,
			&roomType.HotelID,
			&roomType.Name,
			&roomType.Description,
			&roomType.Capacity,
			&roomType.BasePrice,
			&roomType.TotalRooms,
			&roomType.Status,
			&roomType.Amenities,
			&roomType.CreatedAt,
			&roomType.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan room type row", zap.Error(err))
			return nil, fmt.Errorf("scan room type row: %w", err)
		}
		roomTypes = append(roomTypes, &roomType)
	}

	return roomTypes, nil
}
