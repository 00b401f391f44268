package usecase

import (
	"context"
	"fmt"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RoomService interface {
	// Public endpoints
	ListRoomTypes(ctx context.Context, hotelID string) ([]response.RoomTypeResponse, error)
	GetRoomType(ctx context.Context, roomTypeID string) (*response.RoomTypeResponse, error)
	CheckAvailability(ctx context.Context, hotelID string, req *request.AvailabilityRequest) (*response.AvailabilityResponse, error)

	// Owner endpoints
	CreateRoomType(ctx context.Context, ownerID uuid.UUID, hotelID string, req *request.CreateRoomTypeRequest) (*response.RoomTypeResponse, error)
	UpdateRoomType(ctx context.Context, ownerID uuid.UUID, roomTypeID string, req *request.UpdateRoomTypeRequest) (*response.RoomTypeResponse, error)
	DeleteRoomType(ctx context.Context, ownerID uuid.UUID, roomTypeID string) error
}

type roomService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewRoomService(repo *repository.Repository, log *zap.Logger) RoomService {
	return &roomService{
		repo: repo,
		log:  log.With(zap.String("service", "room")),
	}
}

func (s *roomService) ListRoomTypes(ctx context.Context, hotelID string) ([]response.RoomTypeResponse, error) {
	id, err := uuid.Parse(hotelID)
	if err != nil {
		return nil, fmt.Errorf("invalid hotel ID format %s: %w", hotelID, err)
	}

	hotel, err := s.repo.Hotel.FindByID(ctx, id)
	if err != nil || hotel == nil {
		return nil, fmt.Errorf("hotel %s not found", hotelID)
	}

	roomTypes, err := s.repo.RoomType.FindByHotelID(ctx, id)
	if err != nil {
		s.log.Error("Failed to list room types", zap.Error(err), zap.String("hotel_id", hotelID))
		return nil, fmt.Errorf("list room types: %w", err)
	}

	roomResponses := make([]response.RoomTypeResponse, len(roomTypes))
	for i, roomType := range roomTypes {
		roomResponses[i] = response.RoomTypeToResponse(roomType)
	}
	return roomResponses, nil
}

func (s *roomService) GetRoomType(ctx context.Context, roomTypeID string) (*response.RoomTypeResponse, error) {
	id, err := uuid.Parse(roomTypeID)
	if err != nil {
		return nil, fmt.Errorf("invalid room type ID format %s: %w", roomTypeID, err)
	}

	roomType, err := s.repo.RoomType.FindByID(ctx, id)
	if err != nil || roomType == nil {
		return nil, fmt.Errorf("room type %s not found", roomTypeID)
	}

	resp := response.RoomTypeToResponse(roomType)
	return &resp, nil
}

func (s *roomService) CheckAvailability(ctx context.Context, hotelID string, req *request.AvailabilityRequest) (*response.AvailabilityResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Availability validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(hotelID)
	if err != nil {
		return nil, fmt.Errorf("invalid hotel ID format %s: %w", hotelID, err)
	}

	hotel, err := s.repo.Hotel.FindByID(ctx, id)
	if err != nil || hotel == nil {
		return nil, fmt.Errorf("hotel %s not found", hotelID)
	}
	if hotel.Status != entity.HotelStatusActive {
		return nil, fmt.Errorf("hotel %s is not accepting bookings", hotelID)
	}

	checkIn, err := utils.ParseDate(req.CheckIn)
	if err != nil {
		return nil, fmt.Errorf("invalid check-in date: %w", err)
	}
	checkOut, err := utils.ParseDate(req.CheckOut)
	if err != nil {
		return nil, fmt.Errorf("invalid check-out date: %w", err)
	}

	if err := ValidateStay(checkIn, checkOut); err != nil {
		return nil, err
	}
	nights := Nights(checkIn, checkOut)

	roomTypes, err := s.repo.RoomType.FindAvailable(ctx, id, checkIn, checkOut, req.Guests)
	if err != nil {
		s.log.Error("Failed to search availability",
			zap.Error(err),
			zap.String("hotel_id", hotelID),
			zap.String("check_in", req.CheckIn),
			zap.String("check_out", req.CheckOut),
		)
		return nil, fmt.Errorf("search availability: %w", err)
	}

	rooms := make([]response.AvailableRoomResponse, 0, len(roomTypes))
	for _, roomType := range roomTypes {
		overlapping, err := s.repo.RoomType.MaxOverlappingBookings(ctx, roomType.ID, checkIn, checkOut)
		if err != nil {
			return nil, fmt.Errorf("count overlapping bookings: %w", err)
		}

		roomsLeft := roomType.TotalRooms - int(overlapping)
		if roomsLeft < 1 {
			continue
		}

		rooms = append(rooms, response.AvailableRoomResponse{
			RoomTypeResponse: response.RoomTypeToResponse(roomType),
			PricePerNight:    roomType.BasePrice,
			Nights:           nights,
			TotalPrice:       round2(roomType.BasePrice * float64(nights)),
			RoomsLeft:        roomsLeft,
		})
	}

	s.log.Debug("Availability search completed",
		zap.String("hotel_id", hotelID),
		zap.Int("nights", nights),
		zap.Int("rooms_found", len(rooms)),
	)

	return &response.AvailabilityResponse{
		HotelID:  hotelID,
		CheckIn:  req.CheckIn,
		CheckOut: req.CheckOut,
		Guests:   req.Guests,
		Rooms:    rooms,
	}, nil
}

// ==================== OWNER METHODS ====================

func (s *roomService) CreateRoomType(ctx context.Context, ownerID uuid.UUID, hotelID string, req *request.CreateRoomTypeRequest) (*response.RoomTypeResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create room type validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(hotelID)
	if err != nil {
		return nil, fmt.Errorf("invalid hotel ID format %s: %w", hotelID, err)
	}

	hotel, err := s.repo.Hotel.FindByID(ctx, id)
	if err != nil || hotel == nil {
		return nil, fmt.Errorf("hotel %s not found", hotelID)
	}
	if hotel.OwnerID != ownerID {
		return nil, fmt.Errorf("unauthorized to manage this hotel")
	}

	now := time.Now()
	roomType := &entity.RoomType{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		HotelID:     hotel.ID,
		Name:        req.Name,
		Description: req.Description,
		Capacity:    req.Capacity,
		BasePrice:   req.BasePrice,
		TotalRooms:  req.TotalRooms,
		Status:      entity.RoomStatusAvailable,
		Amenities:   req.Amenities,
	}

	if err := s.repo.RoomType.Create(ctx, roomType); err != nil {
		s.log.Error("Failed to create room type",
			zap.Error(err),
			zap.String("hotel_id", hotelID),
		)
		return nil, fmt.Errorf("create room type: %w", err)
	}

	s.log.Info("Room type created",
		zap.String("room_type_id", roomType.ID.String()),
		zap.String("hotel_id", hotelID),
	)

	resp := response.RoomTypeToResponse(roomType)
	return &resp, nil
}

func (s *roomService) UpdateRoomType(ctx context.Context, ownerID uuid.UUID, roomTypeID string, req *request.UpdateRoomTypeRequest) (*response.RoomTypeResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update room type validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	roomType, err := s.ownedRoomType(ctx, ownerID, roomTypeID)
	if err != nil {
		return nil, err
	}

	roomType.Name = req.Name
	roomType.Description = req.Description
	roomType.Capacity = req.Capacity
	roomType.BasePrice = req.BasePrice
	roomType.TotalRooms = req.TotalRooms
	roomType.Status = entity.RoomStatus(req.Status)
	roomType.Amenities = req.Amenities
	roomType.UpdatedAt = time.Now()

	if err := s.repo.RoomType.Update(ctx, roomType); err != nil {
		s.log.Error("Failed to update room type",
			zap.Error(err),
			zap.String("room_type_id", roomTypeID),
		)
		return nil, fmt.Errorf("update room type: %w", err)
	}

	s.log.Info("Room type updated", zap.String("room_type_id", roomTypeID))

	resp := response.RoomTypeToResponse(roomType)
	return &resp, nil
}

func (s *roomService) DeleteRoomType(ctx context.Context, ownerID uuid.UUID, roomTypeID string) error {
	roomType, err := s.ownedRoomType(ctx, ownerID, roomTypeID)
	if err != nil {
		return err
	}

	if err := s.repo.RoomType.Delete(ctx, roomType.ID); err != nil {
		s.log.Error("Failed to delete room type",
			zap.Error(err),
			zap.String("room_type_id", roomTypeID),
		)
		return fmt.Errorf("delete room type: %w", err)
	}

	s.log.Info("Room type deleted", zap.String("room_type_id", roomTypeID))
	return nil
}

func (s *roomService) ownedRoomType(ctx context.Context, ownerID uuid.UUID, roomTypeID string) (*entity.RoomType, error) {
	id, err := uuid.Parse(roomTypeID)
	if err != nil {
		return nil, fmt.Errorf("invalid room type ID format %s: %w", roomTypeID, err)
	}

	roomType, err := s.repo.RoomType.FindByID(ctx, id)
	if err != nil || roomType == nil {
		return nil, fmt.Errorf("room type %s not found", roomTypeID)
	}

	hotel, err := s.repo.Hotel.FindByID(ctx, roomType.HotelID)
	if err != nil || hotel == nil {
		return nil, fmt.Errorf("hotel for room type %s not found", roomTypeID)
	}
	if hotel.OwnerID != ownerID {
		return nil, fmt.Errorf("unauthorized to manage this hotel")
	}

	return roomType, nil
}
