package usecase

import (
	"context"
	"fmt"

	"hotel-booking/internal/compare"
	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CompareService interface {
	// ToggleCompare adds the room to the user's selection, or removes it if
	// already selected. At the cap the selection is returned unchanged with
	// a warning instead of an error.
	ToggleCompare(ctx context.Context, userID uuid.UUID, req *request.ToggleCompareRequest) (*response.CompareResponse, error)
	GetComparison(ctx context.Context, userID uuid.UUID) (*response.CompareResponse, error)
	ClearComparison(ctx context.Context, userID uuid.UUID) error
}

type compareService struct {
	roomRepo repository.RoomTypeRepository
	registry *compare.Registry
	log      *zap.Logger
}

func NewCompareService(roomRepo repository.RoomTypeRepository, registry *compare.Registry, log *zap.Logger) CompareService {
	return &compareService{
		roomRepo: roomRepo,
		registry: registry,
		log:      log.With(zap.String("service", "compare")),
	}
}

func (s *compareService) ToggleCompare(ctx context.Context, userID uuid.UUID, req *request.ToggleCompareRequest) (*response.CompareResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Toggle compare validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	roomTypeID, err := uuid.Parse(req.RoomTypeID)
	if err != nil {
		return nil, fmt.Errorf("invalid room type ID format %s: %w", req.RoomTypeID, err)
	}

	roomType, err := s.roomRepo.FindByID(ctx, roomTypeID)
	if err != nil || roomType == nil {
		return nil, fmt.Errorf("room type %s not found", req.RoomTypeID)
	}

	var result compare.ToggleResult
	var ids []uuid.UUID
	s.registry.WithUser(userID, func(set *compare.Set) {
		result = set.Toggle(roomTypeID)
		ids = set.IDs()
	})

	resp, err := s.buildComparison(ctx, ids)
	if err != nil {
		return nil, err
	}
	if result == compare.ToggleRejectedFull {
		resp.Warning = fmt.Sprintf("comparison is limited to %d rooms", compare.MaxRooms)
	}

	s.log.Debug("Compare toggled",
		zap.String("user_id", userID.String()),
		zap.String("room_type_id", req.RoomTypeID),
		zap.Int("selected", len(ids)),
	)

	return resp, nil
}

func (s *compareService) GetComparison(ctx context.Context, userID uuid.UUID) (*response.CompareResponse, error) {
	var ids []uuid.UUID
	s.registry.WithUser(userID, func(set *compare.Set) {
		ids = set.IDs()
	})

	return s.buildComparison(ctx, ids)
}

func (s *compareService) ClearComparison(ctx context.Context, userID uuid.UUID) error {
	s.registry.WithUser(userID, func(set *compare.Set) {
		set.Clear()
	})
	return nil
}

func (s *compareService) buildComparison(ctx context.Context, ids []uuid.UUID) (*response.CompareResponse, error) {
	rooms := make([]*entity.RoomType, 0, len(ids))
	for _, id := range ids {
		roomType, err := s.roomRepo.FindByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("load compared room: %w", err)
		}
		// A room deleted since selection just drops out of the view.
		if roomType == nil {
			continue
		}
		rooms = append(rooms, roomType)
	}

	highlights := compare.Highlights(rooms)

	entries := make([]response.CompareEntryResponse, len(rooms))
	for i, roomType := range rooms {
		flags := highlights[roomType.ID]
		entries[i] = response.CompareEntryResponse{
			RoomTypeResponse: response.RoomTypeToResponse(roomType),
			BestPrice:        flags.BestPrice,
			BestCapacity:     flags.BestCapacity,
			MostAmenity:      flags.MostAmenity,
		}
	}

	return &response.CompareResponse{
		Rooms: entries,
		Count: len(entries),
		Limit: compare.MaxRooms,
	}, nil
}
