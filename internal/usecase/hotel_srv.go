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

type HotelService interface {
	// Public endpoints
	ListHotels(ctx context.Context, req *request.HotelListRequest) (*response.PaginatedResponse[response.HotelResponse], error)
	GetHotelByID(ctx context.Context, hotelID string) (*response.HotelDetailResponse, error)
	GetHotelBySlug(ctx context.Context, slug string) (*response.HotelDetailResponse, error)

	// Owner endpoints (need auth)
	CreateHotel(ctx context.Context, ownerID uuid.UUID, req *request.CreateHotelRequest) (*response.HotelResponse, error)
	UpdateHotel(ctx context.Context, ownerID uuid.UUID, hotelID string, req *request.UpdateHotelRequest) (*response.HotelResponse, error)
	DeleteHotel(ctx context.Context, ownerID uuid.UUID, hotelID string) error
	SetHotelAddress(ctx context.Context, ownerID uuid.UUID, hotelID string, req *request.AddressRequest) (*response.AddressResponse, error)
	ListOwnHotels(ctx context.Context, ownerID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.HotelResponse], error)
}

type hotelService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewHotelService(repo *repository.Repository, log *zap.Logger) HotelService {
	return &hotelService{
		repo: repo,
		log:  log.With(zap.String("service", "hotel")),
	}
}

func (s *hotelService) ListHotels(ctx context.Context, req *request.HotelListRequest) (*response.PaginatedResponse[response.HotelResponse], error) {
	// Public listing only ever sees active hotels
	filter := repository.HotelFilter{
		Status:   entity.HotelStatusActive,
		City:     req.City,
		MinStars: req.MinStars,
		Search:   req.Search,
	}

	hotels, err := s.repo.Hotel.FindAll(ctx, filter, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list hotels", zap.Error(err))
		return nil, fmt.Errorf("list hotels: %w", err)
	}

	total, err := s.repo.Hotel.Count(ctx, filter)
	if err != nil {
		s.log.Error("Failed to count hotels", zap.Error(err))
		return nil, fmt.Errorf("count hotels: %w", err)
	}

	hotelResponses := make([]response.HotelResponse, len(hotels))
	for i, hotel := range hotels {
		hotelResponses[i] = response.HotelToResponse(hotel, s.loadAddress(ctx, hotel))
	}

	return response.NewPaginatedResponse(hotelResponses, req.Page, req.PerPage, total), nil
}

func (s *hotelService) GetHotelByID(ctx context.Context, hotelID string) (*response.HotelDetailResponse, error) {
	id, err := uuid.Parse(hotelID)
	if err != nil {
		return nil, fmt.Errorf("invalid hotel ID format %s: %w", hotelID, err)
	}

	hotel, err := s.repo.Hotel.FindByID(ctx, id)
	if err != nil || hotel == nil {
		return nil, fmt.Errorf("hotel %s not found", hotelID)
	}
	// Pending and deactivated hotels stay invisible on the public detail
	// path, same as in the listing
	if hotel.Status != entity.HotelStatusActive {
		return nil, fmt.Errorf("hotel %s not found", hotelID)
	}

	return s.buildHotelDetail(ctx, hotel)
}

func (s *hotelService) GetHotelBySlug(ctx context.Context, slug string) (*response.HotelDetailResponse, error) {
	hotel, err := s.repo.Hotel.FindBySlug(ctx, slug)
	if err != nil || hotel == nil {
		return nil, fmt.Errorf("hotel %s not found", slug)
	}
	if hotel.Status != entity.HotelStatusActive {
		return nil, fmt.Errorf("hotel %s not found", slug)
	}

	return s.buildHotelDetail(ctx, hotel)
}

func (s *hotelService) CreateHotel(ctx context.Context, ownerID uuid.UUID, req *request.CreateHotelRequest) (*response.HotelResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create hotel validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	slug := utils.Slugify(req.Name)
	existing, err := s.repo.Hotel.FindBySlug(ctx, slug)
	if err != nil {
		s.log.Error("Failed to check slug", zap.Error(err), zap.String("slug", slug))
		return nil, fmt.Errorf("failed to check hotel name")
	}
	if existing != nil {
		return nil, fmt.Errorf("hotel name already taken")
	}

	now := time.Now()
	var address *entity.Address
	var addressID *uuid.UUID

	if req.Address != nil {
		address = addressFromRequest(req.Address, now)
		if err := s.repo.Address.Create(ctx, address); err != nil {
			s.log.Error("Failed to create hotel address", zap.Error(err))
			return nil, fmt.Errorf("create hotel address: %w", err)
		}
		addressID = &address.ID
	}

	hotel := &entity.Hotel{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		OwnerID:     ownerID,
		AddressID:   addressID,
		Name:        req.Name,
		Slug:        slug,
		Description: req.Description,
		StarRating:  req.StarRating,
		Status:      entity.HotelStatusPending, // admin approval flips to active
		Facilities:  req.Facilities,
		Images:      req.Images,
	}

	if err := s.repo.Hotel.Create(ctx, hotel); err != nil {
		s.log.Error("Failed to create hotel",
			zap.Error(err),
			zap.String("owner_id", ownerID.String()),
			zap.String("slug", slug),
		)
		return nil, fmt.Errorf("create hotel: %w", err)
	}

	s.log.Info("Hotel created",
		zap.String("hotel_id", hotel.ID.String()),
		zap.String("owner_id", ownerID.String()),
		zap.String("slug", slug),
	)

	resp := response.HotelToResponse(hotel, address)
	return &resp, nil
}

func (s *hotelService) UpdateHotel(ctx context.Context, ownerID uuid.UUID, hotelID string, req *request.UpdateHotelRequest) (*response.HotelResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update hotel validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	hotel, err := s.ownedHotel(ctx, ownerID, hotelID)
	if err != nil {
		return nil, err
	}

	hotel.Name = req.Name
	hotel.Description = req.Description
	hotel.StarRating = req.StarRating
	hotel.Facilities = req.Facilities
	hotel.Images = req.Images
	hotel.UpdatedAt = time.Now()

	if err := s.repo.Hotel.Update(ctx, hotel); err != nil {
		s.log.Error("Failed to update hotel",
			zap.Error(err),
			zap.String("hotel_id", hotelID),
		)
		return nil, fmt.Errorf("update hotel: %w", err)
	}

	s.log.Info("Hotel updated", zap.String("hotel_id", hotelID))

	resp := response.HotelToResponse(hotel, s.loadAddress(ctx, hotel))
	return &resp, nil
}

func (s *hotelService) DeleteHotel(ctx context.Context, ownerID uuid.UUID, hotelID string) error {
	hotel, err := s.ownedHotel(ctx, ownerID, hotelID)
	if err != nil {
		return err
	}

	if err := s.repo.Hotel.Delete(ctx, hotel.ID); err != nil {
		s.log.Error("Failed to delete hotel",
			zap.Error(err),
			zap.String("hotel_id", hotelID),
		)
		return fmt.Errorf("delete hotel: %w", err)
	}

	s.log.Info("Hotel deleted",
		zap.String("hotel_id", hotelID),
		zap.String("owner_id", ownerID.String()),
	)
	return nil
}

func (s *hotelService) SetHotelAddress(ctx context.Context, ownerID uuid.UUID, hotelID string, req *request.AddressRequest) (*response.AddressResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Set address validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	hotel, err := s.ownedHotel(ctx, ownerID, hotelID)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	// Update in place if the hotel already has an address
	if hotel.AddressID != nil {
		address, err := s.repo.Address.FindByID(ctx, *hotel.AddressID)
		if err == nil && address != nil {
			address.Line1 = req.Line1
			address.Line2 = req.Line2
			address.City = req.City
			address.State = req.State
			address.Country = req.Country
			address.PostalCode = req.PostalCode
			address.UpdatedAt = now

			if err := s.repo.Address.Update(ctx, address); err != nil {
				return nil, fmt.Errorf("update hotel address: %w", err)
			}

			return response.AddressToResponse(address), nil
		}
	}

	address := addressFromRequest(req, now)
	if err := s.repo.Address.Create(ctx, address); err != nil {
		return nil, fmt.Errorf("create hotel address: %w", err)
	}

	hotel.AddressID = &address.ID
	hotel.UpdatedAt = now
	if err := s.repo.Hotel.Update(ctx, hotel); err != nil {
		return nil, fmt.Errorf("attach address to hotel: %w", err)
	}

	return response.AddressToResponse(address), nil
}

func (s *hotelService) ListOwnHotels(ctx context.Context, ownerID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.HotelResponse], error) {
	filter := repository.HotelFilter{OwnerID: ownerID}

	hotels, err := s.repo.Hotel.FindAll(ctx, filter, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list own hotels", zap.Error(err), zap.String("owner_id", ownerID.String()))
		return nil, fmt.Errorf("list own hotels: %w", err)
	}

	total, err := s.repo.Hotel.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count own hotels: %w", err)
	}

	hotelResponses := make([]response.HotelResponse, len(hotels))
	for i, hotel := range hotels {
		hotelResponses[i] = response.HotelToResponse(hotel, s.loadAddress(ctx, hotel))
	}

	return response.NewPaginatedResponse(hotelResponses, req.Page, req.PerPage, total), nil
}

// ==================== HELPER METHODS ====================

func (s *hotelService) ownedHotel(ctx context.Context, ownerID uuid.UUID, hotelID string) (*entity.Hotel, error) {
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

	return hotel, nil
}

func (s *hotelService) loadAddress(ctx context.Context, hotel *entity.Hotel) *entity.Address {
	if hotel.AddressID == nil {
		return nil
	}
	address, _ := s.repo.Address.FindByID(ctx, *hotel.AddressID)
	return address
}

func (s *hotelService) buildHotelDetail(ctx context.Context, hotel *entity.Hotel) (*response.HotelDetailResponse, error) {
	roomTypes, err := s.repo.RoomType.FindByHotelID(ctx, hotel.ID)
	if err != nil {
		s.log.Error("Failed to load room types",
			zap.Error(err),
			zap.String("hotel_id", hotel.ID.String()),
		)
		return nil, fmt.Errorf("load room types: %w", err)
	}

	roomResponses := make([]response.RoomTypeResponse, len(roomTypes))
	for i, roomType := range roomTypes {
		roomResponses[i] = response.RoomTypeToResponse(roomType)
	}

	return &response.HotelDetailResponse{
		HotelResponse: response.HotelToResponse(hotel, s.loadAddress(ctx, hotel)),
		RoomTypes:     roomResponses,
	}, nil
}

func addressFromRequest(req *request.AddressRequest, now time.Time) *entity.Address {
	return &entity.Address{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Line1:      req.Line1,
		Line2:      req.Line2,
		City:       req.City,
		State:      req.State,
		Country:    req.Country,
		PostalCode: req.PostalCode,
	}
}
