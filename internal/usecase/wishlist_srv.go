package usecase

import (
	"context"
	"fmt"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/internal/wishlist"
	"hotel-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type WishlistService interface {
	GetWishlist(ctx context.Context, userID uuid.UUID) ([]response.WishlistItemResponse, error)
	AddToWishlist(ctx context.Context, userID uuid.UUID, req *request.AddWishlistRequest) (*response.WishlistItemResponse, error)
	RemoveFromWishlist(ctx context.Context, userID uuid.UUID, hotelID string) error
}

type wishlistService struct {
	repo  *repository.Repository
	store wishlist.Store
	log   *zap.Logger
}

func NewWishlistService(repo *repository.Repository, store wishlist.Store, log *zap.Logger) WishlistService {
	return &wishlistService{
		repo:  repo,
		store: store,
		log:   log.With(zap.String("service", "wishlist")),
	}
}

func (s *wishlistService) GetWishlist(ctx context.Context, userID uuid.UUID) ([]response.WishlistItemResponse, error) {
	items, err := s.store.List(ctx, userID)
	if err != nil {
		s.log.Error("Failed to list wishlist", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("list wishlist: %w", err)
	}

	itemResponses := make([]response.WishlistItemResponse, len(items))
	for i, item := range items {
		itemResponses[i] = response.WishlistItemToResponse(item)
	}
	return itemResponses, nil
}

func (s *wishlistService) AddToWishlist(ctx context.Context, userID uuid.UUID, req *request.AddWishlistRequest) (*response.WishlistItemResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Add wishlist validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	hotelID, err := uuid.Parse(req.HotelID)
	if err != nil {
		return nil, fmt.Errorf("invalid hotel ID format %s: %w", req.HotelID, err)
	}

	hotel, err := s.repo.Hotel.FindByID(ctx, hotelID)
	if err != nil || hotel == nil {
		return nil, fmt.Errorf("hotel %s not found", req.HotelID)
	}
	if hotel.Status != entity.HotelStatusActive {
		return nil, fmt.Errorf("hotel %s not found", req.HotelID)
	}

	// Adding twice just refreshes the snapshot; no error, no duplicate.
	item := &entity.WishlistItem{
		UserID:     userID,
		HotelID:    hotel.ID,
		HotelName:  hotel.Name,
		HotelSlug:  hotel.Slug,
		StarRating: hotel.StarRating,
		AddedAt:    time.Now(),
	}

	if hotel.AddressID != nil {
		if address, err := s.repo.Address.FindByID(ctx, *hotel.AddressID); err == nil && address != nil {
			item.City = address.City
		}
	}

	if roomTypes, err := s.repo.RoomType.FindByHotelID(ctx, hotel.ID); err == nil {
		for _, roomType := range roomTypes {
			if item.MinPrice == 0 || roomType.BasePrice < item.MinPrice {
				item.MinPrice = roomType.BasePrice
			}
		}
	}

	if err := s.store.Add(ctx, item); err != nil {
		s.log.Error("Failed to add wishlist item",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("hotel_id", req.HotelID),
		)
		return nil, fmt.Errorf("add wishlist item: %w", err)
	}

	s.log.Info("Wishlist item added",
		zap.String("user_id", userID.String()),
		zap.String("hotel_id", req.HotelID),
	)

	resp := response.WishlistItemToResponse(item)
	return &resp, nil
}

func (s *wishlistService) RemoveFromWishlist(ctx context.Context, userID uuid.UUID, hotelID string) error {
	id, err := uuid.Parse(hotelID)
	if err != nil {
		return fmt.Errorf("invalid hotel ID format %s: %w", hotelID, err)
	}

	found, err := s.store.Contains(ctx, userID, id)
	if err != nil {
		return fmt.Errorf("check wishlist item: %w", err)
	}
	if !found {
		return fmt.Errorf("hotel %s not found in wishlist", hotelID)
	}

	if err := s.store.Remove(ctx, userID, id); err != nil {
		s.log.Error("Failed to remove wishlist item",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("hotel_id", hotelID),
		)
		return fmt.Errorf("remove wishlist item: %w", err)
	}

	s.log.Info("Wishlist item removed",
		zap.String("user_id", userID.String()),
		zap.String("hotel_id", hotelID),
	)
	return nil
}
