package usecase

import (
	"context"
	"fmt"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AdminService interface {
	// ==================== USER MANAGEMENT ====================
	GetAllUsers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error)
	SetUserActive(ctx context.Context, userID string, isActive bool) error
	SetUserRole(ctx context.Context, userID string, role string) error

	// ==================== HOTEL MANAGEMENT ====================
	GetAllHotels(ctx context.Context, req *request.HotelListRequest, status string) (*response.PaginatedResponse[response.HotelResponse], error)
	ApproveHotel(ctx context.Context, hotelID string) (*response.HotelResponse, error)
	DeactivateHotel(ctx context.Context, hotelID string) (*response.HotelResponse, error)

	// ==================== BOOKING MANAGEMENT ====================
	GetAllBookings(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	GetBookingDetail(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	CancelBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error)

	// ==================== DASHBOARD ====================
	GetStats(ctx context.Context) (*response.AdminStatsResponse, error)
}

type adminService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAdminService(repo *repository.Repository, log *zap.Logger) AdminService {
	return &adminService{
		repo: repo,
		log:  log.With(zap.String("service", "admin")),
	}
}

// ==================== USER MANAGEMENT ====================

func (s *adminService) GetAllUsers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error) {
	users, err := s.repo.User.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list users", zap.Error(err))
		return nil, fmt.Errorf("list users: %w", err)
	}

	total, err := s.repo.User.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	userResponses := make([]response.UserResponse, len(users))
	for i, user := range users {
		userResponses[i] = response.UserToResponse(user)
	}

	return response.NewPaginatedResponse(userResponses, req.Page, req.PerPage, total), nil
}

func (s *adminService) SetUserActive(ctx context.Context, userID string, isActive bool) error {
	id, err := uuid.Parse(userID)
	if err != nil {
		return fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil || user == nil {
		return fmt.Errorf("user %s not found", userID)
	}

	if err := s.repo.User.UpdateActive(ctx, id, isActive); err != nil {
		s.log.Error("Failed to update user active flag", zap.Error(err), zap.String("user_id", userID))
		return fmt.Errorf("update user: %w", err)
	}

	// Deactivation kills every live session immediately.
	if !isActive {
		if err := s.repo.Session.RevokeAllUserSessions(ctx, id); err != nil {
			s.log.Error("Failed to revoke sessions", zap.Error(err), zap.String("user_id", userID))
		}
	}

	s.log.Info("User active flag updated",
		zap.String("user_id", userID),
		zap.Bool("is_active", isActive),
	)
	return nil
}

func (s *adminService) SetUserRole(ctx context.Context, userID string, role string) error {
	userRole := entity.UserRole(role)
	switch userRole {
	case entity.RoleCustomer, entity.RoleOwner, entity.RoleAdmin:
	default:
		return fmt.Errorf("invalid role %s", role)
	}

	id, err := uuid.Parse(userID)
	if err != nil {
		return fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil || user == nil {
		return fmt.Errorf("user %s not found", userID)
	}

	if err := s.repo.User.UpdateRole(ctx, id, userRole); err != nil {
		s.log.Error("Failed to update user role", zap.Error(err), zap.String("user_id", userID))
		return fmt.Errorf("update user role: %w", err)
	}

	s.log.Info("User role updated",
		zap.String("user_id", userID),
		zap.String("role", role),
	)
	return nil
}

// ==================== HOTEL MANAGEMENT ====================

func (s *adminService) GetAllHotels(ctx context.Context, req *request.HotelListRequest, status string) (*response.PaginatedResponse[response.HotelResponse], error) {
	filter := repository.HotelFilter{
		Status:   entity.HotelStatus(status), // empty means all statuses
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
		return nil, fmt.Errorf("count hotels: %w", err)
	}

	hotelResponses := make([]response.HotelResponse, len(hotels))
	for i, hotel := range hotels {
		var address *entity.Address
		if hotel.AddressID != nil {
			address, _ = s.repo.Address.FindByID(ctx, *hotel.AddressID)
		}
		hotelResponses[i] = response.HotelToResponse(hotel, address)
	}

	return response.NewPaginatedResponse(hotelResponses, req.Page, req.PerPage, total), nil
}

func (s *adminService) ApproveHotel(ctx context.Context, hotelID string) (*response.HotelResponse, error) {
	return s.setHotelStatus(ctx, hotelID, entity.HotelStatusActive)
}

func (s *adminService) DeactivateHotel(ctx context.Context, hotelID string) (*response.HotelResponse, error) {
	return s.setHotelStatus(ctx, hotelID, entity.HotelStatusInactive)
}

func (s *adminService) setHotelStatus(ctx context.Context, hotelID string, status entity.HotelStatus) (*response.HotelResponse, error) {
	id, err := uuid.Parse(hotelID)
	if err != nil {
		return nil, fmt.Errorf("invalid hotel ID format %s: %w", hotelID, err)
	}

	hotel, err := s.repo.Hotel.FindByID(ctx, id)
	if err != nil || hotel == nil {
		return nil, fmt.Errorf("hotel %s not found", hotelID)
	}

	if err := s.repo.Hotel.UpdateStatus(ctx, id, status); err != nil {
		s.log.Error("Failed to update hotel status",
			zap.Error(err),
			zap.String("hotel_id", hotelID),
			zap.String("status", string(status)),
		)
		return nil, fmt.Errorf("update hotel status: %w", err)
	}
	hotel.Status = status

	s.log.Info("Hotel status updated",
		zap.String("hotel_id", hotelID),
		zap.String("status", string(status)),
	)

	var address *entity.Address
	if hotel.AddressID != nil {
		address, _ = s.repo.Address.FindByID(ctx, *hotel.AddressID)
	}
	resp := response.HotelToResponse(hotel, address)
	return &resp, nil
}

// ==================== BOOKING MANAGEMENT ====================

func (s *adminService) GetAllBookings(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	bookings, err := s.repo.Booking.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list bookings", zap.Error(err))
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	total, err := s.repo.Booking.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	bookingResponses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		bookingResponses[i] = response.BookingToResponse(booking)
	}

	return response.NewPaginatedResponse(bookingResponses, req.Page, req.PerPage, total), nil
}

func (s *adminService) GetBookingDetail(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	resp := response.BookingToResponse(booking)
	if payments, err := s.repo.Payment.FindByBookingID(ctx, booking.ID); err == nil && len(payments) > 0 {
		latest := response.PaymentToResponse(payments[0])
		resp.Payment = &latest
	}
	return &resp, nil
}

func (s *adminService) CancelBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.Status == entity.BookingStatusCancelled || booking.Status == entity.BookingStatusCompleted {
		return nil, fmt.Errorf("cannot cancel booking with status %s", booking.Status)
	}

	if err := s.repo.Booking.UpdateStatus(ctx, booking.ID, entity.BookingStatusCancelled); err != nil {
		s.log.Error("Failed to cancel booking", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("cancel booking: %w", err)
	}
	booking.Status = entity.BookingStatusCancelled

	s.log.Info("Booking cancelled by admin", zap.String("booking_id", bookingID))

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *adminService) findBooking(ctx context.Context, bookingID string) (*entity.Booking, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil || booking == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}
	return booking, nil
}

// ==================== DASHBOARD ====================

func (s *adminService) GetStats(ctx context.Context) (*response.AdminStatsResponse, error) {
	totalUsers, err := s.repo.User.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	totalHotels, err := s.repo.Hotel.Count(ctx, repository.HotelFilter{})
	if err != nil {
		return nil, fmt.Errorf("count hotels: %w", err)
	}

	totalBookings, err := s.repo.Booking.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	totalRevenue, err := s.repo.Payment.SumCompleted(ctx)
	if err != nil {
		return nil, fmt.Errorf("sum revenue: %w", err)
	}

	return &response.AdminStatsResponse{
		TotalUsers:    totalUsers,
		TotalHotels:   totalHotels,
		TotalBookings: totalBookings,
		TotalRevenue:  totalRevenue,
	}, nil
}
