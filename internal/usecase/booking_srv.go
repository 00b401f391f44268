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

type BookingService interface {
	PreviewBooking(ctx context.Context, req *request.PreviewBookingRequest) (*response.PriceBreakdownResponse, error)
	CreateBooking(ctx context.Context, userID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetBooking(ctx context.Context, userID uuid.UUID, bookingID string) (*response.BookingResponse, error)
	GetBookingByReference(ctx context.Context, userID uuid.UUID, reference string) (*response.BookingResponse, error)
	GetUserBookings(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	CancelBooking(ctx context.Context, userID uuid.UUID, bookingID string) (*response.BookingResponse, error)
}

type bookingService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewBookingService(repo *repository.Repository, config *utils.Config, log *zap.Logger) BookingService {
	return &bookingService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) PreviewBooking(ctx context.Context, req *request.PreviewBookingRequest) (*response.PriceBreakdownResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Preview booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	roomType, checkIn, checkOut, err := s.resolveStay(ctx, req.RoomTypeID, req.CheckIn, req.CheckOut, req.Guests)
	if err != nil {
		return nil, err
	}

	breakdown := ComputeBreakdown(s.config.Pricing, roomType.BasePrice, Nights(checkIn, checkOut))
	return &breakdown, nil
}

func (s *bookingService) CreateBooking(ctx context.Context, userID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
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
		return nil, fmt.Errorf("hotel %s is not accepting bookings", req.HotelID)
	}

	roomType, checkIn, checkOut, err := s.resolveStay(ctx, req.RoomTypeID, req.CheckIn, req.CheckOut, req.Guests)
	if err != nil {
		return nil, err
	}
	if roomType.HotelID != hotelID {
		return nil, fmt.Errorf("room type %s does not belong to hotel %s", req.RoomTypeID, req.HotelID)
	}

	// Re-check availability at booking time; the search result may be stale.
	overlapping, err := s.repo.RoomType.MaxOverlappingBookings(ctx, roomType.ID, checkIn, checkOut)
	if err != nil {
		s.log.Error("Failed to check availability", zap.Error(err), zap.String("room_type_id", req.RoomTypeID))
		return nil, fmt.Errorf("check availability: %w", err)
	}
	if int(overlapping) >= roomType.TotalRooms {
		return nil, fmt.Errorf("room type %s is not available for the selected dates", req.RoomTypeID)
	}

	nights := Nights(checkIn, checkOut)
	breakdown := ComputeBreakdown(s.config.Pricing, roomType.BasePrice, nights)

	var taxAmount, feeAmount float64
	for _, line := range breakdown.Taxes {
		taxAmount += line.Amount
	}
	for _, line := range breakdown.Fees {
		feeAmount += line.Amount
	}

	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Reference:     utils.GenerateBookingReference(),
		UserID:        userID,
		HotelID:       hotelID,
		RoomTypeID:    roomType.ID,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Nights:        nights,
		Guests:        req.Guests,
		GuestName:     req.GuestName,
		GuestEmail:    req.GuestEmail,
		GuestPhone:    req.GuestPhone,
		Subtotal:      breakdown.Subtotal,
		TaxAmount:     taxAmount,
		FeeAmount:     feeAmount,
		Total:         breakdown.Total,
		Status:        entity.BookingStatusPending,
		PaymentStatus: entity.BookingPaymentUnpaid,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("room_type_id", req.RoomTypeID),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("reference", booking.Reference),
		zap.String("user_id", userID.String()),
		zap.Float64("total", booking.Total),
	)

	resp := response.BookingToResponse(booking)
	resp.Breakdown = breakdown
	resp.HotelName = hotel.Name
	resp.RoomTypeName = roomType.Name
	return &resp, nil
}

func (s *bookingService) GetBooking(ctx context.Context, userID uuid.UUID, bookingID string) (*response.BookingResponse, error) {
	booking, err := s.ownBooking(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}
	return s.buildBookingResponse(ctx, booking), nil
}

func (s *bookingService) GetBookingByReference(ctx context.Context, userID uuid.UUID, reference string) (*response.BookingResponse, error) {
	booking, err := s.repo.Booking.FindByReference(ctx, reference)
	if err != nil || booking == nil {
		return nil, fmt.Errorf("booking %s not found", reference)
	}
	if booking.UserID != userID {
		return nil, fmt.Errorf("unauthorized to view this booking")
	}
	return s.buildBookingResponse(ctx, booking), nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	bookings, err := s.repo.Booking.FindByUserID(ctx, userID, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list bookings", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	total, err := s.repo.Booking.CountByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	bookingResponses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		bookingResponses[i] = *s.buildBookingResponse(ctx, booking)
	}

	return response.NewPaginatedResponse(bookingResponses, req.Page, req.PerPage, total), nil
}

func (s *bookingService) CancelBooking(ctx context.Context, userID uuid.UUID, bookingID string) (*response.BookingResponse, error) {
	booking, err := s.ownBooking(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.Status != entity.BookingStatusPending && booking.Status != entity.BookingStatusConfirmed {
		return nil, fmt.Errorf("cannot cancel booking with status %s", booking.Status)
	}

	if err := s.repo.Booking.UpdateStatus(ctx, booking.ID, entity.BookingStatusCancelled); err != nil {
		s.log.Error("Failed to cancel booking", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("cancel booking: %w", err)
	}
	booking.Status = entity.BookingStatusCancelled

	// Pending payments against a cancelled booking will be failed by the
	// gateway worker when they surface; nothing to unwind here.
	s.log.Info("Booking cancelled",
		zap.String("booking_id", bookingID),
		zap.String("user_id", userID.String()),
	)

	return s.buildBookingResponse(ctx, booking), nil
}

// ==================== HELPER METHODS ====================

func (s *bookingService) resolveStay(ctx context.Context, roomTypeID, checkInStr, checkOutStr string, guests int) (*entity.RoomType, time.Time, time.Time, error) {
	var zero time.Time

	id, err := uuid.Parse(roomTypeID)
	if err != nil {
		return nil, zero, zero, fmt.Errorf("invalid room type ID format %s: %w", roomTypeID, err)
	}

	roomType, err := s.repo.RoomType.FindByID(ctx, id)
	if err != nil || roomType == nil {
		return nil, zero, zero, fmt.Errorf("room type %s not found", roomTypeID)
	}
	if roomType.Status != entity.RoomStatusAvailable {
		return nil, zero, zero, fmt.Errorf("room type %s is not bookable", roomTypeID)
	}
	if guests > roomType.Capacity {
		return nil, zero, zero, fmt.Errorf("room type %s holds at most %d guests", roomTypeID, roomType.Capacity)
	}

	checkIn, err := utils.ParseDate(checkInStr)
	if err != nil {
		return nil, zero, zero, fmt.Errorf("invalid check-in date: %w", err)
	}
	checkOut, err := utils.ParseDate(checkOutStr)
	if err != nil {
		return nil, zero, zero, fmt.Errorf("invalid check-out date: %w", err)
	}
	if err := ValidateStay(checkIn, checkOut); err != nil {
		return nil, zero, zero, err
	}

	return roomType, checkIn, checkOut, nil
}

func (s *bookingService) ownBooking(ctx context.Context, userID uuid.UUID, bookingID string) (*entity.Booking, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil || booking == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}
	if booking.UserID != userID {
		return nil, fmt.Errorf("unauthorized to view this booking")
	}

	return booking, nil
}

func (s *bookingService) buildBookingResponse(ctx context.Context, booking *entity.Booking) *response.BookingResponse {
	resp := response.BookingToResponse(booking)

	if hotel, err := s.repo.Hotel.FindByID(ctx, booking.HotelID); err == nil && hotel != nil {
		resp.HotelName = hotel.Name
	}
	if roomType, err := s.repo.RoomType.FindByID(ctx, booking.RoomTypeID); err == nil && roomType != nil {
		resp.RoomTypeName = roomType.Name
	}

	// Attach the most recent payment so clients can resume an interrupted flow.
	if payments, err := s.repo.Payment.FindByBookingID(ctx, booking.ID); err == nil && len(payments) > 0 {
		latest := response.PaymentToResponse(payments[0])
		resp.Payment = &latest
	}

	return &resp
}
