package adaptor

import (
	"net/http"
	"strings"

	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Handler struct {
	Auth     *AuthHandler
	User     *UserHandler
	Hotel    *HotelHandler
	Room     *RoomHandler
	Booking  *BookingHandler
	Payment  *PaymentHandler
	Wishlist *WishlistHandler
	Compare  *CompareHandler
	Admin    *AdminHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, log),
		User:     NewUserHandler(service.User, log),
		Hotel:    NewHotelHandler(service.Hotel, log),
		Room:     NewRoomHandler(service.Room, log),
		Booking:  NewBookingHandler(service.Booking, log),
		Payment:  NewPaymentHandler(service.Payment, log),
		Wishlist: NewWishlistHandler(service.Wishlist, log),
		Compare:  NewCompareHandler(service.Compare, log),
		Admin:    NewAdminHandler(service.Admin, log),
	}
}

// handleServiceError maps service errors to HTTP responses by message. All
// services phrase their errors with these markers on purpose.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "already registered"),
		strings.Contains(errMsg, "already taken"),
		strings.Contains(errMsg, "already paid"):
		log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseConflict(w, errMsg)

	case strings.Contains(errMsg, "invalid credentials"),
		strings.Contains(errMsg, "incorrect"):
		log.Warn(operation+" failed - invalid credentials", zap.Error(err))
		utils.ResponseUnauthorized(w, errMsg)

	case strings.Contains(errMsg, "unauthorized"):
		log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, errMsg)

	case strings.Contains(errMsg, "deactivated"):
		log.Warn(operation+" failed - account deactivated", zap.Error(err))
		utils.ResponseForbidden(w, errMsg)

	case strings.Contains(errMsg, "cannot"),
		strings.Contains(errMsg, "not available"),
		strings.Contains(errMsg, "not bookable"),
		strings.Contains(errMsg, "not accepting"),
		strings.Contains(errMsg, "is limited"):
		log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseConflict(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid"):
		log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		log.Error(operation+" failed", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

// parsePagination reads page/per_page query params with sane defaults.
func parsePagination(r *http.Request) request.PaginatedRequest {
	return request.PaginatedRequest{
		Page:    utils.ParseInt(r.URL.Query().Get("page"), 1),
		PerPage: utils.ParseInt(r.URL.Query().Get("per_page"), 10),
	}
}

// requireUserID pulls the authenticated user from the request context set by
// the auth middleware. A miss means the route was wired without it.
func requireUserID(w http.ResponseWriter, r *http.Request) (userID uuid.UUID, ok bool) {
	userID, ok = utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
	}
	return userID, ok
}
