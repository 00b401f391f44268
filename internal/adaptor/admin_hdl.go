package adaptor

import (
	"encoding/json"
	"net/http"

	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AdminHandler struct {
	service usecase.AdminService
	log     *zap.Logger
}

func NewAdminHandler(service usecase.AdminService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		log:     log,
	}
}

// ==================== USER MANAGEMENT ====================

// ListUsers handles GET /api/admin/users
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	req := parsePagination(r)

	response, err := h.service.GetAllUsers(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "list users")
		return
	}

	utils.ResponseSuccess(w, "Users retrieved", response)
}

// SetUserActive handles PUT /api/admin/users/{id}/active
func (h *AdminHandler) SetUserActive(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IsActive *bool `json:"is_active" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.IsActive == nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.SetUserActive(r.Context(), chi.URLParam(r, "id"), *req.IsActive); err != nil {
		handleServiceError(w, h.log, err, "set user active")
		return
	}

	utils.ResponseSuccess(w, "User updated", nil)
}

// SetUserRole handles PUT /api/admin/users/{id}/role
func (h *AdminHandler) SetUserRole(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Role string `json:"role" validate:"required,oneof=customer owner admin"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.SetUserRole(r.Context(), chi.URLParam(r, "id"), req.Role); err != nil {
		handleServiceError(w, h.log, err, "set user role")
		return
	}

	utils.ResponseSuccess(w, "User role updated", nil)
}

// ==================== HOTEL MANAGEMENT ====================

// ListHotels handles GET /api/admin/hotels. Unlike the public listing it
// shows every status; ?status= narrows it.
func (h *AdminHandler) ListHotels(w http.ResponseWriter, r *http.Request) {
	req := hotelListRequest(r)

	response, err := h.service.GetAllHotels(r.Context(), &req, r.URL.Query().Get("status"))
	if err != nil {
		handleServiceError(w, h.log, err, "list hotels")
		return
	}

	utils.ResponseSuccess(w, "Hotels retrieved", response)
}

// ApproveHotel handles POST /api/admin/hotels/{id}/approve
func (h *AdminHandler) ApproveHotel(w http.ResponseWriter, r *http.Request) {
	response, err := h.service.ApproveHotel(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "approve hotel")
		return
	}

	utils.ResponseSuccess(w, "Hotel approved", response)
}

// DeactivateHotel handles POST /api/admin/hotels/{id}/deactivate
func (h *AdminHandler) DeactivateHotel(w http.ResponseWriter, r *http.Request) {
	response, err := h.service.DeactivateHotel(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "deactivate hotel")
		return
	}

	utils.ResponseSuccess(w, "Hotel deactivated", response)
}

// ==================== BOOKING MANAGEMENT ====================

// ListBookings handles GET /api/admin/bookings
func (h *AdminHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	req := parsePagination(r)

	response, err := h.service.GetAllBookings(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "list bookings")
		return
	}

	utils.ResponseSuccess(w, "Bookings retrieved", response)
}

// GetBooking handles GET /api/admin/bookings/{id}
func (h *AdminHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	response, err := h.service.GetBookingDetail(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get booking")
		return
	}

	utils.ResponseSuccess(w, "Booking retrieved", response)
}

// CancelBooking handles POST /api/admin/bookings/{id}/cancel
func (h *AdminHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	response, err := h.service.CancelBooking(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "cancel booking")
		return
	}

	utils.ResponseSuccess(w, "Booking cancelled", response)
}

// ==================== DASHBOARD ====================

// GetStats handles GET /api/admin/stats
func (h *AdminHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	response, err := h.service.GetStats(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get stats")
		return
	}

	utils.ResponseSuccess(w, "Stats retrieved", response)
}
