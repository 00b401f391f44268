package adaptor

import (
	"encoding/json"
	"net/http"

	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type RoomHandler struct {
	service usecase.RoomService
	log     *zap.Logger
}

func NewRoomHandler(service usecase.RoomService, log *zap.Logger) *RoomHandler {
	return &RoomHandler{
		service: service,
		log:     log,
	}
}

// ListRoomTypes handles GET /api/hotels/{id}/rooms
func (h *RoomHandler) ListRoomTypes(w http.ResponseWriter, r *http.Request) {
	response, err := h.service.ListRoomTypes(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "list room types")
		return
	}

	utils.ResponseSuccess(w, "Room types retrieved", response)
}

// GetRoomType handles GET /api/rooms/{id}
func (h *RoomHandler) GetRoomType(w http.ResponseWriter, r *http.Request) {
	response, err := h.service.GetRoomType(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get room type")
		return
	}

	utils.ResponseSuccess(w, "Room type retrieved", response)
}

// CheckAvailability handles GET /api/hotels/{id}/availability
func (h *RoomHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := request.AvailabilityRequest{
		CheckIn:  q.Get("check_in"),
		CheckOut: q.Get("check_out"),
		Guests:   utils.ParseInt(q.Get("guests"), 1),
	}

	response, err := h.service.CheckAvailability(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "check availability")
		return
	}

	utils.ResponseSuccess(w, "Availability retrieved", response)
}

// ==================== OWNER METHODS ====================

// CreateRoomType handles POST /api/owner/hotels/{id}/rooms
func (h *RoomHandler) CreateRoomType(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req request.CreateRoomTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	response, err := h.service.CreateRoomType(r.Context(), userID, chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create room type")
		return
	}

	utils.ResponseCreated(w, "Room type created", response)
}

// UpdateRoomType handles PUT /api/owner/rooms/{id}
func (h *RoomHandler) UpdateRoomType(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req request.UpdateRoomTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	response, err := h.service.UpdateRoomType(r.Context(), userID, chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update room type")
		return
	}

	utils.ResponseSuccess(w, "Room type updated", response)
}

// DeleteRoomType handles DELETE /api/owner/rooms/{id}
func (h *RoomHandler) DeleteRoomType(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteRoomType(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete room type")
		return
	}

	utils.ResponseSuccess(w, "Room type deleted", nil)
}
