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

type HotelHandler struct {
	service usecase.HotelService
	log     *zap.Logger
}

func NewHotelHandler(service usecase.HotelService, log *zap.Logger) *HotelHandler {
	return &HotelHandler{
		service: service,
		log:     log,
	}
}

// ListHotels handles GET /api/hotels
func (h *HotelHandler) ListHotels(w http.ResponseWriter, r *http.Request) {
	req := hotelListRequest(r)

	response, err := h.service.ListHotels(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "list hotels")
		return
	}

	utils.ResponseSuccess(w, "Hotels retrieved", response)
}

// GetHotel handles GET /api/hotels/{id}
func (h *HotelHandler) GetHotel(w http.ResponseWriter, r *http.Request) {
	hotelID := chi.URLParam(r, "id")

	response, err := h.service.GetHotelByID(r.Context(), hotelID)
	if err != nil {
		handleServiceError(w, h.log, err, "get hotel")
		return
	}

	utils.ResponseSuccess(w, "Hotel retrieved", response)
}

// GetHotelBySlug handles GET /api/hotels/slug/{slug}
func (h *HotelHandler) GetHotelBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	response, err := h.service.GetHotelBySlug(r.Context(), slug)
	if err != nil {
		handleServiceError(w, h.log, err, "get hotel")
		return
	}

	utils.ResponseSuccess(w, "Hotel retrieved", response)
}

// ==================== OWNER METHODS ====================

// CreateHotel handles POST /api/owner/hotels
func (h *HotelHandler) CreateHotel(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req request.CreateHotelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	response, err := h.service.CreateHotel(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create hotel")
		return
	}

	utils.ResponseCreated(w, "Hotel created, pending approval", response)
}

// UpdateHotel handles PUT /api/owner/hotels/{id}
func (h *HotelHandler) UpdateHotel(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req request.UpdateHotelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	response, err := h.service.UpdateHotel(r.Context(), userID, chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update hotel")
		return
	}

	utils.ResponseSuccess(w, "Hotel updated", response)
}

// DeleteHotel handles DELETE /api/owner/hotels/{id}
func (h *HotelHandler) DeleteHotel(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteHotel(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete hotel")
		return
	}

	utils.ResponseSuccess(w, "Hotel deleted", nil)
}

// SetHotelAddress handles PUT /api/owner/hotels/{id}/address
func (h *HotelHandler) SetHotelAddress(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req request.AddressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	response, err := h.service.SetHotelAddress(r.Context(), userID, chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "set hotel address")
		return
	}

	utils.ResponseSuccess(w, "Hotel address saved", response)
}

// ListOwnHotels handles GET /api/owner/hotels
func (h *HotelHandler) ListOwnHotels(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	req := parsePagination(r)
	response, err := h.service.ListOwnHotels(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "list own hotels")
		return
	}

	utils.ResponseSuccess(w, "Hotels retrieved", response)
}

func hotelListRequest(r *http.Request) request.HotelListRequest {
	q := r.URL.Query()
	return request.HotelListRequest{
		PaginatedRequest: parsePagination(r),
		City:             q.Get("city"),
		MinStars:         utils.ParseInt(q.Get("min_stars"), 0),
		Search:           q.Get("search"),
	}
}
