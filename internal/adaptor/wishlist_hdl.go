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

type WishlistHandler struct {
	service usecase.WishlistService
	log     *zap.Logger
}

func NewWishlistHandler(service usecase.WishlistService, log *zap.Logger) *WishlistHandler {
	return &WishlistHandler{
		service: service,
		log:     log,
	}
}

// GetWishlist handles GET /api/wishlist
func (h *WishlistHandler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	response, err := h.service.GetWishlist(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "get wishlist")
		return
	}

	utils.ResponseSuccess(w, "Wishlist retrieved", response)
}

// AddToWishlist handles POST /api/wishlist
func (h *WishlistHandler) AddToWishlist(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req request.AddWishlistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	response, err := h.service.AddToWishlist(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "add to wishlist")
		return
	}

	utils.ResponseCreated(w, "Hotel saved to wishlist", response)
}

// RemoveFromWishlist handles DELETE /api/wishlist/{hotelID}
func (h *WishlistHandler) RemoveFromWishlist(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	if err := h.service.RemoveFromWishlist(r.Context(), userID, chi.URLParam(r, "hotelID")); err != nil {
		handleServiceError(w, h.log, err, "remove from wishlist")
		return
	}

	utils.ResponseSuccess(w, "Hotel removed from wishlist", nil)
}
