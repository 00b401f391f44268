package adaptor

import (
	"encoding/json"
	"net/http"

	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

type CompareHandler struct {
	service usecase.CompareService
	log     *zap.Logger
}

func NewCompareHandler(service usecase.CompareService, log *zap.Logger) *CompareHandler {
	return &CompareHandler{
		service: service,
		log:     log,
	}
}

// ToggleCompare handles POST /api/compare/toggle
func (h *CompareHandler) ToggleCompare(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req request.ToggleCompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	response, err := h.service.ToggleCompare(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "toggle compare")
		return
	}

	utils.ResponseSuccess(w, "Comparison updated", response)
}

// GetComparison handles GET /api/compare
func (h *CompareHandler) GetComparison(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	response, err := h.service.GetComparison(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "get comparison")
		return
	}

	utils.ResponseSuccess(w, "Comparison retrieved", response)
}

// ClearComparison handles DELETE /api/compare
func (h *CompareHandler) ClearComparison(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	if err := h.service.ClearComparison(r.Context(), userID); err != nil {
		handleServiceError(w, h.log, err, "clear comparison")
		return
	}

	utils.ResponseSuccess(w, "Comparison cleared", nil)
}
