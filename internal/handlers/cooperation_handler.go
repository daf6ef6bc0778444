package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"referral-backend/internal/models"
	"referral-backend/internal/services"
	"referral-backend/pkg/utils"
)

type CooperationHandler struct {
	Service *services.CooperationService
}

func NewCooperationHandler(s *services.CooperationService) *CooperationHandler {
	return &CooperationHandler{Service: s}
}

func (h *CooperationHandler) ListCooperations(w http.ResponseWriter, r *http.Request) {
	coops, err := h.Service.List(context.Background())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.JSON(w, http.StatusOK, coops)
}

// ToggleCooperation flips the link between a company and a property manager.
// The operation is idempotent per call pair: toggling twice restores the
// original state.
func (h *CooperationHandler) ToggleCooperation(w http.ResponseWriter, r *http.Request) {
	var req models.ToggleCooperationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.CompanyID == 0 || req.PropertyManagerID == 0 {
		http.Error(w, "company_id and property_manager_id are required", http.StatusBadRequest)
		return
	}

	if err := h.Service.Toggle(context.Background(), req.CompanyID, req.PropertyManagerID); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]bool{"success": true})
}
