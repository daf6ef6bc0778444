package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"referral-backend/internal/models"
	"referral-backend/internal/services"
	"referral-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type PropertyManagerHandler struct {
	Service *services.PropertyManagerService
}

func NewPropertyManagerHandler(s *services.PropertyManagerService) *PropertyManagerHandler {
	return &PropertyManagerHandler{Service: s}
}

func (h *PropertyManagerHandler) ListPropertyManagers(w http.ResponseWriter, r *http.Request) {
	managers, err := h.Service.List(context.Background())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.JSON(w, http.StatusOK, managers)
}

func (h *PropertyManagerHandler) GetPropertyManager(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, _ := strconv.Atoi(idStr)

	manager, err := h.Service.Get(context.Background(), id)
	if err != nil {
		http.Error(w, "Property manager not found", http.StatusNotFound)
		return
	}

	utils.JSON(w, http.StatusOK, manager)
}

func (h *PropertyManagerHandler) CreatePropertyManager(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePropertyManagerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Name == "" || req.Address == "" {
		http.Error(w, "name and address are required", http.StatusBadRequest)
		return
	}

	manager, err := h.Service.Create(context.Background(), &req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.JSON(w, http.StatusCreated, manager)
}

func (h *PropertyManagerHandler) UpdatePropertyManager(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, _ := strconv.Atoi(idStr)

	var req models.UpdatePropertyManagerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	manager, err := h.Service.Update(context.Background(), id, &req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.JSON(w, http.StatusOK, manager)
}

func (h *PropertyManagerHandler) DeletePropertyManager(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, _ := strconv.Atoi(idStr)

	if err := h.Service.Delete(context.Background(), id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
