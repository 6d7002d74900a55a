package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Abhishek-dev18/Water-Distribution-Management/internal/models"
	"github.com/Abhishek-dev18/Water-Distribution-Management/internal/services"

	"github.com/gorilla/mux"
)

type AreaHandler struct {
	Service *services.AreaService
}

func NewAreaHandler(s *services.AreaService) *AreaHandler {
	return &AreaHandler{Service: s}
}

func (h *AreaHandler) ListAreas(w http.ResponseWriter, r *http.Request) {
	areas := h.Service.List(r.Context())
	if areas == nil {
		areas = []models.Area{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(areas)
}

func (h *AreaHandler) SaveArea(w http.ResponseWriter, r *http.Request) {
	var req models.Area
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	area, err := h.Service.Save(r.Context(), req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(area)
}

func (h *AreaHandler) DeleteArea(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	h.Service.Delete(r.Context(), id)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"deleted": true})
}
