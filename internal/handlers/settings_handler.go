package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Abhishek-dev18/Water-Distribution-Management/internal/models"
	"github.com/Abhishek-dev18/Water-Distribution-Management/internal/repositories"
	"github.com/Abhishek-dev18/Water-Distribution-Management/pkg/utils"
)

type SettingsHandler struct {
	Repo *repositories.SettingsRepository
}

func NewSettingsHandler(repo *repositories.SettingsRepository) *SettingsHandler {
	return &SettingsHandler{Repo: repo}
}

func (h *SettingsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, h.Repo.Get(r.Context()))
}

// SaveSettings overwrites the singleton wholesale.
func (h *SettingsHandler) SaveSettings(w http.ResponseWriter, r *http.Request) {
	var req models.AppSettings
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	h.Repo.Save(r.Context(), req)

	utils.JSON(w, http.StatusOK, req)
}
