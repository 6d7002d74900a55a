package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Abhishek-dev18/Water-Distribution-Management/internal/services"
	"github.com/Abhishek-dev18/Water-Distribution-Management/pkg/utils"
)

type TransliterateHandler struct {
	Service *services.TransliterateService
}

func NewTransliterateHandler(s *services.TransliterateService) *TransliterateHandler {
	return &TransliterateHandler{Service: s}
}

type transliterateRequest struct {
	Text string `json:"text"`
}

// Transliterate returns the Hindi rendering of the text, or the text
// unchanged when the upstream call fails.
func (h *TransliterateHandler) Transliterate(w http.ResponseWriter, r *http.Request) {
	var req transliterateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result := h.Service.Transliterate(r.Context(), req.Text)

	utils.JSON(w, http.StatusOK, map[string]string{"result": result})
}
