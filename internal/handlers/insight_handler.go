package handlers

import (
	"net/http"

	"github.com/Abhishek-dev18/Water-Distribution-Management/internal/services"
	"github.com/Abhishek-dev18/Water-Distribution-Management/pkg/utils"
)

type InsightHandler struct {
	Service *services.InsightService
}

func NewInsightHandler(s *services.InsightService) *InsightHandler {
	return &InsightHandler{Service: s}
}

// Generate returns an AI analysis of the current dataset. Always 200 with
// a readable string; failures come back as canned messages.
func (h *InsightHandler) Generate(w http.ResponseWriter, r *http.Request) {
	text := h.Service.Generate(r.Context())

	utils.JSON(w, http.StatusOK, map[string]string{"insights": text})
}
