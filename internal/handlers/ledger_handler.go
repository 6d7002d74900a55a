package handlers

import (
	"net/http"

	"github.com/Abhishek-dev18/Water-Distribution-Management/internal/metrics"
	"github.com/Abhishek-dev18/Water-Distribution-Management/internal/services"
	"github.com/Abhishek-dev18/Water-Distribution-Management/pkg/utils"
)

type LedgerHandler struct {
	Service *services.LedgerService
}

func NewLedgerHandler(s *services.LedgerService) *LedgerHandler {
	return &LedgerHandler{Service: s}
}

// AllStats returns every customer's computed balances keyed by id.
func (h *LedgerHandler) AllStats(w http.ResponseWriter, r *http.Request) {
	stats := h.Service.ComputeAllStats(r.Context())
	metrics.LedgerRecomputeTotal.Inc()

	utils.JSON(w, http.StatusOK, stats)
}

func (h *LedgerHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	snap := h.Service.Dashboard(r.Context())
	metrics.LedgerRecomputeTotal.Inc()

	utils.JSON(w, http.StatusOK, snap)
}

func (h *LedgerHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("period")
	area := r.URL.Query().Get("area")

	utils.JSON(w, http.StatusOK, h.Service.Analytics(r.Context(), period, area))
}
