package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Abhishek-dev18/Water-Distribution-Management/internal/services"
	"github.com/Abhishek-dev18/Water-Distribution-Management/pkg/utils"
)

type PaymentHandler struct {
	Service *services.PaymentService
}

func NewPaymentHandler(s *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{Service: s}
}

type collectRequest struct {
	CustomerID string  `json:"customerId"`
	Date       string  `json:"date,omitempty"`
	Amount     float64 `json:"amount"`
}

// Collect adds a payment onto the customer's day record. Same-day
// collections stack.
func (h *PaymentHandler) Collect(w http.ResponseWriter, r *http.Request) {
	var req collectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	t, err := h.Service.Collect(r.Context(), req.CustomerID, req.Date, req.Amount)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	utils.JSON(w, http.StatusOK, t)
}

// Recent returns the latest payments joined with customer names.
func (h *PaymentHandler) Recent(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	records := h.Service.Recent(r.Context(), limit)
	if records == nil {
		records = []services.PaymentRecord{}
	}

	utils.JSON(w, http.StatusOK, records)
}
