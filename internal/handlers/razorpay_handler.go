package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Abhishek-dev18/Water-Distribution-Management/internal/services"
)

type RazorpayHandler struct {
	Service *services.RazorpayService
}

func NewRazorpayHandler(s *services.RazorpayService) *RazorpayHandler {
	return &RazorpayHandler{Service: s}
}

func (h *RazorpayHandler) Status(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"enabled": h.Service.IsEnabled()})
}

type createOrderRequest struct {
	CustomerID string `json:"customerId"`
}

// CreateOrder opens an order for the customer's outstanding due.
func (h *RazorpayHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	order, err := h.Service.CreateOrder(r.Context(), req.CustomerID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(order)
}

type verifyRequest struct {
	CustomerID string  `json:"customerId"`
	OrderID    string  `json:"orderId"`
	PaymentID  string  `json:"paymentId"`
	Signature  string  `json:"signature"`
	Amount     float64 `json:"amount"`
}

// VerifyPayment checks the checkout signature and records the payment.
func (h *RazorpayHandler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	var req verifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Service.VerifyAndRecord(r.Context(), req.CustomerID, req.OrderID, req.PaymentID, req.Signature, req.Amount); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"verified": true})
}
