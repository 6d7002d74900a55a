package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Abhishek-dev18/Water-Distribution-Management/internal/models"
	"github.com/Abhishek-dev18/Water-Distribution-Management/internal/services"

	"github.com/gorilla/mux"
)

type CustomerHandler struct {
	Service *services.CustomerService
	Ledger  *services.LedgerService
}

func NewCustomerHandler(s *services.CustomerService, ledger *services.LedgerService) *CustomerHandler {
	return &CustomerHandler{Service: s, Ledger: ledger}
}

func (h *CustomerHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	customers := h.Service.Repo.List(r.Context())
	if customers == nil {
		customers = []models.Customer{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(customers)
}

func (h *CustomerHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	customer, ok := h.Service.Repo.Get(r.Context(), id)
	if !ok {
		http.Error(w, "Customer not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(customer)
}

func (h *CustomerHandler) SaveCustomer(w http.ResponseWriter, r *http.Request) {
	var req models.Customer
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	customer, err := h.Service.Save(r.Context(), req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(customer)
}

func (h *CustomerHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	h.Service.Delete(r.Context(), id)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"deleted": true})
}

// BulkSeed inserts a batch of fully-formed customers in one write.
func (h *CustomerHandler) BulkSeed(w http.ResponseWriter, r *http.Request) {
	var batch []models.Customer
	if err := json.NewDecoder(r.Body).Decode(&batch); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	h.Service.BulkSeed(r.Context(), batch)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]int{"inserted": len(batch)})
}

// NextID previews the month-sequence id for a reference date.
func (h *CustomerHandler) NextID(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		http.Error(w, "date parameter is required", http.StatusBadRequest)
		return
	}

	id := h.Service.GenerateNextID(r.Context(), date)
	if id == "" {
		http.Error(w, "Invalid date", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"id": id})
}

// GetStats returns the customer's computed balances.
func (h *CustomerHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	stats := h.Ledger.ComputeStats(r.Context(), id)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}
