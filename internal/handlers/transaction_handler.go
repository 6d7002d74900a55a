package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Abhishek-dev18/Water-Distribution-Management/internal/models"
	"github.com/Abhishek-dev18/Water-Distribution-Management/internal/repositories"
	"github.com/Abhishek-dev18/Water-Distribution-Management/internal/services"
)

type TransactionHandler struct {
	Repo   *repositories.TransactionRepository
	Ledger *services.LedgerService
}

func NewTransactionHandler(repo *repositories.TransactionRepository, ledger *services.LedgerService) *TransactionHandler {
	return &TransactionHandler{Repo: repo, Ledger: ledger}
}

// ListTransactions returns the log, optionally narrowed by customerId
// and/or an exact date.
func (h *TransactionHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	customerID := r.URL.Query().Get("customerId")
	date := r.URL.Query().Get("date")

	var transactions []models.Transaction
	switch {
	case customerID != "":
		transactions = h.Repo.ListByCustomer(r.Context(), customerID)
	case date != "":
		transactions = h.Ledger.TransactionsOnDate(r.Context(), date)
	default:
		transactions = h.Repo.List(r.Context())
	}
	if transactions == nil {
		transactions = []models.Transaction{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(transactions)
}

// UpsertTransaction merges a partial day record into the (customer, date)
// slot.
func (h *TransactionHandler) UpsertTransaction(w http.ResponseWriter, r *http.Request) {
	var req models.TransactionUpsert
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.CustomerID == "" || req.Date == "" {
		http.Error(w, "customerId and date are required", http.StatusBadRequest)
		return
	}

	t := h.Repo.Upsert(r.Context(), req)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(t)
}

// MonthTransactions lists a customer's records for one calendar month.
func (h *TransactionHandler) MonthTransactions(w http.ResponseWriter, r *http.Request) {
	customerID := r.URL.Query().Get("customerId")
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))
	month, _ := strconv.Atoi(r.URL.Query().Get("month"))
	if customerID == "" || year == 0 || month < 1 || month > 12 {
		http.Error(w, "customerId, year and month are required", http.StatusBadRequest)
		return
	}

	transactions := h.Ledger.TransactionsForCustomerInMonth(r.Context(), customerID, year, month)
	if transactions == nil {
		transactions = []models.Transaction{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(transactions)
}
