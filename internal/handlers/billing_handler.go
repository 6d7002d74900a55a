package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Abhishek-dev18/Water-Distribution-Management/internal/services"
	"github.com/Abhishek-dev18/Water-Distribution-Management/internal/timeutil"

	"github.com/gorilla/mux"
)

type BillingHandler struct {
	Service *services.BillingService
}

func NewBillingHandler(s *services.BillingService) *BillingHandler {
	return &BillingHandler{Service: s}
}

func billingMonth(r *http.Request) (int, int) {
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))
	month, _ := strconv.Atoi(r.URL.Query().Get("month"))
	if year == 0 || month < 1 || month > 12 {
		now := timeutil.Now()
		return now.Year(), int(now.Month())
	}
	return year, month
}

// GetStatement returns the zero-filled month statement as JSON.
func (h *BillingHandler) GetStatement(w http.ResponseWriter, r *http.Request) {
	customerID := mux.Vars(r)["id"]
	year, month := billingMonth(r)

	statement, err := h.Service.Statement(r.Context(), customerID, year, month)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(statement)
}

// GetBillPDF streams the month bill as a PDF download.
func (h *BillingHandler) GetBillPDF(w http.ResponseWriter, r *http.Request) {
	customerID := mux.Vars(r)["id"]
	year, month := billingMonth(r)

	pdf, err := h.Service.BillPDF(r.Context(), customerID, year, month)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	filename := fmt.Sprintf("bill_%s_%s.pdf", customerID, services.FormatMonth(year, month))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.Write(pdf)
}

// GetBulkBills streams a ZIP of one bill per customer for the month,
// optionally narrowed to one area.
func (h *BillingHandler) GetBulkBills(w http.ResponseWriter, r *http.Request) {
	year, month := billingMonth(r)
	area := r.URL.Query().Get("area")

	data, err := h.Service.BulkBillsZip(r.Context(), year, month, area)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("bills_%s.zip", services.FormatMonth(year, month))
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.Write(data)
}

// GetCustomersCSV streams the customer balance sheet as CSV.
func (h *BillingHandler) GetCustomersCSV(w http.ResponseWriter, r *http.Request) {
	data, err := h.Service.CustomersCSV(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename=customers.csv")
	w.Write(data)
}
