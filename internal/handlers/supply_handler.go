package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/Abhishek-dev18/Water-Distribution-Management/internal/models"
	"github.com/Abhishek-dev18/Water-Distribution-Management/internal/services"

	"github.com/gorilla/websocket"
)

type SupplyHandler struct {
	Service *services.SupplyService
	Billing *services.BillingService

	upgrader websocket.Upgrader
}

func NewSupplyHandler(s *services.SupplyService, billing *services.BillingService) *SupplyHandler {
	return &SupplyHandler{
		Service: s,
		Billing: billing,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// sheetView is a sheet plus its per-row projections and footer totals.
type sheetView struct {
	Sheet       *services.SupplySheet           `json:"sheet"`
	Projections map[string]models.CustomerStats `json:"projections"`
	Totals      services.SheetTotals            `json:"totals"`
}

func buildView(sheet *services.SupplySheet) sheetView {
	view := sheetView{
		Sheet:       sheet,
		Projections: make(map[string]models.CustomerStats, len(sheet.Rows)),
	}
	for _, row := range sheet.Rows {
		view.Projections[row.Customer.ID] = services.Project(row)
	}
	view.Totals = services.Totals(sheet)
	return view
}

// GetSheet loads a fresh sheet for a date (optionally one area).
func (h *SupplyHandler) GetSheet(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	area := r.URL.Query().Get("area")

	sheet, err := h.Service.Load(r.Context(), date, area)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(buildView(sheet))
}

// SaveSheet persists a submitted sheet: every row is upserted, then the
// reloaded sheet comes back with baselines re-synced.
func (h *SupplyHandler) SaveSheet(w http.ResponseWriter, r *http.Request) {
	var sheet services.SupplySheet
	if err := json.NewDecoder(r.Body).Decode(&sheet); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if sheet.Date == "" {
		http.Error(w, "sheet date is required", http.StatusBadRequest)
		return
	}

	reloaded, err := h.Service.Save(r.Context(), &sheet)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(buildView(reloaded))
}

// GetSheetPDF renders the day's sheet as a printable PDF.
func (h *SupplyHandler) GetSheetPDF(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	area := r.URL.Query().Get("area")

	sheet, err := h.Service.Load(r.Context(), date, area)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	pdf, err := h.Billing.SheetPDF(r.Context(), sheet)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=supply_sheet_%s.pdf", date))
	w.Write(pdf)
}

// sheetMessage is one client message on the live sheet socket.
type sheetMessage struct {
	Action string             `json:"action"` // "edit" or "save"
	Draft  models.Transaction `json:"draft,omitempty"`
}

// sheetUpdate is pushed back after every edit: the touched row's new
// projection plus refreshed footer totals.
type sheetUpdate struct {
	Type       string               `json:"type"`
	CustomerID string               `json:"customerId,omitempty"`
	Projected  models.CustomerStats `json:"projected"`
	Totals     services.SheetTotals `json:"totals"`
}

// LiveSheet serves the editing session over a websocket. The sheet is
// loaded once at connect, baselines included, and lives server-side for
// the life of the connection; edits project against that snapshot and a
// save writes through and re-syncs it.
func (h *SupplyHandler) LiveSheet(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	area := r.URL.Query().Get("area")

	sheet, err := h.Service.Load(r.Context(), date, area)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[Supply] Websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	if err := conn.WriteJSON(map[string]interface{}{"type": "sheet", "view": buildView(sheet)}); err != nil {
		return
	}

	for {
		var msg sheetMessage
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}

		switch msg.Action {
		case "edit":
			projected := h.Service.ApplyEdit(sheet, msg.Draft)
			update := sheetUpdate{
				Type:       "projection",
				CustomerID: msg.Draft.CustomerID,
				Projected:  projected,
				Totals:     services.Totals(sheet),
			}
			if err := conn.WriteJSON(update); err != nil {
				return
			}
		case "save":
			reloaded, err := h.Service.Save(r.Context(), sheet)
			if err != nil {
				conn.WriteJSON(map[string]string{"type": "error", "message": err.Error()})
				continue
			}
			sheet = reloaded
			if err := conn.WriteJSON(map[string]interface{}{"type": "sheet", "view": buildView(sheet)}); err != nil {
				return
			}
		default:
			conn.WriteJSON(map[string]string{"type": "error", "message": "unknown action"})
		}
	}
}
