package services

import (
	"context"
	"errors"

	"github.com/Abhishek-dev18/Water-Distribution-Management/internal/models"
	"github.com/Abhishek-dev18/Water-Distribution-Management/internal/repositories"
)

// SupplyService drives the daily supply sheet: one editable row per
// customer for a chosen date, with live balance projections while edits
// are still unsaved.
type SupplyService struct {
	CustomerRepo    *repositories.CustomerRepository
	TransactionRepo *repositories.TransactionRepository
	Ledger          *LedgerService
}

func NewSupplyService(customerRepo *repositories.CustomerRepository, transactionRepo *repositories.TransactionRepository, ledger *LedgerService) *SupplyService {
	return &SupplyService{
		CustomerRepo:    customerRepo,
		TransactionRepo: transactionRepo,
		Ledger:          ledger,
	}
}

// SheetRow pairs a customer with that day's transaction in three forms:
// Baseline stats and Original record captured once at load time, and Draft
// holding the unsaved edits. Correct projections depend on Baseline never
// being refreshed mid-edit.
type SheetRow struct {
	Customer models.Customer      `json:"customer"`
	Baseline models.CustomerStats `json:"baseline"`
	Original models.Transaction   `json:"original"`
	Draft    models.Transaction   `json:"draft"`
}

// SupplySheet is one day's sheet, optionally narrowed to an area.
type SupplySheet struct {
	Date string     `json:"date"`
	Area string     `json:"area,omitempty"`
	Rows []SheetRow `json:"rows"`
}

// SheetTotals is the footer: raw draft sums plus projected balance sums.
// Projected figures come from projecting every row and summing, never from
// summing raw deltas, so the footer and the rows cannot disagree.
type SheetTotals struct {
	JarsDelivered    int     `json:"jarsDelivered"`
	JarsReturned     int     `json:"jarsReturned"`
	ThermosDelivered int     `json:"thermosDelivered"`
	ThermosReturned  int     `json:"thermosReturned"`
	PaymentAmount    float64 `json:"paymentAmount"`
	JarBalance       int     `json:"jarBalance"`
	ThermosBalance   int     `json:"thermosBalance"`
	TotalDue         float64 `json:"totalDue"`
}

// Load builds the sheet for a date. Each row's baseline stats and original
// record are snapshotted here; the draft starts as a copy of the original
// (or a zero-valued stand-in when the day has no record yet).
func (s *SupplyService) Load(ctx context.Context, date, area string) (*SupplySheet, error) {
	if date == "" {
		return nil, errors.New("sheet date is required")
	}

	sheet := &SupplySheet{Date: date, Area: area}
	allStats := s.Ledger.ComputeAllStats(ctx)

	for _, c := range s.CustomerRepo.List(ctx) {
		if area != "" && c.Area != area {
			continue
		}

		original, found := s.TransactionRepo.FindByCustomerAndDate(ctx, c.ID, date)
		if !found {
			original = models.Transaction{CustomerID: c.ID, Date: date}
		}

		sheet.Rows = append(sheet.Rows, SheetRow{
			Customer: c,
			Baseline: allStats[c.ID],
			Original: original,
			Draft:    original,
		})
	}
	return sheet, nil
}

// Project applies the draft-minus-original delta on top of the baseline.
// O(1) per row instead of refolding the whole history on every keystroke.
func Project(row SheetRow) models.CustomerStats {
	c := row.Customer
	draft, original := row.Draft, row.Original

	jarDiff := (draft.JarsDelivered - draft.JarsReturned) -
		(original.JarsDelivered - original.JarsReturned)
	thermosDiff := (draft.ThermosDelivered - draft.ThermosReturned) -
		(original.ThermosDelivered - original.ThermosReturned)
	costDiff := models.DailyCost(draft, c) - models.DailyCost(original, c)
	payDiff := draft.PaymentAmount - original.PaymentAmount

	return models.CustomerStats{
		CurrentJarBalance:     row.Baseline.CurrentJarBalance + jarDiff,
		CurrentThermosBalance: row.Baseline.CurrentThermosBalance + thermosDiff,
		TotalDue:              row.Baseline.TotalDue + (costDiff - payDiff),
	}
}

// Totals projects every row and sums the results together with the raw
// draft entry sums.
func Totals(sheet *SupplySheet) SheetTotals {
	var t SheetTotals
	for _, row := range sheet.Rows {
		t.JarsDelivered += row.Draft.JarsDelivered
		t.JarsReturned += row.Draft.JarsReturned
		t.ThermosDelivered += row.Draft.ThermosDelivered
		t.ThermosReturned += row.Draft.ThermosReturned
		t.PaymentAmount += row.Draft.PaymentAmount

		projected := Project(row)
		t.JarBalance += projected.CurrentJarBalance
		t.ThermosBalance += projected.CurrentThermosBalance
		t.TotalDue += projected.TotalDue
	}
	return t
}

// ApplyEdit replaces the draft for one customer row and returns the row's
// new projection. Unknown customers project to zeroed stats.
func (s *SupplyService) ApplyEdit(sheet *SupplySheet, draft models.Transaction) models.CustomerStats {
	for i := range sheet.Rows {
		if sheet.Rows[i].Customer.ID == draft.CustomerID {
			draft.Date = sheet.Date
			draft.ID = sheet.Rows[i].Original.ID
			sheet.Rows[i].Draft = draft
			return Project(sheet.Rows[i])
		}
	}
	return models.CustomerStats{}
}

// Save persists each dirty row's draft as an individual upsert, then
// reloads the sheet so baselines and originals re-sync with storage. Rows
// that were never edited and have no stored record are skipped, so saving
// a sheet does not mint zero transactions for every untouched customer.
func (s *SupplyService) Save(ctx context.Context, sheet *SupplySheet) (*SupplySheet, error) {
	for _, row := range sheet.Rows {
		if row.Original.ID == "" && row.Draft == row.Original {
			continue
		}
		d := row.Draft
		s.TransactionRepo.Upsert(ctx, models.TransactionUpsert{
			CustomerID:       row.Customer.ID,
			Date:             sheet.Date,
			JarsDelivered:    &d.JarsDelivered,
			JarsReturned:     &d.JarsReturned,
			ThermosDelivered: &d.ThermosDelivered,
			ThermosReturned:  &d.ThermosReturned,
			PaymentAmount:    &d.PaymentAmount,
		})
	}
	return s.Load(ctx, sheet.Date, sheet.Area)
}
