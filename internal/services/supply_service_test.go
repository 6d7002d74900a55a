package services

import (
	"context"
	"testing"

	"github.com/Abhishek-dev18/Water-Distribution-Management/internal/models"
	"github.com/Abhishek-dev18/Water-Distribution-Management/internal/repositories"
	"github.com/Abhishek-dev18/Water-Distribution-Management/internal/store"
)

func newSupplyFixture() (*SupplyService, *repositories.CustomerRepository, *repositories.TransactionRepository, *LedgerService) {
	s := store.NewMemory()
	customers := repositories.NewCustomerRepository(s)
	transactions := repositories.NewTransactionRepository(s)
	ledger := NewLedgerService(customers, transactions)
	return NewSupplyService(customers, transactions, ledger), customers, transactions, ledger
}

func TestSheetLoadZeroDraftForNewDay(t *testing.T) {
	svc, customers, _, _ := newSupplyFixture()
	ctx := context.Background()

	customers.Save(ctx, models.Customer{ID: "c1", Name: "Ramesh", Area: "North", RateJar: 20})

	sheet, err := svc.Load(ctx, "2025-03-10", "")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(sheet.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(sheet.Rows))
	}
	row := sheet.Rows[0]
	if row.Draft != (models.Transaction{CustomerID: "c1", Date: "2025-03-10"}) {
		t.Errorf("fresh draft = %+v, want zero stand-in", row.Draft)
	}
}

func TestSheetLoadFiltersByArea(t *testing.T) {
	svc, customers, _, _ := newSupplyFixture()
	ctx := context.Background()

	customers.Save(ctx, models.Customer{ID: "c1", Name: "A", Area: "North", RateJar: 20})
	customers.Save(ctx, models.Customer{ID: "c2", Name: "B", Area: "South", RateJar: 20})

	sheet, err := svc.Load(ctx, "2025-03-10", "South")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(sheet.Rows) != 1 || sheet.Rows[0].Customer.ID != "c2" {
		t.Fatalf("area filter wrong, rows: %+v", sheet.Rows)
	}
}

// Projection over the snapshot must agree with a full refold of the history
// with the day's record swapped for the draft.
func TestProjectionMatchesFullRecompute(t *testing.T) {
	svc, customers, transactions, _ := newSupplyFixture()
	ctx := context.Background()

	c := models.Customer{ID: "c1", Name: "Ramesh", Area: "North", RateJar: 20, RateThermos: 10}
	customers.Save(ctx, c)
	transactions.Upsert(ctx, models.TransactionUpsert{
		CustomerID:    "c1",
		Date:          "2025-03-01",
		JarsDelivered: intPtr(5),
		PaymentAmount: floatPtr(50),
	})
	transactions.Upsert(ctx, models.TransactionUpsert{
		CustomerID:       "c1",
		Date:             "2025-03-10",
		JarsDelivered:    intPtr(2),
		ThermosDelivered: intPtr(1),
	})

	sheet, err := svc.Load(ctx, "2025-03-10", "")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	draft := models.Transaction{
		CustomerID:       "c1",
		Date:             "2025-03-10",
		JarsDelivered:    4,
		JarsReturned:     1,
		ThermosDelivered: 2,
		PaymentAmount:    100,
	}
	projected := svc.ApplyEdit(sheet, draft)

	history := []models.Transaction{
		{CustomerID: "c1", Date: "2025-03-01", JarsDelivered: 5, PaymentAmount: 50},
		draft,
	}
	want := foldStats(history, c)
	if projected != want {
		t.Errorf("projection = %+v, full recompute = %+v", projected, want)
	}

	totals := Totals(sheet)
	if totals.JarBalance != want.CurrentJarBalance || totals.TotalDue != want.TotalDue {
		t.Errorf("totals %+v disagree with projection %+v", totals, want)
	}
}

func TestSheetSavePersistsDrafts(t *testing.T) {
	svc, customers, transactions, ledger := newSupplyFixture()
	ctx := context.Background()

	customers.Save(ctx, models.Customer{ID: "c1", Name: "Ramesh", Area: "North", RateJar: 20})

	sheet, err := svc.Load(ctx, "2025-03-10", "")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	svc.ApplyEdit(sheet, models.Transaction{CustomerID: "c1", JarsDelivered: 3, PaymentAmount: 40})

	reloaded, err := svc.Save(ctx, sheet)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	stored, found := transactions.FindByCustomerAndDate(ctx, "c1", "2025-03-10")
	if !found {
		t.Fatal("saved draft not persisted")
	}
	if stored.JarsDelivered != 3 || stored.PaymentAmount != 40 {
		t.Errorf("persisted record = %+v", stored)
	}

	row := reloaded.Rows[0]
	if row.Original.JarsDelivered != 3 {
		t.Errorf("reloaded original = %+v, want synced with storage", row.Original)
	}
	if row.Baseline != ledger.ComputeStats(ctx, "c1") {
		t.Errorf("reloaded baseline = %+v, want fresh fold", row.Baseline)
	}
}

func TestSheetSaveSkipsUntouchedRows(t *testing.T) {
	svc, customers, transactions, _ := newSupplyFixture()
	ctx := context.Background()

	customers.Save(ctx, models.Customer{ID: "c1", Name: "Ramesh", Area: "North", RateJar: 20})
	customers.Save(ctx, models.Customer{ID: "c2", Name: "Suresh", Area: "North", RateJar: 20})
	transactions.Upsert(ctx, models.TransactionUpsert{CustomerID: "c3", Date: "2025-03-09"})

	sheet, err := svc.Load(ctx, "2025-03-10", "")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	svc.ApplyEdit(sheet, models.Transaction{CustomerID: "c1", JarsDelivered: 2})

	if _, err := svc.Save(ctx, sheet); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if _, found := transactions.FindByCustomerAndDate(ctx, "c1", "2025-03-10"); !found {
		t.Fatal("edited row not persisted")
	}
	if _, found := transactions.FindByCustomerAndDate(ctx, "c2", "2025-03-10"); found {
		t.Error("untouched customer gained a zero transaction")
	}
	if got := len(transactions.List(ctx)); got != 2 {
		t.Errorf("transaction count = %d, want 2", got)
	}
}

func TestApplyEditUnknownCustomer(t *testing.T) {
	svc, customers, _, _ := newSupplyFixture()
	ctx := context.Background()

	customers.Save(ctx, models.Customer{ID: "c1", Name: "Ramesh", Area: "North", RateJar: 20})
	sheet, _ := svc.Load(ctx, "2025-03-10", "")

	got := svc.ApplyEdit(sheet, models.Transaction{CustomerID: "ghost", JarsDelivered: 9})
	if got != (models.CustomerStats{}) {
		t.Errorf("unknown customer projection = %+v, want zero", got)
	}
}
