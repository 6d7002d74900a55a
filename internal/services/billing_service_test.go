package services

import (
	"bytes"
	"context"
	"testing"

	"github.com/Abhishek-dev18/Water-Distribution-Management/internal/models"
	"github.com/Abhishek-dev18/Water-Distribution-Management/internal/repositories"
	"github.com/Abhishek-dev18/Water-Distribution-Management/internal/store"
)

func newBillingFixture() (*BillingService, *repositories.CustomerRepository, *repositories.TransactionRepository) {
	s := store.NewMemory()
	customers := repositories.NewCustomerRepository(s)
	transactions := repositories.NewTransactionRepository(s)
	settings := repositories.NewSettingsRepository(s)
	ledger := NewLedgerService(customers, transactions)
	return NewBillingService(customers, settings, ledger), customers, transactions
}

func TestStatementFillsEveryDay(t *testing.T) {
	svc, customers, transactions := newBillingFixture()
	ctx := context.Background()

	customers.Save(ctx, models.Customer{ID: "c1", Name: "Ramesh", RateJar: 20, RateThermos: 10})
	transactions.Upsert(ctx, models.TransactionUpsert{
		CustomerID:    "c1",
		Date:          "2025-04-05",
		JarsDelivered: intPtr(3),
	})
	transactions.Upsert(ctx, models.TransactionUpsert{
		CustomerID:    "c1",
		Date:          "2025-04-20",
		JarsDelivered: intPtr(2),
		PaymentAmount: floatPtr(60),
	})

	st, err := svc.Statement(ctx, "c1", 2025, 4)
	if err != nil {
		t.Fatalf("statement failed: %v", err)
	}

	if len(st.Days) != 30 {
		t.Fatalf("april statement has %d rows, want 30", len(st.Days))
	}
	zeroDays := 0
	for _, d := range st.Days {
		if d == (StatementDay{Date: d.Date}) {
			zeroDays++
		}
	}
	if zeroDays != 28 {
		t.Errorf("zero-filled days = %d, want 28", zeroDays)
	}

	if st.Days[4].JarsDelivered != 3 || st.Days[19].JarsDelivered != 2 {
		t.Errorf("transaction days misplaced: day5=%+v day20=%+v", st.Days[4], st.Days[19])
	}
	if st.TotalJars != 5 || st.TotalAmount != 100 || st.TotalPaid != 60 {
		t.Errorf("totals = jars %d amount %v paid %v", st.TotalJars, st.TotalAmount, st.TotalPaid)
	}
	if st.NetDue != 40 {
		t.Errorf("net due = %v, want 40", st.NetDue)
	}
}

func TestStatementUnknownCustomer(t *testing.T) {
	svc, _, _ := newBillingFixture()

	if _, err := svc.Statement(context.Background(), "ghost", 2025, 4); err == nil {
		t.Fatal("expected error for unknown customer")
	}
}

func TestBillPDFRenders(t *testing.T) {
	svc, customers, transactions := newBillingFixture()
	ctx := context.Background()

	customers.Save(ctx, models.Customer{ID: "c1", Name: "Ramesh", Area: "North", RateJar: 20})
	transactions.Upsert(ctx, models.TransactionUpsert{
		CustomerID:    "c1",
		Date:          "2025-04-05",
		JarsDelivered: intPtr(3),
	})

	pdf, err := svc.BillPDF(ctx, "c1", 2025, 4)
	if err != nil {
		t.Fatalf("pdf failed: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Errorf("output does not look like a pdf, first bytes: %q", pdf[:minInt(8, len(pdf))])
	}
}

func TestSheetPDFRenders(t *testing.T) {
	s := store.NewMemory()
	customers := repositories.NewCustomerRepository(s)
	transactions := repositories.NewTransactionRepository(s)
	settings := repositories.NewSettingsRepository(s)
	ledger := NewLedgerService(customers, transactions)
	billing := NewBillingService(customers, settings, ledger)
	supply := NewSupplyService(customers, transactions, ledger)
	ctx := context.Background()

	customers.Save(ctx, models.Customer{ID: "c1", Name: "Ramesh", Area: "North", RateJar: 20})

	sheet, err := supply.Load(ctx, "2025-04-05", "")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	pdf, err := billing.SheetPDF(ctx, sheet)
	if err != nil {
		t.Fatalf("sheet pdf failed: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Error("output does not look like a pdf")
	}
}

func TestCustomersCSVIncludesBalances(t *testing.T) {
	svc, customers, transactions := newBillingFixture()
	ctx := context.Background()

	customers.Save(ctx, models.Customer{ID: "c1", Name: "Ramesh", Area: "North", RateJar: 20})
	transactions.Upsert(ctx, models.TransactionUpsert{
		CustomerID:    "c1",
		Date:          "2025-04-05",
		JarsDelivered: intPtr(3),
	})

	out, err := svc.CustomersCSV(ctx)
	if err != nil {
		t.Fatalf("csv failed: %v", err)
	}
	if !bytes.Contains(out, []byte("Ramesh")) {
		t.Errorf("csv missing customer row: %s", out)
	}
	if !bytes.Contains(out, []byte("DUE")) {
		t.Errorf("csv missing due status: %s", out)
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
