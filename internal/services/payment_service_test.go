package services

import (
	"context"
	"testing"

	"github.com/Abhishek-dev18/Water-Distribution-Management/internal/models"
	"github.com/Abhishek-dev18/Water-Distribution-Management/internal/repositories"
	"github.com/Abhishek-dev18/Water-Distribution-Management/internal/store"
)

func newPaymentFixture() (*PaymentService, *repositories.CustomerRepository, *repositories.TransactionRepository) {
	s := store.NewMemory()
	customers := repositories.NewCustomerRepository(s)
	transactions := repositories.NewTransactionRepository(s)
	return NewPaymentService(customers, transactions), customers, transactions
}

func TestCollectStacksSameDatePayments(t *testing.T) {
	svc, customers, transactions := newPaymentFixture()
	ctx := context.Background()

	customers.Save(ctx, models.Customer{ID: "c1", Name: "Ramesh"})

	if _, err := svc.Collect(ctx, "c1", "2025-03-10", 50); err != nil {
		t.Fatalf("first collect failed: %v", err)
	}
	if _, err := svc.Collect(ctx, "c1", "2025-03-10", 30); err != nil {
		t.Fatalf("second collect failed: %v", err)
	}

	stored, found := transactions.FindByCustomerAndDate(ctx, "c1", "2025-03-10")
	if !found {
		t.Fatal("payment record missing")
	}
	if stored.PaymentAmount != 80 {
		t.Errorf("payment = %v, want 80 after stacking", stored.PaymentAmount)
	}
	if got := len(transactions.ListByCustomer(ctx, "c1")); got != 1 {
		t.Errorf("expected a single day record, got %d", got)
	}
}

func TestCollectPreservesDeliveryFields(t *testing.T) {
	svc, customers, transactions := newPaymentFixture()
	ctx := context.Background()

	customers.Save(ctx, models.Customer{ID: "c1", Name: "Ramesh"})
	transactions.Upsert(ctx, models.TransactionUpsert{
		CustomerID:    "c1",
		Date:          "2025-03-10",
		JarsDelivered: intPtr(4),
	})

	svc.Collect(ctx, "c1", "2025-03-10", 25)

	stored, _ := transactions.FindByCustomerAndDate(ctx, "c1", "2025-03-10")
	if stored.JarsDelivered != 4 || stored.PaymentAmount != 25 {
		t.Errorf("record after collect = %+v", stored)
	}
}

func TestCollectRejectsInvalidInput(t *testing.T) {
	svc, customers, _ := newPaymentFixture()
	ctx := context.Background()

	customers.Save(ctx, models.Customer{ID: "c1", Name: "Ramesh"})

	if _, err := svc.Collect(ctx, "c1", "2025-03-10", 0); err == nil {
		t.Error("expected error for zero amount")
	}
	if _, err := svc.Collect(ctx, "c1", "2025-03-10", -10); err == nil {
		t.Error("expected error for negative amount")
	}
	if _, err := svc.Collect(ctx, "ghost", "2025-03-10", 10); err == nil {
		t.Error("expected error for unknown customer")
	}
}

func TestRecentNewestFirstWithLimit(t *testing.T) {
	svc, customers, _ := newPaymentFixture()
	ctx := context.Background()

	customers.Save(ctx, models.Customer{ID: "c1", Name: "Ramesh"})
	for _, date := range []string{"2025-03-01", "2025-03-05", "2025-03-03"} {
		svc.Collect(ctx, "c1", date, 10)
	}

	records := svc.Recent(ctx, 2)
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Date != "2025-03-05" || records[1].Date != "2025-03-03" {
		t.Errorf("recent order wrong: %s, %s", records[0].Date, records[1].Date)
	}
	if records[0].CustomerName != "Ramesh" {
		t.Errorf("name join missing: %+v", records[0])
	}
}
