package repositories

import (
	"context"
	"testing"

	"github.com/Abhishek-dev18/Water-Distribution-Management/internal/models"
	"github.com/Abhishek-dev18/Water-Distribution-Management/internal/store"
)

func intPtr(n int) *int           { return &n }
func floatPtr(f float64) *float64 { return &f }

func TestUpsertCreatesWithZeroDefaults(t *testing.T) {
	repo := NewTransactionRepository(store.NewMemory())
	ctx := context.Background()

	tx := repo.Upsert(ctx, models.TransactionUpsert{
		CustomerID:    "c1",
		Date:          "2025-02-10",
		JarsDelivered: intPtr(5),
	})

	if tx.ID == "" {
		t.Fatal("expected a generated id")
	}
	if tx.JarsDelivered != 5 || tx.JarsReturned != 0 || tx.ThermosDelivered != 0 ||
		tx.ThermosReturned != 0 || tx.PaymentAmount != 0 {
		t.Fatalf("unexpected defaults: %+v", tx)
	}
}

func TestUpsertMergesOnlySuppliedFields(t *testing.T) {
	repo := NewTransactionRepository(store.NewMemory())
	ctx := context.Background()

	first := repo.Upsert(ctx, models.TransactionUpsert{
		CustomerID:    "c1",
		Date:          "2025-02-10",
		JarsDelivered: intPtr(5),
		PaymentAmount: floatPtr(50),
	})

	second := repo.Upsert(ctx, models.TransactionUpsert{
		CustomerID:   "c1",
		Date:         "2025-02-10",
		JarsReturned: intPtr(2),
	})

	if second.ID != first.ID {
		t.Fatalf("merge created a new record: %s != %s", second.ID, first.ID)
	}
	if second.JarsDelivered != 5 || second.PaymentAmount != 50 {
		t.Fatalf("merge clobbered untouched fields: %+v", second)
	}
	if second.JarsReturned != 2 {
		t.Fatalf("supplied field not applied: %+v", second)
	}
}

func TestUpsertIdempotence(t *testing.T) {
	repo := NewTransactionRepository(store.NewMemory())
	ctx := context.Background()

	req := models.TransactionUpsert{
		CustomerID:    "c1",
		Date:          "2025-02-10",
		JarsDelivered: intPtr(3),
		PaymentAmount: floatPtr(20),
	}
	repo.Upsert(ctx, req)
	repo.Upsert(ctx, req)

	all := repo.List(ctx)
	if len(all) != 1 {
		t.Fatalf("expected exactly one record for the pair, got %d", len(all))
	}
	if all[0].JarsDelivered != 3 || all[0].PaymentAmount != 20 {
		t.Fatalf("fields drifted after repeat save: %+v", all[0])
	}
}

func TestUpsertSeparateDatesSeparateRecords(t *testing.T) {
	repo := NewTransactionRepository(store.NewMemory())
	ctx := context.Background()

	repo.Upsert(ctx, models.TransactionUpsert{CustomerID: "c1", Date: "2025-02-10", JarsDelivered: intPtr(1)})
	repo.Upsert(ctx, models.TransactionUpsert{CustomerID: "c1", Date: "2025-02-11", JarsDelivered: intPtr(1)})
	repo.Upsert(ctx, models.TransactionUpsert{CustomerID: "c2", Date: "2025-02-10", JarsDelivered: intPtr(1)})

	if got := len(repo.List(ctx)); got != 3 {
		t.Fatalf("expected 3 records, got %d", got)
	}
	if got := len(repo.ListByCustomer(ctx, "c1")); got != 2 {
		t.Fatalf("expected 2 records for c1, got %d", got)
	}
}

func TestListOnCorruptDataIsEmpty(t *testing.T) {
	kv := store.NewMemory()
	ctx := context.Background()
	kv.Set(ctx, TransactionsKey, []byte("{not json"))

	repo := NewTransactionRepository(kv)
	if got := repo.List(ctx); len(got) != 0 {
		t.Fatalf("corrupt storage should read as empty, got %d records", len(got))
	}
}
