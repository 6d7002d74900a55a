package repositories

import (
	"context"
	"testing"

	"github.com/Abhishek-dev18/Water-Distribution-Management/internal/models"
	"github.com/Abhishek-dev18/Water-Distribution-Management/internal/store"
)

func TestCustomerSaveUpsertsById(t *testing.T) {
	repo := NewCustomerRepository(store.NewMemory())
	ctx := context.Background()

	repo.Save(ctx, models.Customer{ID: "2025020001", Name: "Ramesh"})
	repo.Save(ctx, models.Customer{ID: "2025020001", Name: "Ramesh Kumar"})

	all := repo.List(ctx)
	if len(all) != 1 {
		t.Fatalf("expected 1 customer, got %d", len(all))
	}
	if all[0].Name != "Ramesh Kumar" {
		t.Fatalf("save did not replace in place: %+v", all[0])
	}
}

func TestCustomerSaveAssignsFallbackID(t *testing.T) {
	repo := NewCustomerRepository(store.NewMemory())

	saved := repo.Save(context.Background(), models.Customer{Name: "Suresh"})
	if saved.ID == "" {
		t.Fatal("expected a fallback id for a customer without one")
	}
}

func TestCustomerDeleteIsHard(t *testing.T) {
	repo := NewCustomerRepository(store.NewMemory())
	ctx := context.Background()

	repo.Save(ctx, models.Customer{ID: "a", Name: "A"})
	repo.Save(ctx, models.Customer{ID: "b", Name: "B"})
	repo.Delete(ctx, "a")

	all := repo.List(ctx)
	if len(all) != 1 || all[0].ID != "b" {
		t.Fatalf("expected only b to remain, got %+v", all)
	}
	if _, ok := repo.Get(ctx, "a"); ok {
		t.Fatal("deleted customer still readable")
	}
}

func TestCustomerBulkInsertSingleWrite(t *testing.T) {
	repo := NewCustomerRepository(store.NewMemory())
	ctx := context.Background()

	repo.BulkInsert(ctx, []models.Customer{
		{ID: "a", Name: "A"},
		{ID: "b", Name: "B"},
		{ID: "c", Name: "C"},
	})

	if got := len(repo.List(ctx)); got != 3 {
		t.Fatalf("expected 3 customers, got %d", got)
	}
}

func TestAreaListSortedByName(t *testing.T) {
	repo := NewAreaRepository(store.NewMemory())
	ctx := context.Background()

	repo.Save(ctx, models.Area{ID: "1", Name: "South"})
	repo.Save(ctx, models.Area{ID: "2", Name: "East"})
	repo.Save(ctx, models.Area{ID: "3", Name: "North"})

	areas := repo.List(ctx)
	want := []string{"East", "North", "South"}
	for i, name := range want {
		if areas[i].Name != name {
			t.Fatalf("areas not sorted by name: %+v", areas)
		}
	}
}
