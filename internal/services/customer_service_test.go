package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/Abhishek-dev18/Water-Distribution-Management/internal/models"
	"github.com/Abhishek-dev18/Water-Distribution-Management/internal/repositories"
	"github.com/Abhishek-dev18/Water-Distribution-Management/internal/store"
)

func newCustomerFixture() (*CustomerService, *repositories.CustomerRepository) {
	repo := repositories.NewCustomerRepository(store.NewMemory())
	return NewCustomerService(repo, nil), repo
}

func TestGenerateNextIDFirstOfMonth(t *testing.T) {
	svc, _ := newCustomerFixture()

	id := svc.GenerateNextID(context.Background(), "2025-03-10")
	if id != "2025030001" {
		t.Errorf("first id of month = %q, want 2025030001", id)
	}
}

func TestGenerateNextIDContinuesSequence(t *testing.T) {
	svc, repo := newCustomerFixture()
	ctx := context.Background()

	for i := 1; i <= 7; i++ {
		repo.Save(ctx, models.Customer{ID: fmt.Sprintf("202502%04d", i), Name: "C"})
	}

	id := svc.GenerateNextID(ctx, "2025-02-15")
	if id != "2025020008" {
		t.Errorf("next id = %q, want 2025020008", id)
	}
}

func TestGenerateNextIDRestartsEachMonth(t *testing.T) {
	svc, repo := newCustomerFixture()
	ctx := context.Background()

	repo.Save(ctx, models.Customer{ID: "2025020007", Name: "C"})

	id := svc.GenerateNextID(ctx, "2025-03-01")
	if id != "2025030001" {
		t.Errorf("id for new month = %q, want 2025030001", id)
	}
}

func TestGenerateNextIDIgnoresForeignIDs(t *testing.T) {
	svc, repo := newCustomerFixture()
	ctx := context.Background()

	repo.Save(ctx, models.Customer{ID: "01hqv3x9z8abcdefghijklmnop", Name: "Seeded"})
	repo.Save(ctx, models.Customer{ID: "2025030002", Name: "C"})

	id := svc.GenerateNextID(ctx, "2025-03-20")
	if id != "2025030003" {
		t.Errorf("next id = %q, want 2025030003", id)
	}
}

func TestGenerateNextIDBadDate(t *testing.T) {
	svc, _ := newCustomerFixture()

	for _, refDate := range []string{"", "not-a-date", "2025-13-01", "2025/03/01"} {
		if id := svc.GenerateNextID(context.Background(), refDate); id != "" {
			t.Errorf("GenerateNextID(%q) = %q, want empty", refDate, id)
		}
	}
}

func TestCustomerSaveValidation(t *testing.T) {
	svc, _ := newCustomerFixture()
	ctx := context.Background()

	cases := []struct {
		name     string
		customer models.Customer
	}{
		{"blank name", models.Customer{Area: "North", RateJar: 20}},
		{"blank area", models.Customer{Name: "Ramesh", RateJar: 20}},
		{"negative rate", models.Customer{Name: "Ramesh", Area: "North", RateJar: -5}},
	}
	for _, tc := range cases {
		if _, err := svc.Save(ctx, tc.customer); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}
}

func TestCustomerSaveAssignsMonthID(t *testing.T) {
	svc, _ := newCustomerFixture()

	saved, err := svc.Save(context.Background(), models.Customer{
		Name:      "Ramesh",
		Area:      "North",
		StartDate: "2025-03-10",
	})
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if saved.ID != "2025030001" {
		t.Errorf("assigned id = %q, want 2025030001", saved.ID)
	}
	if saved.RateJar != models.DefaultRateJar || saved.RateThermos != models.DefaultRateThermos {
		t.Errorf("default rates not applied: jar %v thermos %v", saved.RateJar, saved.RateThermos)
	}
}
