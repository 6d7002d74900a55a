package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/Abhishek-dev18/Water-Distribution-Management/internal/models"
	"github.com/Abhishek-dev18/Water-Distribution-Management/internal/repositories"
)

type AreaService struct {
	Repo         *repositories.AreaRepository
	CustomerRepo *repositories.CustomerRepository
}

func NewAreaService(repo *repositories.AreaRepository, customerRepo *repositories.CustomerRepository) *AreaService {
	return &AreaService{Repo: repo, CustomerRepo: customerRepo}
}

// List returns all areas sorted by name.
func (s *AreaService) List(ctx context.Context) []models.Area {
	return s.Repo.List(ctx)
}

// Save upserts an area. Renaming an existing area rewrites every
// customer's denormalized area string from the old name to the new one
// before the area record itself is written.
func (s *AreaService) Save(ctx context.Context, a models.Area) (models.Area, error) {
	if strings.TrimSpace(a.Name) == "" {
		return models.Area{}, errors.New("area name is required")
	}

	if a.ID != "" {
		if existing, ok := s.Repo.Get(ctx, a.ID); ok && existing.Name != a.Name {
			s.cascadeRename(ctx, existing.Name, a.Name)
		}
	}

	return s.Repo.Save(ctx, a), nil
}

// Delete removes the area record only. Customers keep the orphaned label.
func (s *AreaService) Delete(ctx context.Context, id string) {
	s.Repo.Delete(ctx, id)
}

func (s *AreaService) cascadeRename(ctx context.Context, oldName, newName string) {
	renamed := 0
	for _, c := range s.CustomerRepo.List(ctx) {
		if c.Area == oldName {
			c.Area = newName
			s.CustomerRepo.Save(ctx, c)
			renamed++
		}
	}
	if renamed > 0 {
		log.Printf("[Area] Renamed %q to %q on %d customers", oldName, newName, renamed)
	}
}
