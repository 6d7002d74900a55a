package repositories

import (
	"context"
	"sort"
	"sync"

	"github.com/Abhishek-dev18/Water-Distribution-Management/internal/models"
	"github.com/Abhishek-dev18/Water-Distribution-Management/internal/store"
)

type AreaRepository struct {
	Store store.Store

	mu sync.Mutex
}

func NewAreaRepository(s store.Store) *AreaRepository {
	return &AreaRepository{Store: s}
}

// List returns all areas sorted by name.
func (r *AreaRepository) List(ctx context.Context) []models.Area {
	areas := loadCollection[models.Area](ctx, r.Store, AreasKey)
	sort.Slice(areas, func(i, j int) bool {
		return areas[i].Name < areas[j].Name
	})
	return areas
}

// Get returns the area with the given id.
func (r *AreaRepository) Get(ctx context.Context, id string) (models.Area, bool) {
	for _, a := range r.List(ctx) {
		if a.ID == id {
			return a, true
		}
	}
	return models.Area{}, false
}

// Save upserts an area keyed by id. An unknown or absent id gets a fresh
// random one; only an id that matches a stored record updates in place.
func (r *AreaRepository) Save(ctx context.Context, a models.Area) models.Area {
	r.mu.Lock()
	defer r.mu.Unlock()

	areas := loadCollection[models.Area](ctx, r.Store, AreasKey)
	if a.ID != "" {
		for i := range areas {
			if areas[i].ID == a.ID {
				areas[i] = a
				saveCollection(ctx, r.Store, AreasKey, areas)
				return a
			}
		}
	}

	a.ID = newRecordID()
	areas = append(areas, a)
	saveCollection(ctx, r.Store, AreasKey, areas)
	return a
}

// Delete removes an area. Customers keep their (now orphaned) area label.
func (r *AreaRepository) Delete(ctx context.Context, id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	areas := loadCollection[models.Area](ctx, r.Store, AreasKey)
	kept := areas[:0]
	for _, a := range areas {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	saveCollection(ctx, r.Store, AreasKey, kept)
}

// ReplaceAll overwrites the whole collection. Used by import/restore.
func (r *AreaRepository) ReplaceAll(ctx context.Context, areas []models.Area) {
	r.mu.Lock()
	defer r.mu.Unlock()
	saveCollection(ctx, r.Store, AreasKey, areas)
}
