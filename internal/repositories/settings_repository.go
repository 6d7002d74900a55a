package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"

	"github.com/Abhishek-dev18/Water-Distribution-Management/internal/models"
	"github.com/Abhishek-dev18/Water-Distribution-Management/internal/store"
)

type SettingsRepository struct {
	Store store.Store

	mu sync.Mutex
}

func NewSettingsRepository(s store.Store) *SettingsRepository {
	return &SettingsRepository{Store: s}
}

// Get returns the settings singleton, falling back to defaults when the
// record is absent or unreadable.
func (r *SettingsRepository) Get(ctx context.Context) models.AppSettings {
	raw, err := r.Store.Get(ctx, SettingsKey)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Printf("[Repo] Error loading settings: %v", err)
		}
		return models.DefaultSettings()
	}

	var settings models.AppSettings
	if err := json.Unmarshal(raw, &settings); err != nil {
		log.Printf("[Repo] Corrupt settings, using defaults: %v", err)
		return models.DefaultSettings()
	}
	return settings
}

// Save overwrites the singleton wholesale. No merge.
func (r *SettingsRepository) Save(ctx context.Context, settings models.AppSettings) {
	r.mu.Lock()
	defer r.mu.Unlock()

	raw, err := json.Marshal(settings)
	if err != nil {
		log.Printf("[Repo] Error encoding settings: %v", err)
		return
	}
	if err := r.Store.Set(ctx, SettingsKey, raw); err != nil {
		log.Printf("[Repo] Error saving settings: %v", err)
	}
}
