package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"

	"github.com/Abhishek-dev18/Water-Distribution-Management/internal/store"

	"github.com/oklog/ulid/v2"
)

// Storage keys. Each collection is one JSON array (object for settings)
// under its own key.
const (
	CustomersKey    = "aquaflow_customers"
	TransactionsKey = "aquaflow_transactions"
	AreasKey        = "aquaflow_areas"
	SettingsKey     = "aquaflow_settings"
)

// newRecordID returns a fresh unique record id. Customer ids normally come
// from the month-sequence generator; this is the fallback for records that
// have no human-meaningful numbering.
func newRecordID() string {
	return strings.ToLower(ulid.Make().String())
}

// loadCollection reads a whole collection. An absent key or corrupt JSON
// degrades to an empty collection so first-run state just works.
func loadCollection[T any](ctx context.Context, s store.Store, key string) []T {
	raw, err := s.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Printf("[Repo] Error loading %s: %v", key, err)
		}
		return nil
	}

	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		log.Printf("[Repo] Corrupt data under %s, treating as empty: %v", key, err)
		return nil
	}
	return records
}

// saveCollection writes a whole collection back. Write failures are logged
// and swallowed; callers get no error signal.
func saveCollection[T any](ctx context.Context, s store.Store, key string, records []T) {
	if records == nil {
		records = []T{}
	}
	raw, err := json.Marshal(records)
	if err != nil {
		log.Printf("[Repo] Error encoding %s: %v", key, err)
		return
	}
	if err := s.Set(ctx, key, raw); err != nil {
		log.Printf("[Repo] Error saving %s: %v", key, err)
	}
}
