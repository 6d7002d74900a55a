package repositories

import (
	"context"
	"sync"

	"github.com/Abhishek-dev18/Water-Distribution-Management/internal/models"
	"github.com/Abhishek-dev18/Water-Distribution-Management/internal/store"
)

type CustomerRepository struct {
	Store store.Store

	mu sync.Mutex
}

func NewCustomerRepository(s store.Store) *CustomerRepository {
	return &CustomerRepository{Store: s}
}

// List returns all customers in storage order.
func (r *CustomerRepository) List(ctx context.Context) []models.Customer {
	return loadCollection[models.Customer](ctx, r.Store, CustomersKey)
}

// Get returns the customer with the given id.
func (r *CustomerRepository) Get(ctx context.Context, id string) (models.Customer, bool) {
	for _, c := range r.List(ctx) {
		if c.ID == id {
			return c, true
		}
	}
	return models.Customer{}, false
}

// Save upserts a customer keyed by id. A customer arriving without an id
// gets a random one; the month-sequence generator normally runs first.
func (r *CustomerRepository) Save(ctx context.Context, c models.Customer) models.Customer {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c.ID == "" {
		c.ID = newRecordID()
	}

	customers := r.List(ctx)
	replaced := false
	for i := range customers {
		if customers[i].ID == c.ID {
			customers[i] = c
			replaced = true
			break
		}
	}
	if !replaced {
		customers = append(customers, c)
	}

	saveCollection(ctx, r.Store, CustomersKey, customers)
	return c
}

// Delete removes a customer. Hard removal: transactions stay behind as
// orphaned history.
func (r *CustomerRepository) Delete(ctx context.Context, id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	customers := r.List(ctx)
	kept := customers[:0]
	for _, c := range customers {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	saveCollection(ctx, r.Store, CustomersKey, kept)
}

// BulkInsert appends fully-formed customers in a single persistence write.
// Used for seeding test data.
func (r *CustomerRepository) BulkInsert(ctx context.Context, batch []models.Customer) {
	r.mu.Lock()
	defer r.mu.Unlock()

	customers := r.List(ctx)
	for _, c := range batch {
		if c.ID == "" {
			c.ID = newRecordID()
		}
		customers = append(customers, c)
	}
	saveCollection(ctx, r.Store, CustomersKey, customers)
}

// ReplaceAll overwrites the whole collection. Used by import/restore.
func (r *CustomerRepository) ReplaceAll(ctx context.Context, customers []models.Customer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	saveCollection(ctx, r.Store, CustomersKey, customers)
}
