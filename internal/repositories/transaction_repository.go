package repositories

import (
	"context"
	"sync"

	"github.com/Abhishek-dev18/Water-Distribution-Management/internal/models"
	"github.com/Abhishek-dev18/Water-Distribution-Management/internal/store"
)

type TransactionRepository struct {
	Store store.Store

	mu sync.Mutex
}

func NewTransactionRepository(s store.Store) *TransactionRepository {
	return &TransactionRepository{Store: s}
}

// List returns the full transaction log.
func (r *TransactionRepository) List(ctx context.Context) []models.Transaction {
	return loadCollection[models.Transaction](ctx, r.Store, TransactionsKey)
}

// ListByCustomer returns all transactions for one customer, full history.
func (r *TransactionRepository) ListByCustomer(ctx context.Context, customerID string) []models.Transaction {
	var out []models.Transaction
	for _, t := range r.List(ctx) {
		if t.CustomerID == customerID {
			out = append(out, t)
		}
	}
	return out
}

// FindByCustomerAndDate returns the single record for a (customer, date)
// pair, if any.
func (r *TransactionRepository) FindByCustomerAndDate(ctx context.Context, customerID, date string) (models.Transaction, bool) {
	for _, t := range r.List(ctx) {
		if t.CustomerID == customerID && t.Date == date {
			return t, true
		}
	}
	return models.Transaction{}, false
}

// Upsert writes a day's record keyed by (customerId, date). An existing
// record is merged field by field: only the fields supplied in the request
// overwrite stored values. A new record starts from all-zero fields.
func (r *TransactionRepository) Upsert(ctx context.Context, req models.TransactionUpsert) models.Transaction {
	r.mu.Lock()
	defer r.mu.Unlock()

	transactions := r.List(ctx)

	idx := -1
	for i := range transactions {
		if transactions[i].CustomerID == req.CustomerID && transactions[i].Date == req.Date {
			idx = i
			break
		}
	}

	var t models.Transaction
	if idx >= 0 {
		t = transactions[idx]
	} else {
		t = models.Transaction{
			ID:         newRecordID(),
			CustomerID: req.CustomerID,
			Date:       req.Date,
		}
	}

	if req.JarsDelivered != nil {
		t.JarsDelivered = *req.JarsDelivered
	}
	if req.JarsReturned != nil {
		t.JarsReturned = *req.JarsReturned
	}
	if req.ThermosDelivered != nil {
		t.ThermosDelivered = *req.ThermosDelivered
	}
	if req.ThermosReturned != nil {
		t.ThermosReturned = *req.ThermosReturned
	}
	if req.PaymentAmount != nil {
		t.PaymentAmount = *req.PaymentAmount
	}

	if idx >= 0 {
		transactions[idx] = t
	} else {
		transactions = append(transactions, t)
	}

	saveCollection(ctx, r.Store, TransactionsKey, transactions)
	return t
}

// ReplaceAll overwrites the whole collection. Used by import/restore.
func (r *TransactionRepository) ReplaceAll(ctx context.Context, transactions []models.Transaction) {
	r.mu.Lock()
	defer r.mu.Unlock()
	saveCollection(ctx, r.Store, TransactionsKey, transactions)
}
