package services

import (
	"context"
	"errors"
	"sort"

	"github.com/Abhishek-dev18/Water-Distribution-Management/internal/models"
	"github.com/Abhishek-dev18/Water-Distribution-Management/internal/repositories"
	"github.com/Abhishek-dev18/Water-Distribution-Management/internal/timeutil"
)

type PaymentService struct {
	CustomerRepo    *repositories.CustomerRepository
	TransactionRepo *repositories.TransactionRepository
}

func NewPaymentService(customerRepo *repositories.CustomerRepository, transactionRepo *repositories.TransactionRepository) *PaymentService {
	return &PaymentService{CustomerRepo: customerRepo, TransactionRepo: transactionRepo}
}

// Collect records a payment against the customer's day record. Collecting
// twice on the same date adds up: the new amount is stacked on whatever
// payment the day already holds, never overwritten.
func (s *PaymentService) Collect(ctx context.Context, customerID, date string, amount float64) (models.Transaction, error) {
	if amount <= 0 {
		return models.Transaction{}, errors.New("payment amount must be positive")
	}
	if _, ok := s.CustomerRepo.Get(ctx, customerID); !ok {
		return models.Transaction{}, errors.New("customer not found")
	}
	if date == "" {
		date = timeutil.Today()
	}

	total := amount
	if existing, ok := s.TransactionRepo.FindByCustomerAndDate(ctx, customerID, date); ok {
		total += existing.PaymentAmount
	}

	return s.TransactionRepo.Upsert(ctx, models.TransactionUpsert{
		CustomerID:    customerID,
		Date:          date,
		PaymentAmount: &total,
	}), nil
}

// PaymentRecord is one entry of the recent-payments feed.
type PaymentRecord struct {
	CustomerID   string  `json:"customerId"`
	CustomerName string  `json:"customerName"`
	Date         string  `json:"date"`
	Amount       float64 `json:"amount"`
}

// Recent returns the latest payments (newest date first), joined with
// customer names. Payments from deleted customers show an empty name.
func (s *PaymentService) Recent(ctx context.Context, limit int) []PaymentRecord {
	if limit <= 0 {
		limit = 5
	}

	nameByID := make(map[string]string)
	for _, c := range s.CustomerRepo.List(ctx) {
		nameByID[c.ID] = c.Name
	}

	var records []PaymentRecord
	for _, t := range s.TransactionRepo.List(ctx) {
		if t.PaymentAmount > 0 {
			records = append(records, PaymentRecord{
				CustomerID:   t.CustomerID,
				CustomerName: nameByID[t.CustomerID],
				Date:         t.Date,
				Amount:       t.PaymentAmount,
			})
		}
	}

	sort.Slice(records, func(i, j int) bool { return records[i].Date > records[j].Date })
	if len(records) > limit {
		records = records[:limit]
	}
	return records
}
