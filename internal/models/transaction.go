package models

// Transaction is one day's delivery/payment record for one customer.
// At most one transaction exists per (customerId, date) pair; all writes
// are merges into that record, never duplicate inserts.
type Transaction struct {
	ID               string  `json:"id"`
	CustomerID       string  `json:"customerId"`
	Date             string  `json:"date"` // YYYY-MM-DD
	JarsDelivered    int     `json:"jarsDelivered"`
	JarsReturned     int     `json:"jarsReturned"`
	ThermosDelivered int     `json:"thermosDelivered"`
	ThermosReturned  int     `json:"thermosReturned"`
	PaymentAmount    float64 `json:"paymentAmount"`
}

// TransactionUpsert carries a partial update for a (customer, date) record.
// Nil fields leave the stored value untouched; on first write for the pair
// missing fields default to zero.
type TransactionUpsert struct {
	CustomerID       string   `json:"customerId"`
	Date             string   `json:"date"`
	JarsDelivered    *int     `json:"jarsDelivered,omitempty"`
	JarsReturned     *int     `json:"jarsReturned,omitempty"`
	ThermosDelivered *int     `json:"thermosDelivered,omitempty"`
	ThermosReturned  *int     `json:"thermosReturned,omitempty"`
	PaymentAmount    *float64 `json:"paymentAmount,omitempty"`
}

// DailyCost is the billed amount for a single transaction at the customer's
// current rates. Rates are never snapshotted per transaction, so editing a
// rate reprices the whole history.
func DailyCost(t Transaction, c Customer) float64 {
	return float64(t.JarsDelivered)*c.RateJar + float64(t.ThermosDelivered)*c.RateThermos
}
