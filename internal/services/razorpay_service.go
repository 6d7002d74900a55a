package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"math"

	razorpay "github.com/razorpay/razorpay-go"
)

// RazorpayService lets a customer clear their outstanding due online. A
// verified payment lands in the ledger through the normal additive
// collection path, so online and cash payments fold identically.
type RazorpayService struct {
	Ledger   *LedgerService
	Payments *PaymentService

	keyID     string
	keySecret string
}

func NewRazorpayService(keyID, keySecret string, ledger *LedgerService, payments *PaymentService) *RazorpayService {
	return &RazorpayService{
		Ledger:    ledger,
		Payments:  payments,
		keyID:     keyID,
		keySecret: keySecret,
	}
}

// IsEnabled reports whether credentials are configured.
func (s *RazorpayService) IsEnabled() bool {
	return s.keyID != "" && s.keySecret != ""
}

// OrderInfo is what the frontend needs to open the checkout.
type OrderInfo struct {
	OrderID  string  `json:"orderId"`
	KeyID    string  `json:"keyId"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// CreateOrder opens a Razorpay order for the customer's current
// outstanding due. Amounts are sent in paise.
func (s *RazorpayService) CreateOrder(ctx context.Context, customerID string) (OrderInfo, error) {
	if !s.IsEnabled() {
		return OrderInfo{}, errors.New("online payments not configured")
	}

	stats := s.Ledger.ComputeStats(ctx, customerID)
	if stats.TotalDue <= 0 {
		return OrderInfo{}, errors.New("no outstanding due")
	}

	amountPaise := int64(math.Round(stats.TotalDue * 100))
	client := razorpay.NewClient(s.keyID, s.keySecret)

	orderData := map[string]interface{}{
		"amount":   amountPaise,
		"currency": "INR",
		"receipt":  fmt.Sprintf("due_%s", customerID),
		"notes": map[string]interface{}{
			"customer_id": customerID,
		},
	}

	order, err := client.Order.Create(orderData, nil)
	if err != nil {
		return OrderInfo{}, fmt.Errorf("create order: %w", err)
	}

	orderID, ok := order["id"].(string)
	if !ok {
		return OrderInfo{}, errors.New("order response missing id")
	}

	log.Printf("[Razorpay] Created order %s for customer %s (Rs. %.2f)", orderID, customerID, stats.TotalDue)
	return OrderInfo{
		OrderID:  orderID,
		KeyID:    s.keyID,
		Amount:   stats.TotalDue,
		Currency: "INR",
	}, nil
}

// VerifyAndRecord checks the checkout signature and, if valid, records the
// amount as today's payment for the customer.
func (s *RazorpayService) VerifyAndRecord(ctx context.Context, customerID, orderID, paymentID, signature string, amount float64) error {
	if !s.IsEnabled() {
		return errors.New("online payments not configured")
	}

	payload := orderID + "|" + paymentID
	mac := hmac.New(sha256.New, []byte(s.keySecret))
	mac.Write([]byte(payload))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return errors.New("invalid payment signature")
	}

	if _, err := s.Payments.Collect(ctx, customerID, "", amount); err != nil {
		return err
	}
	log.Printf("[Razorpay] Verified payment %s for customer %s (Rs. %.2f)", paymentID, customerID, amount)
	return nil
}
