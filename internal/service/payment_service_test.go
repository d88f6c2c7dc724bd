package service

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/sefazor/recipeai-backend/internal/models"
	"github.com/sefazor/recipeai-backend/internal/repository"
	"github.com/sefazor/recipeai-backend/pkg/database"
	"github.com/sefazor/recipeai-backend/pkg/payment"
	"github.com/stripe/stripe-go/v74"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fakeCheckout struct {
	err error

	lastEmail    string
	lastItem     payment.CheckoutItem
	lastMetadata map[string]string
}

func (f *fakeCheckout) CreateCheckoutSession(userEmail string, item payment.CheckoutItem, metadata map[string]string) (*stripe.CheckoutSession, error) {
	f.lastEmail = userEmail
	f.lastItem = item
	f.lastMetadata = metadata
	if f.err != nil {
		return nil, f.err
	}
	return &stripe.CheckoutSession{
		ID:  "cs_test_123",
		URL: "https://checkout.stripe.com/pay/cs_test_123",
	}, nil
}

func newPaymentFixture(t *testing.T) (*PaymentService, *fakeCheckout, *CreditService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	if err := database.SeedCreditPackages(db); err != nil {
		t.Fatalf("seed packages: %v", err)
	}

	checkout := &fakeCheckout{}
	creditService := NewCreditService(repository.NewCreditRepository(db), zap.NewNop())
	svc := NewPaymentService(
		checkout,
		repository.NewCreditPackageRepository(db),
		repository.NewTransactionRepository(db),
		creditService,
		zap.NewNop(),
	)
	return svc, checkout, creditService, db
}

func completedEvent(t *testing.T, sessionID string, metadata map[string]string) *stripe.Event {
	t.Helper()
	raw, err := json.Marshal(map[string]interface{}{
		"id":             sessionID,
		"customer_email": "chef@example.com",
		"metadata":       metadata,
	})
	if err != nil {
		t.Fatalf("marshal session: %v", err)
	}
	return &stripe.Event{
		Type: "checkout.session.completed",
		Data: &stripe.EventData{Raw: raw},
	}
}

func TestCreateCheckoutSession(t *testing.T) {
	svc, checkout, _, db := newPaymentFixture(t)

	session, err := svc.CreateCheckoutSession(1, "chef@example.com", 25)
	if err != nil {
		t.Fatalf("CreateCheckoutSession: %v", err)
	}
	if session.ID != "cs_test_123" || session.URL == "" {
		t.Errorf("session = %+v", session)
	}

	if checkout.lastEmail != "chef@example.com" {
		t.Errorf("checkout email = %q", checkout.lastEmail)
	}
	if checkout.lastItem.AmountCents != 1999 {
		t.Errorf("amount = %d cents, want 1999", checkout.lastItem.AmountCents)
	}
	if checkout.lastMetadata["userId"] != "1" || checkout.lastMetadata["credits"] != "25" {
		t.Errorf("metadata = %v", checkout.lastMetadata)
	}

	// Bekleyen işlem kaydı açılmış olmalı.
	var tx models.Transaction
	if err := db.Where("stripe_session_id = ?", "cs_test_123").First(&tx).Error; err != nil {
		t.Fatalf("transaction lookup: %v", err)
	}
	if tx.Status != models.TransactionStatusPending {
		t.Errorf("transaction status = %q, want pending", tx.Status)
	}
	if tx.Credits != 25 || tx.Amount != 19.99 {
		t.Errorf("transaction = %+v", tx)
	}
}

func TestCreateCheckoutSessionUnknownPackage(t *testing.T) {
	svc, _, _, _ := newPaymentFixture(t)

	_, err := svc.CreateCheckoutSession(1, "chef@example.com", 15)
	if !errors.Is(err, models.ErrInvalidPackage) {
		t.Fatalf("err = %v, want ErrInvalidPackage", err)
	}
}

func TestCreateCheckoutSessionProviderFailure(t *testing.T) {
	svc, checkout, _, db := newPaymentFixture(t)
	checkout.err = errors.New("stripe down")

	_, err := svc.CreateCheckoutSession(1, "chef@example.com", 10)
	if !errors.Is(err, models.ErrCheckout) {
		t.Fatalf("err = %v, want ErrCheckout", err)
	}

	var count int64
	if err := db.Model(&models.Transaction{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Errorf("transactions = %d, want 0", count)
	}
}

func TestWebhookCompletedCreditsBalance(t *testing.T) {
	svc, _, credits, db := newPaymentFixture(t)

	if _, err := svc.CreateCheckoutSession(1, "chef@example.com", 25); err != nil {
		t.Fatalf("CreateCheckoutSession: %v", err)
	}

	event := completedEvent(t, "cs_test_123", map[string]string{"userId": "1", "credits": "25"})
	if err := svc.HandleStripeWebhook(event); err != nil {
		t.Fatalf("HandleStripeWebhook: %v", err)
	}

	balance, err := credits.GetBalance(1, "chef@example.com")
	if err != nil {
		t.Fatalf("GetBalance: %v", err)
	}
	if balance != 25 {
		t.Errorf("balance = %d, want 25", balance)
	}

	var tx models.Transaction
	if err := db.Where("stripe_session_id = ?", "cs_test_123").First(&tx).Error; err != nil {
		t.Fatalf("transaction lookup: %v", err)
	}
	if tx.Status != models.TransactionStatusCompleted {
		t.Errorf("transaction status = %q, want completed", tx.Status)
	}
}

// Stripe aynı olayı birden fazla kez teslim edebilir; bakiye ikinci
// teslimde tekrar artmaz.
func TestWebhookCompletedIdempotent(t *testing.T) {
	svc, _, credits, _ := newPaymentFixture(t)

	if _, err := svc.CreateCheckoutSession(1, "chef@example.com", 10); err != nil {
		t.Fatalf("CreateCheckoutSession: %v", err)
	}

	event := completedEvent(t, "cs_test_123", map[string]string{"userId": "1", "credits": "10"})
	if err := svc.HandleStripeWebhook(event); err != nil {
		t.Fatalf("HandleStripeWebhook: %v", err)
	}
	if err := svc.HandleStripeWebhook(event); err != nil {
		t.Fatalf("HandleStripeWebhook (redelivery): %v", err)
	}

	balance, err := credits.GetBalance(1, "chef@example.com")
	if err != nil {
		t.Fatalf("GetBalance: %v", err)
	}
	if balance != 10 {
		t.Errorf("balance = %d, want 10 (single settlement)", balance)
	}
}

func TestWebhookExpiredMarksFailed(t *testing.T) {
	svc, _, _, db := newPaymentFixture(t)

	if _, err := svc.CreateCheckoutSession(1, "chef@example.com", 10); err != nil {
		t.Fatalf("CreateCheckoutSession: %v", err)
	}

	raw, _ := json.Marshal(map[string]interface{}{"id": "cs_test_123"})
	event := &stripe.Event{
		Type: "checkout.session.expired",
		Data: &stripe.EventData{Raw: raw},
	}
	if err := svc.HandleStripeWebhook(event); err != nil {
		t.Fatalf("HandleStripeWebhook: %v", err)
	}

	var tx models.Transaction
	if err := db.Where("stripe_session_id = ?", "cs_test_123").First(&tx).Error; err != nil {
		t.Fatalf("transaction lookup: %v", err)
	}
	if tx.Status != models.TransactionStatusFailed {
		t.Errorf("transaction status = %q, want failed", tx.Status)
	}
}

func TestWebhookUnknownSession(t *testing.T) {
	svc, _, _, _ := newPaymentFixture(t)

	event := completedEvent(t, "cs_unknown", map[string]string{"userId": "1", "credits": "10"})
	if err := svc.HandleStripeWebhook(event); err == nil {
		t.Error("expected error for unknown session")
	}
}

func TestGetCreditPackagesSeeded(t *testing.T) {
	svc, _, _, _ := newPaymentFixture(t)

	packages, err := svc.GetCreditPackages()
	if err != nil {
		t.Fatalf("GetCreditPackages: %v", err)
	}
	if len(packages) != 4 {
		t.Fatalf("packages = %d, want 4", len(packages))
	}

	want := map[int]float64{10: 9.99, 25: 19.99, 50: 34.99, 100: 59.99}
	for _, p := range packages {
		if price, ok := want[p.Credits]; !ok || p.Price != price {
			t.Errorf("unexpected package %d credits at %.2f", p.Credits, p.Price)
		}
	}
}
