package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/sefazor/recipeai-backend/internal/models"
	"github.com/sefazor/recipeai-backend/internal/repository"
	"github.com/sefazor/recipeai-backend/pkg/payment"
	"github.com/stripe/stripe-go/v74"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CheckoutProvider ödeme sağlayıcısının servis katmanına açılan yüzüdür.
type CheckoutProvider interface {
	CreateCheckoutSession(userEmail string, item payment.CheckoutItem, metadata map[string]string) (*stripe.CheckoutSession, error)
}

type PaymentService struct {
	checkout      CheckoutProvider
	packageRepo   *repository.CreditPackageRepository
	txRepo        *repository.TransactionRepository
	creditService *CreditService
	logger        *zap.Logger
}

func NewPaymentService(checkout CheckoutProvider, packageRepo *repository.CreditPackageRepository, txRepo *repository.TransactionRepository, creditService *CreditService, logger *zap.Logger) *PaymentService {
	return &PaymentService{
		checkout:      checkout,
		packageRepo:   packageRepo,
		txRepo:        txRepo,
		creditService: creditService,
		logger:        logger,
	}
}

// CreateCheckoutSession istenen kredi paketinin ödeme sayfasını açar.
// userId ve credits metadata'ya yazılır; webhook bakiyeyi bunlarla işler.
func (s *PaymentService) CreateCheckoutSession(userID uint, userEmail string, credits int) (*models.CheckoutSession, error) {
	// Paketi bul
	creditPackage, err := s.packageRepo.GetByCredits(credits)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrInvalidPackage
		}
		return nil, err
	}

	session, err := s.checkout.CreateCheckoutSession(
		userEmail,
		payment.CheckoutItem{
			Name:        creditPackage.Name,
			Description: fmt.Sprintf("%d recipe generation credits", creditPackage.Credits),
			AmountCents: int64(creditPackage.Price * 100),
		},
		map[string]string{
			"userId":  strconv.FormatUint(uint64(userID), 10),
			"credits": strconv.Itoa(creditPackage.Credits),
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrCheckout, err)
	}

	// Bekleyen işlem kaydı; webhook tamamlanınca status güncellenir.
	transaction := &models.Transaction{
		UserID:          userID,
		Amount:          creditPackage.Price,
		Credits:         creditPackage.Credits,
		StripeSessionID: session.ID,
		Status:          models.TransactionStatusPending,
	}
	if err := s.txRepo.Create(transaction); err != nil {
		return nil, err
	}

	return &models.CheckoutSession{
		ID:  session.ID,
		URL: session.URL,
	}, nil
}

// HandleStripeWebhook ödeme sonucunu işler. Tamamlanan oturum işlem
// kaydını kapatır ve bakiyeyi metadata'daki kredi adediyle artırır.
// Stripe en az bir kez teslim eder; tamamlanmış işlem yeniden işlenmez.
func (s *PaymentService) HandleStripeWebhook(event *stripe.Event) error {
	switch event.Type {
	case "checkout.session.completed":
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			return err
		}

		transaction, err := s.txRepo.GetBySessionID(session.ID)
		if err != nil {
			return err
		}
		if transaction.Status == models.TransactionStatusCompleted {
			return nil
		}

		userID, err := strconv.ParseUint(session.Metadata["userId"], 10, 32)
		if err != nil {
			return fmt.Errorf("invalid userId metadata: %v", err)
		}
		credits, err := strconv.Atoi(session.Metadata["credits"])
		if err != nil {
			return fmt.Errorf("invalid credits metadata: %v", err)
		}

		transaction.Status = models.TransactionStatusCompleted
		if err := s.txRepo.Update(transaction); err != nil {
			return err
		}

		balance, err := s.creditService.Credit(uint(userID), credits, session.CustomerEmail)
		if err != nil {
			return err
		}

		s.logger.Info("payment settled",
			zap.String("session_id", session.ID),
			zap.Uint64("user_id", userID),
			zap.Int("credits", credits),
			zap.Int("balance", balance))
		return nil

	case "checkout.session.expired", "checkout.session.async_payment_failed":
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			return err
		}

		transaction, err := s.txRepo.GetBySessionID(session.ID)
		if err != nil {
			return err
		}

		transaction.Status = models.TransactionStatusFailed
		return s.txRepo.Update(transaction)
	}

	return nil
}

func (s *PaymentService) GetCreditPackages() ([]models.CreditPackage, error) {
	return s.packageRepo.GetAll()
}

func (s *PaymentService) GetUserTransactions(userID uint) ([]models.Transaction, error) {
	return s.txRepo.GetUserTransactions(userID)
}
