package service

import (
	"sync"

	"github.com/sefazor/recipeai-backend/internal/repository"
	"go.uber.org/zap"
)

// BalanceObserver bakiye değiştiğinde senkron çağrılır (ör. UI rozeti).
type BalanceObserver func(userID uint, balance int)

type CreditService struct {
	creditRepo *repository.CreditRepository
	logger     *zap.Logger

	mu        sync.Mutex
	observers []BalanceObserver
}

func NewCreditService(creditRepo *repository.CreditRepository, logger *zap.Logger) *CreditService {
	return &CreditService{
		creditRepo: creditRepo,
		logger:     logger,
	}
}

// Subscribe bakiye değişikliklerine gözlemci ekler. Gözlemciler yazma
// onaylandıktan sonra, çağıranın goroutine'inde sırayla çalışır.
func (s *CreditService) Subscribe(observer BalanceObserver) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, observer)
}

func (s *CreditService) notify(userID uint, balance int) {
	s.mu.Lock()
	observers := make([]BalanceObserver, len(s.observers))
	copy(observers, s.observers)
	s.mu.Unlock()

	for _, observer := range observers {
		observer(userID, balance)
	}
}

// GetBalance mevcut bakiyeyi döndürür; kayıt yoksa 0 ile açar.
func (s *CreditService) GetBalance(userID uint, email string) (int, error) {
	credits, err := s.creditRepo.GetOrCreate(userID, email)
	if err != nil {
		return 0, err
	}
	return credits.Credits, nil
}

func (s *CreditService) Debit(userID uint, amount int) (int, error) {
	balance, err := s.creditRepo.Debit(userID, amount)
	if err != nil {
		return 0, err
	}

	s.logger.Info("credits debited",
		zap.Uint("user_id", userID), zap.Int("amount", amount), zap.Int("balance", balance))
	s.notify(userID, balance)
	return balance, nil
}

func (s *CreditService) Credit(userID uint, amount int, email string) (int, error) {
	balance, err := s.creditRepo.Credit(userID, amount, email)
	if err != nil {
		return 0, err
	}

	s.logger.Info("credits added",
		zap.Uint("user_id", userID), zap.Int("amount", amount), zap.Int("balance", balance))
	s.notify(userID, balance)
	return balance, nil
}
