package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sefazor/recipeai-backend/internal/models"
	"go.uber.org/zap"
)

// RecipeGenerator yapay zekâ sağlayıcısının servis katmanına açılan yüzüdür.
type RecipeGenerator interface {
	GenerateRecipe(ctx context.Context, ingredients []string) (string, error)
}

type RecipeService struct {
	generator     RecipeGenerator
	creditService *CreditService
	logger        *zap.Logger
}

func NewRecipeService(generator RecipeGenerator, creditService *CreditService, logger *zap.Logger) *RecipeService {
	return &RecipeService{
		generator:     generator,
		creditService: creditService,
		logger:        logger,
	}
}

// Generate bakiyeyi kontrol eder, tarifi üretir ve 1 kredi düşer.
// Model çağrısı başarısız olursa kredi düşülmez.
func (s *RecipeService) Generate(ctx context.Context, userID uint, email string, ingredients []string) (*models.RecipeResponse, error) {
	if len(ingredients) == 0 {
		return nil, errors.New("ingredients are required")
	}

	balance, err := s.creditService.GetBalance(userID, email)
	if err != nil {
		return nil, err
	}
	if balance <= 0 {
		return nil, models.ErrInsufficientCredit
	}

	recipe, err := s.generator.GenerateRecipe(ctx, ingredients)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrGenerationFailed, err)
	}

	remaining, err := s.creditService.Debit(userID, 1)
	if err != nil {
		// Üretim tamamlandı; bakiye bu arada başka bir istekle tükenmiş
		// olabilir. Tarif yine de döner, yanıt güncel bakiyeyi taşır.
		s.logger.Warn("debit after generation failed",
			zap.Uint("user_id", userID), zap.Error(err))
		remaining, _ = s.creditService.GetBalance(userID, email)
	}

	return &models.RecipeResponse{
		Recipe:  recipe,
		Credits: remaining,
	}, nil
}
