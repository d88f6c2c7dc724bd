package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/recipeai-backend/internal/models"
	"github.com/sefazor/recipeai-backend/internal/service"
	"go.uber.org/zap"
)

type CreditHandler struct {
	creditService *service.CreditService
	logger        *zap.Logger
}

func NewCreditHandler(creditService *service.CreditService, logger *zap.Logger) *CreditHandler {
	return &CreditHandler{
		creditService: creditService,
		logger:        logger,
	}
}

// GetBalance bakiyeyi döndürür. Okuma hatası arayüzü bloklamaz:
// hata loglanır ve bakiye 0 olarak gösterilir.
func (h *CreditHandler) GetBalance(c *fiber.Ctx) error {
	userID, userEmail, err := currentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse(err.Error()))
	}

	balance, err := h.creditService.GetBalance(userID, userEmail)
	if err != nil {
		h.logger.Error("failed to read credit balance",
			zap.Uint("user_id", userID), zap.Error(err))
		balance = 0
	}

	return c.JSON(models.SuccessResponse(models.CreditBalanceResponse{Credits: balance}, "Balance retrieved"))
}
