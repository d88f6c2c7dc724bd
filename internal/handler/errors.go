package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/recipeai-backend/internal/models"
	"gorm.io/gorm"
)

// statusFromError servis hatasını HTTP durum koduna çevirir.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, models.ErrInvalidTimeFormat),
		errors.Is(err, models.ErrInvalidPackage):
		return fiber.StatusBadRequest
	case errors.Is(err, models.ErrUnauthenticated):
		return fiber.StatusUnauthorized
	case errors.Is(err, models.ErrInsufficientCredit):
		return fiber.StatusPaymentRequired
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, models.ErrAlreadyCanceled):
		return fiber.StatusConflict
	case errors.Is(err, models.ErrMeetingProvider),
		errors.Is(err, models.ErrNotification),
		errors.Is(err, models.ErrGenerationFailed),
		errors.Is(err, models.ErrCheckout),
		errors.Is(err, models.ErrPartialFailure):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

// currentUser Locals'taki kimliği okur; middleware koymadıysa hata döner.
func currentUser(c *fiber.Ctx) (uint, string, error) {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return 0, "", models.ErrUnauthenticated
	}
	userEmail, _ := c.Locals("userEmail").(string)
	return userID, userEmail, nil
}
