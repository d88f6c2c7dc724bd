package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/recipeai-backend/internal/models"
	"github.com/sefazor/recipeai-backend/internal/service"
	"github.com/sefazor/recipeai-backend/pkg/utils"
)

type RecipeHandler struct {
	recipeService *service.RecipeService
	validator     *utils.Validator
}

func NewRecipeHandler(recipeService *service.RecipeService, validator *utils.Validator) *RecipeHandler {
	return &RecipeHandler{
		recipeService: recipeService,
		validator:     validator,
	}
}

func (h *RecipeHandler) GenerateRecipe(c *fiber.Ctx) error {
	userID, userEmail, err := currentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse(err.Error()))
	}

	var req models.GenerateRecipeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	resp, err := h.recipeService.Generate(c.Context(), userID, userEmail, req.Ingredients)
	if err != nil {
		return c.Status(statusFromError(err)).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(resp, "Recipe generated"))
}
