package models

type GenerateRecipeRequest struct {
	Ingredients []string `json:"ingredients" validate:"required,min=1,dive,required"`
}

type RecipeResponse struct {
	Recipe  string `json:"recipe"`
	Credits int    `json:"credits"`
}
