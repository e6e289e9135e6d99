package app

import (
	"github.com/mpcastro/recipebook-backend/internal/handlers"
	"github.com/mpcastro/recipebook-backend/internal/logger"
)

type Handlers struct {
	Category   *handlers.CategoryHandler
	Ingredient *handlers.IngredientHandler
	Recipe     *handlers.RecipeHandler
}

func wireHandlers(log *logger.Logger, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Category:   handlers.NewCategoryHandler(log, serviceset.Category),
		Ingredient: handlers.NewIngredientHandler(log, serviceset.Ingredient),
		Recipe:     handlers.NewRecipeHandler(log, serviceset.Recipe, serviceset.Compute),
	}
}
