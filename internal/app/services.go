package app

import (
	"gorm.io/gorm"

	"github.com/mpcastro/recipebook-backend/internal/logger"
	"github.com/mpcastro/recipebook-backend/internal/services"
)

type Services struct {
	Category   services.CategoryService
	Ingredient services.IngredientService
	Recipe     services.RecipeService
	Compute    services.ComputeService
}

func wireServices(db *gorm.DB, log *logger.Logger, reposet Repos) Services {
	log.Info("Wiring services...")
	recipeService := services.NewRecipeService(db, log, reposet.Recipe, reposet.Category, reposet.Ingredient)
	return Services{
		Category:   services.NewCategoryService(db, log, reposet.Category, reposet.Recipe),
		Ingredient: services.NewIngredientService(db, log, reposet.Ingredient, reposet.Recipe),
		Recipe:     recipeService,
		Compute:    services.NewComputeService(log, recipeService),
	}
}
