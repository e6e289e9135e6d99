package app

import (
	"gorm.io/gorm"

	"github.com/mpcastro/recipebook-backend/internal/logger"
	"github.com/mpcastro/recipebook-backend/internal/repos"
)

type Repos struct {
	Category   repos.CategoryRepo
	Ingredient repos.IngredientRepo
	Recipe     repos.RecipeRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Category:   repos.NewCategoryRepo(db, log),
		Ingredient: repos.NewIngredientRepo(db, log),
		Recipe:     repos.NewRecipeRepo(db, log),
	}
}
