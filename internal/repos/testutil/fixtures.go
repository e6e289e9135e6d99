package testutil

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/mpcastro/recipebook-backend/internal/normalization"
	"github.com/mpcastro/recipebook-backend/internal/types"
)

func NewCategory(name string) *types.Category {
	return &types.Category{
		ID:             uuid.New(),
		Name:           name,
		NameNormalized: normalization.NormalizeName(name),
		CreatedAt:      time.Now().UTC(),
	}
}

func NewIngredient(name string) *types.Ingredient {
	return &types.Ingredient{
		ID:             uuid.New(),
		Name:           name,
		NameNormalized: normalization.NormalizeName(name),
		CreatedAt:      time.Now().UTC(),
	}
}

func NewRecipe(title string, categoryID uuid.UUID, lines ...types.RecipeIngredient) *types.Recipe {
	id := uuid.New()
	for i := range lines {
		lines[i].ID = uuid.New()
		lines[i].RecipeID = id
		lines[i].Position = i
	}
	return &types.Recipe{
		ID:          id,
		Title:       title,
		Ingredients: lines,
		Steps:       datatypes.NewJSONSlice([]string{"mix", "bake"}),
		Servings:    4,
		CategoryID:  categoryID,
		Status:      types.RecipeStatusDraft,
		CreatedAt:   time.Now().UTC(),
	}
}

func Line(ingredientID uuid.UUID, quantity float64, unit string) types.RecipeIngredient {
	return types.RecipeIngredient{
		IngredientID: ingredientID,
		Quantity:     quantity,
		Unit:         unit,
	}
}
