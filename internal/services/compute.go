package services

import (
	"context"
	"math"

	"github.com/google/uuid"

	"github.com/mpcastro/recipebook-backend/internal/apperr"
	"github.com/mpcastro/recipebook-backend/internal/logger"
	"github.com/mpcastro/recipebook-backend/internal/types"
)

// ShoppingListItem is one consolidated line of a shopping list: the
// summed quantity of an ingredient across recipes, per unit. Units are
// opaque; the same ingredient in different units stays on separate lines.
type ShoppingListItem struct {
	IngredientID uuid.UUID `json:"ingredient_id"`
	Unit         string    `json:"unit"`
	Quantity     float64   `json:"quantity"`
}

// ComputeService derives read-only views over recipes fetched through
// the lifecycle service, so archived recipes fail exactly like unknown
// ones.
type ComputeService interface {
	// ScaleRecipe returns a non-persisted snapshot of the recipe with
	// quantities recomputed for the target serving count. The target
	// must be a whole positive number; the stored recipe is untouched.
	ScaleRecipe(ctx context.Context, id uuid.UUID, newServings float64) (*types.Recipe, error)
	GenerateShoppingList(ctx context.Context, recipeIDs []uuid.UUID) ([]ShoppingListItem, error)
}

type computeService struct {
	log           *logger.Logger
	recipeService RecipeService
}

func NewComputeService(log *logger.Logger, recipeService RecipeService) ComputeService {
	serviceLog := log.With("service", "ComputeService")
	return &computeService{log: serviceLog, recipeService: recipeService}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func (cs *computeService) ScaleRecipe(ctx context.Context, id uuid.UUID, newServings float64) (*types.Recipe, error) {
	if math.IsInf(newServings, 0) || newServings != math.Trunc(newServings) {
		return nil, apperr.InvalidArgument("servings must be an integer")
	}
	if newServings <= 0 {
		return nil, apperr.InvalidArgument("servings must be greater than zero")
	}

	recipe, err := cs.recipeService.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	factor := newServings / recipe.Servings

	scaled := *recipe
	scaled.Servings = newServings
	scaled.Ingredients = make([]types.RecipeIngredient, len(recipe.Ingredients))
	for i, line := range recipe.Ingredients {
		line.Quantity = round2(line.Quantity * factor)
		scaled.Ingredients[i] = line
	}
	return &scaled, nil
}

func (cs *computeService) GenerateShoppingList(ctx context.Context, recipeIDs []uuid.UUID) ([]ShoppingListItem, error) {
	if len(recipeIDs) == 0 {
		return nil, apperr.InvalidArgument("recipe ids are required")
	}

	type key struct {
		ingredientID uuid.UUID
		unit         string
	}

	items := []ShoppingListItem{}
	indexByKey := map[key]int{}

	for _, id := range recipeIDs {
		recipe, err := cs.recipeService.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		for _, line := range recipe.Ingredients {
			k := key{ingredientID: line.IngredientID, unit: line.Unit}
			if idx, ok := indexByKey[k]; ok {
				items[idx].Quantity += line.Quantity
				continue
			}
			indexByKey[k] = len(items)
			items = append(items, ShoppingListItem{
				IngredientID: line.IngredientID,
				Unit:         line.Unit,
				Quantity:     line.Quantity,
			})
		}
	}
	return items, nil
}
