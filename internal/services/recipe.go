package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/mpcastro/recipebook-backend/internal/apperr"
	"github.com/mpcastro/recipebook-backend/internal/logger"
	"github.com/mpcastro/recipebook-backend/internal/normalization"
	"github.com/mpcastro/recipebook-backend/internal/repos"
	"github.com/mpcastro/recipebook-backend/internal/types"
	"github.com/mpcastro/recipebook-backend/internal/workflow"
)

// RecipeIngredientInput is one free-text ingredient line as sent by the
// caller; Name is resolved to an ingredient id during create/update.
type RecipeIngredientInput struct {
	Name     string
	Quantity float64
	Unit     string
}

type CreateRecipeInput struct {
	Title       string
	Description string
	Ingredients []RecipeIngredientInput
	Steps       []string
	Servings    float64
	CategoryID  uuid.UUID
}

// UpdateRecipeInput carries optional field replacements; nil pointers
// (and a nil Ingredients slice) leave the current value unchanged. A
// supplied Ingredients slice fully replaces the line list.
type UpdateRecipeInput struct {
	Title       *string
	Description *string
	Ingredients []RecipeIngredientInput
	Steps       *[]string
	Servings    *float64
	CategoryID  *uuid.UUID
}

type RecipeFilter struct {
	CategoryID   *uuid.UUID
	CategoryName string
	Search       string
}

type RecipeService interface {
	// List returns published recipes only, optionally filtered by
	// category and free-text search across title, description and
	// resolved ingredient names.
	List(ctx context.Context, filter *RecipeFilter) ([]*types.Recipe, error)
	// Get fails not_found for archived recipes, indistinguishable from
	// unknown ids.
	Get(ctx context.Context, id uuid.UUID) (*types.Recipe, error)
	Create(ctx context.Context, input CreateRecipeInput) (*types.Recipe, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateRecipeInput) (*types.Recipe, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Publish(ctx context.Context, id uuid.UUID) (*types.Recipe, error)
	Archive(ctx context.Context, id uuid.UUID) (*types.Recipe, error)
}

type recipeService struct {
	db             *gorm.DB
	log            *logger.Logger
	recipeRepo     repos.RecipeRepo
	categoryRepo   repos.CategoryRepo
	ingredientRepo repos.IngredientRepo
}

func NewRecipeService(db *gorm.DB, log *logger.Logger, recipeRepo repos.RecipeRepo, categoryRepo repos.CategoryRepo, ingredientRepo repos.IngredientRepo) RecipeService {
	serviceLog := log.With("service", "RecipeService")
	return &recipeService{
		db:             db,
		log:            serviceLog,
		recipeRepo:     recipeRepo,
		categoryRepo:   categoryRepo,
		ingredientRepo: ingredientRepo,
	}
}

func (rs *recipeService) List(ctx context.Context, filter *RecipeFilter) ([]*types.Recipe, error) {
	var categoryID *uuid.UUID
	if filter != nil {
		if name := strings.TrimSpace(filter.CategoryName); name != "" {
			category, err := rs.categoryRepo.GetByNormalizedName(ctx, nil, normalization.NormalizeName(name))
			if err != nil {
				return nil, err
			}
			if category == nil {
				// Unknown category name short-circuits to an empty
				// result, not an error.
				return []*types.Recipe{}, nil
			}
			categoryID = &category.ID
		} else if filter.CategoryID != nil {
			categoryID = filter.CategoryID
		}
	}

	published := types.RecipeStatusPublished
	recipes, err := rs.recipeRepo.List(ctx, nil, &published, categoryID)
	if err != nil {
		return nil, err
	}

	if filter == nil {
		return recipes, nil
	}
	search := strings.ToLower(strings.TrimSpace(filter.Search))
	if search == "" {
		return recipes, nil
	}

	ingredients, err := rs.ingredientRepo.List(ctx, nil)
	if err != nil {
		return nil, err
	}
	nameByID := make(map[uuid.UUID]string, len(ingredients))
	for _, ingredient := range ingredients {
		nameByID[ingredient.ID] = strings.ToLower(ingredient.Name)
	}

	matched := make([]*types.Recipe, 0, len(recipes))
	for _, recipe := range recipes {
		if recipeMatchesSearch(recipe, search, nameByID) {
			matched = append(matched, recipe)
		}
	}
	return matched, nil
}

func recipeMatchesSearch(recipe *types.Recipe, search string, ingredientNameByID map[uuid.UUID]string) bool {
	if strings.Contains(strings.ToLower(recipe.Title), search) {
		return true
	}
	if recipe.Description != "" && strings.Contains(strings.ToLower(recipe.Description), search) {
		return true
	}
	for _, line := range recipe.Ingredients {
		if name, ok := ingredientNameByID[line.IngredientID]; ok && strings.Contains(name, search) {
			return true
		}
	}
	return false
}

func (rs *recipeService) Get(ctx context.Context, id uuid.UUID) (*types.Recipe, error) {
	recipe, err := rs.recipeRepo.GetByID(ctx, nil, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("recipe not found")
		}
		return nil, err
	}
	if recipe.Status == types.RecipeStatusArchived {
		return nil, apperr.NotFound("recipe not found")
	}
	return recipe, nil
}

// validateIngredientInputs trims and checks every line up front so no
// repository mutation happens for a payload that fails later.
func validateIngredientInputs(inputs []RecipeIngredientInput) ([]RecipeIngredientInput, error) {
	if len(inputs) == 0 {
		return nil, apperr.InvalidArgument("ingredients are required")
	}
	validated := make([]RecipeIngredientInput, 0, len(inputs))
	for _, input := range inputs {
		line := RecipeIngredientInput{
			Name:     strings.TrimSpace(input.Name),
			Quantity: input.Quantity,
			Unit:     strings.TrimSpace(input.Unit),
		}
		if line.Name == "" {
			return nil, apperr.InvalidArgument("ingredient name is required")
		}
		if !(line.Quantity > 0) {
			return nil, apperr.InvalidArgument("ingredient quantity must be greater than zero")
		}
		if line.Unit == "" {
			return nil, apperr.InvalidArgument("ingredient unit is required")
		}
		validated = append(validated, line)
	}
	return validated, nil
}

// resolveIngredientLines maps each input line's free-text name to an
// ingredient id, creating missing ingredients on the fly. Each line is
// resolved independently; the find-or-create is atomic on the normalized
// name, so duplicate names converge on one ingredient row.
func (rs *recipeService) resolveIngredientLines(ctx context.Context, tx *gorm.DB, recipeID uuid.UUID, inputs []RecipeIngredientInput) ([]types.RecipeIngredient, error) {
	lines := make([]types.RecipeIngredient, 0, len(inputs))
	for position, input := range inputs {
		candidate := &types.Ingredient{
			ID:             uuid.New(),
			Name:           input.Name,
			NameNormalized: normalization.NormalizeName(input.Name),
			CreatedAt:      time.Now().UTC(),
		}
		ingredient, created, err := rs.ingredientRepo.FindOrCreate(ctx, tx, candidate)
		if err != nil {
			return nil, err
		}
		if created {
			rs.log.Debug("Created ingredient during resolution", "ingredient_id", ingredient.ID, "name", ingredient.Name)
		}
		lines = append(lines, types.RecipeIngredient{
			ID:           uuid.New(),
			RecipeID:     recipeID,
			Position:     position,
			IngredientID: ingredient.ID,
			Quantity:     input.Quantity,
			Unit:         input.Unit,
		})
	}
	return lines, nil
}

func (rs *recipeService) ensureCategoryExists(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	if _, err := rs.categoryRepo.GetByID(ctx, tx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.InvalidArgument("category does not exist")
		}
		return err
	}
	return nil
}

func (rs *recipeService) Create(ctx context.Context, input CreateRecipeInput) (*types.Recipe, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, apperr.InvalidArgument("title is required")
	}
	validated, err := validateIngredientInputs(input.Ingredients)
	if err != nil {
		return nil, err
	}
	if !(input.Servings > 0) {
		return nil, apperr.InvalidArgument("servings must be greater than zero")
	}

	var recipe *types.Recipe
	if err := rs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := rs.ensureCategoryExists(ctx, tx, input.CategoryID); err != nil {
			return err
		}

		recipeID := uuid.New()
		lines, err := rs.resolveIngredientLines(ctx, tx, recipeID, validated)
		if err != nil {
			return err
		}

		steps := input.Steps
		if steps == nil {
			steps = []string{}
		}
		recipe = &types.Recipe{
			ID:          recipeID,
			Title:       title,
			Description: input.Description,
			Ingredients: lines,
			Steps:       datatypes.NewJSONSlice(steps),
			Servings:    input.Servings,
			CategoryID:  input.CategoryID,
			Status:      types.RecipeStatusDraft,
			CreatedAt:   time.Now().UTC(),
		}
		return rs.recipeRepo.Create(ctx, tx, recipe)
	}); err != nil {
		return nil, err
	}
	return recipe, nil
}

func (rs *recipeService) Update(ctx context.Context, id uuid.UUID, input UpdateRecipeInput) (*types.Recipe, error) {
	var validated []RecipeIngredientInput
	if input.Ingredients != nil {
		lines, err := validateIngredientInputs(input.Ingredients)
		if err != nil {
			return nil, err
		}
		validated = lines
	}
	if input.Title != nil && strings.TrimSpace(*input.Title) == "" {
		return nil, apperr.InvalidArgument("title is required")
	}
	if input.Servings != nil && !(*input.Servings > 0) {
		return nil, apperr.InvalidArgument("servings must be greater than zero")
	}

	var recipe *types.Recipe
	if err := rs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := rs.recipeRepo.GetByID(ctx, tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("recipe not found")
			}
			return err
		}
		if err := workflow.EnsureMutable(current); err != nil {
			return err
		}

		if input.CategoryID != nil {
			if err := rs.ensureCategoryExists(ctx, tx, *input.CategoryID); err != nil {
				return err
			}
			current.CategoryID = *input.CategoryID
		}
		if input.Title != nil {
			current.Title = strings.TrimSpace(*input.Title)
		}
		if input.Description != nil {
			current.Description = *input.Description
		}
		if input.Steps != nil {
			current.Steps = datatypes.NewJSONSlice(*input.Steps)
		}
		if input.Servings != nil {
			current.Servings = *input.Servings
		}

		if validated != nil {
			lines, err := rs.resolveIngredientLines(ctx, tx, current.ID, validated)
			if err != nil {
				return err
			}
			if err := rs.recipeRepo.ReplaceIngredients(ctx, tx, current.ID, lines); err != nil {
				return err
			}
			current.Ingredients = lines
		}

		recipe = current
		return rs.recipeRepo.Update(ctx, tx, current)
	}); err != nil {
		return nil, err
	}
	return recipe, nil
}

func (rs *recipeService) Delete(ctx context.Context, id uuid.UUID) error {
	return rs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := rs.recipeRepo.GetByID(ctx, tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("recipe not found")
			}
			return err
		}
		if err := workflow.EnsureDeletable(current); err != nil {
			return err
		}
		return rs.recipeRepo.Delete(ctx, tx, id)
	})
}

func (rs *recipeService) Publish(ctx context.Context, id uuid.UUID) (*types.Recipe, error) {
	return rs.transition(ctx, id, workflow.Publish)
}

func (rs *recipeService) Archive(ctx context.Context, id uuid.UUID) (*types.Recipe, error) {
	return rs.transition(ctx, id, workflow.Archive)
}

func (rs *recipeService) transition(ctx context.Context, id uuid.UUID, apply func(*types.Recipe) error) (*types.Recipe, error) {
	var recipe *types.Recipe
	if err := rs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := rs.recipeRepo.GetByID(ctx, tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("recipe not found")
			}
			return err
		}
		if err := apply(current); err != nil {
			return err
		}
		recipe = current
		return rs.recipeRepo.Update(ctx, tx, current)
	}); err != nil {
		return nil, err
	}
	return recipe, nil
}
