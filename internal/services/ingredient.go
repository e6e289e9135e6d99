package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mpcastro/recipebook-backend/internal/apperr"
	"github.com/mpcastro/recipebook-backend/internal/logger"
	"github.com/mpcastro/recipebook-backend/internal/normalization"
	"github.com/mpcastro/recipebook-backend/internal/repos"
	"github.com/mpcastro/recipebook-backend/internal/types"
)

type CreateIngredientInput struct {
	Name string
}

type UpdateIngredientInput struct {
	Name *string
}

type IngredientService interface {
	List(ctx context.Context) ([]*types.Ingredient, error)
	Get(ctx context.Context, id uuid.UUID) (*types.Ingredient, error)
	// FindByName looks an ingredient up by normalized name. A miss
	// returns (nil, nil).
	FindByName(ctx context.Context, name string) (*types.Ingredient, error)
	Create(ctx context.Context, input CreateIngredientInput) (*types.Ingredient, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateIngredientInput) (*types.Ingredient, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ingredientService struct {
	db             *gorm.DB
	log            *logger.Logger
	ingredientRepo repos.IngredientRepo
	recipeRepo     repos.RecipeRepo
}

func NewIngredientService(db *gorm.DB, log *logger.Logger, ingredientRepo repos.IngredientRepo, recipeRepo repos.RecipeRepo) IngredientService {
	serviceLog := log.With("service", "IngredientService")
	return &ingredientService{
		db:             db,
		log:            serviceLog,
		ingredientRepo: ingredientRepo,
		recipeRepo:     recipeRepo,
	}
}

func (is *ingredientService) List(ctx context.Context) ([]*types.Ingredient, error) {
	return is.ingredientRepo.List(ctx, nil)
}

func (is *ingredientService) Get(ctx context.Context, id uuid.UUID) (*types.Ingredient, error) {
	ingredient, err := is.ingredientRepo.GetByID(ctx, nil, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("ingredient not found")
		}
		return nil, err
	}
	return ingredient, nil
}

func (is *ingredientService) FindByName(ctx context.Context, name string) (*types.Ingredient, error) {
	return is.ingredientRepo.GetByNormalizedName(ctx, nil, normalization.NormalizeName(name))
}

func (is *ingredientService) Create(ctx context.Context, input CreateIngredientInput) (*types.Ingredient, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperr.InvalidArgument("ingredient name is required")
	}
	normalized := normalization.NormalizeName(name)

	var ingredient *types.Ingredient
	if err := is.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := is.ingredientRepo.GetByNormalizedName(ctx, tx, normalized)
		if err != nil {
			return err
		}
		if existing != nil {
			return apperr.Conflict("ingredient name already exists")
		}
		ingredient = &types.Ingredient{
			ID:             uuid.New(),
			Name:           name,
			NameNormalized: normalized,
			CreatedAt:      time.Now().UTC(),
		}
		return is.ingredientRepo.Create(ctx, tx, ingredient)
	}); err != nil {
		return nil, err
	}
	return ingredient, nil
}

func (is *ingredientService) Update(ctx context.Context, id uuid.UUID, input UpdateIngredientInput) (*types.Ingredient, error) {
	var ingredient *types.Ingredient
	if err := is.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := is.ingredientRepo.GetByID(ctx, tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("ingredient not found")
			}
			return err
		}

		if input.Name != nil {
			name := strings.TrimSpace(*input.Name)
			if name == "" {
				return apperr.InvalidArgument("ingredient name is required")
			}
			normalized := normalization.NormalizeName(name)
			existing, err := is.ingredientRepo.GetByNormalizedName(ctx, tx, normalized)
			if err != nil {
				return err
			}
			if existing != nil && existing.ID != id {
				return apperr.Conflict("ingredient name must be unique")
			}
			current.Name = name
			current.NameNormalized = normalized
		}

		ingredient = current
		return is.ingredientRepo.Update(ctx, tx, current)
	}); err != nil {
		return nil, err
	}
	return ingredient, nil
}

// Delete removes an ingredient unless a recipe line still references it,
// so recipes never end up with dangling ingredient ids. Deleting an
// unknown id is a silent no-op.
func (is *ingredientService) Delete(ctx context.Context, id uuid.UUID) error {
	return is.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		count, err := is.recipeRepo.CountByIngredientID(ctx, tx, id)
		if err != nil {
			return err
		}
		if count > 0 {
			return apperr.Conflict("cannot delete ingredient used by recipes")
		}
		return is.ingredientRepo.Delete(ctx, tx, id)
	})
}
