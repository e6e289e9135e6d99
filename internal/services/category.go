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

type CreateCategoryInput struct {
	Name string
}

type UpdateCategoryInput struct {
	Name *string
}

type CategoryService interface {
	List(ctx context.Context) ([]*types.Category, error)
	Get(ctx context.Context, id uuid.UUID) (*types.Category, error)
	Create(ctx context.Context, input CreateCategoryInput) (*types.Category, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateCategoryInput) (*types.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type categoryService struct {
	db           *gorm.DB
	log          *logger.Logger
	categoryRepo repos.CategoryRepo
	recipeRepo   repos.RecipeRepo
}

func NewCategoryService(db *gorm.DB, log *logger.Logger, categoryRepo repos.CategoryRepo, recipeRepo repos.RecipeRepo) CategoryService {
	serviceLog := log.With("service", "CategoryService")
	return &categoryService{
		db:           db,
		log:          serviceLog,
		categoryRepo: categoryRepo,
		recipeRepo:   recipeRepo,
	}
}

func (cs *categoryService) List(ctx context.Context) ([]*types.Category, error) {
	return cs.categoryRepo.List(ctx, nil)
}

func (cs *categoryService) Get(ctx context.Context, id uuid.UUID) (*types.Category, error) {
	category, err := cs.categoryRepo.GetByID(ctx, nil, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("category not found")
		}
		return nil, err
	}
	return category, nil
}

func (cs *categoryService) Create(ctx context.Context, input CreateCategoryInput) (*types.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperr.InvalidArgument("category name is required")
	}
	normalized := normalization.NormalizeName(name)

	var category *types.Category
	if err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := cs.categoryRepo.GetByNormalizedName(ctx, tx, normalized)
		if err != nil {
			return err
		}
		if existing != nil {
			return apperr.Conflict("category name already exists")
		}
		category = &types.Category{
			ID:             uuid.New(),
			Name:           name,
			NameNormalized: normalized,
			CreatedAt:      time.Now().UTC(),
		}
		return cs.categoryRepo.Create(ctx, tx, category)
	}); err != nil {
		return nil, err
	}
	return category, nil
}

func (cs *categoryService) Update(ctx context.Context, id uuid.UUID, input UpdateCategoryInput) (*types.Category, error) {
	var category *types.Category
	if err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := cs.categoryRepo.GetByID(ctx, tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("category not found")
			}
			return err
		}

		if input.Name != nil {
			name := strings.TrimSpace(*input.Name)
			if name == "" {
				return apperr.InvalidArgument("category name is required")
			}
			normalized := normalization.NormalizeName(name)
			existing, err := cs.categoryRepo.GetByNormalizedName(ctx, tx, normalized)
			if err != nil {
				return err
			}
			if existing != nil && existing.ID != id {
				return apperr.Conflict("category name must be unique")
			}
			current.Name = name
			current.NameNormalized = normalized
		}

		category = current
		return cs.categoryRepo.Update(ctx, tx, current)
	}); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete removes a category unless any recipe still references it.
// Deleting an unknown id is a no-op.
func (cs *categoryService) Delete(ctx context.Context, id uuid.UUID) error {
	return cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		count, err := cs.recipeRepo.CountByCategoryID(ctx, tx, id)
		if err != nil {
			return err
		}
		if count > 0 {
			return apperr.Conflict("cannot delete category with recipes")
		}
		return cs.categoryRepo.Delete(ctx, tx, id)
	})
}
