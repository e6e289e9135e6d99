package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mpcastro/recipebook-backend/internal/logger"
	"github.com/mpcastro/recipebook-backend/internal/types"
)

type RecipeRepo interface {
	// List returns recipes in insertion order, optionally narrowed by
	// status and category. Ingredient lines are preloaded in position
	// order.
	List(ctx context.Context, tx *gorm.DB, status *types.RecipeStatus, categoryID *uuid.UUID) ([]*types.Recipe, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Recipe, error)
	Create(ctx context.Context, tx *gorm.DB, recipe *types.Recipe) error
	// Update persists the recipe's scalar fields only; ingredient lines
	// are replaced through ReplaceIngredients.
	Update(ctx context.Context, tx *gorm.DB, recipe *types.Recipe) error
	ReplaceIngredients(ctx context.Context, tx *gorm.DB, recipeID uuid.UUID, lines []types.RecipeIngredient) error
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
	CountByCategoryID(ctx context.Context, tx *gorm.DB, categoryID uuid.UUID) (int64, error)
	CountByIngredientID(ctx context.Context, tx *gorm.DB, ingredientID uuid.UUID) (int64, error)
}

type recipeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRecipeRepo(db *gorm.DB, baseLog *logger.Logger) RecipeRepo {
	repoLog := baseLog.With("repo", "RecipeRepo")
	return &recipeRepo{db: db, log: repoLog}
}

func preloadIngredients(db *gorm.DB) *gorm.DB {
	return db.Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	})
}

func (rr *recipeRepo) List(ctx context.Context, tx *gorm.DB, status *types.RecipeStatus, categoryID *uuid.UUID) ([]*types.Recipe, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}

	query := preloadIngredients(transaction.WithContext(ctx)).Order("created_at ASC")
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}

	var results []*types.Recipe
	if err := query.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (rr *recipeRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Recipe, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}

	var result types.Recipe
	if err := preloadIngredients(transaction.WithContext(ctx)).
		Where("id = ?", id).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (rr *recipeRepo) Create(ctx context.Context, tx *gorm.DB, recipe *types.Recipe) error {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	return transaction.WithContext(ctx).Create(recipe).Error
}

func (rr *recipeRepo) Update(ctx context.Context, tx *gorm.DB, recipe *types.Recipe) error {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	return transaction.WithContext(ctx).
		Omit(clause.Associations).
		Save(recipe).Error
}

func (rr *recipeRepo) ReplaceIngredients(ctx context.Context, tx *gorm.DB, recipeID uuid.UUID, lines []types.RecipeIngredient) error {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}

	if err := transaction.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Delete(&types.RecipeIngredient{}).Error; err != nil {
		return err
	}
	if len(lines) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).Create(&lines).Error
}

func (rr *recipeRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}

	if err := transaction.WithContext(ctx).
		Where("recipe_id = ?", id).
		Delete(&types.RecipeIngredient{}).Error; err != nil {
		return err
	}
	return transaction.WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.Recipe{}).Error
}

func (rr *recipeRepo) CountByCategoryID(ctx context.Context, tx *gorm.DB, categoryID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Recipe{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (rr *recipeRepo) CountByIngredientID(ctx context.Context, tx *gorm.DB, ingredientID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.RecipeIngredient{}).
		Where("ingredient_id = ?", ingredientID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
