package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mpcastro/recipebook-backend/internal/logger"
	"github.com/mpcastro/recipebook-backend/internal/types"
)

type IngredientRepo interface {
	List(ctx context.Context, tx *gorm.DB) ([]*types.Ingredient, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Ingredient, error)
	GetByNormalizedName(ctx context.Context, tx *gorm.DB, nameNormalized string) (*types.Ingredient, error)
	Create(ctx context.Context, tx *gorm.DB, ingredient *types.Ingredient) error
	// FindOrCreate inserts the ingredient unless one with the same
	// normalized name already exists, in which case the existing row is
	// returned. The insert uses ON CONFLICT DO NOTHING on the
	// name_normalized unique index, so concurrent callers racing on the
	// same new name converge on a single row.
	FindOrCreate(ctx context.Context, tx *gorm.DB, ingredient *types.Ingredient) (*types.Ingredient, bool, error)
	Update(ctx context.Context, tx *gorm.DB, ingredient *types.Ingredient) error
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type ingredientRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewIngredientRepo(db *gorm.DB, baseLog *logger.Logger) IngredientRepo {
	repoLog := baseLog.With("repo", "IngredientRepo")
	return &ingredientRepo{db: db, log: repoLog}
}

func (ir *ingredientRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Ingredient, error) {
	transaction := tx
	if transaction == nil {
		transaction = ir.db
	}

	var results []*types.Ingredient
	if err := transaction.WithContext(ctx).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (ir *ingredientRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Ingredient, error) {
	transaction := tx
	if transaction == nil {
		transaction = ir.db
	}

	var result types.Ingredient
	if err := transaction.WithContext(ctx).
		Where("id = ?", id).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (ir *ingredientRepo) GetByNormalizedName(ctx context.Context, tx *gorm.DB, nameNormalized string) (*types.Ingredient, error) {
	transaction := tx
	if transaction == nil {
		transaction = ir.db
	}

	var results []*types.Ingredient
	if err := transaction.WithContext(ctx).
		Where("name_normalized = ?", nameNormalized).
		Limit(1).
		Find(&results).Error; err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return results[0], nil
}

func (ir *ingredientRepo) Create(ctx context.Context, tx *gorm.DB, ingredient *types.Ingredient) error {
	transaction := tx
	if transaction == nil {
		transaction = ir.db
	}
	return transaction.WithContext(ctx).Create(ingredient).Error
}

func (ir *ingredientRepo) FindOrCreate(ctx context.Context, tx *gorm.DB, ingredient *types.Ingredient) (*types.Ingredient, bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = ir.db
	}

	res := transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name_normalized"}},
			DoNothing: true,
		}).
		Create(ingredient)
	if res.Error != nil {
		return nil, false, res.Error
	}
	if res.RowsAffected > 0 {
		return ingredient, true, nil
	}

	// Conflict: another row already holds this normalized name.
	existing, err := ir.GetByNormalizedName(ctx, tx, ingredient.NameNormalized)
	if err != nil {
		return nil, false, err
	}
	if existing == nil {
		return nil, false, gorm.ErrRecordNotFound
	}
	return existing, false, nil
}

func (ir *ingredientRepo) Update(ctx context.Context, tx *gorm.DB, ingredient *types.Ingredient) error {
	transaction := tx
	if transaction == nil {
		transaction = ir.db
	}
	return transaction.WithContext(ctx).Save(ingredient).Error
}

func (ir *ingredientRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = ir.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.Ingredient{}).Error
}
