package repos

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mpcastro/recipebook-backend/internal/repos/testutil"
	"github.com/mpcastro/recipebook-backend/internal/types"
)

func TestRecipeRepoCRUD(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewRecipeRepo(db, testutil.Logger(t))
	ctx := context.Background()

	category := testutil.NewCategory("Breads")
	if err := tx.Create(category).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}
	flour := testutil.NewIngredient("flour")
	water := testutil.NewIngredient("water")
	if err := tx.Create([]*types.Ingredient{flour, water}).Error; err != nil {
		t.Fatalf("seed ingredients: %v", err)
	}

	recipe := testutil.NewRecipe("Sourdough", category.ID,
		testutil.Line(flour.ID, 500, "g"),
		testutil.Line(water.ID, 350, "ml"),
	)
	if err := repo.Create(ctx, tx, recipe); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByID(ctx, tx, recipe.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if len(got.Ingredients) != 2 {
		t.Fatalf("GetByID: expected 2 lines, got %d", len(got.Ingredients))
	}
	// Lines come back in input (position) order.
	if got.Ingredients[0].IngredientID != flour.ID || got.Ingredients[1].IngredientID != water.ID {
		t.Fatalf("GetByID: lines out of order: %+v", got.Ingredients)
	}
	if len(got.Steps) != 2 {
		t.Fatalf("GetByID: expected steps preserved, got %v", got.Steps)
	}

	count, err := repo.CountByCategoryID(ctx, tx, category.ID)
	if err != nil {
		t.Fatalf("CountByCategoryID: %v", err)
	}
	if count != 1 {
		t.Fatalf("CountByCategoryID: expected 1, got %d", count)
	}

	count, err = repo.CountByIngredientID(ctx, tx, flour.ID)
	if err != nil {
		t.Fatalf("CountByIngredientID: %v", err)
	}
	if count != 1 {
		t.Fatalf("CountByIngredientID: expected 1, got %d", count)
	}

	// Replace the lines with a single one.
	newLines := []types.RecipeIngredient{{
		ID:           uuid.New(),
		RecipeID:     recipe.ID,
		Position:     0,
		IngredientID: water.ID,
		Quantity:     100,
		Unit:         "ml",
	}}
	if err := repo.ReplaceIngredients(ctx, tx, recipe.ID, newLines); err != nil {
		t.Fatalf("ReplaceIngredients: %v", err)
	}
	got, err = repo.GetByID(ctx, tx, recipe.ID)
	if err != nil {
		t.Fatalf("GetByID after replace: %v", err)
	}
	if len(got.Ingredients) != 1 || got.Ingredients[0].IngredientID != water.ID {
		t.Fatalf("ReplaceIngredients: unexpected lines %+v", got.Ingredients)
	}

	if err := repo.Delete(ctx, tx, recipe.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, tx, recipe.ID); err != gorm.ErrRecordNotFound {
		t.Fatalf("GetByID after delete: expected gorm.ErrRecordNotFound, got %v", err)
	}
	var lineCount int64
	if err := tx.Model(&types.RecipeIngredient{}).Where("recipe_id = ?", recipe.ID).Count(&lineCount).Error; err != nil {
		t.Fatalf("count lines: %v", err)
	}
	if lineCount != 0 {
		t.Fatalf("Delete: expected lines removed, found %d", lineCount)
	}
}

func TestRecipeRepoListFilters(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewRecipeRepo(db, testutil.Logger(t))
	ctx := context.Background()

	breads := testutil.NewCategory("Breads")
	cakes := testutil.NewCategory("Cakes")
	if err := tx.Create([]*types.Category{breads, cakes}).Error; err != nil {
		t.Fatalf("seed categories: %v", err)
	}
	flour := testutil.NewIngredient("flour")
	if err := tx.Create(flour).Error; err != nil {
		t.Fatalf("seed ingredient: %v", err)
	}

	draft := testutil.NewRecipe("Draft loaf", breads.ID, testutil.Line(flour.ID, 1, "kg"))
	published := testutil.NewRecipe("Published loaf", breads.ID, testutil.Line(flour.ID, 1, "kg"))
	published.Status = types.RecipeStatusPublished
	cake := testutil.NewRecipe("Published cake", cakes.ID, testutil.Line(flour.ID, 1, "kg"))
	cake.Status = types.RecipeStatusPublished
	for _, r := range []*types.Recipe{draft, published, cake} {
		if err := repo.Create(ctx, tx, r); err != nil {
			t.Fatalf("Create(%s): %v", r.Title, err)
		}
	}

	publishedStatus := types.RecipeStatusPublished
	got, err := repo.List(ctx, tx, &publishedStatus, nil)
	if err != nil {
		t.Fatalf("List published: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("List published: expected 2, got %d", len(got))
	}

	got, err = repo.List(ctx, tx, &publishedStatus, &breads.ID)
	if err != nil {
		t.Fatalf("List published+category: %v", err)
	}
	if len(got) != 1 || got[0].ID != published.ID {
		t.Fatalf("List published+category: unexpected %+v", got)
	}

	got, err = repo.List(ctx, tx, nil, nil)
	if err != nil {
		t.Fatalf("List all: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("List all: expected 3, got %d", len(got))
	}
}
