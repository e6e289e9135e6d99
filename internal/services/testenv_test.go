package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mpcastro/recipebook-backend/internal/repos"
	"github.com/mpcastro/recipebook-backend/internal/repos/testutil"
	"github.com/mpcastro/recipebook-backend/internal/types"
)

type testEnv struct {
	db          *gorm.DB
	categories  CategoryService
	ingredients IngredientService
	recipes     RecipeService
	compute     ComputeService
}

// newTestEnv wires the full service stack against the shared in-memory
// database, emptied first. Services open their own transactions, so
// isolation is by reset rather than rollback.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gdb := testutil.DB(t)
	testutil.Reset(t, gdb)
	log := testutil.Logger(t)

	categoryRepo := repos.NewCategoryRepo(gdb, log)
	ingredientRepo := repos.NewIngredientRepo(gdb, log)
	recipeRepo := repos.NewRecipeRepo(gdb, log)

	recipeService := NewRecipeService(gdb, log, recipeRepo, categoryRepo, ingredientRepo)
	return &testEnv{
		db:          gdb,
		categories:  NewCategoryService(gdb, log, categoryRepo, recipeRepo),
		ingredients: NewIngredientService(gdb, log, ingredientRepo, recipeRepo),
		recipes:     recipeService,
		compute:     NewComputeService(log, recipeService),
	}
}

func (env *testEnv) mustCategory(t *testing.T, name string) *types.Category {
	t.Helper()
	category, err := env.categories.Create(context.Background(), CreateCategoryInput{Name: name})
	if err != nil {
		t.Fatalf("create category %q: %v", name, err)
	}
	return category
}

func (env *testEnv) mustRecipe(t *testing.T, input CreateRecipeInput) *types.Recipe {
	t.Helper()
	recipe, err := env.recipes.Create(context.Background(), input)
	if err != nil {
		t.Fatalf("create recipe %q: %v", input.Title, err)
	}
	return recipe
}

func simpleRecipeInput(title string, categoryID uuid.UUID) CreateRecipeInput {
	return CreateRecipeInput{
		Title: title,
		Ingredients: []RecipeIngredientInput{
			{Name: "flour", Quantity: 500, Unit: "g"},
		},
		Steps:      []string{"mix", "bake"},
		Servings:   4,
		CategoryID: categoryID,
	}
}

func (env *testEnv) ingredientCount(t *testing.T) int64 {
	t.Helper()
	var count int64
	if err := env.db.Model(&types.Ingredient{}).Count(&count).Error; err != nil {
		t.Fatalf("count ingredients: %v", err)
	}
	return count
}
