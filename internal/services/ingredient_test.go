package services

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/mpcastro/recipebook-backend/internal/apperr"
)

func TestIngredientServiceCreateAndFindByName(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.ingredients.Create(ctx, CreateIngredientInput{Name: " Açúcar "})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Name != "Açúcar" {
		t.Fatalf("Create: expected trimmed original name, got %q", created.Name)
	}

	if _, err := env.ingredients.Create(ctx, CreateIngredientInput{Name: "ACUCAR"}); !apperr.IsConflict(err) {
		t.Fatalf("Create variant: expected conflict, got %v", err)
	}
	if _, err := env.ingredients.Create(ctx, CreateIngredientInput{Name: ""}); !apperr.IsInvalidArgument(err) {
		t.Fatalf("Create empty: expected invalid_argument, got %v", err)
	}

	for _, variant := range []string{"açúcar", "ACUCAR", "  Açúcar "} {
		found, err := env.ingredients.FindByName(ctx, variant)
		if err != nil {
			t.Fatalf("FindByName(%q): %v", variant, err)
		}
		if found == nil || found.ID != created.ID {
			t.Fatalf("FindByName(%q): expected %s, got %+v", variant, created.ID, found)
		}
	}

	missing, err := env.ingredients.FindByName(ctx, "salt")
	if err != nil {
		t.Fatalf("FindByName miss: %v", err)
	}
	if missing != nil {
		t.Fatalf("FindByName miss: expected nil, got %+v", missing)
	}
}

func TestIngredientServiceDeleteGuard(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	breads := env.mustCategory(t, "Breads")
	recipe := env.mustRecipe(t, simpleRecipeInput("Sourdough", breads.ID))

	flour, err := env.ingredients.FindByName(ctx, "flour")
	if err != nil || flour == nil {
		t.Fatalf("FindByName(flour): %v, %+v", err, flour)
	}

	if err := env.ingredients.Delete(ctx, flour.ID); !apperr.IsConflict(err) {
		t.Fatalf("Delete in-use: expected conflict, got %v", err)
	}

	if err := env.recipes.Delete(ctx, recipe.ID); err != nil {
		t.Fatalf("delete recipe: %v", err)
	}
	if err := env.ingredients.Delete(ctx, flour.ID); err != nil {
		t.Fatalf("Delete after recipe removed: %v", err)
	}
	if _, err := env.ingredients.Get(ctx, flour.ID); !apperr.IsNotFound(err) {
		t.Fatalf("Get after delete: expected not_found, got %v", err)
	}

	// Unknown id is a silent no-op.
	if err := env.ingredients.Delete(ctx, uuid.New()); err != nil {
		t.Fatalf("Delete unknown: %v", err)
	}
}
