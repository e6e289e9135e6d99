package services

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/mpcastro/recipebook-backend/internal/apperr"
)

func TestCategoryServiceCreate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.categories.Create(ctx, CreateCategoryInput{Name: "  Desserts "})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Name != "Desserts" {
		t.Fatalf("Create: expected trimmed name, got %q", created.Name)
	}

	// Any case/accent variant of an existing name conflicts.
	for _, variant := range []string{"desserts", " DESSERTS ", "Désserts"} {
		if _, err := env.categories.Create(ctx, CreateCategoryInput{Name: variant}); !apperr.IsConflict(err) {
			t.Fatalf("Create(%q): expected conflict, got %v", variant, err)
		}
	}

	if _, err := env.categories.Create(ctx, CreateCategoryInput{Name: "   "}); !apperr.IsInvalidArgument(err) {
		t.Fatalf("Create(blank): expected invalid_argument, got %v", err)
	}

	// A genuinely new name succeeds.
	if _, err := env.categories.Create(ctx, CreateCategoryInput{Name: "Soups"}); err != nil {
		t.Fatalf("Create(Soups): %v", err)
	}
}

func TestCategoryServiceGetUpdate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	desserts := env.mustCategory(t, "Desserts")
	soups := env.mustCategory(t, "Soups")

	got, err := env.categories.Get(ctx, desserts.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ID != desserts.ID {
		t.Fatalf("Get: wrong category %+v", got)
	}

	if _, err := env.categories.Get(ctx, uuid.New()); !apperr.IsNotFound(err) {
		t.Fatalf("Get unknown: expected not_found, got %v", err)
	}

	// Renaming onto another category's normalized name conflicts.
	name := " SOUPS "
	if _, err := env.categories.Update(ctx, desserts.ID, UpdateCategoryInput{Name: &name}); !apperr.IsConflict(err) {
		t.Fatalf("Update collision: expected conflict, got %v", err)
	}

	// Renaming to a case variant of its own name is allowed.
	self := "DESSERTS"
	updated, err := env.categories.Update(ctx, desserts.ID, UpdateCategoryInput{Name: &self})
	if err != nil {
		t.Fatalf("Update self-rename: %v", err)
	}
	if updated.Name != "DESSERTS" {
		t.Fatalf("Update: name=%q, want DESSERTS", updated.Name)
	}

	if _, err := env.categories.Update(ctx, uuid.New(), UpdateCategoryInput{Name: &self}); !apperr.IsNotFound(err) {
		t.Fatalf("Update unknown: expected not_found, got %v", err)
	}
	_ = soups
}

func TestCategoryServiceDelete(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	breads := env.mustCategory(t, "Breads")
	env.mustRecipe(t, simpleRecipeInput("Sourdough", breads.ID))

	if err := env.categories.Delete(ctx, breads.ID); !apperr.IsConflict(err) {
		t.Fatalf("Delete in-use: expected conflict, got %v", err)
	}

	empty := env.mustCategory(t, "Empty")
	if err := env.categories.Delete(ctx, empty.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := env.categories.Get(ctx, empty.ID); !apperr.IsNotFound(err) {
		t.Fatalf("Get after delete: expected not_found, got %v", err)
	}

	// Unknown id is a silent no-op.
	if err := env.categories.Delete(ctx, uuid.New()); err != nil {
		t.Fatalf("Delete unknown: %v", err)
	}
}
