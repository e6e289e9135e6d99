package workflow

import (
	"testing"

	"github.com/mpcastro/recipebook-backend/internal/apperr"
	"github.com/mpcastro/recipebook-backend/internal/types"
)

func TestPublish(t *testing.T) {
	recipe := &types.Recipe{Status: types.RecipeStatusDraft}
	if err := Publish(recipe); err != nil {
		t.Fatalf("Publish from draft: %v", err)
	}
	if recipe.Status != types.RecipeStatusPublished {
		t.Fatalf("Publish: status=%q, want published", recipe.Status)
	}

	// Publishing twice is illegal.
	if err := Publish(recipe); !apperr.IsInvalidState(err) {
		t.Fatalf("Publish from published: expected invalid_state, got %v", err)
	}

	recipe.Status = types.RecipeStatusArchived
	if err := Publish(recipe); !apperr.IsInvalidState(err) {
		t.Fatalf("Publish from archived: expected invalid_state, got %v", err)
	}
	if recipe.Status != types.RecipeStatusArchived {
		t.Fatalf("Publish must not mutate status on failure, got %q", recipe.Status)
	}
}

func TestArchive(t *testing.T) {
	recipe := &types.Recipe{Status: types.RecipeStatusDraft}
	if err := Archive(recipe); !apperr.IsInvalidState(err) {
		t.Fatalf("Archive from draft: expected invalid_state, got %v", err)
	}

	recipe.Status = types.RecipeStatusPublished
	if err := Archive(recipe); err != nil {
		t.Fatalf("Archive from published: %v", err)
	}
	if recipe.Status != types.RecipeStatusArchived {
		t.Fatalf("Archive: status=%q, want archived", recipe.Status)
	}

	// Archived is terminal.
	if err := Archive(recipe); !apperr.IsInvalidState(err) {
		t.Fatalf("Archive from archived: expected invalid_state, got %v", err)
	}
}

func TestEnsureMutable(t *testing.T) {
	for _, status := range []types.RecipeStatus{types.RecipeStatusDraft, types.RecipeStatusPublished} {
		if err := EnsureMutable(&types.Recipe{Status: status}); err != nil {
			t.Fatalf("EnsureMutable(%q): %v", status, err)
		}
	}
	err := EnsureMutable(&types.Recipe{Status: types.RecipeStatusArchived})
	if !apperr.IsInvalidState(err) {
		t.Fatalf("EnsureMutable(archived): expected invalid_state, got %v", err)
	}
}

func TestEnsureDeletable(t *testing.T) {
	for _, status := range []types.RecipeStatus{types.RecipeStatusDraft, types.RecipeStatusArchived} {
		if err := EnsureDeletable(&types.Recipe{Status: status}); err != nil {
			t.Fatalf("EnsureDeletable(%q): %v", status, err)
		}
	}
	err := EnsureDeletable(&types.Recipe{Status: types.RecipeStatusPublished})
	if !apperr.IsInvalidState(err) {
		t.Fatalf("EnsureDeletable(published): expected invalid_state, got %v", err)
	}
}
