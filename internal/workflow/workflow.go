// Package workflow implements the recipe publication state machine:
// draft -> published -> archived, with archived terminal.
package workflow

import (
	"github.com/mpcastro/recipebook-backend/internal/apperr"
	"github.com/mpcastro/recipebook-backend/internal/types"
)

// Publish moves a draft recipe to published.
func Publish(recipe *types.Recipe) error {
	if recipe.Status != types.RecipeStatusDraft {
		return apperr.InvalidState("only draft recipes can be published")
	}
	recipe.Status = types.RecipeStatusPublished
	return nil
}

// Archive moves a published recipe to archived.
func Archive(recipe *types.Recipe) error {
	if recipe.Status != types.RecipeStatusPublished {
		return apperr.InvalidState("only published recipes can be archived")
	}
	recipe.Status = types.RecipeStatusArchived
	return nil
}

// EnsureMutable guards update operations: archived recipes are frozen.
func EnsureMutable(recipe *types.Recipe) error {
	if recipe.Status == types.RecipeStatusArchived {
		return apperr.InvalidState("recipe is archived and cannot be edited")
	}
	return nil
}

// EnsureDeletable guards delete operations: published recipes must be
// archived before they can be removed.
func EnsureDeletable(recipe *types.Recipe) error {
	if recipe.Status == types.RecipeStatusPublished {
		return apperr.InvalidState("only draft or archived recipes can be deleted")
	}
	return nil
}
