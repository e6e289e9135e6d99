package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// RecipeStatus is the publication state of a recipe. New recipes always
// start as draft; the only legal transitions are draft -> published and
// published -> archived.
type RecipeStatus string

const (
	RecipeStatusDraft     RecipeStatus = "draft"
	RecipeStatusPublished RecipeStatus = "published"
	RecipeStatusArchived  RecipeStatus = "archived"
)

type Recipe struct {
	ID          uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string                      `gorm:"not null;column:title" json:"title"`
	Description string                      `gorm:"column:description" json:"description,omitempty"`
	Ingredients []RecipeIngredient          `gorm:"foreignKey:RecipeID;references:ID" json:"ingredients"`
	Steps       datatypes.JSONSlice[string] `gorm:"column:steps" json:"steps"`
	Servings    float64                     `gorm:"not null" json:"servings"`
	CategoryID  uuid.UUID                   `gorm:"type:uuid;not null;index" json:"category_id"`
	Status      RecipeStatus                `gorm:"not null;default:draft" json:"status"`
	CreatedAt   time.Time                   `gorm:"not null" json:"created_at"`
}

func (Recipe) TableName() string {
	return "recipe"
}

// RecipeIngredient is one resolved line of a recipe: the free-text name
// the caller sent has already been mapped to a stable ingredient id.
// Position preserves the input order of the lines.
type RecipeIngredient struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"-"`
	RecipeID     uuid.UUID `gorm:"type:uuid;not null;index:idx_recipe_position,unique,priority:1" json:"-"`
	Position     int       `gorm:"not null;index:idx_recipe_position,unique,priority:2" json:"-"`
	IngredientID uuid.UUID `gorm:"type:uuid;not null;index" json:"ingredient_id"`
	Quantity     float64   `gorm:"not null" json:"quantity"`
	Unit         string    `gorm:"not null" json:"unit"`
}

func (RecipeIngredient) TableName() string {
	return "recipe_ingredient"
}
