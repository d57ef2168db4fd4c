package models

import (
	"time"

	"github.com/google/uuid"
)

// SavedRecipe is an immutable snapshot of a recipe the user confirmed cooking,
// keyed by user and calendar date. Multiple records may exist per day; they are
// never updated after creation.
type SavedRecipe struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	UID     string `gorm:"size:128;not null;index:idx_saved_recipes_user_date" json:"uid"`
	DateKey string `gorm:"size:10;not null;index:idx_saved_recipes_user_date" json:"date_key"`

	RecipeID       int64             `gorm:"not null" json:"recipe_id"`
	Title          string            `gorm:"size:255;not null" json:"title"`
	ImageURL       string            `gorm:"size:512" json:"image_url"`
	ReadyInMinutes int               `json:"ready_in_minutes"`
	Servings       int               `json:"servings"`
	Ingredients    JSONBStringArray  `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	Nutrients      JSONBNutrientList `gorm:"type:jsonb;not null;default:'[]'" json:"nutrients"`
}

func (SavedRecipe) TableName() string {
	return "saved_recipes"
}
