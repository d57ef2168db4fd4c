package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/demeter-health/backend/internal/models"
)

// Nutrient names summed into daily totals. Matching is exact; vendor nutrition
// rows use these capitalized names.
const (
	nutrientCalories = "Calories"
	nutrientSodium   = "Sodium"
	nutrientSugar    = "Sugar"
)

// DailyTotals is the calorie/sodium/sugar sum for one user-day.
type DailyTotals struct {
	UID      string  `json:"uid"`
	DateKey  string  `json:"date_key"`
	Calories float64 `json:"calories"`
	Sodium   float64 `json:"sodium"`
	Sugar    float64 `json:"sugar"`
}

// TotalsService persists saved-recipe snapshots and maintains the materialized
// daily totals derived from them.
type TotalsService struct {
	db *gorm.DB
}

var _ ITotalsService = (*TotalsService)(nil)

// NewTotalsService creates a new TotalsService instance.
func NewTotalsService(db *gorm.DB) *TotalsService {
	return &TotalsService{db: db}
}

// SaveRecipe snapshots the recipe for the given user and date, then recomputes
// and returns that day's totals. The snapshot keeps the full ingredient and
// nutrient lists so later vendor changes cannot rewrite history.
func (s *TotalsService) SaveRecipe(ctx context.Context, uid, dateKey string, candidate *RecipeCandidate) (*models.SavedRecipe, *DailyTotals, error) {
	ingredients := make(models.JSONBStringArray, 0, len(candidate.ExtendedIngredients))
	for _, ing := range candidate.ExtendedIngredients {
		ingredients = append(ingredients, ing.Original)
	}

	nutrients := make(models.JSONBNutrientList, 0, len(candidate.Nutrition.Nutrients))
	for _, n := range candidate.Nutrition.Nutrients {
		nutrients = append(nutrients, models.Nutrient{Name: n.Name, Amount: n.Amount})
	}

	saved := &models.SavedRecipe{
		ID:             uuid.New(),
		UID:            uid,
		DateKey:        dateKey,
		RecipeID:       candidate.ID,
		Title:          candidate.Title,
		ImageURL:       candidate.ImageURL,
		ReadyInMinutes: candidate.ReadyInMinutes,
		Servings:       candidate.Servings,
		Ingredients:    ingredients,
		Nutrients:      nutrients,
	}

	if err := s.db.WithContext(ctx).Create(saved).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to save recipe: %w", err)
	}

	totals, err := s.ComputeDailyTotals(ctx, uid, dateKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to recompute daily totals: %w", err)
	}

	log.Printf("[TotalsService] saved recipe %d for user %s on %s", candidate.ID, uid, dateKey)
	return saved, totals, nil
}

// ListSaved returns the user's saved recipes for the given date, oldest first.
func (s *TotalsService) ListSaved(ctx context.Context, uid, dateKey string) ([]models.SavedRecipe, error) {
	var recipes []models.SavedRecipe
	err := s.db.WithContext(ctx).
		Where("uid = ? AND date_key = ?", uid, dateKey).
		Order("created_at ASC").
		Find(&recipes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list saved recipes: %w", err)
	}
	return recipes, nil
}

// ComputeDailyTotals recomputes the calorie/sodium/sugar sums for the user-day
// from scratch and upserts the materialized row. A day with no saved recipes
// yields all-zero totals, not an error.
func (s *TotalsService) ComputeDailyTotals(ctx context.Context, uid, dateKey string) (*DailyTotals, error) {
	recipes, err := s.ListSaved(ctx, uid, dateKey)
	if err != nil {
		return nil, err
	}

	totals := &DailyTotals{UID: uid, DateKey: dateKey}
	for _, recipe := range recipes {
		for _, n := range recipe.Nutrients {
			switch n.Name {
			case nutrientCalories:
				totals.Calories += n.Amount
			case nutrientSodium:
				totals.Sodium += n.Amount
			case nutrientSugar:
				totals.Sugar += n.Amount
			}
		}
	}

	row := models.DailyTotal{
		UID:      uid,
		DateKey:  dateKey,
		Calories: totals.Calories,
		Sodium:   totals.Sodium,
		Sugar:    totals.Sugar,
	}
	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "uid"}, {Name: "date_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"calories", "sodium", "sugar", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return nil, fmt.Errorf("failed to upsert daily totals: %w", err)
	}
	return totals, nil
}
