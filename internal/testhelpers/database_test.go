package testhelpers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/demeter-health/backend/internal/models"
	"github.com/demeter-health/backend/internal/service"
)

func TestTotalsAgainstPostgres(t *testing.T) {
	db := SetupTestDatabase(t)
	svc := service.NewTotalsService(db)
	ctx := context.Background()

	candidate := &service.RecipeCandidate{ID: 7, Title: "Lentil Soup", Servings: 4}
	candidate.Nutrition.Nutrients = []service.RecipeNutrient{
		{Name: "Calories", Amount: 320, Unit: "kcal"},
		{Name: "Sodium", Amount: 640, Unit: "mg"},
		{Name: "Sugar", Amount: 6, Unit: "g"},
	}
	candidate.ExtendedIngredients = []service.RecipeIngredient{
		{Name: "lentils", Original: "2 cups lentils"},
	}

	_, _, err := svc.SaveRecipe(ctx, "user-1", "2026-08-31", candidate)
	require.NoError(t, err)

	totals, err := svc.ComputeDailyTotals(ctx, "user-1", "2026-08-31")
	require.NoError(t, err)
	assert.Equal(t, 320.0, totals.Calories)

	// JSONB round-trip through real postgres.
	var saved models.SavedRecipe
	require.NoError(t, db.Where("uid = ?", "user-1").First(&saved).Error)
	assert.Equal(t, models.JSONBStringArray{"2 cups lentils"}, saved.Ingredients)
	require.Len(t, saved.Nutrients, 3)
	assert.Equal(t, "Calories", saved.Nutrients[0].Name)
}
