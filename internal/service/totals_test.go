package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/demeter-health/backend/internal/models"
)

func newTotalsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.SavedRecipe{}, &models.DailyTotal{}))
	return db
}

func testCandidate(id int64, title string, calories, sodium, sugar float64) *RecipeCandidate {
	c := &RecipeCandidate{
		ID:             id,
		Title:          title,
		ImageURL:       "https://img.example.com/" + title + ".jpg",
		ReadyInMinutes: 25,
		Servings:       2,
		ExtendedIngredients: []RecipeIngredient{
			{Name: "rice", Original: "1 cup rice"},
		},
	}
	c.Nutrition.Nutrients = []RecipeNutrient{
		{Name: "Calories", Amount: calories, Unit: "kcal"},
		{Name: "Sodium", Amount: sodium, Unit: "mg"},
		{Name: "Sugar", Amount: sugar, Unit: "g"},
		{Name: "Protein", Amount: 12, Unit: "g"},
	}
	return c
}

func TestSaveRecipe_SnapshotsAndRecomputes(t *testing.T) {
	db := newTotalsTestDB(t)
	svc := NewTotalsService(db)
	ctx := context.Background()

	saved, totals, err := svc.SaveRecipe(ctx, "user-1", "2026-08-31", testCandidate(42, "Fried Rice", 600, 800, 12))
	require.NoError(t, err)

	assert.Equal(t, int64(42), saved.RecipeID)
	assert.Equal(t, models.JSONBStringArray{"1 cup rice"}, saved.Ingredients)

	// The save returns the freshly computed totals; no second pass needed.
	assert.Equal(t, 600.0, totals.Calories)
	assert.Equal(t, 800.0, totals.Sodium)
	assert.Equal(t, 12.0, totals.Sugar)

	var row models.DailyTotal
	require.NoError(t, db.Where("uid = ? AND date_key = ?", "user-1", "2026-08-31").First(&row).Error)
	assert.Equal(t, 600.0, row.Calories)
	assert.Equal(t, 800.0, row.Sodium)
	assert.Equal(t, 12.0, row.Sugar)
}

func TestComputeDailyTotals_SumsAcrossRecipes(t *testing.T) {
	db := newTotalsTestDB(t)
	svc := NewTotalsService(db)
	ctx := context.Background()

	_, _, err := svc.SaveRecipe(ctx, "user-1", "2026-08-31", testCandidate(1, "Breakfast", 400, 300, 8))
	require.NoError(t, err)
	_, _, err = svc.SaveRecipe(ctx, "user-1", "2026-08-31", testCandidate(2, "Dinner", 700, 900, 15))
	require.NoError(t, err)

	totals, err := svc.ComputeDailyTotals(ctx, "user-1", "2026-08-31")
	require.NoError(t, err)

	assert.Equal(t, 1100.0, totals.Calories)
	assert.Equal(t, 1200.0, totals.Sodium)
	assert.Equal(t, 23.0, totals.Sugar)

	// Exactly one materialized row per user-day despite repeated recomputes.
	var count int64
	require.NoError(t, db.Model(&models.DailyTotal{}).
		Where("uid = ? AND date_key = ?", "user-1", "2026-08-31").
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestComputeDailyTotals_IsolatesUsersAndDates(t *testing.T) {
	db := newTotalsTestDB(t)
	svc := NewTotalsService(db)
	ctx := context.Background()

	_, _, err := svc.SaveRecipe(ctx, "user-1", "2026-08-30", testCandidate(1, "Yesterday", 500, 400, 10))
	require.NoError(t, err)
	_, _, err = svc.SaveRecipe(ctx, "user-2", "2026-08-31", testCandidate(2, "Someone Else", 900, 1200, 30))
	require.NoError(t, err)

	totals, err := svc.ComputeDailyTotals(ctx, "user-1", "2026-08-31")
	require.NoError(t, err)

	assert.Zero(t, totals.Calories)
	assert.Zero(t, totals.Sodium)
	assert.Zero(t, totals.Sugar)
}

func TestComputeDailyTotals_IgnoresUnknownNutrients(t *testing.T) {
	db := newTotalsTestDB(t)
	svc := NewTotalsService(db)
	ctx := context.Background()

	candidate := testCandidate(1, "Oddball", 100, 200, 3)
	candidate.Nutrition.Nutrients = append(candidate.Nutrition.Nutrients,
		RecipeNutrient{Name: "calories", Amount: 9999, Unit: "kcal"}, // wrong case, not summed
		RecipeNutrient{Name: "Saturated Fat", Amount: 50, Unit: "g"},
	)

	_, _, err := svc.SaveRecipe(ctx, "user-1", "2026-08-31", candidate)
	require.NoError(t, err)

	totals, err := svc.ComputeDailyTotals(ctx, "user-1", "2026-08-31")
	require.NoError(t, err)
	assert.Equal(t, 100.0, totals.Calories)
}

func TestListSaved_OrdersByCreation(t *testing.T) {
	db := newTotalsTestDB(t)
	svc := NewTotalsService(db)
	ctx := context.Background()

	_, _, err := svc.SaveRecipe(ctx, "user-1", "2026-08-31", testCandidate(1, "First", 100, 100, 1))
	require.NoError(t, err)
	_, _, err = svc.SaveRecipe(ctx, "user-1", "2026-08-31", testCandidate(2, "Second", 100, 100, 1))
	require.NoError(t, err)

	recipes, err := svc.ListSaved(ctx, "user-1", "2026-08-31")
	require.NoError(t, err)

	require.Len(t, recipes, 2)
	assert.Equal(t, "First", recipes[0].Title)
	assert.Equal(t, "Second", recipes[1].Title)
}
