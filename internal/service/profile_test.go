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

func newProfileTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.UserProfile{}))
	return db
}

func TestProfileService_UpsertAndGet(t *testing.T) {
	svc := NewProfileService(newProfileTestDB(t))
	ctx := context.Background()

	profile := &models.UserProfile{
		UID:      "user-1",
		Age:      42,
		HeightCm: 180,
		Weight:   200,
		Sex:      "male",
		Diabetes: true,
	}
	require.NoError(t, svc.UpsertProfile(ctx, profile))

	got, err := svc.GetProfile(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 42, got.Age)
	assert.Equal(t, "lb", got.WeightUnit)
	assert.True(t, got.Diabetes)
}

func TestProfileService_UpsertReplacesExisting(t *testing.T) {
	svc := NewProfileService(newProfileTestDB(t))
	ctx := context.Background()

	require.NoError(t, svc.UpsertProfile(ctx, &models.UserProfile{UID: "user-1", Age: 42, HeightCm: 180, Weight: 200, Sex: "male"}))
	require.NoError(t, svc.UpsertProfile(ctx, &models.UserProfile{UID: "user-1", Age: 43, HeightCm: 180, Weight: 190, Sex: "male", HighBP: true}))

	got, err := svc.GetProfile(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 43, got.Age)
	assert.Equal(t, 190.0, got.Weight)
	assert.True(t, got.HighBP)

	var count int64
	require.NoError(t, svc.db.Model(&models.UserProfile{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestProfileService_GetMissing(t *testing.T) {
	svc := NewProfileService(newProfileTestDB(t))

	_, err := svc.GetProfile(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestProfileService_EmptyUIDRejected(t *testing.T) {
	svc := NewProfileService(newProfileTestDB(t))

	err := svc.UpsertProfile(context.Background(), &models.UserProfile{})
	assert.Error(t, err)
}

func TestProfileService_GetTargets(t *testing.T) {
	svc := NewProfileService(newProfileTestDB(t))
	ctx := context.Background()

	profile := &models.UserProfile{UID: "user-1", Age: 30, HeightCm: 170, Weight: 154, Sex: "male", LowSodium: true}
	require.NoError(t, svc.UpsertProfile(ctx, profile))

	targets, err := svc.GetTargets(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, CalculateCalories(30, 154, 170, "male"), targets.Calories)
	assert.Equal(t, 1500, targets.Sodium)
}
