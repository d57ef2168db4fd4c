package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/demeter-health/backend/internal/models"
)

// ErrProfileNotFound is returned when a user has not completed onboarding.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileService manages user health profiles and derives nutrition targets
// from them.
type ProfileService struct {
	db *gorm.DB
}

// NewProfileService creates a new ProfileService instance.
func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// UpsertProfile creates or fully replaces the profile for the given uid.
func (s *ProfileService) UpsertProfile(ctx context.Context, profile *models.UserProfile) error {
	if profile.UID == "" {
		return fmt.Errorf("uid must not be empty")
	}
	if profile.WeightUnit == "" {
		profile.WeightUnit = "lb"
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "uid"}},
		UpdateAll: true,
	}).Create(profile).Error
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}
	return nil
}

// GetProfile returns the profile for the given uid.
func (s *ProfileService) GetProfile(ctx context.Context, uid string) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := s.db.WithContext(ctx).Where("uid = ?", uid).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrProfileNotFound, uid)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query profile: %w", err)
	}
	return &profile, nil
}

// GetTargets returns the nutrition targets derived from the user's profile.
func (s *ProfileService) GetTargets(ctx context.Context, uid string) (NutritionTargets, error) {
	profile, err := s.GetProfile(ctx, uid)
	if err != nil {
		return NutritionTargets{}, err
	}
	return TargetsForProfile(profile), nil
}
