package models

import (
	"time"
)

// UserProfile holds the onboarding health profile for a user. The uid comes
// from the identity provider and is treated as an opaque key.
type UserProfile struct {
	UID       string    `gorm:"primaryKey;size:128" json:"uid"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Personal info
	Age        int     `gorm:"not null" json:"age"`
	HeightCm   float64 `gorm:"not null" json:"height_cm"`
	Weight     float64 `gorm:"not null" json:"weight"`
	WeightUnit string  `gorm:"size:8;default:lb" json:"weight_unit"`
	Sex        string  `gorm:"size:16" json:"sex"`

	// Medical conditions
	Diabetes        bool `json:"diabetes"`
	HighBP          bool `json:"high_bp"`
	HighCholesterol bool `json:"high_cholesterol"`

	// Dietary preferences
	Vegetarian bool `json:"vegetarian"`
	Vegan      bool `json:"vegan"`
	LowSodium  bool `json:"low_sodium"`
	LowCarb    bool `json:"low_carb"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}

// WeightLb returns the profile weight in pounds regardless of the stored unit.
func (p *UserProfile) WeightLb() float64 {
	if p.WeightUnit == "kg" {
		return p.Weight * 2.20462
	}
	return p.Weight
}
