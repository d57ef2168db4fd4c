package models

import (
	"time"
)

// DailyTotal is the materialized calorie/sodium/sugar sum across all
// SavedRecipe rows for a (uid, date_key) pair. It is always recomputed in full
// from the saved records, never mutated incrementally.
type DailyTotal struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	UpdatedAt time.Time `json:"updated_at"`

	UID     string `gorm:"size:128;not null;uniqueIndex:idx_daily_totals_user_date" json:"uid"`
	DateKey string `gorm:"size:10;not null;uniqueIndex:idx_daily_totals_user_date" json:"date_key"`

	Calories float64 `gorm:"not null;default:0" json:"calories"`
	Sodium   float64 `gorm:"not null;default:0" json:"sodium"`
	Sugar    float64 `gorm:"not null;default:0" json:"sugar"`
}

func (DailyTotal) TableName() string {
	return "daily_totals"
}
