package service

import (
	"math"

	"github.com/demeter-health/backend/internal/models"
)

// Daily sodium targets in milligrams.
const (
	sodiumTargetDefault    = 2300
	sodiumTargetRestricted = 1500
)

// sedentaryActivityFactor converts BMR to total daily energy expenditure.
// The app does not collect activity level, so everyone is treated as sedentary.
const sedentaryActivityFactor = 1.2

const lbToKg = 0.453592

// NutritionTargets are the per-day limits derived from a user profile.
type NutritionTargets struct {
	Calories int `json:"calories"`
	Sodium   int `json:"sodium"`
	Sugar    int `json:"sugar"`
}

// CalculateCalories estimates daily calorie needs with the Mifflin-St Jeor
// equation. Weight is taken in pounds, height in centimeters. Inputs are not
// validated; implausible profiles yield implausible numbers.
func CalculateCalories(age int, weightLb, heightCm float64, sex string) int {
	weightKg := weightLb * lbToKg

	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if sex == "male" {
		bmr += 5
	} else {
		bmr -= 161
	}

	return int(math.Round(bmr * sedentaryActivityFactor))
}

// CalculateSodiumTarget returns the daily sodium limit in mg: 1500 for users
// with high blood pressure or on a low-sodium diet, otherwise 2300.
func CalculateSodiumTarget(p *models.UserProfile) int {
	if p.HighBP || p.LowSodium {
		return sodiumTargetRestricted
	}
	return sodiumTargetDefault
}

// CalculateSugarLimit returns the daily sugar limit in grams: 10% of calories,
// halved for diabetics, converted at 4 kcal per gram.
func CalculateSugarLimit(calories int, diabetes bool) int {
	sugarCalories := float64(calories) * 0.10
	if diabetes {
		sugarCalories *= 0.5
	}
	return int(math.Round(sugarCalories / 4))
}

// TargetsForProfile derives all three daily targets from a profile.
func TargetsForProfile(p *models.UserProfile) NutritionTargets {
	calories := CalculateCalories(p.Age, p.WeightLb(), p.HeightCm, p.Sex)
	return NutritionTargets{
		Calories: calories,
		Sodium:   CalculateSodiumTarget(p),
		Sugar:    CalculateSugarLimit(calories, p.Diabetes),
	}
}
