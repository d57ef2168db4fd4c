package service

// Alert codes, from most to least urgent as the evaluation ladder orders them.
const (
	AlertNotEaten       = "not_eaten"
	AlertSodiumWarning  = "sodium_warning"
	AlertCalorieLimit   = "calorie_limit"
	AlertSodiumExceeded = "sodium_exceeded"
	AlertSugarLimit     = "sugar_limit"
	AlertOnTrack        = "on_track"
)

// sodiumWarningRatio is the fraction of the sodium target at which the early
// warning fires.
const sodiumWarningRatio = 0.75

// Alert is the single message shown on the user's dashboard for a day.
type Alert struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// EvaluateAlert picks the day's dashboard alert. Rules are evaluated in a
// fixed order and the first match wins, so exactly one alert is produced.
//
// Note the ordering quirk: the 75% sodium warning is checked before the 100%
// sodium rule, so the sodium_exceeded branch can never fire (any intake at or
// above the target already passed the 75% mark). The branch is kept so the
// ladder reads as a complete enumeration of the limits.
func EvaluateAlert(totals *DailyTotals, targets NutritionTargets) Alert {
	sodiumTarget := float64(targets.Sodium)
	calorieTarget := float64(targets.Calories)
	sugarTarget := float64(targets.Sugar)

	switch {
	case totals.Calories == 0 || totals.Sodium == 0:
		return Alert{
			Code:    AlertNotEaten,
			Message: "You haven't logged any meals today. Save a recipe to start tracking.",
		}
	case totals.Sodium >= sodiumWarningRatio*sodiumTarget:
		return Alert{
			Code:    AlertSodiumWarning,
			Message: "You're approaching your sodium limit for today. Go easy on the salt.",
		}
	case totals.Calories >= calorieTarget:
		return Alert{
			Code:    AlertCalorieLimit,
			Message: "You've reached your calorie target for today.",
		}
	case totals.Sodium >= sodiumTarget:
		return Alert{
			Code:    AlertSodiumExceeded,
			Message: "You've exceeded your sodium limit for today.",
		}
	case totals.Sugar >= sugarTarget:
		return Alert{
			Code:    AlertSugarLimit,
			Message: "You've reached your sugar limit for today.",
		}
	default:
		return Alert{
			Code:    AlertOnTrack,
			Message: "You're on track with your nutrition goals today. Keep it up!",
		}
	}
}
