package models

import (
	"database/sql/driver"
	"encoding/json"
)

// JSONBStringArray is a custom type for handling string arrays in JSONB
type JSONBStringArray []string

// Value implements the driver.Valuer interface
func (a JSONBStringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *JSONBStringArray) Scan(value interface{}) error {
	if value == nil {
		*a = JSONBStringArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, a)
}

// Nutrient is a single named nutrient amount as reported by the recipe vendor.
// Names are kept exactly as the vendor sends them ("Calories", "Sodium", "Sugar", ...).
type Nutrient struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// JSONBNutrientList stores a recipe's nutrient breakdown in a JSONB column.
type JSONBNutrientList []Nutrient

// Value implements the driver.Valuer interface
func (l JSONBNutrientList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	return json.Marshal(l)
}

// Scan implements the sql.Scanner interface
func (l *JSONBNutrientList) Scan(value interface{}) error {
	if value == nil {
		*l = JSONBNutrientList{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, l)
}
