package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Number is an optional numeric field. The web form posts numbers as strings,
// so both JSON numbers and numeric strings are accepted.
type Number struct {
	Value float64
	Set   bool
}

func Num(v float64) Number { return Number{Value: v, Set: true} }

func (n *Number) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if raw == "null" {
		*n = Number{}
		return nil
	}

	var v float64
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*n = Number{}
			return nil
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
			return fmt.Errorf("invalid number %q", s)
		}
		v = parsed
	} else if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	*n = Number{Value: v, Set: true}
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Set {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

func (n Number) IsZero() bool { return !n.Set }

// Or returns the value, or fallback when the field was not provided.
func (n Number) Or(fallback float64) float64 {
	if !n.Set {
		return fallback
	}
	return n.Value
}

type MealRequest struct {
	FoodItems     string   `json:"food-items"`
	MealType      string   `json:"meal-type,omitempty"`
	PortionSize   string   `json:"portion-size,omitempty"`
	Age           Number   `json:"age,omitzero"`
	Gender        string   `json:"gender,omitempty"`
	Height        Number   `json:"height,omitzero"`
	Weight        Number   `json:"weight,omitzero"`
	ActivityLevel string   `json:"activity-level,omitempty"`
	Conditions    []string `json:"conditions,omitempty"`
	Sleep         Number   `json:"sleep,omitzero"`
	WaterIntake   string   `json:"water-intake,omitempty"`

	DietPattern    string `json:"diet-pattern,omitempty"`
	MealsPerDay    Number `json:"meals-per-day,omitzero"`
	SnackFrequency string `json:"snack-frequency,omitempty"`
	SmokingStatus  string `json:"smoking-status,omitempty"`
	Alcohol        Number `json:"alcohol,omitzero"`
}

// HasCondition matches a reported condition case-insensitively.
func (r *MealRequest) HasCondition(name string) bool {
	for _, c := range r.Conditions {
		if strings.EqualFold(strings.TrimSpace(c), name) {
			return true
		}
	}
	return false
}

type fieldRange struct {
	name     string
	value    Number
	min, max float64
}

// Validate rejects provided values outside plausible ranges. Absent fields
// are left to the feature defaults.
func (r *MealRequest) Validate() error {
	ranges := []fieldRange{
		{"age", r.Age, 1, 120},
		{"height", r.Height, 50, 250},
		{"weight", r.Weight, 5, 300},
		{"sleep", r.Sleep, 0, 24},
		{"meals-per-day", r.MealsPerDay, 1, 10},
		{"alcohol", r.Alcohol, 0, 200},
	}
	for _, f := range ranges {
		if !f.value.Set {
			continue
		}
		if f.value.Value < f.min || f.value.Value > f.max {
			return fmt.Errorf("%w: %s must be between %g and %g", ErrInvalidRequest, f.name, f.min, f.max)
		}
	}
	return nil
}
