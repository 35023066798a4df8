// Package features builds the fixed-order numeric vector consumed by the
// risk model. Training and serving share the same column order.
package features

import (
	"github.com/actuallystonmai/health-lens-service/internal/domain"
)

// Columns is the model input order.
var Columns = []string{
	"age",
	"gender",
	"height_cm",
	"weight_kg",
	"bmi",
	"waist_cm",
	"activity_level",
	"diet_pattern",
	"meals_per_day",
	"snack_freq",
	"water_l_per_day",
	"sleep_h",
	"smoking_status",
	"alcohol_units_week",
	"family_history_diabetes",
	"family_history_heart",
	"bp_sys",
	"bp_dia",
	"fasting_glucose_mg_dl",
	"cholesterol_total_mg_dl",
}

// Population-normal values for measurements the request does not collect.
const (
	DefaultAge         = 30
	DefaultHeightCm    = 170
	DefaultWeightKg    = 70
	DefaultSleepHours  = 7
	DefaultMealsPerDay = 3
	DefaultBPSys       = 120
	DefaultBPDia       = 80
	DefaultGlucose     = 90
	DefaultCholesterol = 180
	DefaultBMI         = 22.5

	// waist circumference estimated from height
	waistRatio = 0.45
)

type Vector []float64

// BMI returns DefaultBMI when either measurement is missing or zero.
func BMI(heightCm, weightKg float64) float64 {
	if heightCm <= 0 || weightKg <= 0 {
		return DefaultBMI
	}
	m := heightCm / 100
	return weightKg / (m * m)
}

// FromRequest derives the model vector and BMI from a meal request.
func FromRequest(req *domain.MealRequest) (Vector, float64) {
	height := req.Height.Or(DefaultHeightCm)
	weight := req.Weight.Or(DefaultWeightKg)
	bmi := BMI(height, weight)

	v := Vector{
		req.Age.Or(DefaultAge),
		domain.ParseGender(req.Gender).Code(),
		height,
		weight,
		bmi,
		height * waistRatio,
		domain.ParseActivityLevel(req.ActivityLevel).Code(),
		domain.ParseDietPattern(req.DietPattern).Code(),
		req.MealsPerDay.Or(DefaultMealsPerDay),
		domain.ParseSnackFrequency(req.SnackFrequency).Code(),
		domain.ParseWaterIntake(req.WaterIntake).Code(),
		req.Sleep.Or(DefaultSleepHours),
		domain.ParseSmokingStatus(req.SmokingStatus).Code(),
		req.Alcohol.Or(0),
		flag(req.HasCondition("diabetes")),
		flag(req.HasCondition("heart-problems")),
		DefaultBPSys,
		DefaultBPDia,
		DefaultGlucose,
		DefaultCholesterol,
	}
	return v, bmi
}

func flag(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
