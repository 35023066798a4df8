package service

import (
	"fmt"

	"github.com/actuallystonmai/health-lens-service/internal/domain"
	"github.com/actuallystonmai/health-lens-service/internal/features"
)

const (
	riskThreshold      = 0.3
	maxRecommendations = 5
	shortSleepHours    = 6
)

var riskAdvice = map[domain.RiskCategory]string{
	domain.RiskType2Diabetes:  "Reduce refined carbohydrates and added sugars. Focus on whole grains and fiber-rich foods.",
	domain.RiskHypertension:   "Limit sodium intake to less than 2g per day. Increase potassium-rich foods like bananas and leafy greens.",
	domain.RiskCardiovascular: "Increase omega-3 fatty acids through fish, nuts, and seeds. Limit saturated and trans fats.",
	domain.RiskObesity:        "Focus on portion control and regular physical activity. Aim for gradual weight loss of 0.5-1kg per week.",
}

const (
	adviceActivity = "Increase physical activity to at least 150 minutes of moderate exercise per week."
	adviceSleep    = "Improve sleep hygiene: maintain regular sleep schedule and reduce screen time before bed."
	adviceWater    = "Increase water intake to 2-3 liters per day for better hydration."
)

var genericAdvice = []string{
	"Maintain a balanced diet with plenty of fruits and vegetables.",
	"Stay physically active with regular exercise.",
	"Get adequate sleep (7-8 hours per night).",
	"Stay hydrated by drinking plenty of water.",
}

// HealthScore maps the mean risk onto 0-100, higher is healthier.
func HealthScore(risks domain.RiskPrediction) int {
	score := int((1 - risks.Mean()) * 100)
	return max(0, min(100, score))
}

// Recommendations lists risk advice in model order, then lifestyle advice,
// capped at five. The generic set is returned when nothing applies.
func Recommendations(risks domain.RiskPrediction, req *domain.MealRequest) []string {
	var out []string
	for _, c := range risks.Above(riskThreshold) {
		if advice, ok := riskAdvice[c]; ok {
			out = append(out, advice)
		}
	}

	if req.ActivityLevel != "" && domain.ParseActivityLevel(req.ActivityLevel) == domain.ActivitySedentary {
		out = append(out, adviceActivity)
	}
	if req.Sleep.Or(features.DefaultSleepHours) < shortSleepHours {
		out = append(out, adviceSleep)
	}
	if req.WaterIntake != "" && domain.ParseWaterIntake(req.WaterIntake).Low() {
		out = append(out, adviceWater)
	}

	if len(out) == 0 {
		return append([]string{}, genericAdvice...)
	}
	if len(out) > maxRecommendations {
		out = out[:maxRecommendations]
	}
	return out
}

func KeyInsights(score int) string {
	var tier string
	switch {
	case score >= 80:
		tier = "Excellent nutritional choices! Keep up the good work."
	case score >= 60:
		tier = "Good meal overall. Consider adding more vegetables for better nutrition."
	default:
		tier = "This meal could be improved. Focus on whole foods and balanced nutrition."
	}
	return fmt.Sprintf("Health analysis completed. Your meal shows a %d/100 health score. %s", score, tier)
}
