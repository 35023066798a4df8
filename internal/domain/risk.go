package domain

import "math"

type RiskCategory string

const (
	RiskType2Diabetes    RiskCategory = "Type-2-Diabetes"
	RiskHypertension     RiskCategory = "Hypertension"
	RiskCardiovascular   RiskCategory = "Cardiovascular-Disease"
	RiskObesity          RiskCategory = "Obesity-related-illnesses"
	RiskChronicKidney    RiskCategory = "Chronic-Kidney-Disease"
	RiskFattyLiver       RiskCategory = "Non-alcoholic-Fatty-Liver-Disease"
	RiskDyslipidemia     RiskCategory = "Dyslipidemia-related-risk"
	RiskGastrointestinal RiskCategory = "Gastrointestinal-disorders"
	RiskOsteoporosis     RiskCategory = "Osteoporosis"
	RiskAnemia           RiskCategory = "Anemia"
)

// RiskCategories is the output order of the risk model.
var RiskCategories = []RiskCategory{
	RiskType2Diabetes,
	RiskHypertension,
	RiskCardiovascular,
	RiskObesity,
	RiskChronicKidney,
	RiskFattyLiver,
	RiskDyslipidemia,
	RiskGastrointestinal,
	RiskOsteoporosis,
	RiskAnemia,
}

// DefaultRisk is used for every category the model cannot score.
const DefaultRisk = 0.1

// RiskPrediction maps a category name to a score in [0,1].
type RiskPrediction map[RiskCategory]float64

// DefaultPrediction returns DefaultRisk for every category.
func DefaultPrediction() RiskPrediction {
	p := make(RiskPrediction, len(RiskCategories))
	for _, c := range RiskCategories {
		p[c] = DefaultRisk
	}
	return p
}

// Mean returns the average score, or 0 for an empty prediction.
func (p RiskPrediction) Mean() float64 {
	if len(p) == 0 {
		return 0
	}
	var sum float64
	for _, v := range p {
		sum += v
	}
	return sum / float64(len(p))
}

// Above lists categories whose score exceeds threshold, in model order.
func (p RiskPrediction) Above(threshold float64) []RiskCategory {
	var out []RiskCategory
	for _, c := range RiskCategories {
		if v, ok := p[c]; ok && v > threshold {
			out = append(out, c)
		}
	}
	return out
}

// Clamp01 bounds a model output to [0,1]. NaN becomes DefaultRisk.
func Clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return DefaultRisk
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
