package nutrition

import (
	"math"

	"github.com/actuallystonmai/health-lens-service/internal/domain"
)

// Aggregate sums the matched foods scaled by the portion multiplier.
func (p Policy) Aggregate(foods []domain.FoodEntry, size domain.PortionSize) domain.NutritionTotals {
	if p.ServingGrams > 0 {
		return p.aggregateServings(foods, size)
	}
	return p.aggregateProportions(foods, size)
}

func (p Policy) aggregateProportions(foods []domain.FoodEntry, size domain.PortionSize) domain.NutritionTotals {
	m := p.Multiplier(size)
	t := domain.NutritionTotals{Basis: domain.BasisProportion}
	for _, f := range foods {
		t.Carbs += f.Carbs * m
		t.Protein += f.Protein * m
		t.Fat += f.Fat * m
		t.Fiber += f.Fiber * m
		t.Calories += f.Calories * m
		t.Sodium += f.Sodium * m
	}

	// No macro mass leaves the macros at zero.
	if macros := t.Carbs + t.Protein + t.Fat; macros > 0 {
		t.Carbs /= macros
		t.Protein /= macros
		t.Fat /= macros
	}
	return t
}

func (p Policy) aggregateServings(foods []domain.FoodEntry, size domain.PortionSize) domain.NutritionTotals {
	grams := p.Multiplier(size) * p.ServingGrams
	t := domain.NutritionTotals{Basis: domain.BasisGrams}
	for _, f := range foods {
		t.Carbs += f.Carbs * grams
		t.Protein += f.Protein * grams
		t.Fat += f.Fat * grams
		t.Fiber += f.Fiber * grams
		t.Calories += f.Calories * grams / 100
		t.Sodium += f.Sodium * grams / 100
	}

	t.Carbs = round1(t.Carbs)
	t.Protein = round1(t.Protein)
	t.Fat = round1(t.Fat)
	t.Fiber = round1(t.Fiber)
	t.Calories = round1(t.Calories)
	t.Sodium = round1(t.Sodium)
	return t
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
