package nutrition

import (
	"testing"

	"github.com/actuallystonmai/health-lens-service/internal/domain"
	"github.com/actuallystonmai/health-lens-service/internal/lexicon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractItems(t *testing.T) {
	cases := map[string][]string{
		"2 rotis, dal, rice, chicken curry": {"rotis", "dal", "rice", "chicken curry"},
		"100g paneer; 2 cups of rice":       {"paneer", "rice"},
		"idli and sambar & chutney":         {"idli", "sambar", "chutney"},
		"1 glass of milk\nbanana 2":         {"milk", "banana"},
		"sandwich":                          {"sandwich"},
		"chicken curry x2, idli x 3":        {"chicken curry", "idli"},
		"2 x dosa, tex2":                    {"dosa", "tex"},
		"":                                  {},
		" , ; 3 ":                           {},
	}

	for input, want := range cases {
		assert.Equal(t, want, ExtractItems(input), "input %q", input)
	}
}

func TestAnalyzeSampleMeal(t *testing.T) {
	a := NewAnalyzer(lexicon.Default(), ProportionsPolicy)

	result := a.Analyze("2 rotis, dal, rice, chicken curry", domain.PortionMedium)

	assert.Equal(t, []string{"roti", "dal", "rice", "chicken curry"}, result.MatchedItems)
	assert.Equal(t, 4, result.Analysis.TotalItemsFound)
	assert.Equal(t, 4, result.Analysis.TotalItemsSearched)
	assert.InDelta(t, 1.0, result.Analysis.MatchRate, 1e-9)

	n := result.Nutrition
	assert.Equal(t, domain.BasisProportion, n.Basis)
	assert.InDelta(t, 1.0, n.Carbs+n.Protein+n.Fat, 1e-9)
	assert.InDelta(t, 120+120+130+180, n.Calories, 1e-9)
}

func TestAnalyzeTrailingMultiplier(t *testing.T) {
	a := NewAnalyzer(lexicon.Default(), ProportionsPolicy)

	result := a.Analyze("chicken curry x2", domain.PortionMedium)

	assert.Equal(t, []string{"chicken curry"}, result.MatchedItems)
}

func TestAnalyzeGarbage(t *testing.T) {
	a := NewAnalyzer(lexicon.Default(), ProportionsPolicy)

	result := a.Analyze("xyzzy123", domain.PortionLarge)

	assert.Empty(t, result.MatchedItems)
	assert.Equal(t, 0, result.Analysis.TotalItemsFound)
	assert.Equal(t, domain.NutritionTotals{Basis: domain.BasisProportion}, result.Nutrition)
}

func TestAnalyzeEmpty(t *testing.T) {
	a := NewAnalyzer(lexicon.Default(), ServingPolicy)

	result := a.Analyze("", domain.PortionMedium)

	assert.Empty(t, result.FoodItems)
	assert.NotNil(t, result.FoodItems)
	assert.Equal(t, 0.0, result.Analysis.MatchRate)
	assert.Equal(t, 0.0, result.Nutrition.Calories)
}

func TestMatchNormalization(t *testing.T) {
	a := NewAnalyzer(lexicon.Default(), ProportionsPolicy)

	cases := map[string]string{
		"karela fry":    "bitter gourd",
		"masala chai":   "tea",
		"paneer masala": "paneer",
		"the banana":    "banana",
		"jeera rice":    "jeera rice",
		"lentil soup":   "dal",
		"boiled eggs":   "egg",
	}

	for token, want := range cases {
		matches := a.Match([]string{token})
		require.Len(t, matches, 1, "token %q", token)
		assert.Equal(t, want, matches[0].Entry.Name, "token %q", token)
		assert.Equal(t, token, matches[0].Token)
	}
}

func TestServingPolicy(t *testing.T) {
	a := NewAnalyzer(lexicon.Default(), ServingPolicy)

	result := a.Analyze("roti", domain.PortionMedium)

	n := result.Nutrition
	assert.Equal(t, domain.BasisGrams, n.Basis)
	assert.InDelta(t, 67.5, n.Carbs, 1e-9)
	assert.InDelta(t, 18.0, n.Protein, 1e-9)
	assert.InDelta(t, 180.0, n.Calories, 1e-9)
}

func TestAggregateMonotonicInPortion(t *testing.T) {
	foods := lexicon.Default().Entries()[:12]
	sizes := []domain.PortionSize{domain.PortionSmall, domain.PortionMedium, domain.PortionLarge}

	for _, p := range []Policy{ProportionsPolicy, ServingPolicy} {
		var prev domain.NutritionTotals
		for i, size := range sizes {
			got := p.Aggregate(foods, size)
			for _, v := range []float64{got.Carbs, got.Protein, got.Fat, got.Fiber, got.Calories, got.Sodium} {
				assert.GreaterOrEqual(t, v, 0.0, "policy %s", p.Name)
			}
			if i > 0 {
				assert.GreaterOrEqual(t, got.Calories, prev.Calories, "policy %s size %s", p.Name, size)
				assert.GreaterOrEqual(t, got.Sodium, prev.Sodium, "policy %s size %s", p.Name, size)
				assert.GreaterOrEqual(t, got.Fiber, prev.Fiber, "policy %s size %s", p.Name, size)
			}
			prev = got
		}
	}
}

func TestPolicyByName(t *testing.T) {
	p, err := PolicyByName("")
	require.NoError(t, err)
	assert.Equal(t, ProportionsPolicy, p)

	p, err = PolicyByName("serving")
	require.NoError(t, err)
	assert.Equal(t, 150.0, p.ServingGrams)

	_, err = PolicyByName("metric")
	assert.Error(t, err)
}

func TestPolicyValidate(t *testing.T) {
	assert.NoError(t, ProportionsPolicy.Validate())
	assert.NoError(t, ServingPolicy.Validate())

	bad := ProportionsPolicy
	bad.Small = 2
	assert.Error(t, bad.Validate())

	bad = ServingPolicy
	bad.Medium = 0
	assert.Error(t, bad.Validate())
}
