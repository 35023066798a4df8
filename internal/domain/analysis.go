package domain

// Nutrition bases.
const (
	BasisProportion = "proportion"
	BasisGrams      = "grams"
)

// NutritionTotals are aggregated over all matched foods. With BasisProportion
// the macros are shares of total macro mass; with BasisGrams they are grams.
type NutritionTotals struct {
	Basis    string  `json:"basis"`
	Carbs    float64 `json:"carbs"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Calories float64 `json:"calories"`
	Sodium   float64 `json:"sodium"`
}

type MatchStats struct {
	TotalItemsFound    int     `json:"total_items_found"`
	TotalItemsSearched int     `json:"total_items_searched"`
	MatchRate          float64 `json:"match_rate"`
}

type FoodAnalysis struct {
	FoodItems    []string        `json:"food_items"`
	MatchedItems []string        `json:"matched_items"`
	Nutrition    NutritionTotals `json:"nutrition"`
	Analysis     MatchStats      `json:"analysis"`
}

type AnalysisMeta struct {
	AnalysisID      string `json:"analysis_id"`
	GeneratedAt     string `json:"generated_at"`
	ModelID         string `json:"model_id,omitempty"`
	LexiconVersion  string `json:"lexicon_version"`
	NutritionPolicy string `json:"nutrition_policy"`
	Fallback        bool   `json:"fallback"`
	CacheHit        bool   `json:"cache_hit"`
}

type AnalysisResponse struct {
	HealthScore     int            `json:"health_score"`
	FoodAnalysis    FoodAnalysis   `json:"food_analysis"`
	RiskPredictions RiskPrediction `json:"risk_predictions"`
	Recommendations []string       `json:"recommendations"`
	KeyInsights     string         `json:"key_insights"`
	Metadata        AnalysisMeta   `json:"metadata"`
}
