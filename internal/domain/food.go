package domain

// FoodEntry holds nutrition facts per 100g. Carbs, Protein, Fat and Fiber are
// fractions of mass, Calories is kcal and Sodium is mg.
type FoodEntry struct {
	Name     string  `json:"name" yaml:"name"`
	Carbs    float64 `json:"carbs" yaml:"carbs"`
	Protein  float64 `json:"protein" yaml:"protein"`
	Fat      float64 `json:"fat" yaml:"fat"`
	Fiber    float64 `json:"fiber" yaml:"fiber"`
	Calories float64 `json:"calories" yaml:"calories"`
	Sodium   float64 `json:"sodium" yaml:"sodium"`
}

// FoodMatch pairs a token from the meal text with the lexicon entry it resolved to.
type FoodMatch struct {
	Token string
	Entry FoodEntry
}
