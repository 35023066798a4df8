package lexicon

import "github.com/actuallystonmai/health-lens-service/internal/domain"

// DefaultVersion identifies the built-in table. Bump it whenever an entry or
// synonym changes so cached analyses are not reused across tables.
const DefaultVersion = "2.1"

// Nutrition facts per 100g.
var defaultFoods = []domain.FoodEntry{
	// Rice and Grains
	{Name: "rice", Carbs: 0.78, Protein: 0.07, Fat: 0.01, Fiber: 0.01, Calories: 130, Sodium: 1},
	{Name: "basmati rice", Carbs: 0.78, Protein: 0.07, Fat: 0.01, Fiber: 0.01, Calories: 130, Sodium: 1},
	{Name: "brown rice", Carbs: 0.72, Protein: 0.08, Fat: 0.03, Fiber: 0.03, Calories: 111, Sodium: 5},
	{Name: "jeera rice", Carbs: 0.78, Protein: 0.07, Fat: 0.05, Fiber: 0.01, Calories: 140, Sodium: 2},
	{Name: "pulao", Carbs: 0.75, Protein: 0.08, Fat: 0.08, Fiber: 0.02, Calories: 150, Sodium: 3},
	{Name: "biryani", Carbs: 0.70, Protein: 0.12, Fat: 0.12, Fiber: 0.02, Calories: 180, Sodium: 5},

	// Wheat and Breads
	{Name: "roti", Carbs: 0.45, Protein: 0.12, Fat: 0.02, Fiber: 0.02, Calories: 120, Sodium: 2},
	{Name: "chapati", Carbs: 0.45, Protein: 0.12, Fat: 0.02, Fiber: 0.02, Calories: 120, Sodium: 2},
	{Name: "naan", Carbs: 0.50, Protein: 0.10, Fat: 0.08, Fiber: 0.01, Calories: 140, Sodium: 3},
	{Name: "paratha", Carbs: 0.40, Protein: 0.10, Fat: 0.15, Fiber: 0.02, Calories: 180, Sodium: 2},
	{Name: "puri", Carbs: 0.35, Protein: 0.08, Fat: 0.25, Fiber: 0.01, Calories: 200, Sodium: 1},
	{Name: "bread", Carbs: 0.50, Protein: 0.10, Fat: 0.03, Fiber: 0.02, Calories: 120, Sodium: 4},
	{Name: "whole wheat bread", Carbs: 0.45, Protein: 0.12, Fat: 0.04, Fiber: 0.06, Calories: 110, Sodium: 3},

	// Lentils and Pulses
	{Name: "dal", Carbs: 0.20, Protein: 0.25, Fat: 0.01, Fiber: 0.08, Calories: 120, Sodium: 2},
	{Name: "toor dal", Carbs: 0.20, Protein: 0.25, Fat: 0.01, Fiber: 0.08, Calories: 120, Sodium: 2},
	{Name: "moong dal", Carbs: 0.18, Protein: 0.24, Fat: 0.01, Fiber: 0.10, Calories: 110, Sodium: 1},
	{Name: "chana dal", Carbs: 0.22, Protein: 0.20, Fat: 0.02, Fiber: 0.12, Calories: 115, Sodium: 1},
	{Name: "masoor dal", Carbs: 0.19, Protein: 0.26, Fat: 0.01, Fiber: 0.09, Calories: 118, Sodium: 1},
	{Name: "rajma", Carbs: 0.25, Protein: 0.22, Fat: 0.01, Fiber: 0.15, Calories: 130, Sodium: 1},
	{Name: "chole", Carbs: 0.25, Protein: 0.22, Fat: 0.01, Fiber: 0.15, Calories: 130, Sodium: 1},
	{Name: "black gram", Carbs: 0.20, Protein: 0.25, Fat: 0.01, Fiber: 0.10, Calories: 120, Sodium: 1},

	// Vegetables
	{Name: "potato", Carbs: 0.17, Protein: 0.02, Fat: 0.001, Fiber: 0.02, Calories: 77, Sodium: 6},
	{Name: "onion", Carbs: 0.09, Protein: 0.01, Fat: 0.001, Fiber: 0.02, Calories: 40, Sodium: 4},
	{Name: "tomato", Carbs: 0.04, Protein: 0.01, Fat: 0.002, Fiber: 0.01, Calories: 18, Sodium: 5},
	{Name: "carrot", Carbs: 0.10, Protein: 0.01, Fat: 0.002, Fiber: 0.03, Calories: 41, Sodium: 69},
	{Name: "cabbage", Carbs: 0.06, Protein: 0.01, Fat: 0.001, Fiber: 0.02, Calories: 25, Sodium: 18},
	{Name: "cauliflower", Carbs: 0.05, Protein: 0.02, Fat: 0.001, Fiber: 0.02, Calories: 25, Sodium: 30},
	{Name: "spinach", Carbs: 0.04, Protein: 0.03, Fat: 0.004, Fiber: 0.02, Calories: 23, Sodium: 79},
	{Name: "okra", Carbs: 0.07, Protein: 0.02, Fat: 0.001, Fiber: 0.03, Calories: 33, Sodium: 7},
	{Name: "brinjal", Carbs: 0.06, Protein: 0.01, Fat: 0.001, Fiber: 0.03, Calories: 25, Sodium: 2},
	{Name: "bitter gourd", Carbs: 0.04, Protein: 0.01, Fat: 0.001, Fiber: 0.02, Calories: 17, Sodium: 2},
	{Name: "bottle gourd", Carbs: 0.04, Protein: 0.01, Fat: 0.001, Fiber: 0.01, Calories: 12, Sodium: 2},
	{Name: "ridge gourd", Carbs: 0.04, Protein: 0.01, Fat: 0.001, Fiber: 0.01, Calories: 20, Sodium: 2},
	{Name: "green beans", Carbs: 0.07, Protein: 0.02, Fat: 0.001, Fiber: 0.03, Calories: 31, Sodium: 6},
	{Name: "peas", Carbs: 0.14, Protein: 0.05, Fat: 0.001, Fiber: 0.05, Calories: 81, Sodium: 5},
	{Name: "corn", Carbs: 0.19, Protein: 0.03, Fat: 0.01, Fiber: 0.02, Calories: 86, Sodium: 1},

	// Non-vegetarian
	{Name: "chicken", Carbs: 0.00, Protein: 0.27, Fat: 0.14, Fiber: 0.00, Calories: 165, Sodium: 74},
	{Name: "chicken curry", Carbs: 0.05, Protein: 0.20, Fat: 0.12, Fiber: 0.01, Calories: 180, Sodium: 200},
	{Name: "mutton", Carbs: 0.00, Protein: 0.25, Fat: 0.21, Fiber: 0.00, Calories: 250, Sodium: 72},
	{Name: "fish", Carbs: 0.00, Protein: 0.22, Fat: 0.12, Fiber: 0.00, Calories: 206, Sodium: 61},
	{Name: "fish curry", Carbs: 0.05, Protein: 0.18, Fat: 0.10, Fiber: 0.01, Calories: 160, Sodium: 180},
	{Name: "egg", Carbs: 0.01, Protein: 0.13, Fat: 0.11, Fiber: 0.00, Calories: 155, Sodium: 124},
	{Name: "prawns", Carbs: 0.00, Protein: 0.24, Fat: 0.01, Fiber: 0.00, Calories: 99, Sodium: 111},

	// Dairy
	{Name: "milk", Carbs: 0.05, Protein: 0.03, Fat: 0.03, Fiber: 0.00, Calories: 42, Sodium: 44},
	{Name: "curd", Carbs: 0.04, Protein: 0.10, Fat: 0.04, Fiber: 0.00, Calories: 59, Sodium: 36},
	{Name: "yogurt", Carbs: 0.04, Protein: 0.10, Fat: 0.04, Fiber: 0.00, Calories: 59, Sodium: 36},
	{Name: "paneer", Carbs: 0.02, Protein: 0.18, Fat: 0.20, Fiber: 0.00, Calories: 265, Sodium: 15},
	{Name: "cheese", Carbs: 0.01, Protein: 0.25, Fat: 0.33, Fiber: 0.00, Calories: 356, Sodium: 621},
	{Name: "butter", Carbs: 0.01, Protein: 0.01, Fat: 0.81, Fiber: 0.00, Calories: 717, Sodium: 11},
	{Name: "ghee", Carbs: 0.00, Protein: 0.00, Fat: 1.00, Fiber: 0.00, Calories: 900, Sodium: 0},

	// Fruits
	{Name: "banana", Carbs: 0.23, Protein: 0.01, Fat: 0.003, Fiber: 0.03, Calories: 89, Sodium: 1},
	{Name: "apple", Carbs: 0.14, Protein: 0.003, Fat: 0.004, Fiber: 0.02, Calories: 52, Sodium: 1},
	{Name: "orange", Carbs: 0.12, Protein: 0.01, Fat: 0.001, Fiber: 0.02, Calories: 47, Sodium: 0},
	{Name: "mango", Carbs: 0.15, Protein: 0.01, Fat: 0.004, Fiber: 0.02, Calories: 60, Sodium: 1},
	{Name: "grapes", Carbs: 0.18, Protein: 0.01, Fat: 0.001, Fiber: 0.01, Calories: 62, Sodium: 2},
	{Name: "papaya", Carbs: 0.11, Protein: 0.01, Fat: 0.001, Fiber: 0.02, Calories: 43, Sodium: 8},
	{Name: "pomegranate", Carbs: 0.19, Protein: 0.01, Fat: 0.001, Fiber: 0.04, Calories: 83, Sodium: 3},
	{Name: "guava", Carbs: 0.14, Protein: 0.01, Fat: 0.001, Fiber: 0.05, Calories: 68, Sodium: 2},

	// Nuts and Seeds
	{Name: "almonds", Carbs: 0.22, Protein: 0.21, Fat: 0.50, Fiber: 0.12, Calories: 579, Sodium: 1},
	{Name: "cashews", Carbs: 0.30, Protein: 0.18, Fat: 0.44, Fiber: 0.03, Calories: 553, Sodium: 12},
	{Name: "peanuts", Carbs: 0.16, Protein: 0.26, Fat: 0.49, Fiber: 0.08, Calories: 567, Sodium: 18},
	{Name: "walnuts", Carbs: 0.14, Protein: 0.15, Fat: 0.65, Fiber: 0.07, Calories: 654, Sodium: 2},
	{Name: "sesame seeds", Carbs: 0.23, Protein: 0.18, Fat: 0.50, Fiber: 0.12, Calories: 573, Sodium: 11},

	// Spices and Condiments
	{Name: "turmeric", Carbs: 0.65, Protein: 0.08, Fat: 0.10, Fiber: 0.21, Calories: 354, Sodium: 38},
	{Name: "cumin", Carbs: 0.44, Protein: 0.18, Fat: 0.22, Fiber: 0.11, Calories: 375, Sodium: 168},
	{Name: "coriander", Carbs: 0.55, Protein: 0.12, Fat: 0.17, Fiber: 0.42, Calories: 298, Sodium: 35},
	{Name: "garlic", Carbs: 0.33, Protein: 0.06, Fat: 0.01, Fiber: 0.02, Calories: 149, Sodium: 17},
	{Name: "ginger", Carbs: 0.18, Protein: 0.02, Fat: 0.01, Fiber: 0.02, Calories: 80, Sodium: 13},
	{Name: "chili", Carbs: 0.09, Protein: 0.02, Fat: 0.01, Fiber: 0.03, Calories: 40, Sodium: 7},
	{Name: "salt", Carbs: 0.00, Protein: 0.00, Fat: 0.00, Fiber: 0.00, Calories: 0, Sodium: 38758},
	{Name: "sugar", Carbs: 1.00, Protein: 0.00, Fat: 0.00, Fiber: 0.00, Calories: 387, Sodium: 1},
	{Name: "oil", Carbs: 0.00, Protein: 0.00, Fat: 1.00, Fiber: 0.00, Calories: 884, Sodium: 0},

	// Beverages
	{Name: "water", Carbs: 0.00, Protein: 0.00, Fat: 0.00, Fiber: 0.00, Calories: 0, Sodium: 7},
	{Name: "tea", Carbs: 0.00, Protein: 0.00, Fat: 0.00, Fiber: 0.00, Calories: 1, Sodium: 4},
	{Name: "coffee", Carbs: 0.00, Protein: 0.00, Fat: 0.00, Fiber: 0.00, Calories: 2, Sodium: 5},
	{Name: "juice", Carbs: 0.12, Protein: 0.01, Fat: 0.001, Fiber: 0.01, Calories: 45, Sodium: 4},
	{Name: "soft drink", Carbs: 0.10, Protein: 0.00, Fat: 0.00, Fiber: 0.00, Calories: 42, Sodium: 4},
	{Name: "lassi", Carbs: 0.08, Protein: 0.03, Fat: 0.02, Fiber: 0.00, Calories: 50, Sodium: 20},

	// Snacks and Sweets
	{Name: "samosa", Carbs: 0.35, Protein: 0.05, Fat: 0.25, Fiber: 0.02, Calories: 308, Sodium: 400},
	{Name: "pakora", Carbs: 0.20, Protein: 0.08, Fat: 0.15, Fiber: 0.02, Calories: 200, Sodium: 300},
	{Name: "biscuit", Carbs: 0.70, Protein: 0.08, Fat: 0.15, Fiber: 0.02, Calories: 400, Sodium: 200},
	{Name: "chips", Carbs: 0.50, Protein: 0.06, Fat: 0.35, Fiber: 0.04, Calories: 536, Sodium: 500},
	{Name: "sweet", Carbs: 0.80, Protein: 0.05, Fat: 0.10, Fiber: 0.01, Calories: 400, Sodium: 50},
	{Name: "halwa", Carbs: 0.60, Protein: 0.05, Fat: 0.20, Fiber: 0.02, Calories: 400, Sodium: 30},
	{Name: "kheer", Carbs: 0.25, Protein: 0.05, Fat: 0.08, Fiber: 0.01, Calories: 150, Sodium: 20},

	// Dishes
	{Name: "vegetable curry", Carbs: 0.10, Protein: 0.05, Fat: 0.08, Fiber: 0.03, Calories: 130, Sodium: 150},
	{Name: "salad", Carbs: 0.05, Protein: 0.02, Fat: 0.01, Fiber: 0.02, Calories: 30, Sodium: 10},
	{Name: "poha", Carbs: 0.75, Protein: 0.07, Fat: 0.01, Fiber: 0.02, Calories: 110, Sodium: 5},
}

var defaultSynonyms = []Synonym{
	{Canonical: "roti", Variants: []string{"chapati", "phulka"}},
	{Canonical: "dal", Variants: []string{"lentil", "pulse"}},
	{Canonical: "curd", Variants: []string{"yogurt", "dahi"}},
	{Canonical: "paneer", Variants: []string{"cottage cheese"}},
	{Canonical: "ghee", Variants: []string{"clarified butter"}},
	{Canonical: "brinjal", Variants: []string{"eggplant", "aubergine"}},
	{Canonical: "okra", Variants: []string{"lady finger", "bhindi"}},
	{Canonical: "bitter gourd", Variants: []string{"karela"}},
	{Canonical: "bottle gourd", Variants: []string{"lauki", "dudhi"}},
	{Canonical: "ridge gourd", Variants: []string{"turai"}},
	{Canonical: "green beans", Variants: []string{"french beans", "sem"}},
	{Canonical: "peas", Variants: []string{"matar"}},
	{Canonical: "corn", Variants: []string{"makka", "maize"}},
	{Canonical: "chicken", Variants: []string{"murgh"}},
	{Canonical: "mutton", Variants: []string{"goat meat", "bakra"}},
	{Canonical: "fish", Variants: []string{"machli"}},
	{Canonical: "prawns", Variants: []string{"jhinga", "shrimp"}},
	{Canonical: "egg", Variants: []string{"anda"}},
	{Canonical: "milk", Variants: []string{"dudh"}},
	{Canonical: "banana", Variants: []string{"kela"}},
	{Canonical: "apple", Variants: []string{"seb"}},
	{Canonical: "orange", Variants: []string{"santra"}},
	{Canonical: "mango", Variants: []string{"aam"}},
	{Canonical: "grapes", Variants: []string{"angur"}},
	{Canonical: "papaya", Variants: []string{"papita"}},
	{Canonical: "pomegranate", Variants: []string{"anaar"}},
	{Canonical: "guava", Variants: []string{"amrood"}},
	{Canonical: "almonds", Variants: []string{"badam"}},
	{Canonical: "cashews", Variants: []string{"kaju"}},
	{Canonical: "peanuts", Variants: []string{"moongphali"}},
	{Canonical: "walnuts", Variants: []string{"akhrot"}},
	{Canonical: "sesame seeds", Variants: []string{"til"}},
	{Canonical: "turmeric", Variants: []string{"haldi"}},
	{Canonical: "cumin", Variants: []string{"jeera"}},
	{Canonical: "coriander", Variants: []string{"dhaniya"}},
	{Canonical: "garlic", Variants: []string{"lehsun"}},
	{Canonical: "ginger", Variants: []string{"adrak"}},
	{Canonical: "chili", Variants: []string{"mirchi"}},
	{Canonical: "salt", Variants: []string{"namak"}},
	{Canonical: "sugar", Variants: []string{"chini", "shakkar"}},
	{Canonical: "oil", Variants: []string{"tel"}},
	{Canonical: "tea", Variants: []string{"chai"}},
	{Canonical: "coffee", Variants: []string{"kaffee"}},
	{Canonical: "juice", Variants: []string{"ras"}},
	{Canonical: "soft drink", Variants: []string{"cold drink", "soda"}},
	{Canonical: "lassi", Variants: []string{"buttermilk"}},
	{Canonical: "pakora", Variants: []string{"bhajiya", "fritter"}},
	{Canonical: "biscuit", Variants: []string{"cookie"}},
	{Canonical: "chips", Variants: []string{"namkeen"}},
	{Canonical: "sweet", Variants: []string{"mithai", "dessert"}},
	{Canonical: "kheer", Variants: []string{"rice pudding"}},
}
