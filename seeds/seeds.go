// Package seeds generates a deterministic synthetic health dataset for
// bootstrapping the risk model when no labelled data is at hand.
package seeds

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"

	"github.com/actuallystonmai/health-lens-service/internal/dataset"
	"github.com/actuallystonmai/health-lens-service/internal/domain"
	"github.com/actuallystonmai/health-lens-service/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const DefaultSeed = 42

// Setup replaces the health_records table with n generated rows.
func Setup(ctx context.Context, pool *pgxpool.Pool, n int, logger *zap.Logger) error {
	// Truncate existing data before insert
	logger.Info("truncating health_records")
	if _, err := pool.Exec(ctx, `TRUNCATE health_records RESTART IDENTITY`); err != nil {
		return fmt.Errorf("truncate: %w", err)
	}

	logger.Info("inserting health records", zap.Int("rows", n))
	inserted, err := repository.NewRepository(pool).InsertHealthRecords(ctx, Generate(n, DefaultSeed))
	if err != nil {
		return fmt.Errorf("seed health records: %w", err)
	}

	logger.Info("seeding complete", zap.Int64("rows", inserted))
	return nil
}

// WriteFile writes n generated rows to a .csv or .xlsx file.
func WriteFile(path string, n int) error {
	return dataset.WriteFile(path, dataset.Columns(), Generate(n, DefaultSeed))
}

// Generate returns n rows whose risk_scores follow the biometrics: higher
// BMI, blood pressure, glucose and cholesterol raise the matching categories.
func Generate(n int, seed int64) []dataset.Record {
	rng := rand.New(rand.NewSource(seed))
	records := make([]dataset.Record, 0, n)
	for range n {
		records = append(records, generateRow(rng))
	}
	return records
}

type person struct {
	age, height, weight, bmi, waist    float64
	female                             bool
	activity                           domain.ActivityLevel
	diet                               domain.DietPattern
	meals                              float64
	snack                              domain.SnackFrequency
	water, sleep                       float64
	smoking                            domain.SmokingStatus
	alcohol                            float64
	famDiabetes, famHeart              bool
	bpSys, bpDia, glucose, cholesterol float64
}

func generateRow(rng *rand.Rand) dataset.Record {
	p := person{}
	p.age = float64(18 + rng.Intn(62))
	p.female = rng.Float64() < 0.5

	if p.female {
		p.height = clamp(normal(rng, 158, 7), 140, 185)
	} else {
		p.height = clamp(normal(rng, 171, 7), 150, 200)
	}
	p.bmi = clamp(normal(rng, 24.5, 4.5), 15, 45)
	m := p.height / 100
	p.weight = round1(p.bmi * m * m)
	p.bmi = round1(p.bmi)
	p.waist = round1(p.height*0.42 + (p.bmi-22)*1.8 + normal(rng, 0, 3))

	p.activity = domain.ActivityLevel(weightedIndex(rng, []float64{0.3, 0.25, 0.25, 0.15, 0.05}))
	p.diet = domain.DietPattern(weightedIndex(rng, []float64{0.3, 0.15, 0.1, 0.15, 0.3}))
	p.meals = float64(2 + rng.Intn(4))
	p.snack = domain.SnackFrequency(weightedIndex(rng, []float64{0.1, 0.3, 0.3, 0.3}))
	p.water = round1(clamp(normal(rng, 2.2, 0.8), 0.3, 5))
	p.sleep = round1(clamp(normal(rng, 6.8, 1.2), 3, 11))
	p.smoking = domain.SmokingStatus(weightedIndex(rng, []float64{0.7, 0.15, 0.15}))
	if rng.Float64() < 0.6 {
		p.alcohol = float64(rng.Intn(15))
	}
	p.famDiabetes = rng.Float64() < 0.3
	p.famHeart = rng.Float64() < 0.25

	p.bpSys = math.Round(clamp(100+0.4*p.age+1.2*(p.bmi-22)+normal(rng, 0, 8), 85, 200))
	p.bpDia = math.Round(clamp(0.6*p.bpSys+normal(rng, 5, 5), 50, 130))
	p.glucose = math.Round(clamp(80+1.5*(p.bmi-22)+20*flag(p.famDiabetes)+normal(rng, 0, 10), 60, 300))
	p.cholesterol = math.Round(clamp(150+0.6*p.age+3*(p.bmi-22)+normal(rng, 0, 20), 110, 350))

	gender := "Male"
	if p.female {
		gender = "Female"
	}

	return dataset.Record{
		"age":                     num(p.age),
		"gender":                  gender,
		"height_cm":               num(round1(p.height)),
		"weight_kg":               num(p.weight),
		"bmi":                     num(p.bmi),
		"waist_cm":                num(p.waist),
		"activity_level":          p.activity.String(),
		"diet_pattern":            p.diet.String(),
		"meals_per_day":           num(p.meals),
		"snack_freq":              p.snack.String(),
		"water_l_per_day":         num(p.water),
		"sleep_h":                 num(p.sleep),
		"smoking_status":          p.smoking.String(),
		"alcohol_units_week":      num(p.alcohol),
		"family_history_diabetes": yesNo(p.famDiabetes),
		"family_history_heart":    yesNo(p.famHeart),
		"bp_sys":                  num(p.bpSys),
		"bp_dia":                  num(p.bpDia),
		"fasting_glucose_mg_dl":   num(p.glucose),
		"cholesterol_total_mg_dl": num(p.cholesterol),
		dataset.RiskScoresColumn:  formatScores(riskScores(rng, p)),
	}
}

func riskScores(rng *rand.Rand, p person) []float64 {
	over := math.Max(0, p.bmi-23) / 10
	under := flag(p.bmi < 18.5)
	age := (p.age - 18) / 62
	inactive := (4 - p.activity.Code()) / 4
	smoke := p.smoking.Code() / 2
	alc := math.Min(p.alcohol/21, 1)
	gl := math.Max(0, p.glucose-90) / 60
	bp := math.Max(0, p.bpSys-115) / 50
	chol := math.Max(0, p.cholesterol-180) / 80
	snack := p.snack.Code() / 3
	lowWater := flag(p.water < 1.5)
	sleepDebt := math.Max(0, 7-p.sleep) / 3
	female := flag(p.female)
	meat := p.diet.Code()

	raw := []float64{
		0.05 + 0.25*over + 0.15*flag(p.famDiabetes) + 0.3*gl + 0.1*inactive + 0.1*age + 0.05*snack,
		0.05 + 0.35*bp + 0.15*over + 0.1*age + 0.1*smoke + 0.1*alc,
		0.04 + 0.2*chol + 0.15*bp + 0.15*flag(p.famHeart) + 0.15*smoke + 0.1*age + 0.05*inactive,
		0.03 + 0.5*over + 0.1*inactive + 0.1*snack + 0.05*sleepDebt,
		0.03 + 0.15*bp + 0.1*gl + 0.1*age + 0.05*lowWater,
		0.03 + 0.3*over + 0.2*alc + 0.1*gl,
		0.04 + 0.35*chol + 0.1*over + 0.1*meat,
		0.05 + 0.1*snack + 0.1*lowWater + 0.1*alc + 0.05*sleepDebt,
		0.03 + 0.2*age + 0.1*female + 0.1*smoke + 0.05*inactive + 0.1*under,
		0.04 + 0.15*female + 0.1*(1-meat) + 0.1*under,
	}
	for i, v := range raw {
		raw[i] = math.Round(clamp(v+normal(rng, 0, 0.02), 0, 1)*100) / 100
	}
	return raw
}

func formatScores(scores []float64) string {
	parts := make([]string, len(scores))
	for i, c := range domain.RiskCategories {
		parts[i] = fmt.Sprintf("%s: %.2f", c, scores[i])
	}
	return strings.Join(parts, "; ")
}

func normal(rng *rand.Rand, mean, sd float64) float64 {
	return mean + rng.NormFloat64()*sd
}

func weightedIndex(rng *rand.Rand, weights []float64) int {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	r := rng.Float64() * total
	cumulative := 0.0
	for i, w := range weights {
		cumulative += w
		if r <= cumulative {
			return i
		}
	}
	return len(weights) - 1
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func flag(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
