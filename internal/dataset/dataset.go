// Package dataset turns labelled health records into the feature and target
// matrices used to train the risk model.
package dataset

import (
	"math"
	"math/rand"
	"sort"
	"strconv"
	"strings"

	"github.com/actuallystonmai/health-lens-service/internal/domain"
	"github.com/actuallystonmai/health-lens-service/internal/features"
)

// RiskScoresColumn holds "Category: score; ..." targets.
const RiskScoresColumn = "risk_scores"

// Columns is the full dataset layout: the feature columns plus the targets.
func Columns() []string {
	return append(append([]string{}, features.Columns...), RiskScoresColumn)
}

var categorical = map[string]func(string) float64{
	"gender":         func(s string) float64 { return domain.ParseGender(s).Code() },
	"activity_level": func(s string) float64 { return domain.ParseActivityLevel(s).Code() },
	"diet_pattern":   func(s string) float64 { return domain.ParseDietPattern(s).Code() },
	"snack_freq":     func(s string) float64 { return domain.ParseSnackFrequency(s).Code() },
	"smoking_status": func(s string) float64 { return domain.ParseSmokingStatus(s).Code() },
}

var flags = map[string]bool{
	"family_history_diabetes": true,
	"family_history_heart":    true,
}

// columnDefaults fill a column that has no usable values at all.
var columnDefaults = map[string]float64{
	"age":                     features.DefaultAge,
	"height_cm":               features.DefaultHeightCm,
	"weight_kg":               features.DefaultWeightKg,
	"bmi":                     features.DefaultBMI,
	"waist_cm":                features.DefaultHeightCm * 0.45,
	"meals_per_day":           features.DefaultMealsPerDay,
	"water_l_per_day":         domain.Water2To3L.Code(),
	"sleep_h":                 features.DefaultSleepHours,
	"bp_sys":                  features.DefaultBPSys,
	"bp_dia":                  features.DefaultBPDia,
	"fasting_glucose_mg_dl":   features.DefaultGlucose,
	"cholesterol_total_mg_dl": features.DefaultCholesterol,
}

type Matrix struct {
	X        [][]float64
	Y        [][]float64
	Features []string
	Outputs  []string
}

func (m *Matrix) Len() int { return len(m.X) }

// Preprocess encodes categorical columns, fills missing numeric values with
// the column median and parses the per-category targets.
func Preprocess(records []Record) (*Matrix, error) {
	if len(records) == 0 {
		return nil, domain.ErrEmptyDataset
	}

	nf := len(features.Columns)
	x := make([][]float64, len(records))
	y := make([][]float64, len(records))

	for i, r := range records {
		row := make([]float64, nf)
		for j, col := range features.Columns {
			row[j] = encodeCell(col, r[col])
		}
		if math.IsNaN(row[bmiIndex]) {
			row[bmiIndex] = derivedBMI(row)
		}
		x[i] = row
		y[i] = ParseRiskScores(r[RiskScoresColumn])
	}

	for j, col := range features.Columns {
		fillMissing(x, j, col)
	}

	outputs := make([]string, len(domain.RiskCategories))
	for i, c := range domain.RiskCategories {
		outputs[i] = string(c)
	}

	return &Matrix{
		X:        x,
		Y:        y,
		Features: append([]string{}, features.Columns...),
		Outputs:  outputs,
	}, nil
}

var (
	bmiIndex    = columnIndex("bmi")
	heightIndex = columnIndex("height_cm")
	weightIndex = columnIndex("weight_kg")
)

func columnIndex(name string) int {
	for i, c := range features.Columns {
		if c == name {
			return i
		}
	}
	panic("dataset: unknown feature column " + name)
}

func derivedBMI(row []float64) float64 {
	h, w := row[heightIndex], row[weightIndex]
	if math.IsNaN(h) || math.IsNaN(w) || h <= 0 || w <= 0 {
		return math.NaN()
	}
	return features.BMI(h, w)
}

// encodeCell returns NaN for a missing or unparseable numeric cell.
func encodeCell(col, cell string) float64 {
	if enc, ok := categorical[col]; ok {
		return enc(cell)
	}
	if flags[col] {
		switch strings.ToLower(cell) {
		case "1", "yes", "y", "true":
			return 1
		case "0", "no", "n", "false":
			return 0
		}
		return math.NaN()
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil || math.IsInf(v, 0) {
		return math.NaN()
	}
	return v
}

func fillMissing(x [][]float64, j int, col string) {
	present := make([]float64, 0, len(x))
	for _, row := range x {
		if !math.IsNaN(row[j]) {
			present = append(present, row[j])
		}
	}
	if len(present) == len(x) {
		return
	}

	fill := columnDefaults[col]
	if len(present) > 0 {
		fill = median(present)
	}
	for _, row := range x {
		if math.IsNaN(row[j]) {
			row[j] = fill
		}
	}
}

func median(v []float64) float64 {
	s := append([]float64{}, v...)
	sort.Float64s(s)
	mid := len(s) / 2
	if len(s)%2 == 0 {
		return (s[mid-1] + s[mid]) / 2
	}
	return s[mid]
}

// ParseRiskScores reads "Category: score; ..." into one target per risk
// category. Absent or unparseable entries default to domain.DefaultRisk.
func ParseRiskScores(s string) []float64 {
	scores := make(map[domain.RiskCategory]float64)
	for _, pair := range strings.Split(s, ";") {
		i := strings.LastIndex(pair, ":")
		if i < 0 {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(pair[i+1:]), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		scores[domain.RiskCategory(strings.TrimSpace(pair[:i]))] = v
	}

	out := make([]float64, len(domain.RiskCategories))
	for i, c := range domain.RiskCategories {
		v, ok := scores[c]
		if !ok {
			v = domain.DefaultRisk
		}
		out[i] = v
	}
	return out
}

// Split shuffles rows with seed and holds out testFraction of them.
func (m *Matrix) Split(testFraction float64, seed int64) (train, test *Matrix) {
	n := m.Len()
	nTest := int(math.Round(float64(n) * testFraction))
	if testFraction <= 0 || nTest <= 0 || nTest >= n {
		return m, &Matrix{Features: m.Features, Outputs: m.Outputs}
	}

	perm := rand.New(rand.NewSource(seed)).Perm(n)
	pick := func(idx []int) *Matrix {
		out := &Matrix{Features: m.Features, Outputs: m.Outputs}
		for _, i := range idx {
			out.X = append(out.X, m.X[i])
			out.Y = append(out.Y, m.Y[i])
		}
		return out
	}
	return pick(perm[nTest:]), pick(perm[:nTest])
}
