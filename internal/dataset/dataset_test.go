package dataset

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/actuallystonmai/health-lens-service/internal/domain"
	"github.com/actuallystonmai/health-lens-service/internal/features"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const sampleCSV = `age,gender,height_cm,weight_kg,bmi,waist_cm,activity_level,diet_pattern,meals_per_day,snack_freq,water_l_per_day,sleep_h,smoking_status,alcohol_units_week,family_history_diabetes,family_history_heart,bp_sys,bp_dia,fasting_glucose_mg_dl,cholesterol_total_mg_dl,risk_scores
45,Male,175,90,,95,Sedentary,Non-vegetarian,3,Daily,1.5,6,Current,4,1,0,140,90,120,230,"Type-2-Diabetes: 0.6; Hypertension: 0.5"
30,Female,160,55,21.5,70,Very Active,Vegetarian,,Rare,2.5,8,Never,0,0,0,115,75,88,170,Anemia:0.3
,Other,170,70,24.2,,Moderate,Eggetarian,4,Weekly,3.5,7,Former,2,No,Yes,125,82,95,190,
`

func column(t *testing.T, m *Matrix, row int, name string) float64 {
	t.Helper()
	for i, c := range m.Features {
		if c == name {
			return m.X[row][i]
		}
	}
	t.Fatalf("unknown column %s", name)
	return 0
}

func TestPreprocess(t *testing.T) {
	records, err := ReadCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, records, 3)

	m, err := Preprocess(records)
	require.NoError(t, err)
	require.Equal(t, 3, m.Len())
	assert.Equal(t, features.Columns, m.Features)
	assert.Len(t, m.Outputs, len(domain.RiskCategories))

	// categorical encoding
	assert.Equal(t, 1.0, column(t, m, 0, "gender"))
	assert.Equal(t, 0.0, column(t, m, 1, "gender"))
	assert.Equal(t, 0.5, column(t, m, 2, "gender"))
	assert.Equal(t, 0.0, column(t, m, 0, "activity_level"))
	assert.Equal(t, 4.0, column(t, m, 1, "activity_level"))
	assert.Equal(t, 1.0, column(t, m, 0, "diet_pattern"))
	assert.Equal(t, 3.0, column(t, m, 0, "snack_freq"))
	assert.Equal(t, 1.0, column(t, m, 2, "smoking_status"))

	// derived bmi and median fills
	assert.InDelta(t, 90/(1.75*1.75), column(t, m, 0, "bmi"), 1e-9)
	assert.Equal(t, 37.5, column(t, m, 2, "age"))
	assert.Equal(t, 3.5, column(t, m, 1, "meals_per_day"))
	assert.Equal(t, 82.5, column(t, m, 2, "waist_cm"))

	// flags
	assert.Equal(t, 0.0, column(t, m, 2, "family_history_diabetes"))
	assert.Equal(t, 1.0, column(t, m, 2, "family_history_heart"))

	// targets
	assert.Equal(t, 0.6, m.Y[0][0])
	assert.Equal(t, 0.5, m.Y[0][1])
	assert.Equal(t, domain.DefaultRisk, m.Y[0][2])
	assert.Equal(t, 0.3, m.Y[1][len(domain.RiskCategories)-1])
	for _, v := range m.Y[2] {
		assert.Equal(t, domain.DefaultRisk, v)
	}
}

func TestPreprocessEmpty(t *testing.T) {
	_, err := Preprocess(nil)
	assert.ErrorIs(t, err, domain.ErrEmptyDataset)
}

func TestPreprocessMissingColumnUsesDefault(t *testing.T) {
	m, err := Preprocess([]Record{{"age": "40"}, {"age": "50"}})
	require.NoError(t, err)

	assert.Equal(t, float64(features.DefaultBPSys), column(t, m, 0, "bp_sys"))
	assert.Equal(t, float64(features.DefaultHeightCm), column(t, m, 1, "height_cm"))
	assert.Equal(t, features.DefaultBMI, column(t, m, 0, "bmi"))
}

func TestParseRiskScores(t *testing.T) {
	got := ParseRiskScores("Hypertension: 0.4; Osteoporosis:bad; Unknown: 0.9; Anemia : 0.25;")

	assert.Equal(t, domain.DefaultRisk, got[0])
	assert.Equal(t, 0.4, got[1])
	assert.Equal(t, domain.DefaultRisk, got[8])
	assert.Equal(t, 0.25, got[9])

	for _, v := range ParseRiskScores("") {
		assert.Equal(t, domain.DefaultRisk, v)
	}
}

func TestSplit(t *testing.T) {
	m := &Matrix{}
	for i := 0; i < 10; i++ {
		m.X = append(m.X, []float64{float64(i)})
		m.Y = append(m.Y, []float64{float64(i)})
	}

	train, test := m.Split(0.2, 42)
	assert.Equal(t, 8, train.Len())
	assert.Equal(t, 2, test.Len())

	seen := map[float64]bool{}
	for _, row := range append(train.X, test.X...) {
		seen[row[0]] = true
	}
	assert.Len(t, seen, 10)

	train, test = m.Split(0, 42)
	assert.Equal(t, 10, train.Len())
	assert.Equal(t, 0, test.Len())
}

func TestWriteCSVRoundTrip(t *testing.T) {
	records := []Record{{"age": "40", "gender": "Male", RiskScoresColumn: "Hypertension: 0.5; Anemia: 0.2"}}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, Columns(), records))

	back, err := ReadCSV(&buf)
	require.NoError(t, err)
	require.Len(t, back, 1)
	assert.Equal(t, "40", back[0]["age"])
	assert.Equal(t, "Hypertension: 0.5; Anemia: 0.2", back[0][RiskScoresColumn])
}

func TestReadXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "health.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"Age", "Gender", "risk_scores"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{52, "Female", "Hypertension: 0.7"}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	records, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "52", records[0]["age"])
	assert.Equal(t, "Female", records[0]["gender"])
}

func TestLoadFileUnsupported(t *testing.T) {
	_, err := LoadFile("data.parquet")
	assert.ErrorContains(t, err, "unsupported")
}

func TestWriteFileRoundTrip(t *testing.T) {
	records := []Record{
		{"age": "40", "gender": "Male", "bmi": "24.5", RiskScoresColumn: "Hypertension: 0.5"},
		{"age": "", "gender": "Female", "bmi": "19", RiskScoresColumn: ""},
	}

	for _, name := range []string{"out.csv", "out.xlsx"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, WriteFile(path, Columns(), records))

			back, err := LoadFile(path)
			require.NoError(t, err)
			require.Len(t, back, 2)
			assert.Equal(t, "40", back[0]["age"])
			assert.Equal(t, "24.5", back[0]["bmi"])
			assert.Equal(t, "Female", back[1]["gender"])
			assert.Equal(t, "Hypertension: 0.5", back[0][RiskScoresColumn])
		})
	}

	assert.Error(t, WriteFile(filepath.Join(t.TempDir(), "out.json"), Columns(), records))
}
