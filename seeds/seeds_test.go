package seeds

import (
	"path/filepath"
	"testing"

	"github.com/actuallystonmai/health-lens-service/internal/dataset"
	"github.com/actuallystonmai/health-lens-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(25, DefaultSeed)
	b := Generate(25, DefaultSeed)
	require.Len(t, a, 25)
	assert.Equal(t, a, b)

	c := Generate(25, DefaultSeed+1)
	assert.NotEqual(t, a, c)
}

func TestGenerateRowsAreTrainable(t *testing.T) {
	records := Generate(100, DefaultSeed)
	for _, r := range records {
		for _, col := range dataset.Columns() {
			assert.NotEmpty(t, r[col], "column %s", col)
		}
	}

	m, err := dataset.Preprocess(records)
	require.NoError(t, err)
	assert.Equal(t, 100, m.Len())

	for _, row := range m.Y {
		require.Len(t, row, len(domain.RiskCategories))
		for _, v := range row {
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 1.0)
		}
	}
}

func TestObesityRiskFollowsBMI(t *testing.T) {
	m, err := dataset.Preprocess(Generate(400, DefaultSeed))
	require.NoError(t, err)

	bmi := 4
	obesity := 3
	var lean, heavy []float64
	for i, row := range m.X {
		switch {
		case row[bmi] < 22:
			lean = append(lean, m.Y[i][obesity])
		case row[bmi] > 30:
			heavy = append(heavy, m.Y[i][obesity])
		}
	}
	require.NotEmpty(t, lean)
	require.NotEmpty(t, heavy)
	assert.Greater(t, mean(heavy), mean(lean))
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "synthetic.csv")
	require.NoError(t, WriteFile(path, 30))

	records, err := dataset.LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, records, 30)
	assert.Equal(t, Generate(30, DefaultSeed)[0]["age"], records[0]["age"])
}

func mean(v []float64) float64 {
	var s float64
	for _, x := range v {
		s += x
	}
	return s / float64(len(v))
}
