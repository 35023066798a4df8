package repository

import (
	"context"
	"os"
	"testing"

	"github.com/actuallystonmai/health-lens-service/internal/dataset"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDBValue(t *testing.T) {
	assert.Nil(t, toDBValue("age", ""))
	assert.Nil(t, toDBValue("age", "n/a"))
	assert.Equal(t, 42.5, toDBValue("age", " 42.5 "))
	assert.Equal(t, "Male", toDBValue("gender", "Male"))
	assert.Equal(t, "Anemia: 0.2", toDBValue(dataset.RiskScoresColumn, "Anemia: 0.2"))
}

func TestFromDBValue(t *testing.T) {
	assert.Equal(t, "", fromDBValue(nil))
	assert.Equal(t, "Female", fromDBValue("Female"))
	assert.Equal(t, "21.5", fromDBValue(21.5))
	assert.Equal(t, "7", fromDBValue(int64(7)))
}

// Runs against a live database when TEST_DATABASE_URL is set.
func TestHealthRecordsRoundTrip(t *testing.T) {
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, url)
	require.NoError(t, err)
	defer pool.Close()

	_, err = pool.Exec(ctx, `CREATE TEMP TABLE health_records (LIKE public.health_records INCLUDING ALL)`)
	if err != nil {
		t.Skipf("health_records table not migrated: %v", err)
	}

	repo := NewRepository(pool)
	n, err := repo.InsertHealthRecords(ctx, []dataset.Record{
		{"age": "44", "gender": "Male", "bmi": "", dataset.RiskScoresColumn: "Hypertension: 0.4"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	records, err := repo.HealthRecords(ctx, 10)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "44", records[0]["age"])
	assert.Equal(t, "", records[0]["bmi"])
	assert.Equal(t, "Hypertension: 0.4", records[0][dataset.RiskScoresColumn])
}
