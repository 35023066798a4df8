package main

import (
	"testing"

	"github.com/actuallystonmai/health-lens-service/internal/config"
	"github.com/actuallystonmai/health-lens-service/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		ModelPath: "health_risk_model.json",
		Forest:    model.DefaultParams(),
		TestSize:  0.2,
	}
}

func TestParseFlagsDefaults(t *testing.T) {
	o, err := parseFlags(testConfig(), "train", []string{"-dataset", "data/health.csv"})
	require.NoError(t, err)

	assert.Equal(t, "csv", o.source)
	assert.Equal(t, "health_risk_model.json", o.out)
	assert.Equal(t, 100, o.training.Params.Trees)
	assert.Equal(t, 0.2, o.training.TestSize)
}

func TestParseFlagsOverrides(t *testing.T) {
	o, err := parseFlags(testConfig(), "train", []string{
		"-dataset", "health.xlsx", "-trees", "50", "-depth", "8",
		"-min-leaf", "2", "-min-split", "5", "-seed", "7", "-test-size", "0.25",
		"-seed-rows", "500", "-out", "models/forest.json",
	})
	require.NoError(t, err)

	assert.Equal(t, "xlsx", o.source)
	assert.Equal(t, 50, o.training.Params.Trees)
	assert.Equal(t, 8, o.training.Params.MaxDepth)
	assert.Equal(t, 2, o.training.Params.MinSamplesLeaf)
	assert.Equal(t, 5, o.training.Params.MinSamplesSplit)
	assert.Equal(t, int64(7), o.training.Params.Seed)
	assert.Equal(t, 0.25, o.training.TestSize)
	assert.Equal(t, 500, o.seedRows)
	assert.Equal(t, "models/forest.json", o.out)
}

func TestParseFlagsPostgresNeedsNoDataset(t *testing.T) {
	o, err := parseFlags(testConfig(), "train", []string{"-source", "postgres", "-limit", "1000"})
	require.NoError(t, err)
	assert.Equal(t, 1000, o.limit)
}

func TestParseFlagsSeedSkipsSourceCheck(t *testing.T) {
	o, err := parseFlags(testConfig(), "seed", []string{"-seed-rows", "300"})
	require.NoError(t, err)
	assert.Equal(t, 300, o.seedRows)
}

func TestParseFlagsErrors(t *testing.T) {
	cases := map[string][]string{
		"no dataset":     {},
		"unknown source": {"-source", "parquet"},
		"mismatched ext": {"-source", "xlsx", "-dataset", "health.csv"},
		"bad trees":      {"-dataset", "h.csv", "-trees", "0"},
		"negative seeds": {"-dataset", "h.csv", "-seed-rows", "-1"},
		"undefined flag": {"-dataset", "h.csv", "-epochs", "3"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := parseFlags(testConfig(), "train", args)
			assert.Error(t, err)
		})
	}
}
