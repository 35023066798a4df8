package training

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/actuallystonmai/health-lens-service/internal/dataset"
	"github.com/actuallystonmai/health-lens-service/internal/model"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Metric is the holdout error for one risk category.
type Metric struct {
	Category string  `json:"category"`
	MSE      float64 `json:"mse"`
	R2       float64 `json:"r2"`
}

type Report struct {
	ModelID   string        `json:"model_id"`
	TrainRows int           `json:"train_rows"`
	TestRows  int           `json:"test_rows"`
	Metrics   []Metric      `json:"metrics"`
	Duration  time.Duration `json:"duration"`
}

// Train fits a forest on a (1 - testSize) share of m and scores it on the rest.
// With testSize <= 0 the forest sees every row and Report.Metrics is empty.
func Train(ctx context.Context, m *dataset.Matrix, params model.Params, testSize float64, logger *zap.Logger) (*model.Forest, Report, error) {
	if m == nil || m.Len() == 0 {
		return nil, Report{}, fmt.Errorf("train: %w", errEmpty)
	}
	if testSize < 0 || testSize >= 1 {
		return nil, Report{}, fmt.Errorf("test size must be in [0,1), got %g", testSize)
	}

	train, test := m.Split(testSize, params.Seed)
	logger.Info("training forest",
		zap.Int("train_rows", train.Len()),
		zap.Int("test_rows", test.Len()),
		zap.Int("trees", params.Trees),
		zap.Int("max_depth", params.MaxDepth),
	)

	start := time.Now()
	forest, err := model.Fit(ctx, train.X, train.Y, params)
	if err != nil {
		return nil, Report{}, err
	}
	forest.Features = append([]string{}, m.Features...)
	forest.Outputs = append([]string{}, m.Outputs...)

	report := Report{
		ModelID:   forest.ID,
		TrainRows: train.Len(),
		TestRows:  test.Len(),
		Duration:  time.Since(start),
	}

	if test.Len() > 0 {
		metrics, err := Evaluate(forest, test)
		if err != nil {
			return nil, Report{}, err
		}
		report.Metrics = metrics
		for _, mt := range metrics {
			logger.Info("holdout metric",
				zap.String("category", mt.Category),
				zap.Float64("mse", mt.MSE),
				zap.Float64("r2", mt.R2),
			)
		}
	}

	logger.Info("forest trained",
		zap.String("model_id", forest.ID),
		zap.Duration("duration", report.Duration),
	)
	return forest, report, nil
}

// Evaluate returns per-output MSE and R² of forest on m. R² is NaN for a
// constant target.
func Evaluate(forest *model.Forest, m *dataset.Matrix) ([]Metric, error) {
	pred, err := forest.Predict(m.X)
	if err != nil {
		return nil, fmt.Errorf("evaluate: %w", err)
	}

	n := m.Len()
	metrics := make([]Metric, forest.NumOutputs)
	for k := range metrics {
		est := make([]float64, n)
		actual := make([]float64, n)
		for i := range n {
			est[i] = pred[i][k]
			actual[i] = m.Y[i][k]
		}

		d := floats.Distance(est, actual, 2)
		name := fmt.Sprintf("output_%d", k)
		if k < len(m.Outputs) {
			name = m.Outputs[k]
		}
		metrics[k] = Metric{
			Category: name,
			MSE:      d * d / float64(n),
			R2:       rSquared(est, actual),
		}
	}
	return metrics, nil
}

func rSquared(est, actual []float64) float64 {
	if stat.Variance(actual, nil) == 0 {
		return math.NaN()
	}
	return stat.RSquaredFrom(est, actual, nil)
}
