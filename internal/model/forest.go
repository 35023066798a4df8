package model

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"runtime"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

type Params struct {
	Trees           int     `json:"trees"`
	MaxDepth        int     `json:"max_depth"`
	MinSamplesSplit int     `json:"min_samples_split"`
	MinSamplesLeaf  int     `json:"min_samples_leaf"`
	MaxFeatures     float64 `json:"max_features"`
	Seed            int64   `json:"seed"`
	Workers         int     `json:"-"`
}

func DefaultParams() Params {
	return Params{
		Trees:           100,
		MaxDepth:        10,
		MinSamplesSplit: 2,
		MinSamplesLeaf:  5,
		MaxFeatures:     1.0,
		Seed:            42,
	}
}

func (p Params) Validate() error {
	if p.Trees < 1 {
		return fmt.Errorf("trees must be at least 1, got %d", p.Trees)
	}
	if p.MaxDepth < 0 {
		return fmt.Errorf("max depth must be non-negative, got %d", p.MaxDepth)
	}
	if p.MinSamplesSplit < 2 {
		return fmt.Errorf("min samples split must be at least 2, got %d", p.MinSamplesSplit)
	}
	if p.MinSamplesLeaf < 1 {
		return fmt.Errorf("min samples leaf must be at least 1, got %d", p.MinSamplesLeaf)
	}
	if p.MaxFeatures < 0 || p.MaxFeatures > 1 {
		return fmt.Errorf("max features must be a fraction in [0,1], got %g", p.MaxFeatures)
	}
	return nil
}

// Forest is a bootstrap-aggregated ensemble of multi-output regression
// trees. A fitted forest is read-only; Predict is safe for concurrent use.
type Forest struct {
	ID          string    `json:"id"`
	TrainedAt   time.Time `json:"trained_at"`
	Params      Params    `json:"params"`
	Features    []string  `json:"features"`
	Outputs     []string  `json:"outputs"`
	NumFeatures int       `json:"num_features"`
	NumOutputs  int       `json:"num_outputs"`
	Trees       []Tree    `json:"trees"`
}

// Fit trains a forest on x (rows × features) and y (rows × outputs). Trees
// are grown concurrently; tree i draws its bootstrap sample from Seed+i, so
// the result does not depend on scheduling.
func Fit(ctx context.Context, x, y [][]float64, p Params) (*Forest, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := checkShapes(x, y); err != nil {
		return nil, err
	}

	workers := p.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	trees := make([]Tree, p.Trees)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range trees {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rng := rand.New(rand.NewSource(p.Seed + int64(i)))
			sample := make([]int, len(x))
			for k := range sample {
				sample[k] = rng.Intn(len(x))
			}
			trees[i] = fitTree(x, y, sample, p, rng)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("fit forest: %w", err)
	}

	return &Forest{
		ID:          uuid.NewString(),
		TrainedAt:   time.Now().UTC(),
		Params:      p,
		NumFeatures: len(x[0]),
		NumOutputs:  len(y[0]),
		Trees:       trees,
	}, nil
}

func checkShapes(x, y [][]float64) error {
	if len(x) == 0 {
		return fmt.Errorf("no training rows")
	}
	if len(x) != len(y) {
		return fmt.Errorf("feature rows (%d) and target rows (%d) differ", len(x), len(y))
	}
	nf, no := len(x[0]), len(y[0])
	if nf == 0 || no == 0 {
		return fmt.Errorf("training data needs at least one feature and one output")
	}
	for i := range x {
		if len(x[i]) != nf || len(y[i]) != no {
			return fmt.Errorf("row %d has inconsistent width", i)
		}
		for _, v := range x[i] {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("row %d has a non-finite feature", i)
			}
		}
	}
	return nil
}

// Predict averages the trees' outputs for each row.
func (f *Forest) Predict(rows [][]float64) ([][]float64, error) {
	out := make([][]float64, len(rows))
	for i, x := range rows {
		if len(x) != f.NumFeatures {
			return nil, fmt.Errorf("row %d has %d features, model expects %d", i, len(x), f.NumFeatures)
		}
		acc := make([]float64, f.NumOutputs)
		for t := range f.Trees {
			floats.Add(acc, f.Trees[t].predict(x))
		}
		floats.Scale(1/float64(len(f.Trees)), acc)
		out[i] = acc
	}
	return out, nil
}

// validate checks the structure of a deserialized forest so Predict cannot
// index out of range.
func (f *Forest) validate() error {
	if f.NumFeatures < 1 || f.NumOutputs < 1 {
		return fmt.Errorf("model has %d features and %d outputs", f.NumFeatures, f.NumOutputs)
	}
	if len(f.Trees) == 0 {
		return fmt.Errorf("model has no trees")
	}
	if len(f.Features) > 0 && len(f.Features) != f.NumFeatures {
		return fmt.Errorf("model names %d features but has %d", len(f.Features), f.NumFeatures)
	}
	if len(f.Outputs) > 0 && len(f.Outputs) != f.NumOutputs {
		return fmt.Errorf("model names %d outputs but has %d", len(f.Outputs), f.NumOutputs)
	}
	for ti, t := range f.Trees {
		if len(t.Nodes) == 0 {
			return fmt.Errorf("tree %d is empty", ti)
		}
		for ni, n := range t.Nodes {
			if n.Feature < 0 {
				if len(n.Value) != f.NumOutputs {
					return fmt.Errorf("tree %d node %d: leaf has %d values", ti, ni, len(n.Value))
				}
				continue
			}
			if n.Feature >= f.NumFeatures ||
				n.Left <= ni || n.Left >= len(t.Nodes) ||
				n.Right <= ni || n.Right >= len(t.Nodes) {
				return fmt.Errorf("tree %d node %d: invalid split", ti, ni)
			}
		}
	}
	return nil
}
