package model

import (
	"errors"
	"fmt"

	"github.com/actuallystonmai/health-lens-service/internal/domain"
	"github.com/actuallystonmai/health-lens-service/internal/features"
)

type FallbackPolicy string

const (
	// FallbackDefault scores every category at domain.DefaultRisk when no model is loaded.
	FallbackDefault FallbackPolicy = "default"
	// FallbackUnavailable refuses to score without a model.
	FallbackUnavailable FallbackPolicy = "unavailable"
)

func ParseFallbackPolicy(s string) (FallbackPolicy, error) {
	switch FallbackPolicy(s) {
	case "", FallbackDefault:
		return FallbackDefault, nil
	case FallbackUnavailable:
		return FallbackUnavailable, nil
	}
	return "", fmt.Errorf("unknown fallback policy %q", s)
}

type ModelInferenceError struct {
	Msg string
	Err error
}

func (e *ModelInferenceError) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *ModelInferenceError) Unwrap() error { return e.Err }

func IsModelInferenceError(err error) bool {
	var target *ModelInferenceError
	return errors.As(err, &target)
}

// Estimate is one request's risk scores.
type Estimate struct {
	Risks domain.RiskPrediction
	// Fallback is set when the scores are defaults rather than model output.
	Fallback bool
}

// Estimator scores risk categories from a feature vector. It is built once
// at startup and shared read-only across requests.
type Estimator struct {
	forest   *Forest
	outputs  map[domain.RiskCategory]int
	fallback FallbackPolicy
}

// NewEstimator wraps a fitted forest. forest may be nil when no model could
// be loaded; the fallback policy then decides how Predict behaves.
func NewEstimator(forest *Forest, fallback FallbackPolicy) *Estimator {
	e := &Estimator{forest: forest, fallback: fallback}
	if forest == nil {
		return e
	}

	e.outputs = make(map[domain.RiskCategory]int, len(domain.RiskCategories))
	if len(forest.Outputs) > 0 {
		for i, name := range forest.Outputs {
			e.outputs[domain.RiskCategory(name)] = i
		}
	} else {
		// unnamed outputs follow the category order
		for i, c := range domain.RiskCategories {
			if i < forest.NumOutputs {
				e.outputs[c] = i
			}
		}
	}
	return e
}

func (e *Estimator) Loaded() bool { return e.forest != nil }

func (e *Estimator) ModelID() string {
	if e.forest == nil {
		return ""
	}
	return e.forest.ID
}

func (e *Estimator) Fallback() FallbackPolicy { return e.fallback }

// Predict runs the forest on a single row and clamps every score to [0,1].
// Categories the model does not produce get domain.DefaultRisk.
func (e *Estimator) Predict(v features.Vector) (Estimate, error) {
	if e.forest == nil {
		if e.fallback == FallbackUnavailable {
			return Estimate{}, domain.ErrModelUnavailable
		}
		return Estimate{Risks: domain.DefaultPrediction(), Fallback: true}, nil
	}

	out, err := e.forest.Predict([][]float64{v})
	if err != nil {
		return Estimate{}, &ModelInferenceError{Msg: "model inference failed", Err: err}
	}

	risks := make(domain.RiskPrediction, len(domain.RiskCategories))
	for _, c := range domain.RiskCategories {
		i, ok := e.outputs[c]
		if !ok {
			risks[c] = domain.DefaultRisk
			continue
		}
		risks[c] = domain.Clamp01(out[0][i])
	}
	return Estimate{Risks: risks}, nil
}
