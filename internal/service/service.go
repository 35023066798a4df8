package service

import (
	"context"
	"time"

	"github.com/actuallystonmai/health-lens-service/internal/cache"
	"github.com/actuallystonmai/health-lens-service/internal/domain"
	"github.com/actuallystonmai/health-lens-service/internal/features"
	"github.com/actuallystonmai/health-lens-service/internal/model"
	"github.com/actuallystonmai/health-lens-service/internal/nutrition"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ResponseCache stores finished analyses by fingerprint.
type ResponseCache interface {
	Get(ctx context.Context, fingerprint string) (*domain.AnalysisResponse, bool, error)
	Set(ctx context.Context, fingerprint string, resp *domain.AnalysisResponse) error
}

type Service struct {
	estimator *model.Estimator
	analyzer  *nutrition.Analyzer
	cache     ResponseCache
	logger    *zap.Logger
	now       func() time.Time
}

// NewService wires the request pipeline. cache may be nil.
func NewService(estimator *model.Estimator, analyzer *nutrition.Analyzer, cache ResponseCache, logger *zap.Logger) *Service {
	return &Service{
		estimator: estimator,
		analyzer:  analyzer,
		cache:     cache,
		logger:    logger,
		now:       time.Now,
	}
}

type HealthStatus struct {
	ModelLoaded    bool
	ModelID        string
	LexiconVersion string
}

func (s *Service) Status() HealthStatus {
	return HealthStatus{
		ModelLoaded:    s.estimator.Loaded(),
		ModelID:        s.estimator.ModelID(),
		LexiconVersion: s.analyzer.LexiconVersion(),
	}
}

// Analyze scores one meal request end to end.
func (s *Service) Analyze(ctx context.Context, req *domain.MealRequest) (*domain.AnalysisResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	vec, _ := features.FromRequest(req)
	size := domain.ParsePortionSize(req.PortionSize)

	// Check Cache
	fingerprint := s.fingerprint(req, vec, size)
	if fingerprint != "" {
		cached, found, err := s.cache.Get(ctx, fingerprint)
		if err != nil {
			s.logger.Warn("cache get failed", zap.Error(err))
		}
		if found {
			// same scores, new analysis
			cached.Metadata.AnalysisID = uuid.NewString()
			cached.Metadata.GeneratedAt = s.now().UTC().Format(time.RFC3339)
			cached.Metadata.CacheHit = true
			return cached, nil
		}
	}

	est, err := s.estimator.Predict(vec)
	switch {
	case model.IsModelInferenceError(err):
		s.logger.Warn("risk model failed, using default scores", zap.Error(err))
		est = model.Estimate{Risks: domain.DefaultPrediction(), Fallback: true}
	case err != nil:
		return nil, err
	case est.Fallback:
		s.logger.Warn("risk model not loaded, using default scores")
	}

	food := s.analyzer.Analyze(req.FoodItems, size)
	score := HealthScore(est.Risks)

	resp := &domain.AnalysisResponse{
		HealthScore:     score,
		FoodAnalysis:    food,
		RiskPredictions: est.Risks,
		Recommendations: Recommendations(est.Risks, req),
		KeyInsights:     KeyInsights(score),
		Metadata: domain.AnalysisMeta{
			AnalysisID:      uuid.NewString(),
			GeneratedAt:     s.now().UTC().Format(time.RFC3339),
			ModelID:         s.estimator.ModelID(),
			LexiconVersion:  s.analyzer.LexiconVersion(),
			NutritionPolicy: s.analyzer.Policy().Name,
			Fallback:        est.Fallback,
		},
	}

	// Fallback scores are not worth caching; the model may load later.
	if fingerprint != "" && !est.Fallback {
		if err := s.cache.Set(ctx, fingerprint, resp); err != nil {
			s.logger.Warn("cache set failed", zap.Error(err))
		}
	}

	s.logger.Debug("meal analyzed",
		zap.String("analysis_id", resp.Metadata.AnalysisID),
		zap.Int("health_score", score),
		zap.Int("matched_items", food.Analysis.TotalItemsFound),
	)
	return resp, nil
}

// fingerprint covers every input the response depends on. Empty when caching
// is off or the key cannot be built.
func (s *Service) fingerprint(req *domain.MealRequest, vec features.Vector, size domain.PortionSize) string {
	if s.cache == nil {
		return ""
	}
	fp, err := cache.Fingerprint(struct {
		Items    []string
		Portion  string
		Features features.Vector
		Model    string
		Lexicon  string
		Policy   nutrition.Policy
	}{
		Items:    nutrition.ExtractItems(req.FoodItems),
		Portion:  size.String(),
		Features: vec,
		Model:    s.estimator.ModelID(),
		Lexicon:  s.analyzer.LexiconVersion(),
		Policy:   s.analyzer.Policy(),
	})
	if err != nil {
		s.logger.Warn("cache key failed", zap.Error(err))
		return ""
	}
	return fp
}
