// Command apiprobe smoke-tests a running server.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/actuallystonmai/health-lens-service/internal/domain"
	"github.com/actuallystonmai/health-lens-service/internal/handler"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

type Probe struct {
	client *resty.Client
	logger *zap.Logger
}

func NewProbe(baseURL string, timeout time.Duration, logger *zap.Logger) *Probe {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(2).
		SetRetryWaitTime(500*time.Millisecond).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Probe{client: client, logger: logger}
}

type Result struct {
	Name string
	Err  error
}

// SampleMeal is the canonical request used for smoke tests.
func SampleMeal() domain.MealRequest {
	return domain.MealRequest{
		FoodItems:     "2 rotis, dal, rice, chicken curry",
		MealType:      "lunch",
		PortionSize:   "medium",
		Age:           domain.Num(30),
		Gender:        "male",
		Height:        domain.Num(170),
		Weight:        domain.Num(70),
		ActivityLevel: "moderate",
		Conditions:    []string{"diabetes"},
		Sleep:         domain.Num(7),
		WaterIntake:   "2-3l",
	}
}

func (p *Probe) Run(ctx context.Context) []Result {
	checks := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"health", p.CheckHealth},
		{"analyze-meal", p.CheckAnalyze},
		{"malformed-body", p.CheckMalformed},
	}

	results := make([]Result, 0, len(checks))
	for _, c := range checks {
		err := c.fn(ctx)
		if err != nil {
			p.logger.Error("check failed", zap.String("check", c.name), zap.Error(err))
		} else {
			p.logger.Info("check passed", zap.String("check", c.name))
		}
		results = append(results, Result{Name: c.name, Err: err})
	}
	return results
}

func (p *Probe) CheckHealth(ctx context.Context) error {
	var health handler.HealthResponse
	resp, err := p.client.R().
		SetContext(ctx).
		SetResult(&health).
		Get("/api/health")
	if err != nil {
		return fmt.Errorf("GET /api/health: %w", err)
	}
	if resp.StatusCode() != 200 {
		return fmt.Errorf("GET /api/health: status %d", resp.StatusCode())
	}
	if health.Status != "healthy" {
		return fmt.Errorf("GET /api/health: status field %q", health.Status)
	}
	p.logger.Info("server health",
		zap.Bool("model_loaded", health.ModelLoaded),
		zap.String("model_id", health.ModelID),
		zap.String("lexicon_version", health.LexiconVersion),
	)
	return nil
}

func (p *Probe) CheckAnalyze(ctx context.Context) error {
	var analysis domain.AnalysisResponse
	var apiErr handler.ErrorResponse
	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(SampleMeal()).
		SetResult(&analysis).
		SetError(&apiErr).
		Post("/api/analyze-meal")
	if err != nil {
		return fmt.Errorf("POST /api/analyze-meal: %w", err)
	}
	if resp.StatusCode() != 200 {
		return fmt.Errorf("POST /api/analyze-meal: status %d: %s", resp.StatusCode(), apiErr.Message)
	}

	if analysis.HealthScore < 0 || analysis.HealthScore > 100 {
		return fmt.Errorf("health_score %d out of range", analysis.HealthScore)
	}
	if len(analysis.RiskPredictions) != len(domain.RiskCategories) {
		return fmt.Errorf("expected %d risk categories, got %d", len(domain.RiskCategories), len(analysis.RiskPredictions))
	}
	for c, v := range analysis.RiskPredictions {
		if v < 0 || v > 1 {
			return fmt.Errorf("risk %s = %g out of range", c, v)
		}
	}
	if len(analysis.Recommendations) == 0 || len(analysis.Recommendations) > 5 {
		return fmt.Errorf("expected 1-5 recommendations, got %d", len(analysis.Recommendations))
	}
	if analysis.FoodAnalysis.Analysis.TotalItemsFound == 0 {
		return fmt.Errorf("no foods matched in %q", SampleMeal().FoodItems)
	}

	p.logger.Info("meal analyzed",
		zap.Int("health_score", analysis.HealthScore),
		zap.Strings("matched_items", analysis.FoodAnalysis.MatchedItems),
		zap.Bool("fallback", analysis.Metadata.Fallback),
	)
	return nil
}

func (p *Probe) CheckMalformed(ctx context.Context) error {
	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(`{"food-items": `).
		Post("/api/analyze-meal")
	if err != nil {
		return fmt.Errorf("POST /api/analyze-meal: %w", err)
	}
	if resp.StatusCode() != 400 {
		return fmt.Errorf("malformed body: expected status 400, got %d", resp.StatusCode())
	}
	return nil
}

func main() {
	baseURL := flag.String("url", "http://localhost:5000", "server base URL")
	timeout := flag.Duration("timeout", 10*time.Second, "per-request timeout")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	failed := 0
	for _, r := range NewProbe(*baseURL, *timeout, logger).Run(context.Background()) {
		status := "PASS"
		if r.Err != nil {
			status = "FAIL"
			failed++
		}
		fmt.Printf("%-16s %s\n", r.Name, status)
	}
	if failed > 0 {
		os.Exit(1)
	}
}
