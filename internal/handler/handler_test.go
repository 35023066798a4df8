package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/actuallystonmai/health-lens-service/internal/domain"
	"github.com/actuallystonmai/health-lens-service/internal/lexicon"
	"github.com/actuallystonmai/health-lens-service/internal/model"
	"github.com/actuallystonmai/health-lens-service/internal/nutrition"
	"github.com/actuallystonmai/health-lens-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const sampleBody = `{
	"food-items": "2 rotis, dal, rice, chicken curry",
	"meal-type": "lunch",
	"portion-size": "medium",
	"age": 30,
	"gender": "male",
	"height": 170,
	"weight": 70,
	"activity-level": "moderate",
	"conditions": ["diabetes"],
	"sleep": 7,
	"water-intake": "2-3l"
}`

func newTestHandler(fallback model.FallbackPolicy) *Handler {
	analyzer := nutrition.NewAnalyzer(lexicon.Default(), nutrition.ProportionsPolicy)
	svc := service.NewService(model.NewEstimator(nil, fallback), analyzer, nil, zap.NewNop())
	return NewHandler(svc, zap.NewNop())
}

func postMeal(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/analyze-meal", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.AnalyzeMeal(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var e ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
	return e
}

func TestAnalyzeMeal(t *testing.T) {
	h := newTestHandler(model.FallbackDefault)

	rec := postMeal(h, sampleBody)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	for _, key := range []string{"health_score", "food_analysis", "risk_predictions", "recommendations", "key_insights", "metadata"} {
		assert.Contains(t, raw, key)
	}

	var resp domain.AnalysisResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 90, resp.HealthScore)
	assert.Len(t, resp.RiskPredictions, len(domain.RiskCategories))
	assert.Len(t, resp.Recommendations, 4)
	assert.Equal(t, 4, resp.FoodAnalysis.Analysis.TotalItemsFound)
	assert.True(t, resp.Metadata.Fallback)
}

func TestAnalyzeMealAcceptsStringNumbers(t *testing.T) {
	h := newTestHandler(model.FallbackDefault)

	rec := postMeal(h, `{"food-items": "idli, sambar", "age": "45", "height": "160", "weight": "62.5"}`)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

// The unavailable policy would answer 503 if inference ran, so a 400 shows
// the body was rejected first.
func TestAnalyzeMealRejectsMalformedBody(t *testing.T) {
	h := newTestHandler(model.FallbackUnavailable)

	cases := map[string]string{
		"empty":          "",
		"whitespace":     "   \n",
		"truncated":      `{"food-items": "dal"`,
		"array":          `[1, 2, 3]`,
		"string":         `"dal"`,
		"null":           `null`,
		"empty object":   `{}`,
		"bad number":     `{"age": "thirty"}`,
		"wrong type":     `{"conditions": "diabetes"}`,
		"age too high":   `{"age": 121}`,
		"age zero":       `{"age": 0}`,
		"height too low": `{"height": 40}`,
		"weight":         `{"weight": 301}`,
		"sleep":          `{"sleep": 25}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			rec := postMeal(h, body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			e := decodeError(t, rec)
			assert.NotEmpty(t, e.Error)
			assert.NotEmpty(t, e.Message)
		})
	}
}

func TestAnalyzeMealBodyTooLarge(t *testing.T) {
	h := newTestHandler(model.FallbackDefault)

	body := `{"food-items": "` + strings.Repeat("dal, ", maxBodyBytes/4) + `"}`
	rec := postMeal(h, body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Request body is too large", decodeError(t, rec).Message)
}

func TestAnalyzeMealModelUnavailable(t *testing.T) {
	h := newTestHandler(model.FallbackUnavailable)

	rec := postMeal(h, sampleBody)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "model_unavailable", decodeError(t, rec).Error)
}

func TestAnalyzeMealCancelled(t *testing.T) {
	h := newTestHandler(model.FallbackDefault)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodPost, "/api/analyze-meal", strings.NewReader(sampleBody)).WithContext(ctx)
	rec := httptest.NewRecorder()
	h.AnalyzeMeal(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "request_timeout", decodeError(t, rec).Error)
}

func TestWriteAnalyzeErrorClassification(t *testing.T) {
	h := newTestHandler(model.FallbackDefault)

	cases := []struct {
		err    error
		status int
		code   string
	}{
		{&model.ModelInferenceError{Msg: "model inference failed"}, http.StatusInternalServerError, "model_inference_error"},
		{assert.AnError, http.StatusInternalServerError, "internal_error"},
		{domain.ErrInvalidRequest, http.StatusBadRequest, "invalid_request"},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		h.writeAnalyzeError(rec, tc.err)
		assert.Equal(t, tc.status, rec.Code)
		assert.Equal(t, tc.code, decodeError(t, rec).Error)
	}
}

func TestHealth(t *testing.T) {
	h := newTestHandler(model.FallbackDefault)

	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.False(t, resp.ModelLoaded)
	assert.Equal(t, lexicon.DefaultVersion, resp.LexiconVersion)
	assert.Contains(t, resp.AvailableEndpoints, "POST /api/analyze-meal")
}

func TestHome(t *testing.T) {
	h := newTestHandler(model.FallbackDefault)

	rec := httptest.NewRecorder()
	h.Home(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp DocsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, APIVersion, resp.Version)
	assert.Contains(t, resp.Endpoints, "POST /api/analyze-meal")
	assert.Contains(t, resp.Usage["analyze_meal"].Body, "food-items")
}
