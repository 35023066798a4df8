package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/actuallystonmai/health-lens-service/internal/handler"
	"github.com/actuallystonmai/health-lens-service/internal/lexicon"
	"github.com/actuallystonmai/health-lens-service/internal/model"
	"github.com/actuallystonmai/health-lens-service/internal/nutrition"
	"github.com/actuallystonmai/health-lens-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter() http.Handler {
	analyzer := nutrition.NewAnalyzer(lexicon.Default(), nutrition.ServingPolicy)
	svc := service.NewService(model.NewEstimator(nil, model.FallbackDefault), analyzer, nil, zap.NewNop())
	return Setup(handler.NewHandler(svc, zap.NewNop()), zap.NewNop(), 5*time.Second)
}

func serve(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRoutes(t *testing.T) {
	r := newTestRouter()

	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/", "").Code)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/api/health", "").Code)

	rec := serve(r, http.MethodPost, "/api/analyze-meal", `{"food-items": "poha, tea", "portion-size": "large"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		FoodAnalysis struct {
			Nutrition struct {
				Basis string `json:"basis"`
			} `json:"nutrition"`
		} `json:"food_analysis"`
		Metadata struct {
			NutritionPolicy string `json:"nutrition_policy"`
		} `json:"metadata"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "grams", resp.FoodAnalysis.Nutrition.Basis)
	assert.Equal(t, "serving", resp.Metadata.NutritionPolicy)
}

func TestUnknownRoutesUseJSONErrors(t *testing.T) {
	r := newTestRouter()

	rec := serve(r, http.MethodGet, "/api/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"not_found"`)

	rec = serve(r, http.MethodGet, "/api/analyze-meal", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Contains(t, rec.Body.String(), `"method_not_allowed"`)
}

func TestRequestIDHeaderIsAccepted(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("X-Request-Id", "abc-123")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodOptions, "/api/analyze-meal", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
}

func TestRecovererReturnsJSON(t *testing.T) {
	h := recoverer(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := serve(h, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var e handler.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
	assert.Equal(t, "internal_error", e.Error)
}

func TestRecovererRepanicsAbort(t *testing.T) {
	h := recoverer(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		serve(h, http.MethodGet, "/", "")
	})
}
