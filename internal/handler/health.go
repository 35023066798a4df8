package handler

import "net/http"

var endpoints = []string{
	"GET /",
	"GET /api/health",
	"POST /api/analyze-meal",
}

// GET /api/health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	st := h.service.Status()
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:             "healthy",
		ModelLoaded:        st.ModelLoaded,
		ModelID:            st.ModelID,
		LexiconVersion:     st.LexiconVersion,
		AvailableEndpoints: endpoints,
	})
}

// GET /
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, DocsResponse{
		Message: "Health Lens - Health Analysis API",
		Version: APIVersion,
		Endpoints: map[string]string{
			"POST /api/analyze-meal": "Analyze meal and predict health risks",
			"GET /api/health":        "Health check endpoint",
		},
		Usage: map[string]EndpointUsage{
			"analyze_meal": {
				Method: http.MethodPost,
				URL:    "/api/analyze-meal",
				Body: map[string]string{
					"food-items":      "string (required)",
					"meal-type":       "string (required)",
					"portion-size":    "string (required): small, medium or large",
					"age":             "number (required): 1-120",
					"gender":          "string (required): male, female or other",
					"height":          "number (required): cm, 50-250",
					"weight":          "number (required): kg, 5-300",
					"activity-level":  "string (required): sedentary, light, moderate, active or very-active",
					"conditions":      "array (optional): e.g. diabetes, heart-problems",
					"sleep":           "number (optional): hours, 0-24",
					"water-intake":    "string (optional): less-than-1l, 1-2l, 2-3l or more-than-3l",
					"diet-pattern":    "string (optional): vegetarian, lacto-vegetarian, eggetarian, north-indian or non-vegetarian",
					"meals-per-day":   "number (optional): 1-10",
					"snack-frequency": "string (optional): never, rare, weekly or daily",
					"smoking-status":  "string (optional): never, former or current",
					"alcohol":         "number (optional): units per week, 0-200",
				},
			},
		},
	})
}
