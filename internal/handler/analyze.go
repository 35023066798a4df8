package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/actuallystonmai/health-lens-service/internal/domain"
	"github.com/actuallystonmai/health-lens-service/internal/model"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

// POST /api/analyze-meal
func (h *Handler) AnalyzeMeal(w http.ResponseWriter, r *http.Request) {
	req, code, msg := decodeMealRequest(w, r)
	if req == nil {
		writeError(w, http.StatusBadRequest, code, msg)
		return
	}

	resp, err := h.service.Analyze(r.Context(), req)
	if err != nil {
		h.writeAnalyzeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// decodeMealRequest accepts only a non-empty JSON object. On failure it
// returns a nil request with the error code and message to report.
func decodeMealRequest(w http.ResponseWriter, r *http.Request) (*domain.MealRequest, string, string) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, "invalid_request", "Request body is too large"
		}
		return nil, "invalid_request", "Could not read request body"
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, "invalid_request", "Request body is required"
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, "invalid_json", "Request body must be a JSON object"
	}
	if len(fields) == 0 {
		return nil, "invalid_request", "Request body must not be empty"
	}

	var req domain.MealRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, "invalid_request", "Invalid field value: " + err.Error()
	}
	return &req, "", ""
}

func (h *Handler) writeAnalyzeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, domain.ErrModelUnavailable):
		writeError(w, http.StatusServiceUnavailable, "model_unavailable",
			"Health risk model is temporarily unavailable")
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled):
		writeError(w, http.StatusServiceUnavailable, "request_timeout",
			"Request timed out, please try again")
	case model.IsModelInferenceError(err):
		h.logger.Error("model inference failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "model_inference_error",
			"Health risk model failed to score the request")
	default:
		h.logger.Error("analyze meal failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
	}
}
