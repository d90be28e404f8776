package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/hdorii/urban-heat/models"

	"github.com/gin-gonic/gin"
)

// Scorer forwards one feature row to the hosted model and returns the
// raw response body with the upstream status code.
type Scorer interface {
	Predict(ctx context.Context, row []any) ([]byte, int, error)
}

type PredictionHandler struct {
	weather TemperatureSource
	scorer  Scorer
}

func NewPredictionHandler(weather TemperatureSource, scorer Scorer) *PredictionHandler {
	return &PredictionHandler{weather: weather, scorer: scorer}
}

// PredictResult backs POST /predict_result: validate the feature
// record, chain in the observed temperature, forward to the scoring
// endpoint, and relay its response verbatim.
func (h *PredictionHandler) PredictResult(c *gin.Context) {
	var req models.PredictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if req.Timestamp == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid timestamp: field missing"})
		return
	}
	t, err := parseISOTimestamp(strings.TrimSpace(*req.Timestamp))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid timestamp: %v", err)})
		return
	}

	temp, err := h.weather.Temperature(c.Request.Context(), t)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "temperature unavailable for the requested hour"})
		return
	}

	if col, missing := req.MissingColumn(); missing {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("missing required field: %s", col)})
		return
	}

	body, status, err := h.scorer.Predict(c.Request.Context(), req.Row(t.Unix(), temp))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "scoring request failed"})
		return
	}

	c.Data(status, "application/json", body)
}
