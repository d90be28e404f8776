package handlers

import (
	"context"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// TemperatureSource yields the station temperature observed at a point
// in time, or services.ErrUnavailable.
type TemperatureSource interface {
	Temperature(ctx context.Context, t time.Time) (float64, error)
}

type TemperatureHandler struct {
	weather TemperatureSource
}

func NewTemperatureHandler(weather TemperatureSource) *TemperatureHandler {
	return &TemperatureHandler{weather: weather}
}

type temperatureRequest struct {
	Timestamp string `json:"timestamp"`
}

// GetTemperature backs the prediction form's POST /get_temperature.
// The form consumes errors from the body, not the status line, so
// every outcome is a 200.
func (h *TemperatureHandler) GetTemperature(c *gin.Context) {
	var req temperatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"error": "invalid request body"})
		return
	}

	t, err := time.Parse("2006-01-02 15:04:05", req.Timestamp)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"error": "invalid timestamp format, expected YYYY-MM-DD HH:MM:SS"})
		return
	}

	temp, err := h.weather.Temperature(c.Request.Context(), t)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"error": "temperature data not found for the requested hour"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"temperature": math.Round(temp*100) / 100})
}

// GetTempByTimestamp backs GET /api/get_temp_by_timestamp.
func (h *TemperatureHandler) GetTempByTimestamp(c *gin.Context) {
	t, err := parseISOTimestamp(c.Query("timestamp"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid timestamp format"})
		return
	}

	temp, err := h.weather.Temperature(c.Request.Context(), t)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "temperature unavailable for the requested hour"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"temperature": temp})
}
