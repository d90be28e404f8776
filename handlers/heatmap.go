package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/hdorii/urban-heat/models"
	"github.com/hdorii/urban-heat/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type HeatmapHandler struct {
	db           *gorm.DB
	cache        *services.CacheService
	boundaryPath string
	logger       *zap.Logger
}

func NewHeatmapHandler(db *gorm.DB, cache *services.CacheService, boundaryPath string, logger *zap.Logger) *HeatmapHandler {
	return &HeatmapHandler{db: db, cache: cache, boundaryPath: boundaryPath, logger: logger}
}

// parseHourTimestamp extracts (year, month, day, hour) from the first
// 13 characters of an ISO-like timestamp, e.g. "2024-07-15T14:00".
func parseHourTimestamp(ts string) (y, m, d, hr int, err error) {
	if len(ts) < 13 {
		return 0, 0, 0, 0, fmt.Errorf("timestamp too short")
	}

	parts := strings.Split(ts[:10], "-")
	if len(parts) != 3 {
		return 0, 0, 0, 0, fmt.Errorf("malformed date")
	}
	if y, err = strconv.Atoi(parts[0]); err != nil {
		return 0, 0, 0, 0, err
	}
	if m, err = strconv.Atoi(parts[1]); err != nil {
		return 0, 0, 0, 0, err
	}
	if d, err = strconv.Atoi(parts[2]); err != nil {
		return 0, 0, 0, 0, err
	}
	if hr, err = strconv.Atoi(ts[11:13]); err != nil {
		return 0, 0, 0, 0, err
	}
	if m < 1 || m > 12 || d < 1 || d > 31 || hr < 0 || hr > 23 {
		return 0, 0, 0, 0, fmt.Errorf("timestamp fields out of range")
	}
	return y, m, d, hr, nil
}

// GetHeatmapByTime backs GET /api/heatmap_by_time: point query on the
// uhii table for one hour, merged into the boundary document.
func (h *HeatmapHandler) GetHeatmapByTime(c *gin.Context) {
	ts := c.Query("timestamp")
	if ts == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "timestamp required"})
		return
	}

	y, m, d, hr, err := parseHourTimestamp(ts)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid timestamp format"})
		return
	}

	cacheKey := fmt.Sprintf("heatmap:%04d%02d%02d%02d", y, m, d, hr)
	var cached models.FeatureCollection
	if err := h.cache.Get(c.Request.Context(), cacheKey, &cached); err == nil && cached.Features != nil {
		c.JSON(http.StatusOK, cached)
		return
	}

	var rows []models.HeatRecord
	if err := h.db.Model(&models.HeatRecord{}).
		Where("year = ? AND month = ? AND day = ? AND hour = ?", y, m, d, hr).
		Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database query failed"})
		return
	}

	doc, err := models.LoadFeatureCollection(h.boundaryPath)
	if err != nil {
		h.logger.Error("failed to load boundary document", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "boundary document unavailable"})
		return
	}

	merged := services.MergeHeatmap(doc, rows)

	go h.cache.Set(context.Background(), cacheKey, merged, 30*time.Second)

	c.JSON(http.StatusOK, merged)
}

// GetAvailableTimes backs GET /api/available_times: every distinct hour
// present in the uhii table, ascending, as "YYYY-MM-DD HH:00" strings.
func (h *HeatmapHandler) GetAvailableTimes(c *gin.Context) {
	const cacheKey = "uhii:times"

	var cached []string
	if err := h.cache.Get(c.Request.Context(), cacheKey, &cached); err == nil && cached != nil {
		c.JSON(http.StatusOK, cached)
		return
	}

	var keys []models.HourKey
	if err := h.db.Model(&models.HeatRecord{}).
		Distinct("year", "month", "day", "hour").
		Order("year, month, day, hour").
		Find(&keys).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database query failed"})
		return
	}

	times := make([]string, 0, len(keys))
	for _, k := range keys {
		times = append(times, k.String())
	}

	go h.cache.Set(context.Background(), cacheKey, times, 60*time.Second)

	c.JSON(http.StatusOK, times)
}
