package main

import (
	"fmt"
	"log"

	"github.com/hdorii/urban-heat/config"
	"github.com/hdorii/urban-heat/handlers"
	"github.com/hdorii/urban-heat/middleware"
	"github.com/hdorii/urban-heat/models"
	"github.com/hdorii/urban-heat/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Local dev convenience; absence of a .env file is fine.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.GetDSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get sql db handle: %v", err)
	}
	if err := sqlDB.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	// Cache is optional: a failed redis connection degrades to fresh reads.
	cache, err := services.NewCacheService(cfg.Redis, logger)
	if err != nil {
		logger.Warn("redis unavailable, continuing without response cache", zap.Error(err))
	}

	// The name table must cover exactly the boundary document's district
	// set, otherwise some districts could never receive UHII values.
	if doc, err := models.LoadFeatureCollection(cfg.Boundary.Path); err != nil {
		logger.Warn("boundary document not readable at startup", zap.Error(err))
	} else if err := services.CheckDistrictCoverage(doc); err != nil {
		logger.Warn("district name table does not cover boundary document", zap.Error(err))
	}

	weather := services.NewWeatherClient(cfg.Weather, logger)
	scorer := services.NewScoringClient(cfg.Scoring, logger)

	pages := handlers.NewPagesHandler()
	temperature := handlers.NewTemperatureHandler(weather)
	prediction := handlers.NewPredictionHandler(weather, scorer)
	heatmap := handlers.NewHeatmapHandler(db, cache, cfg.Boundary.Path, logger)

	// Initialize Gin router
	router := gin.Default()
	router.Use(middleware.SetupCORS(cfg.CORS))
	router.LoadHTMLGlob("templates/*.html")

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "UP",
			"message": "Urban Heat API is running",
		})
	})

	router.GET("/", pages.Index)
	router.GET("/predict", pages.Predict)
	router.GET("/features", pages.Features)
	router.GET("/heatmap_view", pages.HeatmapView)
	router.GET("/power_bi", pages.PowerBI)

	router.POST("/get_temperature", temperature.GetTemperature)
	router.POST("/predict_result", prediction.PredictResult)

	api := router.Group("/api")
	{
		api.GET("/get_temp_by_timestamp", temperature.GetTempByTimestamp)
		api.GET("/available_times", heatmap.GetAvailableTimes)
		api.GET("/heatmap_by_time", heatmap.GetHeatmapByTime)
	}

	// Start server
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Starting server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
