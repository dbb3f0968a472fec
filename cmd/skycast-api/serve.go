package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/skycasthq/skycast/internal/analytics"
	"github.com/skycasthq/skycast/internal/cache"
	"github.com/skycasthq/skycast/internal/config"
	"github.com/skycasthq/skycast/internal/handlers"
	"github.com/skycasthq/skycast/internal/logger"
	"github.com/skycasthq/skycast/internal/middleware"
	"github.com/skycasthq/skycast/internal/service"
	"github.com/skycasthq/skycast/pkg/ipapi"
	"github.com/skycasthq/skycast/pkg/openweather"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long:  `Start the HTTP API server and listen for requests.`,
	RunE:  runServe,
}

var (
	port string
)

func init() {
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Override port from flag if provided
	if port != "" {
		cfg.Server.Port = port
	}

	// Initialize structured logging
	log := logger.NewSlogLogger(logger.Config{
		Level:  logger.ParseLevel(os.Getenv("SKYCAST_LOG_LEVEL")),
		Format: os.Getenv("SKYCAST_LOG_FORMAT"),
	})
	logger.SetDefault(log)

	log.Info("starting skycast api", logger.String("env", cfg.Server.Env))

	// Initialize provider clients
	weatherClient := openweather.NewClient(openweather.Config{
		APIKey:     cfg.OpenWeather.APIKey,
		BaseURL:    cfg.OpenWeather.BaseURL,
		GeoBaseURL: cfg.OpenWeather.GeoBaseURL,
		Units:      cfg.OpenWeather.Units,
		Language:   cfg.OpenWeather.Language,
		Timeout:    cfg.OpenWeather.Timeout,
	})
	locationClient := ipapi.NewClient(cfg.Location.BaseURL, cfg.Location.Timeout)

	// Initialize the analytics engine and cache
	engineCfg := analytics.DefaultConfig()
	engineCfg.ForecastDays = cfg.Analytics.ForecastDays
	engineCfg.HourlyHorizon = cfg.Analytics.HourlyHorizon
	engine := analytics.New(engineCfg)
	store := cache.New(cfg.Cache.WeatherTTL)

	// Initialize services
	weatherService := service.NewWeatherService(weatherClient, locationClient, store, engine, cfg.Cache.WeatherTTL, cfg.Cache.LocationTTL)

	// Initialize handlers
	weatherHandler := handlers.NewWeatherHandler(weatherService)
	insightsHandler := handlers.NewInsightsHandler(weatherService)
	locationHandler := handlers.NewLocationHandler(weatherService)

	// Set Gin mode based on environment
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())

	// Middleware
	router.Use(middleware.CORS())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.RequestLogger(log))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.Server.Env,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		weather := v1.Group("/weather")
		{
			weather.GET("/current", weatherHandler.GetCurrent)
			weather.GET("/forecast", weatherHandler.GetForecast)
			weather.GET("/hourly", weatherHandler.GetHourly)
			weather.GET("/summary", weatherHandler.GetSummary)
			weather.GET("/air-quality", weatherHandler.GetAirQuality)
		}

		insights := v1.Group("/insights")
		{
			insights.GET("/trends", insightsHandler.GetTrends)
			insights.GET("/patterns", insightsHandler.GetPatterns)
			insights.GET("/recommendations", insightsHandler.GetRecommendations)
			insights.GET("/alerts", insightsHandler.GetAlerts)
		}

		location := v1.Group("/location")
		{
			location.GET("/detect", locationHandler.GetDetect)
			location.GET("/search", locationHandler.GetSearch)
			location.GET("/reverse", locationHandler.GetReverse)
		}
	}

	log.Info("server listening", logger.String("port", cfg.Server.Port))

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
