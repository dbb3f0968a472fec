package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skycasthq/skycast/internal/logger"
	"github.com/skycasthq/skycast/internal/service"
)

// WeatherHandler serves the weather data endpoints.
type WeatherHandler struct {
	weatherService *service.WeatherService
}

// NewWeatherHandler creates a new weather handler
func NewWeatherHandler(weatherService *service.WeatherService) *WeatherHandler {
	return &WeatherHandler{
		weatherService: weatherService,
	}
}

// GetCurrent handles GET /api/v1/weather/current
func (h *WeatherHandler) GetCurrent(c *gin.Context) {
	loc, ok := locationFromQuery(c)
	if !ok {
		return
	}

	current, err := h.weatherService.Current(c.Request.Context(), loc)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("current weather failed", logger.Err(err))
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, current)
}

// GetForecast handles GET /api/v1/weather/forecast
func (h *WeatherHandler) GetForecast(c *gin.Context) {
	loc, ok := locationFromQuery(c)
	if !ok {
		return
	}

	daily, err := h.weatherService.Forecast(c.Request.Context(), loc)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("forecast failed", logger.Err(err))
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"days": daily})
}

// GetHourly handles GET /api/v1/weather/hourly
func (h *WeatherHandler) GetHourly(c *gin.Context) {
	loc, ok := locationFromQuery(c)
	if !ok {
		return
	}

	hours, err := h.weatherService.Hourly(c.Request.Context(), loc)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("hourly forecast failed", logger.Err(err))
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"hours": hours})
}

// GetSummary handles GET /api/v1/weather/summary
func (h *WeatherHandler) GetSummary(c *gin.Context) {
	loc, ok := locationFromQuery(c)
	if !ok {
		return
	}

	summary, err := h.weatherService.Summary(c.Request.Context(), loc)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("weather summary failed", logger.Err(err))
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetAirQuality handles GET /api/v1/weather/air-quality
func (h *WeatherHandler) GetAirQuality(c *gin.Context) {
	loc, ok := locationFromQuery(c)
	if !ok {
		return
	}

	aq, err := h.weatherService.AirQuality(c.Request.Context(), loc)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("air quality failed", logger.Err(err))
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, aq)
}
