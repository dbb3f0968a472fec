package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skycasthq/skycast/internal/logger"
	"github.com/skycasthq/skycast/internal/service"
)

// InsightsHandler serves the analytics insight endpoints.
type InsightsHandler struct {
	weatherService *service.WeatherService
}

// NewInsightsHandler creates a new insights handler
func NewInsightsHandler(weatherService *service.WeatherService) *InsightsHandler {
	return &InsightsHandler{
		weatherService: weatherService,
	}
}

// GetTrends handles GET /api/v1/insights/trends
func (h *InsightsHandler) GetTrends(c *gin.Context) {
	loc, ok := locationFromQuery(c)
	if !ok {
		return
	}

	report, err := h.weatherService.Trends(c.Request.Context(), loc)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("trend analysis failed", logger.Err(err))
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetPatterns handles GET /api/v1/insights/patterns
func (h *InsightsHandler) GetPatterns(c *gin.Context) {
	loc, ok := locationFromQuery(c)
	if !ok {
		return
	}

	patterns, err := h.weatherService.Patterns(c.Request.Context(), loc)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("pattern detection failed", logger.Err(err))
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"patterns": patterns})
}

// GetRecommendations handles GET /api/v1/insights/recommendations
func (h *InsightsHandler) GetRecommendations(c *gin.Context) {
	loc, ok := locationFromQuery(c)
	if !ok {
		return
	}

	recs, err := h.weatherService.Recommendations(c.Request.Context(), loc)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("recommendations failed", logger.Err(err))
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recommendations": recs})
}

// GetAlerts handles GET /api/v1/insights/alerts
func (h *InsightsHandler) GetAlerts(c *gin.Context) {
	loc, ok := locationFromQuery(c)
	if !ok {
		return
	}

	alerts, err := h.weatherService.Alerts(c.Request.Context(), loc)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("alert evaluation failed", logger.Err(err))
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"alerts": alerts})
}
