package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/skycasthq/skycast/internal/apierror"
	"github.com/skycasthq/skycast/internal/logger"
	"github.com/skycasthq/skycast/internal/service"
)

// LocationHandler serves the location resolution endpoints.
type LocationHandler struct {
	weatherService *service.WeatherService
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(weatherService *service.WeatherService) *LocationHandler {
	return &LocationHandler{
		weatherService: weatherService,
	}
}

// GetDetect handles GET /api/v1/location/detect
// It resolves the caller's IP to an approximate location. The ?ip= override
// exists for testing and for dashboards proxying on behalf of a client.
func (h *LocationHandler) GetDetect(c *gin.Context) {
	ip := c.Query("ip")
	if ip == "" {
		ip = c.ClientIP()
	}
	// Loopback addresses can't be geolocated; let the provider resolve the
	// server's public address instead.
	if ip == "127.0.0.1" || ip == "::1" {
		ip = ""
	}

	loc, err := h.weatherService.DetectLocation(c.Request.Context(), ip)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("ip location failed", logger.Err(err), logger.String("ip", ip))
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, loc)
}

// GetSearch handles GET /api/v1/location/search
func (h *LocationHandler) GetSearch(c *gin.Context) {
	requestID := apierror.GetRequestID(c)

	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		apierror.WriteProblem(c, apierror.NewValidationError(requestID, []apierror.FieldError{
			{Field: "q", Message: "required query parameter"},
		}))
		return
	}

	limit := 5
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 || parsed > 10 {
			apierror.WriteProblem(c, apierror.NewValidationError(requestID, []apierror.FieldError{
				{Field: "limit", Message: "must be an integer between 1 and 10"},
			}))
			return
		}
		limit = parsed
	}

	locations, err := h.weatherService.SearchLocations(c.Request.Context(), query, limit)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("location search failed", logger.Err(err), logger.String("query", query))
		writeServiceError(c, err)
		return
	}

	if len(locations) == 0 {
		apierror.WriteProblem(c, apierror.NewLocationNotFoundError(requestID, query))
		return
	}

	c.JSON(http.StatusOK, gin.H{"locations": locations})
}

// GetReverse handles GET /api/v1/location/reverse
func (h *LocationHandler) GetReverse(c *gin.Context) {
	loc, ok := locationFromQuery(c)
	if !ok {
		return
	}

	locations, err := h.weatherService.ReverseLocations(c.Request.Context(), loc.Latitude, loc.Longitude)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("reverse geocode failed", logger.Err(err))
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"locations": locations})
}
