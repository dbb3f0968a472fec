package handlers

import (
	"errors"
	"net"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/skycasthq/skycast/internal/apierror"
	"github.com/skycasthq/skycast/internal/models"
	"github.com/skycasthq/skycast/pkg/openweather"
)

// locationFromQuery parses and validates the lat/lon query parameters.
// On failure it writes the problem response and returns ok=false.
func locationFromQuery(c *gin.Context) (models.Location, bool) {
	requestID := apierror.GetRequestID(c)

	latStr := c.Query("lat")
	lonStr := c.Query("lon")

	var fieldErrors []apierror.FieldError
	if latStr == "" {
		fieldErrors = append(fieldErrors, apierror.FieldError{Field: "lat", Message: "required query parameter"})
	}
	if lonStr == "" {
		fieldErrors = append(fieldErrors, apierror.FieldError{Field: "lon", Message: "required query parameter"})
	}
	if len(fieldErrors) > 0 {
		apierror.WriteProblem(c, apierror.NewValidationError(requestID, fieldErrors))
		return models.Location{}, false
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		fieldErrors = append(fieldErrors, apierror.FieldError{Field: "lat", Message: "must be a number"})
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		fieldErrors = append(fieldErrors, apierror.FieldError{Field: "lon", Message: "must be a number"})
	}
	if len(fieldErrors) > 0 {
		apierror.WriteProblem(c, apierror.NewValidationError(requestID, fieldErrors))
		return models.Location{}, false
	}

	loc := models.Location{
		City:      c.Query("city"),
		Latitude:  lat,
		Longitude: lon,
	}
	if !loc.ValidCoordinates() {
		apierror.WriteProblem(c, apierror.NewInvalidCoordinatesError(requestID, lat, lon))
		return models.Location{}, false
	}
	return loc, true
}

// writeServiceError maps a service-layer failure to a problem response.
// Upstream provider failures become 502s with a retry hint; everything else
// is a generic 500 with the detail kept server-side.
func writeServiceError(c *gin.Context, err error) {
	requestID := apierror.GetRequestID(c)
	if isUpstreamError(err) {
		apierror.WriteProblem(c, apierror.NewUpstreamError(requestID, 30))
		return
	}
	apierror.WriteProblem(c, apierror.NewInternalError(requestID))
}

// isUpstreamError reports whether err originated in a provider call rather
// than in our own code.
func isUpstreamError(err error) bool {
	var apiErr *openweather.APIError
	if errors.As(err, &apiErr) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
