package apierror

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ContentTypeProblemJSON is the MIME type for RFC 9457 Problem Details.
const ContentTypeProblemJSON = "application/problem+json"

// WriteProblem writes a ProblemDetails response to the gin context.
// It sets the correct Content-Type header and, if RetryAfter is set,
// also sets the Retry-After header.
func WriteProblem(c *gin.Context, problem *ProblemDetails) {
	c.Header("Content-Type", ContentTypeProblemJSON)

	if problem.RetryAfter != nil {
		c.Header("Retry-After", strconv.Itoa(*problem.RetryAfter))
	}

	c.JSON(problem.Status, problem)
}

// GetRequestID extracts the request ID from the gin context.
// Returns empty string if not found.
func GetRequestID(c *gin.Context) string {
	if requestID, exists := c.Get("request_id"); exists {
		if id, ok := requestID.(string); ok {
			return id
		}
	}
	return c.GetHeader("X-Request-ID")
}

// NewValidationError creates a 400 Bad Request response for validation failures.
// Multiple field errors can be included to report all issues at once.
func NewValidationError(requestID string, errors []FieldError) *ProblemDetails {
	return &ProblemDetails{
		Type:        TypeValidation,
		Title:       TitleValidation,
		Status:      http.StatusBadRequest,
		Detail:      "One or more parameters failed validation",
		RequestID:   requestID,
		UserMessage: "Please check your input and try again",
		Errors:      errors,
	}
}

// NewBadRequestError creates a 400 Bad Request response for malformed requests.
func NewBadRequestError(requestID, detail, userMessage string) *ProblemDetails {
	return &ProblemDetails{
		Type:        TypeBadRequest,
		Title:       TitleBadRequest,
		Status:      http.StatusBadRequest,
		Detail:      detail,
		RequestID:   requestID,
		UserMessage: userMessage,
	}
}

// NewInvalidCoordinatesError creates a 400 response for out-of-range lat/lon.
func NewInvalidCoordinatesError(requestID string, lat, lon float64) *ProblemDetails {
	return &ProblemDetails{
		Type:        TypeInvalidCoordinates,
		Title:       TitleInvalidCoordinates,
		Status:      http.StatusBadRequest,
		Detail:      fmt.Sprintf("coordinates (%.4f, %.4f) are outside valid ranges", lat, lon),
		RequestID:   requestID,
		UserMessage: "Latitude must be -90..90 and longitude -180..180",
	}
}

// NewLocationNotFoundError creates a 404 response for an unmatched location query.
func NewLocationNotFoundError(requestID, query string) *ProblemDetails {
	return &ProblemDetails{
		Type:        TypeLocationNotFound,
		Title:       TitleLocationNotFound,
		Status:      http.StatusNotFound,
		Detail:      fmt.Sprintf("no location matched %q", query),
		RequestID:   requestID,
		UserMessage: "We couldn't find that place. Try a nearby city name.",
	}
}

// NewUpstreamError creates a 502 response for a provider failure.
// retryAfter specifies seconds until the client should retry.
func NewUpstreamError(requestID string, retryAfter int) *ProblemDetails {
	return &ProblemDetails{
		Type:        TypeUpstream,
		Title:       TitleUpstream,
		Status:      http.StatusBadGateway,
		Detail:      "The weather data provider did not return a usable response",
		RequestID:   requestID,
		UserMessage: "Weather data is temporarily unavailable. Please try again shortly.",
		RetryAfter:  &retryAfter,
	}
}

// NewInternalError creates a 500 Internal Server Error response.
// This intentionally hides internal error details from the client;
// the actual error should be logged server-side.
func NewInternalError(requestID string) *ProblemDetails {
	return &ProblemDetails{
		Type:        TypeInternal,
		Title:       TitleInternal,
		Status:      http.StatusInternalServerError,
		Detail:      "An unexpected error occurred",
		RequestID:   requestID,
		UserMessage: "Something went wrong. Please try again later.",
	}
}
