package apierror

// Error type URIs following the urn:skycast:error:* pattern.
// These are used as the "type" field in RFC 9457 Problem Details.
const (
	// TypeValidation indicates request validation failed (400)
	TypeValidation = "urn:skycast:error:validation"

	// TypeBadRequest indicates a malformed or invalid request (400)
	TypeBadRequest = "urn:skycast:error:bad_request"

	// TypeInvalidCoordinates indicates lat/lon outside valid ranges (400)
	TypeInvalidCoordinates = "urn:skycast:error:invalid_coordinates"

	// TypeLocationNotFound indicates no location matched the query (404)
	TypeLocationNotFound = "urn:skycast:error:location_not_found"

	// TypeUpstream indicates a weather or geocoding provider failure (502)
	TypeUpstream = "urn:skycast:error:upstream"

	// TypeInternal indicates an unexpected server error (500)
	TypeInternal = "urn:skycast:error:internal"
)

// Titles for each error type - human-readable summaries
const (
	TitleValidation         = "Validation Error"
	TitleBadRequest         = "Bad Request"
	TitleInvalidCoordinates = "Invalid Coordinates"
	TitleLocationNotFound   = "Location Not Found"
	TitleUpstream           = "Weather Provider Unavailable"
	TitleInternal           = "Internal Server Error"
)
