package service

import (
	"context"
	"time"

	"github.com/skycasthq/skycast/internal/models"
)

// WeatherProvider is the upstream weather data source. The production
// implementation is pkg/openweather; tests substitute mocks.
type WeatherProvider interface {
	// Current returns the latest observation plus sunrise and sunset times.
	Current(ctx context.Context, lat, lon float64) (models.Sample, time.Time, time.Time, error)
	// Forecast returns the provider's forecast samples, oldest first.
	Forecast(ctx context.Context, lat, lon float64) ([]models.Sample, error)
	// AirQuality returns the current air pollution reading.
	AirQuality(ctx context.Context, lat, lon float64) (models.AirQuality, error)
	// Geocode resolves a free-text place name to candidate locations.
	Geocode(ctx context.Context, query string, limit int) ([]models.Location, error)
	// ReverseGeocode resolves coordinates to nearby named places.
	ReverseGeocode(ctx context.Context, lat, lon float64) ([]models.Location, error)
}

// IPLocator resolves an IP address to an approximate location. The
// production implementation is pkg/ipapi.
type IPLocator interface {
	Lookup(ctx context.Context, ip string) (models.Location, error)
}
