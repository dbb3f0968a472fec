// Package service orchestrates the provider clients, the cache, and the
// analytics engine into the operations the HTTP handlers expose.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/skycasthq/skycast/internal/analytics"
	"github.com/skycasthq/skycast/internal/cache"
	"github.com/skycasthq/skycast/internal/logger"
	"github.com/skycasthq/skycast/internal/models"
)

// WeatherService answers every weather and insight query. All reads go
// through the cache first so a busy dashboard does not exhaust the upstream
// request quota.
type WeatherService struct {
	provider    WeatherProvider
	locator     IPLocator
	cache       cache.Cache
	engine      *analytics.Engine
	weatherTTL  time.Duration
	locationTTL time.Duration
}

// NewWeatherService creates a WeatherService. Zero TTLs fall back to
// 10 minutes for weather data and 1 hour for locations.
func NewWeatherService(provider WeatherProvider, locator IPLocator, c cache.Cache, engine *analytics.Engine, weatherTTL, locationTTL time.Duration) *WeatherService {
	if weatherTTL <= 0 {
		weatherTTL = 10 * time.Minute
	}
	if locationTTL <= 0 {
		locationTTL = time.Hour
	}
	return &WeatherService{
		provider:    provider,
		locator:     locator,
		cache:       c,
		engine:      engine,
		weatherTTL:  weatherTTL,
		locationTTL: locationTTL,
	}
}

// Current returns the assembled current conditions for the coordinates,
// including the derived feels-like metrics.
func (s *WeatherService) Current(ctx context.Context, loc models.Location) (models.CurrentConditions, error) {
	key := cache.Key("current", loc.Latitude, loc.Longitude)
	if cached, ok := s.cache.Get(key); ok {
		if cc, ok := cached.(models.CurrentConditions); ok {
			return cc, nil
		}
	}

	sample, sunrise, sunset, err := s.provider.Current(ctx, loc.Latitude, loc.Longitude)
	if err != nil {
		return models.CurrentConditions{}, fmt.Errorf("fetching current weather: %w", err)
	}

	conditions := models.CurrentConditions{
		Location:     loc,
		Sample:       sample,
		DewPoint:     analytics.DewPoint(sample.Temperature, sample.Humidity),
		HeatIndex:    analytics.HeatIndex(sample.Temperature, sample.Humidity),
		WindChill:    analytics.WindChill(sample.Temperature, sample.WindSpeed),
		ApparentTemp: analytics.ApparentTemperature(sample.Temperature, sample.Humidity, sample.WindSpeed),
		WindCompass:  analytics.CompassDirection(sample.WindDirection),
		Sunrise:      sunrise,
		Sunset:       sunset,
	}

	s.cache.Set(key, conditions, s.weatherTTL)
	return conditions, nil
}

// Forecast returns the daily summaries for the configured forecast window.
func (s *WeatherService) Forecast(ctx context.Context, loc models.Location) ([]models.DailySummary, error) {
	key := cache.Key("forecast", loc.Latitude, loc.Longitude)
	if cached, ok := s.cache.Get(key); ok {
		if daily, ok := cached.([]models.DailySummary); ok {
			return daily, nil
		}
	}

	samples, err := s.forecastSamples(ctx, loc)
	if err != nil {
		return nil, err
	}

	daily := s.engine.AggregateDaily(samples)
	s.cache.Set(key, daily, s.weatherTTL)
	return daily, nil
}

// Hourly returns the upcoming forecast hours enriched with derived metrics.
// Hours already past in the location's local day are skipped.
func (s *WeatherService) Hourly(ctx context.Context, loc models.Location) ([]models.HourlyConditions, error) {
	samples, err := s.forecastSamples(ctx, loc)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if len(samples) > 0 {
		now = now.In(samples[0].Timestamp.Location())
	}
	return s.engine.AggregateHourly(samples, now), nil
}

// Summary assembles the full dashboard payload: current conditions, comfort,
// UV risk, recommendations, alerts, and the trend report.
func (s *WeatherService) Summary(ctx context.Context, loc models.Location) (models.WeatherSummary, error) {
	current, err := s.Current(ctx, loc)
	if err != nil {
		return models.WeatherSummary{}, err
	}

	daily, err := s.Forecast(ctx, loc)
	if err != nil {
		// A summary without trends is still useful; log and continue.
		logger.Ctx(ctx).Warn("forecast unavailable for summary", logger.Err(err))
		daily = nil
	}

	sample := current.Sample
	summary := models.WeatherSummary{
		Location:        loc,
		Current:         current,
		Comfort:         s.engine.ComfortIndex(sample.Temperature, sample.Humidity, sample.WindSpeed),
		UV:              analytics.UVRisk(sample.Condition, sample.CloudCover, sample.Timestamp),
		Recommendations: s.engine.Recommend(sample, daily),
		Alerts:          s.engine.Alerts(sample, daily),
		GeneratedAt:     time.Now().UTC(),
	}
	if len(daily) > 0 {
		report := s.engine.Report(daily)
		summary.Trends = &report
	}
	return summary, nil
}

// AirQuality returns the current air pollution reading for the coordinates.
func (s *WeatherService) AirQuality(ctx context.Context, loc models.Location) (models.AirQuality, error) {
	key := cache.Key("air", loc.Latitude, loc.Longitude)
	if cached, ok := s.cache.Get(key); ok {
		if aq, ok := cached.(models.AirQuality); ok {
			return aq, nil
		}
	}

	aq, err := s.provider.AirQuality(ctx, loc.Latitude, loc.Longitude)
	if err != nil {
		return models.AirQuality{}, fmt.Errorf("fetching air quality: %w", err)
	}

	s.cache.Set(key, aq, s.weatherTTL)
	return aq, nil
}

// Trends returns the per-metric trend analysis, pattern risks, and outlook
// for the forecast window.
func (s *WeatherService) Trends(ctx context.Context, loc models.Location) (models.TrendReport, error) {
	daily, err := s.Forecast(ctx, loc)
	if err != nil {
		return models.TrendReport{}, err
	}
	return s.engine.Report(daily), nil
}

// Patterns returns the multi-day pattern risk estimates for the coordinates.
func (s *WeatherService) Patterns(ctx context.Context, loc models.Location) ([]models.PatternRisk, error) {
	daily, err := s.Forecast(ctx, loc)
	if err != nil {
		return nil, err
	}
	return s.engine.DetectPatterns(daily), nil
}

// Recommendations returns prioritized activity recommendations derived from
// current conditions and the forecast.
func (s *WeatherService) Recommendations(ctx context.Context, loc models.Location) ([]string, error) {
	current, err := s.Current(ctx, loc)
	if err != nil {
		return nil, err
	}
	daily, err := s.Forecast(ctx, loc)
	if err != nil {
		logger.Ctx(ctx).Warn("forecast unavailable for recommendations", logger.Err(err))
		daily = nil
	}
	return s.engine.Recommend(current.Sample, daily), nil
}

// Alerts returns the active severity-sorted alerts for the coordinates.
func (s *WeatherService) Alerts(ctx context.Context, loc models.Location) ([]models.Alert, error) {
	current, err := s.Current(ctx, loc)
	if err != nil {
		return nil, err
	}
	daily, err := s.Forecast(ctx, loc)
	if err != nil {
		logger.Ctx(ctx).Warn("forecast unavailable for alerts", logger.Err(err))
		daily = nil
	}
	return s.engine.Alerts(current.Sample, daily), nil
}

// DetectLocation resolves the caller's IP to an approximate location.
func (s *WeatherService) DetectLocation(ctx context.Context, ip string) (models.Location, error) {
	key := "ip:" + ip
	if cached, ok := s.cache.Get(key); ok {
		if loc, ok := cached.(models.Location); ok {
			return loc, nil
		}
	}

	loc, err := s.locator.Lookup(ctx, ip)
	if err != nil {
		return models.Location{}, fmt.Errorf("locating ip: %w", err)
	}

	s.cache.Set(key, loc, s.locationTTL)
	return loc, nil
}

// SearchLocations resolves a free-text place name to candidate locations.
func (s *WeatherService) SearchLocations(ctx context.Context, query string, limit int) ([]models.Location, error) {
	key := fmt.Sprintf("geocode:%s:%d", query, limit)
	if cached, ok := s.cache.Get(key); ok {
		if locations, ok := cached.([]models.Location); ok {
			return locations, nil
		}
	}

	locations, err := s.provider.Geocode(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("geocoding %q: %w", query, err)
	}

	s.cache.Set(key, locations, s.locationTTL)
	return locations, nil
}

// ReverseLocations resolves coordinates to the nearest named places.
func (s *WeatherService) ReverseLocations(ctx context.Context, lat, lon float64) ([]models.Location, error) {
	key := cache.Key("reverse", lat, lon)
	if cached, ok := s.cache.Get(key); ok {
		if locations, ok := cached.([]models.Location); ok {
			return locations, nil
		}
	}

	locations, err := s.provider.ReverseGeocode(ctx, lat, lon)
	if err != nil {
		return nil, fmt.Errorf("reverse geocoding: %w", err)
	}

	s.cache.Set(key, locations, s.locationTTL)
	return locations, nil
}

// forecastSamples fetches (or reuses) the raw forecast sample series.
func (s *WeatherService) forecastSamples(ctx context.Context, loc models.Location) ([]models.Sample, error) {
	key := cache.Key("samples", loc.Latitude, loc.Longitude)
	if cached, ok := s.cache.Get(key); ok {
		if samples, ok := cached.([]models.Sample); ok {
			return samples, nil
		}
	}

	samples, err := s.provider.Forecast(ctx, loc.Latitude, loc.Longitude)
	if err != nil {
		return nil, fmt.Errorf("fetching forecast: %w", err)
	}

	s.cache.Set(key, samples, s.weatherTTL)
	return samples, nil
}
