package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server      ServerConfig
	OpenWeather OpenWeatherConfig
	Location    LocationConfig
	Analytics   AnalyticsConfig
	Cache       CacheConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            string
	Env             string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// OpenWeatherConfig holds OpenWeatherMap API settings.
type OpenWeatherConfig struct {
	APIKey     string
	BaseURL    string
	GeoBaseURL string
	Timeout    time.Duration
	Units      string
	Language   string
}

// LocationConfig holds IP geolocation settings.
type LocationConfig struct {
	BaseURL string
	Timeout time.Duration
}

// AnalyticsConfig holds analytics engine settings.
type AnalyticsConfig struct {
	ForecastDays  int
	HourlyHorizon int
}

// CacheConfig holds cache TTL settings.
type CacheConfig struct {
	WeatherTTL  time.Duration
	LocationTTL time.Duration
}

// Load reads configuration from environment variables with sensible defaults.
// All variables use the SKYCAST_ prefix except the provider API key, which is
// also read from the conventional OPENWEATHER_API_KEY.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("SKYCAST")
	v.AutomaticEnv()

	// Optional config file; environment variables take precedence.
	v.SetConfigName("skycast")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	// Common aliases without the prefix.
	_ = v.BindEnv("server.port", "SKYCAST_PORT", "PORT")
	_ = v.BindEnv("server.env", "SKYCAST_SERVER_ENV")
	_ = v.BindEnv("openweather.api_key", "SKYCAST_OPENWEATHER_API_KEY", "OPENWEATHER_API_KEY")

	v.SetDefault("server.port", "8080")
	v.SetDefault("server.env", "development")
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.shutdown_timeout", 15*time.Second)

	v.SetDefault("openweather.base_url", "https://api.openweathermap.org/data/2.5")
	v.SetDefault("openweather.geo_base_url", "https://api.openweathermap.org/geo/1.0")
	v.SetDefault("openweather.timeout", 10*time.Second)
	v.SetDefault("openweather.units", "metric")
	v.SetDefault("openweather.language", "en")

	v.SetDefault("location.base_url", "http://ip-api.com/json")
	v.SetDefault("location.timeout", 5*time.Second)

	v.SetDefault("analytics.forecast_days", 5)
	v.SetDefault("analytics.hourly_horizon", 24)

	v.SetDefault("cache.weather_ttl", 10*time.Minute)
	v.SetDefault("cache.location_ttl", time.Hour)

	cfg := &Config{
		Server: ServerConfig{
			Port:            v.GetString("server.port"),
			Env:             v.GetString("server.env"),
			ReadTimeout:     v.GetDuration("server.read_timeout"),
			WriteTimeout:    v.GetDuration("server.write_timeout"),
			ShutdownTimeout: v.GetDuration("server.shutdown_timeout"),
		},
		OpenWeather: OpenWeatherConfig{
			APIKey:     v.GetString("openweather.api_key"),
			BaseURL:    v.GetString("openweather.base_url"),
			GeoBaseURL: v.GetString("openweather.geo_base_url"),
			Timeout:    v.GetDuration("openweather.timeout"),
			Units:      v.GetString("openweather.units"),
			Language:   v.GetString("openweather.language"),
		},
		Location: LocationConfig{
			BaseURL: v.GetString("location.base_url"),
			Timeout: v.GetDuration("location.timeout"),
		},
		Analytics: AnalyticsConfig{
			ForecastDays:  v.GetInt("analytics.forecast_days"),
			HourlyHorizon: v.GetInt("analytics.hourly_horizon"),
		},
		Cache: CacheConfig{
			WeatherTTL:  v.GetDuration("cache.weather_ttl"),
			LocationTTL: v.GetDuration("cache.location_ttl"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that required configuration is present and within range.
func (c *Config) Validate() error {
	if c.OpenWeather.APIKey == "" {
		return fmt.Errorf("OPENWEATHER_API_KEY is required")
	}

	if c.Analytics.ForecastDays < 1 || c.Analytics.ForecastDays > 7 {
		return fmt.Errorf("analytics.forecast_days must be between 1 and 7, got %d", c.Analytics.ForecastDays)
	}

	if c.Analytics.HourlyHorizon < 1 || c.Analytics.HourlyHorizon > 48 {
		return fmt.Errorf("analytics.hourly_horizon must be between 1 and 48, got %d", c.Analytics.HourlyHorizon)
	}

	return nil
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}
