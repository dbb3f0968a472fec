// Package openweather is a minimal client for the OpenWeatherMap REST API,
// covering current weather, the 5-day/3-hour forecast, air pollution, and
// geocoding.
package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/skycasthq/skycast/internal/models"
)

// Client talks to the OpenWeatherMap API.
type Client struct {
	APIKey     string
	BaseURL    string
	GeoBaseURL string
	Units      string
	Language   string
	HTTPClient *http.Client
}

// Config holds the settings needed to construct a Client.
type Config struct {
	APIKey     string
	BaseURL    string
	GeoBaseURL string
	Units      string
	Language   string
	Timeout    time.Duration
}

// NewClient creates a new OpenWeatherMap client.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openweathermap.org/data/2.5"
	}
	if cfg.GeoBaseURL == "" {
		cfg.GeoBaseURL = "https://api.openweathermap.org/geo/1.0"
	}
	if cfg.Units == "" {
		cfg.Units = "metric"
	}
	if cfg.Language == "" {
		cfg.Language = "en"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Client{
		APIKey:     cfg.APIKey,
		BaseURL:    cfg.BaseURL,
		GeoBaseURL: cfg.GeoBaseURL,
		Units:      cfg.Units,
		Language:   cfg.Language,
		HTTPClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// APIError is returned when the provider responds with a non-2xx status.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("openweather: status %d: %s", e.StatusCode, e.Message)
}

// weatherResponse is the provider's current-weather payload.
type weatherResponse struct {
	Dt      int64 `json:"dt"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  float64 `json:"humidity"`
		Pressure  float64 `json:"pressure"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
		Deg   float64 `json:"deg"`
	} `json:"wind"`
	Clouds struct {
		All float64 `json:"all"`
	} `json:"clouds"`
	Rain struct {
		OneHour float64 `json:"1h"`
	} `json:"rain"`
	Snow struct {
		OneHour float64 `json:"1h"`
	} `json:"snow"`
	Sys struct {
		Country string `json:"country"`
		Sunrise int64  `json:"sunrise"`
		Sunset  int64  `json:"sunset"`
	} `json:"sys"`
	Name string `json:"name"`
}

// forecastResponse is the 5-day/3-hour forecast payload.
type forecastResponse struct {
	List []struct {
		Dt      int64 `json:"dt"`
		Weather []struct {
			Main        string `json:"main"`
			Description string `json:"description"`
			Icon        string `json:"icon"`
		} `json:"weather"`
		Main struct {
			Temp      float64 `json:"temp"`
			FeelsLike float64 `json:"feels_like"`
			Humidity  float64 `json:"humidity"`
			Pressure  float64 `json:"pressure"`
		} `json:"main"`
		Wind struct {
			Speed float64 `json:"speed"`
			Deg   float64 `json:"deg"`
		} `json:"wind"`
		Clouds struct {
			All float64 `json:"all"`
		} `json:"clouds"`
		Pop  float64 `json:"pop"`
		Rain struct {
			ThreeHours float64 `json:"3h"`
		} `json:"rain"`
		Snow struct {
			ThreeHours float64 `json:"3h"`
		} `json:"snow"`
	} `json:"list"`
	City struct {
		Name    string `json:"name"`
		Country string `json:"country"`
		Coord   struct {
			Lat float64 `json:"lat"`
			Lon float64 `json:"lon"`
		} `json:"coord"`
		Timezone int    `json:"timezone"`
		Sunrise  int64  `json:"sunrise"`
		Sunset   int64  `json:"sunset"`
	} `json:"city"`
}

// airPollutionResponse is the air_pollution payload.
type airPollutionResponse struct {
	List []struct {
		Dt   int64 `json:"dt"`
		Main struct {
			AQI int `json:"aqi"`
		} `json:"main"`
		Components struct {
			CO   float64 `json:"co"`
			NO2  float64 `json:"no2"`
			O3   float64 `json:"o3"`
			PM25 float64 `json:"pm2_5"`
			PM10 float64 `json:"pm10"`
		} `json:"components"`
	} `json:"list"`
}

// geocodeResult is one entry from the direct/reverse geocoding endpoints.
type geocodeResult struct {
	Name    string  `json:"name"`
	State   string  `json:"state"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// Current fetches the current weather at the given coordinates. It returns
// the observation as a Sample plus the provider's sunrise/sunset times.
func (c *Client) Current(ctx context.Context, lat, lon float64) (models.Sample, time.Time, time.Time, error) {
	var resp weatherResponse
	params := c.coordParams(lat, lon)
	if err := c.get(ctx, c.BaseURL+"/weather", params, &resp); err != nil {
		return models.Sample{}, time.Time{}, time.Time{}, err
	}

	sample := models.Sample{
		Timestamp:     time.Unix(resp.Dt, 0).UTC(),
		Temperature:   resp.Main.Temp,
		FeelsLike:     resp.Main.FeelsLike,
		Humidity:      resp.Main.Humidity,
		Pressure:      resp.Main.Pressure,
		WindSpeed:     resp.Wind.Speed,
		WindDirection: resp.Wind.Deg,
		CloudCover:    resp.Clouds.All,
		Rain:          resp.Rain.OneHour,
		Snow:          resp.Snow.OneHour,
	}
	if len(resp.Weather) > 0 {
		sample.Condition = resp.Weather[0].Main
		sample.Description = resp.Weather[0].Description
		sample.Icon = resp.Weather[0].Icon
	}

	sunrise := time.Unix(resp.Sys.Sunrise, 0).UTC()
	sunset := time.Unix(resp.Sys.Sunset, 0).UTC()
	return sample, sunrise, sunset, nil
}

// Forecast fetches the 5-day/3-hour forecast at the given coordinates.
// Timestamps are shifted to the location's timezone so downstream daily
// bucketing follows local days.
func (c *Client) Forecast(ctx context.Context, lat, lon float64) ([]models.Sample, error) {
	var resp forecastResponse
	params := c.coordParams(lat, lon)
	if err := c.get(ctx, c.BaseURL+"/forecast", params, &resp); err != nil {
		return nil, err
	}

	zone := time.FixedZone("local", resp.City.Timezone)
	samples := make([]models.Sample, 0, len(resp.List))
	for _, entry := range resp.List {
		sample := models.Sample{
			Timestamp:     time.Unix(entry.Dt, 0).In(zone),
			Temperature:   entry.Main.Temp,
			FeelsLike:     entry.Main.FeelsLike,
			Humidity:      entry.Main.Humidity,
			Pressure:      entry.Main.Pressure,
			WindSpeed:     entry.Wind.Speed,
			WindDirection: entry.Wind.Deg,
			CloudCover:    entry.Clouds.All,
			PrecipProb:    entry.Pop * 100,
			Rain:          entry.Rain.ThreeHours,
			Snow:          entry.Snow.ThreeHours,
		}
		if len(entry.Weather) > 0 {
			sample.Condition = entry.Weather[0].Main
			sample.Description = entry.Weather[0].Description
			sample.Icon = entry.Weather[0].Icon
		}
		samples = append(samples, sample)
	}
	return samples, nil
}

// aqiLevels maps the provider's 1-5 air quality index to labels.
var aqiLevels = map[int]string{
	1: "Good",
	2: "Fair",
	3: "Moderate",
	4: "Poor",
	5: "Very Poor",
}

// aqiHealthNotes gives a short health note per AQI band.
var aqiHealthNotes = map[int]string{
	3: "Sensitive groups should limit prolonged outdoor exertion",
	4: "Everyone may begin to experience health effects",
	5: "Avoid outdoor activity; health warnings of emergency conditions",
}

// AirQuality fetches the current air pollution reading at the coordinates.
func (c *Client) AirQuality(ctx context.Context, lat, lon float64) (models.AirQuality, error) {
	var resp airPollutionResponse
	params := c.coordParams(lat, lon)
	if err := c.get(ctx, c.BaseURL+"/air_pollution", params, &resp); err != nil {
		return models.AirQuality{}, err
	}
	if len(resp.List) == 0 {
		return models.AirQuality{}, &APIError{StatusCode: http.StatusBadGateway, Message: "empty air pollution response"}
	}

	entry := resp.List[0]
	return models.AirQuality{
		AQI:        entry.Main.AQI,
		Level:      aqiLevels[entry.Main.AQI],
		CO:         entry.Components.CO,
		NO2:        entry.Components.NO2,
		O3:         entry.Components.O3,
		PM25:       entry.Components.PM25,
		PM10:       entry.Components.PM10,
		HealthNote: aqiHealthNotes[entry.Main.AQI],
		MeasuredAt: time.Unix(entry.Dt, 0).UTC(),
	}, nil
}

// Geocode resolves a free-text place name to candidate locations.
func (c *Client) Geocode(ctx context.Context, query string, limit int) ([]models.Location, error) {
	if limit <= 0 {
		limit = 5
	}
	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", strconv.Itoa(limit))

	var results []geocodeResult
	if err := c.get(ctx, c.GeoBaseURL+"/direct", params, &results); err != nil {
		return nil, err
	}
	return geocodeToLocations(results), nil
}

// ReverseGeocode resolves coordinates to the nearest named places.
func (c *Client) ReverseGeocode(ctx context.Context, lat, lon float64) ([]models.Location, error) {
	params := c.coordParams(lat, lon)
	params.Set("limit", "3")

	var results []geocodeResult
	if err := c.get(ctx, c.GeoBaseURL+"/reverse", params, &results); err != nil {
		return nil, err
	}
	return geocodeToLocations(results), nil
}

func geocodeToLocations(results []geocodeResult) []models.Location {
	locations := make([]models.Location, 0, len(results))
	for _, r := range results {
		locations = append(locations, models.Location{
			City:        r.Name,
			Region:      r.State,
			CountryCode: r.Country,
			Country:     r.Country,
			Latitude:    r.Lat,
			Longitude:   r.Lon,
		})
	}
	return locations
}

func (c *Client) coordParams(lat, lon float64) url.Values {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', 4, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', 4, 64))
	return params
}

// get performs a GET request against the provider, adding the API key,
// units, and language to every call, and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out any) error {
	params.Set("appid", c.APIKey)
	params.Set("units", c.Units)
	params.Set("lang", c.Language)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		var apiErr struct {
			Message string `json:"message"`
		}
		_ = json.Unmarshal(body, &apiErr)
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: apiErr.Message}
	}

	return json.Unmarshal(body, out)
}
