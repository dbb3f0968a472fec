package models

import "time"

// Sample is one raw weather observation at a point in time, as returned by
// the external provider. Samples are never mutated after decoding; they exist
// only long enough to be folded into daily or hourly summaries.
type Sample struct {
	Timestamp     time.Time `json:"timestamp"`
	Temperature   float64   `json:"temperature"`    // °C
	FeelsLike     float64   `json:"feels_like"`     // °C, provider-reported
	Humidity      float64   `json:"humidity"`       // %
	Pressure      float64   `json:"pressure"`       // hPa
	WindSpeed     float64   `json:"wind_speed"`     // m/s
	WindDirection float64   `json:"wind_direction"` // degrees, 0-360
	CloudCover    float64   `json:"cloud_cover"`    // %
	PrecipProb    float64   `json:"precip_prob"`    // %
	Rain          float64   `json:"rain"`           // mm over the sample window
	Snow          float64   `json:"snow"`           // mm over the sample window
	Condition     string    `json:"condition"`      // e.g. "Clear", "Rain"
	Description   string    `json:"description"`    // e.g. "light rain"
	Icon          string    `json:"icon"`           // provider icon code
}

// Location identifies the place the dashboard is showing weather for.
type Location struct {
	City        string  `json:"city"`
	Region      string  `json:"region,omitempty"`
	Country     string  `json:"country"`
	CountryCode string  `json:"country_code,omitempty"`
	Latitude    float64 `json:"lat"`
	Longitude   float64 `json:"lon"`
	Timezone    string  `json:"timezone,omitempty"`
	IP          string  `json:"ip,omitempty"`
}

// Display returns a human-readable "City, Region, Country" label.
func (l Location) Display() string {
	if l.Region != "" && l.Region != l.City {
		return l.City + ", " + l.Region + ", " + l.Country
	}
	return l.City + ", " + l.Country
}

// ValidCoordinates reports whether the location's coordinates are in range.
func (l Location) ValidCoordinates() bool {
	return l.Latitude >= -90 && l.Latitude <= 90 && l.Longitude >= -180 && l.Longitude <= 180
}

// AirQuality is the provider's air pollution reading for a location.
type AirQuality struct {
	AQI        int       `json:"aqi"` // 1 (good) .. 5 (very poor)
	Level      string    `json:"level"`
	CO         float64   `json:"co"`    // μg/m³
	NO2        float64   `json:"no2"`   // μg/m³
	O3         float64   `json:"o3"`    // μg/m³
	PM25       float64   `json:"pm2_5"` // μg/m³
	PM10       float64   `json:"pm10"`  // μg/m³
	HealthNote string    `json:"health_note,omitempty"`
	MeasuredAt time.Time `json:"measured_at"`
}

// CurrentConditions is the assembled "right now" view for a location:
// the latest Sample plus derived feels-like metrics.
type CurrentConditions struct {
	Location     Location  `json:"location"`
	Sample       Sample    `json:"sample"`
	DewPoint     float64   `json:"dew_point"`
	HeatIndex    float64   `json:"heat_index"`
	WindChill    float64   `json:"wind_chill"`
	ApparentTemp float64   `json:"apparent_temp"`
	WindCompass  string    `json:"wind_compass"`
	Sunrise      time.Time `json:"sunrise,omitzero"`
	Sunset       time.Time `json:"sunset,omitzero"`
}
