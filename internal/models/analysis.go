package models

import "time"

// TrendDirection labels the sign and significance of a linear fit over a
// short daily series.
type TrendDirection string

const (
	TrendIncreasing       TrendDirection = "increasing"
	TrendDecreasing       TrendDirection = "decreasing"
	TrendStable           TrendDirection = "stable"
	TrendVariable         TrendDirection = "variable"
	TrendInsufficientData TrendDirection = "insufficient_data"
)

// TrendResult describes the fitted trend for one tracked metric.
// Strength and Confidence are always in [0,1]; RSquared in [0,1].
type TrendResult struct {
	Metric     string         `json:"metric"`
	Direction  TrendDirection `json:"direction"`
	Strength   float64        `json:"strength"`
	Confidence float64        `json:"confidence"`
	Slope      float64        `json:"slope"`
	RSquared   float64        `json:"r_squared"`
	DataPoints int            `json:"data_points"`
}

// Pattern names a heuristic multi-day weather pattern.
type Pattern string

const (
	PatternHeatWave    Pattern = "heat_wave"
	PatternColdSnap    Pattern = "cold_snap"
	PatternDrought     Pattern = "drought"
	PatternStormSystem Pattern = "storm_system"
)

// PatternRisk is the 0-1 likelihood estimate for one named pattern, derived
// from consecutive threshold-exceedance runs in the daily series.
type PatternRisk struct {
	Pattern  Pattern `json:"pattern"`
	Risk     float64 `json:"risk"` // 0-1
	RunDays  int     `json:"run_days"`
	Required int     `json:"required_days"`
	Severity string  `json:"severity,omitempty"` // moderate/severe/extreme when tiered
}

// AlertSeverity ranks an alert for sorting; extreme sorts first.
type AlertSeverity string

const (
	SeverityExtreme AlertSeverity = "extreme"
	SeverityHigh    AlertSeverity = "high"
	SeverityMedium  AlertSeverity = "medium"
	SeverityLow     AlertSeverity = "low"
)

// Rank maps a severity to its numeric ordering (extreme=4 .. low=1).
func (s AlertSeverity) Rank() int {
	switch s {
	case SeverityExtreme:
		return 4
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	default:
		return 0
	}
}

// AlertType classifies how an alert should be presented.
type AlertType string

const (
	AlertCritical AlertType = "critical"
	AlertWarning  AlertType = "warning"
	AlertCaution  AlertType = "caution"
	AlertInfo     AlertType = "info"
)

// Alert is a severity-tagged advisory. Alerts are recomputed on every
// evaluation and never persisted.
type Alert struct {
	Severity AlertSeverity `json:"severity"`
	Type     AlertType     `json:"type"`
	Title    string        `json:"title"`
	Message  string        `json:"message"`
	Action   string        `json:"action,omitempty"`
}

// TrendReport is the full per-metric trend analysis plus pattern risks for a
// forecast window.
type TrendReport struct {
	Trends   map[string]TrendResult `json:"trends"`
	Patterns []PatternRisk          `json:"patterns"`
	Outlook  string                 `json:"outlook"`
}

// WeatherSummary is the assembled dashboard payload: current conditions with
// advisories and derived context for the presentation layer.
type WeatherSummary struct {
	Location        Location          `json:"location"`
	Current         CurrentConditions `json:"current"`
	Comfort         ComfortIndex      `json:"comfort"`
	UV              UVRisk            `json:"uv"`
	Recommendations []string          `json:"recommendations"`
	Alerts          []Alert           `json:"alerts"`
	Trends          *TrendReport      `json:"trends,omitempty"`
	GeneratedAt     time.Time         `json:"generated_at"`
}
