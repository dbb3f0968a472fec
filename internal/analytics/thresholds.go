package analytics

import "github.com/skycasthq/skycast/internal/models"

// TemperatureUnits maps a unit system to its display symbol.
var TemperatureUnits = map[string]string{
	"metric":   "°C",
	"imperial": "°F",
	"kelvin":   "K",
}

// SpeedUnits maps a unit system to its wind speed symbol.
var SpeedUnits = map[string]string{
	"metric":   "m/s",
	"imperial": "mph",
	"kelvin":   "m/s",
}

// compassPoints are the 16-point compass labels, clockwise from north.
var compassPoints = []string{
	"N", "NNE", "NE", "ENE",
	"E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW",
	"W", "WNW", "NW", "NNW",
}

// SeverityTier is one threshold level of a multi-severity pattern. Weight
// follows the moderate=0.4 / severe=0.7 / extreme=1.0 scheme.
type SeverityTier struct {
	Name      string
	Threshold float64
	Weight    float64
}

// PatternRule configures consecutive-day exceedance detection for one
// named pattern.
type PatternRule struct {
	Pattern      models.Pattern
	RequiredDays int
	// Exceeds reports whether one day's summary crosses the given threshold.
	// The same predicate is evaluated per tier for tiered patterns.
	Tiers []SeverityTier
}

// Config tunes the analytics engine. The original dashboard shipped three
// near-identical analytics pipelines (basic, enhanced, premium); this single
// engine is parameterized instead.
type Config struct {
	ForecastDays  int // daily horizon, typically 5 or 7
	HourlyHorizon int // hourly horizon, typically 24

	// Ideal comfort bands and penalty slopes. Cold deviations are penalized
	// more steeply than warm ones; this matches the original basic pipeline
	// and is a recorded policy choice.
	TempIdealLow      float64
	TempIdealHigh     float64
	ColdPenaltyRate   float64 // points per °C below TempIdealLow
	WarmPenaltyRate   float64 // points per °C above TempIdealHigh
	HumidityIdealLow  float64
	HumidityIdealHigh float64
	DryPenaltyRate    float64 // points per % below HumidityIdealLow
	HumidPenaltyRate  float64 // points per % above HumidityIdealHigh
	WindPenaltyAbove  float64 // m/s threshold for wind penalty
	WindPenaltyRate   float64 // points per m/s above the threshold
	StagnantWindBelow float64 // m/s; near-zero wind feels stale
	StagnantPenalty   float64 // fixed points

	// Trend thresholds.
	WeakCorrelation float64 // |r| below this is "stable"
	MinTrendPoints  int     // fewer points than this is "insufficient_data"

	HeatWave PatternRule
	ColdSnap PatternRule
	Drought  PatternRule
	Storm    PatternRule
}

// DefaultConfig returns the canonical engine tuning used by the dashboard.
func DefaultConfig() Config {
	return Config{
		ForecastDays:  5,
		HourlyHorizon: 24,

		TempIdealLow:      18,
		TempIdealHigh:     24,
		ColdPenaltyRate:   5,
		WarmPenaltyRate:   3,
		HumidityIdealLow:  40,
		HumidityIdealHigh: 60,
		DryPenaltyRate:    0.5,
		HumidPenaltyRate:  0.8,
		WindPenaltyAbove:  5,
		WindPenaltyRate:   3,
		StagnantWindBelow: 0.5,
		StagnantPenalty:   3,

		WeakCorrelation: 0.3,
		MinTrendPoints:  3,

		// The top tier of each pattern is the canonical threshold: its
		// weight is 1.0 so a full-duration run at that tier scores 1.0.
		HeatWave: PatternRule{
			Pattern:      models.PatternHeatWave,
			RequiredDays: 3,
			Tiers: []SeverityTier{
				{Name: "moderate", Threshold: 30, Weight: 0.4},
				{Name: "severe", Threshold: 32, Weight: 0.7},
				{Name: "extreme", Threshold: 35, Weight: 1.0},
			},
		},
		ColdSnap: PatternRule{
			Pattern:      models.PatternColdSnap,
			RequiredDays: 3,
			Tiers: []SeverityTier{
				{Name: "moderate", Threshold: 0, Weight: 0.4},
				{Name: "severe", Threshold: -5, Weight: 0.7},
				{Name: "extreme", Threshold: -10, Weight: 1.0},
			},
		},
		Drought: PatternRule{
			Pattern:      models.PatternDrought,
			RequiredDays: 5,
			Tiers: []SeverityTier{
				{Name: "dry", Threshold: 20, Weight: 1.0},
			},
		},
		Storm: PatternRule{
			Pattern:      models.PatternStormSystem,
			RequiredDays: 2,
			Tiers: []SeverityTier{
				{Name: "moderate", Threshold: 10, Weight: 0.4},
				{Name: "severe", Threshold: 13, Weight: 0.7},
				{Name: "extreme", Threshold: 15, Weight: 1.0},
			},
		},
	}
}

// comfortLevels maps score breakpoints to qualitative labels, highest first.
// Breakpoints are monotonic and exhaustive over [0,100].
var comfortLevels = []struct {
	Min   float64
	Label string
}{
	{90, "Excellent"},
	{75, "Good"},
	{60, "Pleasant"},
	{45, "Fair"},
	{30, "Poor"},
	{15, "Very Poor"},
	{0, "Extremely Poor"},
}

// ComfortLevel maps a comfort score to its qualitative label.
func ComfortLevel(score float64) string {
	for _, lv := range comfortLevels {
		if score >= lv.Min {
			return lv.Label
		}
	}
	return comfortLevels[len(comfortLevels)-1].Label
}

// uvLevels maps UV index breakpoints to risk levels and protective actions.
var uvLevels = []struct {
	Max            float64
	Level          string
	Recommendation string
}{
	{2, "Low", "No protection needed"},
	{5, "Moderate", "Wear sunscreen if outdoors"},
	{7, "High", "Sunscreen and hat recommended"},
	{10, "Very High", "Avoid sun exposure 10AM-4PM"},
	{99, "Extreme", "Avoid outdoor activities"},
}
