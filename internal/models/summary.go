package models

import "time"

// DailySummary is one calendar day's aggregate of raw samples. It is built
// once by the aggregator and never mutated afterwards. Percentage-like fields
// are clamped to [0,100]; stability and confidence fields to [0,1].
type DailySummary struct {
	Date     time.Time `json:"date"`
	Day      string    `json:"day"`       // short day name, e.g. "Mon"
	DayLong  string    `json:"day_long"`  // e.g. "Monday"
	NSamples int       `json:"n_samples"` // samples folded into this day

	TempMin      float64 `json:"temp_min"`
	TempMax      float64 `json:"temp_max"`
	TempAvg      float64 `json:"temp_avg"`
	TempMedian   float64 `json:"temp_median"`
	TempVariance float64 `json:"temp_variance"`
	TempTrend    string  `json:"temp_trend"` // intra-day label: warming/cooling/steady

	HumidityAvg       float64 `json:"humidity_avg"`
	HumidityRange     float64 `json:"humidity_range"`
	HumidityStability float64 `json:"humidity_stability"`

	WindAvg           float64 `json:"wind_avg"`
	WindMax           float64 `json:"wind_max"`
	WindConsistency   float64 `json:"wind_consistency"`
	WindDirectionAvg  float64 `json:"wind_direction_avg"` // circular mean, degrees
	WindDirStability  float64 `json:"wind_dir_stability"` // circular R value

	PressureAvg       float64 `json:"pressure_avg"`
	PressureTrend     string  `json:"pressure_trend"` // rising/falling/steady
	PressureStability float64 `json:"pressure_stability"`

	Condition           string  `json:"condition"` // dominant condition for the day
	ConditionIcon       string  `json:"condition_icon"`
	ConditionDesc       string  `json:"condition_desc"`
	ConditionConfidence float64 `json:"condition_confidence"` // share of samples matching
	ConditionDiversity  int     `json:"condition_diversity"`  // distinct conditions seen

	PrecipProbMax float64 `json:"precip_prob_max"`
	PrecipProbAvg float64 `json:"precip_prob_avg"`

	CloudAvg      float64 `json:"cloud_avg"`
	CloudVariance float64 `json:"cloud_variance"`

	UVMax float64 `json:"uv_max"`
	UVAvg float64 `json:"uv_avg"`

	Comfort ComfortIndex `json:"comfort"`

	HealthIndex    float64  `json:"health_index"` // 0-100
	HealthConcerns []string `json:"health_concerns,omitempty"`

	ActivityScore float64 `json:"activity_score"` // outdoor suitability, 0-100

	PatternFlags []string `json:"pattern_flags,omitempty"` // per-day exceedance flags

	QualityScore float64 `json:"quality_score"` // overall day quality, 0-100
}

// HourlyConditions is one forecast hour enriched with derived metrics.
type HourlyConditions struct {
	Sample       Sample       `json:"sample"`
	Hour         string       `json:"hour"` // "15:00"
	DewPoint     float64      `json:"dew_point"`
	ApparentTemp float64      `json:"apparent_temp"`
	UVIndex      float64      `json:"uv_index"`
	WindCompass  string       `json:"wind_compass"`
	Comfort      ComfortIndex `json:"comfort"`
}

// ComfortIndex is a 0-100 composite rating of how pleasant conditions feel.
type ComfortIndex struct {
	Score     float64  `json:"score"` // 0-100
	Level     string   `json:"level"` // "Extremely Poor" .. "Excellent"
	Factors   []string `json:"factors,omitempty"`
	HeatIndex float64  `json:"heat_index"`
	WindChill float64  `json:"wind_chill"`
}

// UVRisk is a categorical UV exposure assessment.
type UVRisk struct {
	Index          float64 `json:"index"` // 0-12
	Level          string  `json:"level"` // Low/Moderate/High/Very High/Extreme
	Recommendation string  `json:"recommendation"`
	BurnMinutes    int     `json:"burn_minutes"` // 0 means not applicable
}
