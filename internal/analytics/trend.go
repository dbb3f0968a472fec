package analytics

import (
	"math"
	"strings"

	"github.com/skycasthq/skycast/internal/models"
)

// Metric names tracked by the trend analyzer, in report order.
var trackedMetrics = []string{
	"temperature_max",
	"temperature_min",
	"temperature_avg",
	"humidity",
	"wind",
	"pressure",
	"precipitation",
}

// metricSeries extracts one named channel from the daily summaries.
func metricSeries(metric string, daily []models.DailySummary) []float64 {
	values := make([]float64, 0, len(daily))
	for i := range daily {
		d := &daily[i]
		switch metric {
		case "temperature_max":
			values = append(values, d.TempMax)
		case "temperature_min":
			values = append(values, d.TempMin)
		case "temperature_avg":
			values = append(values, d.TempAvg)
		case "humidity":
			values = append(values, d.HumidityAvg)
		case "wind":
			values = append(values, d.WindAvg)
		case "pressure":
			values = append(values, d.PressureAvg)
		case "precipitation":
			values = append(values, d.PrecipProbAvg)
		}
	}
	return values
}

// AnalyzeTrends fits a trend for every tracked metric over the daily series.
// Missing or short channels produce neutral results rather than errors so one
// bad channel never aborts the report.
func (e *Engine) AnalyzeTrends(daily []models.DailySummary) map[string]models.TrendResult {
	trends := make(map[string]models.TrendResult, len(trackedMetrics))
	for _, metric := range trackedMetrics {
		trends[metric] = e.TrendForSeries(metric, metricSeries(metric, daily))
	}
	return trends
}

// TrendForSeries classifies the trend of one metric's daily values.
//
// Fewer than MinTrendPoints values is insufficient_data. A weak fit
// (|r| below the configured threshold) is stable, unless the series is also
// erratic (stability below 0.5), which is labeled variable. Otherwise the
// slope sign decides increasing or decreasing with strength |r|. Confidence
// is (1-p)·r² using the two-sided slope p-value.
func (e *Engine) TrendForSeries(metric string, values []float64) models.TrendResult {
	res := models.TrendResult{
		Metric:     metric,
		Direction:  models.TrendStable,
		DataPoints: len(values),
	}
	if len(values) < e.cfg.MinTrendPoints {
		res.Direction = models.TrendInsufficientData
		return res
	}

	fit := FitSeries(values)
	res.Slope = fit.Slope
	res.RSquared = fit.RSquared
	res.Confidence = clamp01((1 - fit.PValue) * fit.RSquared)

	absR := math.Abs(fit.R)
	switch {
	case absR < e.cfg.WeakCorrelation:
		res.Strength = absR
		if Stability(values) < 0.5 {
			res.Direction = models.TrendVariable
		}
	case fit.Slope > 0:
		res.Direction = models.TrendIncreasing
		res.Strength = absR
	default:
		res.Direction = models.TrendDecreasing
		res.Strength = absR
	}
	return res
}

// DetectPatterns evaluates every configured pattern over the daily series.
func (e *Engine) DetectPatterns(daily []models.DailySummary) []models.PatternRisk {
	return []models.PatternRisk{
		e.PatternRisk(models.PatternHeatWave, daily),
		e.PatternRisk(models.PatternColdSnap, daily),
		e.PatternRisk(models.PatternDrought, daily),
		e.PatternRisk(models.PatternStormSystem, daily),
	}
}

// PatternRisk scores one named pattern over the daily series. Each severity
// tier is evaluated independently: its weight scales min(run/duration, 2.0),
// and the strongest tier wins. The final risk is clamped to [0,1]. An empty
// series or unknown pattern scores zero.
func (e *Engine) PatternRisk(pattern models.Pattern, daily []models.DailySummary) models.PatternRisk {
	rule, ok := e.patternRule(pattern)
	res := models.PatternRisk{Pattern: pattern, Required: rule.RequiredDays}
	if !ok || len(daily) == 0 {
		return res
	}

	var best float64
	for i := range rule.Tiers {
		run := longestRun(rule, daily, i)
		if run == 0 {
			continue
		}
		weighted := rule.Tiers[i].Weight * math.Min(float64(run)/float64(rule.RequiredDays), 2.0)
		if weighted > best {
			best = weighted
			res.RunDays = run
			res.Severity = rule.Tiers[i].Name
		}
	}
	res.Risk = clamp01(best)
	return res
}

func (e *Engine) patternRule(pattern models.Pattern) (PatternRule, bool) {
	switch pattern {
	case models.PatternHeatWave:
		return e.cfg.HeatWave, true
	case models.PatternColdSnap:
		return e.cfg.ColdSnap, true
	case models.PatternDrought:
		return e.cfg.Drought, true
	case models.PatternStormSystem:
		return e.cfg.Storm, true
	}
	return PatternRule{}, false
}

// longestRun finds the longest streak of consecutive days exceeding the
// given tier's threshold.
func longestRun(rule PatternRule, daily []models.DailySummary, tier int) int {
	var longest, current int
	for i := range daily {
		if exceedsTier(rule, &daily[i], tier) {
			current++
			if current > longest {
				longest = current
			}
		} else {
			current = 0
		}
	}
	return longest
}

// exceedsTier reports whether one day crosses a pattern tier's threshold.
// Heat waves test the daily maximum, cold snaps the minimum, droughts dry
// days (low peak rain chance), and storm systems peak wind or an outright
// stormy dominant condition.
func exceedsTier(rule PatternRule, d *models.DailySummary, tier int) bool {
	thr := rule.Tiers[tier].Threshold
	switch rule.Pattern {
	case models.PatternHeatWave:
		return d.TempMax > thr
	case models.PatternColdSnap:
		return d.TempMin < thr
	case models.PatternDrought:
		return d.PrecipProbMax < thr
	case models.PatternStormSystem:
		if strings.Contains(normalizeCondition(d.Condition), "storm") {
			return true
		}
		return d.WindMax > thr
	}
	return false
}

// Outlook condenses the window's trends and conditions into one line for the
// dashboard header.
func (e *Engine) Outlook(daily []models.DailySummary) string {
	if len(daily) < 2 {
		return "Weather outlook unavailable"
	}

	var parts []string
	switch e.TrendForSeries("temperature_max", metricSeries("temperature_max", daily)).Direction {
	case models.TrendIncreasing:
		parts = append(parts, "temperatures rising")
	case models.TrendDecreasing:
		parts = append(parts, "cooling trend")
	default:
		parts = append(parts, "stable temperatures")
	}

	rainDays := 0
	for i := range daily {
		if containsAny(normalizeCondition(daily[i].Condition), "rain", "drizzle", "storm") {
			rainDays++
		}
	}
	if rainDays > 2 {
		parts = append(parts, "rainy conditions expected")
	} else if rainDays > 0 {
		parts = append(parts, "some rain possible")
	}

	return "Next few days: " + strings.Join(parts, ", ")
}

// Report runs the full trend analysis: per-metric trends, pattern risks, and
// the outlook line.
func (e *Engine) Report(daily []models.DailySummary) models.TrendReport {
	return models.TrendReport{
		Trends:   e.AnalyzeTrends(daily),
		Patterns: e.DetectPatterns(daily),
		Outlook:  e.Outlook(daily),
	}
}
