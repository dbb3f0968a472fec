package analytics

import (
	"math"
	"testing"
	"time"

	"github.com/skycasthq/skycast/internal/models"
)

func dailyWithTemps(maxTemps []float64) []models.DailySummary {
	start := time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC)
	daily := make([]models.DailySummary, len(maxTemps))
	for i, temp := range maxTemps {
		daily[i] = models.DailySummary{
			Date:          start.AddDate(0, 0, i),
			TempMax:       temp,
			TempMin:       temp - 8,
			TempAvg:       temp - 4,
			HumidityAvg:   55,
			WindAvg:       3,
			WindMax:       5,
			PressureAvg:   1013,
			PrecipProbAvg: 30,
			PrecipProbMax: 40,
			Condition:     "Clear",
		}
	}
	return daily
}

func TestTrendInsufficientData(t *testing.T) {
	e := New(DefaultConfig())
	for n := 0; n < 3; n++ {
		values := make([]float64, n)
		res := e.TrendForSeries("temperature_max", values)
		if res.Direction != models.TrendInsufficientData {
			t.Errorf("n=%d: direction = %q, want insufficient_data", n, res.Direction)
		}
		if res.Strength != 0 || res.Confidence != 0 {
			t.Errorf("n=%d: strength=%v confidence=%v, want 0", n, res.Strength, res.Confidence)
		}
	}

	// Exactly 3 points must not be insufficient.
	res := e.TrendForSeries("temperature_max", []float64{1, 2, 3})
	if res.Direction == models.TrendInsufficientData {
		t.Error("3 points reported insufficient_data")
	}
}

func TestTrendPerfectlyIncreasing(t *testing.T) {
	e := New(DefaultConfig())
	res := e.TrendForSeries("temperature_max", []float64{20, 22, 24, 26, 28})
	if res.Direction != models.TrendIncreasing {
		t.Errorf("direction = %q, want increasing", res.Direction)
	}
	if res.Slope <= 0 {
		t.Errorf("slope = %v, want positive", res.Slope)
	}
	if math.Abs(res.RSquared-1) > 1e-9 {
		t.Errorf("r² = %v, want 1", res.RSquared)
	}
	if res.Confidence < 0.99 {
		t.Errorf("confidence = %v, want near 1", res.Confidence)
	}
	if res.Strength < 0.99 || res.Strength > 1 {
		t.Errorf("strength = %v, want near 1", res.Strength)
	}
}

func TestTrendDecreasing(t *testing.T) {
	e := New(DefaultConfig())
	res := e.TrendForSeries("pressure", []float64{1020, 1016, 1013, 1008, 1004})
	if res.Direction != models.TrendDecreasing {
		t.Errorf("direction = %q, want decreasing", res.Direction)
	}
	if res.Strength < 0 || res.Strength > 1 {
		t.Errorf("strength %v outside [0,1]", res.Strength)
	}
}

func TestTrendStableWeakCorrelation(t *testing.T) {
	e := New(DefaultConfig())
	// Values hovering around a mean with no drift.
	res := e.TrendForSeries("humidity", []float64{55, 54, 56, 55, 54, 56, 55})
	if res.Direction != models.TrendStable {
		t.Errorf("direction = %q, want stable", res.Direction)
	}
}

func TestTrendBounds(t *testing.T) {
	e := New(DefaultConfig())
	series := [][]float64{
		{1, 5, 2, 8, 3},
		{10, 10, 10, 10},
		{0, 100, 0, 100, 0},
		{-3, -2, -1, 0, 1, 2},
	}
	for _, values := range series {
		res := e.TrendForSeries("wind", values)
		if res.Strength < 0 || res.Strength > 1 {
			t.Errorf("%v: strength %v outside [0,1]", values, res.Strength)
		}
		if res.Confidence < 0 || res.Confidence > 1 {
			t.Errorf("%v: confidence %v outside [0,1]", values, res.Confidence)
		}
		if res.RSquared < 0 || res.RSquared > 1 {
			t.Errorf("%v: r² %v outside [0,1]", values, res.RSquared)
		}
	}
}

func TestAnalyzeTrendsCoversAllMetrics(t *testing.T) {
	e := New(DefaultConfig())
	trends := e.AnalyzeTrends(dailyWithTemps([]float64{20, 22, 24, 26, 28}))
	for _, metric := range trackedMetrics {
		res, ok := trends[metric]
		if !ok {
			t.Errorf("metric %q missing from trend report", metric)
			continue
		}
		if res.Metric != metric {
			t.Errorf("metric name %q != key %q", res.Metric, metric)
		}
	}
	if trends["temperature_max"].Direction != models.TrendIncreasing {
		t.Errorf("temperature_max direction = %q, want increasing", trends["temperature_max"].Direction)
	}
}

func TestAnalyzeTrendsEmptyInputIsNeutral(t *testing.T) {
	e := New(DefaultConfig())
	trends := e.AnalyzeTrends(nil)
	for metric, res := range trends {
		if res.Direction != models.TrendInsufficientData {
			t.Errorf("%s: direction = %q, want insufficient_data", metric, res.Direction)
		}
	}
}

func TestHeatWaveRiskFullRun(t *testing.T) {
	// Three consecutive days above 35 °C with a 3-day required duration
	// saturate the risk at 1.0.
	e := New(DefaultConfig())
	risk := e.PatternRisk(models.PatternHeatWave, dailyWithTemps([]float64{36, 37, 38, 34, 33}))
	if risk.Risk != 1.0 {
		t.Errorf("heat wave risk = %v, want 1.0", risk.Risk)
	}
	if risk.RunDays < 3 {
		t.Errorf("run days = %v, want at least 3", risk.RunDays)
	}
}

func TestHeatWaveRiskZeroWithoutExceedance(t *testing.T) {
	e := New(DefaultConfig())
	risk := e.PatternRisk(models.PatternHeatWave, dailyWithTemps([]float64{22, 24, 23, 25, 24}))
	if risk.Risk != 0 {
		t.Errorf("heat wave risk = %v, want 0", risk.Risk)
	}
}

func TestHeatWaveRiskPartialRun(t *testing.T) {
	e := New(DefaultConfig())
	// Two hot days, then cool: risk approaches but does not reach 1.
	risk := e.PatternRisk(models.PatternHeatWave, dailyWithTemps([]float64{36, 37, 20, 21, 20}))
	if risk.Risk <= 0 || risk.Risk >= 1 {
		t.Errorf("partial run risk = %v, want strictly between 0 and 1", risk.Risk)
	}
}

func TestColdSnapRisk(t *testing.T) {
	e := New(DefaultConfig())
	daily := dailyWithTemps([]float64{-5, -6, -7, -4, 2}) // TempMin is max-8
	risk := e.PatternRisk(models.PatternColdSnap, daily)
	if risk.Risk != 1.0 {
		t.Errorf("cold snap risk = %v, want 1.0 for sustained deep cold", risk.Risk)
	}
}

func TestDroughtRiskFullRun(t *testing.T) {
	e := New(DefaultConfig())
	// Five consecutive days with peak rain chance below the dry threshold
	// meet the 5-day duration and saturate the risk.
	daily := dailyWithTemps([]float64{25, 26, 25, 27, 26})
	for i := range daily {
		daily[i].PrecipProbMax = 5
		daily[i].PrecipProbAvg = 2
	}
	risk := e.PatternRisk(models.PatternDrought, daily)
	if risk.Risk != 1.0 {
		t.Errorf("drought risk = %v, want 1.0", risk.Risk)
	}
	if risk.RunDays != 5 {
		t.Errorf("run days = %v, want 5", risk.RunDays)
	}
	if risk.Severity != "dry" {
		t.Errorf("severity = %q, want dry", risk.Severity)
	}
}

func TestDroughtRiskZeroWithRain(t *testing.T) {
	e := New(DefaultConfig())
	// The fixture's 40% peak rain chance is above the dry threshold.
	risk := e.PatternRisk(models.PatternDrought, dailyWithTemps([]float64{25, 26, 25, 27, 26}))
	if risk.Risk != 0 {
		t.Errorf("drought risk = %v, want 0", risk.Risk)
	}
}

func TestStormRiskFromCondition(t *testing.T) {
	e := New(DefaultConfig())
	daily := dailyWithTemps([]float64{20, 21})
	daily[0].Condition = "Thunderstorm"
	daily[1].Condition = "Thunderstorm"
	risk := e.PatternRisk(models.PatternStormSystem, daily)
	if risk.Risk < 1.0 {
		t.Errorf("storm risk = %v, want 1.0 for two stormy days", risk.Risk)
	}
}

func TestPatternRiskEmptyInput(t *testing.T) {
	e := New(DefaultConfig())
	for _, p := range []models.Pattern{
		models.PatternHeatWave, models.PatternColdSnap,
		models.PatternDrought, models.PatternStormSystem,
	} {
		if risk := e.PatternRisk(p, nil); risk.Risk != 0 {
			t.Errorf("%s: empty input risk = %v, want 0", p, risk.Risk)
		}
	}
}

func TestPatternRiskInRange(t *testing.T) {
	e := New(DefaultConfig())
	daily := dailyWithTemps([]float64{41, 42, 43, 44, 45, 46, 47})
	for _, risk := range e.DetectPatterns(daily) {
		if risk.Risk < 0 || risk.Risk > 1 {
			t.Errorf("%s: risk %v outside [0,1]", risk.Pattern, risk.Risk)
		}
	}
}

func TestOutlook(t *testing.T) {
	e := New(DefaultConfig())
	if got := e.Outlook(nil); got != "Weather outlook unavailable" {
		t.Errorf("empty outlook = %q", got)
	}

	warming := e.Outlook(dailyWithTemps([]float64{20, 22, 24, 26, 28}))
	if warming != "Next few days: temperatures rising" {
		t.Errorf("warming outlook = %q", warming)
	}

	daily := dailyWithTemps([]float64{20, 20, 20, 20})
	daily[1].Condition = "Rain"
	rainy := e.Outlook(daily)
	if rainy != "Next few days: stable temperatures, some rain possible" {
		t.Errorf("rainy outlook = %q", rainy)
	}
}
