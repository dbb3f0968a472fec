package analytics

import (
	"sort"
	"time"

	"github.com/skycasthq/skycast/internal/models"
)

// Intra-day slope thresholds for the qualitative temperature and pressure
// labels, in units per sample step.
const (
	tempSlopeSteady     = 0.2 // °C
	pressureSlopeSteady = 0.3 // hPa
)

// dayBucket accumulates one calendar day's samples in arrival order.
type dayBucket struct {
	date       time.Time
	temps      []float64
	humidity   []float64
	wind       []float64
	windDir    []float64
	pressure   []float64
	clouds     []float64
	precipProb []float64
	conditions []string
	icons      []string
	descs      []string
	uv         []float64
}

// AggregateDaily folds raw samples into one summary per calendar day, sorted
// ascending by date and truncated to the configured forecast horizon. The
// calendar date is taken from each sample's timestamp in its own location.
// Aggregating the same samples twice yields identical output.
func (e *Engine) AggregateDaily(samples []models.Sample) []models.DailySummary {
	if len(samples) == 0 {
		return nil
	}

	buckets := make(map[string]*dayBucket)
	var order []string

	for _, s := range samples {
		key := s.Timestamp.Format("2006-01-02")
		b, ok := buckets[key]
		if !ok {
			b = &dayBucket{date: truncateToDay(s.Timestamp)}
			buckets[key] = b
			order = append(order, key)
		}
		b.temps = append(b.temps, sanitizeTemp(s.Temperature))
		b.humidity = append(b.humidity, sanitizeHumidity(s.Humidity))
		b.wind = append(b.wind, sanitizeWind(s.WindSpeed))
		b.windDir = append(b.windDir, s.WindDirection)
		b.pressure = append(b.pressure, s.Pressure)
		b.clouds = append(b.clouds, clampPercent(s.CloudCover))
		b.precipProb = append(b.precipProb, clampPercent(s.PrecipProb))
		b.conditions = append(b.conditions, s.Condition)
		b.icons = append(b.icons, s.Icon)
		b.descs = append(b.descs, s.Description)
		b.uv = append(b.uv, UVRisk(s.Condition, s.CloudCover, s.Timestamp).Index)
	}

	summaries := make([]models.DailySummary, 0, len(buckets))
	for _, key := range order {
		summaries = append(summaries, e.summarizeDay(buckets[key]))
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Date.Before(summaries[j].Date)
	})

	if len(summaries) > e.cfg.ForecastDays {
		summaries = summaries[:e.cfg.ForecastDays]
	}
	return summaries
}

func (e *Engine) summarizeDay(b *dayBucket) models.DailySummary {
	temp := Describe(b.temps)
	humidity := Describe(b.humidity)
	wind := Describe(b.wind)
	pressure := Describe(b.pressure)
	clouds := Describe(b.clouds)
	precip := Describe(b.precipProb)
	uv := Describe(b.uv)

	windDirMean, windDirR := CircularMean(b.windDir)
	condition, confidence, diversity := dominantValue(b.conditions)
	icon, _, _ := dominantValue(b.icons)
	desc, _, _ := dominantValue(b.descs)

	comfort := e.ComfortIndex(temp.Mean, humidity.Mean, wind.Mean)
	health, concerns := e.healthIndex(temp, humidity, wind, uv)
	activity := e.activityScore(comfort.Score, precip.Mean, wind.Mean)

	d := models.DailySummary{
		Date:     b.date,
		Day:      b.date.Format("Mon"),
		DayLong:  b.date.Format("Monday"),
		NSamples: len(b.temps),

		TempMin:      temp.Min,
		TempMax:      temp.Max,
		TempAvg:      temp.Mean,
		TempMedian:   temp.Median,
		TempVariance: temp.Variance,
		TempTrend:    slopeLabel(FitSeries(b.temps).Slope, tempSlopeSteady, "warming", "cooling", "steady"),

		HumidityAvg:       clampPercent(humidity.Mean),
		HumidityRange:     humidity.Range,
		HumidityStability: Stability(b.humidity),

		WindAvg:          wind.Mean,
		WindMax:          wind.Max,
		WindConsistency:  Stability(b.wind),
		WindDirectionAvg: windDirMean,
		WindDirStability: windDirR,

		PressureAvg:       pressure.Mean,
		PressureTrend:     slopeLabel(FitSeries(b.pressure).Slope, pressureSlopeSteady, "rising", "falling", "steady"),
		PressureStability: Stability(b.pressure),

		Condition:           condition,
		ConditionIcon:       icon,
		ConditionDesc:       desc,
		ConditionConfidence: confidence,
		ConditionDiversity:  diversity,

		PrecipProbMax: clampPercent(precip.Max),
		PrecipProbAvg: clampPercent(precip.Mean),

		CloudAvg:      clampPercent(clouds.Mean),
		CloudVariance: clouds.Variance,

		UVMax: uv.Max,
		UVAvg: uv.Mean,

		Comfort:        comfort,
		HealthIndex:    health,
		HealthConcerns: concerns,
		ActivityScore:  activity,
	}

	d.PatternFlags = e.dayPatternFlags(&d)
	d.QualityScore = clampPercent(0.4*comfort.Score + 0.3*activity + 0.3*health)
	return d
}

// AggregateHourly enriches upcoming samples with per-sample derived metrics,
// skipping hours already past on the current calendar day and truncating to
// the configured hourly horizon.
func (e *Engine) AggregateHourly(samples []models.Sample, now time.Time) []models.HourlyConditions {
	if len(samples) == 0 {
		return nil
	}

	ordered := make([]models.Sample, len(samples))
	copy(ordered, samples)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Timestamp.Before(ordered[j].Timestamp)
	})

	out := make([]models.HourlyConditions, 0, e.cfg.HourlyHorizon)
	for _, s := range ordered {
		if sameDay(s.Timestamp, now) && s.Timestamp.Hour() < now.Hour() {
			continue
		}
		out = append(out, models.HourlyConditions{
			Sample:       s,
			Hour:         s.Timestamp.Format("15:04"),
			DewPoint:     DewPoint(s.Temperature, s.Humidity),
			ApparentTemp: ApparentTemperature(s.Temperature, s.Humidity, s.WindSpeed),
			UVIndex:      UVRisk(s.Condition, s.CloudCover, s.Timestamp).Index,
			WindCompass:  CompassDirection(s.WindDirection),
			Comfort:      e.ComfortIndex(s.Temperature, s.Humidity, s.WindSpeed),
		})
		if len(out) == e.cfg.HourlyHorizon {
			break
		}
	}
	return out
}

// healthIndex scores weather-related health stress for the day on a 0-100
// scale (higher is healthier) and names the contributing concerns.
func (e *Engine) healthIndex(temp, humidity, wind, uv Summary) (float64, []string) {
	score := 100.0
	var concerns []string

	apparent := ApparentTemperature(temp.Mean, humidity.Mean, wind.Mean)
	switch {
	case apparent >= 35:
		score -= 30
		concerns = append(concerns, "heat stress risk")
	case apparent >= 30:
		score -= 15
		concerns = append(concerns, "heat discomfort")
	case apparent <= -15:
		score -= 30
		concerns = append(concerns, "frostbite risk")
	case apparent <= -5:
		score -= 15
		concerns = append(concerns, "cold exposure")
	}

	if humidity.Mean > 85 {
		score -= 10
		concerns = append(concerns, "very humid air")
	} else if humidity.Mean < 20 {
		score -= 10
		concerns = append(concerns, "very dry air")
	}

	if wind.Max > 15 {
		score -= 10
		concerns = append(concerns, "hazardous wind gusts")
	}

	if uv.Max > 8 {
		score -= 10
		concerns = append(concerns, "extreme UV exposure")
	} else if uv.Max > 5 {
		score -= 5
		concerns = append(concerns, "high UV exposure")
	}

	return clampPercent(score), concerns
}

// activityScore rates outdoor activity suitability from comfort, rain
// chance, and wind.
func (e *Engine) activityScore(comfortScore, precipAvg, windAvg float64) float64 {
	windFactor := 100.0
	if windAvg > 8 {
		windFactor = clampPercent(100 - (windAvg-8)*8)
	}
	return clampPercent(0.5*comfortScore + 0.3*(100-clampPercent(precipAvg)) + 0.2*windFactor)
}

// dayPatternFlags marks which pattern thresholds this single day crosses.
// Multi-day risk scoring happens in the trend analyzer; these flags feed the
// per-day presentation.
func (e *Engine) dayPatternFlags(d *models.DailySummary) []string {
	var flags []string
	if exceedsTier(e.cfg.HeatWave, d, 0) {
		flags = append(flags, "hot")
	}
	if exceedsTier(e.cfg.ColdSnap, d, 0) {
		flags = append(flags, "freezing")
	}
	if exceedsTier(e.cfg.Drought, d, 0) {
		flags = append(flags, "dry")
	}
	if exceedsTier(e.cfg.Storm, d, 0) {
		flags = append(flags, "stormy")
	}
	return flags
}

// dominantValue returns the most frequent value, its share of the input, and
// the number of distinct values. Ties break by first occurrence in the input
// sequence; this is a deliberate policy so aggregation is deterministic
// regardless of map iteration order.
func dominantValue(values []string) (dominant string, share float64, distinct int) {
	if len(values) == 0 {
		return "", 0, 0
	}

	counts := make(map[string]int, len(values))
	var best string
	bestCount := 0
	for _, v := range values {
		counts[v]++
		// Strictly-greater keeps the first-seen value on ties.
		if counts[v] > bestCount {
			best = v
			bestCount = counts[v]
		}
	}
	return best, clamp01(float64(bestCount) / float64(len(values))), len(counts)
}

// slopeLabel maps a regression slope to a qualitative label using a symmetric
// dead band around zero.
func slopeLabel(slope, steadyBand float64, up, down, steady string) string {
	switch {
	case slope > steadyBand:
		return up
	case slope < -steadyBand:
		return down
	default:
		return steady
	}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
