package analytics

import (
	"fmt"
	"math"
	"time"

	"github.com/skycasthq/skycast/internal/models"
)

// Physical plausibility bounds for inputs. Out-of-range values are clamped
// rather than rejected so one bad sample cannot abort an aggregation.
const (
	minPlausibleTemp = -90.0
	maxPlausibleTemp = 60.0
)

func sanitizeTemp(t float64) float64     { return clampRange(t, minPlausibleTemp, maxPlausibleTemp) }
func sanitizeHumidity(h float64) float64 { return clampPercent(h) }
func sanitizeWind(w float64) float64 {
	if math.IsNaN(w) || w < 0 {
		return 0
	}
	return w
}

// DewPoint computes the dew point in °C from temperature and relative
// humidity using the Magnus formula.
func DewPoint(tempC, humidity float64) float64 {
	tempC = sanitizeTemp(tempC)
	humidity = sanitizeHumidity(humidity)
	if humidity <= 0 {
		humidity = 0.1 // ln(0) guard; drier than 0.1% is not physical
	}

	const a, b = 17.27, 237.7
	alpha := (a*tempC)/(b+tempC) + math.Log(humidity/100)
	return b * alpha / (a - alpha)
}

// HeatIndex computes the feels-like temperature for warm, humid conditions
// using the Celsius (humidex-style) approximation over temperature and
// relative humidity. Below 20 °C the adjustment is not applied and the input
// temperature is returned unchanged.
func HeatIndex(tempC, humidity float64) float64 {
	tempC = sanitizeTemp(tempC)
	if tempC < 20 {
		return tempC
	}

	dew := DewPoint(tempC, humidity)
	// Vapour pressure at the dew point, hPa.
	e := 6.11 * math.Exp(5417.7530*((1/273.16)-(1/(dew+273.16))))
	return tempC + 0.5555*(e-10)
}

// WindChill computes the feels-like temperature for cold, windy conditions.
// It applies only when the temperature is at most 10 °C and wind exceeds
// 1.34 m/s; otherwise the input temperature is returned unchanged. Wind is
// converted to km/h for the standard formula.
func WindChill(tempC, windMS float64) float64 {
	tempC = sanitizeTemp(tempC)
	windMS = sanitizeWind(windMS)
	if tempC > 10 || windMS <= 1.34 {
		return tempC
	}

	kmh := windMS * 3.6
	v := math.Pow(kmh, 0.16)
	return 13.12 + 0.6215*tempC - 11.37*v + 0.3965*tempC*v
}

// ApparentTemperature blends the heat index, wind chill, and a linear
// humidity nudge into a single feels-like value covering the full range.
func ApparentTemperature(tempC, humidity, windMS float64) float64 {
	tempC = sanitizeTemp(tempC)
	humidity = sanitizeHumidity(humidity)
	windMS = sanitizeWind(windMS)

	switch {
	case tempC >= 20:
		return HeatIndex(tempC, humidity)
	case tempC <= 10 && windMS > 1:
		return WindChill(tempC, windMS)
	default:
		return tempC + (humidity-50)/100*2
	}
}

// ComfortIndex scores how pleasant conditions feel on a 0-100 scale,
// penalizing deviation from the ideal temperature, humidity, and wind bands.
// Cold deviations cost more per degree than warm ones.
func (e *Engine) ComfortIndex(tempC, humidity, windMS float64) models.ComfortIndex {
	tempC = sanitizeTemp(tempC)
	humidity = sanitizeHumidity(humidity)
	windMS = sanitizeWind(windMS)

	cfg := e.cfg
	score := 100.0
	var factors []string

	switch {
	case tempC < cfg.TempIdealLow:
		score -= (cfg.TempIdealLow - tempC) * cfg.ColdPenaltyRate
		factors = append(factors, fmt.Sprintf("%.0f°C below the ideal range", cfg.TempIdealLow-tempC))
	case tempC > cfg.TempIdealHigh:
		score -= (tempC - cfg.TempIdealHigh) * cfg.WarmPenaltyRate
		factors = append(factors, fmt.Sprintf("%.0f°C above the ideal range", tempC-cfg.TempIdealHigh))
	}

	switch {
	case humidity < cfg.HumidityIdealLow:
		score -= (cfg.HumidityIdealLow - humidity) * cfg.DryPenaltyRate
		factors = append(factors, "dry air")
	case humidity > cfg.HumidityIdealHigh:
		score -= (humidity - cfg.HumidityIdealHigh) * cfg.HumidPenaltyRate
		factors = append(factors, "humid air")
	}

	switch {
	case windMS > cfg.WindPenaltyAbove:
		score -= (windMS - cfg.WindPenaltyAbove) * cfg.WindPenaltyRate
		factors = append(factors, "strong wind")
	case windMS < cfg.StagnantWindBelow:
		score -= cfg.StagnantPenalty
		factors = append(factors, "stagnant air")
	}

	score = clampPercent(score)
	return models.ComfortIndex{
		Score:     score,
		Level:     ComfortLevel(score),
		Factors:   factors,
		HeatIndex: HeatIndex(tempC, humidity),
		WindChill: WindChill(tempC, windMS),
	}
}

// UVRisk estimates the UV index from time of day, condition, and cloud
// cover. This is an estimate for display, not a substitute for a measured
// UV feed: the index peaks mid-day, drops under rain and cloud, and gets a
// small boost under clear skies. Capped at 12.
func UVRisk(condition string, cloudCover float64, at time.Time) models.UVRisk {
	cloudCover = clampPercent(cloudCover)
	hour := at.Hour()

	var base float64
	switch {
	case hour >= 10 && hour <= 14:
		base = 8
	case hour >= 9 && hour <= 15:
		base = 6
	case hour >= 8 && hour <= 16:
		base = 4
	case hour >= 7 && hour <= 17:
		base = 2
	default:
		base = 0
	}

	cond := normalizeCondition(condition)
	switch {
	case containsAny(cond, "rain", "storm", "drizzle", "thunder"):
		base *= 0.3
	case cloudCover > 75:
		base *= 0.5
	case cloudCover > 50:
		base *= 0.7
	case cloudCover > 25:
		base *= 0.9
	case containsAny(cond, "clear"):
		base *= 1.15
	}
	if base > 12 {
		base = 12
	}

	risk := models.UVRisk{Index: math.Round(base*10) / 10}
	for _, lv := range uvLevels {
		if risk.Index <= lv.Max {
			risk.Level = lv.Level
			risk.Recommendation = lv.Recommendation
			break
		}
	}
	risk.BurnMinutes = burnMinutes(risk.Index)
	return risk
}

// burnMinutes estimates unprotected skin burn time for a fair skin type.
// Zero means no meaningful UV exposure.
func burnMinutes(uvIndex float64) int {
	if uvIndex < 1 {
		return 0
	}
	m := int(math.Round(200 / uvIndex))
	if m < 10 {
		m = 10
	}
	if m > 240 {
		m = 240
	}
	return m
}

// CompassDirection converts wind direction degrees to a 16-point compass
// label.
func CompassDirection(degrees float64) string {
	degrees = math.Mod(degrees, 360)
	if degrees < 0 {
		degrees += 360
	}
	idx := int(math.Round(degrees/22.5)) % 16
	return compassPoints[idx]
}
