package analytics

import (
	"sort"

	"github.com/skycasthq/skycast/internal/models"
)

const (
	maxRecommendations = 4
	maxAlerts          = 5
)

// Recommend produces ranked advisory strings for the current conditions and
// forecast window. Checks fire independently in fixed source order —
// temperature, humidity, wind, pressure, condition, forecast trend, comfort —
// so truncation keeps the most specific advice first.
func (e *Engine) Recommend(current models.Sample, daily []models.DailySummary) []string {
	temp := sanitizeTemp(current.Temperature)
	humidity := sanitizeHumidity(current.Humidity)
	wind := sanitizeWind(current.WindSpeed)
	cond := normalizeCondition(current.Condition)

	var recs []string
	add := func(msg string) {
		recs = append(recs, msg)
	}

	switch {
	case temp < 0:
		add("Bundle up! It's freezing outside. Wear layers and protect exposed skin.")
	case temp < 10:
		add("It's quite cold. A warm jacket and scarf are recommended.")
	case temp > 30:
		add("It's hot outside! Stay hydrated and wear light, breathable clothing.")
	case temp > 25:
		add("Warm and pleasant. Light clothing recommended for outdoor plans.")
	}

	switch {
	case humidity > 80:
		add("High humidity today. Expect a sticky feel - seek air-conditioned spaces when possible.")
	case humidity < 30:
		add("Low humidity - remember to moisturize and stay hydrated.")
	}

	if wind > 10 {
		add("It's quite windy. Secure loose items and be careful with umbrellas.")
	}

	if current.Pressure > 0 && current.Pressure < 1000 {
		add("Low pressure system in the area - weather may change quickly.")
	}

	switch {
	case containsAny(cond, "rain", "drizzle"):
		add("Rain expected! Don't forget your umbrella or raincoat.")
	case containsAny(cond, "snow"):
		add("Snow conditions - drive carefully and wear appropriate footwear.")
	case containsAny(cond, "clear") && temp > 20:
		add("Beautiful clear weather! Great day for outdoor activities.")
	case containsAny(cond, "cloud"):
		add("Cloudy skies - pleasant conditions with little sun exposure.")
	}

	if len(daily) > 0 {
		switch e.TrendForSeries("temperature_max", metricSeries("temperature_max", daily)).Direction {
		case models.TrendDecreasing:
			add("Temperature dropping over the next few days - prepare warmer clothes.")
		case models.TrendIncreasing:
			add("Getting warmer! You might want lighter clothing for the coming days.")
		}
	}

	if comfort := e.ComfortIndex(temp, humidity, wind); comfort.Score < 30 {
		add("Uncomfortable conditions overall - consider indoor plans today.")
	}

	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}

// Alerts evaluates threshold checks against the current sample and the
// forecast window's pattern risks, returning at most five alerts sorted by
// severity, most severe first. Alerts are recomputed fresh on every call.
func (e *Engine) Alerts(current models.Sample, daily []models.DailySummary) []models.Alert {
	temp := sanitizeTemp(current.Temperature)
	wind := sanitizeWind(current.WindSpeed)
	cond := normalizeCondition(current.Condition)

	var alerts []models.Alert

	switch {
	case temp < -20:
		alerts = append(alerts, models.Alert{
			Severity: models.SeverityExtreme,
			Type:     models.AlertCritical,
			Title:    "Extreme Cold Emergency",
			Message:  "Dangerously cold temperatures. Frostbite can occur within minutes.",
			Action:   "Stay indoors; cover all exposed skin if you must go out",
		})
	case temp < -10:
		alerts = append(alerts, models.Alert{
			Severity: models.SeverityHigh,
			Type:     models.AlertWarning,
			Title:    "Extreme Cold Warning",
			Message:  "Extremely cold temperatures. Frostbite risk is high.",
			Action:   "Limit time outside and dress in layers",
		})
	case temp > 40:
		alerts = append(alerts, models.Alert{
			Severity: models.SeverityExtreme,
			Type:     models.AlertCritical,
			Title:    "Extreme Heat Emergency",
			Message:  "Dangerous heat. Heat stroke risk is severe.",
			Action:   "Avoid outdoor activity; check on vulnerable people",
		})
	case temp > 35:
		alerts = append(alerts, models.Alert{
			Severity: models.SeverityHigh,
			Type:     models.AlertWarning,
			Title:    "Heat Warning",
			Message:  "Very hot temperatures. Heat exhaustion risk is elevated.",
			Action:   "Stay hydrated and take breaks in the shade",
		})
	}

	switch {
	case wind > 22:
		alerts = append(alerts, models.Alert{
			Severity: models.SeverityHigh,
			Type:     models.AlertWarning,
			Title:    "Damaging Wind Warning",
			Message:  "Destructive winds expected. Travel may be hazardous.",
			Action:   "Avoid unnecessary travel and stay clear of trees",
		})
	case wind > 15:
		alerts = append(alerts, models.Alert{
			Severity: models.SeverityMedium,
			Type:     models.AlertCaution,
			Title:    "High Wind Advisory",
			Message:  "Strong winds expected. Secure loose objects.",
			Action:   "Secure outdoor furniture and loose items",
		})
	}

	switch {
	case containsAny(cond, "thunderstorm", "thunder"):
		alerts = append(alerts, models.Alert{
			Severity: models.SeverityHigh,
			Type:     models.AlertWarning,
			Title:    "Thunderstorm Alert",
			Message:  "Thunderstorms in the area. Stay indoors if possible.",
			Action:   "Unplug sensitive electronics; avoid open ground",
		})
	case containsAny(cond, "snow"):
		alerts = append(alerts, models.Alert{
			Severity: models.SeverityLow,
			Type:     models.AlertInfo,
			Title:    "Snow Conditions",
			Message:  "Snowy weather. Drive carefully and dress warmly.",
			Action:   "Allow extra travel time",
		})
	}

	for _, risk := range e.DetectPatterns(daily) {
		if risk.Risk < 0.7 {
			continue
		}
		alerts = append(alerts, patternAlert(risk))
	}

	// Stable sort keeps generation order within a severity rank, so the
	// more specific current-condition alerts outrank pattern forecasts.
	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].Severity.Rank() > alerts[j].Severity.Rank()
	})
	if len(alerts) > maxAlerts {
		alerts = alerts[:maxAlerts]
	}
	return alerts
}

// patternAlert converts a high pattern risk into a forecast alert record.
func patternAlert(risk models.PatternRisk) models.Alert {
	severity := models.SeverityMedium
	if risk.Risk >= 0.9 {
		severity = models.SeverityHigh
	}

	switch risk.Pattern {
	case models.PatternHeatWave:
		return models.Alert{
			Severity: severity,
			Type:     models.AlertWarning,
			Title:    "Heat Wave Developing",
			Message:  "Consecutive days of extreme heat are likely this week.",
			Action:   "Plan strenuous activity for early morning",
		}
	case models.PatternColdSnap:
		return models.Alert{
			Severity: severity,
			Type:     models.AlertWarning,
			Title:    "Cold Snap Expected",
			Message:  "A sustained period of freezing temperatures is likely.",
			Action:   "Protect pipes and outdoor plants",
		}
	case models.PatternDrought:
		return models.Alert{
			Severity: models.SeverityLow,
			Type:     models.AlertInfo,
			Title:    "Extended Dry Spell",
			Message:  "Little to no rain is expected over the coming days.",
			Action:   "Conserve water where possible",
		}
	default:
		return models.Alert{
			Severity: severity,
			Type:     models.AlertWarning,
			Title:    "Storm System Approaching",
			Message:  "Sustained strong winds and storm conditions are likely.",
			Action:   "Secure property and monitor local advisories",
		}
	}
}
