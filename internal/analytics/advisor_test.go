package analytics

import (
	"strings"
	"testing"

	"github.com/skycasthq/skycast/internal/models"
)

func TestRecommendMildConditions(t *testing.T) {
	e := New(DefaultConfig())
	current := models.Sample{Temperature: 22, Humidity: 50, WindSpeed: 2, Pressure: 1013, Condition: "Clear"}
	recs := e.Recommend(current, nil)
	// 22 °C clear triggers only the clear-weather suggestion.
	if len(recs) != 1 {
		t.Fatalf("got %d recommendations, want 1: %v", len(recs), recs)
	}
	if !strings.Contains(recs[0], "clear weather") {
		t.Errorf("unexpected recommendation %q", recs[0])
	}
}

func TestRecommendCapAndOrder(t *testing.T) {
	e := New(DefaultConfig())
	// Freezing, humid, windy, low pressure, snowing: more checks fire than
	// the cap allows.
	current := models.Sample{Temperature: -5, Humidity: 90, WindSpeed: 12, Pressure: 990, Condition: "Snow"}
	recs := e.Recommend(current, nil)
	if len(recs) != maxRecommendations {
		t.Fatalf("got %d recommendations, want cap of %d", len(recs), maxRecommendations)
	}
	// Source-check order: temperature advice first.
	if !strings.Contains(recs[0], "freezing") {
		t.Errorf("first recommendation = %q, want the temperature advisory", recs[0])
	}
}

func TestRecommendForecastTrend(t *testing.T) {
	e := New(DefaultConfig())
	current := models.Sample{Temperature: 15, Humidity: 50, WindSpeed: 2, Pressure: 1013, Condition: "Clouds"}

	cooling := e.Recommend(current, dailyWithTemps([]float64{28, 26, 24, 22, 20}))
	found := false
	for _, r := range cooling {
		if strings.Contains(r, "dropping") {
			found = true
		}
	}
	if !found {
		t.Errorf("cooling forecast should add a trend recommendation, got %v", cooling)
	}
}

func TestAlertsEmptyForPleasantDay(t *testing.T) {
	e := New(DefaultConfig())
	current := models.Sample{Temperature: 25, Humidity: 50, WindSpeed: 2, Pressure: 1013, Condition: "Clear"}
	if alerts := e.Alerts(current, nil); len(alerts) != 0 {
		t.Errorf("pleasant day produced alerts: %v", alerts)
	}
}

func TestAlertsSeverityOrdering(t *testing.T) {
	e := New(DefaultConfig())
	// Snow (low) plus extreme cold (extreme) plus damaging wind (high).
	current := models.Sample{Temperature: -25, Humidity: 70, WindSpeed: 25, Pressure: 1000, Condition: "Snow"}
	alerts := e.Alerts(current, nil)
	if len(alerts) < 3 {
		t.Fatalf("got %d alerts, want at least 3", len(alerts))
	}
	for i := 1; i < len(alerts); i++ {
		if alerts[i-1].Severity.Rank() < alerts[i].Severity.Rank() {
			t.Errorf("alerts out of order at %d: %s before %s", i, alerts[i-1].Severity, alerts[i].Severity)
		}
	}
	if alerts[0].Severity != models.SeverityExtreme {
		t.Errorf("first alert severity = %s, want extreme", alerts[0].Severity)
	}
}

func TestAlertsCap(t *testing.T) {
	e := New(DefaultConfig())
	// Stack current-condition alerts with pattern alerts from a hot, windy,
	// bone-dry forecast window.
	current := models.Sample{Temperature: 42, Humidity: 20, WindSpeed: 25, Pressure: 990, Condition: "Thunderstorm"}
	daily := dailyWithTemps([]float64{41, 42, 43, 44, 45})
	for i := range daily {
		daily[i].PrecipProbMax = 5
		daily[i].WindMax = 20
	}
	alerts := e.Alerts(current, daily)
	if len(alerts) > maxAlerts {
		t.Errorf("got %d alerts, want at most %d", len(alerts), maxAlerts)
	}
	if len(alerts) != maxAlerts {
		t.Errorf("expected the cap of %d alerts to be hit, got %d", maxAlerts, len(alerts))
	}
}

func TestAlertsHeatWarningThreshold(t *testing.T) {
	e := New(DefaultConfig())
	hot := models.Sample{Temperature: 36, Humidity: 40, WindSpeed: 2, Condition: "Clear"}
	alerts := e.Alerts(hot, nil)
	if len(alerts) != 1 {
		t.Fatalf("got %d alerts, want 1", len(alerts))
	}
	if alerts[0].Title != "Heat Warning" {
		t.Errorf("alert title = %q, want Heat Warning", alerts[0].Title)
	}
	if alerts[0].Type != models.AlertWarning {
		t.Errorf("alert type = %q, want warning", alerts[0].Type)
	}
}

func TestPatternAlertsFromForecast(t *testing.T) {
	e := New(DefaultConfig())
	mild := models.Sample{Temperature: 28, Humidity: 45, WindSpeed: 2, Condition: "Clear"}
	daily := dailyWithTemps([]float64{36, 37, 38, 39, 40})
	alerts := e.Alerts(mild, daily)

	found := false
	for _, a := range alerts {
		if a.Title == "Heat Wave Developing" {
			found = true
		}
	}
	if !found {
		t.Errorf("sustained heat forecast should raise a heat wave alert, got %v", alerts)
	}
}

func TestSeverityRank(t *testing.T) {
	ranks := []models.AlertSeverity{models.SeverityLow, models.SeverityMedium, models.SeverityHigh, models.SeverityExtreme}
	for i := 1; i < len(ranks); i++ {
		if ranks[i].Rank() <= ranks[i-1].Rank() {
			t.Errorf("%s rank %d not above %s rank %d", ranks[i], ranks[i].Rank(), ranks[i-1], ranks[i-1].Rank())
		}
	}
	if models.AlertSeverity("bogus").Rank() != 0 {
		t.Error("unknown severity should rank 0")
	}
}
