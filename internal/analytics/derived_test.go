package analytics

import (
	"math"
	"testing"
	"time"
)

func TestHeatIndexBelowThresholdIsIdentity(t *testing.T) {
	for _, temp := range []float64{-30, 0, 10, 19.9} {
		if got := HeatIndex(temp, 80); got != temp {
			t.Errorf("HeatIndex(%v, 80) = %v, want input temperature", temp, got)
		}
	}
}

func TestHeatIndexWarmHumid(t *testing.T) {
	// Hot and humid must feel hotter than the measured temperature.
	got := HeatIndex(32, 85)
	if got <= 32 {
		t.Errorf("HeatIndex(32, 85) = %v, want above 32", got)
	}
	// Drier air feels cooler than humid air at the same temperature.
	dry := HeatIndex(32, 30)
	if dry >= got {
		t.Errorf("dry heat index %v should be below humid %v", dry, got)
	}
	if math.IsNaN(got) || math.IsNaN(dry) {
		t.Error("heat index produced NaN for plausible input")
	}
}

func TestWindChillGates(t *testing.T) {
	if got := WindChill(15, 10); got != 15 {
		t.Errorf("warm air: WindChill = %v, want identity", got)
	}
	if got := WindChill(5, 1.0); got != 5 {
		t.Errorf("calm air: WindChill = %v, want identity", got)
	}
	if got := WindChill(5, 1.34); got != 5 {
		t.Errorf("threshold wind: WindChill = %v, want identity", got)
	}
}

func TestWindChillColdWindy(t *testing.T) {
	got := WindChill(-5, 8)
	if got >= -5 {
		t.Errorf("WindChill(-5, 8) = %v, want below air temperature", got)
	}
	// Stronger wind chills further.
	stronger := WindChill(-5, 15)
	if stronger >= got {
		t.Errorf("WindChill at 15 m/s (%v) should be below 8 m/s (%v)", stronger, got)
	}
}

func TestDewPointSaturation(t *testing.T) {
	// At 100% humidity the dew point equals the air temperature.
	got := DewPoint(20, 100)
	if math.Abs(got-20) > 0.1 {
		t.Errorf("DewPoint(20, 100) = %v, want ~20", got)
	}
	// Dew point never exceeds air temperature.
	for _, rh := range []float64{10, 40, 70, 100} {
		if dp := DewPoint(25, rh); dp > 25+1e-9 {
			t.Errorf("DewPoint(25, %v) = %v, exceeds air temperature", rh, dp)
		}
	}
}

func TestDewPointNaNFree(t *testing.T) {
	for _, rh := range []float64{-10, 0, 0.0001, 100, 150} {
		if dp := DewPoint(15, rh); math.IsNaN(dp) || math.IsInf(dp, 0) {
			t.Errorf("DewPoint(15, %v) = %v, want finite", rh, dp)
		}
	}
}

func TestApparentTemperatureModerateBand(t *testing.T) {
	// 15 °C, 50% humidity: no adjustment beyond the humidity nudge, which
	// is zero at exactly 50%.
	if got := ApparentTemperature(15, 50, 3); got != 15 {
		t.Errorf("ApparentTemperature(15, 50, 3) = %v, want 15", got)
	}
	humid := ApparentTemperature(15, 90, 3)
	if humid <= 15 {
		t.Errorf("humid moderate air should feel warmer, got %v", humid)
	}
}

func TestComfortIndexIdealConditions(t *testing.T) {
	e := New(DefaultConfig())
	c := e.ComfortIndex(21, 50, 2)
	if c.Score != 100 {
		t.Errorf("ideal conditions score = %v, want 100", c.Score)
	}
	if c.Level != "Excellent" {
		t.Errorf("ideal conditions level = %q, want Excellent", c.Level)
	}
	if len(c.Factors) != 0 {
		t.Errorf("ideal conditions should have no penalty factors, got %v", c.Factors)
	}
}

func TestComfortIndexPleasantDay(t *testing.T) {
	// 25 °C, 50% humidity, light breeze: barely above the ideal band,
	// still comfortably in the top levels.
	e := New(DefaultConfig())
	c := e.ComfortIndex(25, 50, 2)
	if c.Score < 75 {
		t.Errorf("score = %v, want at least 75 (Good band)", c.Score)
	}
	if c.Level != "Excellent" && c.Level != "Good" {
		t.Errorf("level = %q, want Excellent or Good", c.Level)
	}
}

func TestComfortIndexColdPenalizedMoreThanWarm(t *testing.T) {
	e := New(DefaultConfig())
	cold := e.ComfortIndex(12, 50, 2) // 6 below the band
	warm := e.ComfortIndex(30, 50, 2) // 6 above the band
	if cold.Score >= warm.Score {
		t.Errorf("cold score %v should be below warm score %v", cold.Score, warm.Score)
	}
}

func TestComfortIndexClamped(t *testing.T) {
	e := New(DefaultConfig())
	c := e.ComfortIndex(-40, 100, 30)
	if c.Score < 0 || c.Score > 100 {
		t.Errorf("score %v outside [0,100]", c.Score)
	}
	if c.Score != 0 {
		t.Errorf("brutal conditions score = %v, want 0", c.Score)
	}
	if c.Level != "Extremely Poor" {
		t.Errorf("level = %q, want Extremely Poor", c.Level)
	}
}

func TestComfortLevelBreakpoints(t *testing.T) {
	checks := map[float64]string{
		100: "Excellent",
		90:  "Excellent",
		76:  "Good",
		60:  "Pleasant",
		45:  "Fair",
		30:  "Poor",
		15:  "Very Poor",
		0:   "Extremely Poor",
	}
	for score, want := range checks {
		if got := ComfortLevel(score); got != want {
			t.Errorf("ComfortLevel(%v) = %q, want %q", score, got, want)
		}
	}
}

func TestUVRiskNightIsZero(t *testing.T) {
	night := time.Date(2026, 7, 10, 2, 0, 0, 0, time.UTC)
	uv := UVRisk("Clear", 0, night)
	if uv.Index != 0 {
		t.Errorf("night UV index = %v, want 0", uv.Index)
	}
	if uv.Level != "Low" {
		t.Errorf("night UV level = %q, want Low", uv.Level)
	}
	if uv.BurnMinutes != 0 {
		t.Errorf("night burn minutes = %v, want 0", uv.BurnMinutes)
	}
}

func TestUVRiskMiddayClear(t *testing.T) {
	noon := time.Date(2026, 7, 10, 12, 0, 0, 0, time.UTC)
	uv := UVRisk("Clear", 0, noon)
	if uv.Index <= 8 {
		t.Errorf("clear midday UV = %v, want boosted above base 8", uv.Index)
	}
	if uv.Index > 12 {
		t.Errorf("UV index %v exceeds cap", uv.Index)
	}
	if uv.Level == "Low" || uv.Level == "Moderate" {
		t.Errorf("clear midday level = %q, want high-risk category", uv.Level)
	}
	if uv.BurnMinutes == 0 {
		t.Error("clear midday should report a burn time")
	}
}

func TestUVRiskReducedByRainAndCloud(t *testing.T) {
	noon := time.Date(2026, 7, 10, 12, 0, 0, 0, time.UTC)
	clear := UVRisk("Clear", 0, noon)
	rain := UVRisk("Rain", 90, noon)
	overcast := UVRisk("Clouds", 90, noon)
	if rain.Index >= clear.Index {
		t.Errorf("rain UV %v should be below clear %v", rain.Index, clear.Index)
	}
	if overcast.Index >= clear.Index {
		t.Errorf("overcast UV %v should be below clear %v", overcast.Index, clear.Index)
	}
	if rain.Index >= overcast.Index {
		t.Errorf("rain UV %v should be below overcast %v", rain.Index, overcast.Index)
	}
}

func TestCompassDirection(t *testing.T) {
	tests := []struct {
		degrees float64
		want    string
	}{
		{0, "N"},
		{45, "NE"},
		{90, "E"},
		{180, "S"},
		{270, "W"},
		{359, "N"},
		{-90, "W"},  // negative angles wrap
		{450, "E"},  // >360 wraps
		{11.24, "N"},
		{11.26, "NNE"},
	}
	for _, tt := range tests {
		if got := CompassDirection(tt.degrees); got != tt.want {
			t.Errorf("CompassDirection(%v) = %q, want %q", tt.degrees, got, tt.want)
		}
	}
}
