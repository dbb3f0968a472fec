package analytics

import (
	"math"

	mstats "github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Summary holds descriptive statistics for one numeric channel.
type Summary struct {
	Min      float64
	Max      float64
	Mean     float64
	Median   float64
	Variance float64
	StdDev   float64
	Range    float64
}

// Describe computes descriptive statistics over values. An empty slice yields
// the zero Summary; a single value yields zero variance and std deviation,
// treating the lone observation as perfectly stable.
func Describe(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}

	s := Summary{Min: values[0], Max: values[0]}
	for _, v := range values[1:] {
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
	}
	s.Range = s.Max - s.Min
	s.Mean = stat.Mean(values, nil)

	// montanaflynn rejects empty input only, which is already handled above.
	if med, err := mstats.Median(values); err == nil {
		s.Median = med
	} else {
		s.Median = s.Mean
	}

	if len(values) >= 2 {
		s.Variance = stat.Variance(values, nil)
		s.StdDev = math.Sqrt(s.Variance)
	}

	return s
}

// Stability scores how steady a channel is via the coefficient of variation:
// max(0, 1 - std/mean). A zero mean with zero spread is perfectly stable;
// a zero mean with spread is treated as fully unstable since the ratio is
// undefined. Fewer than two observations score 1.0.
func Stability(values []float64) float64 {
	if len(values) < 2 {
		return 1.0
	}
	s := Describe(values)
	if s.Mean == 0 {
		if s.StdDev == 0 {
			return 1.0
		}
		return 0.0
	}
	return clamp01(1.0 - s.StdDev/math.Abs(s.Mean))
}

// CircularMean computes the mean direction and consistency of angular data
// in degrees. The returned mean is normalized to [0,360). Consistency is the
// resultant length R in [0,1]: 1.0 when every angle is identical, approaching
// 0 as directions scatter uniformly.
func CircularMean(degrees []float64) (mean, consistency float64) {
	if len(degrees) == 0 {
		return 0, 0
	}

	var sumSin, sumCos float64
	for _, d := range degrees {
		rad := d * math.Pi / 180
		sumSin += math.Sin(rad)
		sumCos += math.Cos(rad)
	}
	n := float64(len(degrees))
	meanSin := sumSin / n
	meanCos := sumCos / n

	mean = math.Atan2(meanSin, meanCos) * 180 / math.Pi
	if mean < 0 {
		mean += 360
	}
	// Guard against 360.0 from float rounding of small negative angles.
	if mean >= 360 {
		mean -= 360
	}

	consistency = math.Sqrt(meanSin*meanSin + meanCos*meanCos)
	return mean, clamp01(consistency)
}

// Regression holds an ordinary least squares fit of a series against its
// index positions 0..n-1.
type Regression struct {
	Slope     float64
	Intercept float64
	R         float64 // Pearson correlation between index and value
	RSquared  float64
	PValue    float64 // two-sided significance of the slope
	N         int
}

// FitSeries runs OLS over values with index positions as the independent
// variable. Fewer than two points, or a series with no variance, yields a
// flat fit with zero correlation and p-value 1.
func FitSeries(values []float64) Regression {
	n := len(values)
	reg := Regression{N: n, PValue: 1}
	if n < 2 {
		if n == 1 {
			reg.Intercept = values[0]
		}
		return reg
	}

	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i)
	}

	alpha, beta := stat.LinearRegression(xs, values, nil, false)
	reg.Intercept = alpha
	reg.Slope = beta

	r := stat.Correlation(xs, values, nil)
	if math.IsNaN(r) {
		// Constant series: no variance, no trend.
		reg.Slope = 0
		return reg
	}
	reg.R = r
	reg.RSquared = r * r
	reg.PValue = slopePValue(r, n)
	return reg
}

// slopePValue computes the two-sided p-value of the regression slope from
// the correlation coefficient using a Student's t test with n-2 degrees of
// freedom.
func slopePValue(r float64, n int) float64 {
	if n < 3 {
		return 1
	}
	if math.Abs(r) >= 1 {
		return 0
	}
	t := r * math.Sqrt(float64(n-2)/(1-r*r))
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n - 2)}
	p := 2 * (1 - dist.CDF(math.Abs(t)))
	return clampRange(p, 0, 1)
}

// clamp01 clamps v to [0,1].
func clamp01(v float64) float64 {
	return clampRange(v, 0, 1)
}

// clampPercent clamps v to [0,100].
func clampPercent(v float64) float64 {
	return clampRange(v, 0, 100)
}

func clampRange(v, lo, hi float64) float64 {
	switch {
	case math.IsNaN(v):
		return lo
	case v < lo:
		return lo
	case v > hi:
		return hi
	}
	return v
}
