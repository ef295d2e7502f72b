// Package stats provides the shared statistical primitives behind the
// profiler and the cleaning pipeline. Every function is total: degenerate
// input (empty slices, too few points, zero variance) yields a defined
// neutral result instead of an error or a panic.
package stats

import (
	"math"

	mstats "github.com/montanaflynn/stats"
)

// Mean returns the arithmetic mean, or 0 for empty input
func Mean(data []float64) float64 {
	m, err := mstats.Mean(data)
	if err != nil {
		return 0
	}
	return m
}

// Median returns the middle value, or 0 for empty input
func Median(data []float64) float64 {
	m, err := mstats.Median(data)
	if err != nil {
		return 0
	}
	return m
}

// Mode returns the most frequent value. When several values tie, the
// smallest wins; 0 for empty input or when no value repeats.
func Mode(data []float64) float64 {
	modes, err := mstats.Mode(data)
	if err != nil || len(modes) == 0 {
		return 0
	}
	min := modes[0]
	for _, m := range modes[1:] {
		if m < min {
			min = m
		}
	}
	return min
}

// Variance returns the sample variance, or 0 for fewer than 2 points
func Variance(data []float64) float64 {
	if len(data) < 2 {
		return 0
	}
	v, err := mstats.SampleVariance(data)
	if err != nil {
		return 0
	}
	return v
}

// StdDev returns the sample standard deviation, or 0 for fewer than 2 points
func StdDev(data []float64) float64 {
	return math.Sqrt(Variance(data))
}

// MinMax returns the smallest and largest value, or {0, 0} for empty input
func MinMax(data []float64) (float64, float64) {
	if len(data) == 0 {
		return 0, 0
	}
	min, err := mstats.Min(data)
	if err != nil {
		return 0, 0
	}
	max, err := mstats.Max(data)
	if err != nil {
		return 0, 0
	}
	return min, max
}

// Skewness computes the adjusted Fisher-Pearson coefficient of skewness.
// Returns 0 for fewer than 3 points or zero spread.
func Skewness(data []float64) float64 {
	n := float64(len(data))
	if n < 3 {
		return 0
	}
	mean := Mean(data)
	sd := populationStdDev(data, mean)
	if sd == 0 {
		return 0
	}

	sumCubed := 0.0
	for _, x := range data {
		d := (x - mean) / sd
		sumCubed += d * d * d
	}
	g1 := sumCubed / n

	// Small-sample bias correction
	return g1 * math.Sqrt(n*(n-1)) / (n - 2)
}

// KurtosisExcess computes excess kurtosis with small-sample bias
// correction. Returns 0 for fewer than 4 points or zero variance.
func KurtosisExcess(data []float64) float64 {
	n := float64(len(data))
	if n < 4 {
		return 0
	}
	mean := Mean(data)
	sd := populationStdDev(data, mean)
	if sd == 0 {
		return 0
	}

	sumFourth := 0.0
	for _, x := range data {
		d := (x - mean) / sd
		sumFourth += d * d * d * d
	}
	g2 := sumFourth/n - 3

	// Bias-corrected excess kurtosis
	return ((n+1)*g2 + 6) * (n - 1) / ((n - 2) * (n - 3))
}

// Pearson computes the Pearson correlation coefficient over index-aligned
// pairs where both values are finite. Returns 0 when fewer than 2 such
// pairs remain or when either series has zero variance.
func Pearson(x, y []float64) float64 {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}
	fx := make([]float64, 0, n)
	fy := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		if isFinite(x[i]) && isFinite(y[i]) {
			fx = append(fx, x[i])
			fy = append(fy, y[i])
		}
	}
	if len(fx) < 2 {
		return 0
	}
	if Variance(fx) == 0 || Variance(fy) == 0 {
		return 0
	}
	r, err := mstats.Pearson(fx, fy)
	if err != nil || math.IsNaN(r) {
		return 0
	}
	return r
}

func populationStdDev(data []float64, mean float64) float64 {
	sum := 0.0
	for _, x := range data {
		d := x - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(data)))
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
