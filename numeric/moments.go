// Package numeric holds the pure statistical routines the analysis layer
// delegates to. Every function takes one or more numeric sequences and
// returns a statistic and p-value (or a richer record for regression).
// No state, no I/O; inputs are assumed already cleaned.
package numeric

import (
	"math"

	"github.com/montanaflynn/stats"
)

// Skewness computes sample skewness using the adjusted Fisher-Pearson coefficient
func Skewness(data []float64) float64 {
	if len(data) < 3 {
		return 0
	}

	mean, err := stats.Mean(data)
	if err != nil {
		return 0
	}
	stdDev, err := stats.StandardDeviation(data)
	if err != nil || stdDev == 0 {
		return 0
	}

	n := float64(len(data))
	sumCubed := 0.0
	for _, x := range data {
		d := (x - mean) / stdDev
		sumCubed += d * d * d
	}
	skewness := sumCubed / n

	// Bias correction for sample skewness
	correction := math.Sqrt(n*(n-1)) / (n - 2)
	return skewness * correction
}

// Kurtosis computes sample kurtosis. The returned value is total kurtosis
// (3.0 for a normal distribution), not excess.
func Kurtosis(data []float64) float64 {
	if len(data) < 4 {
		return 3
	}

	mean, err := stats.Mean(data)
	if err != nil {
		return 3
	}
	stdDev, err := stats.StandardDeviation(data)
	if err != nil || stdDev == 0 {
		return 3
	}

	n := float64(len(data))
	sumFourth := 0.0
	for _, x := range data {
		d := (x - mean) / stdDev
		sumFourth += d * d * d * d
	}
	kurtosis := sumFourth / n

	excess := kurtosis - 3
	if n > 3 {
		correction := (n - 1) / ((n - 2) * (n - 3))
		excess = excess*correction + 6/(n+1)
	}
	return excess + 3
}

// StdErr computes the standard error of the mean with the given delta
// degrees of freedom (1 for sample, 0 for population).
func StdErr(data []float64, ddof int) float64 {
	n := len(data)
	if n <= ddof {
		return math.NaN()
	}

	mean, err := stats.Mean(data)
	if err != nil {
		return math.NaN()
	}
	sumSq := 0.0
	for _, x := range data {
		d := x - mean
		sumSq += d * d
	}
	sd := math.Sqrt(sumSq / float64(n-ddof))
	return sd / math.Sqrt(float64(n))
}

func sampleVariance(data []float64) float64 {
	n := len(data)
	if n < 2 {
		return 0
	}
	mean, err := stats.Mean(data)
	if err != nil {
		return 0
	}
	sumSq := 0.0
	for _, x := range data {
		d := x - mean
		sumSq += d * d
	}
	return sumSq / float64(n-1)
}
