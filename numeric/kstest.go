package numeric

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Reference distributions accepted by KolmogorovSmirnov.
const (
	DistNormal      = "norm"
	DistUniform     = "uniform"
	DistExponential = "expon"
)

// KolmogorovSmirnov performs a one-sample KS test of data against a named
// reference distribution. When params is empty the reference parameters
// are fitted from the data (mean/std for normal, min/max for uniform,
// 1/mean rate for exponential); otherwise params supplies them directly.
func KolmogorovSmirnov(data []float64, distribution string, params []float64) (d, p float64) {
	n := len(data)
	if n < 2 {
		return math.NaN(), math.NaN()
	}

	sorted := make([]float64, n)
	copy(sorted, data)
	sort.Float64s(sorted)

	cdf := referenceCDF(sorted, distribution, params)

	// Two-sided empirical CDF distance
	var maxDiff float64
	for i, x := range sorted {
		theoretical := cdf(x)
		upper := float64(i+1)/float64(n) - theoretical
		lower := theoretical - float64(i)/float64(n)
		if upper > maxDiff {
			maxDiff = upper
		}
		if lower > maxDiff {
			maxDiff = lower
		}
	}

	return maxDiff, ksPValue(maxDiff, n)
}

func referenceCDF(sorted []float64, distribution string, params []float64) func(float64) float64 {
	switch distribution {
	case DistUniform:
		lo, hi := sorted[0], sorted[len(sorted)-1]
		if len(params) >= 2 {
			lo, hi = params[0], params[1]
		}
		span := hi - lo
		return func(x float64) float64 {
			if span == 0 {
				return 1
			}
			return math.Min(1, math.Max(0, (x-lo)/span))
		}
	case DistExponential:
		rate := 1.0 / stat.Mean(sorted, nil)
		if len(params) >= 1 && params[0] != 0 {
			rate = 1.0 / params[0]
		}
		dist := distuv.Exponential{Rate: rate}
		return dist.CDF
	default:
		// Normal reference
		mu := stat.Mean(sorted, nil)
		sigma := math.Sqrt(stat.Variance(sorted, nil))
		if len(params) >= 2 {
			mu, sigma = params[0], params[1]
		}
		if sigma == 0 {
			sigma = 1
		}
		dist := distuv.Normal{Mu: mu, Sigma: sigma}
		return dist.CDF
	}
}

// ksPValue approximates the p-value with the Kolmogorov asymptotic series,
// using the Stephens small-sample adjustment of the test statistic.
func ksPValue(dMax float64, n int) float64 {
	if dMax <= 0 {
		return 1
	}

	sqrtN := math.Sqrt(float64(n))
	z := dMax * (sqrtN + 0.12 + 0.11/sqrtN)

	sum := 0.0
	for j := 1; j <= 100; j++ {
		term := 2 * math.Exp(-2*float64(j*j)*z*z)
		if j%2 == 0 {
			term = -term
		}
		sum += term
		if math.Abs(term) < 1e-10 {
			break
		}
	}

	return math.Min(1, math.Max(0, sum))
}
