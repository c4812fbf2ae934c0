package numeric

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// TTestOneSample tests whether the mean of data differs from mu.
// Returns the t statistic and two-tailed p-value.
func TTestOneSample(data []float64, mu float64) (t, p float64) {
	n := len(data)
	if n < 2 {
		return math.NaN(), math.NaN()
	}

	mean := stat.Mean(data, nil)
	se := StdErr(data, 1)
	if se == 0 {
		return math.NaN(), math.NaN()
	}
	t = (mean - mu) / se
	return t, twoTailedT(t, float64(n-1))
}

// TTestPooled performs a two-sample t-test assuming equal variances
func TTestPooled(x, y []float64) (t, p float64) {
	n1, n2 := float64(len(x)), float64(len(y))
	if n1 < 2 || n2 < 2 {
		return math.NaN(), math.NaN()
	}

	mean1 := stat.Mean(x, nil)
	mean2 := stat.Mean(y, nil)
	var1 := sampleVariance(x)
	var2 := sampleVariance(y)

	pooled := ((n1-1)*var1 + (n2-1)*var2) / (n1 + n2 - 2)
	se := math.Sqrt(pooled * (1/n1 + 1/n2))
	if se == 0 {
		return math.NaN(), math.NaN()
	}
	t = (mean1 - mean2) / se
	return t, twoTailedT(t, n1+n2-2)
}

// TTestWelch performs a two-sample t-test without assuming equal variances,
// with degrees of freedom from the Welch-Satterthwaite equation.
func TTestWelch(x, y []float64) (t, p float64) {
	n1, n2 := float64(len(x)), float64(len(y))
	if n1 < 2 || n2 < 2 {
		return math.NaN(), math.NaN()
	}

	mean1 := stat.Mean(x, nil)
	mean2 := stat.Mean(y, nil)
	var1 := sampleVariance(x)
	var2 := sampleVariance(y)

	se := math.Sqrt(var1/n1 + var2/n2)
	if se == 0 {
		return math.NaN(), math.NaN()
	}
	t = (mean1 - mean2) / se

	df := math.Pow(var1/n1+var2/n2, 2) /
		(math.Pow(var1/n1, 2)/(n1-1) + math.Pow(var2/n2, 2)/(n2-1))
	return t, twoTailedT(t, df)
}

func twoTailedT(t, df float64) float64 {
	if df <= 0 {
		return 1
	}
	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	p := 2 * (1 - tDist.CDF(math.Abs(t)))
	return math.Min(1, math.Max(0, p))
}
