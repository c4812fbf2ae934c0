package numeric

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Bartlett tests two or more groups for equal variances. Sensitive to
// non-normal data; callers should prefer Levene in that case.
func Bartlett(groups ...[]float64) (statistic, p float64) {
	k := len(groups)
	if k < 2 {
		return math.NaN(), math.NaN()
	}

	var n int
	variances := make([]float64, k)
	for i, g := range groups {
		if len(g) < 2 {
			return math.NaN(), math.NaN()
		}
		variances[i] = sampleVariance(g)
		if variances[i] == 0 {
			return math.NaN(), math.NaN()
		}
		n += len(g)
	}

	dfTotal := float64(n - k)
	var pooled, logSum, invSum float64
	for i, g := range groups {
		df := float64(len(g) - 1)
		pooled += df * variances[i]
		logSum += df * math.Log(variances[i])
		invSum += 1 / df
	}
	pooled /= dfTotal

	statistic = dfTotal*math.Log(pooled) - logSum
	correction := 1 + (invSum-1/dfTotal)/(3*float64(k-1))
	statistic /= correction

	chiDist := distuv.ChiSquared{K: float64(k - 1)}
	return statistic, 1 - chiDist.CDF(statistic)
}

// Levene tests two or more groups for equal variances using absolute
// deviations from the group means, which keeps the test usable on
// non-normal data. The p-value uses the chi-square approximation of the
// test statistic.
func Levene(groups ...[]float64) (statistic, p float64) {
	k := len(groups)
	if k < 2 {
		return math.NaN(), math.NaN()
	}

	// Absolute deviations from each group's mean
	z := make([][]float64, k)
	var n int
	for i, g := range groups {
		if len(g) < 2 {
			return math.NaN(), math.NaN()
		}
		center := stat.Mean(g, nil)
		z[i] = make([]float64, len(g))
		for j, v := range g {
			z[i][j] = math.Abs(v - center)
		}
		n += len(g)
	}

	var grand float64
	zMeans := make([]float64, k)
	for i := range z {
		zMeans[i] = stat.Mean(z[i], nil)
		grand += zMeans[i] * float64(len(z[i]))
	}
	grand /= float64(n)

	var ssBetween, ssWithin float64
	for i := range z {
		d := zMeans[i] - grand
		ssBetween += float64(len(z[i])) * d * d
		for _, v := range z[i] {
			dv := v - zMeans[i]
			ssWithin += dv * dv
		}
	}
	if ssWithin == 0 {
		return math.NaN(), math.NaN()
	}

	statistic = (float64(n-k) / float64(k-1)) * (ssBetween / ssWithin)
	chiDist := distuv.ChiSquared{K: float64(k - 1)}
	return statistic, 1 - chiDist.CDF(statistic)
}
