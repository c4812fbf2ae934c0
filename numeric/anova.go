package numeric

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// OneWayANOVA tests whether the means of two or more groups are equal.
// Returns the F statistic and its p-value from the F distribution.
func OneWayANOVA(groups ...[]float64) (f, p float64) {
	k := len(groups)
	if k < 2 {
		return math.NaN(), math.NaN()
	}

	var total float64
	var n int
	for _, g := range groups {
		if len(g) < 2 {
			return math.NaN(), math.NaN()
		}
		for _, v := range g {
			total += v
		}
		n += len(g)
	}
	grandMean := total / float64(n)

	var ssBetween, ssWithin float64
	for _, g := range groups {
		groupMean := stat.Mean(g, nil)
		d := groupMean - grandMean
		ssBetween += float64(len(g)) * d * d
		for _, v := range g {
			dv := v - groupMean
			ssWithin += dv * dv
		}
	}

	dfBetween := float64(k - 1)
	dfWithin := float64(n - k)
	if ssWithin == 0 || dfWithin <= 0 {
		return math.NaN(), math.NaN()
	}

	f = (ssBetween / dfBetween) / (ssWithin / dfWithin)
	fDist := distuv.F{D1: dfBetween, D2: dfWithin}
	return f, 1 - fDist.CDF(f)
}

// KruskalWallis is the rank-based non-parametric analogue of OneWayANOVA.
// Ties receive average ranks and the H statistic carries the usual tie
// correction; the p-value uses the chi-square approximation.
func KruskalWallis(groups ...[]float64) (h, p float64) {
	k := len(groups)
	if k < 2 {
		return math.NaN(), math.NaN()
	}

	var pooled []float64
	for _, g := range groups {
		if len(g) == 0 {
			return math.NaN(), math.NaN()
		}
		pooled = append(pooled, g...)
	}
	n := len(pooled)
	pooledRanks := ranks(pooled)

	// Rank sums per group, reading pooled ranks back in group order
	h = 0
	offset := 0
	for _, g := range groups {
		var rankSum float64
		for i := range g {
			rankSum += pooledRanks[offset+i]
		}
		offset += len(g)
		h += rankSum * rankSum / float64(len(g))
	}
	nf := float64(n)
	h = 12/(nf*(nf+1))*h - 3*(nf+1)

	// Tie correction
	tieSum := 0.0
	counts := make(map[float64]int)
	for _, v := range pooled {
		counts[v]++
	}
	for _, c := range counts {
		if c > 1 {
			cf := float64(c)
			tieSum += cf*cf*cf - cf
		}
	}
	correction := 1 - tieSum/(nf*nf*nf-nf)
	if correction == 0 {
		return math.NaN(), math.NaN()
	}
	h /= correction

	chiDist := distuv.ChiSquared{K: float64(k - 1)}
	return h, 1 - chiDist.CDF(h)
}
