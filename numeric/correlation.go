package numeric

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Pearson computes the Pearson product-moment correlation of x and y.
// The p-value comes from the t transform of r with n-2 degrees of freedom.
func Pearson(x, y []float64) (r, p float64) {
	if len(x) != len(y) || len(x) < 3 {
		return math.NaN(), math.NaN()
	}
	r = stat.Correlation(x, y, nil)
	return r, correlationPValue(r, len(x))
}

// Spearman computes the rank correlation of x and y, with ties assigned
// average ranks. The p-value uses the same t transform as Pearson.
func Spearman(x, y []float64) (rho, p float64) {
	if len(x) != len(y) || len(x) < 3 {
		return math.NaN(), math.NaN()
	}
	rho = stat.Correlation(ranks(x), ranks(y), nil)
	return rho, correlationPValue(rho, len(x))
}

func correlationPValue(r float64, n int) float64 {
	if math.IsNaN(r) || n < 3 {
		return math.NaN()
	}
	if math.Abs(r) >= 1 {
		return 0
	}
	df := float64(n - 2)
	t := r * math.Sqrt(df/(1-r*r))
	return twoTailedT(t, df)
}

// ranks converts values to 1-based ranks, averaging ranks across ties
func ranks(data []float64) []float64 {
	n := len(data)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return data[idx[a]] < data[idx[b]] })

	ranked := make([]float64, n)
	for i := 0; i < n; {
		j := i
		for j+1 < n && data[idx[j+1]] == data[idx[i]] {
			j++
		}
		avg := float64(i+j)/2 + 1
		for k := i; k <= j; k++ {
			ranked[idx[k]] = avg
		}
		i = j + 1
	}
	return ranked
}
