package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func grid(n int) []float64 {
	data := make([]float64, n)
	for i := range data {
		data[i] = float64(i + 1)
	}
	return data
}

func TestKolmogorovSmirnovUniformFit(t *testing.T) {
	d, p := KolmogorovSmirnov(grid(100), DistUniform, nil)
	assert.InDelta(t, 0.01, d, 1e-9)
	assert.Greater(t, p, 0.9)
}

func TestKolmogorovSmirnovExponentialMismatch(t *testing.T) {
	d, p := KolmogorovSmirnov(grid(100), DistExponential, nil)
	assert.Greater(t, d, 0.1)
	assert.Less(t, p, 0.05)
}

func TestKolmogorovSmirnovNormalFit(t *testing.T) {
	d, p := KolmogorovSmirnov(grid(100), DistNormal, nil)
	assert.Greater(t, d, 0.0)
	assert.Less(t, d, 0.2)
	assert.Greater(t, p, 0.5)
}

func TestKolmogorovSmirnovSuppliedParams(t *testing.T) {
	// reference far from the data must be rejected
	_, p := KolmogorovSmirnov(grid(50), DistNormal, []float64{1000, 1})
	assert.Less(t, p, 0.01)
}

func TestKolmogorovSmirnovTooShort(t *testing.T) {
	d, _ := KolmogorovSmirnov([]float64{1}, DistNormal, nil)
	assert.True(t, math.IsNaN(d))
}
