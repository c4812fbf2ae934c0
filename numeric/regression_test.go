package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinRegressPerfectFit(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{3, 5, 7, 9, 11}
	fit := LinRegress(x, y)

	assert.Equal(t, 5, fit.Count)
	assert.InDelta(t, 2, fit.Slope, 1e-9)
	assert.InDelta(t, 1, fit.Intercept, 1e-9)
	assert.InDelta(t, 1, fit.RSquared, 1e-9)
	assert.InDelta(t, 0, fit.StdErr, 1e-9)
	assert.InDelta(t, 0, fit.PValue, 1e-9)
}

func TestLinRegressKnownValues(t *testing.T) {
	fit := LinRegress([]float64{1, 2, 3, 4, 5}, []float64{2, 4, 5, 4, 5})

	assert.InDelta(t, 0.6, fit.Slope, 1e-9)
	assert.InDelta(t, 2.2, fit.Intercept, 1e-9)
	assert.InDelta(t, 0.6, fit.RSquared, 1e-9)
	assert.InDelta(t, 0.2828, fit.StdErr, 0.001)
	assert.InDelta(t, 0.124, fit.PValue, 0.002)
}

func TestLinRegressConstantPredictor(t *testing.T) {
	fit := LinRegress([]float64{2, 2, 2, 2}, []float64{1, 2, 3, 4})
	assert.True(t, math.IsNaN(fit.StdErr))
	assert.True(t, math.IsNaN(fit.PValue))
}

func TestLinRegressTooShort(t *testing.T) {
	fit := LinRegress([]float64{1, 2}, []float64{1, 2})
	assert.True(t, math.IsNaN(fit.Slope))
}
