package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTTestOneSampleMatchedMean(t *testing.T) {
	stat, p := TTestOneSample([]float64{1, 2, 3, 4, 5}, 3)
	assert.InDelta(t, 0, stat, 1e-12)
	assert.InDelta(t, 1, p, 1e-12)
}

func TestTTestOneSampleShiftedMean(t *testing.T) {
	stat, p := TTestOneSample([]float64{1, 2, 3, 4, 5}, 0)
	assert.InDelta(t, 4.2426, stat, 0.001)
	assert.Less(t, p, 0.05)
}

func TestTTestOneSampleConstant(t *testing.T) {
	stat, _ := TTestOneSample([]float64{2, 2, 2}, 1)
	assert.True(t, math.IsNaN(stat))
}

func TestTTestPooled(t *testing.T) {
	stat, p := TTestPooled([]float64{1, 2, 3, 4, 5}, []float64{2, 3, 4, 5, 6})
	assert.InDelta(t, -1, stat, 1e-12)
	assert.InDelta(t, 0.3466, p, 0.001)
}

func TestTTestWelchMatchesPooledOnEqualVariances(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{2, 3, 4, 5, 6}
	statP, pP := TTestPooled(x, y)
	statW, pW := TTestWelch(x, y)
	assert.InDelta(t, statP, statW, 1e-12)
	assert.InDelta(t, pP, pW, 1e-9)
}

func TestTTestWelchUnequalVariances(t *testing.T) {
	stat, p := TTestWelch([]float64{1, 2, 3, 4, 5}, []float64{1, 2, 3, 4, 5, 100})
	assert.Less(t, stat, 0.0)
	assert.Greater(t, p, 0.0)
	assert.LessOrEqual(t, p, 1.0)
}

func TestTTestTooShort(t *testing.T) {
	stat, _ := TTestPooled([]float64{1}, []float64{2, 3})
	assert.True(t, math.IsNaN(stat))
}
