package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBartlettEqualVariances(t *testing.T) {
	stat, p := Bartlett([]float64{1, 2, 3, 4, 5}, []float64{2, 3, 4, 5, 6})
	assert.InDelta(t, 0, stat, 1e-9)
	assert.InDelta(t, 1, p, 1e-9)
}

func TestBartlettUnequalVariances(t *testing.T) {
	_, p := Bartlett([]float64{1, 2, 3, 4, 5}, []float64{10, 30, 50, 70, 90})
	assert.Less(t, p, 0.05)
}

func TestBartlettDegenerateGroup(t *testing.T) {
	stat, _ := Bartlett([]float64{1, 1, 1}, []float64{1, 2, 3})
	assert.True(t, math.IsNaN(stat))
}

func TestLeveneOutlierGroup(t *testing.T) {
	stat, p := Levene([]float64{1, 2, 3, 4, 5}, []float64{1, 2, 3, 4, 5, 100})
	assert.InDelta(t, 4.651, stat, 0.01)
	assert.InDelta(t, 0.031, p, 0.005)
	assert.Less(t, p, 0.05)
}

func TestLeveneSimilarSpread(t *testing.T) {
	_, p := Levene([]float64{1, 2, 3, 4, 5}, []float64{11, 12, 13, 14, 15})
	assert.Greater(t, p, 0.05)
}

func TestLeveneNeedsTwoGroups(t *testing.T) {
	stat, _ := Levene([]float64{1, 2, 3})
	assert.True(t, math.IsNaN(stat))
}
