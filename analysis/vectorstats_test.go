package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scistat/domain/core"
)

func TestVectorStatisticsKnownValues(t *testing.T) {
	vs, err := NewVectorStatistics([]float64{1, 2, 3, 4, 5}, true)
	require.NoError(t, err)

	r := vs.Result()
	assert.Equal(t, 5, r.Count)
	assert.InDelta(t, 3, r.Mean, 1e-9)
	assert.InDelta(t, math.Sqrt(2.5), r.StdDev, 1e-9)
	assert.InDelta(t, math.Sqrt(0.5), r.StdErr, 1e-9)
	assert.InDelta(t, 3, r.Median, 1e-9)
	assert.InDelta(t, 1, r.Min, 1e-9)
	assert.InDelta(t, 5, r.Max, 1e-9)
	assert.InDelta(t, 4, r.Range, 1e-9)
	assert.InDelta(t, 2, r.Q1, 1e-9)
	assert.InDelta(t, 4, r.Q3, 1e-9)
	assert.InDelta(t, 2, r.IQR, 1e-9)
	assert.InDelta(t, 0, r.Skewness, 1e-9)
}

func TestVectorStatisticsPopulationStd(t *testing.T) {
	vs, err := NewVectorStatistics([]float64{1, 2, 3, 4, 5}, false)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(2), vs.Result().StdDev, 1e-9)
}

func TestVectorStatisticsDropsNaN(t *testing.T) {
	vs, err := NewVectorStatistics([]float64{1, math.NaN(), 2, 3}, true)
	require.NoError(t, err)
	assert.Equal(t, 3, vs.Result().Count)
}

func TestVectorStatisticsMinimumSize(t *testing.T) {
	_, err := NewVectorStatistics([]float64{1}, true)
	assert.ErrorIs(t, err, core.ErrMinimumSize)
}

func TestVectorStatisticsOutput(t *testing.T) {
	vs, err := NewVectorStatistics([]float64{1, 2, 3, 4, 5}, true)
	require.NoError(t, err)

	out := vs.Output()
	assert.Contains(t, out, "Count     = 5")
	assert.Contains(t, out, "Mean      = 3.0000")
	assert.Contains(t, out, "50%       = 3.0000")
	assert.Contains(t, out, "IQR       = 2.0000")
}
