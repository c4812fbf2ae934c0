package analysis

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scistat/domain/core"
)

func TestTTestPicksPooledForEqualVariances(t *testing.T) {
	tt, err := NewTTest([]float64{1, 2, 3, 4, 5}, []float64{2, 3, 4, 5, 6})
	require.NoError(t, err)

	assert.Equal(t, VariantPooled, tt.Result().Variant)
	assert.Equal(t, "T Test", tt.Name())
	assert.InDelta(t, -1, tt.Statistic(), 1e-12)
	assert.InDelta(t, 0.3466, tt.PValue(), 0.001)
}

func TestTTestPicksWelchForOutlierGroup(t *testing.T) {
	tt, err := NewTTest([]float64{1, 2, 3, 4, 5}, []float64{1, 2, 3, 4, 5, 100})
	require.NoError(t, err)

	assert.Equal(t, VariantWelch, tt.Result().Variant)
	assert.Equal(t, "Welch's T Test", tt.Name())
}

func TestOneSampleTTest(t *testing.T) {
	tt, err := NewOneSampleTTest([]float64{1, 2, 3, 4, 5}, 3)
	require.NoError(t, err)

	assert.Equal(t, VariantOneSample, tt.Result().Variant)
	assert.InDelta(t, 0, tt.Statistic(), 1e-12)
	assert.InDelta(t, 1, tt.PValue(), 1e-12)
}

func TestTTestCleaningFailure(t *testing.T) {
	_, err := NewTTest([]float64{1, 2}, []float64{3, 4, 5})
	assert.ErrorIs(t, err, core.ErrMinimumSize)
}

func TestTTestOutput(t *testing.T) {
	var buf bytes.Buffer
	tt, err := NewOneSampleTTest([]float64{1, 2, 3, 4, 5}, 3, WithOutput(&buf))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "1 Sample T Test")
	assert.Contains(t, out, "t value = 0.0000")
	assert.Contains(t, out, "p value = 1.0000")
	assert.Contains(t, out, "H0: Means are matched")
	assert.Equal(t, out[:len(out)-1], tt.Output())
}
