package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scistat/domain/core"
	"scistat/numeric"
)

func TestKSTestUniformReference(t *testing.T) {
	data := make([]float64, 50)
	for i := range data {
		data[i] = float64(i + 1)
	}

	ks, err := NewKSTest(data, numeric.DistUniform, nil)
	require.NoError(t, err)

	assert.Equal(t, numeric.DistUniform, ks.Distribution())
	assert.Greater(t, ks.PValue(), 0.05)
	assert.Contains(t, ks.Output(), "matched to the uniform distribution")
}

func TestKSTestRejectsMismatchedReference(t *testing.T) {
	data := make([]float64, 50)
	for i := range data {
		data[i] = float64(i + 1)
	}

	ks, err := NewKSTest(data, numeric.DistNormal, []float64{1000, 1})
	require.NoError(t, err)

	assert.Less(t, ks.PValue(), 0.01)
	assert.Contains(t, ks.Output(), "HA: Data is not from the norm distribution")
}

func TestKSTestCleaningFailure(t *testing.T) {
	_, err := NewKSTest(nil, numeric.DistNormal, nil)
	assert.ErrorIs(t, err, core.ErrNoData)
}
