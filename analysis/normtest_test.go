package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scistat/domain/core"
	"scistat/domain/sample"
)

func TestNormTestAcceptsSymmetricData(t *testing.T) {
	nt, err := NewNormTest([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
	require.NoError(t, err)

	assert.Greater(t, nt.PValue(), 0.05)
	assert.Empty(t, nt.Result().WorstMember)
	assert.Contains(t, nt.Output(), "H0: Data is normally distributed")
}

func TestNormTestRejectsOutlierData(t *testing.T) {
	nt, err := NewNormTest([]float64{1, 2, 3, 4, 5, 100})
	require.NoError(t, err)

	assert.Less(t, nt.PValue(), 0.05)
	assert.Contains(t, nt.Output(), "HA: Data is not normally distributed")
}

func TestGroupNormTestKeepsWorstMember(t *testing.T) {
	g := sample.GroupFromSlices([]string{"a", "b"}, [][]float64{
		{1, 2, 3, 4, 5},
		{1, 2, 3, 4, 5, 100},
	})
	nt, err := NewGroupNormTest(g)
	require.NoError(t, err)

	assert.Equal(t, "b", nt.Result().WorstMember)
	assert.Less(t, nt.PValue(), 0.05)
}

func TestGroupNormTestEmptyGroup(t *testing.T) {
	_, err := NewGroupNormTest(sample.NewGroup())
	assert.ErrorIs(t, err, core.ErrEmptyGroup)
}

func TestNormTestCleaningFailure(t *testing.T) {
	_, err := NewNormTest(nil)
	assert.ErrorIs(t, err, core.ErrNoData)
}
