package sample

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroupFromSlicesDefaultLabels(t *testing.T) {
	g := GroupFromSlices(nil, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	assert.Equal(t, []string{"1", "2", "3"}, g.Labels())
}

func TestGroupFromMapPreservesOrder(t *testing.T) {
	g := GroupFromMap(map[string][]float64{
		"b": {3, 4},
		"a": {1, 2},
	}, []string{"b", "a", "missing"})

	assert.Equal(t, []string{"b", "a"}, g.Labels())
	assert.Equal(t, [][]float64{{3, 4}, {1, 2}}, g.Values())
}

func TestGroupAddReplaces(t *testing.T) {
	g := NewGroup()
	g.Add("a", New([]float64{1}))
	g.Add("a", New([]float64{2, 3}))

	assert.Equal(t, 1, g.Len())
	member, ok := g.Member("a")
	assert.True(t, ok)
	assert.Equal(t, 2, member.Len())
}

func TestSampleValuesIsACopy(t *testing.T) {
	s := New([]float64{1, 2, 3})
	v := s.Values()
	v[0] = 99
	assert.Equal(t, []float64{1, 2, 3}, s.Values())
}
