package sample

import (
	"math"

	"scistat/domain/core"
)

// Clean validates a raw vector for analysis: NaN and Inf entries are
// dropped, then the result must be non-empty and longer than minSize.
// Every test runs its inputs through here before any statistic is computed.
func Clean(raw []float64, minSize int) (Sample, error) {
	if len(raw) == 0 {
		return Sample{}, core.ErrNoData
	}
	s := New(raw).DropNaN()
	if s.IsEmpty() {
		return Sample{}, core.ErrEmptyVector
	}
	if s.Len() <= minSize {
		return Sample{}, core.NewMinimumSizeError(s.Len(), minSize)
	}
	return s, nil
}

// CleanPair validates two vectors that must stay index-aligned. Lengths are
// checked before any dropping; a NaN at index i in either vector removes
// index i from both, so the cleaned pair always remains equal-length.
func CleanPair(rawX, rawY []float64, minSize int) (Sample, Sample, error) {
	if len(rawX) == 0 || len(rawY) == 0 {
		return Sample{}, Sample{}, core.ErrNoData
	}
	if len(rawX) != len(rawY) {
		return Sample{}, Sample{}, core.NewUnequalLengthError(len(rawX), len(rawY))
	}

	x := make([]float64, 0, len(rawX))
	y := make([]float64, 0, len(rawY))
	for i := range rawX {
		if math.IsNaN(rawX[i]) || math.IsInf(rawX[i], 0) ||
			math.IsNaN(rawY[i]) || math.IsInf(rawY[i], 0) {
			continue
		}
		x = append(x, rawX[i])
		y = append(y, rawY[i])
	}

	if len(x) == 0 {
		return Sample{}, Sample{}, core.ErrEmptyVector
	}
	if len(x) <= minSize {
		return Sample{}, Sample{}, core.NewMinimumSizeError(len(x), minSize)
	}
	return Sample{values: x}, Sample{values: y}, nil
}

// CleanGroup applies Clean to every member independently. Members that fail
// cleaning are dropped rather than aborting the whole analysis; the second
// return value reports how many were dropped so callers can surface it.
func CleanGroup(g *Group, minSize int) (*Group, int) {
	clean := NewGroup()
	dropped := 0
	for _, label := range g.Labels() {
		member, _ := g.Member(label)
		s, err := Clean(member.Values(), minSize)
		if err != nil {
			dropped++
			continue
		}
		clean.Add(label, s)
	}
	return clean, dropped
}
