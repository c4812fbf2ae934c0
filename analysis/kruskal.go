package analysis

import (
	"math"

	"scistat/domain/core"
	"scistat/domain/sample"
	"scistat/numeric"
)

const kruskalName = "Kruskal-Wallis"

// KruskalResult holds the Kruskal-Wallis outcome
type KruskalResult struct {
	HValue float64
	PValue float64
}

// Kruskal compares two or more groups with the non-parametric
// Kruskal-Wallis test.
type Kruskal struct {
	opts     options
	computed bool
	result   KruskalResult
}

// NewKruskal cleans each member and computes the H test
func NewKruskal(groups [][]float64, opts ...Option) (*Kruskal, error) {
	o := buildOptions(opts)
	clean, _ := sample.CleanGroup(sample.GroupFromSlices(nil, groups), 2)
	if clean.Len() < 2 {
		return nil, core.ErrEmptyGroup
	}

	t := &Kruskal{opts: o}
	h, p := numeric.KruskalWallis(clean.Values()...)
	t.result = KruskalResult{HValue: h, PValue: p}
	t.computed = true
	o.display(t)
	return t, nil
}

// Name returns the display name of the test
func (t *Kruskal) Name() string { return kruskalName }

// Statistic returns the H value, or NaN when not computed
func (t *Kruskal) Statistic() float64 {
	if !t.computed {
		return math.NaN()
	}
	return t.result.HValue
}

// PValue returns the p-value, or NaN when not computed
func (t *Kruskal) PValue() float64 {
	if !t.computed {
		return math.NaN()
	}
	return t.result.PValue
}

// Result returns the typed result record
func (t *Kruskal) Result() KruskalResult { return t.result }

// Output renders the results as a human-readable block
func (t *Kruskal) Output() string {
	return testBlock(kruskalName, "H value", t.Statistic(), t.PValue(), t.opts.alpha, groupH0, groupHA)
}
