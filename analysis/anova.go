package analysis

import (
	"math"

	"scistat/domain/core"
	"scistat/domain/sample"
	"scistat/numeric"
)

const (
	anovaName = "Oneway ANOVA"
	groupH0   = "H0: Group means are matched"
	groupHA   = "HA: Group means are not matched"
)

// AnovaResult holds the one-way ANOVA outcome
type AnovaResult struct {
	FValue float64
	PValue float64
}

// Anova compares the means of two or more groups with a one-way ANOVA.
// Variant selection (ANOVA vs Kruskal-Wallis) is the dispatcher's job,
// not this test's.
type Anova struct {
	opts     options
	computed bool
	result   AnovaResult
}

// NewAnova cleans each member and computes the F test
func NewAnova(groups [][]float64, opts ...Option) (*Anova, error) {
	o := buildOptions(opts)
	clean, _ := sample.CleanGroup(sample.GroupFromSlices(nil, groups), 2)
	if clean.Len() < 2 {
		return nil, core.ErrEmptyGroup
	}

	t := &Anova{opts: o}
	f, p := numeric.OneWayANOVA(clean.Values()...)
	t.result = AnovaResult{FValue: f, PValue: p}
	t.computed = true
	o.display(t)
	return t, nil
}

// Name returns the display name of the test
func (t *Anova) Name() string { return anovaName }

// Statistic returns the f value, or NaN when not computed
func (t *Anova) Statistic() float64 {
	if !t.computed {
		return math.NaN()
	}
	return t.result.FValue
}

// PValue returns the p-value, or NaN when not computed
func (t *Anova) PValue() float64 {
	if !t.computed {
		return math.NaN()
	}
	return t.result.PValue
}

// Result returns the typed result record
func (t *Anova) Result() AnovaResult { return t.result }

// Output renders the results as a human-readable block
func (t *Anova) Output() string {
	return testBlock(anovaName, "f value", t.Statistic(), t.PValue(), t.opts.alpha, groupH0, groupHA)
}
