package analysis

import (
	"math"

	"scistat/domain/core"
	"scistat/domain/sample"
	"scistat/numeric"
)

const (
	normTestName = "Shapiro-Wilk test for normality"
	normTestH0   = "H0: Data is normally distributed"
	normTestHA   = "HA: Data is not normally distributed"
)

// NormResult holds the Shapiro-Wilk outcome. For a group input the values
// belong to the worst-fitting member.
type NormResult struct {
	Statistic float64
	PValue    float64
	// WorstMember is the label of the group member with the lowest
	// p-value; empty for single-sample input.
	WorstMember string
}

// NormTest checks one sample, or every member of a group, for normality.
// A group reports its worst-fitting member as the representative result.
type NormTest struct {
	opts     options
	computed bool
	result   NormResult
}

// NewNormTest runs a Shapiro-Wilk test on a single sample
func NewNormTest(data []float64, opts ...Option) (*NormTest, error) {
	o := buildOptions(opts)
	s, err := sample.Clean(data, 2)
	if err != nil {
		return nil, err
	}

	t := &NormTest{opts: o}
	w, p := numeric.ShapiroWilk(s.Values())
	t.result = NormResult{Statistic: w, PValue: p}
	t.computed = true
	o.display(t)
	return t, nil
}

// NewGroupNormTest runs the test on every surviving member of a group and
// keeps the member with the minimum p-value as the representative result.
func NewGroupNormTest(g *sample.Group, opts ...Option) (*NormTest, error) {
	o := buildOptions(opts)
	clean, _ := sample.CleanGroup(g, 2)
	if clean.Len() == 0 {
		return nil, core.ErrEmptyGroup
	}

	t := &NormTest{opts: o}
	minP := math.Inf(1)
	for _, label := range clean.Labels() {
		member, _ := clean.Member(label)
		w, p := numeric.ShapiroWilk(member.Values())
		if p < minP {
			minP = p
			t.result = NormResult{Statistic: w, PValue: p, WorstMember: label}
		}
	}
	t.computed = true
	o.display(t)
	return t, nil
}

// Name returns the display name of the test
func (t *NormTest) Name() string { return normTestName }

// Statistic returns the W value, or NaN when not computed
func (t *NormTest) Statistic() float64 {
	if !t.computed {
		return math.NaN()
	}
	return t.result.Statistic
}

// PValue returns the p-value, or NaN when not computed
func (t *NormTest) PValue() float64 {
	if !t.computed {
		return math.NaN()
	}
	return t.result.PValue
}

// Result returns the typed result record
func (t *NormTest) Result() NormResult { return t.result }

// Output renders the results as a human-readable block
func (t *NormTest) Output() string {
	return testBlock(normTestName, "W value", t.Statistic(), t.PValue(), t.opts.alpha, normTestH0, normTestHA)
}
