package analysis

import (
	"fmt"
	"math"

	"scistat/domain/sample"
	"scistat/numeric"
)

const ksTestName = "Kolmogorov-Smirnov Test"

// KSResult holds the one-sample KS outcome
type KSResult struct {
	Distribution string
	Statistic    float64
	PValue       float64
}

// KSTest compares a sample against a named reference distribution.
// The distribution is caller-chosen; there is no internal branching.
type KSTest struct {
	opts     options
	computed bool
	result   KSResult
}

// NewKSTest runs a one-sample KS test against distribution, one of
// numeric.DistNormal, numeric.DistUniform or numeric.DistExponential.
// params optionally fixes the reference parameters instead of fitting
// them from the data.
func NewKSTest(data []float64, distribution string, params []float64, opts ...Option) (*KSTest, error) {
	o := buildOptions(opts)
	s, err := sample.Clean(data, 2)
	if err != nil {
		return nil, err
	}

	t := &KSTest{opts: o}
	d, p := numeric.KolmogorovSmirnov(s.Values(), distribution, params)
	t.result = KSResult{Distribution: distribution, Statistic: d, PValue: p}
	t.computed = true
	o.display(t)
	return t, nil
}

// Name returns the display name of the test
func (t *KSTest) Name() string { return ksTestName }

// Distribution returns the reference distribution the data is compared against
func (t *KSTest) Distribution() string { return t.result.Distribution }

// Statistic returns the D value, or NaN when not computed
func (t *KSTest) Statistic() float64 {
	if !t.computed {
		return math.NaN()
	}
	return t.result.Statistic
}

// PValue returns the p-value, or NaN when not computed
func (t *KSTest) PValue() float64 {
	if !t.computed {
		return math.NaN()
	}
	return t.result.PValue
}

// Result returns the typed result record
func (t *KSTest) Result() KSResult { return t.result }

// Output renders the results as a human-readable block
func (t *KSTest) Output() string {
	h0 := fmt.Sprintf("H0: Data is matched to the %s distribution", t.result.Distribution)
	ha := fmt.Sprintf("HA: Data is not from the %s distribution", t.result.Distribution)
	return testBlock(ksTestName, "D value", t.Statistic(), t.PValue(), t.opts.alpha, h0, ha)
}
