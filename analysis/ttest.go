package analysis

import (
	"math"

	"scistat/domain/sample"
	"scistat/numeric"
)

const (
	tTestH0 = "H0: Means are matched"
	tTestHA = "HA: Means are significantly different"
)

// TTestVariant tags which t-test was performed
type TTestVariant int

const (
	// VariantOneSample compares a sample mean against a scalar target
	VariantOneSample TTestVariant = iota
	// VariantPooled assumes equal variances between the two samples
	VariantPooled
	// VariantWelch does not assume equal variances
	VariantWelch
)

// String resolves the variant to its display name
func (v TTestVariant) String() string {
	switch v {
	case VariantOneSample:
		return "1 Sample T Test"
	case VariantPooled:
		return "T Test"
	default:
		return "Welch's T Test"
	}
}

// TTestResult holds the chosen variant and its outcome
type TTestResult struct {
	Variant   TTestVariant
	Statistic float64
	PValue    float64
}

// TTest compares a sample mean against a scalar, or two sample means
// against each other. For two samples an equal-variance check decides
// between the pooled and Welch variants; the scalar form never runs that
// check.
type TTest struct {
	opts     options
	computed bool
	result   TTestResult
}

// NewOneSampleTTest tests whether the mean of x differs from mu
func NewOneSampleTTest(x []float64, mu float64, opts ...Option) (*TTest, error) {
	o := buildOptions(opts)
	s, err := sample.Clean(x, 2)
	if err != nil {
		return nil, err
	}

	t := &TTest{opts: o}
	statistic, p := numeric.TTestOneSample(s.Values(), mu)
	t.result = TTestResult{Variant: VariantOneSample, Statistic: statistic, PValue: p}
	t.computed = true
	o.display(t)
	return t, nil
}

// NewTTest tests whether the means of x and y differ. An internal
// compute-only EqualVariance run picks the variant: pooled when its
// p-value exceeds alpha, Welch otherwise.
func NewTTest(x, y []float64, opts ...Option) (*TTest, error) {
	o := buildOptions(opts)
	sx, err := sample.Clean(x, 2)
	if err != nil {
		return nil, err
	}
	sy, err := sample.Clean(y, 2)
	if err != nil {
		return nil, err
	}

	t := &TTest{opts: o}

	variant := VariantWelch
	ev, err := NewEqualVariance([][]float64{sx.Values(), sy.Values()}, WithAlpha(o.alpha))
	if err == nil && ev.PValue() > o.alpha {
		variant = VariantPooled
	}

	var statistic, p float64
	if variant == VariantPooled {
		statistic, p = numeric.TTestPooled(sx.Values(), sy.Values())
	} else {
		statistic, p = numeric.TTestWelch(sx.Values(), sy.Values())
	}

	t.result = TTestResult{Variant: variant, Statistic: statistic, PValue: p}
	t.computed = true
	o.display(t)
	return t, nil
}

// Name returns the display name of the chosen variant
func (t *TTest) Name() string { return t.result.Variant.String() }

// Statistic returns the t value, or NaN when not computed
func (t *TTest) Statistic() float64 {
	if !t.computed {
		return math.NaN()
	}
	return t.result.Statistic
}

// PValue returns the p-value, or NaN when not computed
func (t *TTest) PValue() float64 {
	if !t.computed {
		return math.NaN()
	}
	return t.result.PValue
}

// Result returns the typed result record
func (t *TTest) Result() TTestResult { return t.result }

// Output renders the results as a human-readable block
func (t *TTest) Output() string {
	return testBlock(t.result.Variant.String(), "t value", t.Statistic(), t.PValue(), t.opts.alpha, tTestH0, tTestHA)
}
