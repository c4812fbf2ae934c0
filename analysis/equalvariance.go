package analysis

import (
	"math"

	"scistat/domain/core"
	"scistat/domain/sample"
	"scistat/numeric"
)

const (
	equalVarianceH0 = "H0: Variances are equal"
	equalVarianceHA = "HA: Variances are not equal"
)

// VarianceMethod tags which equal-variance test was chosen
type VarianceMethod int

const (
	// MethodBartlett is used when the group looks normally distributed
	MethodBartlett VarianceMethod = iota
	// MethodLevene is the fallback for non-normal groups
	MethodLevene
)

// String resolves the variant to its display name
func (m VarianceMethod) String() string {
	if m == MethodBartlett {
		return "Bartlett Test"
	}
	return "Levene Test"
}

func (m VarianceMethod) statisticName() string {
	if m == MethodBartlett {
		return "T value"
	}
	return "W value"
}

// EqualVarianceResult holds the chosen variant and its outcome
type EqualVarianceResult struct {
	Method    VarianceMethod
	Statistic float64
	PValue    float64
}

// EqualVariance checks a group of samples for equal variance. The variant
// is picked by a normality test on the group: Bartlett when normal,
// Levene otherwise.
type EqualVariance struct {
	opts     options
	computed bool
	result   EqualVarianceResult
}

// NewEqualVariance cleans each member and runs the chosen variance test.
// At least two surviving members are required.
func NewEqualVariance(groups [][]float64, opts ...Option) (*EqualVariance, error) {
	o := buildOptions(opts)
	clean, _ := sample.CleanGroup(sample.GroupFromSlices(nil, groups), 2)
	if clean.Len() < 2 {
		return nil, core.ErrEmptyGroup
	}

	t := &EqualVariance{opts: o}

	norm, err := NewGroupNormTest(clean, WithAlpha(o.alpha))
	if err != nil {
		return nil, err
	}

	var statistic, p float64
	method := MethodLevene
	if norm.PValue() > o.alpha {
		method = MethodBartlett
		statistic, p = numeric.Bartlett(clean.Values()...)
	} else {
		statistic, p = numeric.Levene(clean.Values()...)
	}

	t.result = EqualVarianceResult{Method: method, Statistic: statistic, PValue: p}
	t.computed = true
	o.display(t)
	return t, nil
}

// Name returns the display name of the chosen variant
func (t *EqualVariance) Name() string { return t.result.Method.String() }

// Statistic returns the test statistic, or NaN when not computed
func (t *EqualVariance) Statistic() float64 {
	if !t.computed {
		return math.NaN()
	}
	return t.result.Statistic
}

// PValue returns the p-value, or NaN when not computed
func (t *EqualVariance) PValue() float64 {
	if !t.computed {
		return math.NaN()
	}
	return t.result.PValue
}

// Result returns the typed result record
func (t *EqualVariance) Result() EqualVarianceResult { return t.result }

// Output renders the results as a human-readable block
func (t *EqualVariance) Output() string {
	return testBlock(t.result.Method.String(), t.result.Method.statisticName(),
		t.Statistic(), t.PValue(), t.opts.alpha, equalVarianceH0, equalVarianceHA)
}
