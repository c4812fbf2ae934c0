package analysis

import (
	"fmt"
	"math"
	"strings"

	"scistat/domain/sample"
	"scistat/numeric"
)

const (
	regressionName = "Linear Regression"
	regressionH0   = "H0: There is no significant relationship between predictor and response"
	regressionHA   = "HA: There is a significant relationship between predictor and response"
)

// RegressionResult holds the least squares fit of response on predictor
type RegressionResult struct {
	Count     int
	Slope     float64
	Intercept float64
	RSquared  float64
	StdErr    float64
	PValue    float64
}

// LinearRegression fits a least squares line through two equal-length
// samples. Minimum cleaned size is 3.
type LinearRegression struct {
	opts     options
	computed bool
	result   RegressionResult
}

// NewLinearRegression cleans the pair jointly and fits y on x
func NewLinearRegression(x, y []float64, opts ...Option) (*LinearRegression, error) {
	o := buildOptions(opts)
	sx, sy, err := sample.CleanPair(x, y, 3)
	if err != nil {
		return nil, err
	}

	t := &LinearRegression{opts: o}
	fit := numeric.LinRegress(sx.Values(), sy.Values())
	t.result = RegressionResult{
		Count:     fit.Count,
		Slope:     fit.Slope,
		Intercept: fit.Intercept,
		RSquared:  fit.RSquared,
		StdErr:    fit.StdErr,
		PValue:    fit.PValue,
	}
	t.computed = true
	o.display(t)
	return t, nil
}

// Name returns the display name of the analysis
func (t *LinearRegression) Name() string { return regressionName }

// Statistic returns the slope, or NaN when not computed
func (t *LinearRegression) Statistic() float64 {
	if !t.computed {
		return math.NaN()
	}
	return t.result.Slope
}

// PValue returns the p-value for the slope, or NaN when not computed
func (t *LinearRegression) PValue() float64 {
	if !t.computed {
		return math.NaN()
	}
	return t.result.PValue
}

// Result returns the typed result record
func (t *LinearRegression) Result() RegressionResult { return t.result }

// Output renders the results as a human-readable block
func (t *LinearRegression) Output() string {
	r := t.result
	return strings.Join([]string{
		" ",
		regressionName,
		strings.Repeat("-", len(regressionName)),
		" ",
		fmt.Sprintf("count     = %d", r.Count),
		fmt.Sprintf("slope     = %.4f", r.Slope),
		fmt.Sprintf("intercept = %.4f", r.Intercept),
		fmt.Sprintf("R^2       = %.4f", r.RSquared),
		fmt.Sprintf("std err   = %.4f", r.StdErr),
		fmt.Sprintf("p value   = %.4f", r.PValue),
		" ",
		hypothesis(r.PValue, t.opts.alpha, regressionH0, regressionHA),
		" ",
	}, "\n")
}
