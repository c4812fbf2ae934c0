package analysis

import (
	"fmt"
	"math"
	"strings"

	"scistat/domain/sample"
	"scistat/numeric"
)

const (
	correlationName = "Correlation"
	correlationH0   = "H0: There is no significant relationship between predictor and response"
	correlationHA   = "HA: There is a significant relationship between predictor and response"
)

// CorrelationMethod tags which correlation coefficient was used
type CorrelationMethod int

const (
	// MethodPearson is used when the combined data looks normal
	MethodPearson CorrelationMethod = iota
	// MethodSpearman is the rank-based fallback
	MethodSpearman
)

// String resolves the variant to its display name
func (m CorrelationMethod) String() string {
	if m == MethodPearson {
		return "pearson"
	}
	return "spearman"
}

// CorrelationResult holds the chosen method and its outcome
type CorrelationResult struct {
	Method CorrelationMethod
	RValue float64
	PValue float64
}

// Correlation measures the association of two samples. A normality test on
// the concatenation of both samples picks Pearson when normal, Spearman
// otherwise. Minimum cleaned size is 3.
type Correlation struct {
	opts     options
	computed bool
	result   CorrelationResult
}

// NewCorrelation cleans the pair jointly and computes the correlation
func NewCorrelation(x, y []float64, opts ...Option) (*Correlation, error) {
	o := buildOptions(opts)
	sx, sy, err := sample.CleanPair(x, y, 3)
	if err != nil {
		return nil, err
	}

	t := &Correlation{opts: o}

	combined := append(sx.Values(), sy.Values()...)
	method := MethodSpearman
	norm, err := NewNormTest(combined, WithAlpha(o.alpha))
	if err == nil && norm.PValue() > o.alpha {
		method = MethodPearson
	}

	var r, p float64
	if method == MethodPearson {
		r, p = numeric.Pearson(sx.Values(), sy.Values())
	} else {
		r, p = numeric.Spearman(sx.Values(), sy.Values())
	}

	t.result = CorrelationResult{Method: method, RValue: r, PValue: p}
	t.computed = true
	o.display(t)
	return t, nil
}

// Name returns the display name of the analysis
func (t *Correlation) Name() string { return correlationName }

// Statistic returns the r value, or NaN when not computed
func (t *Correlation) Statistic() float64 {
	if !t.computed {
		return math.NaN()
	}
	return t.result.RValue
}

// PValue returns the p-value, or NaN when not computed
func (t *Correlation) PValue() float64 {
	if !t.computed {
		return math.NaN()
	}
	return t.result.PValue
}

// Result returns the typed result record
func (t *Correlation) Result() CorrelationResult { return t.result }

// Output renders the results as a human-readable block
func (t *Correlation) Output() string {
	coeff := "Pearson Coeff:"
	if t.result.Method == MethodSpearman {
		coeff = "Spearman Coeff:"
	}
	return strings.Join([]string{
		" ",
		correlationName,
		strings.Repeat("-", len(correlationName)),
		" ",
		coeff,
		fmt.Sprintf("r value = %.4f", t.result.RValue),
		fmt.Sprintf("p value = %.4f", t.result.PValue),
		" ",
		hypothesis(t.result.PValue, t.opts.alpha, correlationH0, correlationHA),
		" ",
	}, "\n")
}
