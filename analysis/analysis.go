// Package analysis implements the statistical test engine: a shared
// clean-compute-format lifecycle, the individual test families, and the
// Analyze dispatcher that picks the right tests from the shape of the input.
package analysis

import (
	"fmt"
	"io"
	"strings"
)

// DefaultAlpha is the significance threshold used when none is supplied
const DefaultAlpha = 0.05

// Analysis is the common contract shared by every test and summary.
// Construction cleans the input data and runs the computation to
// completion, so a successfully constructed Analysis always has results.
type Analysis interface {
	// Name returns the display name of the analysis
	Name() string
	// Output renders the results as a human-readable block
	Output() string
}

// HypothesisTest extends Analysis with the statistic/p-value accessors
// shared by all hypothesis tests. Accessors return NaN when a value was
// not computed.
type HypothesisTest interface {
	Analysis
	Statistic() float64
	PValue() float64
}

// Option configures a test at construction time
type Option func(*options)

type options struct {
	alpha float64
	out   io.Writer
}

// WithAlpha sets the significance threshold of the test
func WithAlpha(alpha float64) Option {
	return func(o *options) { o.alpha = alpha }
}

// WithOutput makes the constructor write the formatted result block to w
// once the computation finishes. Without it a test is compute-only, which
// is how composite tests invoke their inner tests.
func WithOutput(w io.Writer) Option {
	return func(o *options) { o.out = w }
}

func buildOptions(opts []Option) options {
	o := options{alpha: DefaultAlpha}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// display writes the rendered block if an output writer was configured
func (o options) display(a Analysis) {
	if o.out != nil {
		fmt.Fprintln(o.out, a.Output())
	}
}

// hypothesis picks the null text when p exceeds alpha, else the alternate
func hypothesis(p, alpha float64, h0, ha string) string {
	if p > alpha {
		return h0
	}
	return ha
}

// testBlock renders the standard report block shared by simple tests
func testBlock(name, statisticName string, statistic, p, alpha float64, h0, ha string) string {
	return strings.Join([]string{
		" ",
		name,
		strings.Repeat("-", len(name)),
		" ",
		fmt.Sprintf("%s = %.4f", statisticName, statistic),
		fmt.Sprintf("p value = %.4f", p),
		" ",
		hypothesis(p, alpha, h0, ha),
		" ",
	}, "\n")
}
