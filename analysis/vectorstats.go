package analysis

import (
	"fmt"
	"strings"

	"github.com/montanaflynn/stats"

	"scistat/domain/sample"
	"scistat/numeric"
)

const vectorStatsName = "Statistics"

// VectorStatsResult is the full descriptive set for a single sample
type VectorStatsResult struct {
	Count    int
	Mean     float64
	StdDev   float64
	StdErr   float64
	Median   float64
	Min      float64
	Max      float64
	Range    float64
	Skewness float64
	Kurtosis float64
	Q1       float64
	Q3       float64
	IQR      float64
}

// VectorStatistics reports descriptive statistics for one sample. It has
// no hypothesis pair; the output is the full descriptive block.
type VectorStatistics struct {
	opts     options
	isSample bool
	result   VectorStatsResult
}

// NewVectorStatistics computes the descriptive set. sampleStd selects the
// sample standard deviation (n-1 denominator) over the population one.
func NewVectorStatistics(data []float64, sampleStd bool, opts ...Option) (*VectorStatistics, error) {
	o := buildOptions(opts)
	s, err := sample.Clean(data, 1)
	if err != nil {
		return nil, err
	}

	t := &VectorStatistics{opts: o, isSample: sampleStd}
	values := s.Values()

	mean, _ := stats.Mean(values)
	median, _ := stats.Median(values)
	min, _ := stats.Min(values)
	max, _ := stats.Max(values)
	q1, _ := stats.Percentile(values, 25)
	q3, _ := stats.Percentile(values, 75)

	ddof := 0
	if sampleStd {
		ddof = 1
	}
	var sd float64
	if sampleStd {
		sd, _ = stats.StandardDeviationSample(values)
	} else {
		sd, _ = stats.StandardDeviationPopulation(values)
	}

	t.result = VectorStatsResult{
		Count:    s.Len(),
		Mean:     mean,
		StdDev:   sd,
		StdErr:   numeric.StdErr(values, ddof),
		Median:   median,
		Min:      min,
		Max:      max,
		Range:    max - min,
		Skewness: numeric.Skewness(values),
		Kurtosis: numeric.Kurtosis(values),
		Q1:       q1,
		Q3:       q3,
		IQR:      q3 - q1,
	}
	o.display(t)
	return t, nil
}

// Name returns the display name of the analysis
func (t *VectorStatistics) Name() string { return vectorStatsName }

// Result returns the typed result record
func (t *VectorStatistics) Result() VectorStatsResult { return t.result }

// Output renders the results as a human-readable block
func (t *VectorStatistics) Output() string {
	r := t.result
	return strings.Join([]string{
		" ",
		vectorStatsName,
		strings.Repeat("-", len(vectorStatsName)),
		" ",
		fmt.Sprintf("Count     = %d", r.Count),
		fmt.Sprintf("Mean      = %.4f", r.Mean),
		fmt.Sprintf("Std Dev   = %.4f", r.StdDev),
		fmt.Sprintf("Std Error = %.4f", r.StdErr),
		fmt.Sprintf("Skewness  = %.4f", r.Skewness),
		fmt.Sprintf("Kurtosis  = %.4f", r.Kurtosis),
		fmt.Sprintf("Max       = %.4f", r.Max),
		fmt.Sprintf("75%%       = %.4f", r.Q3),
		fmt.Sprintf("50%%       = %.4f", r.Median),
		fmt.Sprintf("25%%       = %.4f", r.Q1),
		fmt.Sprintf("Min       = %.4f", r.Min),
		fmt.Sprintf("IQR       = %.4f", r.IQR),
		fmt.Sprintf("Range     = %.4f", r.Range),
	}, "\n")
}
