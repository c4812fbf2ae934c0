package sample

import (
	"math"
	"strconv"
	"strings"
)

// Sample is an ordered sequence of float64 values used as test input.
// A Sample produced by the cleaning pipeline contains no NaN or Inf entries
// and is immutable afterwards.
type Sample struct {
	values []float64
}

// New creates a Sample from raw values without cleaning them
func New(values []float64) Sample {
	v := make([]float64, len(values))
	copy(v, values)
	return Sample{values: v}
}

// Len returns the number of values in the sample
func (s Sample) Len() int {
	return len(s.values)
}

// IsEmpty checks if the sample holds no values
func (s Sample) IsEmpty() bool {
	return len(s.values) == 0
}

// Values returns a copy of the underlying values
func (s Sample) Values() []float64 {
	v := make([]float64, len(s.values))
	copy(v, s.values)
	return v
}

// DropNaN returns a new Sample with NaN and Inf entries removed
func (s Sample) DropNaN() Sample {
	clean := make([]float64, 0, len(s.values))
	for _, v := range s.values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		clean = append(clean, v)
	}
	return Sample{values: clean}
}

// Coerce converts raw string fields to float64, substituting NaN for
// values that cannot be parsed. The NaN placeholders are removed by the
// cleaning pipeline.
func Coerce(raw []string) []float64 {
	values := make([]float64, len(raw))
	for i, field := range raw {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			values[i] = math.NaN()
			continue
		}
		values[i] = v
	}
	return values
}
