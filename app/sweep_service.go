package app

import (
	"context"
	"log"
	"sync"

	"golang.org/x/sync/errgroup"

	"scistat/adapters/ingest"
	"scistat/analysis"
	"scistat/ports"
)

// maxConcurrentAnalyses bounds the sweep worker pool
const maxConcurrentAnalyses = 4

// SweepService analyzes every column and column pair of an ingested table.
// Individual analyses stay synchronous; the sweep runs them concurrently
// because they share no state.
type SweepService struct {
	analyzer *AnalyzerService
	grapher  ports.Grapher
}

// NewSweepService creates a sweep over the given analyzer. grapher may be
// nil to skip frequency charts for categorical columns.
func NewSweepService(analyzer *AnalyzerService, grapher ports.Grapher) *SweepService {
	return &SweepService{analyzer: analyzer, grapher: grapher}
}

// Sweep runs a single-sample analysis for every numeric column and a
// paired analysis for every numeric column pair. Categorical columns get
// a frequency chart. Columns that fail cleaning are logged and skipped.
func (s *SweepService) Sweep(ctx context.Context, table *ingest.Table, alpha float64) ([]*analysis.Outcome, error) {
	numeric := make([]string, 0)
	for _, col := range table.Columns() {
		if table.IsNumeric(col) {
			numeric = append(numeric, col)
			continue
		}
		if s.grapher != nil {
			categories, counts, err := table.Frequencies(col)
			if err == nil {
				s.grapher.Frequency(categories, counts, col)
			}
		}
	}

	var mu sync.Mutex
	var outcomes []*analysis.Outcome

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentAnalyses)

	run := func(req analysis.Request) {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			outcome, err := s.analyzer.Analyze(ctx, req)
			if err != nil {
				log.Printf("[SweepService] skipping %q: %v", req.Name, err)
				return nil
			}
			mu.Lock()
			outcomes = append(outcomes, outcome)
			mu.Unlock()
			return nil
		})
	}

	for _, col := range numeric {
		values, err := table.NumericColumn(col)
		if err != nil {
			continue
		}
		run(analysis.Request{X: values, Name: col, Alpha: alpha})
	}

	for i := 0; i < len(numeric); i++ {
		for j := i + 1; j < len(numeric); j++ {
			x, errX := table.NumericColumn(numeric[i])
			y, errY := table.NumericColumn(numeric[j])
			if errX != nil || errY != nil || len(x) != len(y) {
				continue
			}
			run(analysis.Request{
				X:     x,
				Y:     y,
				Name:  numeric[i] + " vs " + numeric[j],
				XName: numeric[i],
				YName: numeric[j],
				Alpha: alpha,
			})
		}
	}

	if err := g.Wait(); err != nil {
		return outcomes, err
	}
	return outcomes, nil
}
