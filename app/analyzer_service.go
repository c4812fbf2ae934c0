// Package app wires the analysis dispatcher to persistence and rendering.
package app

import (
	"context"
	"log"
	"time"

	"scistat/analysis"
	"scistat/domain/core"
	"scistat/internal/errors"
	"scistat/ports"
)

// AnalyzerService runs analyses and persists their reports
type AnalyzerService struct {
	repo    ports.ReportRepository
	grapher ports.Grapher
}

// NewAnalyzerService creates the service. grapher may be nil to skip
// plotting; repo may be nil to skip persistence.
func NewAnalyzerService(repo ports.ReportRepository, grapher ports.Grapher) *AnalyzerService {
	return &AnalyzerService{repo: repo, grapher: grapher}
}

// Analyze dispatches the request, stamps the report with an ID and
// timestamp, and saves it when a repository is configured.
func (s *AnalyzerService) Analyze(ctx context.Context, req analysis.Request) (*analysis.Outcome, error) {
	outcome, err := analysis.Analyze(req, s.grapher)
	if err != nil {
		return nil, errors.Wrap(err, "analysis failed")
	}

	outcome.Report.ID = core.ReportID(core.NewID())
	outcome.Report.CreatedAt = time.Now().UTC()

	if s.repo != nil {
		if err := s.repo.Save(ctx, outcome.Report); err != nil {
			// Persistence is best-effort; the caller still gets the outcome
			log.Printf("[AnalyzerService] failed to save report %s: %v", outcome.Report.ID, err)
		}
	}
	return outcome, nil
}
