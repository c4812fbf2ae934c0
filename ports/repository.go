package ports

import (
	"context"

	"scistat/domain/core"
	"scistat/domain/report"
)

// ReportRepository persists analysis reports
type ReportRepository interface {
	// Save stores a report
	Save(ctx context.Context, r *report.Report) error

	// GetByID fetches a single report
	GetByID(ctx context.Context, id core.ReportID) (*report.Report, error)

	// List returns reports newest-first
	List(ctx context.Context, limit, offset int) ([]*report.Report, error)
}
