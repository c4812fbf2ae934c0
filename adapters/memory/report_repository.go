// Package memory provides an in-process report store used when no
// database is configured.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"scistat/domain/core"
	"scistat/domain/report"
	"scistat/ports"
)

type reportRepository struct {
	mu      sync.RWMutex
	reports map[core.ReportID]*report.Report
}

// NewReportRepository creates an empty in-memory report store
func NewReportRepository() ports.ReportRepository {
	return &reportRepository{reports: make(map[core.ReportID]*report.Report)}
}

func (r *reportRepository) Save(_ context.Context, rep *report.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *rep
	r.reports[rep.ID] = &copied
	return nil
}

func (r *reportRepository) GetByID(_ context.Context, id core.ReportID) (*report.Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rep, ok := r.reports[id]
	if !ok {
		return nil, fmt.Errorf("report %s: %w", id, core.ErrNoData)
	}
	copied := *rep
	return &copied, nil
}

func (r *reportRepository) List(_ context.Context, limit, offset int) ([]*report.Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*report.Report, 0, len(r.reports))
	for _, rep := range r.reports {
		copied := *rep
		all = append(all, &copied)
	}
	sort.Slice(all, func(a, b int) bool { return all[a].CreatedAt.After(all[b].CreatedAt) })

	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if limit <= 0 || end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}
