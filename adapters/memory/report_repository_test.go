package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scistat/domain/core"
	"scistat/domain/report"
)

func newReport(id string, age time.Duration) *report.Report {
	return &report.Report{
		ID:        core.ReportID(id),
		Kind:      report.KindSingle,
		Alpha:     0.05,
		CreatedAt: time.Now().UTC().Add(-age),
	}
}

func TestSaveAndGetByID(t *testing.T) {
	repo := NewReportRepository()
	ctx := context.Background()

	rep := newReport("r1", 0)
	rep.Append("Statistics", "body")
	require.NoError(t, repo.Save(ctx, rep))

	got, err := repo.GetByID(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, core.ReportID("r1"), got.ID)
	assert.Len(t, got.Sections, 1)
}

func TestGetByIDUnknown(t *testing.T) {
	repo := NewReportRepository()
	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, core.ErrNoData)
}

func TestListNewestFirst(t *testing.T) {
	repo := NewReportRepository()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, newReport("old", 2*time.Hour)))
	require.NoError(t, repo.Save(ctx, newReport("new", 0)))
	require.NoError(t, repo.Save(ctx, newReport("mid", time.Hour)))

	all, err := repo.List(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, core.ReportID("new"), all[0].ID)
	assert.Equal(t, core.ReportID("mid"), all[1].ID)
	assert.Equal(t, core.ReportID("old"), all[2].ID)
}

func TestListLimitAndOffset(t *testing.T) {
	repo := NewReportRepository()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, newReport("a", 3*time.Hour)))
	require.NoError(t, repo.Save(ctx, newReport("b", 2*time.Hour)))
	require.NoError(t, repo.Save(ctx, newReport("c", time.Hour)))

	page, err := repo.List(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, core.ReportID("b"), page[0].ID)

	empty, err := repo.List(ctx, 10, 99)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestSaveStoresACopy(t *testing.T) {
	repo := NewReportRepository()
	ctx := context.Background()

	rep := newReport("r1", 0)
	require.NoError(t, repo.Save(ctx, rep))
	rep.Title = "mutated after save"

	got, err := repo.GetByID(ctx, "r1")
	require.NoError(t, err)
	assert.Empty(t, got.Title)
}
