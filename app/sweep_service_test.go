package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scistat/adapters/graphs"
	"scistat/adapters/ingest"
	"scistat/adapters/memory"
	"scistat/domain/report"
)

const sweepFixture = `dose,response,site
1,3,north
2,5,north
3,7,south
4,9,south
5,11,north
6,13,south
`

func loadSweepTable(t *testing.T) *ingest.Table {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(sweepFixture), 0o644))

	table, err := ingest.NewDataReader(path).Read()
	require.NoError(t, err)
	return table
}

func TestSweepAnalyzesColumnsAndPairs(t *testing.T) {
	table := loadSweepTable(t)
	grapher := graphs.NewTextGrapher(nil)
	svc := NewSweepService(NewAnalyzerService(memory.NewReportRepository(), grapher), grapher)

	outcomes, err := svc.Sweep(context.Background(), table, 0.05)
	require.NoError(t, err)

	// two single-column analyses plus one pair
	require.Len(t, outcomes, 3)

	kinds := map[report.Kind]int{}
	for _, o := range outcomes {
		kinds[o.Report.Kind]++
	}
	assert.Equal(t, 2, kinds[report.KindSingle])
	assert.Equal(t, 1, kinds[report.KindPair])
}

func TestSweepChartsCategoricalColumns(t *testing.T) {
	table := loadSweepTable(t)
	grapher := graphs.NewTextGrapher(nil)
	svc := NewSweepService(NewAnalyzerService(nil, nil), grapher)

	_, err := svc.Sweep(context.Background(), table, 0.05)
	require.NoError(t, err)

	var frequencies int
	for _, chart := range grapher.Charts() {
		if chart.ChartType == "frequency" {
			frequencies++
			assert.Equal(t, "site", chart.Title)
		}
	}
	assert.Equal(t, 1, frequencies)
}

func TestSweepHonorsCancelledContext(t *testing.T) {
	table := loadSweepTable(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := NewSweepService(NewAnalyzerService(nil, nil), nil)
	_, err := svc.Sweep(ctx, table, 0.05)
	assert.Error(t, err)
}
