package analysis

import (
	"fmt"
	"strings"

	"github.com/montanaflynn/stats"

	"scistat/domain/core"
	"scistat/domain/sample"
)

const groupStatsName = "Group Statistics"

// GroupRow is the descriptive summary of one group member
type GroupRow struct {
	Group  string
	Count  int
	Mean   float64
	StdDev float64
	Min    float64
	Median float64
	Max    float64
}

// GroupStatsResult holds one row per surviving group, in supplied order.
// DroppedMembers counts the members removed by cleaning.
type GroupStatsResult struct {
	Rows           []GroupRow
	DroppedMembers int
}

// GroupStatistics reports per-group descriptive statistics as an ordered,
// aligned table.
type GroupStatistics struct {
	opts   options
	result GroupStatsResult
}

// NewGroupStatistics cleans each member independently and summarizes the
// survivors. Members failing cleaning are dropped, not fatal.
func NewGroupStatistics(g *sample.Group, opts ...Option) (*GroupStatistics, error) {
	o := buildOptions(opts)
	clean, dropped := sample.CleanGroup(g, 1)
	if clean.Len() == 0 {
		return nil, core.ErrEmptyGroup
	}

	t := &GroupStatistics{opts: o}
	t.result.DroppedMembers = dropped
	for _, label := range clean.Labels() {
		member, _ := clean.Member(label)
		values := member.Values()

		mean, _ := stats.Mean(values)
		sd, _ := stats.StandardDeviationSample(values)
		min, _ := stats.Min(values)
		median, _ := stats.Median(values)
		max, _ := stats.Max(values)

		t.result.Rows = append(t.result.Rows, GroupRow{
			Group:  label,
			Count:  member.Len(),
			Mean:   mean,
			StdDev: sd,
			Min:    min,
			Median: median,
			Max:    max,
		})
	}
	o.display(t)
	return t, nil
}

// Name returns the display name of the analysis
func (t *GroupStatistics) Name() string { return groupStatsName }

// Result returns the typed result record
func (t *GroupStatistics) Result() GroupStatsResult { return t.result }

// Output renders an aligned multi-row table, one row per group. Column
// width is fixed at 12; a column followed by a negative number gives up
// one character so the minus sign does not break the alignment.
func (t *GroupStatistics) Output() string {
	const size = 12
	labels := []string{"Count", "Mean", "Std.", "Min", "Q2", "Max", "Group"}

	var header strings.Builder
	for _, s := range labels {
		header.WriteString(s)
		header.WriteString(strings.Repeat(" ", size-len(s)))
	}

	rows := make([]string, 0, len(t.result.Rows))
	for _, row := range t.result.Rows {
		cells := []string{
			fmt.Sprintf("%d", row.Count),
			fmt.Sprintf("%.5f", row.Mean),
			fmt.Sprintf("%.5f", row.StdDev),
			fmt.Sprintf("%.5f", row.Min),
			fmt.Sprintf("%.5f", row.Median),
			fmt.Sprintf("%.5f", row.Max),
			row.Group,
		}
		rows = append(rows, alignRow(cells, size))
	}

	return strings.Join([]string{
		" ",
		groupStatsName,
		" ",
		header.String(),
		strings.Repeat("-", header.Len()),
		strings.Join(rows, "\n"),
		" ",
	}, "\n")
}

// alignRow lays cells out in fixed-width columns, shifting a column by one
// character when the next cell starts with a minus sign
func alignRow(cells []string, size int) string {
	var line strings.Builder
	offset := 0
	shift := false
	for i, cell := range cells {
		if offset == 1 || shift {
			offset = -1
			shift = false
		} else {
			offset = 0
		}
		if i+1 < len(cells) && strings.HasPrefix(cells[i+1], "-") {
			if offset == -1 {
				offset = 0
				shift = true
			} else {
				offset = 1
			}
		}
		line.WriteString(cell)
		pad := size - offset - len(cell)
		if pad > 0 {
			line.WriteString(strings.Repeat(" ", pad))
		}
	}
	return strings.TrimRight(line.String(), " ")
}
