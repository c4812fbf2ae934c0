// Package report defines the persisted form of an analysis run.
package report

import (
	"fmt"
	"strings"
	"time"

	"scistat/domain/core"
)

// Kind discriminates which dispatcher branch produced the report
type Kind string

const (
	KindSingle Kind = "single"
	KindPair   Kind = "pair"
	KindGroup  Kind = "group"
)

// Section is one rendered analysis block
type Section struct {
	Name string `json:"name" db:"name"`
	Body string `json:"body" db:"body"`
}

// Report aggregates everything one dispatcher invocation produced
type Report struct {
	ID             core.ReportID `json:"id"`
	Kind           Kind          `json:"kind"`
	Alpha          float64       `json:"alpha"`
	Title          string        `json:"title,omitempty"`
	Sections       []Section     `json:"sections"`
	DroppedMembers int           `json:"dropped_members,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
}

// Append adds a rendered section
func (r *Report) Append(name, body string) {
	r.Sections = append(r.Sections, Section{Name: name, Body: body})
}

// Text joins all sections into one plain-text report
func (r *Report) Text() string {
	bodies := make([]string, 0, len(r.Sections))
	for _, s := range r.Sections {
		bodies = append(bodies, s.Body)
	}
	return strings.Join(bodies, "\n")
}

// Markdown renders the report with one heading per section
func (r *Report) Markdown() string {
	var b strings.Builder
	title := r.Title
	if title == "" {
		title = fmt.Sprintf("Analysis (%s)", r.Kind)
	}
	fmt.Fprintf(&b, "# %s\n\n", title)
	if r.DroppedMembers > 0 {
		fmt.Fprintf(&b, "_%d group member(s) dropped during cleaning._\n\n", r.DroppedMembers)
	}
	for _, s := range r.Sections {
		fmt.Fprintf(&b, "## %s\n\n```\n%s\n```\n\n", s.Name, s.Body)
	}
	return b.String()
}
