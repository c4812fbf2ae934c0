package sample

import "strconv"

// Group is an ordered collection of labeled samples. Labels are unique and
// insertion order is preserved for reporting.
type Group struct {
	labels  []string
	members map[string]Sample
}

// NewGroup creates an empty group
func NewGroup() *Group {
	return &Group{members: make(map[string]Sample)}
}

// GroupFromSlices builds a group from parallel label and value slices.
// When labels is nil, members get ascending integer labels starting at 1.
func GroupFromSlices(labels []string, values [][]float64) *Group {
	g := NewGroup()
	for i, v := range values {
		label := strconv.Itoa(i + 1)
		if labels != nil && i < len(labels) {
			label = labels[i]
		}
		g.Add(label, New(v))
	}
	return g
}

// GroupFromMap builds a group from a labeled map, ordered by the given
// label order. Labels missing from the map are skipped.
func GroupFromMap(data map[string][]float64, order []string) *Group {
	g := NewGroup()
	for _, label := range order {
		v, ok := data[label]
		if !ok {
			continue
		}
		g.Add(label, New(v))
	}
	return g
}

// Add appends a labeled member, replacing any member with the same label
func (g *Group) Add(label string, s Sample) {
	if _, exists := g.members[label]; !exists {
		g.labels = append(g.labels, label)
	}
	g.members[label] = s
}

// Len returns the number of members
func (g *Group) Len() int {
	return len(g.labels)
}

// Labels returns the member labels in insertion order
func (g *Group) Labels() []string {
	labels := make([]string, len(g.labels))
	copy(labels, g.labels)
	return labels
}

// Member returns the sample stored under label
func (g *Group) Member(label string) (Sample, bool) {
	s, ok := g.members[label]
	return s, ok
}

// Samples returns the member samples in insertion order
func (g *Group) Samples() []Sample {
	samples := make([]Sample, 0, len(g.labels))
	for _, label := range g.labels {
		samples = append(samples, g.members[label])
	}
	return samples
}

// Values returns the member values in insertion order
func (g *Group) Values() [][]float64 {
	values := make([][]float64, 0, len(g.labels))
	for _, s := range g.Samples() {
		values = append(values, s.Values())
	}
	return values
}
