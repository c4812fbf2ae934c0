package graphs

// ChartPoint is a single labeled value on a chart
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// ChartSeries is a named sequence of points
type ChartSeries struct {
	Name string       `json:"name"`
	Data []ChartPoint `json:"data"`
}

// ChartConfig describes a chart without rendering it; consumers decide how
// to draw it (the bundled writer sketches it as text).
type ChartConfig struct {
	ChartType string       `json:"chart_type"`
	Title     string       `json:"title"`
	XAxis     string       `json:"x_axis,omitempty"`
	YAxis     string       `json:"y_axis,omitempty"`
	Series    []ChartSeries `json:"series"`
}
