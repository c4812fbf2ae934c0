package ports

// Grapher is the plotting collaborator consumed by the analysis dispatcher.
// Every entry point is fire-and-forget: the implementation renders and
// optionally persists a visual artifact; nothing is returned to the
// analysis core and failures must not abort an analysis.
type Grapher interface {
	// Histogram renders the distribution of one sample
	Histogram(data []float64, label string)

	// Scatter renders paired samples against each other
	Scatter(x, y []float64, xLabel, yLabel string)

	// BoxPlot renders one box per group, in the supplied order
	BoxPlot(groups [][]float64, labels []string, xLabel, yLabel string)

	// Frequency renders counts of categorical values
	Frequency(categories []string, counts []int, label string)
}
