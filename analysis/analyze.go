package analysis

import (
	"log"

	"scistat/domain/core"
	"scistat/domain/report"
	"scistat/domain/sample"
	"scistat/ports"
)

// Request describes one analysis invocation. The dispatcher classifies its
// shape in priority order: Groups, then the X/Y pair, then X alone.
type Request struct {
	X      []float64
	Y      []float64
	Groups *sample.Group

	// Labeling, in falling precedence per branch
	Name       string
	XName      string
	YName      string
	Categories string

	Alpha float64
}

func (r Request) alpha() float64 {
	if r.Alpha == 0 {
		return DefaultAlpha
	}
	return r.Alpha
}

// Outcome carries the rendered report plus the typed results of every test
// the dispatcher ran. Fields stay nil for tests the chosen branch never
// reached or that failed cleaning.
type Outcome struct {
	Report *report.Report

	GroupStats    *GroupStatsResult
	EqualVariance *EqualVarianceResult
	Normality     *NormResult
	TTest         *TTestResult
	Anova         *AnovaResult
	Kruskal       *KruskalResult
	Regression    *RegressionResult
	Correlation   *CorrelationResult
	VectorStats   *VectorStatsResult
}

// Analyze inspects the shape of the request and runs the matching chain of
// tests plus a corresponding plot. grapher may be nil to skip plotting.
// Returns core.ErrNoData when nothing analyzable was supplied.
func Analyze(req Request, grapher ports.Grapher) (*Outcome, error) {
	switch {
	case req.Groups != nil && req.Groups.Len() > 0:
		return analyzeGroups(req, grapher)
	case len(req.X) > 0 && len(req.Y) > 0:
		return analyzePair(req, grapher)
	case len(req.X) > 0:
		return analyzeSingle(req, grapher)
	default:
		return nil, core.ErrNoData
	}
}

// analyzeGroups compares group means and variances. Normal groups with
// equal variances get a one-way ANOVA when there are three or more of
// them; otherwise the non-parametric Kruskal-Wallis runs. Two groups
// always go through TTest, which re-derives pooled vs Welch on its own.
func analyzeGroups(req Request, grapher ports.Grapher) (*Outcome, error) {
	alpha := req.Alpha
	out := &Outcome{Report: &report.Report{Kind: report.KindGroup, Alpha: req.alpha(), Title: req.Name}}

	yLabel := fallback(req.YName, req.Name, "Values")
	xLabel := fallback(req.XName, req.Categories, "Categories")

	if grapher != nil {
		grapher.BoxPlot(req.Groups.Values(), req.Groups.Labels(), xLabel, yLabel)
	}

	gs, err := NewGroupStatistics(req.Groups, WithAlpha(req.alpha()))
	if err != nil {
		return nil, err
	}
	result := gs.Result()
	out.GroupStats = &result
	out.Report.DroppedMembers = result.DroppedMembers
	out.Report.Append(gs.Name(), gs.Output())

	values := req.Groups.Values()

	ev, err := NewEqualVariance(values, WithAlpha(req.alpha()))
	if err == nil {
		r := ev.Result()
		out.EqualVariance = &r
		out.Report.Append(ev.Name(), ev.Output())
	} else {
		log.Printf("[Analyze] equal variance check skipped: %v", err)
	}

	norm, err := NewGroupNormTest(req.Groups, WithAlpha(req.alpha()))
	if err == nil {
		r := norm.Result()
		out.Normality = &r
	}

	if len(values) == 2 {
		tt, err := NewTTest(values[0], values[1], withAlphaOpt(alpha)...)
		if err != nil {
			return out, nil
		}
		r := tt.Result()
		out.TTest = &r
		out.Report.Append(tt.Name(), tt.Output())
		return out, nil
	}

	normal := out.Normality != nil && out.Normality.PValue > req.alpha()
	equalVar := out.EqualVariance != nil && out.EqualVariance.PValue > req.alpha()

	if normal && equalVar {
		av, err := NewAnova(values, withAlphaOpt(alpha)...)
		if err == nil {
			r := av.Result()
			out.Anova = &r
			out.Report.Append(av.Name(), av.Output())
		}
	} else {
		kw, err := NewKruskal(values, withAlphaOpt(alpha)...)
		if err == nil {
			r := kw.Result()
			out.Kruskal = &r
			out.Report.Append(kw.Name(), kw.Output())
		}
	}
	return out, nil
}

// analyzePair runs regression and correlation on two paired samples
func analyzePair(req Request, grapher ports.Grapher) (*Outcome, error) {
	out := &Outcome{Report: &report.Report{Kind: report.KindPair, Alpha: req.alpha(), Title: req.Name}}

	xLabel := fallback(req.XName, "Predictor")
	yLabel := fallback(req.YName, req.Name, "Response")

	if grapher != nil {
		grapher.Scatter(req.X, req.Y, xLabel, yLabel)
	}

	lr, err := NewLinearRegression(req.X, req.Y, withAlphaOpt(req.Alpha)...)
	if err != nil {
		return nil, err
	}
	r := lr.Result()
	out.Regression = &r
	out.Report.Append(lr.Name(), lr.Output())

	corr, err := NewCorrelation(req.X, req.Y, withAlphaOpt(req.Alpha)...)
	if err != nil {
		return nil, err
	}
	cr := corr.Result()
	out.Correlation = &cr
	out.Report.Append(corr.Name(), corr.Output())

	return out, nil
}

// analyzeSingle summarizes one sample and checks it for normality
func analyzeSingle(req Request, grapher ports.Grapher) (*Outcome, error) {
	out := &Outcome{Report: &report.Report{Kind: report.KindSingle, Alpha: req.alpha(), Title: req.Name}}

	label := fallback(req.Name, req.XName, "Data")

	if grapher != nil {
		grapher.Histogram(req.X, label)
	}

	vs, err := NewVectorStatistics(req.X, true, withAlphaOpt(req.Alpha)...)
	if err != nil {
		return nil, err
	}
	r := vs.Result()
	out.VectorStats = &r
	out.Report.Append(vs.Name(), vs.Output())

	norm, err := NewNormTest(req.X, withAlphaOpt(req.Alpha)...)
	if err != nil {
		return nil, err
	}
	nr := norm.Result()
	out.Normality = &nr
	out.Report.Append(norm.Name(), norm.Output())

	return out, nil
}

// withAlphaOpt converts a possibly-zero alpha into constructor options
func withAlphaOpt(alpha float64) []Option {
	if alpha == 0 {
		return nil
	}
	return []Option{WithAlpha(alpha)}
}

// fallback returns the first non-empty candidate
func fallback(candidates ...string) string {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return ""
}
