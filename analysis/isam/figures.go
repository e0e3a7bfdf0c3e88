package isam

import (
	"fmt"
	"strings"

	"gonum.org/v1/plot/vg"

	"github.com/inference-sim/expcharts/analysis/render"
)

// Charts produced per alpha and for the whole table.
const (
	PerGroupCharts = 2
	CombinedCharts = 2
)

const (
	labelThreshold      = "Reorganization Threshold"
	labelThresholdRatio = "Reorganization Threshold (V/N ratio)"
)

type column func(Result) int64

func (c column) of(rows []Result) []float64 {
	out := make([]float64, len(rows))
	for i, r := range rows {
		out[i] = float64(c(r))
	}
	return out
}

func thresholds(rows []Result) []float64 {
	out := make([]float64, len(rows))
	for i, r := range rows {
		out[i] = r.Threshold
	}
	return out
}

// tradeoff draws maintenance, operational and total cost of one kind of
// disk access (noun: "Reads" or "Writes") against the threshold.
func tradeoff(g Group, noun string, reorg, operational, total column) render.Figure {
	x := thresholds(g.Rows)
	return render.Figure{
		Name: fmt.Sprintf("%s_tradeoff_alpha_%s", strings.ToLower(noun), alphaFileLabel(g.Key)),
		Panels: []render.Panel{{
			Title:  fmt.Sprintf("%s Trade-off (Alpha=%s)", noun, AlphaLabel(g.Key)),
			XLabel: labelThreshold,
			YLabel: "Number of Disk " + noun,
			Series: []render.Series{
				{Label: "Maintenance (Reorg " + noun + ")", X: x, Y: reorg.of(g.Rows),
					Dashed: true, Marker: render.Square, Color: render.Red},
				{Label: "Operational (Search/Insert " + noun + ")", X: x, Y: operational.of(g.Rows),
					Marker: render.Triangle, Color: render.Green},
				{Label: "Total " + noun, X: x, Y: total.of(g.Rows),
					Marker: render.Circle, Color: render.Blue, Width: vg.Points(2.5)},
			},
		}},
	}
}

// GroupFigures returns the per-alpha charts: the reads and writes trade-off.
func GroupFigures(g Group) []render.Figure {
	return []render.Figure{
		tradeoff(g, "Reads",
			func(r Result) int64 { return r.ReorgReads },
			func(r Result) int64 { return r.OperationalReads },
			func(r Result) int64 { return r.TotalReads }),
		tradeoff(g, "Writes",
			func(r Result) int64 { return r.ReorgWrites },
			func(r Result) int64 { return r.OperationalWrites },
			func(r Result) int64 { return r.TotalWrites }),
	}
}

// overlay draws one line per alpha.
func overlay(groups []Group, name, panelTitle, xLabel, yLabel string, y column) render.Figure {
	p := render.Panel{Title: panelTitle, XLabel: xLabel, YLabel: yLabel}
	for _, g := range groups {
		p.Series = append(p.Series, render.Series{
			Label:  "Alpha=" + AlphaLabel(g.Key),
			X:      thresholds(g.Rows),
			Y:      y.of(g.Rows),
			Marker: render.Circle,
		})
	}
	return render.Figure{Name: name, Panels: []render.Panel{p}}
}

// CombinedFigures returns the cross-alpha charts: reorganization count and
// total writes against the threshold.
func CombinedFigures(groups []Group) []render.Figure {
	return []render.Figure{
		overlay(groups, "reorgs_vs_threshold",
			"Impact of Threshold on Reorganization Frequency", labelThresholdRatio, "Number of Reorganizations",
			func(r Result) int64 { return r.Reorgs }),
		overlay(groups, "writes_vs_threshold",
			"Impact of Threshold on Total Write Operations", labelThreshold, "Total Writes",
			func(r Result) int64 { return r.TotalWrites }),
	}
}

// Figures returns every chart: the combined charts, then the per-alpha ones.
func Figures(groups []Group) []render.Figure {
	figs := make([]render.Figure, 0, len(groups)*PerGroupCharts+CombinedCharts)
	figs = append(figs, CombinedFigures(groups)...)
	for _, g := range groups {
		figs = append(figs, GroupFigures(g)...)
	}
	return figs
}
