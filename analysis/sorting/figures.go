package sorting

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/plot/vg"

	"github.com/inference-sim/expcharts/analysis/render"
)

// Charts produced per buffer size and for the whole table.
const (
	PerGroupCharts = 3
	CombinedCharts = 1
)

const (
	labelRecords = "Record Count"
	labelPhases  = "Number of Phases"
	labelDiskOps = "Total Disk Operations"
)

// curves holds one group's x values and the actual and theoretical y values.
type curves struct {
	records       []float64
	phases        []float64
	diskOps       []float64
	theoryPhases  []float64
	theoryDiskOps []float64
	hasTheory     bool
}

func buildCurves(g Group, blockSize int) curves {
	c := curves{
		records: make([]float64, len(g.Rows)),
		phases:  make([]float64, len(g.Rows)),
		diskOps: make([]float64, len(g.Rows)),
	}
	for i, r := range g.Rows {
		c.records[i] = float64(r.RecordNum)
		c.phases[i] = float64(r.Phases)
		c.diskOps[i] = float64(r.DiskOps)
	}
	if !ValidParams(g.Key, blockSize) {
		logrus.Warnf("buffer size %d, block size %d: theoretical curves undefined, plotting actual values only", g.Key, blockSize)
		return c
	}
	c.theoryPhases = PhasesCurve(c.records, g.Key, blockSize)
	c.theoryDiskOps = DiskOpsCurve(c.records, g.Key, blockSize)
	c.hasTheory = true
	return c
}

// GroupFigures returns the per-buffer charts: phases, disk operations, and
// phases on a log x axis.
func GroupFigures(g Group, blockSize int) []render.Figure {
	c := buildCurves(g, blockSize)

	phasesPanel := func(logX bool) render.Panel {
		p := render.Panel{
			Title:  fmt.Sprintf("Phases vs Record Count (Buffer Size: %d)", g.Key),
			XLabel: labelRecords,
			YLabel: labelPhases,
			LogX:   logX,
			Series: []render.Series{{Label: "Actual", X: c.records, Y: c.phases, Marker: render.Circle}},
		}
		if c.hasTheory {
			p.Series = append(p.Series, render.Series{
				Label: "Theoretical", X: c.records, Y: c.theoryPhases, Dashed: true, Marker: render.Cross,
			})
		}
		return p
	}

	diskPanel := render.Panel{
		Title:  fmt.Sprintf("Total Disk Operations vs Record Count (Buffer Size: %d)", g.Key),
		XLabel: labelRecords,
		YLabel: labelDiskOps,
		Series: []render.Series{{
			Label: "Actual", X: c.records, Y: c.diskOps, Marker: render.Square, Color: render.Orange,
		}},
	}
	if c.hasTheory {
		diskPanel.Series = append(diskPanel.Series, render.Series{
			Label: "Theoretical", X: c.records, Y: c.theoryDiskOps, Dashed: true, Marker: render.Diamond, Color: render.Red,
		})
	}

	return []render.Figure{
		{Name: fmt.Sprintf("phases_vs_records_buffer_%d", g.Key), Panels: []render.Panel{phasesPanel(false)}},
		{Name: fmt.Sprintf("disk_ops_vs_records_buffer_%d", g.Key), Panels: []render.Panel{diskPanel}},
		{Name: fmt.Sprintf("phases_vs_records_buffer_%d_log", g.Key), Panels: []render.Panel{phasesPanel(true)}},
	}
}

// CombinedFigure overlays every buffer size: phases on top, disk operations
// below, both on a log x axis.
func CombinedFigure(groups []Group, blockSize int) render.Figure {
	phases := render.Panel{
		Title: "Phases vs Record Count (All Buffer Sizes)", XLabel: labelRecords, YLabel: labelPhases, LogX: true,
	}
	disk := render.Panel{
		Title: "Total Disk Operations vs Record Count (All Buffer Sizes)", XLabel: labelRecords, YLabel: labelDiskOps, LogX: true,
	}
	for _, g := range groups {
		c := buildCurves(g, blockSize)
		actual := fmt.Sprintf("Actual Buffer %d", g.Key)
		theory := fmt.Sprintf("Theoretical Buffer %d", g.Key)

		phases.Series = append(phases.Series, render.Series{Label: actual, X: c.records, Y: c.phases, Marker: render.Circle})
		disk.Series = append(disk.Series, render.Series{Label: actual, X: c.records, Y: c.diskOps, Marker: render.Square})
		if c.hasTheory {
			phases.Series = append(phases.Series, render.Series{Label: theory, X: c.records, Y: c.theoryPhases, Dashed: true})
			disk.Series = append(disk.Series, render.Series{Label: theory, X: c.records, Y: c.theoryDiskOps, Dashed: true})
		}
	}
	return render.Figure{
		Name:   "combined_comparison",
		Width:  12 * vg.Inch,
		Height: 10 * vg.Inch,
		Panels: []render.Panel{phases, disk},
	}
}

// Figures returns every chart for groups: the per-group charts in group
// order followed by the combined chart.
func Figures(groups []Group, blockSize int) []render.Figure {
	figs := make([]render.Figure, 0, len(groups)*PerGroupCharts+CombinedCharts)
	for _, g := range groups {
		figs = append(figs, GroupFigures(g, blockSize)...)
	}
	return append(figs, CombinedFigure(groups, blockSize))
}
