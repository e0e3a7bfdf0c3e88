// Package report prints per-group summaries of the experiment results next to
// the charts: how far the sort runs are from the theoretical estimates, and
// which reorganization threshold was cheapest for each alpha.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/montanaflynn/stats"
	"github.com/olekukonko/tablewriter"

	"github.com/inference-sim/expcharts/analysis/isam"
	"github.com/inference-sim/expcharts/analysis/sorting"
)

// SortSummary compares one buffer size's runs with the theoretical model.
type SortSummary struct {
	BufferNum int
	Runs      int
	// Mean of actual - theoretical phases.
	PhaseDelta float64
	// Mean and max of actual / theoretical disk operations.
	DiskOpsRatio    float64
	DiskOpsRatioMax float64
	// False when the group has no rows or the model is undefined for it.
	Comparable bool
}

// SummarizeSorting builds one SortSummary per group.
func SummarizeSorting(groups []sorting.Group, blockSize int) []SortSummary {
	out := make([]SortSummary, 0, len(groups))
	for _, g := range groups {
		s := SortSummary{BufferNum: g.Key, Runs: len(g.Rows)}
		if len(g.Rows) == 0 || !sorting.ValidParams(g.Key, blockSize) {
			out = append(out, s)
			continue
		}
		var deltas, ratios stats.Float64Data
		for _, r := range g.Rows {
			n := float64(r.RecordNum)
			deltas = append(deltas, float64(r.Phases)-float64(sorting.Phases(n, g.Key, blockSize)))
			if theory := sorting.DiskOps(n, g.Key, blockSize); theory > 0 {
				ratios = append(ratios, float64(r.DiskOps)/theory)
			}
		}
		s.PhaseDelta, _ = stats.Mean(deltas)
		if len(ratios) > 0 {
			s.DiskOpsRatio, _ = stats.Mean(ratios)
			s.DiskOpsRatioMax, _ = stats.Max(ratios)
			s.Comparable = true
		}
		out = append(out, s)
	}
	return out
}

// ISAMSummary describes one alpha's threshold sweep.
type ISAMSummary struct {
	Alpha         float64
	Runs          int
	ReorgsMin     int64
	ReorgsMax     int64
	BestThreshold float64
	BestCost      int64 // total reads + writes at BestThreshold
}

// SummarizeISAM builds one ISAMSummary per group. Ties on cost go to the
// lower threshold.
func SummarizeISAM(groups []isam.Group) []ISAMSummary {
	out := make([]ISAMSummary, 0, len(groups))
	for _, g := range groups {
		s := ISAMSummary{Alpha: g.Key, Runs: len(g.Rows)}
		if len(g.Rows) > 0 {
			var reorgs stats.Float64Data
			best := g.Rows[0]
			for _, r := range g.Rows {
				reorgs = append(reorgs, float64(r.Reorgs))
				if r.TotalOps() < best.TotalOps() ||
					(r.TotalOps() == best.TotalOps() && r.Threshold < best.Threshold) {
					best = r
				}
			}
			lo, _ := stats.Min(reorgs)
			hi, _ := stats.Max(reorgs)
			s.ReorgsMin, s.ReorgsMax = int64(lo), int64(hi)
			s.BestThreshold, s.BestCost = best.Threshold, best.TotalOps()
		}
		out = append(out, s)
	}
	return out
}

// WriteSorting prints the sort summary table to w.
func WriteSorting(w io.Writer, groups []sorting.Group, blockSize int) {
	fmt.Fprintf(w, "=== External Sort vs Theory (block size %d) ===\n", blockSize)
	t := newTable(w, "Buffer", "Runs", "Mean Phase Delta", "Mean Disk Ops Ratio", "Max Disk Ops Ratio")
	for _, s := range SummarizeSorting(groups, blockSize) {
		row := []string{strconv.Itoa(s.BufferNum), strconv.Itoa(s.Runs), "-", "-", "-"}
		if s.Comparable {
			row[2] = fmt.Sprintf("%+.2f", s.PhaseDelta)
			row[3] = fmt.Sprintf("%.3f", s.DiskOpsRatio)
			row[4] = fmt.Sprintf("%.3f", s.DiskOpsRatioMax)
		}
		t.Append(row)
	}
	t.Render()
}

// WriteISAM prints the ISAM summary table to w.
func WriteISAM(w io.Writer, groups []isam.Group) {
	fmt.Fprintln(w, "=== ISAM Reorganization Threshold Sweep ===")
	t := newTable(w, "Alpha", "Runs", "Reorgs", "Best Threshold", "Reads+Writes")
	for _, s := range SummarizeISAM(groups) {
		row := []string{isam.AlphaLabel(s.Alpha), strconv.Itoa(s.Runs), "-", "-", "-"}
		if s.Runs > 0 {
			row[2] = fmt.Sprintf("%d-%d", s.ReorgsMin, s.ReorgsMax)
			row[3] = strconv.FormatFloat(s.BestThreshold, 'f', -1, 64)
			row[4] = strconv.FormatInt(s.BestCost, 10)
		}
		t.Append(row)
	}
	t.Render()
}

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	t := tablewriter.NewWriter(w)
	t.SetHeader(header)
	t.SetAlignment(tablewriter.ALIGN_RIGHT)
	t.SetAutoFormatHeaders(false)
	return t
}
