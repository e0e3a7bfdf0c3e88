// Package isam handles the ISAM reorganization experiment: one row per
// (alpha, threshold) run, with disk reads and writes split into
// reorganization (maintenance) and operational (search/insert) cost.
package isam

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/inference-sim/expcharts/analysis"
	"github.com/inference-sim/expcharts/analysis/table"
)

// Column names in isam_experiments.txt.
const (
	ColAlpha       = "ALPHA"
	ColThreshold   = "THRESHOLD"
	ColReorgs      = "REORGS"
	ColReorgReads  = "REORG_READS"
	ColReorgWrites = "REORG_WRITES"
	ColTotalReads  = "TOTAL_READS"
	ColTotalWrites = "TOTAL_WRITES"
)

// DefaultInput is the file perform_tests.sh writes.
const DefaultInput = "isam_experiments.txt"

// Result is one ISAM run.
type Result struct {
	Alpha       float64
	Threshold   float64
	Reorgs      int64
	ReorgReads  int64
	ReorgWrites int64
	TotalReads  int64
	TotalWrites int64

	// Derived: cost of searches and inserts alone.
	OperationalReads  int64
	OperationalWrites int64
}

// TotalOps is reads plus writes.
func (r Result) TotalOps() int64 { return r.TotalReads + r.TotalWrites }

// Group is all runs with the same alpha.
type Group = analysis.Group[float64, Result]

// FromTable converts a loaded table into results.
func FromTable(t *table.Table) ([]Result, error) {
	if err := t.Require(ColAlpha, ColThreshold, ColReorgs, ColReorgReads, ColReorgWrites, ColTotalReads, ColTotalWrites); err != nil {
		return nil, err
	}
	results := make([]Result, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		var r Result
		var err error
		if r.Alpha, err = t.Float(i, ColAlpha); err != nil {
			return nil, err
		}
		if r.Threshold, err = t.Float(i, ColThreshold); err != nil {
			return nil, err
		}
		ints := []struct {
			col string
			dst *int64
		}{
			{ColReorgs, &r.Reorgs},
			{ColReorgReads, &r.ReorgReads},
			{ColReorgWrites, &r.ReorgWrites},
			{ColTotalReads, &r.TotalReads},
			{ColTotalWrites, &r.TotalWrites},
		}
		for _, f := range ints {
			if *f.dst, err = t.Int(i, f.col); err != nil {
				return nil, err
			}
		}
		r.OperationalReads = r.TotalReads - r.ReorgReads
		r.OperationalWrites = r.TotalWrites - r.ReorgWrites
		results = append(results, r)
	}
	return results, nil
}

// Load reads and parses an ISAM experiments file.
func Load(path string) ([]Result, error) {
	t, err := table.Load(path)
	if err != nil {
		return nil, err
	}
	results, err := FromTable(t)
	if err != nil {
		return nil, fmt.Errorf("reading ISAM results from %s: %w", path, err)
	}
	return results, nil
}

// GroupByAlpha groups runs by alpha, each group ordered by threshold.
func GroupByAlpha(results []Result) []Group {
	groups := analysis.GroupBy(results, func(r Result) float64 { return r.Alpha })
	for i := range groups {
		slices.SortStableFunc(groups[i].Rows, func(a, b Result) int {
			return cmp.Compare(a.Threshold, b.Threshold)
		})
	}
	return groups
}

// AlphaLabel formats alpha for titles and legends: shortest form, but always
// with a fractional part ("1.0", "0.25").
func AlphaLabel(alpha float64) string {
	s := strconv.FormatFloat(alpha, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}

// alphaFileLabel is AlphaLabel with '.' replaced so it is safe in file names.
func alphaFileLabel(alpha float64) string {
	return strings.ReplaceAll(AlphaLabel(alpha), ".", "_")
}
