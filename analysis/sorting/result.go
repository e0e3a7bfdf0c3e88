// Package sorting handles the external sort experiment: result rows, the
// theoretical phase and disk-operation estimates, and the charts comparing
// the two.
package sorting

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/inference-sim/expcharts/analysis"
	"github.com/inference-sim/expcharts/analysis/table"
)

// Column names in sorting_results.txt.
const (
	ColBufferNum  = "BUFFER_NUM"
	ColRecordNum  = "RECORD_NUM"
	ColPhases     = "PHASES"
	ColReadCount  = "READ_COUNT"
	ColWriteCount = "WRITE_COUNT"
)

// DefaultInput is the file the sort harness writes.
const DefaultInput = "sorting_results.txt"

// DefaultBlockSize is the blocking factor the harness runs with.
const DefaultBlockSize = 10

// Result is one sort run.
type Result struct {
	BufferNum  int // merge fan-in n, also the grouping key
	RecordNum  int64
	Phases     int64
	ReadCount  int64
	WriteCount int64
	DiskOps    int64 // ReadCount + WriteCount
}

// Group is all runs with the same buffer count.
type Group = analysis.Group[int, Result]

// FromTable converts a loaded table into results.
func FromTable(t *table.Table) ([]Result, error) {
	if err := t.Require(ColBufferNum, ColRecordNum, ColPhases, ColReadCount, ColWriteCount); err != nil {
		return nil, err
	}
	results := make([]Result, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		var r Result
		buf, err := t.Int(i, ColBufferNum)
		if err != nil {
			return nil, err
		}
		r.BufferNum = int(buf)
		if r.RecordNum, err = t.Int(i, ColRecordNum); err != nil {
			return nil, err
		}
		if r.Phases, err = t.Int(i, ColPhases); err != nil {
			return nil, err
		}
		if r.ReadCount, err = t.Int(i, ColReadCount); err != nil {
			return nil, err
		}
		if r.WriteCount, err = t.Int(i, ColWriteCount); err != nil {
			return nil, err
		}
		r.DiskOps = r.ReadCount + r.WriteCount
		results = append(results, r)
	}
	return results, nil
}

// Load reads and parses a sorting results file.
func Load(path string) ([]Result, error) {
	t, err := table.Load(path)
	if err != nil {
		return nil, err
	}
	results, err := FromTable(t)
	if err != nil {
		return nil, fmt.Errorf("reading sort results from %s: %w", path, err)
	}
	return results, nil
}

// GroupByBuffer groups runs by buffer count. Within a group runs are ordered
// by record count (stable, so repeated counts keep file order).
func GroupByBuffer(results []Result) []Group {
	groups := analysis.GroupBy(results, func(r Result) int { return r.BufferNum })
	for i := range groups {
		slices.SortStableFunc(groups[i].Rows, func(a, b Result) int {
			return cmp.Compare(a.RecordNum, b.RecordNum)
		})
	}
	return groups
}
