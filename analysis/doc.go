// Package analysis turns experiment result tables into comparison charts.
//
// # Reading Guide
//
//   - table/: loader for the whitespace-delimited result files
//   - sorting/: external sort runs, theoretical phase and disk-operation estimates, figures
//   - isam/: ISAM reorganization runs, maintenance vs operational cost split, figures
//   - render/: Figure description and PNG writer (gonum/plot)
//   - report/: optional per-group summary tables
//
// This package holds what the dataset packages share: grouping rows by a
// categorical parameter (buffer size, alpha) in ascending key order.
package analysis
