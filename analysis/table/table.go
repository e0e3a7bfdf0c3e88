// Package table loads the whitespace-delimited result tables written by the
// experiment harnesses: one header line of column names followed by one line
// per observation.
package table

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Table is a parsed result file. Cells are kept as text; typed access goes
// through Int and Float so conversion errors can name the offending cell.
type Table struct {
	Columns []string
	rows    [][]string
	lines   []int // source line number of each row, for error messages
	index   map[string]int
}

// Load reads and parses the table at path.
func Load(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening result table: %w", err)
	}
	defer func() { _ = file.Close() }()

	t, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return t, nil
}

// Parse reads a table from r. Blank lines and lines starting with '#' are
// skipped. Every data line must have exactly as many fields as the header.
func Parse(r io.Reader) (*Table, error) {
	scanner := bufio.NewScanner(r)
	t := &Table{index: make(map[string]int)}

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)

		if t.Columns == nil {
			for i, name := range fields {
				if _, dup := t.index[name]; dup {
					return nil, fmt.Errorf("line %d: duplicate column %q", lineNo, name)
				}
				t.index[name] = i
			}
			t.Columns = fields
			continue
		}

		if len(fields) != len(t.Columns) {
			return nil, fmt.Errorf("line %d: got %d fields, header has %d", lineNo, len(fields), len(t.Columns))
		}
		t.rows = append(t.rows, fields)
		t.lines = append(t.lines, lineNo)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading table: %w", err)
	}
	if t.Columns == nil {
		return nil, fmt.Errorf("missing header line")
	}
	return t, nil
}

// Len returns the number of data rows.
func (t *Table) Len() int { return len(t.rows) }

// HasColumn reports whether the header names col.
func (t *Table) HasColumn(col string) bool {
	_, ok := t.index[col]
	return ok
}

// Require returns an error naming the first column in cols that the header lacks.
func (t *Table) Require(cols ...string) error {
	for _, col := range cols {
		if !t.HasColumn(col) {
			return fmt.Errorf("missing column %q (have %s)", col, strings.Join(t.Columns, ", "))
		}
	}
	return nil
}

// String returns the raw cell at row i, column col.
func (t *Table) String(i int, col string) (string, error) {
	j, ok := t.index[col]
	if !ok {
		return "", fmt.Errorf("missing column %q", col)
	}
	if i < 0 || i >= len(t.rows) {
		return "", fmt.Errorf("row %d out of range [0, %d)", i, len(t.rows))
	}
	return t.rows[i][j], nil
}

// Int parses the cell at row i, column col as a base-10 integer.
func (t *Table) Int(i int, col string) (int64, error) {
	s, err := t.String(i, col)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("line %d: column %s: invalid integer %q", t.lines[i], col, s)
	}
	return v, nil
}

// Float parses the cell at row i, column col as a finite float64.
func (t *Table) Float(i int, col string) (float64, error) {
	s, err := t.String(i, col)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("line %d: column %s: invalid number %q", t.lines[i], col, s)
	}
	return v, nil
}
