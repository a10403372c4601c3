package parser

import (
	"errors"
	"fmt"
	"slices"

	"github.com/samber/lo"
)

// DefaultFile is the tuning log read by the viewer.
const DefaultFile = "tuning.csv"

// NumColumns is the number of fields on every data row.
const NumColumns = 12

// Delimiter separates fields within a row.
const Delimiter = ';'

// ColumnNames are assigned to the fields positionally. The file carries no header.
var ColumnNames = []string{"it", "p", "n", "b", "r", "q", "pe", "ne", "be", "re", "qe", "e"}

var (
	// ErrMalformedRow is matched by every *RowError.
	ErrMalformedRow = errors.New("malformed row")
	// ErrUnknownColumn is returned when a column name is not one of ColumnNames.
	ErrUnknownColumn = errors.New("unknown column")
)

// RowError reports the first bad row of a tuning file.
type RowError struct {
	Line   int    // 1-based line number in the file
	Column string // empty when the field count is wrong
	Err    error
}

func (e *RowError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d, column %q: %v", e.Line, e.Column, e.Err)
}

func (e *RowError) Unwrap() []error {
	return []error{ErrMalformedRow, e.Err}
}

// Table holds the parsed tuning runs column by column.
// All columns have the same number of entries, in file order. A Table is
// read-only once parsed; Column hands out copies.
type Table struct {
	columns map[string][]float64
	numRows int
}

// NewTable returns an empty table with every named column allocated.
func NewTable() *Table {
	t := &Table{columns: make(map[string][]float64, NumColumns)}
	for _, name := range ColumnNames {
		t.columns[name] = make([]float64, 0)
	}
	return t
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return t.numRows
}

// Column returns a copy of the values of the named column.
func (t *Table) Column(name string) ([]float64, error) {
	if !lo.Contains(ColumnNames, name) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
	}
	return slices.Clone(t.columns[name]), nil
}

// appendRow adds one parsed row. values must hold NumColumns entries.
func (t *Table) appendRow(values []float64) {
	for i, name := range ColumnNames {
		t.columns[name] = append(t.columns[name], values[i])
	}
	t.numRows++
}
