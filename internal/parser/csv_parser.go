package parser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ParseTuningData reads a semicolon-delimited tuning log from disk.
// The first bad row aborts the parse; no partial table is returned.
func ParseTuningData(filepath string) (*Table, error) {
	file, err := os.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to open tuning file: %w", err)
	}
	defer file.Close()

	return ReadTuningData(file)
}

// ReadTuningData parses tuning rows from r. Blank lines and lines starting
// with '#' are skipped.
func ReadTuningData(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.Comma = Delimiter
	reader.Comment = '#'
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1 // field count is checked per row below
	reader.ReuseRecord = true

	table := NewTable()
	values := make([]float64, NumColumns)

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return nil, &RowError{Line: pe.Line, Err: pe.Err}
			}
			return nil, fmt.Errorf("failed to read tuning data: %w", err)
		}
		line, _ := reader.FieldPos(0)

		if len(row) != NumColumns {
			return nil, &RowError{
				Line: line,
				Err:  fmt.Errorf("expected %d fields, found %d", NumColumns, len(row)),
			}
		}

		for i, field := range row {
			val, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, &RowError{Line: line, Column: ColumnNames[i], Err: err}
			}
			values[i] = val
		}
		table.appendRow(values)
	}

	return table, nil
}
