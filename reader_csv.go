package mdrsort

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// csvWorkbook exposes a delimited text file as a single implicit sheet.
// The first line is data, not a header.
type csvWorkbook struct {
	name string
	grid *Grid
}

func openCSV(name string, data []byte) (*csvWorkbook, error) {
	r := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM)))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return &csvWorkbook{name: name, grid: NewGrid(records)}, nil
}

func (wb *csvWorkbook) Format() Format { return FormatCSV }

func (wb *csvWorkbook) SheetNames() []string { return []string{wb.name} }

func (wb *csvWorkbook) Sheet(name string) (*Grid, error) {
	if name != wb.name {
		return nil, fmt.Errorf("sheet %q: %w", name, ErrSheetNotFound)
	}
	return wb.grid.Clone(), nil
}

func (wb *csvWorkbook) Close() error { return nil }
