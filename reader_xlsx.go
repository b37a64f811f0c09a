package mdrsort

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// xlsxWorkbook reads Office Open XML workbooks using excelize.
type xlsxWorkbook struct {
	file *excelize.File
}

func openXLSX(data []byte) (*xlsxWorkbook, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return &xlsxWorkbook{file: f}, nil
}

func (wb *xlsxWorkbook) Format() Format { return FormatXLSX }

func (wb *xlsxWorkbook) SheetNames() []string {
	return wb.file.GetSheetList()
}

// Sheet reads every row of the sheet. Text comes from the formatted cell
// value; numeric and boolean cells keep their typed value.
func (wb *xlsxWorkbook) Sheet(name string) (*Grid, error) {
	if idx, err := wb.file.GetSheetIndex(name); err != nil || idx < 0 {
		return nil, fmt.Errorf("sheet %q: %w", name, ErrSheetNotFound)
	}

	rows, err := wb.file.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("read rows from sheet %q: %w", name, err)
	}

	g := &Grid{Rows: make([][]Cell, len(rows))}
	for rowIdx, row := range rows {
		cells := make([]Cell, len(row))
		for colIdx, val := range row {
			if val == "" {
				continue
			}
			cellName := CellRef{Row: rowIdx, Col: colIdx}.String()
			cells[colIdx] = wb.typedCell(name, cellName, val)
		}
		g.Rows[rowIdx] = cells
	}
	return g, nil
}

// typedCell promotes numbers and booleans; everything else stays text.
func (wb *xlsxWorkbook) typedCell(sheet, cell, formatted string) Cell {
	ct, err := wb.file.GetCellType(sheet, cell)
	if err != nil {
		return StringCell(formatted)
	}
	switch ct {
	case excelize.CellTypeBool:
		if b, err := strconv.ParseBool(formatted); err == nil {
			return BoolCell(b)
		}
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		raw, err := wb.file.GetCellValue(sheet, cell, excelize.Options{RawCellValue: true})
		if err == nil {
			if f, err := strconv.ParseFloat(raw, 64); err == nil && raw == formatted {
				return NumberCell(f)
			}
		}
	}
	return StringCell(formatted)
}

func (wb *xlsxWorkbook) Close() error {
	return wb.file.Close()
}
