package mdrsort

import (
	"fmt"
	"io"

	"github.com/yamitzky/xlrd-go/xlrd"
)

// xlsWorkbook reads legacy BIFF workbooks using xlrd.
type xlsWorkbook struct {
	book *xlrd.Book
}

func openXLS(path string, data []byte) (*xlsWorkbook, error) {
	book, err := xlrd.OpenWorkbook(path, &xlrd.OpenWorkbookOptions{
		FileContents: data,
		Logfile:      io.Discard,
	})
	if err != nil {
		return nil, err
	}
	return &xlsWorkbook{book: book}, nil
}

func (wb *xlsWorkbook) Format() Format { return FormatXLS }

func (wb *xlsWorkbook) SheetNames() []string {
	return wb.book.SheetNames()
}

func (wb *xlsWorkbook) Sheet(name string) (*Grid, error) {
	sheet, err := wb.book.SheetByName(name)
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w: %v", name, ErrSheetNotFound, err)
	}
	if sheet == nil {
		return nil, fmt.Errorf("sheet %q: %w: not loaded", name, ErrSheetNotFound)
	}

	g := &Grid{Rows: make([][]Cell, sheet.NRows)}
	for rowx := 0; rowx < sheet.NRows; rowx++ {
		n := sheet.RowLen(rowx)
		cells := make([]Cell, n)
		for colx := 0; colx < n; colx++ {
			cells[colx] = xlsCell(sheet.CellType(rowx, colx), sheet.CellValue(rowx, colx))
		}
		g.Rows[rowx] = cells
	}
	return g, nil
}

// xlsCell converts an xlrd cell. Dates stay serial numbers; error cells
// render as their Excel text.
func xlsCell(ctype int, value any) Cell {
	switch ctype {
	case xlrd.XL_CELL_EMPTY, xlrd.XL_CELL_BLANK:
		return Cell{}
	case xlrd.XL_CELL_NUMBER, xlrd.XL_CELL_DATE:
		if f, ok := toFloat(value); ok {
			return NumberCell(f)
		}
	case xlrd.XL_CELL_BOOLEAN:
		if f, ok := toFloat(value); ok {
			return BoolCell(f != 0)
		}
		if b, ok := value.(bool); ok {
			return BoolCell(b)
		}
	case xlrd.XL_CELL_ERROR:
		if f, ok := toFloat(value); ok {
			if text, ok := xlrd.ErrorTextFromCode[byte(f)]; ok {
				return StringCell(text)
			}
		}
	}
	if s, ok := value.(string); ok {
		return StringCell(s)
	}
	if value == nil {
		return Cell{}
	}
	return StringCell(fmt.Sprint(value))
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint8:
		return float64(v), true
	default:
		return 0, false
	}
}

func (wb *xlsWorkbook) Close() error {
	wb.book.ReleaseResources()
	return nil
}
