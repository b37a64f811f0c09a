package mdrsort

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// defaultSheetName is the sheet every new excelize file starts with.
const defaultSheetName = "Sheet1"

// WriteWorkbook writes grid as the only sheet of a new xlsx file at path.
// The file appears atomically; a failed write leaves nothing behind.
func WriteWorkbook(path, sheetName string, grid *Grid) error {
	f := excelize.NewFile()
	defer f.Close()

	if sheetName == "" {
		sheetName = defaultSheetName
	}
	if sheetName != defaultSheetName {
		if err := f.SetSheetName(defaultSheetName, sheetName); err != nil {
			return fmt.Errorf("name sheet %q: %w", sheetName, err)
		}
	}

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		return fmt.Errorf("open stream writer for %q: %w", sheetName, err)
	}
	for rowIdx, row := range grid.Rows {
		values := make([]any, len(row))
		for colIdx, c := range row {
			values[colIdx] = c.Value
		}
		cell, err := excelize.CoordinatesToCellName(1, rowIdx+1)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, values); err != nil {
			return fmt.Errorf("write row %d: %w", rowIdx+1, err)
		}
	}
	if err := sw.Flush(); err != nil {
		return fmt.Errorf("flush sheet %q: %w", sheetName, err)
	}

	return writeAtomic(path, 0o644, func(w io.Writer) error {
		if _, err := f.WriteTo(w); err != nil {
			return fmt.Errorf("write workbook %q: %w", path, err)
		}
		return nil
	})
}
