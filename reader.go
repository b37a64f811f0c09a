package mdrsort

import (
	"fmt"
	"os"
)

// Workbook is an opened tabular file. Delimited text files expose a single
// implicit sheet named after the file stem.
type Workbook interface {
	// Format returns the format the workbook was read as.
	Format() Format
	// SheetNames returns the sheet names in workbook order.
	SheetNames() []string
	// Sheet extracts a full sheet as a grid.
	Sheet(name string) (*Grid, error)
	// Close releases resources held by the reader.
	Close() error
}

// ReadFileFunc loads a file's bytes. os.ReadFile is the default; tests swap
// it to simulate files held open by another process.
type ReadFileFunc func(path string) ([]byte, error)

// OpenTabular reads path and parses it with the reader for its extension.
// Read failures caused by another process holding the file satisfy
// IsTransient; content failures are wrapped in *ParseError.
func OpenTabular(path string, readFile ReadFileFunc) (Workbook, error) {
	if readFile == nil {
		readFile = os.ReadFile
	}
	format := DetectFormat(path)
	if format == FormatUnknown {
		return nil, fmt.Errorf("open %q: %w", path, ErrUnsupportedFormat)
	}

	data, err := readFile(path)
	if err != nil {
		if looksLocked(err) {
			return nil, fmt.Errorf("read %q: %w", path, &lockedError{err})
		}
		return nil, &ParseError{Path: path, Format: format, Err: err}
	}

	var wb Workbook
	switch format {
	case FormatXLSX:
		wb, err = openXLSX(data)
	case FormatXLS:
		wb, err = openXLS(path, data)
	case FormatCSV:
		wb, err = openCSV(stem(path), data)
	}
	if err != nil {
		return nil, &ParseError{Path: path, Format: format, Err: err}
	}
	return wb, nil
}

// FirstSheet returns the grid of the workbook's first sheet.
func FirstSheet(wb Workbook) (*Grid, error) {
	names := wb.SheetNames()
	if len(names) == 0 {
		return nil, ErrNoSheets
	}
	return wb.Sheet(names[0])
}
