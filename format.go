package mdrsort

import (
	"path/filepath"
	"strings"
)

// Format identifies how a tabular file is read.
type Format int

const (
	FormatUnknown Format = iota
	FormatXLSX
	FormatXLS
	FormatCSV
)

// String returns the canonical extension-less name of the format.
func (f Format) String() string {
	switch f {
	case FormatXLSX:
		return "xlsx"
	case FormatXLS:
		return "xls"
	case FormatCSV:
		return "csv"
	default:
		return "unknown"
	}
}

// IsWorkbook reports whether the format can hold more than one sheet.
func (f Format) IsWorkbook() bool {
	return f == FormatXLSX || f == FormatXLS
}

// Extensions accepted by the pipeline, lower-case with the leading dot.
var acceptedExtensions = []string{".xlsx", ".xls", ".csv"}

// DetectFormat derives the format from the file extension, case-insensitively.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return FormatXLSX
	case ".xls":
		return FormatXLS
	case ".csv":
		return FormatCSV
	default:
		return FormatUnknown
	}
}

// stem returns the file name without directory and extension.
func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
