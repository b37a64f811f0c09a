package mdrsort

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// CellRef addresses one cell of a sheet by 0-based position.
type CellRef struct {
	Row int
	Col int
}

// ParseCellRef reads an A1-style address such as "I13" or "$B$1".
func ParseCellRef(s string) (CellRef, error) {
	col, row, err := excelize.CellNameToCoordinates(strings.TrimSpace(s))
	if err != nil {
		return CellRef{}, fmt.Errorf("invalid cell reference %q: %w", s, err)
	}
	return CellRef{Row: row - 1, Col: col - 1}, nil
}

// MustCellRef is like ParseCellRef but panics on malformed input.
func MustCellRef(s string) CellRef {
	ref, err := ParseCellRef(s)
	if err != nil {
		panic(err)
	}
	return ref
}

// String returns the A1 name of the cell, or "" for negative coordinates.
func (c CellRef) String() string {
	name, err := excelize.CoordinatesToCellName(c.Col+1, c.Row+1)
	if err != nil {
		return ""
	}
	return name
}
