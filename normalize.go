package mdrsort

import (
	"regexp"
	"strings"
)

// NormalizedColumns are the 0-based columns (E and F) rewritten before export.
var NormalizedColumns = []int{4, 5}

var (
	// a tab, or a literal backslash-t, with any spaces around it
	tabRun   = regexp.MustCompile(` *(?:\t|\\t) *`)
	spaceRun = regexp.MustCompile(` {2,}`)
)

// NormalizeText replaces tabs and escaped tabs with a space, collapses runs
// of spaces and trims surrounding whitespace. It is idempotent.
func NormalizeText(s string) string {
	s = tabRun.ReplaceAllString(s, " ")
	s = spaceRun.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// NormalizeColumns rewrites the given columns of grid in place. Every cell of
// a normalized column becomes text; absent values become "". Columns beyond
// the grid's width are skipped.
func NormalizeColumns(grid *Grid, cols ...int) {
	width := grid.Width()
	for _, col := range cols {
		if col < 0 || col >= width {
			continue
		}
		for row := range grid.Rows {
			text := NormalizeText(grid.At(row, col).Text())
			grid.Set(row, col, Cell{Value: text, Type: CellString})
		}
	}
}
