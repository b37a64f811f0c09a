package mdrsort

import "strconv"

// CellType represents the type of data in a cell.
type CellType int

const (
	CellBlank CellType = iota
	CellString
	CellNumber
	CellBoolean
)

// String returns a human-readable name for the CellType.
func (ct CellType) String() string {
	switch ct {
	case CellBlank:
		return "Blank"
	case CellString:
		return "String"
	case CellNumber:
		return "Number"
	case CellBoolean:
		return "Boolean"
	default:
		return "Unknown"
	}
}

// Cell holds one value of a sheet. The zero Cell is the absent cell.
type Cell struct {
	Value any      // string, float64, bool or nil
	Type  CellType // value type
}

// StringCell returns a text cell; empty text yields the absent cell.
func StringCell(s string) Cell {
	if s == "" {
		return Cell{}
	}
	return Cell{Value: s, Type: CellString}
}

// NumberCell returns a numeric cell.
func NumberCell(f float64) Cell {
	return Cell{Value: f, Type: CellNumber}
}

// BoolCell returns a boolean cell.
func BoolCell(b bool) Cell {
	return Cell{Value: b, Type: CellBoolean}
}

// IsBlank reports whether the cell is absent or empty.
func (c Cell) IsBlank() bool {
	return c.Type == CellBlank || c.Value == nil
}

// Text renders the cell as text. Absent cells render as "".
func (c Cell) Text() string {
	switch v := c.Value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		if v {
			return "TRUE"
		}
		return "FALSE"
	default:
		return ""
	}
}

// Grid is an in-memory rectangular view of one sheet: ordered rows of
// ordered cells. Rows may be ragged; missing positions read as absent.
type Grid struct {
	Rows [][]Cell
}

// NewGrid builds a Grid from rows of text, the shape produced by most readers.
func NewGrid(rows [][]string) *Grid {
	g := &Grid{Rows: make([][]Cell, len(rows))}
	for i, row := range rows {
		cells := make([]Cell, len(row))
		for j, v := range row {
			cells[j] = StringCell(v)
		}
		g.Rows[i] = cells
	}
	return g
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	if g == nil {
		return 0
	}
	return len(g.Rows)
}

// Width returns the length of the longest row.
func (g *Grid) Width() int {
	if g == nil {
		return 0
	}
	w := 0
	for _, row := range g.Rows {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}

// At returns the cell at the 0-based row and column. Out-of-range
// coordinates return the absent cell instead of failing.
func (g *Grid) At(row, col int) Cell {
	if g == nil || row < 0 || col < 0 || row >= len(g.Rows) {
		return Cell{}
	}
	r := g.Rows[row]
	if col >= len(r) {
		return Cell{}
	}
	return r[col]
}

// AtRef returns the cell addressed by ref.
func (g *Grid) AtRef(ref CellRef) Cell {
	return g.At(ref.Row, ref.Col)
}

// Set writes a cell, growing the grid as needed.
func (g *Grid) Set(row, col int, c Cell) {
	for len(g.Rows) <= row {
		g.Rows = append(g.Rows, nil)
	}
	for len(g.Rows[row]) <= col {
		g.Rows[row] = append(g.Rows[row], Cell{})
	}
	g.Rows[row][col] = c
}

// Clone returns a deep copy of the grid's row structure.
func (g *Grid) Clone() *Grid {
	if g == nil {
		return nil
	}
	out := &Grid{Rows: make([][]Cell, len(g.Rows))}
	for i, row := range g.Rows {
		out.Rows[i] = append([]Cell(nil), row...)
	}
	return out
}

// DropFirstColumn returns a copy of the grid without column A.
func (g *Grid) DropFirstColumn() *Grid {
	out := &Grid{Rows: make([][]Cell, g.Height())}
	for i, row := range g.Rows {
		if len(row) == 0 {
			out.Rows[i] = []Cell{}
			continue
		}
		out.Rows[i] = append([]Cell(nil), row[1:]...)
	}
	return out
}

// Strings renders every row as text, trimming trailing absent cells.
func (g *Grid) Strings() [][]string {
	out := make([][]string, g.Height())
	for i, row := range g.Rows {
		end := len(row)
		for end > 0 && row[end-1].IsBlank() {
			end--
		}
		line := make([]string, end)
		for j := 0; j < end; j++ {
			line[j] = row[j].Text()
		}
		out[i] = line
	}
	return out
}
