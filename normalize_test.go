package mdrsort

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	tests := map[string]string{
		"a\t\tb  c":        "a b c",
		"  padded  ":       "padded",
		`escaped\ttab`:     "escaped tab",
		"x \t y":           "x y",
		"many     spaces":  "many spaces",
		"":                 "",
		"already clean":    "already clean",
		"01/02/2024 title": "01/02/2024 title",
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizeText(in), "%q", in)
	}
}

func TestNormalizeText_Idempotent(t *testing.T) {
	for _, in := range []string{"a\t\tb  c", ` \t x\\t  y `, "clean", "\t\t", `a\\tb`} {
		once := NormalizeText(in)
		assert.Equal(t, once, NormalizeText(once), "%q", in)
	}
}

func TestNormalizeColumns(t *testing.T) {
	g := &Grid{Rows: [][]Cell{
		{StringCell("a"), StringCell("b"), StringCell("c"), StringCell("d"), StringCell("x\ty"), NumberCell(7)},
		{StringCell("keep\ttab"), {}, {}, {}, {}},
		{StringCell("short")},
	}}
	NormalizeColumns(g, 4, 5)

	assert.Equal(t, "x y", g.At(0, 4).Text())
	assert.Equal(t, "7", g.At(0, 5).Text())
	assert.Equal(t, CellString, g.At(0, 5).Type)
	assert.Equal(t, "keep\ttab", g.At(1, 0).Text(), "other columns untouched")
	assert.Equal(t, "", g.At(1, 4).Text())
	assert.Equal(t, CellString, g.At(2, 5).Type, "short rows get the column")
	assert.Equal(t, "", g.At(2, 5).Text())
}

func TestNormalizeColumns_OutOfRangeSkipped(t *testing.T) {
	g := NewGrid([][]string{{"a", "b\tc"}})
	NormalizeColumns(g, 4, 5)
	assert.Equal(t, 2, g.Width())
	assert.Equal(t, "b\tc", g.At(0, 1).Text())
}
