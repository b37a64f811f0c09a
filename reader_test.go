package mdrsort

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, FormatXLSX, DetectFormat("a.xlsx"))
	assert.Equal(t, FormatXLSX, DetectFormat("A.XLSX"))
	assert.Equal(t, FormatXLS, DetectFormat("dir/b.Xls"))
	assert.Equal(t, FormatCSV, DetectFormat("c.csv"))
	assert.Equal(t, FormatUnknown, DetectFormat("d.txt"))
	assert.Equal(t, FormatUnknown, DetectFormat("noext"))
	assert.True(t, FormatXLS.IsWorkbook())
	assert.False(t, FormatCSV.IsWorkbook())
}

func TestOpenTabular_XLSX(t *testing.T) {
	dir := t.TempDir()
	path := writeWorkbook(t, join(dir, "typed.xlsx"),
		sheetFixture{name: "Data", cells: map[string]any{
			"A1": "ip_base_number", "B1": "AV ID", "C1": 42, "D1": 2.25, "E1": false,
		}},
		sheetFixture{name: "Other", cells: map[string]any{"A1": "x"}},
	)

	wb, err := OpenTabular(path, nil)
	require.NoError(t, err)
	defer wb.Close()

	assert.Equal(t, FormatXLSX, wb.Format())
	assert.Equal(t, []string{"Data", "Other"}, wb.SheetNames())

	g, err := FirstSheet(wb)
	require.NoError(t, err)
	assert.Equal(t, StringCell("ip_base_number"), g.At(0, 0))
	assert.Equal(t, StringCell("AV ID"), g.At(0, 1))
	assert.Equal(t, NumberCell(42), g.At(0, 2))
	assert.Equal(t, NumberCell(2.25), g.At(0, 3))
	assert.Equal(t, BoolCell(false), g.At(0, 4))

	_, err = wb.Sheet("Missing")
	assert.ErrorIs(t, err, ErrSheetNotFound)
}

func TestOpenTabular_CSV(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, join(dir, "rows.csv"), "\xEF\xBB\xBFip_base_number,AV ID\n1,2,3\n\"quoted, field\"\n")

	wb, err := OpenTabular(path, nil)
	require.NoError(t, err)
	defer wb.Close()

	assert.Equal(t, FormatCSV, wb.Format())
	assert.Equal(t, []string{"rows"}, wb.SheetNames())

	g, err := FirstSheet(wb)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Height())
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, "ip_base_number", g.At(0, 0).Text(), "BOM stripped, header kept as data")
	assert.Equal(t, "quoted, field", g.At(2, 0).Text())

	_, err = wb.Sheet("other")
	assert.ErrorIs(t, err, ErrSheetNotFound)
}

func TestOpenTabular_CorruptFiles(t *testing.T) {
	dir := t.TempDir()
	for name, format := range map[string]Format{
		"bad.xlsx": FormatXLSX,
		"bad.xls":  FormatXLS,
	} {
		path := writeFile(t, join(dir, name), "this is not a spreadsheet at all, just some text")
		_, err := OpenTabular(path, nil)
		var perr *ParseError
		require.ErrorAs(t, err, &perr, name)
		assert.Equal(t, format, perr.Format)
		assert.Equal(t, path, perr.Path)
		assert.False(t, IsTransient(err), name)
	}
}

func TestOpenTabular_Unsupported(t *testing.T) {
	_, err := OpenTabular("notes.txt", nil)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestOpenTabular_MissingFile(t *testing.T) {
	_, err := OpenTabular(join(t.TempDir(), "gone.csv"), nil)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestOpenTabular_LockedIsTransient(t *testing.T) {
	locked := func(string) ([]byte, error) { return nil, fs.ErrPermission }
	_, err := OpenTabular("held.xlsx", locked)
	require.Error(t, err)
	assert.True(t, IsTransient(err))
	var perr *ParseError
	assert.False(t, errors.As(err, &perr))
}
