package mdrsort

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// sheetFixture describes one sheet: its name and cells by A1 reference.
type sheetFixture struct {
	name  string
	cells map[string]any
}

// writeWorkbook creates an xlsx file at path with the given sheets in order.
func writeWorkbook(t *testing.T, path string, sheets ...sheetFixture) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for i, s := range sheets {
		if i == 0 {
			require.NoError(t, f.SetSheetName("Sheet1", s.name))
		} else {
			_, err := f.NewSheet(s.name)
			require.NoError(t, err)
		}
		for ref, v := range s.cells {
			require.NoError(t, f.SetCellValue(s.name, ref, v))
		}
	}
	require.NoError(t, f.SaveAs(path))
	return path
}

// writeFile creates a file with the given content.
func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// mdr1Sheet has "Date from" in I13 and data in columns A..F.
func mdr1Sheet(name string) sheetFixture {
	return sheetFixture{name: name, cells: map[string]any{
		"A1":  "id",
		"B1":  "title",
		"E1":  "writer\tname",
		"F1":  "publisher  name",
		"I13": "Date from",
		"A2":  1,
		"E2":  "  A\t\tB  ",
	}}
}

// mdr2Sheet has "Controlled Client Name" in I13.
func mdr2Sheet(name string) sheetFixture {
	return sheetFixture{name: name, cells: map[string]any{
		"A1":  "row",
		"I13": "Controlled Client Name",
	}}
}

// mdr3Rows is a CSV body classified as MDR3.
const mdr3Rows = "ip_base_number,Distribution Pool Code,c,d,e\tx,f\n" +
	"I-000000001-1,RADIO,3,4,\"five  spaces\",six\n"

// readText returns the content of path.
func readText(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// listFiles returns the names of regular files directly in dir.
func listFiles(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		if e.Type().IsRegular() {
			names = append(names, e.Name())
		}
	}
	return names
}

// sheetNames opens an xlsx file and returns its sheet list.
func sheetNames(t *testing.T, path string) []string {
	t.Helper()
	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	return f.GetSheetList()
}

func join(dir string, parts ...string) string {
	return filepath.Join(append([]string{dir}, parts...)...)
}
