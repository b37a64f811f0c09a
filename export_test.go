package mdrsort

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextPath(t *testing.T) {
	assert.Equal(t, join("root", "MDR1", "book_Jan.txt"), TextPath(join("root", "MDR1", "book_Jan.xlsx")))
	assert.Equal(t, join("a", "b.c.txt"), TextPath(join("a", "b.c.csv")))
}

func TestExportText(t *testing.T) {
	dir := t.TempDir()
	src := join(dir, "data.xlsx")
	g := NewGrid([][]string{
		{"a", "b"},
		{"  lead", "x\ty"},
		{`q"uote`},
	})

	out, err := ExportText(src, g, EncodingUTF8)
	require.NoError(t, err)
	assert.Equal(t, join(dir, "data.txt"), out)
	assert.Equal(t, "a\tb\n  lead\t\"x\ty\"\n\"q\"\"uote\"\t\n", readText(t, out))
	assert.Equal(t, []string{"data.txt"}, listFiles(t, dir), "no temp files left behind")
}

func TestTextEncoding_WriterLeavesTargetOpen(t *testing.T) {
	for _, enc := range []TextEncoding{EncodingUTF8, EncodingUTF8BOM, EncodingWindows1252} {
		t.Run(string(enc), func(t *testing.T) {
			f, err := os.Create(join(t.TempDir(), "w.txt"))
			require.NoError(t, err)
			defer f.Close()

			w := enc.Writer(f)
			_, err = w.Write([]byte("a"))
			require.NoError(t, err)
			require.NoError(t, w.Close())

			require.NoError(t, f.Sync(), "underlying file must stay open")
			_, err = f.WriteString("b")
			assert.NoError(t, err)
		})
	}
}

func TestExportText_DefaultEncodingIsReadable(t *testing.T) {
	dir := t.TempDir()
	src := join(dir, "MDR2 Sample.xlsx")

	out, err := ExportText(src, NewGrid([][]string{{"AV ID", "x"}}), EncodingUTF8)
	require.NoError(t, err)
	assert.Equal(t, "AV ID\tx\n", readText(t, out))

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode().Perm()&0o400, "owner can read the export")
}

func TestExportText_NumbersAndBlanks(t *testing.T) {
	dir := t.TempDir()
	g := &Grid{}
	g.Set(0, 0, NumberCell(3))
	g.Set(0, 2, BoolCell(true))
	g.Set(1, 1, NumberCell(0.5))

	out, err := ExportText(join(dir, "n.csv"), g, EncodingUTF8)
	require.NoError(t, err)
	assert.Equal(t, "3\t\tTRUE\n\t0.5\t\n", readText(t, out))
}

func TestExportText_Encodings(t *testing.T) {
	g := NewGrid([][]string{{"é", "a"}})
	tests := []struct {
		enc  TextEncoding
		want []byte
	}{
		{EncodingUTF8, []byte("é\ta\n")},
		{EncodingUTF8BOM, append([]byte{0xEF, 0xBB, 0xBF}, []byte("é\ta\n")...)},
		{EncodingUTF16LE, []byte{0xFF, 0xFE, 0xE9, 0x00, '\t', 0x00, 'a', 0x00, '\n', 0x00}},
		{EncodingWindows1252, []byte{0xE9, '\t', 'a', '\n'}},
	}
	for _, tt := range tests {
		t.Run(string(tt.enc), func(t *testing.T) {
			out, err := ExportText(join(t.TempDir(), "enc.csv"), g, tt.enc)
			require.NoError(t, err)
			data, err := os.ReadFile(out)
			require.NoError(t, err)
			assert.Equal(t, tt.want, data)
		})
	}
}

func TestExportText_UnencodableLeavesNothing(t *testing.T) {
	dir := t.TempDir()
	_, err := ExportText(join(dir, "cjk.csv"), NewGrid([][]string{{"日本"}}), EncodingWindows1252)
	require.Error(t, err)
	assert.Empty(t, listFiles(t, dir))
}

func TestParseTextEncoding(t *testing.T) {
	for in, want := range map[string]TextEncoding{
		"":             EncodingUTF8,
		"UTF8":         EncodingUTF8,
		"utf-8":        EncodingUTF8,
		"UTF-8-BOM":    EncodingUTF8BOM,
		"utf-16le":     EncodingUTF16LE,
		"Windows-1252": EncodingWindows1252,
	} {
		got, err := ParseTextEncoding(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseTextEncoding("ebcdic")
	assert.Error(t, err)
}
