package mdrsort

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// TextPath returns the export path for src: same folder, same stem, ".txt".
func TextPath(src string) string {
	return filepath.Join(filepath.Dir(src), stem(src)+".txt")
}

// ExportText writes grid as tab-delimited text next to src and returns the
// output path. One line per row, every line padded to the grid's width.
// The output appears atomically.
func ExportText(src string, grid *Grid, enc TextEncoding) (string, error) {
	out := TextPath(src)
	err := writeAtomic(out, 0o644, func(w io.Writer) error {
		ew := enc.Writer(w)
		if err := writeTabDelimited(ew, rectangular(grid)); err != nil {
			return fmt.Errorf("write %q: %w", out, err)
		}
		if err := ew.Close(); err != nil {
			return fmt.Errorf("encode %q: %w", out, err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return out, nil
}

// writeTabDelimited writes rows separated by tabs and "\n". A field is
// quoted only when it holds a tab, a double quote or a line break; quotes
// inside are doubled. Leading spaces are written as-is.
func writeTabDelimited(w io.Writer, rows [][]string) error {
	bw := bufio.NewWriter(w)
	for _, row := range rows {
		for i, field := range row {
			if i > 0 {
				bw.WriteByte('\t')
			}
			if strings.ContainsAny(field, "\t\"\r\n") {
				bw.WriteByte('"')
				bw.WriteString(strings.ReplaceAll(field, `"`, `""`))
				bw.WriteByte('"')
				continue
			}
			bw.WriteString(field)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// rectangular renders grid as text rows padded to the grid's width.
func rectangular(grid *Grid) [][]string {
	width := grid.Width()
	rows := grid.Strings()
	for i, row := range rows {
		if len(row) < width {
			rows[i] = append(row, make([]string, width-len(row))...)
		}
	}
	return rows
}
