package mdrsort

import (
	"fmt"
	"strings"
)

// Describe reads a tabular file and returns a human-readable account of its
// sheets, the marker cells, and the category it would be sorted into. It
// never modifies the file.
func Describe(path string, opts ...Option) (string, error) {
	o := buildOptions(opts)
	classifier, err := NewClassifier(o.rules)
	if err != nil {
		return "", err
	}

	wb, err := OpenTabular(path, o.readFile)
	if err != nil {
		return "", err
	}
	defer wb.Close()

	sheets := wb.SheetNames()
	var b strings.Builder
	fmt.Fprintf(&b, "File: %s\n", path)
	fmt.Fprintf(&b, "Format: %s\n", wb.Format())
	fmt.Fprintf(&b, "Sheets: %d\n", len(sheets))
	for i, s := range sheets {
		fmt.Fprintf(&b, "  %d. %s", i+1, s)
		if len(sheets) > 1 {
			fmt.Fprintf(&b, " -> %s_%s.xlsx", stem(path), SanitizeSheetName(s))
		}
		b.WriteByte('\n')
	}
	if len(sheets) == 0 {
		return b.String(), nil
	}

	grid, err := wb.Sheet(sheets[0])
	if err != nil {
		return "", fmt.Errorf("read first sheet: %w", err)
	}
	fmt.Fprintf(&b, "Size: %dx%d\n", grid.Width(), grid.Height())

	result, err := classifier.Classify(grid)
	if err != nil {
		return "", err
	}
	fmt.Fprintf(&b, "Evidence: %s\n", result.Evidence)
	if len(sheets) > 1 {
		b.WriteString("Category: none until split (multiple sheets)\n")
		return b.String(), nil
	}
	if result.Matched() {
		fmt.Fprintf(&b, "Category: %s (%s)\n", result.Category, result.Rule.Reason)
	} else {
		b.WriteString("Category: unclassified\n")
	}
	return b.String(), nil
}
