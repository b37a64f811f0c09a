package mdrsort

import (
	"strings"
	"unicode"
)

// SanitizeSheetName keeps letters, digits, spaces, underscores and hyphens
// from a sheet name and trims trailing whitespace, so the result can be used
// as a file name suffix. SanitizeSheetName(SanitizeSheetName(s)) equals
// SanitizeSheetName(s).
func SanitizeSheetName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '_' || r == '-' {
			b.WriteRune(r)
		}
	}
	return strings.TrimRight(b.String(), " ")
}

// StripApostrophes removes every apostrophe from a file name.
func StripApostrophes(name string) string {
	return strings.ReplaceAll(name, "'", "")
}
