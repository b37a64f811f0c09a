package mdrsort

import (
	"fmt"
	"path/filepath"
)

// Category is the destination classification of a single-sheet file.
type Category int

const (
	Unclassified Category = iota
	MDR1
	MDR2
	MDR3
	MDR4
)

// Categories lists the four destination categories in folder order.
var Categories = []Category{MDR1, MDR2, MDR3, MDR4}

// String returns the category label, which is also its folder name.
func (c Category) String() string {
	switch c {
	case MDR1:
		return "MDR1"
	case MDR2:
		return "MDR2"
	case MDR3:
		return "MDR3"
	case MDR4:
		return "MDR4"
	default:
		return "unclassified"
	}
}

// Valid reports whether c is one of the four destination categories.
func (c Category) Valid() bool {
	return c >= MDR1 && c <= MDR4
}

// DropsFirstColumn reports whether exports of this category omit column A.
func (c Category) DropsFirstColumn() bool {
	return c == MDR1 || c == MDR2
}

// ParseCategory parses "MDR1".."MDR4".
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if c.String() == s {
			return c, nil
		}
	}
	return Unclassified, fmt.Errorf("unknown category %q", s)
}

// CategoryFromPath returns the category whose folder directly contains path,
// or Unclassified.
func CategoryFromPath(path string) Category {
	c, err := ParseCategory(filepath.Base(filepath.Dir(path)))
	if err != nil {
		return Unclassified
	}
	return c
}
