package mdrsort

import (
	"fmt"
	"strings"

	"github.com/woozymasta/pathrules"
)

// fileFilter decides which snapshot entries enter the working set.
type fileFilter struct {
	matcher *pathrules.Matcher
}

// newFileFilter builds an include-only matcher for the accepted extensions
// followed by extra gitignore-style rules (e.g. "~$*" to drop Office lock files).
func newFileFilter(extra []pathrules.Rule) (*fileFilter, error) {
	rules := pathrules.MergeRules(pathrules.ParseExtensions(acceptedExtensions), extra)
	m, err := pathrules.NewMatcher(rules, pathrules.MatcherOptions{
		CaseInsensitive: true,
		DefaultAction:   pathrules.ActionExclude,
	})
	if err != nil {
		return nil, fmt.Errorf("compile file filter: %w", err)
	}
	return &fileFilter{matcher: m}, nil
}

// Included reports whether a file name should be processed.
func (f *fileFilter) Included(name string) bool {
	return f.matcher.Included(name, false)
}

// ParseIgnorePatterns turns gitignore-style patterns into exclusion rules.
// A leading "!" re-includes matching files.
func ParseIgnorePatterns(patterns []string) ([]pathrules.Rule, error) {
	rules, err := pathrules.ParseRulesString(strings.Join(patterns, "\n"))
	if err != nil {
		return nil, fmt.Errorf("parse ignore patterns: %w", err)
	}
	return rules, nil
}
