package mdrsort

import (
	"fmt"

	"github.com/expr-lang/expr"
)

// Severity indicates the severity of a validation issue.
type Severity int

const (
	SeverityError   Severity = iota // Rule cannot be used
	SeverityWarning                 // Rule may never match
)

// ValidationIssue represents a single problem found in a rule set.
type ValidationIssue struct {
	Severity Severity
	Rule     int // 1-based rule position
	Message  string
}

// String formats the issue as "[ERROR] rule 2: message" or "[WARN] ...".
func (v ValidationIssue) String() string {
	sev := "ERROR"
	if v.Severity == SeverityWarning {
		sev = "WARN"
	}
	return fmt.Sprintf("[%s] rule %d: %s", sev, v.Rule, v.Message)
}

// ValidateRules checks every rule for a known category and a condition that
// compiles to a boolean. Later rules with a condition identical to an
// earlier one can never match and are reported as warnings.
func ValidateRules(rules []Rule) []ValidationIssue {
	var issues []ValidationIssue
	seen := make(map[string]int, len(rules))
	for i, r := range rules {
		pos := i + 1
		if !r.Category.Valid() {
			issues = append(issues, ValidationIssue{
				Severity: SeverityError,
				Rule:     pos,
				Message:  fmt.Sprintf("category %d is not one of MDR1..MDR4", int(r.Category)),
			})
		}
		if r.Condition == "" {
			issues = append(issues, ValidationIssue{
				Severity: SeverityError,
				Rule:     pos,
				Message:  "empty condition",
			})
			continue
		}
		if _, err := expr.Compile(r.Condition, expr.Env(ruleEnv(nil)), expr.AsBool()); err != nil {
			issues = append(issues, ValidationIssue{
				Severity: SeverityError,
				Rule:     pos,
				Message:  fmt.Sprintf("invalid condition %q: %v", r.Condition, err),
			})
			continue
		}
		if first, dup := seen[r.Condition]; dup {
			issues = append(issues, ValidationIssue{
				Severity: SeverityWarning,
				Rule:     pos,
				Message:  fmt.Sprintf("condition duplicates rule %d and never matches", first),
			})
			continue
		}
		seen[r.Condition] = pos
	}
	return issues
}
