package mdrsort

import (
	"fmt"
	"strings"
)

// Rule maps a condition over marker cells to a category.
type Rule struct {
	Category  Category
	Condition string // expr-lang boolean expression using cell("A1")
	Reason    string // short label written to the log on match
}

// DefaultRules is the classification decision tree. Order is priority:
// the first matching rule wins.
var DefaultRules = []Rule{
	{
		Category:  MDR2,
		Condition: `cell("I13") == "Controlled Client Name"`,
		Reason:    "Controlled Client Name in I13",
	},
	{
		Category:  MDR1,
		Condition: `cell("I13") == "Date from"`,
		Reason:    "Date from in I13",
	},
	{
		Category:  MDR3,
		Condition: `cell("A1") == "ip_base_number" && cell("B1") == "Distribution Pool Code"`,
		Reason:    "ip_base_number and Distribution Pool Code",
	},
	{
		Category:  MDR4,
		Condition: `cell("A1") == "ip_base_number" && cell("B1") in ["AV ID", "Av ID"]`,
		Reason:    "ip_base_number and AV ID",
	},
}

// Marker cells read as classification evidence.
var (
	refI13 = MustCellRef("I13")
	refA1  = MustCellRef("A1")
	refB1  = MustCellRef("B1")
)

// Evidence holds the marker cell values a classification was based on.
type Evidence struct {
	I13 Cell
	A1  Cell
	B1  Cell
}

// String formats the evidence as I13="..." A1="..." B1="...".
func (e Evidence) String() string {
	return fmt.Sprintf("I13=%q A1=%q B1=%q", e.I13.Text(), e.A1.Text(), e.B1.Text())
}

// Classification is the outcome of classifying one grid.
type Classification struct {
	Category Category
	Rule     *Rule // matching rule, nil when unclassified
	Evidence Evidence
}

// Matched reports whether a rule matched.
func (c Classification) Matched() bool {
	return c.Category != Unclassified
}

// Classifier maps the first sheet of a file to a category.
type Classifier struct {
	rules []Rule
	eval  *ruleEvaluator
}

// NewClassifier validates rules and returns a classifier evaluating them
// in order. A nil slice selects DefaultRules.
func NewClassifier(rules []Rule) (*Classifier, error) {
	if rules == nil {
		rules = DefaultRules
	}
	issues := ValidateRules(rules)
	var errs []string
	for _, issue := range issues {
		if issue.Severity == SeverityError {
			errs = append(errs, issue.String())
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("invalid rules:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return &Classifier{
		rules: append([]Rule(nil), rules...),
		eval:  newRuleEvaluator(),
	}, nil
}

// Rules returns the rules in evaluation order.
func (c *Classifier) Rules() []Rule {
	return append([]Rule(nil), c.rules...)
}

// Classify evaluates the rules against grid. It has no side effects.
func (c *Classifier) Classify(grid *Grid) (Classification, error) {
	if grid == nil {
		return Classification{}, ErrNilGrid
	}
	result := Classification{
		Category: Unclassified,
		Evidence: Evidence{
			I13: grid.AtRef(refI13),
			A1:  grid.AtRef(refA1),
			B1:  grid.AtRef(refB1),
		},
	}
	for i := range c.rules {
		ok, err := c.eval.Matches(c.rules[i].Condition, grid)
		if err != nil {
			return Classification{}, fmt.Errorf("rule %d (%s): %w", i+1, c.rules[i].Category, err)
		}
		if ok {
			result.Category = c.rules[i].Category
			result.Rule = &c.rules[i]
			return result, nil
		}
	}
	return result, nil
}
