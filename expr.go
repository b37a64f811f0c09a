package mdrsort

import (
	"fmt"
	"strings"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// ruleEvaluator evaluates rule conditions against a grid. Conditions see a
// single function, cell(ref), returning the trimmed text of string cells,
// the typed value of numbers and booleans, and nil for absent cells.
type ruleEvaluator struct {
	cache sync.Map // condition string → compiled *vm.Program
}

func newRuleEvaluator() *ruleEvaluator {
	return &ruleEvaluator{}
}

// ruleEnv is the compile-time environment shared by every condition.
func ruleEnv(grid *Grid) map[string]any {
	return map[string]any{
		"cell": func(ref string) any {
			return cellValue(grid, ref)
		},
	}
}

// cellValue resolves an A1 reference against grid for a condition.
func cellValue(grid *Grid, ref string) any {
	r, err := ParseCellRef(ref)
	if err != nil {
		return nil
	}
	c := grid.AtRef(r)
	if c.IsBlank() {
		return nil
	}
	if s, ok := c.Value.(string); ok {
		return strings.TrimSpace(s)
	}
	return c.Value
}

func (e *ruleEvaluator) compile(condition string) (*vm.Program, error) {
	if cached, ok := e.cache.Load(condition); ok {
		return cached.(*vm.Program), nil
	}
	program, err := expr.Compile(condition, expr.Env(ruleEnv(nil)), expr.AsBool())
	if err != nil {
		return nil, err
	}
	e.cache.Store(condition, program)
	return program, nil
}

// Matches reports whether condition holds for grid.
func (e *ruleEvaluator) Matches(condition string, grid *Grid) (bool, error) {
	program, err := e.compile(condition)
	if err != nil {
		return false, fmt.Errorf("compile condition %q: %w", condition, err)
	}
	out, err := expr.Run(program, ruleEnv(grid))
	if err != nil {
		return false, fmt.Errorf("evaluate condition %q: %w", condition, err)
	}
	b, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("condition %q evaluated to %T, expected bool", condition, out)
	}
	return b, nil
}
