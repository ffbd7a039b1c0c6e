package sqlgen

import (
	"strings"
)

// CompileCondition compiles a single Condition into a flat AND-joined
// predicate without surrounding parentheses. start is the first free
// 1-based parameter index; the index only advances for the Numbered
// dialect's non-null columns. Returns the predicate text and the bound
// values in column order. An empty condition yields an empty predicate.
func CompileCondition(d Dialect, cond Condition, start int) (string, []any) {
	var clauses []string
	var args []any
	idx := start
	for _, col := range cond.Columns() {
		value := cond[col]
		if value == nil {
			clauses = append(clauses, col+" IS NULL")
			continue
		}
		clauses = append(clauses, col+" = "+d.Placeholder(idx))
		args = append(args, value)
		idx++
	}
	return strings.Join(clauses, " AND "), args
}

// CompileConditionSet compiles a ConditionSet into a predicate where
// each member condition is parenthesized and members are joined with
// OR. Empty member conditions are skipped; an empty (or all-empty) set
// yields an empty predicate, meaning the caller omits the WHERE clause.
func CompileConditionSet(d Dialect, set ConditionSet, start int) (string, []any) {
	var clauses []string
	var args []any
	idx := start
	for _, cond := range set {
		if len(cond) == 0 {
			continue
		}
		clause, condArgs := CompileCondition(d, cond, idx)
		clauses = append(clauses, "("+clause+")")
		args = append(args, condArgs...)
		idx += len(condArgs)
	}
	return strings.Join(clauses, " OR "), args
}
