// Package sqlgen compiles declarative table, record and condition
// descriptions into parameterized SQL for the supported placeholder
// conventions.
package sqlgen

import (
	"sort"
	"strconv"
)

// Dialect selects the placeholder convention used in compiled statements.
type Dialect int

const (
	// Numbered emits sequential $1, $2, ... placeholders (PostgreSQL).
	Numbered Dialect = iota
	// Positional emits the fixed ? placeholder (SQLite, MySQL).
	Positional
)

// Placeholder returns the parameter slot for the 1-based index n.
func (d Dialect) Placeholder(n int) string {
	if d == Numbered {
		return "$" + strconv.Itoa(n)
	}
	return "?"
}

// Query is a compiled SQL statement with its bound values in placeholder
// order.
type Query struct {
	SQL  string
	Args []any
}

// Record maps column names to scalar values. It is the input of inserts
// and updates and the output of selects. A nil value inserts SQL NULL.
type Record map[string]any

// Columns returns the record's column names in sorted order. All
// compiled statements iterate columns in this order so the generated
// SQL is deterministic.
func (r Record) Columns() []string {
	return sortedColumns(r)
}

// Condition is a conjunction of per-column equality tests. A nil value
// compiles to "column IS NULL" and never binds a parameter.
type Condition map[string]any

// Columns returns the condition's column names in sorted order.
func (c Condition) Columns() []string {
	return sortedColumns(c)
}

// ConditionSet is an OR-combination of Conditions: members are joined
// with OR, each member's columns with AND. An empty set matches all
// rows.
type ConditionSet []Condition

// UpdateSpec is one unit of a batched update: the rows matched by Where
// receive the values in Update.
type UpdateSpec struct {
	Where  Condition
	Update Record
}

// PrimaryKey describes the optional primary key column of a TableSpec.
type PrimaryKey struct {
	Name       string
	Type       string
	Constraint string
}

// Field is a column declaration. Fields keep their declaration order in
// the generated CREATE TABLE statement.
type Field struct {
	Name string
	Type string
}

// TableSpec describes a table for CreateTable. It is read once and
// never mutated.
type TableSpec struct {
	Name       string
	PrimaryKey *PrimaryKey
	Fields     []Field
}

func sortedColumns(m map[string]any) []string {
	cols := make([]string, 0, len(m))
	for col := range m {
		cols = append(cols, col)
	}
	sort.Strings(cols)
	return cols
}
