package sqlgen

import (
	"fmt"
	"strings"
)

// BuildCreateTable assembles a CREATE TABLE IF NOT EXISTS statement.
// The primary key column comes first when present, followed by the
// fields in declaration order. The statement binds no parameters and is
// identical across dialects.
func BuildCreateTable(spec TableSpec) string {
	var defs []string
	if pk := spec.PrimaryKey; pk != nil {
		defs = append(defs, fmt.Sprintf("%s %s %s", pk.Name, pk.Type, pk.Constraint))
	}
	for _, f := range spec.Fields {
		defs = append(defs, f.Name+" "+f.Type)
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", spec.Name, strings.Join(defs, ", "))
}

// BuildInsert assembles a single-row INSERT template with one
// placeholder per column. The executor supplies one bound-value tuple
// per record; the template itself is shared by every batch.
func BuildInsert(d Dialect, table string, columns []string) string {
	placeholders := make([]string, len(columns))
	for i := range columns {
		placeholders[i] = d.Placeholder(i + 1)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(columns, ", "), strings.Join(placeholders, ", "))
}

// BuildUpdate assembles one UPDATE statement for a single UpdateSpec.
// SET values bind first, sequentially from index 1 in sorted column
// order; the WHERE predicate compiles after them, so the bound-value
// list is SET values followed by WHERE values for both dialects.
func BuildUpdate(d Dialect, table string, update Record, where Condition) *Query {
	var sets []string
	var args []any
	idx := 1
	for _, col := range update.Columns() {
		sets = append(sets, col+" = "+d.Placeholder(idx))
		args = append(args, update[col])
		idx++
	}
	sql := fmt.Sprintf("UPDATE %s SET %s", table, strings.Join(sets, ", "))

	predicate, whereArgs := CompileConditionSet(d, ConditionSet{where}, idx)
	if predicate != "" {
		sql += " WHERE " + predicate
		args = append(args, whereArgs...)
	}
	return &Query{SQL: sql, Args: args}
}

// BuildSelect assembles a SELECT statement. An empty column list
// selects *. The WHERE predicate is compiled from the ConditionSet; a
// positive limit caps the row count via LIMIT, emitted only when at
// least one predicate clause was produced.
func BuildSelect(d Dialect, table string, columns []string, conditions ConditionSet, limit int) *Query {
	cols := "*"
	if len(columns) > 0 {
		cols = strings.Join(columns, ", ")
	}
	sql := fmt.Sprintf("SELECT %s FROM %s", cols, table)

	predicate, args := CompileConditionSet(d, conditions, 1)
	if predicate != "" {
		sql += " WHERE " + predicate
		if limit > 0 {
			sql += fmt.Sprintf(" LIMIT %d", limit)
		}
	}
	return &Query{SQL: sql, Args: args}
}

// BuildDelete assembles a DELETE statement with a flat AND-only WHERE
// built directly from one Condition. An empty condition deletes all
// rows.
func BuildDelete(d Dialect, table string, cond Condition) *Query {
	sql := "DELETE FROM " + table
	predicate, args := CompileCondition(d, cond, 1)
	if predicate != "" {
		sql += " WHERE " + predicate
	}
	return &Query{SQL: sql, Args: args}
}

// BuildCount assembles a SELECT COUNT(*) statement. Non-null condition
// columns are AND-joined; if any null-valued column exists, "OR <col>
// IS NULL" is appended for the first one in sorted order, deliberately
// unparenthesized: the null branch associates loosely with the whole
// predicate rather than with its own AND block. When the condition
// holds only null-valued columns the predicate degenerates to a bare
// IS NULL test.
func BuildCount(d Dialect, table string, cond Condition) *Query {
	var clauses []string
	var args []any
	var nullCol string
	idx := 1
	for _, col := range cond.Columns() {
		value := cond[col]
		if value == nil {
			if nullCol == "" {
				nullCol = col
			}
			continue
		}
		clauses = append(clauses, col+" = "+d.Placeholder(idx))
		args = append(args, value)
		idx++
	}

	sql := "SELECT COUNT(*) FROM " + table
	switch {
	case len(clauses) > 0 && nullCol != "":
		sql += " WHERE " + strings.Join(clauses, " AND ") + " OR " + nullCol + " IS NULL"
	case len(clauses) > 0:
		sql += " WHERE " + strings.Join(clauses, " AND ")
	case nullCol != "":
		sql += " WHERE " + nullCol + " IS NULL"
	}
	return &Query{SQL: sql, Args: args}
}
