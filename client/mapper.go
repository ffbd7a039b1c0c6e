package client

import (
	"database/sql"

	"github.com/satishbabariya/dbkit/sqlgen"
)

// mapRows converts raw rows into an ordered slice of Records keyed by
// the result set's column names, which are the originally requested
// columns, or all table columns when * was selected. Row order is
// preserved.
func mapRows(rows *sql.Rows) ([]sqlgen.Record, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var records []sqlgen.Record
	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, err
		}
		record := make(sqlgen.Record, len(columns))
		for i, col := range columns {
			record[col] = normalize(values[i])
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// normalize folds driver-specific raw bytes into strings so records
// compare uniformly across backends.
func normalize(value any) any {
	if b, ok := value.([]byte); ok {
		return string(b)
	}
	return value
}
