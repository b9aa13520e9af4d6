package driver

import (
	"database/sql"
	"fmt"
)

// Result is what the engine hands back for a statement: column names (which
// need not be unique) and rows whose arity always matches the columns.
type Result interface {
	Columns() []string
	Rows() ([][]any, error)
}

type QueryResult struct {
	columns []string
	rows    [][]any
}

func NewResult(columns []string, rows [][]any) *QueryResult {
	return &QueryResult{columns: columns, rows: rows}
}

func (r *QueryResult) Columns() []string {
	return r.columns
}

func (r *QueryResult) Rows() ([][]any, error) {
	return r.rows, nil
}

// Strings returns the first column of every row as text. Catalog queries
// (table names, stored schema) select a single text column.
func (r *QueryResult) Strings() []string {
	values := make([]string, 0, len(r.rows))
	for _, row := range r.rows {
		switch v := row[0].(type) {
		case string:
			values = append(values, v)
		case []byte:
			values = append(values, string(v))
		case nil:
			// sqlite_master.sql is NULL for automatic indexes
		default:
			values = append(values, fmt.Sprint(v))
		}
	}
	return values
}

func newQueryResult(rows *sql.Rows) (*QueryResult, error) {
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, sqliteError(err)
	}

	result := &QueryResult{columns: columns}
	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, sqliteError(err)
		}
		result.rows = append(result.rows, values)
	}

	if err := rows.Err(); err != nil {
		return nil, sqliteError(err)
	}
	return result, nil
}
