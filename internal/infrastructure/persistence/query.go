package persistence

import (
	"context"
	"time"
)

// QueryResult is the uniform envelope for ad-hoc query execution. Low-level
// storage errors are converted into a failed result rather than propagated,
// so a calling layer can display the failure without crashing.
type QueryResult struct {
	Success  bool     `json:"success"`
	Columns  []string `json:"columns"`
	Rows     [][]any  `json:"rows"`
	RowCount int      `json:"row_count"`
	Error    string   `json:"error,omitempty"`
}

func failedQuery(err error) QueryResult {
	return QueryResult{
		Success: false,
		Columns: []string{},
		Rows:    [][]any{},
		Error:   err.Error(),
	}
}

// Query executes an ad-hoc SQL string with optional positional parameters
// and returns a tagged result. It never returns a Go error: failure is the
// envelope's failure variant.
func (d *Database) Query(ctx context.Context, query string, params ...any) QueryResult {
	rows, err := d.DB.WithContext(ctx).Raw(query, params...).Rows()
	if err != nil {
		return failedQuery(err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return failedQuery(err)
	}

	result := QueryResult{
		Success: true,
		Columns: columns,
		Rows:    [][]any{},
	}
	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return failedQuery(err)
		}
		for i, v := range values {
			values[i] = normalizeValue(v)
		}
		result.Rows = append(result.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return failedQuery(err)
	}

	result.RowCount = len(result.Rows)
	return result
}

// normalizeValue maps driver-specific scan types to plain values
func normalizeValue(v any) any {
	switch x := v.(type) {
	case []byte:
		return string(x)
	case time.Time:
		return x.Format(time.RFC3339)
	default:
		return v
	}
}
