package persistence

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/salesdash/backend/internal/domain/shared"
)

// Export formats
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// exportableTables is the allowlist for ExportTable; table names are
// interpolated into SQL and must never come from untrusted input.
var exportableTables = map[string]bool{
	"products":            true,
	"regions":             true,
	"customers":           true,
	"sales_transactions":  true,
	"daily_sales_summary": true,
	"top_products_view":   true,
}

// ExportTable streams a full table or view to w in the requested format.
// Returns the number of exported rows.
func (d *Database) ExportTable(ctx context.Context, table, format string, w io.Writer) (int, error) {
	if !exportableTables[table] {
		return 0, shared.NewValidationError("unknown table %q", table)
	}

	result := d.Query(ctx, "SELECT * FROM "+table)
	if !result.Success {
		return 0, shared.NewQueryError("exporting %s: %s", table, result.Error)
	}

	switch format {
	case FormatCSV:
		return len(result.Rows), writeCSV(w, result)
	case FormatJSON:
		return len(result.Rows), writeJSON(w, result)
	default:
		return 0, shared.NewValidationError("unknown export format %q", format)
	}
}

func writeCSV(w io.Writer, result QueryResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(result.Columns); err != nil {
		return err
	}
	record := make([]string, len(result.Columns))
	for _, row := range result.Rows {
		for i, v := range row {
			record[i] = formatValue(v)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeJSON(w io.Writer, result QueryResult) error {
	records := make([]map[string]any, 0, len(result.Rows))
	for _, row := range result.Rows {
		record := make(map[string]any, len(result.Columns))
		for i, col := range result.Columns {
			record[col] = row[i]
		}
		records = append(records, record)
	}
	enc := json.NewEncoder(w)
	return enc.Encode(records)
}

func formatValue(v any) string {
	if v == nil {
		return ""
	}
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return formatFloat(x)
	default:
		return fmt.Sprintf("%v", x)
	}
}

// formatFloat trims the scientific notation %v would produce for large
// monetary sums
func formatFloat(f float64) string {
	if f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%g", f)
}
