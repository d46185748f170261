package persistence

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/salesdash/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatabase_ExportTable(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.DB.Exec(
		`INSERT INTO products (product_id, product_name, category, base_price, cost_price, supplier)
		 VALUES (1, 'Laptop Pro X1', 'Electronics', 899.99, 650.0, 'TechSuppliers Inc')`).Error)
	require.NoError(t, db.DB.Exec(
		`INSERT INTO products (product_id, product_name, category, base_price, cost_price, supplier)
		 VALUES (2, 'Gaming Mouse', 'Accessories', 39.99, 22.0, 'InputDevices Ltd')`).Error)

	t.Run("csv export includes header and all rows", func(t *testing.T) {
		var buf bytes.Buffer
		n, err := db.ExportTable(ctx, "products", FormatCSV, &buf)
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.Equal(t, "product_id", records[0][0])
		assert.Equal(t, "Laptop Pro X1", records[1][1])
		assert.Equal(t, "899.99", records[1][3])
		assert.Equal(t, "650", records[1][4])
	})

	t.Run("json export produces one record per row", func(t *testing.T) {
		var buf bytes.Buffer
		n, err := db.ExportTable(ctx, "products", FormatJSON, &buf)
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		var records []map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &records))
		require.Len(t, records, 2)
		assert.Equal(t, "Gaming Mouse", records[1]["product_name"])
	})

	t.Run("views are exportable", func(t *testing.T) {
		var buf bytes.Buffer
		_, err := db.ExportTable(ctx, "top_products_view", FormatCSV, &buf)
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "total_revenue")
	})

	t.Run("unknown table is rejected", func(t *testing.T) {
		var buf bytes.Buffer
		_, err := db.ExportTable(ctx, "sqlite_master", FormatCSV, &buf)
		require.Error(t, err)
		assert.True(t, shared.IsValidationError(err))
	})

	t.Run("unknown format is rejected", func(t *testing.T) {
		var buf bytes.Buffer
		_, err := db.ExportTable(ctx, "products", "xml", &buf)
		require.Error(t, err)
		assert.True(t, shared.IsValidationError(err))
	})
}
