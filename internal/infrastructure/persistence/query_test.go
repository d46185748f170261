package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatabase_Query(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.DB.Exec(
		`INSERT INTO regions (region_id, region_name, manager, target_sales)
		 VALUES (1, 'Europe', 'Michael Chen', 200000)`).Error)
	require.NoError(t, db.DB.Exec(
		`INSERT INTO regions (region_id, region_name, manager, target_sales)
		 VALUES (2, 'Asia Pacific', 'Priya Sharma', 180000)`).Error)

	t.Run("returns columns and rows on success", func(t *testing.T) {
		result := db.Query(ctx, "SELECT region_id, region_name FROM regions ORDER BY region_id")
		require.True(t, result.Success, result.Error)
		assert.Empty(t, result.Error)
		assert.Equal(t, []string{"region_id", "region_name"}, result.Columns)
		require.Equal(t, 2, result.RowCount)
		assert.Equal(t, "Europe", result.Rows[0][1])
		assert.Equal(t, "Asia Pacific", result.Rows[1][1])
	})

	t.Run("supports positional parameters", func(t *testing.T) {
		result := db.Query(ctx, "SELECT manager FROM regions WHERE region_name = ?", "Europe")
		require.True(t, result.Success, result.Error)
		require.Equal(t, 1, result.RowCount)
		assert.Equal(t, "Michael Chen", result.Rows[0][0])
	})

	t.Run("empty result keeps success with zero rows", func(t *testing.T) {
		result := db.Query(ctx, "SELECT * FROM regions WHERE region_id = ?", 99)
		require.True(t, result.Success, result.Error)
		assert.Equal(t, 0, result.RowCount)
		assert.Empty(t, result.Rows)
	})

	t.Run("malformed SQL yields failure envelope, not an error", func(t *testing.T) {
		result := db.Query(ctx, "SELEC region_id FROM regions")
		assert.False(t, result.Success)
		assert.NotEmpty(t, result.Error)
		assert.Empty(t, result.Rows)
	})

	t.Run("unknown table yields failure envelope", func(t *testing.T) {
		result := db.Query(ctx, "SELECT * FROM no_such_table")
		assert.False(t, result.Success)
		assert.Contains(t, result.Error, "no_such_table")
	})
}
