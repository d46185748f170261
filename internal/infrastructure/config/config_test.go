package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, "salesdash", cfg.App.Name)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "sales.db", cfg.Database.Path)
	assert.Equal(t, int64(42), cfg.Generator.Seed)
	assert.Equal(t, "2024-01-01", cfg.Generator.StartDate)
	assert.Equal(t, "2024-06-30", cfg.Generator.EndDate)
	assert.Equal(t, 100, cfg.Generator.CustomerCount)
	assert.Equal(t, 25, cfg.Generator.BaseDailyTransactions)
	assert.Equal(t, 1000, cfg.Generator.BatchSize)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFrom_FileOverrides(t *testing.T) {
	cfg, err := LoadFrom(writeConfig(t, `
[database]
driver = "sqlite"
path = ":memory:"

[generator]
seed = 7
start_date = "2024-03-01"
end_date = "2024-03-31"
customer_count = 10
batch_size = 500

[log]
level = "debug"
format = "json"
`))
	require.NoError(t, err)

	assert.Equal(t, ":memory:", cfg.Database.Path)
	assert.Equal(t, int64(7), cfg.Generator.Seed)
	assert.Equal(t, "2024-03-01", cfg.Generator.StartDate)
	assert.Equal(t, 10, cfg.Generator.CustomerCount)
	assert.Equal(t, 500, cfg.Generator.BatchSize)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadFrom_Validation(t *testing.T) {
	t.Run("rejects unknown driver", func(t *testing.T) {
		_, err := LoadFrom(writeConfig(t, `
[database]
driver = "oracle"
`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.driver")
	})

	t.Run("rejects malformed dates", func(t *testing.T) {
		_, err := LoadFrom(writeConfig(t, `
[generator]
start_date = "01/03/2024"
`))
		require.Error(t, err)
	})

	t.Run("rejects inverted date range", func(t *testing.T) {
		_, err := LoadFrom(writeConfig(t, `
[generator]
start_date = "2024-06-30"
end_date = "2024-01-01"
`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "before")
	})

	t.Run("rejects negative customer count", func(t *testing.T) {
		_, err := LoadFrom(writeConfig(t, `
[generator]
customer_count = -5
`))
		require.Error(t, err)
	})

	t.Run("rejects idle conns above open conns", func(t *testing.T) {
		_, err := LoadFrom(writeConfig(t, `
[database]
max_open_conns = 2
max_idle_conns = 5
`))
		require.Error(t, err)
	})
}

func TestGeneratorConfig_DateRange(t *testing.T) {
	g := GeneratorConfig{StartDate: "2024-01-01", EndDate: "2024-06-30"}
	start, end, err := g.DateRange()
	require.NoError(t, err)
	assert.Equal(t, 2024, start.Year())
	assert.Equal(t, 6, int(end.Month()))
	assert.Equal(t, 30, end.Day())
}
