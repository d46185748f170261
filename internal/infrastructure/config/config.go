package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Generator GeneratorConfig
	Log       LogConfig
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name string
	Env  string
}

// DatabaseConfig holds database connection settings.
// Driver selects the backend: "sqlite" (default) or "postgres".
type DatabaseConfig struct {
	Driver string
	// Path is the sqlite database file, or ":memory:" for an in-memory DB
	Path string
	// Postgres settings, ignored for sqlite
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int // in minutes
	ConnMaxIdleTime int // in minutes
}

// GeneratorConfig holds the synthetic dataset generation parameters
type GeneratorConfig struct {
	Seed                  int64  `validate:"required"`
	StartDate             string `validate:"required,datetime=2006-01-02"`
	EndDate               string `validate:"required,datetime=2006-01-02"`
	CustomerCount         int    `validate:"min=1"`
	BaseDailyTransactions int    `validate:"min=1"`
	BatchSize             int    `validate:"min=1"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// Load loads configuration from TOML file and environment variables
// Priority (highest to lowest):
// 1. Environment variables with SALES_ prefix (e.g., SALES_DATABASE_PATH)
// 2. config.toml
// 3. Built-in defaults
func Load() (*Config, error) {
	return LoadFrom("")
}

// LoadFrom loads configuration, optionally from an explicit file path
func LoadFrom(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("toml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	v.SetEnvPrefix("SALES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
		},
		Database: DatabaseConfig{
			Driver:          v.GetString("database.driver"),
			Path:            v.GetString("database.path"),
			Host:            v.GetString("database.host"),
			Port:            v.GetInt("database.port"),
			User:            v.GetString("database.user"),
			Password:        v.GetString("database.password"),
			DBName:          v.GetString("database.dbname"),
			SSLMode:         v.GetString("database.sslmode"),
			MaxOpenConns:    v.GetInt("database.max_open_conns"),
			MaxIdleConns:    v.GetInt("database.max_idle_conns"),
			ConnMaxLifetime: v.GetInt("database.conn_max_lifetime"),
			ConnMaxIdleTime: v.GetInt("database.conn_max_idle_time"),
		},
		Generator: GeneratorConfig{
			Seed:                  v.GetInt64("generator.seed"),
			StartDate:             v.GetString("generator.start_date"),
			EndDate:               v.GetString("generator.end_date"),
			CustomerCount:         v.GetInt("generator.customer_count"),
			BaseDailyTransactions: v.GetInt("generator.base_daily_transactions"),
			BatchSize:             v.GetInt("generator.batch_size"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
	}

	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults sets default values for any empty config fields
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "salesdash"
	}
	if cfg.App.Env == "" {
		cfg.App.Env = "development"
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "sqlite"
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "sales.db"
	}
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Database.User == "" {
		cfg.Database.User = "postgres"
	}
	if cfg.Database.DBName == "" {
		cfg.Database.DBName = "sales"
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 2
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 60
	}
	if cfg.Database.ConnMaxIdleTime == 0 {
		cfg.Database.ConnMaxIdleTime = 30
	}
	if cfg.Generator.Seed == 0 {
		cfg.Generator.Seed = 42
	}
	if cfg.Generator.StartDate == "" {
		cfg.Generator.StartDate = "2024-01-01"
	}
	if cfg.Generator.EndDate == "" {
		cfg.Generator.EndDate = "2024-06-30"
	}
	if cfg.Generator.CustomerCount == 0 {
		cfg.Generator.CustomerCount = 100
	}
	if cfg.Generator.BaseDailyTransactions == 0 {
		cfg.Generator.BaseDailyTransactions = 25
	}
	if cfg.Generator.BatchSize == 0 {
		cfg.Generator.BatchSize = 1000
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "stdout"
	}
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	switch c.Database.Driver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("database.driver must be \"sqlite\" or \"postgres\", got %q", c.Database.Driver)
	}
	if c.Database.MaxIdleConns > c.Database.MaxOpenConns {
		return fmt.Errorf("database.max_idle_conns (%d) cannot exceed database.max_open_conns (%d)",
			c.Database.MaxIdleConns, c.Database.MaxOpenConns)
	}

	if err := validator.New().Struct(c.Generator); err != nil {
		return fmt.Errorf("invalid generator config: %w", err)
	}
	start, err := time.Parse("2006-01-02", c.Generator.StartDate)
	if err != nil {
		return fmt.Errorf("generator.start_date: %w", err)
	}
	end, err := time.Parse("2006-01-02", c.Generator.EndDate)
	if err != nil {
		return fmt.Errorf("generator.end_date: %w", err)
	}
	if end.Before(start) {
		return fmt.Errorf("generator.end_date %s is before generator.start_date %s",
			c.Generator.EndDate, c.Generator.StartDate)
	}

	return nil
}

// DateRange parses the configured generation window
func (g *GeneratorConfig) DateRange() (start, end time.Time, err error) {
	start, err = time.Parse("2006-01-02", g.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("start_date: %w", err)
	}
	end, err = time.Parse("2006-01-02", g.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("end_date: %w", err)
	}
	return start, end, nil
}
