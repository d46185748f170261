package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/salesdash/backend/internal/application/generate"
	"github.com/salesdash/backend/internal/infrastructure/config"
	"github.com/salesdash/backend/internal/infrastructure/logger"
	"github.com/salesdash/backend/internal/infrastructure/persistence"
	"go.uber.org/zap"
)

func main() {
	var (
		configPath string
		logLevel   string
		format     string
		outPath    string
	)

	flag.StringVar(&configPath, "config", "", "Path to config file (default: ./config.toml)")
	flag.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&format, "format", "csv", "Export format (csv, json)")
	flag.StringVar(&outPath, "out", "", "Export output file (default: stdout)")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}
	command := args[0]

	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if logLevel == "" {
		logLevel = cfg.Log.Level
	}

	log, err := logger.New(&logger.Config{
		Level:  logLevel,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	gl := logger.NewGormLogger(log, logger.MapGormLogLevel(logLevel))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gl)
	if err != nil {
		log.Fatal("Failed to open database", zap.Error(err))
	}
	defer func() {
		_ = db.Close()
	}()

	ctx := context.Background()

	switch command {
	case "init":
		svc := generate.NewService(db, log)
		params, err := generate.ParamsFromConfig(&cfg.Generator)
		if err != nil {
			log.Fatal("Invalid generator configuration", zap.Error(err))
		}
		res, err := svc.Seed(ctx, params, cfg.Generator.BatchSize)
		if err != nil {
			log.Fatal("Seeding failed", zap.Error(err))
		}
		log.Info("Database seeded",
			zap.String("run_id", res.RunID),
			zap.String("start_date", res.StartDate),
			zap.String("end_date", res.EndDate),
			zap.Int("transactions", res.Transactions),
			zap.Float64("total_sales", res.TotalSales),
		)

	case "stats":
		store := persistence.NewSalesStore(db, log, cfg.Generator.BatchSize)
		stats, err := store.Stats(ctx)
		if err != nil {
			log.Fatal("Failed to read stats", zap.Error(err))
		}
		fmt.Printf("Products:      %d\n", stats.Products)
		fmt.Printf("Regions:       %d\n", stats.Regions)
		fmt.Printf("Customers:     %d\n", stats.Customers)
		fmt.Printf("Transactions:  %d\n", stats.Transactions)
		fmt.Printf("Date range:    %s .. %s\n", stats.FirstDate, stats.LastDate)
		fmt.Printf("Total sales:   %.2f\n", stats.TotalSales)
		fmt.Printf("Total profit:  %.2f\n", stats.TotalProfit)
		fmt.Printf("Avg margin:    %.2f%%\n", stats.AvgMargin)

	case "query":
		if len(args) < 2 {
			log.Fatal("SQL statement required. Usage: salesdb query \"<sql>\"")
		}
		sql := strings.Join(args[1:], " ")
		result := db.Query(ctx, sql)
		if !result.Success {
			log.Fatal("Query failed", zap.String("error", result.Error))
		}
		fmt.Println(strings.Join(result.Columns, "\t"))
		for _, row := range result.Rows {
			cells := make([]string, len(row))
			for i, v := range row {
				cells[i] = fmt.Sprintf("%v", v)
			}
			fmt.Println(strings.Join(cells, "\t"))
		}
		log.Info("Query executed", zap.Int("rows", result.RowCount))

	case "export":
		if len(args) < 2 {
			log.Fatal("Table name required. Usage: salesdb export <table>")
		}
		table := args[1]

		var out *os.File
		if outPath == "" {
			out = os.Stdout
		} else {
			out, err = os.Create(outPath)
			if err != nil {
				log.Fatal("Failed to create output file", zap.Error(err))
			}
			defer func() {
				_ = out.Close()
			}()
		}

		rows, err := db.ExportTable(ctx, table, format, out)
		if err != nil {
			log.Fatal("Export failed", zap.Error(err))
		}
		log.Info("Table exported",
			zap.String("table", table),
			zap.String("format", format),
			zap.Int("rows", rows),
		)

	default:
		log.Error("Unknown command", zap.String("command", command))
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`Sales Database Tool

Usage:
  salesdb [flags] <command> [arguments]

Commands:
  init                  Recreate the schema and seed it with generated data
  stats                 Show row counts and aggregate totals
  query "<sql>"         Run an ad-hoc SQL query and print the result
  export <table>        Export a table or view (csv or json)

Flags:
  -config string        Path to config file (default: ./config.toml)
  -log-level string     Log level: debug, info, warn, error
  -format string        Export format: csv, json (default: csv)
  -out string           Export output file (default: stdout)

Environment Variables:
  SALES_DATABASE_DRIVER, SALES_DATABASE_PATH, SALES_GENERATOR_SEED,
  SALES_GENERATOR_START_DATE, SALES_GENERATOR_END_DATE

Examples:
  # Seed a fresh sqlite database
  salesdb init

  # Seed with a different random seed
  SALES_GENERATOR_SEED=7 salesdb init

  # Query the daily summary view
  salesdb query "SELECT * FROM daily_sales_summary LIMIT 10"

  # Export transactions as JSON
  salesdb -format json -out transactions.json export sales_transactions`)
}
