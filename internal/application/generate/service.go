package generate

import (
	"context"
	"time"

	"github.com/salesdash/backend/internal/domain/sales"
	"github.com/salesdash/backend/internal/infrastructure/config"
	"github.com/salesdash/backend/internal/infrastructure/persistence"
	"go.uber.org/zap"
)

// Service orchestrates a full seeding run: build generation parameters from
// configuration, generate the dataset, initialize the schema and persist.
type Service struct {
	db  *persistence.Database
	log *zap.Logger
}

// NewService creates a generation service
func NewService(db *persistence.Database, log *zap.Logger) *Service {
	return &Service{db: db, log: log}
}

// Result summarizes a completed seeding run
type Result struct {
	RunID        string
	Transactions int
	TotalSales   float64
	StartDate    string
	EndDate      string
}

// ParamsFromConfig maps the generator configuration onto generation params,
// using the built-in demo catalog, regions and pricing table.
func ParamsFromConfig(gc *config.GeneratorConfig) (sales.Params, error) {
	start, end, err := gc.DateRange()
	if err != nil {
		return sales.Params{}, err
	}
	return sales.Params{
		Seed:                  gc.Seed,
		StartDate:             start,
		EndDate:               end,
		Catalog:               sales.DefaultCatalog(),
		Regions:               sales.DefaultRegions(),
		Pricing:               sales.DefaultPricingTable(),
		CustomerCount:         gc.CustomerCount,
		BaseDailyTransactions: gc.BaseDailyTransactions,
	}, nil
}

// Generate produces a dataset without touching storage
func (s *Service) Generate(params sales.Params) (*sales.Dataset, error) {
	gen, err := sales.NewGenerator(params)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	ds, err := gen.Generate()
	if err != nil {
		return nil, err
	}
	s.log.Info("dataset generated",
		zap.String("run_id", ds.RunID.String()),
		zap.Int64("seed", params.Seed),
		zap.Int("transactions", len(ds.Transactions)),
		zap.Duration("elapsed", time.Since(started)),
	)
	return ds, nil
}

// Seed generates a dataset and persists it into a recreated schema
func (s *Service) Seed(ctx context.Context, params sales.Params, batchSize int) (*Result, error) {
	ds, err := s.Generate(params)
	if err != nil {
		return nil, err
	}

	if err := s.db.InitSchema(); err != nil {
		return nil, err
	}

	store := persistence.NewSalesStore(s.db, s.log, batchSize)
	if err := store.SaveDataset(ctx, ds); err != nil {
		return nil, err
	}

	totalSales, _ := ds.TotalSales().Float64()
	return &Result{
		RunID:        ds.RunID.String(),
		Transactions: len(ds.Transactions),
		TotalSales:   totalSales,
		StartDate:    ds.StartDate.Format("2006-01-02"),
		EndDate:      ds.EndDate.Format("2006-01-02"),
	}, nil
}
