package persistence

import (
	"context"

	"github.com/salesdash/backend/internal/domain/sales"
	"github.com/salesdash/backend/internal/domain/shared"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DefaultBatchSize is the number of transaction rows committed per chunk
const DefaultBatchSize = 1000

// SalesStore persists generated datasets into the relational schema
type SalesStore struct {
	db        *Database
	log       *zap.Logger
	batchSize int
}

// NewSalesStore creates a store. batchSize <= 0 selects DefaultBatchSize.
func NewSalesStore(db *Database, log *zap.Logger, batchSize int) *SalesStore {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &SalesStore{db: db, log: log, batchSize: batchSize}
}

// SaveDataset writes a generated dataset into a freshly initialized schema.
// Catalog entities go in first so foreign keys resolve; transactions are
// inserted in chunks, each committed in its own transaction, so a mid-run
// failure leaves earlier chunks durably written. Customer totals are
// recomputed in a single pass at the end.
func (s *SalesStore) SaveDataset(ctx context.Context, ds *sales.Dataset) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.WithContext(ctx).Create(ds.Products).Error; err != nil {
			return err
		}
		if err := tx.WithContext(ctx).Create(ds.Regions).Error; err != nil {
			return err
		}
		return tx.WithContext(ctx).Create(ds.Customers).Error
	})
	if err != nil {
		return shared.NewStorageError("inserting catalog entities: %v", err)
	}

	total := len(ds.Transactions)
	for start := 0; start < total; start += s.batchSize {
		end := min(start+s.batchSize, total)
		chunk := ds.Transactions[start:end]

		err := s.db.Transaction(func(tx *gorm.DB) error {
			return tx.WithContext(ctx).Create(&chunk).Error
		})
		if err != nil {
			return shared.NewStorageError("inserting transactions %d..%d of %d: %v", start, end, total, err)
		}
		s.log.Debug("transaction chunk committed",
			zap.Int("from", start),
			zap.Int("to", end),
			zap.Int("total", total),
		)
	}

	if err := s.RecomputeCustomerTotals(ctx); err != nil {
		return err
	}

	s.log.Info("dataset persisted",
		zap.String("run_id", ds.RunID.String()),
		zap.Int("products", len(ds.Products)),
		zap.Int("regions", len(ds.Regions)),
		zap.Int("customers", len(ds.Customers)),
		zap.Int("transactions", total),
	)
	return nil
}

// RecomputeCustomerTotals sets every customer's total_purchases to the sum
// of their transactions' total_sales. Customers without transactions get 0.
func (s *SalesStore) RecomputeCustomerTotals(ctx context.Context) error {
	err := s.db.DB.WithContext(ctx).Exec(`
		UPDATE customers
		SET total_purchases = (
			SELECT COALESCE(SUM(total_sales), 0)
			FROM sales_transactions st
			WHERE st.customer_id = customers.customer_id
		)`).Error
	if err != nil {
		return shared.NewStorageError("recomputing customer totals: %v", err)
	}
	return nil
}

// DatabaseStats summarizes the persisted dataset
type DatabaseStats struct {
	Products     int64
	Regions      int64
	Customers    int64
	Transactions int64
	FirstDate    string
	LastDate     string
	TotalSales   float64
	TotalProfit  float64
	AvgMargin    float64
}

// Stats reads row counts, the covered date range and the financial totals
func (s *SalesStore) Stats(ctx context.Context) (*DatabaseStats, error) {
	db := s.db.DB.WithContext(ctx)
	stats := &DatabaseStats{}

	counts := []struct {
		model any
		dest  *int64
	}{
		{&sales.Product{}, &stats.Products},
		{&sales.Region{}, &stats.Regions},
		{&sales.Customer{}, &stats.Customers},
		{&sales.Transaction{}, &stats.Transactions},
	}
	for _, c := range counts {
		if err := db.Model(c.model).Count(c.dest).Error; err != nil {
			return nil, shared.NewStorageError("counting rows: %v", err)
		}
	}

	row := db.Raw(`
		SELECT
			COALESCE(CAST(MIN(transaction_date) AS TEXT), ''),
			COALESCE(CAST(MAX(transaction_date) AS TEXT), ''),
			COALESCE(SUM(total_sales), 0),
			COALESCE(SUM(profit), 0),
			COALESCE(AVG(margin_percent), 0)
		FROM sales_transactions`).Row()
	if err := row.Scan(&stats.FirstDate, &stats.LastDate, &stats.TotalSales, &stats.TotalProfit, &stats.AvgMargin); err != nil {
		return nil, shared.NewStorageError("reading transaction stats: %v", err)
	}

	return stats, nil
}
