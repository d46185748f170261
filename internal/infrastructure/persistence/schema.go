package persistence

import (
	"github.com/salesdash/backend/internal/domain/shared"
)

// InitSchema drops any existing sales tables and views and recreates them.
// Re-running against a previously seeded target is safe: the semantics are
// drop-and-recreate, not incremental merge.
func (d *Database) InitSchema() error {
	for _, stmt := range schemaStatements(d.dialect()) {
		if err := d.DB.Exec(stmt).Error; err != nil {
			return shared.NewStorageError("schema statement failed: %v", err)
		}
	}
	return nil
}

// schemaStatements returns the DDL in execution order. Views are dropped
// before the tables they read; tables are dropped children-first so foreign
// keys never dangle.
func schemaStatements(dialect string) []string {
	transactionID := "INTEGER PRIMARY KEY AUTOINCREMENT"
	money := "REAL"
	if dialect == "postgres" {
		transactionID = "BIGSERIAL PRIMARY KEY"
		money = "NUMERIC(18,2)"
	}

	return []string{
		`DROP VIEW IF EXISTS daily_sales_summary`,
		`DROP VIEW IF EXISTS top_products_view`,
		`DROP TABLE IF EXISTS sales_transactions`,
		`DROP TABLE IF EXISTS customers`,
		`DROP TABLE IF EXISTS products`,
		`DROP TABLE IF EXISTS regions`,

		`CREATE TABLE products (
			product_id INTEGER PRIMARY KEY,
			product_name TEXT NOT NULL,
			category TEXT NOT NULL,
			base_price ` + money + ` NOT NULL,
			cost_price ` + money + ` NOT NULL,
			supplier TEXT
		)`,

		`CREATE TABLE regions (
			region_id INTEGER PRIMARY KEY,
			region_name TEXT NOT NULL UNIQUE,
			manager TEXT,
			target_sales ` + money + ` DEFAULT 0
		)`,

		`CREATE TABLE customers (
			customer_id TEXT PRIMARY KEY,
			customer_name TEXT,
			email TEXT,
			region_id INTEGER,
			customer_segment TEXT,
			first_purchase_date TIMESTAMP,
			total_purchases ` + money + ` DEFAULT 0,
			FOREIGN KEY (region_id) REFERENCES regions (region_id)
		)`,

		`CREATE TABLE sales_transactions (
			transaction_id ` + transactionID + `,
			order_id TEXT NOT NULL UNIQUE,
			customer_id TEXT,
			product_id INTEGER,
			region_id INTEGER,
			sales_rep TEXT,
			transaction_date TIMESTAMP NOT NULL,
			quantity INTEGER NOT NULL CHECK(quantity > 0),
			unit_price ` + money + ` NOT NULL CHECK(unit_price > 0),
			total_sales ` + money + ` NOT NULL CHECK(total_sales > 0),
			cost_price ` + money + ` NOT NULL,
			total_cost ` + money + ` NOT NULL,
			profit ` + money + ` NOT NULL,
			margin_percent ` + money + ` NOT NULL,
			payment_method TEXT,
			shipping_status TEXT,
			day_of_week TEXT,
			month TEXT,
			quarter TEXT,
			year INTEGER,
			is_weekend BOOLEAN,
			seasonal_factor REAL DEFAULT 1.0,
			notes TEXT,
			FOREIGN KEY (customer_id) REFERENCES customers (customer_id),
			FOREIGN KEY (product_id) REFERENCES products (product_id),
			FOREIGN KEY (region_id) REFERENCES regions (region_id)
		)`,

		`CREATE INDEX idx_transaction_date ON sales_transactions(transaction_date)`,
		`CREATE INDEX idx_product_id ON sales_transactions(product_id)`,
		`CREATE INDEX idx_region_id ON sales_transactions(region_id)`,
		`CREATE INDEX idx_customer_id ON sales_transactions(customer_id)`,

		`CREATE VIEW daily_sales_summary AS
		SELECT
			transaction_date,
			COUNT(*) as transaction_count,
			SUM(total_sales) as daily_sales,
			SUM(profit) as daily_profit,
			AVG(margin_percent) as avg_margin
		FROM sales_transactions
		GROUP BY transaction_date
		ORDER BY transaction_date DESC`,

		`CREATE VIEW top_products_view AS
		SELECT
			p.product_name,
			p.category,
			COUNT(st.transaction_id) as sales_count,
			SUM(st.total_sales) as total_revenue,
			SUM(st.profit) as total_profit,
			AVG(st.margin_percent) as avg_margin
		FROM sales_transactions st
		JOIN products p ON st.product_id = p.product_id
		GROUP BY p.product_name, p.category
		ORDER BY total_revenue DESC`,
	}
}
