package sales

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Dataset is the full output of one generation run: the unmutated catalog
// and region entities, the seeded customers, and the generated transactions.
type Dataset struct {
	RunID        uuid.UUID
	Seed         int64
	StartDate    time.Time
	EndDate      time.Time
	Products     []Product
	Regions      []Region
	Customers    []Customer
	Transactions []Transaction
}

// RecomputeCustomerTotals sets every customer's TotalPurchases to the sum
// of TotalSales across that customer's transactions. Customers with no
// transactions keep zero.
func (d *Dataset) RecomputeCustomerTotals() {
	totals := make(map[string]decimal.Decimal, len(d.Customers))
	for _, t := range d.Transactions {
		totals[t.CustomerID] = totals[t.CustomerID].Add(t.TotalSales)
	}
	for i := range d.Customers {
		d.Customers[i].TotalPurchases = totals[d.Customers[i].CustomerID]
	}
}

// TotalSales sums TotalSales across all transactions
func (d *Dataset) TotalSales() decimal.Decimal {
	sum := decimal.Zero
	for _, t := range d.Transactions {
		sum = sum.Add(t.TotalSales)
	}
	return sum
}

// DailySummaryRow is one day's aggregate, mirroring the
// daily_sales_summary view of the persisted dataset.
type DailySummaryRow struct {
	Date             time.Time
	TransactionCount int
	DailySales       decimal.Decimal
	DailyProfit      decimal.Decimal
	AvgMargin        decimal.Decimal
}

// DailySummary aggregates transactions per day, most recent day first
func (d *Dataset) DailySummary() []DailySummaryRow {
	byDay := make(map[time.Time]*DailySummaryRow)
	marginSums := make(map[time.Time]decimal.Decimal)
	for _, t := range d.Transactions {
		row, ok := byDay[t.Date]
		if !ok {
			row = &DailySummaryRow{Date: t.Date}
			byDay[t.Date] = row
		}
		row.TransactionCount++
		row.DailySales = row.DailySales.Add(t.TotalSales)
		row.DailyProfit = row.DailyProfit.Add(t.Profit)
		marginSums[t.Date] = marginSums[t.Date].Add(t.MarginPercent)
	}

	rows := make([]DailySummaryRow, 0, len(byDay))
	for day, row := range byDay {
		row.AvgMargin = marginSums[day].Div(decimal.NewFromInt(int64(row.TransactionCount))).Round(2)
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Date.After(rows[j].Date)
	})
	return rows
}

// ProductSummaryRow is one product's aggregate, mirroring the
// top_products_view of the persisted dataset.
type ProductSummaryRow struct {
	ProductName  string
	Category     string
	SalesCount   int
	TotalRevenue decimal.Decimal
	TotalProfit  decimal.Decimal
	AvgMargin    decimal.Decimal
}

// ProductSummary aggregates transactions per product, highest revenue first
func (d *Dataset) ProductSummary() []ProductSummaryRow {
	names := make(map[int]Product, len(d.Products))
	for _, p := range d.Products {
		names[p.ProductID] = p
	}

	byProduct := make(map[int]*ProductSummaryRow)
	marginSums := make(map[int]decimal.Decimal)
	order := make([]int, 0, len(d.Products))
	for _, t := range d.Transactions {
		row, ok := byProduct[t.ProductID]
		if !ok {
			product := names[t.ProductID]
			row = &ProductSummaryRow{ProductName: product.Name, Category: product.Category}
			byProduct[t.ProductID] = row
			order = append(order, t.ProductID)
		}
		row.SalesCount++
		row.TotalRevenue = row.TotalRevenue.Add(t.TotalSales)
		row.TotalProfit = row.TotalProfit.Add(t.Profit)
		marginSums[t.ProductID] = marginSums[t.ProductID].Add(t.MarginPercent)
	}

	rows := make([]ProductSummaryRow, 0, len(byProduct))
	for _, id := range order {
		row := byProduct[id]
		row.AvgMargin = marginSums[id].Div(decimal.NewFromInt(int64(row.SalesCount))).Round(2)
		rows = append(rows, *row)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalRevenue.GreaterThan(rows[j].TotalRevenue)
	})
	return rows
}
