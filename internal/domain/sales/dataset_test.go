package sales

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataset_DailySummary(t *testing.T) {
	ds := generate(t, testParams())
	rows := ds.DailySummary()

	days := int(ds.EndDate.Sub(ds.StartDate).Hours()/24) + 1
	require.Len(t, rows, days)

	t.Run("ordered most recent first", func(t *testing.T) {
		for i := 1; i < len(rows); i++ {
			assert.True(t, rows[i-1].Date.After(rows[i].Date))
		}
	})

	t.Run("agrees with direct recomputation", func(t *testing.T) {
		target := rows[len(rows)/2]

		count := 0
		sales := decimal.Zero
		profit := decimal.Zero
		margins := decimal.Zero
		for _, txn := range ds.Transactions {
			if !txn.Date.Equal(target.Date) {
				continue
			}
			count++
			sales = sales.Add(txn.TotalSales)
			profit = profit.Add(txn.Profit)
			margins = margins.Add(txn.MarginPercent)
		}

		require.Positive(t, count)
		assert.Equal(t, count, target.TransactionCount)
		assert.True(t, target.DailySales.Equal(sales))
		assert.True(t, target.DailyProfit.Equal(profit))
		expectedMargin := margins.Div(decimal.NewFromInt(int64(count))).Round(2)
		assert.True(t, target.AvgMargin.Equal(expectedMargin))
	})
}

func TestDataset_ProductSummary(t *testing.T) {
	ds := generate(t, testParams())
	rows := ds.ProductSummary()

	// Over six weeks of 10+ daily transactions every catalog product sells.
	require.Len(t, rows, len(ds.Products))

	t.Run("ordered by revenue descending", func(t *testing.T) {
		for i := 1; i < len(rows); i++ {
			assert.True(t, rows[i-1].TotalRevenue.GreaterThanOrEqual(rows[i].TotalRevenue))
		}
	})

	t.Run("agrees with direct recomputation", func(t *testing.T) {
		top := rows[0]

		var productID int
		for _, p := range ds.Products {
			if p.Name == top.ProductName {
				productID = p.ProductID
			}
		}
		require.Positive(t, productID)

		count := 0
		revenue := decimal.Zero
		for _, txn := range ds.Transactions {
			if txn.ProductID != productID {
				continue
			}
			count++
			revenue = revenue.Add(txn.TotalSales)
		}
		assert.Equal(t, count, top.SalesCount)
		assert.True(t, top.TotalRevenue.Equal(revenue))
	})
}

func TestDataset_RecomputeCustomerTotals(t *testing.T) {
	ds := &Dataset{
		Customers: []Customer{
			{CustomerID: "CUST10001"},
			{CustomerID: "CUST10002"},
		},
		Transactions: []Transaction{
			{CustomerID: "CUST10001", TotalSales: decimal.NewFromInt(100)},
			{CustomerID: "CUST10001", TotalSales: decimal.NewFromInt(50)},
		},
	}
	ds.RecomputeCustomerTotals()

	assert.True(t, ds.Customers[0].TotalPurchases.Equal(decimal.NewFromInt(150)))
	assert.True(t, ds.Customers[1].TotalPurchases.IsZero())
}

func TestDataset_TotalSales(t *testing.T) {
	ds := &Dataset{
		Transactions: []Transaction{
			{TotalSales: decimal.NewFromFloat(10.50)},
			{TotalSales: decimal.NewFromFloat(4.25)},
		},
	}
	assert.True(t, ds.TotalSales().Equal(decimal.NewFromFloat(14.75)))

	empty := &Dataset{StartDate: time.Now(), EndDate: time.Now()}
	assert.True(t, empty.TotalSales().IsZero())
}
