package sales

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Payment methods and shipping statuses assigned by weighted draw
const (
	PaymentCreditCard   = "Credit Card"
	PaymentPayPal       = "PayPal"
	PaymentBankTransfer = "Bank Transfer"
	PaymentCash         = "Cash"

	ShippingDelivered  = "Delivered"
	ShippingShipped    = "Shipped"
	ShippingProcessing = "Processing"
	ShippingPending    = "Pending"
)

// Transaction is a single generated sale. All calendar fields and the
// financial derivations are computed from the transaction date and the
// pricing inputs; transactions are never mutated after generation.
type Transaction struct {
	TransactionID  int64           `gorm:"column:transaction_id;primaryKey;autoIncrement" json:"transaction_id"`
	OrderID        string          `gorm:"column:order_id;type:varchar(30);not null;uniqueIndex" json:"order_id"`
	CustomerID     string          `gorm:"column:customer_id;type:varchar(20)" json:"customer_id"`
	ProductID      int             `gorm:"column:product_id" json:"product_id"`
	RegionID       int             `gorm:"column:region_id" json:"region_id"`
	SalesRep       string          `gorm:"column:sales_rep;type:varchar(200)" json:"sales_rep"`
	Date           time.Time       `gorm:"column:transaction_date;not null;index" json:"transaction_date"`
	Quantity       int             `gorm:"column:quantity;not null" json:"quantity"`
	UnitPrice      decimal.Decimal `gorm:"column:unit_price;type:decimal(18,2);not null" json:"unit_price"`
	TotalSales     decimal.Decimal `gorm:"column:total_sales;type:decimal(18,2);not null" json:"total_sales"`
	CostPrice      decimal.Decimal `gorm:"column:cost_price;type:decimal(18,2);not null" json:"cost_price"`
	TotalCost      decimal.Decimal `gorm:"column:total_cost;type:decimal(18,2);not null" json:"total_cost"`
	Profit         decimal.Decimal `gorm:"column:profit;type:decimal(18,2);not null" json:"profit"`
	MarginPercent  decimal.Decimal `gorm:"column:margin_percent;type:decimal(18,2);not null" json:"margin_percent"`
	PaymentMethod  string          `gorm:"column:payment_method;type:varchar(30)" json:"payment_method"`
	ShippingStatus string          `gorm:"column:shipping_status;type:varchar(30)" json:"shipping_status"`
	DayOfWeek      string          `gorm:"column:day_of_week;type:varchar(12)" json:"day_of_week"`
	Month          string          `gorm:"column:month;type:varchar(12)" json:"month"`
	Quarter        string          `gorm:"column:quarter;type:varchar(4)" json:"quarter"`
	Year           int             `gorm:"column:year" json:"year"`
	IsWeekend      bool            `gorm:"column:is_weekend" json:"is_weekend"`
	SeasonalFactor float64         `gorm:"column:seasonal_factor;not null;default:1.0" json:"seasonal_factor"`
	Notes          string          `gorm:"column:notes;type:text" json:"notes"`
}

// TableName returns the table name for GORM
func (Transaction) TableName() string {
	return "sales_transactions"
}

// IsWeekendDay reports whether d falls on a Saturday or Sunday.
// Uses the Monday=0 convention: day-of-week index >= 5 is a weekend.
func IsWeekendDay(d time.Time) bool {
	return mondayIndexed(d) >= 5
}

func mondayIndexed(d time.Time) int {
	return (int(d.Weekday()) + 6) % 7
}

// SeasonalFactorFor returns the demand multiplier for a calendar month:
// 1.5 in the holiday season (Nov, Dec), 0.8 in the summer lull (Jun, Jul),
// 1.0 otherwise.
func SeasonalFactorFor(m time.Month) float64 {
	switch m {
	case time.November, time.December:
		return 1.5
	case time.June, time.July:
		return 0.8
	default:
		return 1.0
	}
}

// WeekendFactorFor returns the weekend demand multiplier for a date
func WeekendFactorFor(d time.Time) float64 {
	if IsWeekendDay(d) {
		return 1.4
	}
	return 1.0
}

// QuarterOf formats the calendar quarter of a month as Q1..Q4
func QuarterOf(m time.Month) string {
	return fmt.Sprintf("Q%d", (int(m)-1)/3+1)
}

// OrderID formats a globally unique order identifier from the transaction
// date and a monotonically increasing counter.
func OrderID(d time.Time, counter int) string {
	return fmt.Sprintf("ORD%s%d", d.Format("20060102"), counter)
}

// MarginPercent derives profit as a percentage of total sales, rounded to
// two places. Returns zero when totalSales is zero.
func MarginPercent(profit, totalSales decimal.Decimal) decimal.Decimal {
	if totalSales.IsZero() {
		return decimal.Zero
	}
	return profit.Div(totalSales).Mul(decimal.NewFromInt(100)).Round(2)
}
