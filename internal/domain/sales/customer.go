package sales

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Customer segments
const (
	SegmentPremium  = "Premium"
	SegmentStandard = "Standard"
)

// Customer is a generated buyer. The identity fields are seeded once;
// TotalPurchases is the only derived field, recomputed in a single pass
// after all transactions exist.
type Customer struct {
	CustomerID     string          `gorm:"column:customer_id;type:varchar(20);primaryKey" json:"customer_id"`
	Name           string          `gorm:"column:customer_name;type:varchar(200)" json:"customer_name"`
	Email          string          `gorm:"column:email;type:varchar(200)" json:"email"`
	RegionID       int             `gorm:"column:region_id" json:"region_id"`
	Segment        string          `gorm:"column:customer_segment;type:varchar(20)" json:"customer_segment"`
	FirstPurchase  time.Time       `gorm:"column:first_purchase_date" json:"first_purchase_date"`
	TotalPurchases decimal.Decimal `gorm:"column:total_purchases;type:decimal(18,2);not null;default:0" json:"total_purchases"`
}

// TableName returns the table name for GORM
func (Customer) TableName() string {
	return "customers"
}

// CustomerID formats the identifier for the i-th generated customer (1-based)
func CustomerID(i int) string {
	return fmt.Sprintf("CUST%d", 10000+i)
}
