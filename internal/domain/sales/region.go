package sales

import (
	"github.com/salesdash/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Region is a sales region with a manager and a sales target.
// Regions are created once at initialization and never mutated.
type Region struct {
	RegionID    int             `gorm:"column:region_id;primaryKey" json:"region_id"`
	Name        string          `gorm:"column:region_name;type:varchar(100);not null;uniqueIndex" json:"region_name"`
	Manager     string          `gorm:"column:manager;type:varchar(200)" json:"manager"`
	TargetSales decimal.Decimal `gorm:"column:target_sales;type:decimal(18,2);not null;default:0" json:"target_sales"`
}

// TableName returns the table name for GORM
func (Region) TableName() string {
	return "regions"
}

// RegionPricing carries the per-region generation inputs: the sales rep
// assigned to the region's orders and the multiplier applied to base prices.
type RegionPricing struct {
	SalesRep        string
	PriceMultiplier decimal.Decimal
}

// PricingTable maps region names to their pricing entries
type PricingTable map[string]RegionPricing

// Validate checks that every region has a pricing entry with a positive
// multiplier and a non-empty sales rep. Generation fails fast on gaps so a
// partially covered region list never produces a partial dataset.
func (t PricingTable) Validate(regions []Region) error {
	for _, r := range regions {
		entry, ok := t[r.Name]
		if !ok {
			return shared.NewValidationError("region %q has no pricing entry", r.Name)
		}
		if entry.SalesRep == "" {
			return shared.NewValidationError("region %q has no sales rep assigned", r.Name)
		}
		if !entry.PriceMultiplier.IsPositive() {
			return shared.NewValidationError("region %q price multiplier must be positive", r.Name)
		}
	}
	return nil
}

// DefaultPricingTable returns the pricing entries for the default regions
func DefaultPricingTable() PricingTable {
	return PricingTable{
		"North America": {SalesRep: "Alex Johnson", PriceMultiplier: decimal.NewFromFloat(1.00)},
		"Europe":        {SalesRep: "Maria Garcia", PriceMultiplier: decimal.NewFromFloat(1.10)},
		"Asia Pacific":  {SalesRep: "David Chen", PriceMultiplier: decimal.NewFromFloat(0.95)},
		"Latin America": {SalesRep: "Sarah Williams", PriceMultiplier: decimal.NewFromFloat(0.85)},
		"Middle East":   {SalesRep: "James Brown", PriceMultiplier: decimal.NewFromFloat(1.20)},
	}
}

// DefaultRegions returns the demo region list.
// IDs are assigned in list order starting at 1.
func DefaultRegions() []Region {
	entries := []struct {
		name    string
		manager string
		target  int64
	}{
		{"North America", "Sarah Johnson", 250000},
		{"Europe", "Michael Chen", 200000},
		{"Asia Pacific", "Priya Sharma", 180000},
		{"Latin America", "Carlos Rodriguez", 120000},
		{"Middle East", "Ahmed Al-Farsi", 80000},
	}

	regions := make([]Region, 0, len(entries))
	for i, e := range entries {
		regions = append(regions, Region{
			RegionID:    i + 1,
			Name:        e.name,
			Manager:     e.manager,
			TargetSales: decimal.NewFromInt(e.target),
		})
	}
	return regions
}
