package sales

import (
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/salesdash/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Generation constants
const (
	// DefaultBaseDailyTransactions is the pre-multiplier daily volume
	DefaultBaseDailyTransactions = 25

	// MinDailyTransactions and MaxDailyTransactions clamp the daily volume
	// after all multipliers are applied
	MinDailyTransactions = 10
	MaxDailyTransactions = 60

	// orderCounterStart seeds the order counter; it is incremented before
	// each use, so the first order of a run carries counter 1001
	orderCounterStart = 1000

	transactionNotes = "Sample transaction for demo"
)

// Params holds the generation inputs. All randomization is driven by Seed;
// equal Params produce identical datasets.
type Params struct {
	Seed                  int64
	StartDate             time.Time
	EndDate               time.Time
	Catalog               []Product
	Regions               []Region
	Pricing               PricingTable
	CustomerCount         int
	BaseDailyTransactions int
}

// DefaultParams returns the demo generation inputs: six months of daily
// data for the built-in catalog and regions, seeded with 42.
func DefaultParams() Params {
	return Params{
		Seed:                  42,
		StartDate:             time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:               time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
		Catalog:               DefaultCatalog(),
		Regions:               DefaultRegions(),
		Pricing:               DefaultPricingTable(),
		CustomerCount:         100,
		BaseDailyTransactions: DefaultBaseDailyTransactions,
	}
}

// Generator produces a reproducible sales dataset from validated Params.
// The pseudorandom source is constructed per run from the seed and threaded
// through every draw; there is no package-level randomness.
type Generator struct {
	params Params
}

// NewGenerator validates params and returns a generator.
// Missing optional inputs (pricing table, base volume) get defaults before
// validation.
func NewGenerator(params Params) (*Generator, error) {
	if params.Pricing == nil {
		params.Pricing = DefaultPricingTable()
	}
	if params.BaseDailyTransactions == 0 {
		params.BaseDailyTransactions = DefaultBaseDailyTransactions
	}
	params.StartDate = dateOnly(params.StartDate)
	params.EndDate = dateOnly(params.EndDate)

	if err := validateParams(params); err != nil {
		return nil, err
	}
	return &Generator{params: params}, nil
}

func validateParams(p Params) error {
	if p.EndDate.Before(p.StartDate) {
		return shared.NewValidationError("date range is empty: end %s before start %s",
			p.EndDate.Format("2006-01-02"), p.StartDate.Format("2006-01-02"))
	}
	if len(p.Catalog) == 0 {
		return shared.NewValidationError("product catalog cannot be empty")
	}
	if len(p.Regions) == 0 {
		return shared.NewValidationError("region list cannot be empty")
	}
	if p.CustomerCount < 1 {
		return shared.NewValidationError("customer count must be at least 1, got %d", p.CustomerCount)
	}
	if p.BaseDailyTransactions < 1 {
		return shared.NewValidationError("base daily transactions must be at least 1, got %d", p.BaseDailyTransactions)
	}
	for _, product := range p.Catalog {
		// Below one cent the 2-place rounding of the jittered unit price can
		// collapse to 0.00, which the storage layer rejects.
		if product.BasePrice.LessThan(minCatalogPrice) || product.CostPrice.LessThan(minCatalogPrice) {
			return shared.NewValidationError("product %q pricing must be at least %s", product.Name, minCatalogPrice)
		}
	}
	return p.Pricing.Validate(p.Regions)
}

// Generate walks every calendar day in the range and produces the full
// dataset: the unmutated catalog and regions, the seeded customers, and one
// batch of transactions, with customer totals recomputed at the end.
func (g *Generator) Generate() (*Dataset, error) {
	p := g.params
	rng := rand.New(rand.NewSource(p.Seed))
	faker := gofakeit.New(p.Seed)

	dataset := &Dataset{
		RunID:     uuid.New(),
		Seed:      p.Seed,
		StartDate: p.StartDate,
		EndDate:   p.EndDate,
		Products:  append([]Product(nil), p.Catalog...),
		Regions:   append([]Region(nil), p.Regions...),
		Customers: g.generateCustomers(faker),
	}

	orderCounter := orderCounterStart
	for day := p.StartDate; !day.After(p.EndDate); day = day.AddDate(0, 0, 1) {
		count := g.dailyTransactionCount(rng, day)
		for i := 0; i < count; i++ {
			orderCounter++
			dataset.Transactions = append(dataset.Transactions, g.generateTransaction(rng, day, orderCounter))
		}
	}

	dataset.RecomputeCustomerTotals()
	return dataset, nil
}

// generateCustomers seeds CustomerCount buyers. Identities come from the
// seeded faker; region, segment and first-purchase date are index-derived
// so the roster is stable across runs with the same inputs.
func (g *Generator) generateCustomers(faker *gofakeit.Faker) []Customer {
	p := g.params
	startYear := p.StartDate.Year()

	customers := make([]Customer, 0, p.CustomerCount)
	for i := 1; i <= p.CustomerCount; i++ {
		region := p.Regions[i%len(p.Regions)]
		segment := SegmentStandard
		if i%4 == 0 {
			segment = SegmentPremium
		}
		customers = append(customers, Customer{
			CustomerID:     CustomerID(i),
			Name:           faker.Name(),
			Email:          faker.Email(),
			RegionID:       region.RegionID,
			Segment:        segment,
			FirstPurchase:  time.Date(startYear, time.Month(i%12+1), i%28+1, 0, 0, 0, 0, time.UTC),
			TotalPurchases: decimal.Zero,
		})
	}
	return customers
}

// dailyTransactionCount applies the seasonal, weekend and uniform [0.8,1.2]
// multipliers to the base volume, truncates, and clamps to the daily bounds.
func (g *Generator) dailyTransactionCount(rng *rand.Rand, day time.Time) int {
	seasonal := SeasonalFactorFor(day.Month())
	weekend := WeekendFactorFor(day)
	volume := rng.Float64()*0.4 + 0.8

	count := int(float64(g.params.BaseDailyTransactions) * seasonal * weekend * volume)
	if count < MinDailyTransactions {
		return MinDailyTransactions
	}
	if count > MaxDailyTransactions {
		return MaxDailyTransactions
	}
	return count
}

// generateTransaction draws one transaction for a day. The draw order is
// fixed (product, region, customer, price jitter, quantity, payment,
// shipping) and is part of the determinism contract.
func (g *Generator) generateTransaction(rng *rand.Rand, day time.Time, orderCounter int) Transaction {
	p := g.params

	product := p.Catalog[rng.Intn(len(p.Catalog))]
	region := p.Regions[rng.Intn(len(p.Regions))]
	customerID := CustomerID(rng.Intn(p.CustomerCount) + 1)
	pricing := p.Pricing[region.Name]

	jitter := rng.Float64()*0.16 + 0.92
	unitPrice := product.BasePrice.
		Mul(pricing.PriceMultiplier).
		Mul(decimal.NewFromFloat(jitter)).
		Round(2)

	quantity := quantityChoice.Pick(rng)
	qty := decimal.NewFromInt(int64(quantity))

	seasonal := SeasonalFactorFor(day.Month())
	weekendFactor := WeekendFactorFor(day)
	totalSales := unitPrice.Mul(qty).
		Mul(decimal.NewFromFloat(seasonal)).
		Mul(decimal.NewFromFloat(weekendFactor)).
		Round(2)
	totalCost := product.CostPrice.Mul(qty).Round(2)
	profit := totalSales.Sub(totalCost)

	return Transaction{
		OrderID:        OrderID(day, orderCounter),
		CustomerID:     customerID,
		ProductID:      product.ProductID,
		RegionID:       region.RegionID,
		SalesRep:       pricing.SalesRep,
		Date:           day,
		Quantity:       quantity,
		UnitPrice:      unitPrice,
		TotalSales:     totalSales,
		CostPrice:      product.CostPrice,
		TotalCost:      totalCost,
		Profit:         profit,
		MarginPercent:  MarginPercent(profit, totalSales),
		PaymentMethod:  paymentChoice.Pick(rng),
		ShippingStatus: shippingChoice.Pick(rng),
		DayOfWeek:      day.Weekday().String(),
		Month:          day.Month().String(),
		Quarter:        QuarterOf(day.Month()),
		Year:           day.Year(),
		IsWeekend:      IsWeekendDay(day),
		SeasonalFactor: SeasonalFactorFor(day.Month()),
		Notes:          transactionNotes,
	}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
