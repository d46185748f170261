package sales

import (
	"github.com/salesdash/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// minCatalogPrice is the smallest admissible catalog price. Prices round to
// two places, so anything below one cent is not representable.
var minCatalogPrice = decimal.New(1, -2)

// Product is an item in the static sales catalog.
// Catalog entries are created once at initialization and never mutated.
type Product struct {
	ProductID int             `gorm:"column:product_id;primaryKey" json:"product_id"`
	Name      string          `gorm:"column:product_name;type:varchar(200);not null" json:"product_name"`
	Category  string          `gorm:"column:category;type:varchar(100);not null" json:"category"`
	BasePrice decimal.Decimal `gorm:"column:base_price;type:decimal(18,2);not null" json:"base_price"`
	CostPrice decimal.Decimal `gorm:"column:cost_price;type:decimal(18,2);not null" json:"cost_price"`
	Supplier  string          `gorm:"column:supplier;type:varchar(200)" json:"supplier"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a catalog product after validating its pricing
func NewProduct(id int, name, category string, basePrice, costPrice decimal.Decimal, supplier string) (*Product, error) {
	if id <= 0 {
		return nil, shared.NewValidationError("product id must be positive, got %d", id)
	}
	if name == "" {
		return nil, shared.NewValidationError("product name cannot be empty")
	}
	if basePrice.LessThan(minCatalogPrice) {
		return nil, shared.NewValidationError("product %q base price must be at least %s", name, minCatalogPrice)
	}
	if costPrice.LessThan(minCatalogPrice) {
		return nil, shared.NewValidationError("product %q cost price must be at least %s", name, minCatalogPrice)
	}
	return &Product{
		ProductID: id,
		Name:      name,
		Category:  category,
		BasePrice: basePrice,
		CostPrice: costPrice,
		Supplier:  supplier,
	}, nil
}

// DefaultCatalog returns the demo product catalog.
// IDs are assigned in catalog order starting at 1.
func DefaultCatalog() []Product {
	entries := []struct {
		name      string
		category  string
		basePrice float64
		costPrice float64
		supplier  string
	}{
		{"Laptop Pro X1", "Electronics", 899.99, 650.00, "TechSuppliers Inc"},
		{"Smartphone Alpha 12", "Electronics", 699.99, 500.00, "MobileTech Co"},
		{"Tablet Plus", "Electronics", 399.99, 280.00, "TechSuppliers Inc"},
		{"27\" Gaming Monitor", "Computers", 249.99, 180.00, "DisplayMasters"},
		{"Wireless Headphones", "Accessories", 149.99, 85.00, "AudioTech"},
		{"Mechanical Keyboard", "Accessories", 79.99, 45.00, "InputDevices Ltd"},
		{"Gaming Mouse", "Accessories", 39.99, 22.00, "InputDevices Ltd"},
		{"4K Webcam", "Accessories", 89.99, 55.00, "VideoTech Corp"},
		{"Laptop Stand", "Accessories", 34.99, 20.00, "ErgoWorks"},
		{"USB-C Hub", "Accessories", 39.99, 25.00, "Connectivity Solutions"},
	}

	catalog := make([]Product, 0, len(entries))
	for i, e := range entries {
		catalog = append(catalog, Product{
			ProductID: i + 1,
			Name:      e.name,
			Category:  e.category,
			BasePrice: decimal.NewFromFloat(e.basePrice),
			CostPrice: decimal.NewFromFloat(e.costPrice),
			Supplier:  e.supplier,
		})
	}
	return catalog
}
