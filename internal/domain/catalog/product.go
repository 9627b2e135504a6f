package catalog

import (
	"github.com/mycofresh/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Product is a sellable item. Prices are per-unit defaults; the actual price
// charged lives on each sale line item.
type Product struct {
	shared.BaseEntity
	Name         string          `gorm:"size:100;uniqueIndex;not null" json:"name"`
	DefaultPrice decimal.Decimal `gorm:"type:numeric(12,2);column:default_price" json:"defaultPrice"`
	Unit         string          `gorm:"size:20;not null;default:'kg'" json:"unit"`
}

// TableName returns the database table name
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product. An empty unit defaults to kilograms.
func NewProduct(name string, defaultPrice decimal.Decimal, unit string) (*Product, error) {
	if name == "" {
		return nil, shared.NewValidationError("Product name is required")
	}
	if unit == "" {
		unit = "kg"
	}
	return &Product{
		BaseEntity:   shared.NewBaseEntity("prod"),
		Name:         name,
		DefaultPrice: defaultPrice,
		Unit:         unit,
	}, nil
}
