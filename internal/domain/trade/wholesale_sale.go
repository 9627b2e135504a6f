package trade

import (
	"github.com/mycofresh/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// WholesaleSale is a bulk sale to a shop. Shares the retail sale's stock and
// sequencing semantics but carries shop contact details and a WS invoice.
type WholesaleSale struct {
	shared.BaseEntity
	InvoiceNumber string          `gorm:"size:50;column:invoice_number;uniqueIndex" json:"invoiceNumber"`
	ShopName      string          `gorm:"size:100;column:shop_name;not null" json:"shopName"`
	Contact       string          `gorm:"size:100" json:"contact"`
	Address       string          `gorm:"size:200" json:"address"`
	Items         LineItems       `gorm:"column:products;serializer:json" json:"items"`
	TotalAmount   decimal.Decimal `gorm:"type:numeric(12,2);column:total_amount" json:"totalAmount"`
	Date          string          `gorm:"size:50;not null" json:"date"`
	Status        string          `gorm:"size:50;not null" json:"status"`
	WarehouseID   string          `gorm:"size:50;column:warehouse_id" json:"warehouseId"`
}

// TableName returns the database table name
func (WholesaleSale) TableName() string {
	return "wholesale_sales"
}

// IsFree reports whether the sale is a free sample
func (s *WholesaleSale) IsFree() bool {
	return s.Status == StatusFree
}

// NewWholesaleSale creates a wholesale sale pending invoice assignment
func NewWholesaleSale(shopName, contact, address string, items LineItems, totalAmount decimal.Decimal, date, status, warehouseID string) *WholesaleSale {
	return &WholesaleSale{
		BaseEntity:  shared.NewBaseEntity("wsale"),
		ShopName:    shopName,
		Contact:     contact,
		Address:     address,
		Items:       items,
		TotalAmount: totalAmount,
		Date:        date,
		Status:      status,
		WarehouseID: warehouseID,
	}
}
