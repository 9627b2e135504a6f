package trade

import (
	"github.com/mycofresh/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// StatusFree marks give-away sales that are mirrored into the expense ledger
const StatusFree = "Free"

// Sale is a retail sale. The invoice number is assigned once at creation and
// never changes; line items are stored as a JSON column.
type Sale struct {
	shared.BaseEntity
	InvoiceNumber string          `gorm:"size:50;column:invoice_number;uniqueIndex" json:"invoiceNumber"`
	CustomerName  string          `gorm:"size:100;column:customer_name;not null" json:"customerName"`
	Items         LineItems       `gorm:"column:products;serializer:json" json:"items"`
	TotalAmount   decimal.Decimal `gorm:"type:numeric(12,2);column:total_amount" json:"totalAmount"`
	Date          string          `gorm:"size:50;not null" json:"date"`
	Status        string          `gorm:"size:50;not null" json:"status"`
	WarehouseID   string          `gorm:"size:50;column:warehouse_id" json:"warehouseId"`
}

// TableName returns the database table name
func (Sale) TableName() string {
	return "sales"
}

// IsFree reports whether the sale is a free sample
func (s *Sale) IsFree() bool {
	return s.Status == StatusFree
}

// NewSale creates a retail sale; the invoice number is filled in by the caller
// after the sequencer has assigned it.
func NewSale(customerName string, items LineItems, totalAmount decimal.Decimal, date, status, warehouseID string) *Sale {
	return &Sale{
		BaseEntity:   shared.NewBaseEntity("sale"),
		CustomerName: customerName,
		Items:        items,
		TotalAmount:  totalAmount,
		Date:         date,
		Status:       status,
		WarehouseID:  warehouseID,
	}
}
