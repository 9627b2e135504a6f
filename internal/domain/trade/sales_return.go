package trade

import (
	"time"

	"github.com/google/uuid"
)

// Sale types recorded on a return after the original sale has been resolved
const (
	SaleTypeRetail    = "sale"
	SaleTypeWholesale = "wholesale_sale"
)

// SalesReturn records returned goods against an earlier retail or wholesale
// sale. Returns are the one entity keyed by a database-style UUID rather
// than a prefixed string ID.
type SalesReturn struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SaleID      string    `gorm:"size:50;column:sale_id;not null;index" json:"saleId"`
	SaleType    string    `gorm:"size:20;column:sale_type" json:"saleType"`
	Items       LineItems `gorm:"column:returned_products;serializer:json" json:"returnedProducts"`
	Date        string    `gorm:"size:50;not null" json:"date"`
	WarehouseID string    `gorm:"size:50;column:warehouse_id" json:"warehouseId"`
	Reason      string    `gorm:"size:200" json:"reason"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TableName returns the database table name
func (SalesReturn) TableName() string {
	return "sales_returns"
}

// NewSalesReturn creates a return record
func NewSalesReturn(saleID, saleType string, items LineItems, date, warehouseID, reason string) *SalesReturn {
	now := time.Now()
	return &SalesReturn{
		ID:          uuid.New(),
		SaleID:      saleID,
		SaleType:    saleType,
		Items:       items,
		Date:        date,
		WarehouseID: warehouseID,
		Reason:      reason,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
