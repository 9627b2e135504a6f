package inventory

import "github.com/mycofresh/backend/internal/domain/shared"

// Record tracks the on-hand quantity of one product at one warehouse.
// There is at most one record per (product, warehouse) pair; the row is
// created lazily on the first receipt and its quantity never goes negative.
type Record struct {
	shared.BaseEntity
	ProductID   string `gorm:"size:50;column:product_id;not null;uniqueIndex:idx_inventory_product_warehouse" json:"productId"`
	WarehouseID string `gorm:"size:50;column:warehouse_id;not null;uniqueIndex:idx_inventory_product_warehouse" json:"warehouseId"`
	Quantity    int    `gorm:"not null;default:0" json:"quantity"`
}

// TableName returns the database table name
func (Record) TableName() string {
	return "inventory_records"
}

// NewRecord creates a new inventory record
func NewRecord(productID, warehouseID string, quantity int) *Record {
	return &Record{
		BaseEntity:  shared.NewBaseEntity("inv"),
		ProductID:   productID,
		WarehouseID: warehouseID,
		Quantity:    quantity,
	}
}
