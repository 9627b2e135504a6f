package inventory

import "time"

// ReceiveStockRequest represents a stock receipt into a warehouse
type ReceiveStockRequest struct {
	ProductID   string `json:"productId" binding:"required"`
	WarehouseID string `json:"warehouseId" binding:"required"`
	Quantity    int    `json:"quantity" binding:"required,gt=0"`
}

// UpdateRecordRequest represents a manual correction of an on-hand quantity
type UpdateRecordRequest struct {
	Quantity *int `json:"quantity" binding:"required,gte=0"`
}

// RecordResponse is an inventory record enriched with catalog names
type RecordResponse struct {
	ID            string    `json:"id"`
	ProductID     string    `json:"productId"`
	ProductName   string    `json:"productName"`
	WarehouseID   string    `json:"warehouseId"`
	WarehouseName string    `json:"warehouseName"`
	Quantity      int       `json:"quantity"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// StockLevel is one product's availability at a warehouse
type StockLevel struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}
