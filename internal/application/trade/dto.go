package trade

import (
	"github.com/mycofresh/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
)

// LineItemRequest is one product line in an incoming sale or return
type LineItemRequest struct {
	ProductID string          `json:"productId" binding:"required"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity" binding:"required,gt=0"`
	Price     decimal.Decimal `json:"price"`
}

// CreateSaleRequest represents a request to create a retail sale
type CreateSaleRequest struct {
	CustomerName string            `json:"customerName" binding:"required,min=1,max=100"`
	Items        []LineItemRequest `json:"products" binding:"dive"`
	TotalAmount  *decimal.Decimal  `json:"totalAmount"`
	Date         string            `json:"date" binding:"required"`
	Status       string            `json:"status"`
	WarehouseID  string            `json:"warehouseId"`
}

// UpdateSaleRequest represents a partial update of a retail sale
type UpdateSaleRequest struct {
	CustomerName *string            `json:"customerName"`
	Items        *[]LineItemRequest `json:"products" binding:"omitempty,dive"`
	TotalAmount  *decimal.Decimal   `json:"totalAmount"`
	Date         *string            `json:"date"`
	Status       *string            `json:"status"`
	WarehouseID  *string            `json:"warehouseId"`
}

// CreateWholesaleSaleRequest represents a request to create a wholesale sale
type CreateWholesaleSaleRequest struct {
	ShopName    string            `json:"shopName" binding:"required,min=1,max=100"`
	Contact     string            `json:"contact" binding:"max=100"`
	Address     string            `json:"address" binding:"max=200"`
	Items       []LineItemRequest `json:"products" binding:"dive"`
	TotalAmount *decimal.Decimal  `json:"totalAmount"`
	Date        string            `json:"date" binding:"required"`
	Status      string            `json:"status"`
	WarehouseID string            `json:"warehouseId"`
}

// UpdateWholesaleSaleRequest represents a partial update of a wholesale sale
type UpdateWholesaleSaleRequest struct {
	ShopName    *string            `json:"shopName"`
	Contact     *string            `json:"contact"`
	Address     *string            `json:"address"`
	Items       *[]LineItemRequest `json:"products" binding:"omitempty,dive"`
	TotalAmount *decimal.Decimal   `json:"totalAmount"`
	Date        *string            `json:"date"`
	Status      *string            `json:"status"`
	WarehouseID *string            `json:"warehouseId"`
}

// CreateReturnRequest represents a request to record a sales return
type CreateReturnRequest struct {
	SaleID      string            `json:"saleId" binding:"required"`
	Items       []LineItemRequest `json:"returnedProducts" binding:"required,min=1,dive"`
	Date        string            `json:"date" binding:"required"`
	WarehouseID string            `json:"warehouseId"`
	Reason      string            `json:"reason" binding:"max=200"`
}

func toLineItems(reqs []LineItemRequest) trade.LineItems {
	items := make(trade.LineItems, 0, len(reqs))
	for _, r := range reqs {
		items = append(items, trade.LineItem{
			ProductID: r.ProductID,
			Name:      r.Name,
			Quantity:  r.Quantity,
			Price:     r.Price,
		})
	}
	return items
}
