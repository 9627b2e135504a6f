package catalog

import "github.com/shopspring/decimal"

// CreateProductRequest represents a request to create a product
type CreateProductRequest struct {
	Name         string           `json:"name" binding:"required,min=1,max=100"`
	DefaultPrice *decimal.Decimal `json:"defaultPrice"`
	Unit         string           `json:"unit" binding:"max=20"`
}

// UpdateProductRequest represents a request to update a product
type UpdateProductRequest struct {
	Name         *string          `json:"name" binding:"omitempty,min=1,max=100"`
	DefaultPrice *decimal.Decimal `json:"defaultPrice"`
	Unit         *string          `json:"unit" binding:"omitempty,min=1,max=20"`
}

// CreateWarehouseRequest represents a request to create a warehouse
type CreateWarehouseRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// UpdateWarehouseRequest represents a request to rename a warehouse
type UpdateWarehouseRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}
