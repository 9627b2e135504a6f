package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/mycofresh/backend/internal/application/inventory"
)

// InventoryHandler serves the inventory ledger endpoints
type InventoryHandler struct {
	BaseHandler
	service *inventory.Service
}

// NewInventoryHandler creates a new InventoryHandler
func NewInventoryHandler(service *inventory.Service) *InventoryHandler {
	return &InventoryHandler{service: service}
}

// RegisterRoutes registers inventory routes
func (h *InventoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	inv := rg.Group("/inventory")
	inv.GET("", h.List)
	inv.POST("/stock", h.ReceiveStock)
	inv.PUT("/:id", h.Update)
	inv.DELETE("/:id", h.Delete)

	rg.GET("/warehouses/:id/stock", h.StockByWarehouse)
}

// List returns all inventory records with product and warehouse names
func (h *InventoryHandler) List(c *gin.Context) {
	records, err := h.service.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, records)
}

// ReceiveStock adds produced stock to a warehouse
func (h *InventoryHandler) ReceiveStock(c *gin.Context) {
	var req inventory.ReceiveStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if err := h.service.ReceiveStock(c.Request.Context(), req); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, gin.H{"message": "Stock received"})
}

// Update sets a record's quantity to an absolute value
func (h *InventoryHandler) Update(c *gin.Context) {
	var req inventory.UpdateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	record, err := h.service.UpdateRecord(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, record)
}

// Delete removes an inventory record
func (h *InventoryHandler) Delete(c *gin.Context) {
	if err := h.service.DeleteRecord(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// StockByWarehouse returns stock levels for one warehouse
func (h *InventoryHandler) StockByWarehouse(c *gin.Context) {
	levels, err := h.service.StockByWarehouse(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, levels)
}
