package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/mycofresh/backend/internal/application/trade"
)

// SaleHandler serves the retail sale endpoints
type SaleHandler struct {
	BaseHandler
	service *trade.SaleService
}

// NewSaleHandler creates a new SaleHandler
func NewSaleHandler(service *trade.SaleService) *SaleHandler {
	return &SaleHandler{service: service}
}

// RegisterRoutes registers retail sale routes
func (h *SaleHandler) RegisterRoutes(rg *gin.RouterGroup) {
	sales := rg.Group("/sales")
	sales.GET("", h.List)
	sales.POST("", h.Create)
	sales.GET("/:id", h.Get)
	sales.PUT("/:id", h.Update)
	sales.DELETE("/:id", h.Delete)
}

// List returns all retail sales, newest first
func (h *SaleHandler) List(c *gin.Context) {
	sales, err := h.service.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, sales)
}

// Get returns one retail sale
func (h *SaleHandler) Get(c *gin.Context) {
	sale, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, sale)
}

// Create records a retail sale, deducting stock and assigning an invoice
// number in one transaction
func (h *SaleHandler) Create(c *gin.Context) {
	var req trade.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	sale, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, sale)
}

// Update edits a sale's fields. Inventory is never touched here.
func (h *SaleHandler) Update(c *gin.Context) {
	var req trade.UpdateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	sale, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, sale)
}

// Delete removes a sale and restores its stock
func (h *SaleHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
