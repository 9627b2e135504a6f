package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/mycofresh/backend/internal/application/trade"
)

// WholesaleHandler serves the wholesale sale endpoints
type WholesaleHandler struct {
	BaseHandler
	service *trade.WholesaleService
}

// NewWholesaleHandler creates a new WholesaleHandler
func NewWholesaleHandler(service *trade.WholesaleService) *WholesaleHandler {
	return &WholesaleHandler{service: service}
}

// RegisterRoutes registers wholesale sale routes
func (h *WholesaleHandler) RegisterRoutes(rg *gin.RouterGroup) {
	sales := rg.Group("/wholesale-sales")
	sales.GET("", h.List)
	sales.POST("", h.Create)
	sales.GET("/:id", h.Get)
	sales.PUT("/:id", h.Update)
	sales.DELETE("/:id", h.Delete)
}

// List returns all wholesale sales, newest first
func (h *WholesaleHandler) List(c *gin.Context) {
	sales, err := h.service.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, sales)
}

// Get returns one wholesale sale
func (h *WholesaleHandler) Get(c *gin.Context) {
	sale, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, sale)
}

// Create records a wholesale sale
func (h *WholesaleHandler) Create(c *gin.Context) {
	var req trade.CreateWholesaleSaleRequest
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

// Update edits a wholesale sale's fields
func (h *WholesaleHandler) Update(c *gin.Context) {
	var req trade.UpdateWholesaleSaleRequest
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

// Delete removes a wholesale sale and restores its stock
func (h *WholesaleHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
