package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mycofresh/backend/internal/application/trade"
)

// SalesReturnHandler serves the sales return endpoints
type SalesReturnHandler struct {
	BaseHandler
	service *trade.ReturnService
}

// NewSalesReturnHandler creates a new SalesReturnHandler
func NewSalesReturnHandler(service *trade.ReturnService) *SalesReturnHandler {
	return &SalesReturnHandler{service: service}
}

// RegisterRoutes registers sales return routes
func (h *SalesReturnHandler) RegisterRoutes(rg *gin.RouterGroup) {
	returns := rg.Group("/sales-returns")
	returns.GET("", h.List)
	returns.POST("", h.Create)
	returns.GET("/:id", h.Get)
}

// List returns all sales returns, newest first
func (h *SalesReturnHandler) List(c *gin.Context) {
	returns, err := h.service.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, returns)
}

// Get returns one sales return
func (h *SalesReturnHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid return id")
		return
	}

	ret, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, ret)
}

// Create records a return against a retail or wholesale sale and restocks
// the returned items
func (h *SalesReturnHandler) Create(c *gin.Context) {
	var req trade.CreateReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	ret, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, ret)
}
