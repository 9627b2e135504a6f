package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/mycofresh/backend/internal/application/report"
)

// ReportHandler serves the aggregated reporting endpoints
type ReportHandler struct {
	BaseHandler
	service *report.Service
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(service *report.Service) *ReportHandler {
	return &ReportHandler{service: service}
}

// RegisterRoutes registers report routes
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/dashboard-stats", h.DashboardStats)
	rg.GET("/customers", h.Customers)
	rg.GET("/stock-prep", h.StockPrep)
}

// DashboardStats returns the current month's sales, expense and profit
// figures
func (h *ReportHandler) DashboardStats(c *gin.Context) {
	stats, err := h.service.DashboardStats(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, stats)
}

// Customers returns the unified customer list rolled up from
// subscriptions, retail sales and wholesale sales
func (h *ReportHandler) Customers(c *gin.Context) {
	customers, err := h.service.Customers(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, customers)
}

// StockPrep returns the delivery plan for today and tomorrow
func (h *ReportHandler) StockPrep(c *gin.Context) {
	plan, err := h.service.StockPrep(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, plan)
}
