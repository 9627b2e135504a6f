package handler

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger reports whether the database connection is alive
type Pinger interface {
	Ping() error
}

// HealthHandler serves liveness checks
type HealthHandler struct {
	BaseHandler
	db Pinger
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// RegisterRoutes registers health check routes
func (h *HealthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.Check)
}

// Check reports service and database health
func (h *HealthHandler) Check(c *gin.Context) {
	status := "healthy"
	database := "connected"
	if err := h.db.Ping(); err != nil {
		status = "degraded"
		database = "unreachable"
	}
	h.Success(c, gin.H{
		"status":    status,
		"database":  database,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
