package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sanikac1014/Altu-health-app/internal/api/handlers"
	"github.com/sanikac1014/Altu-health-app/internal/api/middleware"
)

type DashboardRoutes struct {
	handler *handlers.DashboardHandler
}

func NewDashboardRoutes(handler *handlers.DashboardHandler) *DashboardRoutes {
	return &DashboardRoutes{handler: handler}
}

// RegisterRoutes registers all dashboard-related routes
func (d *DashboardRoutes) RegisterRoutes(router *gin.Engine, cache *middleware.CacheMiddleware) {
	dashboard := router.Group("/api/dashboard")

	dashboard.GET("/metrics", cache.CacheResponse(), d.handler.GetMetrics)
}
