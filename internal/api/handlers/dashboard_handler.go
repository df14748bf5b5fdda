package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sanikac1014/Altu-health-app/internal/domain/metrics"
)

// DashboardHandler handles HTTP requests for dashboard metrics
type DashboardHandler struct {
	service metrics.Service
}

// NewDashboardHandler creates a new DashboardHandler instance
func NewDashboardHandler(service metrics.Service) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// GetMetrics godoc
// @Summary Get dashboard metrics
// @Description Get the full derived metrics for the loaded datasets
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.DashboardMetricsResponse "Dashboard metrics"
// @Failure 404 {object} map[string]string "No data loaded"
// @Router /api/dashboard/metrics [get]
func (h *DashboardHandler) GetMetrics(c *gin.Context) {
	m, err := h.service.Dashboard(c.Request.Context())
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, metrics.ErrNoData) {
			statusCode = http.StatusNotFound
		}
		c.JSON(statusCode, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": MetricsToResponse(m)})
}
