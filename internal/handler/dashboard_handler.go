package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Andhika-Putra/dashboard-app/internal/models"
	"github.com/Andhika-Putra/dashboard-app/internal/service"
	"github.com/Andhika-Putra/dashboard-app/pkg/response"
)

// DashboardHandler handles HTTP requests for the dashboard panels.
type DashboardHandler struct {
	svc *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(svc *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// bindFilter parses and validates the filter controls from the query string.
func bindFilter(c *gin.Context) (models.RideFilter, bool) {
	var filter models.RideFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return filter, false
	}
	if err := filter.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return filter, false
	}
	return filter, true
}

// GetFilters handles GET /api/v1/dashboard/filters
func (h *DashboardHandler) GetFilters(c *gin.Context) {
	years := []string{models.YearAll}
	for _, y := range h.svc.Years() {
		years = append(years, strconv.Itoa(y))
	}

	response.Success(c, gin.H{
		"years":   years,
		"seasons": models.AllSeasons(),
	})
}

// GetMetrics handles GET /api/v1/dashboard/metrics
func (h *DashboardHandler) GetMetrics(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}
	response.Success(c, h.svc.Metrics(filter))
}

// GetMonthlyTrend handles GET /api/v1/dashboard/monthly-trend
func (h *DashboardHandler) GetMonthlyTrend(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}

	trend := h.svc.MonthlyTrend(filter)
	response.Success(c, gin.H{
		"data":  trend,
		"count": len(trend),
	})
}

// GetClusters handles GET /api/v1/dashboard/clusters
func (h *DashboardHandler) GetClusters(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}
	response.Success(c, h.svc.ClusterBreakdown(filter))
}
