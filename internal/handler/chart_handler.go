package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Andhika-Putra/dashboard-app/internal/logger"
	"github.com/Andhika-Putra/dashboard-app/internal/service"
	"github.com/Andhika-Putra/dashboard-app/internal/viz"
	"github.com/Andhika-Putra/dashboard-app/pkg/response"
)

// ChartHandler renders the dashboard charts as PNG images.
type ChartHandler struct {
	svc *service.DashboardService
}

// NewChartHandler creates a new chart handler.
func NewChartHandler(svc *service.DashboardService) *ChartHandler {
	return &ChartHandler{svc: svc}
}

// GetChart handles GET /api/v1/charts/:name
func (h *ChartHandler) GetChart(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}

	name := strings.TrimSuffix(c.Param("name"), ".png")

	var png []byte
	var err error
	switch name {
	case "temperature":
		png, err = viz.TemperatureScatter(h.svc.Filter(filter))
	case "humidity":
		png, err = viz.HumidityScatter(h.svc.Filter(filter))
	case "working-day":
		png, err = viz.WorkingDayBox(h.svc.Filter(filter))
	case "monthly-trend":
		png, err = viz.MonthlyTrendLine(h.svc.MonthlyTrend(filter))
	case "cluster-distribution":
		png, err = viz.ClusterDistributionBar(h.svc.ClusterBreakdown(filter).Counts)
	case "season-clusters":
		png, err = viz.SeasonClusterBars(h.svc.ClusterBreakdown(filter))
	default:
		response.NotFound(c, "Unknown chart")
		return
	}

	if err != nil {
		logger.Errorw("chart rendering failed", "chart", name, "error", err.Error())
		response.InternalError(c, "Failed to render chart")
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
