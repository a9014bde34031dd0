package api

import (
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Andhika-Putra/dashboard-app/internal/config"
	"github.com/Andhika-Putra/dashboard-app/internal/handler"
	"github.com/Andhika-Putra/dashboard-app/internal/middleware"
	"github.com/Andhika-Putra/dashboard-app/internal/service"
)

// SetupRouter wires the dashboard routes.
func SetupRouter(cfg *config.Config, svc *service.DashboardService) *gin.Engine {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Bike Sharing Dashboard API is running",
		})
	})

	// Static presentation shell
	r.StaticFile("/", filepath.Join(cfg.WebDir, "index.html"))

	dashboardHandler := handler.NewDashboardHandler(svc)
	chartHandler := handler.NewChartHandler(svc)

	api := r.Group("/api/v1")
	{
		dashboard := api.Group("/dashboard")
		{
			dashboard.GET("/filters", dashboardHandler.GetFilters)
			dashboard.GET("/metrics", dashboardHandler.GetMetrics)
			dashboard.GET("/monthly-trend", dashboardHandler.GetMonthlyTrend)
			dashboard.GET("/clusters", dashboardHandler.GetClusters)
		}

		charts := api.Group("/charts")
		charts.Use(middleware.RateLimit(120, time.Minute))
		{
			charts.GET("/:name", chartHandler.GetChart)
		}
	}

	return r
}
