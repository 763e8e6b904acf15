package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/wawbus/fleet-analytics-go/internal/handler"
	"github.com/wawbus/fleet-analytics-go/internal/metrics"
	"github.com/wawbus/fleet-analytics-go/internal/middleware"
)

// Handlers bundles everything the router mounts
type Handlers struct {
	Analysis *handler.AnalysisHandler
	Ingest   *handler.IngestHandler
	District *handler.DistrictHandler
	Metrics  *metrics.Collector
}

// SetupRouter builds the gin engine with middleware and all routes
func SetupRouter(h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.RateLimit(120, time.Minute))

	// CORS
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Fleet Analytics API is running",
		})
	})

	r.GET("/metrics", gin.WrapH(h.Metrics.Handler()))

	api := r.Group("/api/v1")
	{
		analysis := api.Group("/analysis")
		{
			analysis.POST("/run", h.Analysis.RunAnalysis)
		}

		reports := api.Group("/reports")
		{
			reports.GET("/punctuality", h.Analysis.GetPunctualityReport)
			reports.GET("/speeding", h.Analysis.GetSpeedingReport)
		}

		api.POST("/snapshots", h.Ingest.IngestSnapshot)
		api.POST("/stops", h.Ingest.UpsertStops)

		districts := api.Group("/districts")
		{
			districts.GET("", h.District.ListDistricts)
			districts.GET("/classify", h.District.Classify)
		}
	}

	return r
}
