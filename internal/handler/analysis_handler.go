package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/wawbus/fleet-analytics-go/internal/models"
	"github.com/wawbus/fleet-analytics-go/internal/service"
	"github.com/wawbus/fleet-analytics-go/pkg/response"
)

// AnalysisHandler handles HTTP requests for analysis runs and reports
type AnalysisHandler struct {
	analysisService *service.AnalysisService
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(analysisService *service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{analysisService: analysisService}
}

// RunAnalysis handles POST /api/v1/analysis/run
func (h *AnalysisHandler) RunAnalysis(c *gin.Context) {
	var filter models.WindowFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	start, end, err := filter.Parse()
	if err != nil {
		response.BadRequest(c, "start and end must be RFC3339 timestamps")
		return
	}

	result, runID, err := h.analysisService.RunWindow(start, end)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, gin.H{
		"runId":       runID,
		"punctuality": result.Punctuality.Summary,
		"speeding":    result.Speeding.Summary,
	})
}

// GetPunctualityReport handles GET /api/v1/reports/punctuality
func (h *AnalysisHandler) GetPunctualityReport(c *gin.Context) {
	result, _ := h.analysisService.LatestResult()
	if result == nil {
		response.NotFound(c, "No analysis run has completed yet")
		return
	}
	response.Success(c, result.Punctuality)
}

// GetSpeedingReport handles GET /api/v1/reports/speeding
func (h *AnalysisHandler) GetSpeedingReport(c *gin.Context) {
	result, _ := h.analysisService.LatestResult()
	if result == nil {
		response.NotFound(c, "No analysis run has completed yet")
		return
	}
	response.Success(c, result.Speeding)
}
