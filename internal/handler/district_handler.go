package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/wawbus/fleet-analytics-go/internal/district"
	"github.com/wawbus/fleet-analytics-go/internal/models"
	"github.com/wawbus/fleet-analytics-go/pkg/response"
)

// DistrictHandler exposes the classifier directly
type DistrictHandler struct {
	classifier *district.Classifier
}

// NewDistrictHandler creates a new district handler
func NewDistrictHandler(classifier *district.Classifier) *DistrictHandler {
	return &DistrictHandler{classifier: classifier}
}

// Classify handles GET /api/v1/districts/classify?lat=..&lon=..
func (h *DistrictHandler) Classify(c *gin.Context) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		response.BadRequest(c, "Invalid lat parameter")
		return
	}
	lon, err := strconv.ParseFloat(c.Query("lon"), 64)
	if err != nil {
		response.BadRequest(c, "Invalid lon parameter")
		return
	}

	label := h.classifier.Classify(models.Point{Lat: lat, Lon: lon})
	response.Success(c, gin.H{"district": label})
}

// ListDistricts handles GET /api/v1/districts
func (h *DistrictHandler) ListDistricts(c *gin.Context) {
	response.Success(c, h.classifier.Names())
}
