package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/wawbus/fleet-analytics-go/internal/district"
	"github.com/wawbus/fleet-analytics-go/internal/models"
	"github.com/wawbus/fleet-analytics-go/internal/repository"
	"github.com/wawbus/fleet-analytics-go/pkg/response"
)

// IngestHandler accepts snapshots and stop schedules over HTTP, as an
// alternative to the background collector
type IngestHandler struct {
	snapshotRepo *repository.SnapshotRepository
	stopRepo     *repository.StopRepository
	classifier   *district.Classifier
}

// NewIngestHandler creates a new ingest handler
func NewIngestHandler(snapshotRepo *repository.SnapshotRepository, stopRepo *repository.StopRepository,
	classifier *district.Classifier) *IngestHandler {
	return &IngestHandler{
		snapshotRepo: snapshotRepo,
		stopRepo:     stopRepo,
		classifier:   classifier,
	}
}

// IngestSnapshot handles POST /api/v1/snapshots
func (h *IngestHandler) IngestSnapshot(c *gin.Context) {
	var snapshot models.PositionSnapshot
	if err := c.ShouldBindJSON(&snapshot); err != nil {
		response.BadRequest(c, "Invalid snapshot payload")
		return
	}
	if snapshot.CapturedAt.IsZero() {
		response.BadRequest(c, "capturedAt is required")
		return
	}

	if err := h.snapshotRepo.Save(snapshot); err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, gin.H{"rows": len(snapshot.Rows)})
}

// UpsertStops handles POST /api/v1/stops. Each stop's district is computed
// here, once, and held constant afterwards; a submitted district value is
// ignored.
func (h *IngestHandler) UpsertStops(c *gin.Context) {
	var stops []models.Stop
	if err := c.ShouldBindJSON(&stops); err != nil {
		response.BadRequest(c, "Invalid stops payload")
		return
	}

	for i := range stops {
		if stops[i].ID == "" {
			response.BadRequest(c, "Every stop needs an id")
			return
		}
		stops[i].District = h.classifier.Classify(stops[i].Position())
	}

	for _, stop := range stops {
		if err := h.stopRepo.Upsert(stop); err != nil {
			response.InternalError(c, err.Error())
			return
		}
	}

	response.Success(c, gin.H{"stops": len(stops)})
}
