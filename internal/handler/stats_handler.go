package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/runlog/runs-backend-go/internal/metrics"
	"github.com/runlog/runs-backend-go/internal/models"
	"github.com/runlog/runs-backend-go/internal/service"
	"github.com/runlog/runs-backend-go/pkg/response"
)

// StatsHandler handles HTTP requests for period statistics.
type StatsHandler struct {
	statsService *service.StatsService
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(statsService *service.StatsService) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

// GetSummary handles GET /api/v1/stats/summary?kind=week|month|year&offset=N&unit=km|mi
func (h *StatsHandler) GetSummary(c *gin.Context) {
	var spec models.PeriodSpec
	if err := c.ShouldBindQuery(&spec); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}
	if !spec.Kind.Valid() {
		response.BadRequest(c, "kind must be week, month or year")
		return
	}

	unit := metrics.ParseUnit(c.DefaultQuery("unit", string(metrics.UnitKilometers)))

	summary, err := h.statsService.GetPeriodSummary(spec, time.Now(), unit)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, summary)
}
