package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/runlog/runs-backend-go/internal/metrics"
	"github.com/runlog/runs-backend-go/internal/models"
	"github.com/runlog/runs-backend-go/internal/service"
	"github.com/runlog/runs-backend-go/internal/session"
	"github.com/runlog/runs-backend-go/pkg/response"
)

// SessionHandler handles HTTP requests for the live session.
type SessionHandler struct {
	sessionService *service.SessionService
}

// NewSessionHandler creates a new session handler.
func NewSessionHandler(sessionService *service.SessionService) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
	}
}

// Start handles POST /api/v1/session/start
func (h *SessionHandler) Start(c *gin.Context) {
	if err := h.sessionService.Start(time.Now()); err != nil {
		if errors.Is(err, session.ErrAlreadyRunning) || errors.Is(err, session.ErrNotStopped) {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, h.sessionService.Snapshot(time.Now(), unitFromQuery(c)))
}

// Ingest handles POST /api/v1/session/samples. Accepts a batch of position
// samples; unusable ones are dropped silently by the filter.
func (h *SessionHandler) Ingest(c *gin.Context) {
	var samples []models.PositionSample
	if err := c.ShouldBindJSON(&samples); err != nil {
		response.BadRequest(c, "Invalid sample payload")
		return
	}

	h.sessionService.Ingest(samples)
	response.Success(c, h.sessionService.Snapshot(time.Now(), unitFromQuery(c)))
}

// Snapshot handles GET /api/v1/session/snapshot
func (h *SessionHandler) Snapshot(c *gin.Context) {
	response.Success(c, h.sessionService.Snapshot(time.Now(), unitFromQuery(c)))
}

// Stop handles POST /api/v1/session/stop
func (h *SessionHandler) Stop(c *gin.Context) {
	if err := h.sessionService.Stop(time.Now()); err != nil {
		if errors.Is(err, session.ErrNotRunning) {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, h.sessionService.Snapshot(time.Now(), unitFromQuery(c)))
}

// Save handles POST /api/v1/session/save
func (h *SessionHandler) Save(c *gin.Context) {
	var req models.SaveRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Run name is required")
		return
	}

	run, err := h.sessionService.Save(req.Name)
	if err != nil {
		if errors.Is(err, session.ErrNotStopped) {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, run)
}

// Discard handles POST /api/v1/session/discard
func (h *SessionHandler) Discard(c *gin.Context) {
	if err := h.sessionService.Discard(); err != nil {
		if errors.Is(err, session.ErrNotStopped) {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, nil)
}

// unitFromQuery reads the caller's distance unit preference, defaulting to
// kilometers. The preference is not persisted server-side.
func unitFromQuery(c *gin.Context) metrics.Unit {
	return metrics.ParseUnit(c.DefaultQuery("unit", string(metrics.UnitKilometers)))
}
