package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/runlog/runs-backend-go/internal/repository"
	"github.com/runlog/runs-backend-go/internal/service"
	"github.com/runlog/runs-backend-go/pkg/response"
)

// RunHandler handles HTTP requests for completed runs.
type RunHandler struct {
	runService *service.RunService
}

// NewRunHandler creates a new run handler.
func NewRunHandler(runService *service.RunService) *RunHandler {
	return &RunHandler{
		runService: runService,
	}
}

// GetRuns handles GET /api/v1/runs
func (h *RunHandler) GetRuns(c *gin.Context) {
	runs, err := h.runService.GetRuns()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, runs)
}

// GetRunByID handles GET /api/v1/runs/:id
func (h *RunHandler) GetRunByID(c *gin.Context) {
	run, err := h.runService.GetRunByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrRunNotFound) {
			response.NotFound(c, "Run not found")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, run)
}

// DeleteRun handles DELETE /api/v1/runs/:id
func (h *RunHandler) DeleteRun(c *gin.Context) {
	if err := h.runService.DeleteRun(c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrRunNotFound) {
			response.NotFound(c, "Run not found")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, nil)
}
