package service

import (
	"github.com/runlog/runs-backend-go/internal/models"
	"github.com/runlog/runs-backend-go/internal/repository"
)

// RunService handles business logic for completed runs.
type RunService struct {
	repo *repository.RunRepository
}

// NewRunService creates a new run service.
func NewRunService(repo *repository.RunRepository) *RunService {
	return &RunService{repo: repo}
}

// GetRuns retrieves all completed runs, most recent first.
func (s *RunService) GetRuns() ([]models.CompletedRun, error) {
	return s.repo.FetchAll()
}

// GetRunByID retrieves a single run by id.
func (s *RunService) GetRunByID(id string) (*models.CompletedRun, error) {
	return s.repo.FetchByID(id)
}

// DeleteRun removes a run as a whole record.
func (s *RunService) DeleteRun(id string) error {
	return s.repo.Delete(id)
}
