package service

import (
	"fmt"
	"time"

	"github.com/runlog/runs-backend-go/internal/aggregate"
	"github.com/runlog/runs-backend-go/internal/metrics"
	"github.com/runlog/runs-backend-go/internal/models"
	"github.com/runlog/runs-backend-go/internal/repository"
)

// StatsService computes period summaries over the stored runs.
type StatsService struct {
	repo *repository.RunRepository
}

// NewStatsService creates a new stats service.
func NewStatsService(repo *repository.RunRepository) *StatsService {
	return &StatsService{repo: repo}
}

// GetPeriodSummary fetches all runs and aggregates them into the window
// identified by spec, evaluated against now.
func (s *StatsService) GetPeriodSummary(spec models.PeriodSpec, now time.Time, unit metrics.Unit) (models.PeriodSummary, error) {
	if !spec.Kind.Valid() {
		return models.PeriodSummary{}, fmt.Errorf("invalid period kind %q", spec.Kind)
	}

	runs, err := s.repo.FetchAll()
	if err != nil {
		return models.PeriodSummary{}, fmt.Errorf("failed to fetch runs: %w", err)
	}

	return aggregate.Aggregate(runs, spec, now, unit), nil
}
