package service

import (
	"fmt"
	"time"

	"github.com/runlog/runs-backend-go/internal/metrics"
	"github.com/runlog/runs-backend-go/internal/models"
	"github.com/runlog/runs-backend-go/internal/repository"
	"github.com/runlog/runs-backend-go/internal/session"
)

// SessionService drives the live session tracker and persists saved runs.
type SessionService struct {
	tracker *session.Tracker
	runRepo *repository.RunRepository
}

// NewSessionService creates a new session service.
func NewSessionService(tracker *session.Tracker, runRepo *repository.RunRepository) *SessionService {
	return &SessionService{
		tracker: tracker,
		runRepo: runRepo,
	}
}

// Start begins a fresh session.
func (s *SessionService) Start(now time.Time) error {
	return s.tracker.Start(now)
}

// Ingest feeds position samples into the running session. Unusable samples
// are dropped by the filter; samples outside Running are no-ops.
func (s *SessionService) Ingest(samples []models.PositionSample) {
	for _, sample := range samples {
		s.tracker.Ingest(sample)
	}
}

// Snapshot returns the live metrics view at now.
func (s *SessionService) Snapshot(now time.Time, unit metrics.Unit) session.Snapshot {
	return s.tracker.Snapshot(now, unit)
}

// Stop freezes the running session.
func (s *SessionService) Stop(now time.Time) error {
	return s.tracker.Stop(now)
}

// Save builds a CompletedRun from the stopped session and persists it.
// Persistence failures pass through verbatim.
func (s *SessionService) Save(name string) (models.CompletedRun, error) {
	run, err := s.tracker.Save(name)
	if err != nil {
		return models.CompletedRun{}, err
	}
	if err := s.runRepo.Save(run); err != nil {
		return models.CompletedRun{}, fmt.Errorf("failed to persist run: %w", err)
	}
	return run, nil
}

// Discard drops the stopped session without persisting anything.
func (s *SessionService) Discard() error {
	return s.tracker.Discard()
}
