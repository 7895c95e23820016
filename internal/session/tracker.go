package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/runlog/runs-backend-go/internal/metrics"
	"github.com/runlog/runs-backend-go/internal/models"
	"github.com/runlog/runs-backend-go/internal/spatial"
)

// State is the lifecycle state of the live session machine.
type State string

const (
	StateIdle      State = "idle"
	StateRunning   State = "running"
	StateStopped   State = "stopped"
	StateSaved     State = "saved"
	StateDiscarded State = "discarded"
)

// Usage errors: caller contract violations, reported distinctly from
// sensor noise (which is dropped silently).
var (
	ErrAlreadyRunning = errors.New("session already running")
	ErrNotRunning     = errors.New("no running session")
	ErrNotStopped     = errors.New("session is not stopped")
)

// Calibration holds the user-specific constants used for the calorie
// estimate. Supplied by configuration, never derived.
type Calibration struct {
	WeightKg       float64
	KcalPerKmPerKg float64
}

// Snapshot is the live metrics view exposed to callers. It is refreshed on
// every tick and every accepted sample.
type Snapshot struct {
	State             State               `json:"state"`
	ElapsedSeconds    int64               `json:"elapsedSeconds"`
	DistanceMeters    float64             `json:"distanceMeters"`
	FormattedDuration string              `json:"formattedDuration"`
	FormattedPace     string              `json:"formattedPace"`
	FormattedDistance string              `json:"formattedDistance"`
	Calories          float64             `json:"calories"`
	Route             []models.RoutePoint `json:"route"`
}

// Tracker is the session state machine: Idle → Running → Stopped →
// {Saved, Discarded} → Idle. It owns the single LiveSession and serializes
// samples and ticks onto it; at most one session is Running at a time.
type Tracker struct {
	mu          sync.Mutex
	calibration Calibration
	acc         *Accumulator

	state         State
	startedAt     time.Time
	frozenElapsed time.Duration
}

// NewTracker creates an idle tracker with the given gates and calibration.
func NewTracker(gates spatial.Gates, calibration Calibration) *Tracker {
	return &Tracker{
		calibration: calibration,
		acc:         NewAccumulator(gates),
		state:       StateIdle,
	}
}

// State returns the current lifecycle state.
func (t *Tracker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Start begins a fresh session at now. Starting while a session is already
// Running is a usage error; starting before the previous session was saved
// or discarded likewise. A session may start without location authorization:
// it simply receives no usable samples until that changes.
func (t *Tracker) Start(now time.Time) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch t.state {
	case StateRunning:
		return ErrAlreadyRunning
	case StateStopped:
		return ErrNotStopped
	}

	t.acc.Reset()
	t.startedAt = now
	t.frozenElapsed = 0
	t.state = StateRunning
	return nil
}

// Ingest feeds one position sample into the running session. Samples
// delivered in any other state are no-ops, not errors: late fixes after
// stop are expected from real devices.
func (t *Tracker) Ingest(sample models.PositionSample) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != StateRunning {
		return
	}
	t.acc.Ingest(sample)
}

// Snapshot computes the live metrics view at now in the given unit. While
// Running the elapsed time advances with now; once Stopped the snapshot is
// frozen and further ticks have no effect.
func (t *Tracker) Snapshot(now time.Time, unit metrics.Unit) Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snapshotLocked(now, unit)
}

func (t *Tracker) snapshotLocked(now time.Time, unit metrics.Unit) Snapshot {
	var elapsed time.Duration
	switch t.state {
	case StateRunning:
		elapsed = now.Sub(t.startedAt)
	case StateStopped:
		elapsed = t.frozenElapsed
	}
	if elapsed < 0 {
		elapsed = 0
	}

	distance := t.acc.TotalDistanceMeters()
	elapsedSeconds := int64(elapsed.Seconds())
	distanceUnits := metrics.Convert(distance, unit)
	pace := metrics.PaceSecondsPerUnit(distanceUnits, elapsed.Seconds())
	distanceKm := metrics.Convert(distance, metrics.UnitKilometers)

	return Snapshot{
		State:             t.state,
		ElapsedSeconds:    elapsedSeconds,
		DistanceMeters:    distance,
		FormattedDuration: metrics.FormatDuration(elapsedSeconds),
		FormattedPace:     metrics.FormatPace(pace, unit),
		FormattedDistance: metrics.FormatDistance(distance, unit),
		Calories:          metrics.Calories(distanceKm, t.calibration.WeightKg, t.calibration.KcalPerKmPerKg),
		Route:             t.acc.Route(),
	}
}

// Stop freezes the running session's elapsed time, distance and route.
func (t *Tracker) Stop(now time.Time) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != StateRunning {
		return ErrNotRunning
	}
	t.frozenElapsed = now.Sub(t.startedAt)
	if t.frozenElapsed < 0 {
		t.frozenElapsed = 0
	}
	t.state = StateStopped
	return nil
}

// Save builds an immutable CompletedRun from the stopped session's frozen
// snapshot plus the caller-supplied name. The tracker transitions to Saved;
// a brand-new session is required for the next run.
func (t *Tracker) Save(name string) (models.CompletedRun, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != StateStopped {
		return models.CompletedRun{}, ErrNotStopped
	}

	distance := t.acc.TotalDistanceMeters()
	distanceKm := metrics.Convert(distance, metrics.UnitKilometers)
	run := models.CompletedRun{
		ID:              uuid.NewString(),
		Name:            name,
		OccurredAt:      t.startedAt,
		DurationSeconds: int64(t.frozenElapsed.Seconds()),
		DistanceMeters:  distance,
		Calories:        metrics.Calories(distanceKm, t.calibration.WeightKg, t.calibration.KcalPerKmPerKg),
		Route:           t.acc.Route(),
	}
	t.state = StateSaved
	return run, nil
}

// Discard drops the stopped session without producing a record.
func (t *Tracker) Discard() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != StateStopped {
		return ErrNotStopped
	}
	t.state = StateDiscarded
	return nil
}
