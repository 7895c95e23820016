package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runlog/runs-backend-go/internal/metrics"
	"github.com/runlog/runs-backend-go/internal/models"
	"github.com/runlog/runs-backend-go/internal/spatial"
)

func newTestTracker() *Tracker {
	return NewTracker(spatial.DefaultGates(), Calibration{WeightKg: 70, KcalPerKmPerKg: 1.036})
}

func TestTrackerLifecycle(t *testing.T) {
	tracker := newTestTracker()
	start := time.Date(2026, time.August, 19, 7, 0, 0, 0, time.UTC)

	require.Equal(t, StateIdle, tracker.State())
	require.NoError(t, tracker.Start(start))
	require.Equal(t, StateRunning, tracker.State())

	// Second start while running is a usage error, not a silent no-op.
	assert.ErrorIs(t, tracker.Start(start.Add(time.Second)), ErrAlreadyRunning)

	require.NoError(t, tracker.Stop(start.Add(10*time.Minute)))
	require.Equal(t, StateStopped, tracker.State())

	// A stopped session must be saved or discarded before the next start.
	assert.ErrorIs(t, tracker.Start(start.Add(11*time.Minute)), ErrNotStopped)

	run, err := tracker.Save("Morning run")
	require.NoError(t, err)
	assert.Equal(t, StateSaved, tracker.State())
	assert.Equal(t, "Morning run", run.Name)
	assert.NotEmpty(t, run.ID)
	assert.Equal(t, start, run.OccurredAt)
	assert.Equal(t, int64(600), run.DurationSeconds)

	// Saved is terminal for the session; a fresh one can start.
	require.NoError(t, tracker.Start(start.Add(time.Hour)))
	require.Equal(t, StateRunning, tracker.State())
}

func TestTrackerUsageErrors(t *testing.T) {
	tracker := newTestTracker()

	assert.ErrorIs(t, tracker.Stop(time.Now()), ErrNotRunning)
	assert.ErrorIs(t, tracker.Discard(), ErrNotStopped)

	_, err := tracker.Save("nope")
	assert.ErrorIs(t, err, ErrNotStopped)

	require.NoError(t, tracker.Start(time.Now()))
	_, err = tracker.Save("still running")
	assert.ErrorIs(t, err, ErrNotStopped)
}

func TestTrackerSnapshotAtStart(t *testing.T) {
	tracker := newTestTracker()
	start := time.Date(2026, time.August, 19, 7, 0, 0, 0, time.UTC)
	require.NoError(t, tracker.Start(start))

	// No samples yet: zero distance must yield the canonical zero pace,
	// never a division error.
	snap := tracker.Snapshot(start.Add(time.Minute), metrics.UnitKilometers)
	assert.Equal(t, StateRunning, snap.State)
	assert.Equal(t, int64(60), snap.ElapsedSeconds)
	assert.Zero(t, snap.DistanceMeters)
	assert.Equal(t, "1:00", snap.FormattedDuration)
	assert.Equal(t, "0:00 /km", snap.FormattedPace)
	assert.Equal(t, "0.00 km", snap.FormattedDistance)
	assert.Zero(t, snap.Calories)
	assert.Empty(t, snap.Route)
}

func TestTrackerSnapshotWithDistance(t *testing.T) {
	tracker := newTestTracker()
	start := time.Date(2026, time.August, 19, 7, 0, 0, 0, time.UTC)
	require.NoError(t, tracker.Start(start))

	coord := models.Coordinate{Latitude: 40.0, Longitude: -70.0}
	tracker.Ingest(sampleAt(coord, 5))
	for i := 0; i < 10; i++ {
		coord = northOf(coord, 10)
		tracker.Ingest(sampleAt(coord, 5))
	}

	snap := tracker.Snapshot(start.Add(time.Minute), metrics.UnitKilometers)
	assert.InDelta(t, 100, snap.DistanceMeters, 0.01)
	assert.Positive(t, snap.Calories)
	assert.Len(t, snap.Route, 11)
}

func TestTrackerFrozenAfterStop(t *testing.T) {
	tracker := newTestTracker()
	start := time.Date(2026, time.August, 19, 7, 0, 0, 0, time.UTC)
	require.NoError(t, tracker.Start(start))

	coord := models.Coordinate{Latitude: 40.0, Longitude: -70.0}
	tracker.Ingest(sampleAt(coord, 5))
	tracker.Ingest(sampleAt(northOf(coord, 10), 5))

	require.NoError(t, tracker.Stop(start.Add(5*time.Minute)))
	frozen := tracker.Snapshot(start.Add(5*time.Minute), metrics.UnitKilometers)

	// Late fixes and further ticks after stop are no-ops.
	tracker.Ingest(sampleAt(northOf(coord, 25), 5))
	later := tracker.Snapshot(start.Add(time.Hour), metrics.UnitKilometers)

	assert.Equal(t, frozen.ElapsedSeconds, later.ElapsedSeconds)
	assert.Equal(t, frozen.DistanceMeters, later.DistanceMeters)
	assert.Equal(t, len(frozen.Route), len(later.Route))
}

func TestTrackerDiscard(t *testing.T) {
	tracker := newTestTracker()
	require.NoError(t, tracker.Start(time.Now()))
	require.NoError(t, tracker.Stop(time.Now()))
	require.NoError(t, tracker.Discard())
	assert.Equal(t, StateDiscarded, tracker.State())

	// Discarded is terminal; the next session starts fresh.
	require.NoError(t, tracker.Start(time.Now()))
	snap := tracker.Snapshot(time.Now(), metrics.UnitKilometers)
	assert.Zero(t, snap.DistanceMeters)
}

func TestTrackerStartWithoutSamples(t *testing.T) {
	// Without location authorization the session still runs; the timer
	// advances with zero usable samples.
	tracker := newTestTracker()
	start := time.Now()
	require.NoError(t, tracker.Start(start))

	snap := tracker.Snapshot(start.Add(30*time.Second), metrics.UnitKilometers)
	assert.Equal(t, int64(30), snap.ElapsedSeconds)
	assert.Zero(t, snap.DistanceMeters)
}
