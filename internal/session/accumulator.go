package session

import (
	"github.com/runlog/runs-backend-go/internal/models"
	"github.com/runlog/runs-backend-go/internal/spatial"
)

// Accumulator turns accepted position samples into a monotonic distance
// total and a decimated route polyline for one active session. Unusable
// samples are silently dropped; noisy sensors are expected, not exceptional.
//
// Accumulator is not safe for concurrent use; the Tracker serializes access.
type Accumulator struct {
	gates spatial.Gates

	totalDistanceMeters float64
	lastAccepted        *models.Coordinate
	route               []models.RoutePoint
}

// NewAccumulator creates an accumulator with the given filter gates.
func NewAccumulator(gates spatial.Gates) *Accumulator {
	return &Accumulator{gates: gates}
}

// Reset zeroes distance, clears the route and forgets the last accepted
// coordinate. Called on session start.
func (a *Accumulator) Reset() {
	a.totalDistanceMeters = 0
	a.lastAccepted = nil
	a.route = nil
}

// Ingest runs the filter gates against one sample and folds the accepted
// parts into the accumulator state. The distance gate and the route gate
// are evaluated independently.
func (a *Accumulator) Ingest(sample models.PositionSample) {
	if !a.gates.UsableAccuracy(sample.HorizontalAccuracyMeters) {
		return
	}

	coord := models.Coordinate{Latitude: sample.Latitude, Longitude: sample.Longitude}

	if a.lastAccepted == nil {
		// First usable fix anchors the trail without adding distance.
		a.lastAccepted = &coord
	} else {
		delta := spatial.CoordinateDistance(*a.lastAccepted, coord)
		if a.gates.AcceptDistanceDelta(delta) {
			a.totalDistanceMeters += delta
			a.lastAccepted = &coord
		}
	}

	if len(a.route) == 0 {
		a.route = append(a.route, models.RoutePoint(coord))
		return
	}
	last := a.route[len(a.route)-1]
	spacing := spatial.HaversineDistance(last.Latitude, last.Longitude, coord.Latitude, coord.Longitude)
	if a.gates.AcceptRoutePoint(spacing) {
		a.route = append(a.route, models.RoutePoint(coord))
	}
}

// TotalDistanceMeters returns the accumulated distance. Non-decreasing for
// the lifetime of a session.
func (a *Accumulator) TotalDistanceMeters() float64 {
	return a.totalDistanceMeters
}

// LastAcceptedCoordinate returns the anchor of the distance gate, or nil
// before the first usable fix.
func (a *Accumulator) LastAcceptedCoordinate() *models.Coordinate {
	return a.lastAccepted
}

// Route returns a copy of the decimated route polyline.
func (a *Accumulator) Route() []models.RoutePoint {
	out := make([]models.RoutePoint, len(a.route))
	copy(out, a.route)
	return out
}
