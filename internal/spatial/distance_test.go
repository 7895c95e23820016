package spatial

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/runlog/runs-backend-go/internal/models"
)

func TestHaversineDistance(t *testing.T) {
	// Paris (48.8566, 2.3522) to London (51.5074, -0.1278) ~ 334 km
	d := HaversineDistance(48.8566, 2.3522, 51.5074, -0.1278)
	assert.InDelta(t, 334000, d, 4000)
}

func TestHaversineDistanceZero(t *testing.T) {
	assert.Zero(t, HaversineDistance(40.0, -70.0, 40.0, -70.0))
}

func TestHaversineDistanceSmallStep(t *testing.T) {
	// One arc-second of latitude is roughly 31 meters.
	lat := 52.0
	d := HaversineDistance(lat, 13.0, lat+1.0/3600.0, 13.0)
	assert.InDelta(t, 30.9, d, 0.2)
}

func TestCoordinateDistance(t *testing.T) {
	a := models.Coordinate{Latitude: 48.8566, Longitude: 2.3522}
	b := models.Coordinate{Latitude: 51.5074, Longitude: -0.1278}
	assert.InDelta(t, HaversineDistance(a.Latitude, a.Longitude, b.Latitude, b.Longitude),
		CoordinateDistance(a, b), 1e-9)
}
