package models

import "time"

// PositionSample represents one raw location update from the device.
// Samples are produced externally and never mutated.
type PositionSample struct {
	Timestamp                time.Time `json:"timestamp"`
	Latitude                 float64   `json:"latitude" binding:"min=-90,max=90"`
	Longitude                float64   `json:"longitude" binding:"min=-180,max=180"`
	HorizontalAccuracyMeters float64   `json:"horizontalAccuracyMeters"`
}

// Coordinate is a bare latitude/longitude pair.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// RoutePoint is a decimated, display-worthy point of a session route.
// Consecutive route points are always at least the configured spacing apart.
type RoutePoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
