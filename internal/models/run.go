package models

import "time"

// CompletedRun is the immutable persisted record of one finished session.
// Distance, duration and calories are fixed at creation and never recomputed.
type CompletedRun struct {
	ID              string       `json:"id" db:"id"`
	Name            string       `json:"name" db:"name"`
	OccurredAt      time.Time    `json:"occurredAt" db:"occurred_at"`
	DurationSeconds int64        `json:"durationSeconds" db:"duration_seconds"`
	DistanceMeters  float64      `json:"distanceMeters" db:"distance_meters"`
	Calories        float64      `json:"calories" db:"calories"`
	Route           []RoutePoint `json:"route" db:"route"`
}

// SaveRunRequest is the payload for saving a stopped session as a run.
type SaveRunRequest struct {
	Name string `json:"name" binding:"required"`
}
