package repository

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/runlog/runs-backend-go/internal/models"
)

// ErrRunNotFound is returned when a run id does not exist.
var ErrRunNotFound = errors.New("run not found")

// RunRepository handles database operations for completed runs. Runs are
// immutable: there is no update, only save, fetch and delete.
type RunRepository struct {
	db *sql.DB
}

// NewRunRepository creates a new run repository.
func NewRunRepository(db *sql.DB) *RunRepository {
	return &RunRepository{db: db}
}

// Save inserts a completed run. Failures are returned verbatim to the
// caller; retry policy is not this layer's concern.
func (r *RunRepository) Save(run models.CompletedRun) error {
	route, err := json.Marshal(run.Route)
	if err != nil {
		return fmt.Errorf("failed to encode route: %w", err)
	}

	_, err = r.db.Exec(`
		INSERT INTO runs (id, name, occurred_at, duration_seconds, distance_meters, calories, route)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Name, run.OccurredAt.Unix(), run.DurationSeconds,
		run.DistanceMeters, run.Calories, string(route),
	)
	if err != nil {
		return fmt.Errorf("failed to save run: %w", err)
	}
	return nil
}

// FetchAll returns every stored run, most recent first.
func (r *RunRepository) FetchAll() ([]models.CompletedRun, error) {
	rows, err := r.db.Query(`
		SELECT id, name, occurred_at, duration_seconds, distance_meters, calories, route
		FROM runs ORDER BY occurred_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []models.CompletedRun
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// FetchByID returns a single run by id.
func (r *RunRepository) FetchByID(id string) (*models.CompletedRun, error) {
	row := r.db.QueryRow(`
		SELECT id, name, occurred_at, duration_seconds, distance_meters, calories, route
		FROM runs WHERE id = ?`, id)

	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRunNotFound
	}
	if err != nil {
		return nil, err
	}
	return &run, nil
}

// Delete removes a run as a whole record.
func (r *RunRepository) Delete(id string) error {
	result, err := r.db.Exec("DELETE FROM runs WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete run: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return ErrRunNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRun(row rowScanner) (models.CompletedRun, error) {
	var run models.CompletedRun
	var occurredAt int64
	var route string

	err := row.Scan(&run.ID, &run.Name, &occurredAt, &run.DurationSeconds,
		&run.DistanceMeters, &run.Calories, &route)
	if errors.Is(err, sql.ErrNoRows) {
		return run, err
	}
	if err != nil {
		return run, fmt.Errorf("failed to scan run: %w", err)
	}

	run.OccurredAt = time.Unix(occurredAt, 0)
	if err := json.Unmarshal([]byte(route), &run.Route); err != nil {
		return run, fmt.Errorf("failed to decode route: %w", err)
	}
	return run, nil
}
