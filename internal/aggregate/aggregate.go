// Package aggregate re-aggregates completed runs into period-based
// statistics: weekly day buckets, monthly 7-day spans, yearly quarters.
// Everything here is a pure, re-entrant computation over an immutable run
// list; callers pass now explicitly so results are deterministic.
package aggregate

import (
	"fmt"
	"time"

	"github.com/runlog/runs-backend-go/internal/metrics"
	"github.com/runlog/runs-backend-go/internal/models"
)

var weekdayLabels = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

var quarterLabels = [4]string{"Q1", "Q2", "Q3", "Q4"}

// Aggregate filters runs to the window identified by spec, partitions them
// into sub-period buckets and computes per-bucket and overall totals.
// Bucket pace is always totalDuration/totalDistance, a ratio of sums.
func Aggregate(runs []models.CompletedRun, spec models.PeriodSpec, now time.Time, unit metrics.Unit) models.PeriodSummary {
	start, end := ResolveWindow(spec, now)
	buckets := emptyBuckets(spec.Kind, start)
	totals := models.Bucket{Label: "Total"}

	for _, run := range runs {
		if run.OccurredAt.Before(start) || !run.OccurredAt.Before(end) {
			continue
		}
		i := bucketIndex(spec.Kind, run.OccurredAt)
		if i < 0 || i >= len(buckets) {
			continue
		}
		addRun(&buckets[i], run)
		addRun(&totals, run)
	}

	for i := range buckets {
		finalize(&buckets[i], unit)
	}
	finalize(&totals, unit)

	return models.PeriodSummary{
		WindowLabel: windowLabel(spec.Kind, start, end),
		Buckets:     buckets,
		Totals:      totals,
	}
}

// emptyBuckets lays out the window's sub-periods: 7 weekday buckets, 7-day
// spans for a month (the last one may be shorter), or 4 quarters.
func emptyBuckets(kind models.PeriodKind, start time.Time) []models.Bucket {
	switch kind {
	case models.PeriodWeek:
		buckets := make([]models.Bucket, 7)
		for i := range buckets {
			buckets[i].Label = weekdayLabels[i]
		}
		return buckets
	case models.PeriodMonth:
		days := daysInMonth(start)
		count := (days + 6) / 7
		buckets := make([]models.Bucket, count)
		for i := range buckets {
			first := i*7 + 1
			last := first + 6
			if last > days {
				last = days
			}
			buckets[i].Label = fmt.Sprintf("Days %d-%d", first, last)
		}
		return buckets
	case models.PeriodYear:
		buckets := make([]models.Bucket, 4)
		for i := range buckets {
			buckets[i].Label = quarterLabels[i]
		}
		return buckets
	}
	return nil
}

// bucketIndex assigns a timestamp inside the window to its bucket.
func bucketIndex(kind models.PeriodKind, t time.Time) int {
	switch kind {
	case models.PeriodWeek:
		return mondayIndex(t.Weekday())
	case models.PeriodMonth:
		return (t.Day() - 1) / 7
	case models.PeriodYear:
		i := (int(t.Month()) - 1) / 3
		if i < 0 {
			i = 0
		}
		if i > 3 {
			i = 3
		}
		return i
	}
	return -1
}

func addRun(b *models.Bucket, run models.CompletedRun) {
	b.RunCount++
	b.TotalDistanceMeters += run.DistanceMeters
	b.TotalDurationSeconds += run.DurationSeconds
	b.TotalCalories += run.Calories
}

// finalize computes the bucket's average pace from its totals.
func finalize(b *models.Bucket, unit metrics.Unit) {
	distanceUnits := metrics.Convert(b.TotalDistanceMeters, unit)
	b.AveragePaceSecondsPerUnit = metrics.PaceSecondsPerUnit(distanceUnits, float64(b.TotalDurationSeconds))
	b.FormattedPace = metrics.FormatPace(b.AveragePaceSecondsPerUnit, unit)
}
