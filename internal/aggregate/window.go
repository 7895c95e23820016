package aggregate

import (
	"fmt"
	"time"

	"github.com/runlog/runs-backend-go/internal/models"
)

// ResolveWindow maps a period spec to its half-open date interval
// [start, end) evaluated against now's calendar and location.
func ResolveWindow(spec models.PeriodSpec, now time.Time) (start, end time.Time) {
	loc := now.Location()

	switch spec.Kind {
	case models.PeriodWeek:
		d := now.AddDate(0, 0, 7*spec.Offset)
		day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)
		start = day.AddDate(0, 0, -mondayIndex(day.Weekday()))
		end = start.AddDate(0, 0, 7)
	case models.PeriodMonth:
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
		start = first.AddDate(0, spec.Offset, 0)
		end = start.AddDate(0, 1, 0)
	case models.PeriodYear:
		start = time.Date(now.Year()+spec.Offset, 1, 1, 0, 0, 0, 0, loc)
		end = start.AddDate(1, 0, 0)
	}
	return start, end
}

// mondayIndex converts Go's Sunday=0 weekday numbering to a Monday=0
// bucket index.
func mondayIndex(w time.Weekday) int {
	return (int(w) + 6) % 7
}

// windowLabel derives the human label for a resolved window.
func windowLabel(kind models.PeriodKind, start, end time.Time) string {
	switch kind {
	case models.PeriodWeek:
		last := end.AddDate(0, 0, -1)
		return fmt.Sprintf("%s - %s", start.Format("Jan 2"), last.Format("Jan 2"))
	case models.PeriodMonth:
		return start.Format("January 2006")
	case models.PeriodYear:
		return start.Format("2006")
	}
	return ""
}

// daysInMonth returns the number of calendar days in the month containing
// start, where start is the first day of that month.
func daysInMonth(start time.Time) int {
	return start.AddDate(0, 1, -1).Day()
}
