package models

// PeriodKind selects the calendar window a summary covers.
type PeriodKind string

const (
	PeriodWeek  PeriodKind = "week"
	PeriodMonth PeriodKind = "month"
	PeriodYear  PeriodKind = "year"
)

// Valid reports whether the kind is one of the supported periods.
func (k PeriodKind) Valid() bool {
	switch k {
	case PeriodWeek, PeriodMonth, PeriodYear:
		return true
	}
	return false
}

// PeriodSpec identifies one week/month/year window relative to now.
// Offset 0 is the current period, -1 the previous, +1 the next.
type PeriodSpec struct {
	Kind   PeriodKind `form:"kind" json:"kind"`
	Offset int        `form:"offset" json:"offset"`
}

// Bucket holds the aggregate totals for one sub-period of a window
// (a day, a 7-day span, or a quarter).
type Bucket struct {
	Label                string  `json:"label"`
	RunCount             int     `json:"runCount"`
	TotalDistanceMeters  float64 `json:"totalDistanceMeters"`
	TotalDurationSeconds int64   `json:"totalDurationSeconds"`
	TotalCalories        float64 `json:"totalCalories"`
	// AveragePaceSecondsPerUnit is totalDuration/totalDistance in the
	// requested unit, a ratio of sums rather than a mean of per-run paces.
	AveragePaceSecondsPerUnit float64 `json:"averagePaceSecondsPerUnit"`
	FormattedPace             string  `json:"formattedPace"`
}

// PeriodSummary is the full aggregation result for one PeriodSpec.
type PeriodSummary struct {
	WindowLabel string   `json:"windowLabel"`
	Buckets     []Bucket `json:"buckets"`
	Totals      Bucket   `json:"totals"`
}
