// Package metrics provides the pure calculation and formatting functions
// shared by the live session engine and the period aggregator. Every
// function is deterministic and stateless.
package metrics

import (
	"fmt"
	"math"
)

// Unit selects the distance unit used for display and pace math.
type Unit string

const (
	UnitKilometers Unit = "km"
	UnitMiles      Unit = "mi"
)

const (
	MetersPerKilometer = 1000.0
	MetersPerMile      = 1609.344
)

// ParseUnit maps a query value to a Unit, defaulting to kilometers.
func ParseUnit(s string) Unit {
	if Unit(s) == UnitMiles {
		return UnitMiles
	}
	return UnitKilometers
}

// Convert converts a distance in meters to the given unit.
func Convert(distanceMeters float64, unit Unit) float64 {
	if unit == UnitMiles {
		return distanceMeters / MetersPerMile
	}
	return distanceMeters / MetersPerKilometer
}

// FormatDuration renders whole seconds as "H:MM:SS", or "M:SS" under an
// hour. Negative input is treated as zero.
func FormatDuration(totalSeconds int64) string {
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

// PaceSecondsPerUnit returns durationSeconds / distanceUnits, or 0 when the
// distance is not positive. Zero distance at session start is expected, not
// an error.
func PaceSecondsPerUnit(distanceUnits, durationSeconds float64) float64 {
	if distanceUnits <= 0 {
		return 0
	}
	return durationSeconds / distanceUnits
}

// FormatPace renders a pace as "M:SS /unit". Non-finite or non-positive
// input collapses to the canonical zero pace "0:00 /unit" so degenerate
// math never reaches the caller as NaN.
func FormatPace(secondsPerUnit float64, unit Unit) string {
	if math.IsNaN(secondsPerUnit) || math.IsInf(secondsPerUnit, 0) || secondsPerUnit <= 0 {
		return fmt.Sprintf("0:00 /%s", unit)
	}
	total := int64(math.Round(secondsPerUnit))
	return fmt.Sprintf("%d:%02d /%s", total/60, total%60, unit)
}

// FormatDistance renders a distance in meters as a two-decimal value in the
// given unit, e.g. "5.21 km".
func FormatDistance(distanceMeters float64, unit Unit) string {
	return fmt.Sprintf("%.2f %s", Convert(distanceMeters, unit), unit)
}

// Calories estimates energy expenditure as distanceKm * weightKg * coefficient.
// The coefficient is a fixed calibration value supplied by configuration.
func Calories(distanceKm, weightKg, kcalPerKmPerKg float64) float64 {
	return distanceKm * weightKg * kcalPerKmPerKg
}
