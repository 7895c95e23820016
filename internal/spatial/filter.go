package spatial

// Gates holds the calibration thresholds for sample filtering. The values
// are empirically chosen and supplied by configuration, not derived.
type Gates struct {
	AccuracyCeilingMeters float64 // reject samples with worse (or negative) accuracy
	MinStepMeters         float64 // deltas below this are stationary jitter
	MaxJumpMeters         float64 // deltas above this are GPS jumps
	RouteSpacingMeters    float64 // minimum spacing between route points
}

// DefaultGates returns the stock calibration thresholds.
func DefaultGates() Gates {
	return Gates{
		AccuracyCeilingMeters: 20,
		MinStepMeters:         5,
		MaxJumpMeters:         30,
		RouteSpacingMeters:    5,
	}
}

// UsableAccuracy reports whether a sample's horizontal accuracy estimate is
// good enough to use at all. Negative accuracy means the fix is invalid.
func (g Gates) UsableAccuracy(accuracyMeters float64) bool {
	return accuracyMeters >= 0 && accuracyMeters <= g.AccuracyCeilingMeters
}

// AcceptDistanceDelta reports whether a step of deltaMeters from the last
// accepted coordinate should be added to the running total. Sub-threshold
// deltas are jitter, over-threshold deltas are jumps; both are dropped
// without touching accumulator state.
func (g Gates) AcceptDistanceDelta(deltaMeters float64) bool {
	return deltaMeters >= g.MinStepMeters && deltaMeters <= g.MaxJumpMeters
}

// AcceptRoutePoint reports whether a point deltaMeters from the last
// appended route point is far enough away to keep. This gate is evaluated
// independently of the distance gate.
func (g Gates) AcceptRoutePoint(deltaMeters float64) bool {
	return deltaMeters >= g.RouteSpacingMeters
}
