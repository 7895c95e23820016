package metrics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds int64
		want    string
	}{
		{0, "0:00"},
		{5, "0:05"},
		{59, "0:59"},
		{60, "1:00"},
		{300, "5:00"},
		{3599, "59:59"},
		{3600, "1:00:00"},
		{3725, "1:02:05"},
		{36610, "10:10:10"},
		{-5, "0:00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDuration(tt.seconds))
	}
}

func TestPaceSecondsPerUnit(t *testing.T) {
	assert.Zero(t, PaceSecondsPerUnit(0, 1500))
	assert.Zero(t, PaceSecondsPerUnit(-2, 1500))
	assert.InDelta(t, 300.0, PaceSecondsPerUnit(5, 1500), 1e-9)
}

func TestFormatPace(t *testing.T) {
	assert.Equal(t, "5:00 /km", FormatPace(300, UnitKilometers))
	assert.Equal(t, "4:37 /mi", FormatPace(277, UnitMiles))

	// Degenerate input collapses to the canonical zero pace.
	assert.Equal(t, "0:00 /km", FormatPace(0, UnitKilometers))
	assert.Equal(t, "0:00 /km", FormatPace(-10, UnitKilometers))
	assert.Equal(t, "0:00 /mi", FormatPace(math.NaN(), UnitMiles))
	assert.Equal(t, "0:00 /mi", FormatPace(math.Inf(1), UnitMiles))
}

func TestConvert(t *testing.T) {
	assert.InDelta(t, 1.0, Convert(1000, UnitKilometers), 1e-12)
	assert.InDelta(t, 1.0, Convert(1609.344, UnitMiles), 1e-12)
	assert.InDelta(t, 5.0, Convert(5000, UnitKilometers), 1e-12)
	assert.Zero(t, Convert(0, UnitMiles))
}

func TestParseUnit(t *testing.T) {
	assert.Equal(t, UnitKilometers, ParseUnit("km"))
	assert.Equal(t, UnitMiles, ParseUnit("mi"))
	assert.Equal(t, UnitKilometers, ParseUnit(""))
	assert.Equal(t, UnitKilometers, ParseUnit("furlongs"))
}

func TestCalories(t *testing.T) {
	assert.InDelta(t, 362.6, Calories(5, 70, 1.036), 1e-9)
	assert.Zero(t, Calories(0, 70, 1.036))
}

func TestFormatDistance(t *testing.T) {
	assert.Equal(t, "5.21 km", FormatDistance(5210, UnitKilometers))
	assert.Equal(t, "1.00 mi", FormatDistance(1609.344, UnitMiles))
	assert.Equal(t, "0.00 km", FormatDistance(0, UnitKilometers))
}
