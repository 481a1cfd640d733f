package chart

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// AxisTicks produces count evenly spaced axis values from maxValue down to
// minValue, in descending order (top of the axis is the maximum).
func AxisTicks(maxValue, minValue float64, count int) []float64 {
	if count <= 1 {
		return []float64{maxValue}
	}
	step := (maxValue - minValue) / float64(count-1)
	ticks := make([]float64, count)
	for k := 0; k < count; k++ {
		ticks[k] = maxValue - float64(k)*step
	}
	return ticks
}

// FormatTruncated formats a value with fixed decimal precision by truncation
// toward zero, not rounding: 2.449 at 2 digits is "2.44", and -2.449 is
// "-2.44".
func FormatTruncated(value float64, digits int) string {
	pow := math.Pow(10, float64(digits))
	truncated := math.Trunc(value*pow) / pow
	return strconv.FormatFloat(truncated, 'f', digits, 64)
}

// TimeLabel holds the calendar fields of one time-axis tick, derived from a
// candle timestamp in the local time zone.
type TimeLabel struct {
	Month  int
	Day    int
	Hour   int
	Minute int
}

// TimeLabelFor derives the time-axis label fields for a candle open time.
func TimeLabelFor(t time.Time) TimeLabel {
	local := t.Local()
	return TimeLabel{
		Month:  int(local.Month()),
		Day:    local.Day(),
		Hour:   local.Hour(),
		Minute: local.Minute(),
	}
}

// String renders the label as "month/day hour:minute" with the minute
// zero-padded to two digits.
func (l TimeLabel) String() string {
	return fmt.Sprintf("%d/%d %d:%02d", l.Month, l.Day, l.Hour, l.Minute)
}
