package geometry

import "math"

// RoundToInterval maps value to the nearest multiple of interval, halves rounding away from zero.
// A non-positive interval disables snapping and returns value unchanged.
func RoundToInterval(value, interval float64) float64 {
	if interval <= 0 {
		return value
	}

	return math.Round(value/interval) * interval
}
