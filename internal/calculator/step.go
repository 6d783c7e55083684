package calculator

import "math"

// Quantize snaps value to the nearest multiple of step, rounding halves away
// from zero. A non-positive step leaves value untouched.
func Quantize(value, step float64) float64 {
	if step <= 0 {
		return value
	}
	return math.Round(value/step) * step
}

// ToIndex returns floor(value/step) as a dataset index for a dataset of length n.
// ok is false when the index falls outside [0, n-1] or step is not positive;
// callers keep their previous index in that case instead of clamping.
func ToIndex(value, step float64, n int) (index int, ok bool) {
	if step <= 0 || n <= 0 {
		return 0, false
	}
	idx := math.Floor(value / step)
	if math.IsNaN(idx) || idx < 0 || idx > float64(n-1) {
		return 0, false
	}
	return int(idx), true
}
