package common

import "math"

const (
	BaseWidth  = 1280
	BaseHeight = 720

	// NarrowWidth is the logical width below which the layout switches to
	// its compact variant.
	NarrowWidth = 768
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
