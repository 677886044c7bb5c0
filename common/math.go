package common

import "math"

// ObjectSize is the edge length of one grid unit in world coordinates.
const (
	ObjectSize     = 30.0
	HalfObjectSize = ObjectSize / 2
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SnapToGrid floors v to the nearest lower multiple of ObjectSize.
func SnapToGrid(v float64) float64 {
	return math.Floor(v/ObjectSize) * ObjectSize
}

// RoundTo rounds v to the nearest multiple of step.
func RoundTo(v, step float64) float64 {
	return math.Round(v/step) * step
}
