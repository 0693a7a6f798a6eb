package common

import "math"

// Clamp bounds v to [lo, hi]. When lo > hi the result is hi.
func Clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(lo, v), hi)
}

// Finite reports whether every value is neither NaN nor infinite.
func Finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
