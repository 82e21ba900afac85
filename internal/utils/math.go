package utils

import "math"

func Abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// Clamp limits v to [lo, hi]. When hi < lo the box does not fit and lo wins.
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// MaxInt returns the larger of a and b.
func MaxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// MinInt returns the smaller of a and b.
func MinInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
