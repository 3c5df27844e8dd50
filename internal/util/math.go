package util

import "math"

// Round2 rounds a score to two decimal places for reporting.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// MinFloat returns the smaller of a and b.
func MinFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
