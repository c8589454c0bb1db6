//go:build !balloondebug

package game

import "math"

// Release builds clamp out-of-range inputs instead of failing.

// NaN has no place in the range; it falls back to the cold end.
func checkTemperature(t float64) float64 {
	if math.IsNaN(t) {
		return MinTemperature
	}
	return clampF(t, MinTemperature, MaxTemperature)
}

func checkMaxObstacles(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
