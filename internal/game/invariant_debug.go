//go:build balloondebug

package game

import "fmt"

func checkTemperature(t float64) float64 {
	if !(t >= MinTemperature && t <= MaxTemperature) {
		panic(fmt.Sprintf("temperature %g outside [%g,%g]", t, MinTemperature, MaxTemperature))
	}
	return t
}

func checkMaxObstacles(n int) int {
	if n < 0 {
		panic(fmt.Sprintf("max obstacles %d is negative", n))
	}
	return n
}
