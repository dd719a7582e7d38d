package common

import "math"

// FloorDiv divides and rounds toward negative infinity, so -1/32 is -1 not 0.
func FloorDiv(v, d float64) int {
	return int(math.Floor(v / d))
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// SnapDown rounds v down to a multiple of step, never below one step.
func SnapDown(v, step int) int {
	if step <= 0 {
		return v
	}
	if v < step {
		return step
	}
	return v - v%step
}
