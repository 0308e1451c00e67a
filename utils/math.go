package utils

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Sign maps x >= 0 to 1 and x < 0 to -1, zero is treated as positive
func Sign(x float64) float64 {
	if x >= 0 {
		return 1
	}
	return -1
}

// RelErr measures |a-b| relative to the reference a, with floor bounding the
// denominator away from zero for small reference values
func RelErr(a, b, floor float64) float64 {
	return math.Abs(a-b) / math.Max(math.Abs(a), floor)
}

// VecRelErr is the vector form of RelErr using Euclidean norms
func VecRelErr(a, b []float64, floor float64) float64 {
	if len(a) != len(b) {
		panic("mismatched lengths in relative error")
	}
	return floats.Distance(a, b, 2) / math.Max(floats.Norm(a, 2), floor)
}
