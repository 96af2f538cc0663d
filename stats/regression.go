package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// FitLinear fits y = slope*x + intercept by ordinary least squares.
//
// Fewer than 2 paired points, mismatched lengths, or zero variance in x
// yield the undefined sentinel (NaN, NaN); callers must treat that as
// "no transform", never as identity. When x and y are elementwise equal
// the fit short-circuits to (1, 0) so that self-bridging is exact rather
// than subject to floating-point noise.
func FitLinear(x, y []float64) (slope, intercept float64) {
	if len(x) != len(y) || len(x) == 0 {
		return math.NaN(), math.NaN()
	}

	if sameValues(x, y) {
		return 1.0, 0.0
	}

	if len(x) < 2 {
		return math.NaN(), math.NaN()
	}

	if stat.Variance(x, nil) == 0 {
		return math.NaN(), math.NaN()
	}

	intercept, slope = stat.LinearRegression(x, y, nil, false)
	if math.IsNaN(slope) || math.IsNaN(intercept) ||
		math.IsInf(slope, 0) || math.IsInf(intercept, 0) {
		return math.NaN(), math.NaN()
	}
	return slope, intercept
}

func sameValues(x, y []float64) bool {
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}
