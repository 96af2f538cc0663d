package stats

import (
	"errors"
	"math"
)

// SeasonalComponent holds the mean deviation at each phase of a periodic
// series: index p is the average of all observations whose position in
// the series is congruent to p modulo the period. A phase with no valid
// observations holds NaN.
type SeasonalComponent []float64

// Period returns the period the component was estimated for.
func (c SeasonalComponent) Period() int {
	return len(c)
}

// At returns the component for time step t (t taken modulo the period).
func (c SeasonalComponent) At(t int) float64 {
	if len(c) == 0 {
		return math.NaN()
	}
	p := t % len(c)
	if p < 0 {
		p += len(c)
	}
	return c[p]
}

// PhaseMeans estimates the seasonal component of a time-ordered series by
// averaging valid observations within each phase.
func PhaseMeans(values []float64, period int) SeasonalComponent {
	means := make(SeasonalComponent, period)
	counts := make([]int, period)

	for i, v := range values {
		if math.IsNaN(v) {
			continue
		}
		p := i % period
		means[p] += v
		counts[p]++
	}

	for p := range means {
		if counts[p] > 0 {
			means[p] /= float64(counts[p])
		} else {
			means[p] = math.NaN()
		}
	}
	return means
}

// FitSeasonal fits the deseasonalized linear relationship between two
// time-ordered sequences of equal length. Both sequences may hold NaN
// gaps; position within the sequence determines phase, so callers must
// not compact the inputs (see MaskPair).
//
// Each sequence's seasonal component is estimated by phase means and
// subtracted, then the residual pairs are fit with FitLinear. Sequences
// shorter than twice the period return the undefined sentinel with nil
// components and no error; insufficiency is not a failure.
func FitSeasonal(x, y []float64, period int) (slope, intercept float64, sx, sy SeasonalComponent, err error) {
	if period < 2 {
		return math.NaN(), math.NaN(), nil, nil, errors.New("period must be at least 2")
	}
	if len(x) != len(y) {
		return math.NaN(), math.NaN(), nil, nil, errors.New("sequences must have the same length")
	}
	if len(x) < 2*period {
		return math.NaN(), math.NaN(), nil, nil, nil
	}

	sx = PhaseMeans(x, period)
	sy = PhaseMeans(y, period)

	rx := make([]float64, 0, len(x))
	ry := make([]float64, 0, len(y))
	for i := range x {
		dx := x[i] - sx.At(i)
		dy := y[i] - sy.At(i)
		if math.IsNaN(dx) || math.IsNaN(dy) {
			continue
		}
		rx = append(rx, dx)
		ry = append(ry, dy)
	}

	slope, intercept = FitLinear(rx, ry)
	return slope, intercept, sx, sy, nil
}
