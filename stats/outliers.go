// Package stats provides the fitting primitives for sensor bridging:
// outlier filtering, linear regression, and seasonal decomposition.
package stats

import (
	"errors"
	"math"
)

// FilterPair removes index positions where either sequence is missing or
// where the absolute difference exceeds threshold. It returns the two
// filtered sequences (order preserved) and the keep-mask over the
// original index range. An all-invalid input yields two empty sequences,
// not an error.
func FilterPair(a, b []float64, threshold float64) ([]float64, []float64, []bool, error) {
	if len(a) != len(b) {
		return nil, nil, nil, errors.New("sequences must have the same length")
	}
	if threshold < 0 || math.IsNaN(threshold) {
		return nil, nil, nil, errors.New("threshold must be non-negative")
	}

	mask := make([]bool, len(a))
	fa := make([]float64, 0, len(a))
	fb := make([]float64, 0, len(b))

	for i := range a {
		if math.IsNaN(a[i]) || math.IsNaN(b[i]) {
			continue
		}
		if math.Abs(a[i]-b[i]) > threshold {
			continue
		}
		mask[i] = true
		fa = append(fa, a[i])
		fb = append(fb, b[i])
	}

	return fa, fb, mask, nil
}

// MaskPair is the length-preserving variant of FilterPair: instead of
// compacting, it writes NaN at every rejected position so the phase
// structure of a time-ordered sequence survives filtering. Seasonal
// fitting depends on this.
func MaskPair(a, b []float64, threshold float64) ([]float64, []float64, []bool, error) {
	if len(a) != len(b) {
		return nil, nil, nil, errors.New("sequences must have the same length")
	}
	if threshold < 0 || math.IsNaN(threshold) {
		return nil, nil, nil, errors.New("threshold must be non-negative")
	}

	mask := make([]bool, len(a))
	ma := make([]float64, len(a))
	mb := make([]float64, len(b))

	for i := range a {
		keep := !math.IsNaN(a[i]) && !math.IsNaN(b[i]) && math.Abs(a[i]-b[i]) <= threshold
		mask[i] = keep
		if keep {
			ma[i] = a[i]
			mb[i] = b[i]
		} else {
			ma[i] = math.NaN()
			mb[i] = math.NaN()
		}
	}

	return ma, mb, mask, nil
}
