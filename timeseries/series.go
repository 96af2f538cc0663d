// Package timeseries provides core time series data structures with
// missing-data semantics.
package timeseries

import (
	"errors"
	"math"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Series represents a single sensor's observations over time. Missing
// observations are NaN; every statistic on Series skips them.
type Series struct {
	Timestamps []time.Time
	Values     []float64
	Name       string
}

// New creates a series from values with synthetic monthly timestamps.
func New(values []float64) *Series {
	timestamps := make([]time.Time, len(values))
	base := time.Now()
	for i := range timestamps {
		timestamps[i] = base.AddDate(0, i, 0)
	}
	return &Series{
		Timestamps: timestamps,
		Values:     values,
	}
}

// NewWithTimestamps creates a series with explicit acquisition times.
func NewWithTimestamps(timestamps []time.Time, values []float64) (*Series, error) {
	if len(timestamps) != len(values) {
		return nil, errors.New("timestamps and values must have the same length")
	}
	return &Series{
		Timestamps: timestamps,
		Values:     values,
	}, nil
}

// Len returns the length of the series, missing observations included.
func (s *Series) Len() int {
	return len(s.Values)
}

// ValidCount returns the number of non-missing observations.
func (s *Series) ValidCount() int {
	n := 0
	for _, v := range s.Values {
		if !math.IsNaN(v) {
			n++
		}
	}
	return n
}

// Valid returns the non-missing observations in order.
func (s *Series) Valid() []float64 {
	out := make([]float64, 0, len(s.Values))
	for _, v := range s.Values {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

// Mean calculates the arithmetic mean over valid observations.
func (s *Series) Mean() float64 {
	valid := s.Valid()
	if len(valid) == 0 {
		return math.NaN()
	}
	return stat.Mean(valid, nil)
}

// Variance calculates the sample variance over valid observations.
func (s *Series) Variance() float64 {
	valid := s.Valid()
	if len(valid) < 2 {
		return 0
	}
	return stat.Variance(valid, nil)
}

// Std calculates the sample standard deviation over valid observations.
func (s *Series) Std() float64 {
	return math.Sqrt(s.Variance())
}

// Min returns the minimum valid value, or NaN when none exist.
func (s *Series) Min() float64 {
	min := math.NaN()
	for _, v := range s.Values {
		if math.IsNaN(v) {
			continue
		}
		if math.IsNaN(min) || v < min {
			min = v
		}
	}
	return min
}

// Max returns the maximum valid value, or NaN when none exist.
func (s *Series) Max() float64 {
	max := math.NaN()
	for _, v := range s.Values {
		if math.IsNaN(v) {
			continue
		}
		if math.IsNaN(max) || v > max {
			max = v
		}
	}
	return max
}

// Median returns the median of the valid values.
func (s *Series) Median() float64 {
	valid := s.Valid()
	if len(valid) == 0 {
		return math.NaN()
	}
	sort.Float64s(valid)

	n := len(valid)
	if n%2 == 0 {
		return (valid[n/2-1] + valid[n/2]) / 2
	}
	return valid[n/2]
}

// Slice returns a copy of the series from start to end (exclusive).
func (s *Series) Slice(start, end int) *Series {
	if start < 0 {
		start = 0
	}
	if end > len(s.Values) {
		end = len(s.Values)
	}
	if start >= end {
		return &Series{Values: []float64{}, Name: s.Name}
	}

	values := make([]float64, end-start)
	copy(values, s.Values[start:end])

	timestamps := make([]time.Time, len(values))
	if len(s.Timestamps) >= end {
		copy(timestamps, s.Timestamps[start:end])
	}

	return &Series{
		Timestamps: timestamps,
		Values:     values,
		Name:       s.Name,
	}
}

// Copy creates a deep copy of the series.
func (s *Series) Copy() *Series {
	values := make([]float64, len(s.Values))
	copy(values, s.Values)

	timestamps := make([]time.Time, len(s.Timestamps))
	copy(timestamps, s.Timestamps)

	return &Series{
		Timestamps: timestamps,
		Values:     values,
		Name:       s.Name,
	}
}

// ValidMask reports, per index, whether the value is non-missing.
func ValidMask(values []float64) []bool {
	mask := make([]bool, len(values))
	for i, v := range values {
		mask[i] = !math.IsNaN(v)
	}
	return mask
}

// PairMask reports, per index, whether both sequences hold a valid value.
// The sequences must have equal length.
func PairMask(a, b []float64) ([]bool, error) {
	if len(a) != len(b) {
		return nil, errors.New("sequences must have the same length")
	}
	mask := make([]bool, len(a))
	for i := range a {
		mask[i] = !math.IsNaN(a[i]) && !math.IsNaN(b[i])
	}
	return mask, nil
}
