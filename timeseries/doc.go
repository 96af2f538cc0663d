// Package timeseries provides time series data structures with
// missing-data semantics for sensor harmonization.
//
// This package includes the Series type for a single sensor's
// observations, statistics that skip missing values, and alignment
// utilities for putting several sensors onto a shared time axis.
//
// # Creating a Series
//
// Create a series from a slice (NaN marks a missing observation):
//
//	values := []float64{0.31, math.NaN(), 0.35, 0.33}
//	series := timeseries.New(values)
//
// Or with explicit acquisition times:
//
//	series, err := timeseries.NewWithTimestamps(times, values)
//
// # Statistics
//
// All statistics operate on valid observations only:
//
//	mean := series.Mean()
//	std := series.Std()
//	n := series.ValidCount()
//
// # Alignment
//
// Sensors rarely acquire on identical dates. Align reindexes every series
// onto the union of their time axes, filling gaps with NaN, so the
// resulting value slices can be compared index by index:
//
//	times, values, err := timeseries.Align(l5, l7, l8)
//	// values[0], values[1], values[2] share len(times)
//
// # Pair Masks
//
// PairMask reports where two aligned sequences are jointly valid:
//
//	mask, err := timeseries.PairMask(values[0], values[1])
package timeseries
