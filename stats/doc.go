// Package stats provides the fitting primitives for sensor bridging.
//
// This package contains the three building blocks the harmonize package
// composes: pairwise outlier filtering, ordinary least squares fitting,
// and seasonal decomposition by phase means.
//
// # Outlier Filtering
//
// Remove pairs that disagree by more than a threshold, along with pairs
// where either observation is missing:
//
//	fa, fb, mask, err := stats.FilterPair(a, b, 0.2)
//
// FilterPair compacts the output; MaskPair keeps the original length and
// writes NaN at rejected positions instead, which preserves the phase
// structure needed for seasonal fitting:
//
//	ma, mb, mask, err := stats.MaskPair(a, b, 0.2)
//
// # Linear Fitting
//
// Fit y = slope*x + intercept over already-filtered pairs:
//
//	slope, intercept := stats.FitLinear(fa, fb)
//
// The fit never panics on degenerate input. Fewer than two points or a
// constant x yields (NaN, NaN), the undefined sentinel. Elementwise-equal
// inputs short-circuit to the exact identity (1, 0).
//
// # Seasonal Decomposition
//
// For strongly periodic series, estimate each sequence's per-phase mean,
// subtract it, and fit the residuals:
//
//	slope, intercept, sx, sy, err := stats.FitSeasonal(ma, mb, 12)
//
// The returned SeasonalComponent values are needed again at apply time:
// deseasonalize the source value, apply the linear map, then add the
// target's component back at the same phase.
package stats
