// Package pixltsnorm harmonizes multi-sensor numeric time series onto a
// common reference scale.
//
// Different sensors observing the same physical quantity (for example NDVI
// from Landsat 5, 7, and 8) drift apart in scale. PixLTSNorm fits pairwise
// linear bridges between sensors over their temporal overlap and chains
// them, so every sensor maps onto a designated target sensor's scale even
// when some sensors never co-occur in time — each only needs to overlap a
// neighbor.
//
// # Features
//
//   - Pairwise bridging with outlier filtering and OLS regression
//   - Seasonal-decomposition bridging for strongly periodic series
//   - Chain composition across an arbitrary number of sensors
//   - Global (scene-wide) and local (per-pixel) operating modes
//   - Missing data (NaN) tolerated throughout; insufficient overlap
//     degrades to an undefined transform instead of failing a batch
//
// # Quick Start
//
// Bridge two sensors and map new values:
//
//	res, _ := harmonize.Bridge(sensorA, sensorB, harmonize.DefaultOptions())
//	if res.Transform.IsDefined() {
//	    onBScale := res.Transform.Apply(0.42)
//	    _ = onBScale
//	}
//
// Chain several sensors onto the last one:
//
//	chain, _ := harmonize.Chain([][]float64{l5, l7, l8}, 2, harmonize.DefaultOptions())
//	l5OnL8 := chain.Transforms[0]
//
// # Packages
//
// The library is organized into the following packages:
//
//   - timeseries: series values, missing-data statistics, time alignment
//   - stats: outlier filtering, linear fitting, seasonal decomposition
//   - harmonize: transforms, pairwise bridging, chain composition
//   - grid: per-pixel tables, global and local drivers, CSV boundary
//
// # References
//
//   - Roy, D.P. et al. (2016). Characterization of Landsat-7 to Landsat-8
//     reflective wavelength and normalized difference vegetation index
//     continuity. Remote Sensing of Environment.
package pixltsnorm
