// Package grid applies sensor harmonization to whole pixel tables.
//
// A Grid holds one sensor's scene: R pixel rows by T acquisition times,
// with NaN for missing observations. Two operating modes cover the two
// ways a scene is harmonized:
//
// # Global Mode
//
// One transform per sensor for the whole scene. Every pixel-time pair in
// the temporal overlap of two sensors is pooled into a single regression:
//
//	res, err := grid.GlobalChain([]*grid.Grid{l5, l7, l8}, 2, nil)
//	l5OnL8 := res.Transforms[0] // applies to every pixel
//
// # Local Mode
//
// One transform per sensor per pixel. Each pixel row is chained
// independently, in parallel, and a pixel without enough overlap gets
// undefined transforms without disturbing its neighbors:
//
//	res, err := grid.LocalChain([]*grid.Grid{l5, l7, l8}, 2, nil)
//	tr := res.At(42, 0) // pixel 42, sensor l5
//	if tr.IsDefined() {
//	    harmonized := tr.Apply(0.37)
//	    _ = harmonized
//	}
//
// Output row order always matches input row order, also under parallel
// execution.
//
// # CSV Boundary
//
// LoadCSV reads the wide layout produced by time series extraction (one
// column per date, trailing lon/lat metadata columns):
//
//	opts := grid.DefaultCSVOptions()
//	opts.Name = "landsat5"
//	l5, err := grid.LoadCSV("l5_ndvi.csv", opts)
//
// WriteTransformsCSV and LoadTransformsCSV persist per-pixel results;
// undefined transforms round-trip as NaN literals.
package grid
