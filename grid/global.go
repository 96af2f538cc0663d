package grid

import (
	"github.com/iosefa/pixltsnorm/harmonize"
)

// GlobalBridge fits one scene-wide transform from sensor a onto sensor b.
// The grids are restricted to their shared acquisition times, every
// pixel-time pair is pooled into one flat regression, and missing or
// outlying pairs are dropped by the usual bridging filter.
//
// Both grids must cover the same pixels row for row. Seasonal mode is
// rejected: pooling pixels interleaves rows, so position in the flattened
// sequence no longer encodes phase.
func GlobalBridge(a, b *Grid, opts *harmonize.Options) (*harmonize.PairwiseResult, error) {
	if opts == nil {
		opts = harmonize.DefaultOptions()
	}
	if opts.Method == harmonize.SeasonalDecompose {
		return nil, ErrSeasonalGlobal
	}
	if a.Rows() != b.Rows() {
		return nil, ErrRowCount
	}

	flatA, flatB, err := flattenOverlap(a, b)
	if err != nil {
		return nil, err
	}
	return harmonize.Bridge(flatA, flatB, opts)
}

// GlobalChain runs the chain composer in global mode: one GlobalBridge
// per adjacent sensor pair, composed outward from the target exactly as
// harmonize.Chain composes sequence bridges. The result's transforms are
// scene-wide, one per sensor.
func GlobalChain(grids []*Grid, targetIndex int, opts *harmonize.Options) (*harmonize.ChainResult, error) {
	if opts == nil {
		opts = harmonize.DefaultOptions()
	}
	if opts.Method == harmonize.SeasonalDecompose {
		return nil, ErrSeasonalGlobal
	}

	n := len(grids)
	if n == 0 {
		return nil, ErrNoGrids
	}
	if err := harmonize.ValidateChain(n, targetIndex, opts); err != nil {
		return nil, err
	}
	for i := 1; i < n; i++ {
		if grids[i].Rows() != grids[0].Rows() {
			return nil, ErrRowCount
		}
	}

	res := &harmonize.ChainResult{
		Target:     targetIndex,
		Transforms: make([]harmonize.Transform, n),
	}
	if n == 1 {
		res.Transforms[0] = harmonize.Identity()
		return res, nil
	}
	res.Pairwise = make([]*harmonize.PairwiseResult, n-1)
	res.Transforms[targetIndex] = harmonize.Identity()

	pairOpts := func(pair int) *harmonize.Options {
		o := *opts
		if opts.Thresholds != nil && pair < len(opts.Thresholds) {
			o.Threshold = opts.Thresholds[pair]
		}
		o.Thresholds = nil
		return &o
	}

	for i := targetIndex - 1; i >= 0; i-- {
		pair, err := GlobalBridge(grids[i], grids[i+1], pairOpts(i))
		if err != nil {
			return nil, err
		}
		pair.Source, pair.Target = i, i+1
		res.Pairwise[i] = pair
		res.Transforms[i] = pair.Transform.Compose(res.Transforms[i+1])
	}
	for i := targetIndex + 1; i < n; i++ {
		pair, err := GlobalBridge(grids[i], grids[i-1], pairOpts(i-1))
		if err != nil {
			return nil, err
		}
		pair.Source, pair.Target = i, i-1
		res.Pairwise[i-1] = pair
		res.Transforms[i] = pair.Transform.Compose(res.Transforms[i-1])
	}

	return res, nil
}

// flattenOverlap pools both grids over their shared acquisition times,
// row-major, so index k of each output refers to the same pixel and time.
func flattenOverlap(a, b *Grid) ([]float64, []float64, error) {
	bIdx := b.columnIndex()

	type overlap struct{ ja, jb int }
	var cols []overlap
	for ja, ts := range a.Times {
		if jb, ok := bIdx[ts.UnixNano()]; ok {
			cols = append(cols, overlap{ja, jb})
		}
	}
	if len(cols) == 0 {
		return nil, nil, ErrNoOverlap
	}

	flatA := make([]float64, 0, a.Rows()*len(cols))
	flatB := make([]float64, 0, a.Rows()*len(cols))
	for r := 0; r < a.Rows(); r++ {
		for _, c := range cols {
			flatA = append(flatA, a.Data[r][c.ja])
			flatB = append(flatB, b.Data[r][c.jb])
		}
	}
	return flatA, flatB, nil
}
