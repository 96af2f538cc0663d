package grid

import (
	"math"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/iosefa/pixltsnorm/harmonize"
	"github.com/iosefa/pixltsnorm/timeseries"
)

// RowChainResult holds per-pixel chain outcomes: Rows[r][s] maps sensor
// s's values at pixel r onto the target sensor's scale. Transforms are
// independently defined or undefined per pixel.
type RowChainResult struct {
	Target int
	Rows   [][]harmonize.Transform
}

// At returns the transform for one pixel and sensor.
func (r *RowChainResult) At(row, sensor int) harmonize.Transform {
	return r.Rows[row][sensor]
}

// LocalChain runs the chain composer independently for every pixel row.
//
// The grids are first put onto the union of their acquisition times, with
// NaN filling the gaps, so each pixel contributes one aligned sequence
// per sensor. Rows are fit in parallel; each writes only its own slot, so
// output row order always matches input row order. A pixel whose overlap
// is too thin gets undefined transforms without disturbing other pixels.
//
// Configuration errors (bad method, target, period, thresholds, row
// counts) abort the whole call before any fitting.
func LocalChain(grids []*Grid, targetIndex int, opts *harmonize.Options) (*RowChainResult, error) {
	n := len(grids)
	if n == 0 {
		return nil, ErrNoGrids
	}
	if err := harmonize.ValidateChain(n, targetIndex, opts); err != nil {
		return nil, err
	}
	rows := grids[0].Rows()
	for i := 1; i < n; i++ {
		if grids[i].Rows() != rows {
			return nil, ErrRowCount
		}
	}

	times, colMaps := unionColumns(grids)

	res := &RowChainResult{
		Target: targetIndex,
		Rows:   make([][]harmonize.Transform, rows),
	}

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for r := 0; r < rows; r++ {
		r := r
		g.Go(func() error {
			seqs := make([][]float64, n)
			for s, grid := range grids {
				seqs[s] = reindexRow(grid.Data[r], colMaps[s], len(times))
			}
			chain, err := harmonize.Chain(seqs, targetIndex, opts)
			if err != nil {
				return err
			}
			res.Rows[r] = chain.Transforms
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

// unionColumns builds the union time axis across grids and, per grid, the
// mapping from its columns to positions on that axis.
func unionColumns(grids []*Grid) ([]time.Time, [][]int) {
	series := make([]*timeseries.Series, len(grids))
	for i, g := range grids {
		series[i] = &timeseries.Series{Timestamps: g.Times, Values: make([]float64, len(g.Times))}
	}
	times := timeseries.UnionTimestamps(series...)

	pos := make(map[int64]int, len(times))
	for j, ts := range times {
		pos[ts.UnixNano()] = j
	}

	colMaps := make([][]int, len(grids))
	for i, g := range grids {
		colMaps[i] = make([]int, len(g.Times))
		for j, ts := range g.Times {
			colMaps[i][j] = pos[ts.UnixNano()]
		}
	}
	return times, colMaps
}

// reindexRow spreads one pixel row onto the union axis, NaN elsewhere.
func reindexRow(row []float64, colMap []int, width int) []float64 {
	out := make([]float64, width)
	for i := range out {
		out[i] = math.NaN()
	}
	for j, v := range row {
		out[colMap[j]] = v
	}
	return out
}
