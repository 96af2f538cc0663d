// Package grid applies sensor harmonization to whole pixel tables, either
// globally (one transform per sensor for the scene) or locally (one
// transform per sensor per pixel).
package grid

import (
	"errors"
	"time"

	"github.com/iosefa/pixltsnorm/timeseries"
)

var (
	// ErrNoGrids indicates an empty grid list.
	ErrNoGrids = errors.New("grid: at least one grid is required")

	// ErrRagged indicates a grid whose rows differ from its time axis.
	ErrRagged = errors.New("grid: every row must match the time axis length")

	// ErrRowCount indicates grids with differing pixel counts.
	ErrRowCount = errors.New("grid: all grids must have the same number of rows")

	// ErrNoOverlap indicates two grids with no shared acquisition times.
	ErrNoOverlap = errors.New("grid: no overlapping acquisition times between sensors")

	// ErrSeasonalGlobal indicates seasonal mode requested for global
	// bridging, where flattening destroys the phase structure.
	ErrSeasonalGlobal = errors.New("grid: seasonal method is not supported in global mode")
)

// Grid holds one sensor's observations for a scene: R pixel rows, one
// column per acquisition time. Missing observations are NaN.
type Grid struct {
	Name  string
	Times []time.Time
	Data  [][]float64
}

// New creates a grid, checking that every row matches the time axis.
func New(name string, times []time.Time, data [][]float64) (*Grid, error) {
	for _, row := range data {
		if len(row) != len(times) {
			return nil, ErrRagged
		}
	}
	return &Grid{Name: name, Times: times, Data: data}, nil
}

// Rows returns the number of pixel rows.
func (g *Grid) Rows() int {
	return len(g.Data)
}

// Len returns the number of acquisition times.
func (g *Grid) Len() int {
	return len(g.Times)
}

// Row returns the observations of one pixel across time. The slice is a
// view into the grid, not a copy.
func (g *Grid) Row(i int) []float64 {
	return g.Data[i]
}

// Series returns one pixel's observations as a timeseries.Series.
func (g *Grid) Series(row int) *timeseries.Series {
	s, _ := timeseries.NewWithTimestamps(g.Times, g.Data[row])
	if s != nil {
		s.Name = g.Name
	}
	return s
}

// columnIndex maps acquisition times to their column positions.
func (g *Grid) columnIndex() map[int64]int {
	idx := make(map[int64]int, len(g.Times))
	for j, ts := range g.Times {
		idx[ts.UnixNano()] = j
	}
	return idx
}
