package grid

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/iosefa/pixltsnorm/harmonize"
)

func month(i int) time.Time {
	return time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, i, 0)
}

func months(from, n int) []time.Time {
	out := make([]time.Time, n)
	for i := range out {
		out[i] = month(from + i)
	}
	return out
}

func TestNewRejectsRaggedData(t *testing.T) {
	_, err := New("l5", months(0, 3), [][]float64{{1, 2, 3}, {1, 2}})
	require.ErrorIs(t, err, ErrRagged)
}

func TestGridSeries(t *testing.T) {
	g, err := New("l5", months(0, 3), [][]float64{{1, math.NaN(), 3}})
	require.NoError(t, err)

	s := g.Series(0)
	require.Equal(t, "l5", s.Name)
	require.Equal(t, 3, s.Len())
	require.Equal(t, 2, s.ValidCount())
}

func TestGlobalBridgePoolsPixels(t *testing.T) {
	nan := math.NaN()
	times := months(0, 4)

	a, err := New("a", times, [][]float64{
		{0.1, 0.2, 0.3, 0.4},
		{0.5, 0.6, nan, 0.8},
	})
	require.NoError(t, err)

	// b = 2a + 0.1, with extra gaps of its own.
	b, err := New("b", times, [][]float64{
		{0.3, 0.5, 0.7, 0.9},
		{1.1, nan, 0.7, nan},
	})
	require.NoError(t, err)

	res, err := GlobalBridge(a, b, &harmonize.Options{Method: harmonize.Linear, Threshold: 1000})
	require.NoError(t, err)

	require.Equal(t, 5, res.NInitial, "jointly valid pixel-time pairs")
	require.Equal(t, 5, res.NUsed)
	require.InDelta(t, 2.0, res.Transform.Slope, 1e-9)
	require.InDelta(t, 0.1, res.Transform.Intercept, 1e-9)
}

func TestGlobalBridgeNoOverlap(t *testing.T) {
	a, _ := New("a", months(0, 2), [][]float64{{1, 2}})
	b, _ := New("b", months(6, 2), [][]float64{{1, 2}})

	_, err := GlobalBridge(a, b, nil)
	require.ErrorIs(t, err, ErrNoOverlap)
}

func TestGlobalBridgeRejectsSeasonal(t *testing.T) {
	a, _ := New("a", months(0, 2), [][]float64{{1, 2}})
	b, _ := New("b", months(0, 2), [][]float64{{1, 2}})

	_, err := GlobalBridge(a, b, &harmonize.Options{
		Method: harmonize.SeasonalDecompose, Threshold: 1, Period: 2,
	})
	require.ErrorIs(t, err, ErrSeasonalGlobal)
}

func TestGlobalBridgeRowCountMismatch(t *testing.T) {
	a, _ := New("a", months(0, 2), [][]float64{{1, 2}, {3, 4}})
	b, _ := New("b", months(0, 2), [][]float64{{1, 2}})

	_, err := GlobalBridge(a, b, nil)
	require.ErrorIs(t, err, ErrRowCount)
}

func TestGlobalChainComposes(t *testing.T) {
	times := months(0, 4)
	baseRows := [][]float64{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
	}

	mk := func(name string, f func(float64) float64) *Grid {
		data := make([][]float64, len(baseRows))
		for r, row := range baseRows {
			data[r] = make([]float64, len(row))
			for j, v := range row {
				data[r][j] = f(v)
			}
		}
		g, err := New(name, times, data)
		require.NoError(t, err)
		return g
	}

	a := mk("a", func(v float64) float64 { return v })
	b := mk("b", func(v float64) float64 { return 2*v + 1 })
	c := mk("c", func(v float64) float64 { return 0.5*(2*v+1) - 0.2 })

	res, err := GlobalChain([]*Grid{a, b, c}, 2, &harmonize.Options{Method: harmonize.Linear, Threshold: 1000})
	require.NoError(t, err)

	require.Equal(t, harmonize.Identity(), res.Transforms[2])

	// a -> c algebraically: slope 2*0.5 = 1, intercept 0.5*1 - 0.2 = 0.3.
	require.InDelta(t, 1.0, res.Transforms[0].Slope, 1e-9)
	require.InDelta(t, 0.3, res.Transforms[0].Intercept, 1e-9)
}

func TestGlobalChainSingleGrid(t *testing.T) {
	a, _ := New("a", months(0, 2), [][]float64{{1, 2}})
	res, err := GlobalChain([]*Grid{a}, 0, nil)
	require.NoError(t, err)
	require.Equal(t, harmonize.Identity(), res.Transforms[0])
}
