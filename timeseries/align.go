package timeseries

import (
	"errors"
	"math"
	"sort"
	"time"
)

// UnionTimestamps returns the sorted union of acquisition times across
// the given series. Duplicate times collapse to one entry.
func UnionTimestamps(series ...*Series) []time.Time {
	seen := make(map[int64]time.Time)
	for _, s := range series {
		for _, ts := range s.Timestamps {
			seen[ts.UnixNano()] = ts
		}
	}

	out := make([]time.Time, 0, len(seen))
	for _, ts := range seen {
		out = append(out, ts)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// Reindex maps a series onto the given time axis. Times the series never
// observed become NaN; when a time occurs more than once in the source,
// the last observation wins.
func Reindex(s *Series, times []time.Time) *Series {
	byTime := make(map[int64]float64, len(s.Values))
	for i, ts := range s.Timestamps {
		if i < len(s.Values) {
			byTime[ts.UnixNano()] = s.Values[i]
		}
	}

	values := make([]float64, len(times))
	for i, ts := range times {
		if v, ok := byTime[ts.UnixNano()]; ok {
			values[i] = v
		} else {
			values[i] = math.NaN()
		}
	}

	timestamps := make([]time.Time, len(times))
	copy(timestamps, times)

	return &Series{
		Timestamps: timestamps,
		Values:     values,
		Name:       s.Name,
	}
}

// Align reindexes every series onto the union time axis and returns that
// axis together with one equal-length value slice per input. Every series
// must carry one timestamp per value.
func Align(series ...*Series) ([]time.Time, [][]float64, error) {
	if len(series) == 0 {
		return nil, nil, errors.New("at least one series is required")
	}
	for _, s := range series {
		if len(s.Timestamps) != len(s.Values) {
			return nil, nil, errors.New("timestamps and values must have the same length")
		}
	}

	times := UnionTimestamps(series...)
	values := make([][]float64, len(series))
	for i, s := range series {
		values[i] = Reindex(s, times).Values
	}
	return times, values, nil
}
