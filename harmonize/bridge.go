package harmonize

import (
	"math"

	"github.com/iosefa/pixltsnorm/stats"
	"github.com/iosefa/pixltsnorm/timeseries"
)

// Method selects the bridging model for a sensor pair.
type Method int

const (
	// Linear bridges with plain OLS over the filtered overlap.
	Linear Method = iota
	// SeasonalDecompose removes each sequence's per-phase mean before the
	// OLS fit and restores the target's at apply time.
	SeasonalDecompose
)

// String returns the method's wire name.
func (m Method) String() string {
	switch m {
	case Linear:
		return "linear"
	case SeasonalDecompose:
		return "seasonal_decompose"
	default:
		return "unknown"
	}
}

// ParseMethod resolves a method wire name.
func ParseMethod(name string) (Method, error) {
	switch name {
	case "linear":
		return Linear, nil
	case "seasonal_decompose":
		return SeasonalDecompose, nil
	default:
		return Linear, ErrBadMethod
	}
}

// Options configures bridging and chaining.
type Options struct {
	// Method selects the bridging model (default Linear).
	Method Method
	// Threshold is the outlier cut: pairs differing by more are dropped
	// before fitting (default 0.2, the usual NDVI tolerance).
	Threshold float64
	// Thresholds optionally overrides Threshold per adjacent pair in a
	// chain; its length must be one less than the number of sequences.
	Thresholds []float64
	// Period is the seasonal period in time steps, required for
	// SeasonalDecompose (for example 12 for monthly series).
	Period int
}

// DefaultOptions returns the default bridging configuration.
func DefaultOptions() *Options {
	return &Options{
		Method:    Linear,
		Threshold: 0.2,
	}
}

// validate checks everything checkable before fitting. nPairs is the
// number of adjacencies the options will serve.
func (o *Options) validate(nPairs int) error {
	switch o.Method {
	case Linear:
	case SeasonalDecompose:
		if o.Period < 2 {
			return ErrBadPeriod
		}
	default:
		return ErrBadMethod
	}
	if o.Thresholds != nil {
		if len(o.Thresholds) != nPairs {
			return ErrThresholdCount
		}
		for _, th := range o.Thresholds {
			if th < 0 || math.IsNaN(th) {
				return ErrNegativeThreshold
			}
		}
	} else if o.Threshold < 0 || math.IsNaN(o.Threshold) {
		return ErrNegativeThreshold
	}
	return nil
}

// thresholdFor returns the outlier cut for adjacency pair.
func (o *Options) thresholdFor(pair int) float64 {
	if o.Thresholds != nil && pair < len(o.Thresholds) {
		return o.Thresholds[pair]
	}
	return o.Threshold
}

// PairwiseResult is the outcome of bridging one sensor pair. It is an
// immutable value object; later apply calls only read it.
type PairwiseResult struct {
	// Source and Target are the sequence indices within the enclosing
	// chain call (0 and 1 for a standalone Bridge).
	Source int
	Target int

	// Transform maps source values onto the target scale. Undefined when
	// the overlap was insufficient.
	Transform Transform

	// SeasonalSource and SeasonalTarget hold the per-phase means removed
	// during a SeasonalDecompose fit; nil for Linear fits.
	SeasonalSource stats.SeasonalComponent
	SeasonalTarget stats.SeasonalComponent

	// Mask flags the original index positions that survived missing-value
	// and outlier filtering.
	Mask []bool

	// NInitial counts jointly valid pairs before the outlier cut, NUsed
	// after it.
	NInitial int
	NUsed    int
}

// Seasonal reports whether the result carries seasonal components.
func (r *PairwiseResult) Seasonal() bool {
	return len(r.SeasonalSource) > 0
}

// Apply maps a source value onto the target scale. Seasonal results need
// the time step and refuse plain Apply.
func (r *PairwiseResult) Apply(x float64) (float64, error) {
	if !r.Transform.IsDefined() {
		return math.NaN(), ErrUndefined
	}
	if r.Seasonal() {
		return math.NaN(), ErrPhaseRequired
	}
	return r.Transform.Apply(x), nil
}

// ApplyAt maps a source value observed at time step t onto the target
// scale. For seasonal results the source's phase mean is removed, the
// linear map applied, and the target's phase mean at t restored. For
// linear results t is irrelevant and ignored.
func (r *PairwiseResult) ApplyAt(x float64, t int) (float64, error) {
	if !r.Transform.IsDefined() {
		return math.NaN(), ErrUndefined
	}
	if !r.Seasonal() {
		return r.Transform.Apply(x), nil
	}
	deseason := x - r.SeasonalSource.At(t)
	return r.Transform.Apply(deseason) + r.SeasonalTarget.At(t), nil
}

// Bridge harmonizes one source sequence onto one target sequence:
// missing-value and outlier filtering, then a Linear or SeasonalDecompose
// fit per opts. A nil opts means DefaultOptions.
//
// Configuration and shape problems return an error before any fitting.
// An overlap too thin to fit is not an error; the result then carries the
// undefined Transform sentinel.
func Bridge(source, target []float64, opts *Options) (*PairwiseResult, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if err := opts.validate(1); err != nil {
		return nil, err
	}
	if len(source) != len(target) {
		return nil, ErrShapeMismatch
	}

	pairMask, err := timeseries.PairMask(source, target)
	if err != nil {
		return nil, ErrShapeMismatch
	}
	nInitial := 0
	for _, ok := range pairMask {
		if ok {
			nInitial++
		}
	}

	res := &PairwiseResult{
		Source:   0,
		Target:   1,
		NInitial: nInitial,
	}
	threshold := opts.thresholdFor(0)

	switch opts.Method {
	case Linear:
		fa, fb, mask, ferr := stats.FilterPair(source, target, threshold)
		if ferr != nil {
			return nil, ErrShapeMismatch
		}
		res.Mask = mask
		res.NUsed = len(fa)
		res.Transform = NewTransform(stats.FitLinear(fa, fb))

	case SeasonalDecompose:
		// Length-preserving filter: seasonal phase is positional.
		ma, mb, mask, ferr := stats.MaskPair(source, target, threshold)
		if ferr != nil {
			return nil, ErrShapeMismatch
		}
		res.Mask = mask
		for _, ok := range mask {
			if ok {
				res.NUsed++
			}
		}
		slope, intercept, sx, sy, serr := stats.FitSeasonal(ma, mb, opts.Period)
		if serr != nil {
			return nil, ErrBadPeriod
		}
		res.Transform = NewTransform(slope, intercept)
		res.SeasonalSource = sx
		res.SeasonalTarget = sy
	}

	return res, nil
}
