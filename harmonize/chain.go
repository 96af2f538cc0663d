package harmonize

import "math"

// ChainResult holds one transform per input sequence, each mapping that
// sequence onto the designated target's scale.
type ChainResult struct {
	// Target is the pivot sequence index; its transform is the identity.
	Target int

	// Transforms is indexed like the input sequence list. A transform is
	// undefined when its adjacency, or any adjacency between it and the
	// target, failed to fit.
	Transforms []Transform

	// Pairwise records each adjacency's bridge, indexed so Pairwise[i]
	// covers sequences i and i+1. The bridge direction always points
	// toward the target, so below the pivot Source is i, above it Source
	// is i+1. Empty for a single-sequence chain.
	Pairwise []*PairwiseResult
}

// Apply maps a value from sequence seq onto the target scale, refusing
// undefined transforms and out-of-range indices.
func (r *ChainResult) Apply(seq int, x float64) (float64, error) {
	if seq < 0 || seq >= len(r.Transforms) {
		return math.NaN(), ErrTargetIndex
	}
	t := r.Transforms[seq]
	if !t.IsDefined() {
		return math.NaN(), ErrUndefined
	}
	return t.Apply(x), nil
}

// Chain harmonizes an ordered list of sequences onto the one at
// targetIndex. Adjacent sequences are bridged independently, each with
// fresh outlier filtering, and the pairwise transforms are composed
// outward from the target: sequences below the pivot walk right, those
// above walk left. Overlap is therefore only needed between neighbors in
// the given order, never between every sensor and the target directly.
//
// The input order is significant and caller-controlled; Chain never
// reorders or infers adjacency. A failed adjacency leaves every sequence
// beyond it (away from the target) undefined. SeasonalDecompose is
// limited to exactly two sequences.
func Chain(seqs [][]float64, targetIndex int, opts *Options) (*ChainResult, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	n := len(seqs)
	if err := ValidateChain(n, targetIndex, opts); err != nil {
		return nil, err
	}
	for i := 1; i < n; i++ {
		if len(seqs[i]) != len(seqs[0]) {
			return nil, ErrShapeMismatch
		}
	}

	res := &ChainResult{
		Target:     targetIndex,
		Transforms: make([]Transform, n),
	}
	if n == 1 {
		res.Transforms[0] = Identity()
		return res, nil
	}
	res.Pairwise = make([]*PairwiseResult, n-1)
	res.Transforms[targetIndex] = Identity()

	// Below the pivot: bridge i onto i+1 and compose with what already
	// maps i+1 onto the target.
	for i := targetIndex - 1; i >= 0; i-- {
		pair, err := Bridge(seqs[i], seqs[i+1], pairOptions(opts, i))
		if err != nil {
			return nil, err
		}
		pair.Source, pair.Target = i, i+1
		res.Pairwise[i] = pair
		res.Transforms[i] = pair.Transform.Compose(res.Transforms[i+1])
	}

	// Above the pivot: bridge i onto i-1, mirrored.
	for i := targetIndex + 1; i < n; i++ {
		pair, err := Bridge(seqs[i], seqs[i-1], pairOptions(opts, i-1))
		if err != nil {
			return nil, err
		}
		pair.Source, pair.Target = i, i-1
		res.Pairwise[i-1] = pair
		res.Transforms[i] = pair.Transform.Compose(res.Transforms[i-1])
	}

	return res, nil
}

// ValidateChain checks a chain configuration for n sequences without
// touching any data. Drivers that fan a chain out over many rows call it
// once up front so configuration errors fail fast instead of per row.
func ValidateChain(n, targetIndex int, opts *Options) error {
	if opts == nil {
		opts = DefaultOptions()
	}
	if n == 0 {
		return ErrNoSequences
	}
	if targetIndex < 0 || targetIndex >= n {
		return ErrTargetIndex
	}
	if opts.Method == SeasonalDecompose && n != 2 {
		return ErrSeasonalPairOnly
	}
	return opts.validate(n - 1)
}

// pairOptions narrows chain-level options to a single adjacency.
func pairOptions(opts *Options, pair int) *Options {
	return &Options{
		Method:    opts.Method,
		Threshold: opts.thresholdFor(pair),
		Period:    opts.Period,
	}
}
