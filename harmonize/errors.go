package harmonize

import "errors"

// Configuration and shape errors abort a call before any fitting starts.
// Data insufficiency is never an error; it yields the undefined Transform
// sentinel instead, so batch processing can continue.
var (
	// ErrNoSequences indicates an empty sequence list.
	ErrNoSequences = errors.New("harmonize: at least one sequence is required")

	// ErrShapeMismatch indicates sequences of unequal length.
	ErrShapeMismatch = errors.New("harmonize: sequences must have the same length")

	// ErrTargetIndex indicates a target index outside the sequence list.
	ErrTargetIndex = errors.New("harmonize: target index out of range")

	// ErrBadMethod indicates an unrecognized bridging method.
	ErrBadMethod = errors.New("harmonize: unknown bridging method")

	// ErrBadPeriod indicates a missing or invalid seasonal period.
	ErrBadPeriod = errors.New("harmonize: seasonal method requires period >= 2")

	// ErrSeasonalPairOnly indicates seasonal mode with other than two sequences.
	ErrSeasonalPairOnly = errors.New("harmonize: seasonal method requires exactly two sequences")

	// ErrNegativeThreshold indicates an outlier threshold below zero.
	ErrNegativeThreshold = errors.New("harmonize: outlier threshold must be non-negative")

	// ErrThresholdCount indicates a per-pair threshold list whose length
	// is not the number of adjacent pairs.
	ErrThresholdCount = errors.New("harmonize: need exactly one threshold per adjacent pair")

	// ErrUndefined indicates an attempt to apply an undefined transform.
	ErrUndefined = errors.New("harmonize: transform is undefined")

	// ErrPhaseRequired indicates a seasonal result applied without a time step.
	ErrPhaseRequired = errors.New("harmonize: seasonal transform requires a time step, use ApplyAt")
)
