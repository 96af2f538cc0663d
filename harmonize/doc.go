// Package harmonize bridges sensor pairs and chains the bridges so every
// sensor in an ordered list maps onto a designated target's scale.
//
// # Bridging a Pair
//
// Bridge filters the joint overlap of two aligned sequences and fits the
// affine map source -> target:
//
//	res, err := harmonize.Bridge(l5, l7, nil) // default: linear, threshold 0.2
//	if err != nil {
//	    // configuration or shape problem
//	}
//	if res.Transform.IsDefined() {
//	    onL7 := res.Transform.Apply(0.41)
//	    _ = onL7
//	}
//
// A thin overlap is not an error: the result simply carries the undefined
// transform, which Apply refuses. Check IsDefined before applying.
//
// # Seasonal Bridging
//
// For strongly periodic series, SeasonalDecompose removes each sequence's
// per-phase mean before fitting and restores the target's at apply time.
// The time step of the value being mapped becomes part of the contract:
//
//	opts := &harmonize.Options{
//	    Method:    harmonize.SeasonalDecompose,
//	    Threshold: 0.2,
//	    Period:    12,
//	}
//	res, err := harmonize.Bridge(l5, l7, opts)
//	y, err := res.ApplyAt(0.41, 17) // phase 17 mod 12
//
// # Chaining
//
// Chain composes adjacent bridges outward from a pivot, so sensors that
// never co-occur in time still reach the target through their neighbors:
//
//	chain, err := harmonize.Chain([][]float64{l5, l7, l8}, 2, nil)
//	l5OnL8 := chain.Transforms[0]
//	l7OnL8 := chain.Transforms[1]
//	// chain.Transforms[2] is the identity
//
// When an adjacency cannot be fit, every transform beyond it (away from
// the target) is undefined; undefined is never silently replaced by the
// identity.
//
// # Error Policy
//
// Configuration and shape errors (unknown method, missing period, bad
// target index, unequal lengths) fail the whole call up front. Data
// insufficiency degrades to the undefined transform, local to the
// affected pair.
package harmonize
