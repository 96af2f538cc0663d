// Package harmonize maps numeric sequences from different sensors onto a
// common reference scale via pairwise linear bridges and their chains.
package harmonize

import (
	"encoding/json"
	"fmt"
	"math"
)

// Transform is the affine map placing one sensor's values on another
// sensor's scale: target = Slope*source + Intercept.
//
// A transform is either fully defined (both fields finite) or fully
// undefined (both NaN). The undefined sentinel marks a failed fit and
// must never be applied; it is not the identity.
type Transform struct {
	Slope     float64
	Intercept float64
}

// Identity returns the transform that maps every value to itself.
func Identity() Transform {
	return Transform{Slope: 1, Intercept: 0}
}

// Undefined returns the sentinel for a failed fit.
func Undefined() Transform {
	return Transform{Slope: math.NaN(), Intercept: math.NaN()}
}

// NewTransform builds a transform from a fitted slope and intercept,
// collapsing any non-finite component to the undefined sentinel so the
// all-or-nothing invariant holds.
func NewTransform(slope, intercept float64) Transform {
	if math.IsNaN(slope) || math.IsNaN(intercept) ||
		math.IsInf(slope, 0) || math.IsInf(intercept, 0) {
		return Undefined()
	}
	return Transform{Slope: slope, Intercept: intercept}
}

// IsDefined reports whether the transform came from a successful fit.
func (t Transform) IsDefined() bool {
	return !math.IsNaN(t.Slope) && !math.IsNaN(t.Intercept)
}

// Apply maps a single value onto the target scale. Applying an undefined
// transform yields NaN.
func (t Transform) Apply(x float64) float64 {
	return t.Slope*x + t.Intercept
}

// ApplySeries maps a whole sequence onto the target scale. Missing
// observations stay missing.
func (t Transform) ApplySeries(values []float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = t.Apply(v)
	}
	return out
}

// Compose chains this transform with next: the result maps a value first
// through t and then through next. If either part is undefined the
// composition is undefined.
func (t Transform) Compose(next Transform) Transform {
	if !t.IsDefined() || !next.IsDefined() {
		return Undefined()
	}
	return Transform{
		Slope:     next.Slope * t.Slope,
		Intercept: next.Slope*t.Intercept + next.Intercept,
	}
}

// String renders the transform for logs and demos.
func (t Transform) String() string {
	if !t.IsDefined() {
		return "undefined"
	}
	return fmt.Sprintf("y = %.6f*x + %.6f", t.Slope, t.Intercept)
}

// transformJSON carries Transform over JSON; null fields encode the
// undefined sentinel since bare JSON has no NaN.
type transformJSON struct {
	Slope     *float64 `json:"slope"`
	Intercept *float64 `json:"intercept"`
}

// MarshalJSON implements json.Marshaler.
func (t Transform) MarshalJSON() ([]byte, error) {
	if !t.IsDefined() {
		return json.Marshal(transformJSON{})
	}
	return json.Marshal(transformJSON{Slope: &t.Slope, Intercept: &t.Intercept})
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Transform) UnmarshalJSON(data []byte) error {
	var raw transformJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Slope == nil || raw.Intercept == nil {
		*t = Undefined()
		return nil
	}
	*t = Transform{Slope: *raw.Slope, Intercept: *raw.Intercept}
	return nil
}
