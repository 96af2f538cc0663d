package stats

import (
	"math"
	"testing"
)

func TestFilterPairExcludesOutliers(t *testing.T) {
	a := []float64{0, 1, 2, 100}
	b := []float64{0, 1, 2, 3}

	fa, fb, mask, err := FilterPair(a, b, 5)
	if err != nil {
		t.Fatalf("FilterPair returned error: %v", err)
	}

	if len(fa) != 3 || len(fb) != 3 {
		t.Fatalf("expected 3 surviving pairs, got %d/%d", len(fa), len(fb))
	}

	expected := []bool{true, true, true, false}
	for i := range expected {
		if mask[i] != expected[i] {
			t.Errorf("mask[%d]: expected %v, got %v", i, expected[i], mask[i])
		}
	}
}

func TestFilterPairExcludesMissing(t *testing.T) {
	a := []float64{0.1, math.NaN(), 0.3}
	b := []float64{0.1, 0.2, math.NaN()}

	fa, _, mask, err := FilterPair(a, b, 1)
	if err != nil {
		t.Fatalf("FilterPair returned error: %v", err)
	}

	if len(fa) != 1 || !mask[0] || mask[1] || mask[2] {
		t.Errorf("expected only index 0 to survive, mask=%v", mask)
	}
}

func TestFilterPairAllInvalid(t *testing.T) {
	a := []float64{0, 10}
	b := []float64{100, math.NaN()}

	fa, fb, mask, err := FilterPair(a, b, 1)
	if err != nil {
		t.Fatalf("all-invalid input must not error, got: %v", err)
	}
	if len(fa) != 0 || len(fb) != 0 {
		t.Errorf("expected empty output, got %v/%v", fa, fb)
	}
	if mask[0] || mask[1] {
		t.Errorf("expected all-false mask, got %v", mask)
	}
}

func TestFilterPairRejectsBadInput(t *testing.T) {
	if _, _, _, err := FilterPair([]float64{1}, []float64{1, 2}, 1); err == nil {
		t.Error("expected error for unequal lengths")
	}
	if _, _, _, err := FilterPair([]float64{1}, []float64{1}, -0.5); err == nil {
		t.Error("expected error for negative threshold")
	}
}

func TestMaskPairPreservesLength(t *testing.T) {
	a := []float64{0, 1, 2, 100}
	b := []float64{0, 1, 2, 3}

	ma, mb, mask, err := MaskPair(a, b, 5)
	if err != nil {
		t.Fatalf("MaskPair returned error: %v", err)
	}

	if len(ma) != 4 || len(mb) != 4 {
		t.Fatalf("expected length-preserving output, got %d/%d", len(ma), len(mb))
	}
	if !math.IsNaN(ma[3]) || !math.IsNaN(mb[3]) {
		t.Errorf("rejected position must be NaN in both outputs, got %f/%f", ma[3], mb[3])
	}
	if mask[3] {
		t.Error("rejected position must be false in mask")
	}
	if ma[1] != 1 || mb[1] != 1 {
		t.Errorf("kept positions must pass through, got %f/%f", ma[1], mb[1])
	}
}

func TestFitLinearRecoverSlope(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{2, 4, 6, 8, 10}

	slope, intercept := FitLinear(x, y)
	if math.Abs(slope-2.0) > 1e-12 {
		t.Errorf("slope: expected 2.0, got %f", slope)
	}
	if math.Abs(intercept) > 1e-12 {
		t.Errorf("intercept: expected 0.0, got %f", intercept)
	}
}

func TestFitLinearIdentityShortCircuit(t *testing.T) {
	x := []float64{0.123456, 0.654321, 0.111111}
	slope, intercept := FitLinear(x, x)

	// Exact, not merely close: self-bridging must not pick up
	// floating-point noise from a regression.
	if slope != 1.0 || intercept != 0.0 {
		t.Errorf("expected exact identity, got (%v, %v)", slope, intercept)
	}
}

func TestFitLinearUndefined(t *testing.T) {
	cases := []struct {
		name string
		x, y []float64
	}{
		{"empty", nil, nil},
		{"single point", []float64{1}, []float64{2}},
		{"constant x", []float64{3, 3, 3}, []float64{1, 2, 3}},
		{"length mismatch", []float64{1, 2}, []float64{1}},
	}

	for _, tc := range cases {
		slope, intercept := FitLinear(tc.x, tc.y)
		if !math.IsNaN(slope) || !math.IsNaN(intercept) {
			t.Errorf("%s: expected undefined sentinel, got (%v, %v)", tc.name, slope, intercept)
		}
	}
}

func TestPhaseMeans(t *testing.T) {
	// Period 2: even positions average to 2, odd to 10.
	values := []float64{1, 10, 2, 10, 3, math.NaN()}
	means := PhaseMeans(values, 2)

	if math.Abs(means[0]-2.0) > 1e-12 {
		t.Errorf("phase 0: expected 2.0, got %f", means[0])
	}
	if math.Abs(means[1]-10.0) > 1e-12 {
		t.Errorf("phase 1: expected 10.0, got %f", means[1])
	}
}

func TestPhaseMeansEmptyPhase(t *testing.T) {
	values := []float64{1, math.NaN(), 2, math.NaN()}
	means := PhaseMeans(values, 2)
	if !math.IsNaN(means[1]) {
		t.Errorf("phase with no observations must be NaN, got %f", means[1])
	}
}

func TestSeasonalComponentAt(t *testing.T) {
	c := SeasonalComponent{1, 2, 3}
	if c.At(4) != 2 {
		t.Errorf("At(4): expected 2, got %f", c.At(4))
	}
	if c.At(-1) != 3 {
		t.Errorf("At(-1): expected 3, got %f", c.At(-1))
	}
	if !math.IsNaN(SeasonalComponent(nil).At(0)) {
		t.Error("empty component must return NaN")
	}
}

func TestFitSeasonalRecoversDeseasonalizedSlope(t *testing.T) {
	period := 4
	n := 4 * period
	base := []float64{0.10, 0.52, 0.34, 0.91, 0.27, 0.63, 0.48, 0.15,
		0.72, 0.39, 0.85, 0.21, 0.56, 0.44, 0.68, 0.33}
	seasX := []float64{0.5, -0.5, 0.2, -0.2}
	seasY := []float64{-1.0, 1.0, 0.3, -0.3}

	x := make([]float64, n)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = base[i] + seasX[i%period]
		y[i] = 2*base[i] + seasY[i%period]
	}

	slope, intercept, sx, sy, err := FitSeasonal(x, y, period)
	if err != nil {
		t.Fatalf("FitSeasonal returned error: %v", err)
	}

	if math.Abs(slope-2.0) > 1e-9 {
		t.Errorf("slope: expected 2.0, got %f", slope)
	}
	if math.Abs(intercept) > 1e-9 {
		t.Errorf("intercept: expected 0.0, got %f", intercept)
	}
	if sx.Period() != period || sy.Period() != period {
		t.Errorf("components must have length %d, got %d/%d", period, sx.Period(), sy.Period())
	}
}

func TestFitSeasonalTooShort(t *testing.T) {
	x := []float64{1, 2, 3}
	y := []float64{2, 4, 6}

	slope, intercept, sx, sy, err := FitSeasonal(x, y, 12)
	if err != nil {
		t.Fatalf("too-short input must degrade, not error: %v", err)
	}
	if !math.IsNaN(slope) || !math.IsNaN(intercept) {
		t.Errorf("expected undefined sentinel, got (%v, %v)", slope, intercept)
	}
	if sx != nil || sy != nil {
		t.Error("expected nil components for insufficient data")
	}
}

func TestFitSeasonalBadPeriod(t *testing.T) {
	if _, _, _, _, err := FitSeasonal([]float64{1, 2}, []float64{1, 2}, 1); err == nil {
		t.Error("expected error for period < 2")
	}
}

func TestFitSeasonalLengthMismatch(t *testing.T) {
	if _, _, _, _, err := FitSeasonal([]float64{1, 2, 3}, []float64{1, 2}, 2); err == nil {
		t.Error("expected error for unequal lengths")
	}
}
