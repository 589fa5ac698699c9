package rms

import (
	"math"
	"math/cmplx"
	"testing"
)

const tolerance = 1e-9

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestRMS1Phase(t *testing.T) {
	if got := RMS1Phase(1 + 0i); !almostEqual(got, 0.7071, 1e-4) {
		t.Errorf("RMS1Phase(1+0i) = %g, want 0.7071", got)
	}

	// Only the magnitude matters.
	if got := RMS1Phase(cmplx.Rect(2, 1.3)); !almostEqual(got, 2/math.Sqrt2, tolerance) {
		t.Errorf("RMS1Phase(2∠1.3) = %g, want %g", got, 2/math.Sqrt2)
	}
}

func TestRMSBalanced(t *testing.T) {
	a := cmplx.Rect(1, 0)
	b := cmplx.Rect(1, -2*math.Pi/3)
	c := cmplx.Rect(1, 2*math.Pi/3)

	if got := RMS(a, b, c); !almostEqual(got, 1/math.Sqrt2, tolerance) {
		t.Errorf("RMS of balanced unit set = %g, want %g", got, 1/math.Sqrt2)
	}
}

func TestRMSUnbalanced(t *testing.T) {
	got := RMS(complex(3, 0), complex(0, 4), complex(0, 0))
	want := math.Sqrt(25.0/3) / math.Sqrt2

	if !almostEqual(got, want, tolerance) {
		t.Errorf("RMS = %g, want %g", got, want)
	}
}

func TestRMSMin(t *testing.T) {
	got := RMSMin(cmplx.Rect(1, 0.1), cmplx.Rect(2, 0.2), cmplx.Rect(0.5, 0.3))
	want := 0.5 / math.Sqrt2

	if !almostEqual(got, want, tolerance) {
		t.Errorf("RMSMin = %g, want %g", got, want)
	}
}

func TestUnbalance(t *testing.T) {
	if got := Unbalance(1, 1, 1); !almostEqual(got, 0, tolerance) {
		t.Errorf("Unbalance of equal values = %g, want 0", got)
	}

	if got := Unbalance(1.2, 1.0, 0.8); !almostEqual(got, 0.4, tolerance) {
		t.Errorf("Unbalance(1.2, 1.0, 0.8) = %g, want 0.4", got)
	}
}

func TestUnbalanceZeroMeanIsInf(t *testing.T) {
	// Zero mean is a documented degenerate case: the division propagates
	// through IEEE rules instead of being guarded.
	if got := Unbalance(1, 0, -1); !math.IsInf(got, 1) {
		t.Errorf("Unbalance(1, 0, -1) = %g, want +Inf", got)
	}
}
