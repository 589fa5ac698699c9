package phasor

import (
	"math"
	"testing"
)

func BenchmarkToTime(b *testing.B) {
	upha := complex(1.0, 0)
	uphb := RotateB(upha)
	uphc := RotateC(upha)
	w := 2 * math.Pi * 60

	b.ReportAllocs()

	var ua, ub, uc float64
	for i := range b.N {
		ua, ub, uc = ToTime(upha, uphb, uphc, w, float64(i)*1e-6)
	}

	_, _, _ = ua, ub, uc
}

func BenchmarkLimitMagnitude(b *testing.B) {
	b.ReportAllocs()

	var z complex128
	for range b.N {
		z = LimitMagnitude(complex(1.7, -0.9), -1, 1)
	}

	_ = z
}
