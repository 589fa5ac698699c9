// Package phasor provides scalar phasor arithmetic for three-phase
// electrical quantities: 120 degree phase rotation, relative phase,
// phasor-to-time-domain conversion, and magnitude limiting.
package phasor

import (
	"math"
	"math/cmplx"
)

// Rotation operators for a balanced a-b-c phase sequence.
var (
	rotB = cmplx.Exp(complex(0, -2*math.Pi/3)) // e^{-j2π/3}
	rotC = cmplx.Exp(complex(0, 2*math.Pi/3))  // e^{+j2π/3}
)

// RotateB derives the phase-B quantity from phase A by rotating -120 degrees,
// assuming a balanced a-b-c sequence.
func RotateB(ua complex128) complex128 {
	return ua * rotB
}

// RotateC derives the phase-C quantity from phase A by rotating +120 degrees,
// assuming a balanced a-b-c sequence.
func RotateC(ua complex128) complex128 {
	return ua * rotC
}

// RelativePhaseDeg returns the phase of u1 minus the phase of u2,
// normalized into [0, 360) degrees.
func RelativePhaseDeg(u1, u2 complex128) float64 {
	deg := math.Mod((cmplx.Phase(u1)-cmplx.Phase(u2))*180/math.Pi, 360)
	if deg < 0 {
		deg += 360
	}

	return deg
}

// RelativePhase returns the phase of u1 minus the phase of u2, normalized
// into [0, 2π) radians.
//
// The normalization runs in degrees and converts back. Normalizing directly
// in radians with Mod(Δ, 2π) rounds differently at the wrap boundary, so the
// degree-first path is kept on purpose.
func RelativePhase(u1, u2 complex128) float64 {
	return RelativePhaseDeg(u1, u2) * math.Pi / 180
}

// ToTime evaluates three phasors at angular frequency w and time t, returning
// instantaneous time-domain samples. Each phasor (r, φ) maps to
// r·cos(w·t + φ - π/2), so a unit phasor at angle zero is a sine wave.
func ToTime(upha, uphb, uphc complex128, w, t float64) (ua, ub, uc float64) {
	return ToTime1Phase(upha, w, t), ToTime1Phase(uphb, w, t), ToTime1Phase(uphc, w, t)
}

// ToTime1Phase evaluates a single phasor at angular frequency w and time t.
func ToTime1Phase(uph complex128, w, t float64) float64 {
	r, ph := cmplx.Polar(uph)
	return r * math.Cos(w*t+ph-math.Pi/2)
}

// LimitMagnitude clamps the magnitude of z into [low, high] while preserving
// its phase angle exactly. Magnitudes are never negative, so a negative low
// bound leaves small values untouched.
func LimitMagnitude(z complex128, low, high float64) complex128 {
	r, phi := cmplx.Polar(z)
	r = math.Min(math.Max(r, low), high)

	return cmplx.Rect(r, phi)
}
