// Package rms provides RMS and unbalance metrics over three-phase phasor
// quantities. Phasor magnitudes are peak values; results are divided by √2
// assuming sinusoidal inputs.
package rms

import (
	"math"
	"math/cmplx"
)

// RMS returns the RMS value of a three-phase phasor set:
// sqrt((|a|²+|b|²+|c|²)/3)/√2.
func RMS(ua, ub, uc complex128) float64 {
	ma := cmplx.Abs(ua)
	mb := cmplx.Abs(ub)
	mc := cmplx.Abs(uc)

	return math.Sqrt((ma*ma+mb*mb+mc*mc)/3) / math.Sqrt2
}

// RMSMin returns the smallest per-phase RMS value of a three-phase phasor set.
func RMSMin(ua, ub, uc complex128) float64 {
	return math.Min(cmplx.Abs(ua), math.Min(cmplx.Abs(ub), cmplx.Abs(uc))) / math.Sqrt2
}

// RMS1Phase returns the RMS value of a single phasor.
func RMS1Phase(ua complex128) float64 {
	return cmplx.Abs(ua) / math.Sqrt2
}

// Unbalance returns the unbalance fraction (max-min)/mean of three per-phase
// values. A zero mean divides by zero and propagates Inf or NaN; callers are
// expected to pass non-degenerate inputs.
func Unbalance(ua, ub, uc float64) float64 {
	avg := (ua + ub + uc) / 3
	return (math.Max(ua, math.Max(ub, uc)) - math.Min(ua, math.Min(ub, uc))) / avg
}
