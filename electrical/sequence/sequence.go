// Package sequence implements the symmetrical-component decomposition of
// unbalanced three-phase phasor sets into zero, positive, and negative
// sequence components.
package sequence

import (
	"math"
	"math/cmplx"
)

// Sequence rotation operators: α = e^{j2π/3} and α² = e^{j4π/3}.
var (
	alpha  = cmplx.Exp(complex(0, 2*math.Pi/3))
	alpha2 = cmplx.Exp(complex(0, 4*math.Pi/3))
)

// Symmetrical decomposes a three-phase phasor set into its zero, positive,
// and negative sequence components.
func Symmetrical(upha, uphb, uphc complex128) (u0, u1, u2 complex128) {
	u0 = (upha + uphb + uphc) / 3
	u1 = (upha + alpha*uphb + alpha2*uphc) / 3
	u2 = (upha + alpha2*uphb + alpha*uphc) / 3

	return u0, u1, u2
}

// ZeroSequence returns the zero-sequence part of a three-phase phasor set as
// a three-phase set. All three phases carry the same unrotated component.
func ZeroSequence(upha, uphb, uphc complex128) (complex128, complex128, complex128) {
	u0, _, _ := Symmetrical(upha, uphb, uphc)
	return u0, u0, u0
}

// PositiveSequence returns the positive-sequence part of a three-phase phasor
// set, reconstructed as a balanced a-b-c set.
func PositiveSequence(upha, uphb, uphc complex128) (complex128, complex128, complex128) {
	_, u1, _ := Symmetrical(upha, uphb, uphc)
	return u1, u1 * alpha2, u1 * alpha
}

// NegativeSequence returns the negative-sequence part of a three-phase phasor
// set, reconstructed as a balanced a-b-c set.
func NegativeSequence(upha, uphb, uphc complex128) (complex128, complex128, complex128) {
	_, _, u2 := Symmetrical(upha, uphb, uphc)
	return u2, u2 * alpha2, u2 * alpha
}
