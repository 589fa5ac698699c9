// Package frame implements reference-frame transforms between stationary
// a-b-c, stationary α-β, and the rotating d-q0 frame used in three-phase
// control loops.
package frame

import (
	"math"
	"math/cmplx"
)

// Rotation operators for the a-b-c to space-vector projection.
var (
	rotPos = cmplx.Exp(complex(0, 2*math.Pi/3))  // e^{+j2π/3}
	rotNeg = cmplx.Exp(complex(0, -2*math.Pi/3)) // e^{-j2π/3}
)

// ABCToDQ0 transforms instantaneous a-b-c samples into the d-q0 frame at
// rotation angle wt. The space vector is scaled by 2/3 so that a balanced
// set of amplitude U maps to a d-q vector of magnitude U; u0 is the
// arithmetic mean of the three phases.
func ABCToDQ0(ua, ub, uc, wt float64) (ud, uq, u0 float64) {
	us := (complex(ua, 0) + complex(ub, 0)*rotPos + complex(uc, 0)*rotNeg) * cmplx.Rect(1, -wt)

	ud = (2.0 / 3.0) * real(us)
	uq = (2.0 / 3.0) * imag(us)
	u0 = (ua + ub + uc) / 3

	return ud, uq, u0
}

// DQ0ToABC transforms d-q0 components at rotation angle wt back into
// instantaneous a-b-c samples. It is the exact algebraic inverse of
// [ABCToDQ0] for matching wt.
func DQ0ToABC(ud, uq, u0, wt float64) (ua, ub, uc float64) {
	ua = ud*math.Cos(wt) - uq*math.Sin(wt) + u0
	ub = ud*math.Cos(wt-2*math.Pi/3) - uq*math.Sin(wt-2*math.Pi/3) + u0
	uc = ud*math.Cos(wt+2*math.Pi/3) - uq*math.Sin(wt+2*math.Pi/3) + u0

	return ua, ub, uc
}

// AlphaBetaToDQ rotates a stationary α-β vector into the d-q frame at
// rotation angle wt.
func AlphaBetaToDQ(ualpha, ubeta, wt float64) (ud, uq float64) {
	us := complex(ualpha, ubeta) * cmplx.Rect(1, -wt)
	return real(us), imag(us)
}
