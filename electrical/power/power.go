// Package power provides per-unit power calculations for photovoltaic
// converter simulation.
package power

import (
	"math"
	"math/cmplx"
)

// Diode-model constants for the PV array.
const (
	reverseSaturationCurrent = 1.2e-7    // A, cell reverse saturation current
	electronCharge           = 1.602e-19 // C
	boltzmann                = 1.38e-23  // J/K
	idealityFactor           = 1.92      // p-n junction ideality factor
)

// PV returns the per-unit power output of a PV array with np parallel strings
// of ns series cells, photo current iph, DC-link voltage vdc, and cell
// temperature temp (Kelvin), normalized by sbase.
//
// The diode model can produce negative power outside its valid operating
// range; the result is clamped to zero instead. The exponential is evaluated
// with Expm1 for numerical stability near zero; extreme vdc/temp ratios
// still overflow to +Inf and clamp through the IEEE rules.
func PV(iph, np, ns, vdc, temp, sbase float64) float64 {
	ipv := np*iph - np*reverseSaturationCurrent*math.Expm1((electronCharge*vdc)/(boltzmann*temp*idealityFactor*ns))
	return math.Max(0, ipv*vdc) / sbase
}

// Apparent returns the three-phase complex apparent power ½·Σ v·conj(i).
// The real part is active power, the imaginary part reactive power.
func Apparent(va, vb, vc, ia, ib, ic complex128) complex128 {
	return 0.5 * (va*cmplx.Conj(ia) + vb*cmplx.Conj(ib) + vc*cmplx.Conj(ic))
}

// DutyCycle returns the proportional-integral duty-cycle value kp·u + x for
// a single phase, where u is the controller error and x its integral state.
func DutyCycle(kp float64, u, x complex128) complex128 {
	return complex(kp, 0)*u + x
}
