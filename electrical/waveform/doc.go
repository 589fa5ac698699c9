// Package waveform samples phasor quantities into time-domain buffers.
//
// A phasor (r, φ) represents the steady-state sinusoid r·cos(w·t + φ - π/2),
// so a unit phasor at angle zero samples as a sine wave. The package covers
// the batch form of the per-timestep phasor evaluation done inside a
// simulation loop:
//
//	g := waveform.NewGenerator(
//	    waveform.WithSampleRate(3840),
//	    waveform.WithFrequency(60),
//	)
//	ua, ub, uc, _ := g.ThreePhase(va, vb, vc, 1024)
//
// InstantaneousPower combines voltage and current buffers into p(t); for a
// balanced resistive set the result is a constant 3·V·I/2.
package waveform
