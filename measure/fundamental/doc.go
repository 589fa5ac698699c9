// Package fundamental estimates the fundamental phasor of a sampled
// waveform, the inverse of sampling a phasor into the time domain.
//
// The signal is Hann-windowed and transformed with an FFT; the fundamental
// bin is either pinned by a known frequency or found by peak search. The
// bin's magnitude is corrected for the window's coherent gain and its phase
// mapped back into the cos(wt+φ-π/2) phasor convention, so for a coherently
// sampled waveform the estimate round-trips with package waveform:
//
//	g := waveform.NewGenerator(waveform.WithSampleRate(3840))
//	u, _ := g.SinglePhase(1+0i, 1024)
//	res := fundamental.Analyze(u, fundamental.Config{SampleRate: 3840, FFTSize: 1024})
//	// res.Phasor ≈ 1+0i, res.Frequency ≈ 60
package fundamental
